package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/lavka-tech/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	authUC usecase.AuthUC
	logger logger.Logger
}

func NewRouter(router *chi.Mux, authUC usecase.AuthUC, logger logger.Logger) *Router {
	return &Router{router: router, authUC: authUC, logger: logger}
}

// Usecases — зависимости HTTP-слоя, собираемые на старте приложения.
type Usecases struct {
	Auth     usecase.AuthUC
	Category usecase.CategoryUC
	Product  usecase.ProductUC
	Cart     usecase.CartUC
	Address  usecase.AddressUC
	Order    usecase.OrderUC
	Stats    usecase.StatsUC
}

func (r *Router) Init(uc Usecases) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	authHandler := NewAuthHandler(uc.Auth, r.logger)
	categoryHandler := NewCategoryHandler(uc.Category, r.logger)
	productHandler := NewProductHandler(uc.Product, r.logger)
	cartHandler := NewCartHandler(uc.Cart, r.logger)
	addressHandler := NewAddressHandler(uc.Address, r.logger)
	orderHandler := NewOrderHandler(uc.Order, r.logger)
	statsHandler := NewStatsHandler(uc.Stats, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(r.authenticate)

		v1.Route("/auth", func(auth chi.Router) {
			auth.Post("/signup", authHandler.signUp)
			auth.Post("/signin", authHandler.signIn)
			auth.With(requireAuth).Post("/signout", authHandler.signOut)
		})

		v1.Route("/categories", func(categories chi.Router) {
			categories.Get("/", categoryHandler.listCategories)
		})

		v1.Route("/products", func(products chi.Router) {
			products.Get("/", productHandler.listProducts)
			products.Get("/info", productHandler.getProductsInfo)
			products.Get("/{id}", productHandler.getProduct)
		})

		v1.Route("/cart", func(cart chi.Router) {
			cart.Use(resolveCartOwner)
			cart.Get("/", cartHandler.getCart)
			cart.Delete("/", cartHandler.clearCart)
			cart.Post("/items", cartHandler.addItem)
			cart.Patch("/items/{productID}", cartHandler.updateItem)
			cart.Delete("/items/{productID}", cartHandler.removeItem)
		})

		v1.Route("/me", func(me chi.Router) {
			me.Use(requireAuth)
			me.Get("/", authHandler.me)
			me.Patch("/", authHandler.updateMe)

			me.Route("/addresses", func(addresses chi.Router) {
				addresses.Get("/", addressHandler.listAddresses)
				addresses.Post("/", addressHandler.createAddress)
				addresses.Patch("/{id}", addressHandler.updateAddress)
				addresses.Delete("/{id}", addressHandler.deleteAddress)
				addresses.Post("/{id}/default", addressHandler.setDefaultAddress)
			})
		})

		v1.Route("/orders", func(orders chi.Router) {
			orders.Use(requireAuth)
			orders.With(resolveCartOwner).Post("/", orderHandler.checkout)
			orders.Get("/", orderHandler.listOrders)
			orders.Get("/{number}", orderHandler.getOrder)
		})

		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(requireAdmin)
			admin.Get("/dashboard", statsHandler.dashboard)

			admin.Route("/categories", func(categories chi.Router) {
				categories.Post("/", categoryHandler.createCategory)
				categories.Patch("/{id}", categoryHandler.updateCategory)
				categories.Delete("/{id}", categoryHandler.archiveCategory)
			})

			admin.Route("/products", func(products chi.Router) {
				products.Post("/", productHandler.createProduct)
				products.Patch("/{id}", productHandler.updateProduct)
				products.Delete("/{id}", productHandler.archiveProduct)
			})

			admin.Route("/orders", func(orders chi.Router) {
				orders.Get("/", orderHandler.adminListOrders)
				orders.Patch("/{number}/status", orderHandler.updateOrderStatus)
			})
		})
	})
}
