package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/lavka-tech/storefront-backend/internal/cfg"
	v1Http "github.com/lavka-tech/storefront-backend/internal/delivery/v1/http"
	authInfra "github.com/lavka-tech/storefront-backend/internal/infrastructure/auth"
	"github.com/lavka-tech/storefront-backend/internal/infrastructure/kafka"
	minioInfra "github.com/lavka-tech/storefront-backend/internal/infrastructure/minio"
	s3Repo "github.com/lavka-tech/storefront-backend/internal/repository/minio"
	"github.com/lavka-tech/storefront-backend/internal/repository/pgdb"
	pgdbConv "github.com/lavka-tech/storefront-backend/internal/repository/pgdb/converter/generated"
	"github.com/lavka-tech/storefront-backend/internal/repository/redis"
	redisConv "github.com/lavka-tech/storefront-backend/internal/repository/redis/converter/generated"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/clients"
	"github.com/lavka-tech/storefront-backend/pkg/closer"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
	"github.com/lavka-tech/storefront-backend/pkg/postgres"
	"github.com/lavka-tech/storefront-backend/pkg/token"
)

// App — собранное приложение: все зависимости инициализированы,
// осталось запустить серверы и дождаться сигнала завершения.
type App struct {
	cfg          *config.Config
	logger       logger.Logger
	httpSrv      *v1Http.Server
	imagesInfra  *minioInfra.MinioInfrastructure
	outboxWorker *kafka.OutboxWorker
	closer       *closer.Closer
	appCtx       context.Context
	appCancel    context.CancelFunc
}

// NewApp поднимает подключения к PostgreSQL, Redis, MinIO и Kafka,
// применяет миграции и собирает все слои приложения.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	appCtx, appCancel := context.WithCancel(context.Background())
	shutdownCloser := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	shutdownCloser.Add(func(ctx context.Context) error {
		db.Close()
		logger.Infof("Database pool closed")
		return nil
	})

	profileConv := pgdbConv.NewProfileConverterImpl()
	categoryConv := pgdbConv.NewCategoryConverterImpl()
	productConv := pgdbConv.NewProductConverterImpl()
	addressConv := pgdbConv.NewAddressConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()
	cartConv := redisConv.NewCartConverterImpl()

	profileRepo := pgdb.NewProfileRepo(db.Pool, profileConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, categoryConv)
	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	addressRepo := pgdb.NewAddressRepo(db.Pool, addressConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	statsRepo := pgdb.NewStatsRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, appCtx)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	shutdownCloser.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, logger)
	cartRepo := redis.NewCartRepo(redisClient, cartConv, cfg.Cart)
	sessionRepo := redis.NewSessionRepo(redisClient, cfg.Auth.TokenTTL)

	hasher := authInfra.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenManager := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	shutdownCloser.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	authUC := usecase.NewAuthUC(profileRepo, sessionRepo, hasher, tokenManager, logger)
	categoryUC := usecase.NewCategoryUC(categoryRepo, imagesInfra, logger)
	productUC := usecase.NewProductUC(productRepo, categoryRepo, imagesInfra, cacheRepo, logger)
	cartUC := usecase.NewCartUC(cartRepo, productRepo, logger)
	addressUC := usecase.NewAddressUC(addressRepo, logger)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, addressRepo, outboxRepo, cartUC, db.Pool, logger)
	statsUC := usecase.NewStatsUC(statsRepo, logger)

	cartUC.Subscribe(func(event usecase.CartEvent) {
		logger.Debugf("Cart %s: op=%s items=%d total=%d", event.Owner, event.Op, event.Cart.TotalItems, event.Cart.TotalPrice)
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, authUC, logger)
	router.Init(v1Http.Usecases{
		Auth:     authUC,
		Category: categoryUC,
		Product:  productUC,
		Cart:     cartUC,
		Address:  addressUC,
		Order:    orderUC,
		Stats:    statsUC,
	})

	return &App{
		cfg:          cfg,
		logger:       logger,
		httpSrv:      v1Http.NewServer(r, cfg.Http),
		imagesInfra:  imagesInfra,
		outboxWorker: outboxWorker,
		closer:       shutdownCloser,
		appCtx:       appCtx,
		appCancel:    appCancel,
	}, nil
}

// Run запускает HTTP-сервер и outbox-воркер и блокируется до сигнала
// завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	defer a.appCancel()

	a.outboxWorker.Start(a.appCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	a.appCancel()
	a.outboxWorker.Stop()
	a.logger.Infof("Outbox worker stopped")

	done := make(chan error, 1)
	go func() {
		done <- a.imagesInfra.WaitForCleanup(shutdownCtx)
	}()

	select {
	case err := <-done:
		if err != nil {
			a.logger.Warnf("MinIO cleanup error: %v", err)
		} else {
			a.logger.Infof("MinIO cleanup completed")
		}
	case <-time.After(5 * time.Second): // локальный таймаут ожидания cleanup
		a.logger.Warnf("MinIO cleanup did not finish before shutdown, some temporary objects may remain")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
