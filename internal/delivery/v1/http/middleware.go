package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/e"
)

type ctxKey string

const (
	identityCtxKey  ctxKey = "identity"
	cartOwnerCtxKey ctxKey = "cartOwner"
)

// guestCartCookie — анонимный токен корзины. Выдаётся при первом обращении
// к корзине без авторизации, чтобы корзина переживала перезапуск браузера.
const guestCartCookie = "cart_token"

// authenticate пытается аутентифицировать запрос по Bearer-токену.
// Без токена запрос идёт дальше анонимно, ошибки токена — 401.
func (r *Router) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		header := req.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, req)
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			WriteError(w, e.ErrUnauthorized)
			return
		}

		identity, err := r.authUC.Authenticate(req.Context(), raw)
		if err != nil {
			WriteError(w, err)
			return
		}

		ctx := context.WithValue(req.Context(), identityCtxKey, identity)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// requireAuth пропускает только аутентифицированные запросы.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if identityFrom(req.Context()) == nil {
			WriteError(w, e.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, req)
	})
}

// requireAdmin пропускает только запросы с ролью admin.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		identity := identityFrom(req.Context())
		if identity == nil {
			WriteError(w, e.ErrUnauthorized)
			return
		}
		if identity.Role != domain.RoleAdmin {
			WriteError(w, e.ErrForbidden)
			return
		}

		next.ServeHTTP(w, req)
	})
}

// resolveCartOwner вычисляет ключ владельца корзины: профиль для
// авторизованных, cookie-токен для гостей. Отсутствующая cookie выдаётся здесь же.
func resolveCartOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var owner string

		if identity := identityFrom(req.Context()); identity != nil {
			owner = fmt.Sprintf("profile:%d", identity.ProfileID)
		} else if cookie, err := req.Cookie(guestCartCookie); err == nil && cookie.Value != "" {
			owner = fmt.Sprintf("guest:%s", cookie.Value)
		} else {
			token := uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     guestCartCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   int((30 * 24 * 3600)),
			})
			owner = fmt.Sprintf("guest:%s", token)
		}

		ctx := context.WithValue(req.Context(), cartOwnerCtxKey, owner)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func identityFrom(ctx context.Context) *usecase.Identity {
	identity, _ := ctx.Value(identityCtxKey).(*usecase.Identity)
	return identity
}

func cartOwnerFrom(ctx context.Context) string {
	owner, _ := ctx.Value(cartOwnerCtxKey).(string)
	return owner
}
