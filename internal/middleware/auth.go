package middleware

import (
	"context"
	"net/http"
)

// TokenHeader — заголовок с сессионным токеном.
const TokenHeader = "X-Token"

type contextKey string

const userIDKey contextKey = "user_id"

// TokenResolver резолвит сессионный токен в id пользователя.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// WithAuth резолвит X-Token и кладёт id пользователя в контекст запроса.
// Запросы без валидного токена проходят дальше анонимно: хендлеры,
// требующие личность, сами отвечают 401.
func WithAuth(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext достаёт id пользователя, положенный WithAuth.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
