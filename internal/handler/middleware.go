package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/BuzzLyutic/taskboard-api/internal/auth"
	"github.com/BuzzLyutic/taskboard-api/pkg/respond"
)

type claimsKey struct{}

// RequireAuth проверяет заголовок Authorization: Bearer <token> и кладет
// claims в контекст запроса. Любой сбой проверки — один и тот же ответ 401.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				respond.Error(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := auth.ParseToken(tokenString, secret)
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}
