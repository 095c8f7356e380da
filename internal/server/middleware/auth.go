package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки JWT токена
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				logger.WarnContext(r.Context(), "missing Authorization header")
				handlers.WriteError(logger, w, apperr.Unauthenticated("missing token"))
				return
			}

			// Ожидаем формат: "Bearer <token>"
			tokenString, ok := handlers.BearerToken(r)
			if !ok {
				logger.WarnContext(r.Context(), "invalid Authorization header format")
				handlers.WriteError(logger, w, apperr.Unauthenticated("invalid token format"))
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.WarnContext(r.Context(), "invalid access token", slog.Any("error", err))
				handlers.WriteError(logger, w, apperr.Unauthenticated("invalid token"))
				return
			}

			ctx := handlers.WithPrincipal(r.Context(), claims.PrincipalID, claims.Admin)

			logger.DebugContext(ctx, "principal authenticated",
				slog.String("principal_id", claims.PrincipalID),
				slog.Bool("admin", claims.Admin))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
