package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/auth"
	apierrors "github.com/pribylovaa/chirper/internal/errors"
	"github.com/pribylovaa/chirper/internal/models"
	logctx "github.com/pribylovaa/chirper/pkg/log"
)

// TokenVerifier проверяет access-токен. Реализуется auth.Manager.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*models.AccessClaims, error)
}

type claimsKey struct{}

// WithClaims кладёт claims в контекст.
func WithClaims(ctx context.Context, c *models.AccessClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFrom возвращает claims аутентифицированного запроса.
func ClaimsFrom(ctx context.Context) (*models.AccessClaims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*models.AccessClaims)
	return c, ok && c != nil
}

// ViewerID возвращает id профиля из claims либо uuid.Nil для анонима.
func ViewerID(ctx context.Context) uuid.UUID {
	if c, ok := ClaimsFrom(ctx); ok {
		return c.ProfileID
	}

	return uuid.Nil
}

// RequireAuth пропускает только запросы с валидным Bearer access-токеном.
// Нет токена — 401 authentication_required, невалидный — 401 invalid_token.
func RequireAuth(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.ExtractBearerToken(r.Header.Get("Authorization"))
			if !ok {
				apierrors.WriteError(w, r, apierrors.ErrAuthRequired)
				return
			}

			claims, err := v.VerifyAccessToken(token)
			if err != nil {
				logctx.From(r.Context()).Debug("access token rejected", "path", r.URL.Path)
				apierrors.WriteError(w, r, apierrors.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(authenticated(r.Context(), claims)))
		})
	}
}

// OptionalAuth прикрепляет claims, если токен валиден; иначе запрос идёт анонимно.
func OptionalAuth(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := auth.ExtractBearerToken(r.Header.Get("Authorization")); ok {
				if claims, err := v.VerifyAccessToken(token); err == nil {
					r = r.WithContext(authenticated(r.Context(), claims))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func authenticated(ctx context.Context, c *models.AccessClaims) context.Context {
	ctx = WithClaims(ctx, c)
	return logctx.With(ctx, "profile_id", c.ProfileID.String())
}
