package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	apierrors "github.com/pribylovaa/chirper/internal/errors"
)

// RateLimit ограничивает число запросов с одного IP в окне window.
// requests <= 0 отключает ограничение.
func RateLimit(requests int, window time.Duration) Middleware {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	if window <= 0 {
		window = time.Minute
	}

	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			apierrors.WriteError(w, r, apierrors.ErrRateLimited)
		}),
	)
}
