package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	apierrors "github.com/pribylovaa/chirper/internal/errors"
	"github.com/pribylovaa/chirper/pkg/log"
)

// Timeout ограничивает обработку запроса сроком d (существующий deadline
// не продлевается). Если обработчик упёрся в срок и ничего не ответил,
// клиент получает 504 deadline_exceeded. d <= 0 отключает мидлвар.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, ok := ctx.Deadline(); !ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			if sw.status != 0 || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			log.From(ctx).Warn("request_deadline_exceeded",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			apierrors.WriteError(sw, r, context.DeadlineExceeded)
		})
	}
}
