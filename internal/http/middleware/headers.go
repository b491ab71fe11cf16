package middleware

import (
	"mime"
	"net/http"

	apierrors "github.com/pribylovaa/chirper/internal/errors"
)

// SecurityHeaders выставляет базовые заголовки защиты браузера.
func SecurityHeaders() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")
			next.ServeHTTP(w, r)
		})
	}
}

// RequireJSON отклоняет запросы с телом не в application/json (415).
// Запросы без тела пропускаются.
func RequireJSON() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength == 0 {
				next.ServeHTTP(w, r)
				return
			}

			mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mt != "application/json" {
				apierrors.WriteError(w, r, apierrors.ErrUnsupportedMediaType)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
