package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pribylovaa/chirper/internal/config"
	apierrors "github.com/pribylovaa/chirper/internal/errors"
	"github.com/pribylovaa/chirper/internal/http/handlers"
	"github.com/pribylovaa/chirper/internal/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.

	Verifier middleware.TokenVerifier
	Limits   config.LimitsConfig

	// AllowedOrigins — явный allow-list CORS; при AllowLocalhost любые
	// http(s)://localhost:* тоже разрешены (не-prod окружения).
	AllowedOrigins []string
	AllowLocalhost bool

	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc handlers.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),
		middleware.SecurityHeaders(),
		corsHandler(opts),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	root.NotFound(notFound)
	root.MethodNotAllowed(methodNotAllowed)

	h := handlers.New(svc, opts.Limits)

	if opts.BasePath != "" && opts.BasePath != "/" {
		sub := chi.NewRouter()
		sub.NotFound(notFound)
		sub.MethodNotAllowed(methodNotAllowed)
		registerRoutes(sub, h, opts)
		root.Mount(opts.BasePath, sub)
		// /health доступен и с корня сервера, вне базового пути.
		root.Get("/health", h.Health)
		return root
	}

	registerRoutes(root, h, opts)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, opts Options) {
	required := middleware.RequireAuth(opts.Verifier)
	optional := middleware.OptionalAuth(opts.Verifier)

	r.Use(middleware.RequireJSON())

	r.Get("/health", h.Health)

	// auth
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.AuthRateLimit, opts.AuthRateWindow))
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)
		r.Post("/auth/refresh", h.Refresh)
	})

	// chirps
	r.With(optional).Get("/chirps", h.Feed)
	r.With(required).Post("/chirps", h.CreateChirp)
	r.With(optional).Get("/chirps/profile/{profileId}", h.ChirpsByProfile)
	r.With(optional).Get("/chirps/{id}", h.GetChirp)
	r.With(required).Put("/chirps/{id}", h.UpdateChirp)
	r.With(required).Delete("/chirps/{id}", h.DeleteChirp)
	r.With(optional).Get("/chirps/{id}/likes", h.LikeStats("id"))

	// likes
	r.With(required).Post("/likes", h.ToggleLike)
	r.With(required).Delete("/likes", h.RemoveLike)
	r.With(optional).Get("/likes/chirp/{chirpId}", h.LikeStats("chirpId"))
	r.Get("/likes/chirp/{chirpId}/users", h.ChirpLikers)
	r.Get("/likes/profile/{profileId}", h.ProfileLikes)

	// profiles
	r.With(required).Get("/profiles/me", h.MyProfile)
	r.With(required).Put("/profiles/me", h.UpdateMyProfile)
	r.With(required).Post("/profiles/me/avatar/presign", h.AvatarPresign)
	r.With(required).Post("/profiles/me/avatar/confirm", h.AvatarConfirm)
	r.Get("/profiles/username/{username}", h.GetProfileByUsername)
	r.Get("/profiles/{id}", h.GetProfile)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	apierrors.WriteError(w, r, apierrors.ErrRouteNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apierrors.WriteError(w, r, apierrors.ErrMethodNotAllowed)
}

func corsHandler(opts Options) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(opts.AllowedOrigins))
	for _, o := range opts.AllowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			allowed[o] = struct{}{}
		}
	}

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			if _, ok := allowed[origin]; ok {
				return true
			}

			return opts.AllowLocalhost &&
				(strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:"))
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders:   []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
