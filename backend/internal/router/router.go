package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/setup"
	"github.com/itchan-dev/forum/shared/config"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
	"github.com/itchan-dev/forum/shared/middleware/ratelimiter"
)

const defaultRequestTimeout = 10 * time.Second

// New creates the chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	return build(deps.Config.Public, deps.Handler, deps.AuthMiddleware.NeedAuth(), deps.WriteRateLimiter, deps.Users)
}

// build wires routes given an authentication middleware.
// A nil limiter disables write rate limiting.
func build(cfg config.Public, h *handler.Handler, needAuth func(http.Handler) http.Handler, writeLimiter *ratelimiter.UserRateLimiter, users mw.UserSaver) http.Handler {
	r := chi.NewRouter()

	requestTimeout := cfg.HTTP.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(cfg.SecureCookies))
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/threads", func(r chi.Router) {
		r.Get("/{threadId}", h.GetThread)

		// Everything else mutates content and needs a signed-in user
		r.Group(func(r chi.Router) {
			r.Use(needAuth)
			if writeLimiter != nil {
				r.Use(mw.RateLimit(writeLimiter, mw.GetUserIDFromContext))
			}
			r.Use(mw.SyncUser(users))

			r.Post("/", h.CreateThread)
			r.Route("/{threadId}/comments", func(r chi.Router) {
				r.Post("/", h.CreateComment)
				r.Delete("/{commentId}", h.DeleteComment)
				r.Post("/{commentId}/replies", h.CreateReply)
				r.Delete("/{commentId}/replies/{replyId}", h.DeleteReply)
				r.Put("/{commentId}/likes", h.ToggleLike)
			})
		})
	})

	return r
}
