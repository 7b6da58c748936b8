package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

const msgTooManyRequests = "Too many requests, please try again later."

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	router.Use(h.withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// must be set before Route so the sub-routers inherit them
	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	router.Get("/", h.apiInfo)
	router.Get("/healthz", h.health)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/auth", func(r chi.Router) {
		if h.cfg.AuthRateLimit > 0 {
			r.Use(httprate.Limit(h.cfg.AuthRateLimit, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByRealIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					utils.WriteJSON(w, models.ErrorResponse{Error: msgTooManyRequests}, http.StatusTooManyRequests)
				}),
			))
		}
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/products", func(r chi.Router) {
		// public, but favorite flags need the viewer
		r.With(h.optionalAuth).Get("/", h.listProducts)
		r.With(h.optionalAuth).Get("/{id}", h.getProduct)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})
	})

	router.Route("/favorites", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listFavorites)
		r.Post("/{productId}", h.addFavorite)
		r.Delete("/{productId}", h.removeFavorite)
	})

	return router
}
