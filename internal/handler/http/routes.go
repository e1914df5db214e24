package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(cors.Handler(h.corsOptions()))

	router.Get("/healthz", healthz)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.version)
		r.Post("/auth/register", h.register)
		r.Post("/auth/token", h.issueToken)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/user/me", h.me)
			r.Put("/user/password", h.changePassword)

			r.Route("/todos", func(r chi.Router) {
				r.Get("/", h.listTodos)
				r.Post("/", h.createTodo)
				r.Get("/{id}", h.getTodo)
				r.Put("/{id}", h.updateTodo)
				r.Delete("/{id}", h.deleteTodo)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}
