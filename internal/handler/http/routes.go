package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// corsOptions lets any origin call the API from a browser.
var corsOptions = cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Content-Type"},
	ExposedHeaders: []string{traceIDHeader},
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(withLogging)
	// inside the logger so a recovered panic is logged as a 500
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(corsOptions))

	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Options("/api/register", h.preflight)

		r.Post("/api/user-login", h.userLogin)
		r.Options("/api/user-login", h.preflight)

		r.Get("/api/register-check", h.registerCheck)
		r.Options("/api/register-check", h.preflight)

		r.Get("/api/auth/google", h.googleAuthURL)

		r.Get("/api/leads", h.listLeads)
		r.Post("/api/leads", h.receiveLead)
		r.Options("/api/leads", h.preflight)

		r.Get("/api/version/", h.getServerVersion)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// preflight answers OPTIONS requests that the CORS middleware did not
// recognise as preflights, e.g. ones sent without an Origin header. They get
// the same permissive headers.
func (h *Handler) preflight(w http.ResponseWriter, r *http.Request) {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", strings.Join(corsOptions.AllowedMethods, ", "))
	header.Set("Access-Control-Allow-Headers", strings.Join(corsOptions.AllowedHeaders, ", "))
	w.WriteHeader(http.StatusOK)
}
