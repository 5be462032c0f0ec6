package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bribank/origination/pkg/auth"
)

// ServerDeps carries everything the HTTP server needs beyond the handlers.
type ServerDeps struct {
	Handler        *Handler
	JWTService     *auth.JWTService
	Pool           *pgxpool.Pool
	MetricsHandler http.Handler
}

// NewRouter builds the chi router with the full middleware stack and all
// route groups.
func NewRouter(deps ServerDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/health", healthHandler(deps.Pool))
	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	h := deps.Handler
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(deps.JWTService, nil))

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", h.CreateRequest)
			r.Get("/", h.SearchRequests)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetRequest)
				r.Delete("/", h.DeleteRequest)
				r.Put("/terms", h.UpdateTerms)
				r.Post("/submit", h.SubmitRequest)
				r.Post("/forward", h.ForwardToValidation)
				r.Post("/validate", h.ValidateRequest)
				r.Post("/reject", h.RejectRequest)
				r.Post("/restore", h.RestoreRequest)
				r.Post("/schedule", h.GenerateSchedule)
				r.Get("/schedule/export", h.ExportSchedule)
				r.Post("/documents", h.UploadDocument)
				r.Get("/documents", h.ListDocuments)
				r.Get("/documents/archive", h.DownloadDocumentBundle)
				r.Get("/documents/{docID}", h.DownloadDocument)
			})
		})

		r.Route("/persons", func(r chi.Router) {
			r.Post("/", h.RegisterPerson)
			r.Get("/", h.SearchPersons)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/loan-types", h.ListLoanTypes)
			r.Get("/durations", h.ListDurations)
			r.Get("/cadences", h.ListCadences)
			r.Get("/document-types", h.ListDocumentTypes)
		})
	})

	return r
}

func healthHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
