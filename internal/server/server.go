// Package server exposes the audit pipeline over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dtnitsch/shopaudit/internal/audit"
	"github.com/dtnitsch/shopaudit/models"
)

type Server struct {
	service *audit.Service
	logger  *slog.Logger
}

func New(service *audit.Service, logger *slog.Logger) *Server {
	return &Server{service: service, logger: logger}
}

// Routes builds the router: POST /audit and GET /health.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(corsMiddleware)

	r.Post("/audit", s.handleAudit)
	r.Get("/health", s.handleHealth)
	return r
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	var req models.AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Website URL required",
		})
		return
	}

	report, err := s.service.Run(r.Context(), req)
	if err != nil {
		if errors.Is(err, audit.ErrMissingWebsiteURL) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "Website URL required",
			})
			return
		}
		s.logger.Error("audit request failed", "url", req.WebsiteURL, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   err.Error(),
			"details": "Failed to complete audit. Please check the URL and try again.",
		})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Backend is running",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// corsMiddleware allows browser frontends on any origin to call the
// API directly.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}
