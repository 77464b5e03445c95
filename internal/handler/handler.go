// Package handler contains the HTTP surface of the tracker API.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"internship-tracker/internal/model"
	"internship-tracker/internal/service"
)

// AuthProvider registers accounts and verifies credentials.
type AuthProvider interface {
	Register(ctx context.Context, email, password string) (string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
}

// InternshipManager covers internship CRUD and snapshot reads.
type InternshipManager interface {
	Create(ctx context.Context, userID string, input service.InternshipInput) (model.Snapshot, error)
	List(ctx context.Context, userID string) ([]model.Snapshot, error)
	Update(ctx context.Context, userID, id string, update service.InternshipUpdate) (model.Snapshot, error)
	Delete(ctx context.Context, userID, id string) error
}

// WorkLogManager saves and deletes per-date logs.
type WorkLogManager interface {
	SaveLog(ctx context.Context, userID, internshipID, dateKey string, hours float64, notes string) (model.Snapshot, error)
	DeleteLog(ctx context.Context, userID, internshipID, dateKey string) (model.Snapshot, error)
}

// Exporter renders a PDF report.
type Exporter interface {
	Export(ctx context.Context, userID, internshipID string, opts service.ExportOptions) ([]byte, error)
}

// TokenParser verifies a bearer token and returns the user id.
type TokenParser interface {
	Parse(token string) (string, error)
}

// Handler wires the API routes to the services.
type Handler struct {
	log         *zap.Logger
	validate    *validator.Validate
	auth        AuthProvider
	internships InternshipManager
	workLogs    WorkLogManager
	exporter    Exporter
	tokens      TokenParser
}

// New creates a new Handler instance.
func New(log *zap.Logger, v *validator.Validate, auth AuthProvider, internships InternshipManager, workLogs WorkLogManager, exporter Exporter, tokens TokenParser) *Handler {
	return &Handler{
		log:         log,
		validate:    v,
		auth:        auth,
		internships: internships,
		workLogs:    workLogs,
		exporter:    exporter,
		tokens:      tokens,
	}
}

// Routes builds the router for the whole API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", h.Healthz)
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/api/internships", h.ListInternships)
		r.Post("/api/internships", h.CreateInternship)
		r.Put("/api/internships/{id}", h.UpdateInternship)
		r.Delete("/api/internships/{id}", h.DeleteInternship)
		r.Put("/api/internships/{id}/logs/{date}", h.SaveWorkLog)
		r.Delete("/api/internships/{id}/logs/{date}", h.DeleteWorkLog)
		r.Post("/api/internships/{id}/export", h.Export)
	})

	return r
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("unable to write response stream", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
