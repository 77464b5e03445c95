package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"internship-tracker/internal/apperror"
	"internship-tracker/internal/service"
)

// CreateInternshipRequest is the payload for creating an internship.
type CreateInternshipRequest struct {
	Company    string  `json:"company" validate:"required"`
	Position   string  `json:"position"`
	TotalHours float64 `json:"total_hours" validate:"gt=0"`
	StartDate  string  `json:"start_date" validate:"required"`
	EndDate    string  `json:"end_date" validate:"required"`
}

// UpdateInternshipRequest is a partial header edit; absent fields are kept.
type UpdateInternshipRequest struct {
	Company    *string  `json:"company"`
	Position   *string  `json:"position"`
	TotalHours *float64 `json:"total_hours" validate:"omitempty,gt=0"`
	StartDate  *string  `json:"start_date"`
	EndDate    *string  `json:"end_date"`
}

// ListInternships returns all of the caller's internships as snapshots.
func (h *Handler) ListInternships(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.internships.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.log.Error("list internships failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to load internships")
		return
	}
	h.writeJSON(w, http.StatusOK, snapshots)
}

// CreateInternship creates an internship with zero completed hours.
func (h *Handler) CreateInternship(w http.ResponseWriter, r *http.Request) {
	var req CreateInternshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, apperror.CustomValidationError(err))
		return
	}

	snapshot, err := h.internships.Create(r.Context(), userIDFrom(r.Context()), service.InternshipInput{
		Company:    req.Company,
		Position:   req.Position,
		TotalHours: req.TotalHours,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusCreated, snapshot)
}

// UpdateInternship applies a partial header edit.
func (h *Handler) UpdateInternship(w http.ResponseWriter, r *http.Request) {
	var req UpdateInternshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, apperror.CustomValidationError(err))
		return
	}

	snapshot, err := h.internships.Update(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"), service.InternshipUpdate{
		Company:    req.Company,
		Position:   req.Position,
		TotalHours: req.TotalHours,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeError(w, http.StatusNotFound, "internship not found")
			return
		}
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

// DeleteInternship removes an internship and all of its logs.
func (h *Handler) DeleteInternship(w http.ResponseWriter, r *http.Request) {
	err := h.internships.Delete(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeError(w, http.StatusNotFound, "internship not found")
			return
		}
		h.log.Error("delete internship failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to delete internship")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
