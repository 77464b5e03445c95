package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"internship-tracker/internal/apperror"
)

// SaveWorkLogRequest is the payload for logging hours on one date.
// Zero hours deletes the date's log.
type SaveWorkLogRequest struct {
	Hours float64 `json:"hours" validate:"gte=0"`
	Notes string  `json:"notes"`
}

// SaveWorkLog records hours for the date in the URL and returns the
// reconciled snapshot.
func (h *Handler) SaveWorkLog(w http.ResponseWriter, r *http.Request) {
	var req SaveWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, apperror.CustomValidationError(err))
		return
	}

	snapshot, err := h.workLogs.SaveLog(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "id"), chi.URLParam(r, "date"), req.Hours, req.Notes)
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

// DeleteWorkLog removes the date's log and returns the reconciled snapshot.
func (h *Handler) DeleteWorkLog(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.workLogs.DeleteLog(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "id"), chi.URLParam(r, "date"))
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
