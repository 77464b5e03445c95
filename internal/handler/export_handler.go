package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"internship-tracker/internal/apperror"
	"internship-tracker/internal/service"
)

// ExportRequest selects the range and shape of the PDF report.
type ExportRequest struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Format       string `json:"format" validate:"omitempty,oneof=summary detailed"`
	IncludeNotes bool   `json:"include_notes"`
}

// Export renders the internship's logs to a downloadable PDF.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, apperror.CustomValidationError(err))
		return
	}

	internshipID := chi.URLParam(r, "id")
	pdfBytes, err := h.exporter.Export(r.Context(), userIDFrom(r.Context()), internshipID, service.ExportOptions{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Format:       req.Format,
		IncludeNotes: req.IncludeNotes,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeError(w, http.StatusNotFound, "internship not found")
			return
		}
		h.log.Warn("export failed", zap.String("internship_id", internshipID), zap.Error(err))
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=work-log-%s.pdf", internshipID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
