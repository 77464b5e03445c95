package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"internship-tracker/internal/model"
)

// Export formats.
const (
	FormatSummary  = "summary"
	FormatDetailed = "detailed"
)

// ExportOptions selects what the report covers.
type ExportOptions struct {
	StartDate    string // optional, YYYY-MM-DD
	EndDate      string // optional, YYYY-MM-DD
	Format       string // summary or detailed
	IncludeNotes bool
}

// ExportService renders an internship's logs to a PDF report. It reads a
// finalized snapshot and has no side effects on the data model.
type ExportService struct {
	internships InternshipStore
	logs        WorkLogStore
}

func NewExportService(internships InternshipStore, logs WorkLogStore) *ExportService {
	return &ExportService{internships: internships, logs: logs}
}

// Export builds the PDF for one internship, limited to the optional date
// window. The window is validated before anything is read.
func (s *ExportService) Export(ctx context.Context, userID, internshipID string, opts ExportOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = FormatDetailed
	}
	if opts.Format != FormatSummary && opts.Format != FormatDetailed {
		return nil, fmt.Errorf("unknown format %q", opts.Format)
	}

	internship, err := s.internships.FindByID(ctx, userID, internshipID)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByInternship(ctx, internship.ID)
	if err != nil {
		return nil, err
	}

	snapshot := model.NewSnapshot(*internship, logs)
	summary, err := snapshot.FilterRange(opts.StartDate, opts.EndDate)
	if err != nil {
		return nil, err
	}

	return renderReport(snapshot, summary, opts)
}

func renderReport(snapshot model.Snapshot, summary model.RangeSummary, opts ExportOptions) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Internship Work Log Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Internship Work Log Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s - %s", snapshot.Company, snapshot.Position), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Period: %s to %s", snapshot.StartDate, snapshot.EndDate), "", 1, "L", false, 0, "")
	if opts.StartDate != "" || opts.EndDate != "" {
		pdf.CellFormat(0, 7, fmt.Sprintf("Exported range: %s to %s", orAll(opts.StartDate), orAll(opts.EndDate)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Days worked: %d", summary.TotalDays), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Hours in range: %.1f", summary.TotalHours), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Completed: %.1f of %.1f hours (%.0f%%)",
		snapshot.CompletedHours, snapshot.TotalHours, snapshot.ProgressPercent()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Remaining: %.1f hours", snapshot.RemainingHours()), "", 1, "L", false, 0, "")

	if opts.Format == FormatDetailed {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Daily Logs", "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 7, "Date", "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, "Hours", "1", 0, "R", false, 0, "")
		if opts.IncludeNotes {
			pdf.CellFormat(130, 7, "Notes", "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 10)
		for _, entry := range summary.Entries {
			pdf.CellFormat(35, 7, entry.Date, "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 7, fmt.Sprintf("%.1f", entry.Hours), "1", 0, "R", false, 0, "")
			if opts.IncludeNotes {
				pdf.CellFormat(130, 7, entry.Notes, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orAll(date string) string {
	if date == "" {
		return "all"
	}
	return date
}
