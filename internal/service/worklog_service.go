package service

import (
	"context"

	"go.uber.org/zap"

	"internship-tracker/internal/model"
)

// WorkLogService applies work-log saves and deletes and keeps the stored
// completed_hours aggregate reconciled with the log rows.
//
// The store is authoritative: after every durable write the aggregate is
// recomputed as SUM(hours) over the internship's rows rather than patched
// incrementally, so a stale cached total or a write from another session
// can never leave the column drifted.
type WorkLogService struct {
	internships InternshipStore
	logs        WorkLogStore
	log         *zap.Logger
}

func NewWorkLogService(internships InternshipStore, logs WorkLogStore, log *zap.Logger) *WorkLogService {
	return &WorkLogService{internships: internships, logs: logs, log: log}
}

// SaveLog records hours for one date and returns the reconciled snapshot.
// Zero hours deletes the date's log instead of keeping a zero row.
func (s *WorkLogService) SaveLog(ctx context.Context, userID, internshipID, dateKey string, hours float64, notes string) (model.Snapshot, error) {
	if err := model.ValidateDateKey(dateKey); err != nil {
		return model.Snapshot{}, err
	}
	hours = model.SanitizeHours(hours)

	internship, err := s.internships.FindByID(ctx, userID, internshipID)
	if err != nil {
		return model.Snapshot{}, err
	}

	if hours > 0 {
		err = s.logs.Upsert(ctx, internship.ID, dateKey, hours, notes)
	} else {
		err = s.logs.Delete(ctx, internship.ID, dateKey)
	}
	if err != nil {
		return model.Snapshot{}, err
	}

	return s.reconcile(ctx, internship)
}

// DeleteLog removes one date's log and returns the reconciled snapshot.
func (s *WorkLogService) DeleteLog(ctx context.Context, userID, internshipID, dateKey string) (model.Snapshot, error) {
	return s.SaveLog(ctx, userID, internshipID, dateKey, 0, "")
}

// reconcile overwrites the stored aggregate with the exact sum over the
// internship's rows and rebuilds the snapshot from them.
func (s *WorkLogService) reconcile(ctx context.Context, internship *model.Internship) (model.Snapshot, error) {
	total, err := s.logs.SumHours(ctx, internship.ID)
	if err != nil {
		return model.Snapshot{}, err
	}
	if err := s.internships.SetCompletedHours(ctx, internship.ID, total); err != nil {
		return model.Snapshot{}, err
	}

	logs, err := s.logs.ListByInternship(ctx, internship.ID)
	if err != nil {
		return model.Snapshot{}, err
	}

	s.log.Debug("reconciled internship",
		zap.String("internship_id", internship.ID),
		zap.Float64("completed_hours", total),
		zap.Int("log_count", len(logs)))

	updated := *internship
	updated.CompletedHours = total
	return model.NewSnapshot(updated, logs), nil
}
