package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"internship-tracker/internal/model"
)

// WorkLogRepository handles per-date work log rows. A (internship, date)
// pair maps to at most one row.
type WorkLogRepository struct {
	db *gorm.DB
}

func NewWorkLogRepository(db *gorm.DB) *WorkLogRepository {
	return &WorkLogRepository{db: db}
}

// Upsert updates the log for (internshipID, logDate) if it exists,
// otherwise inserts a new row.
func (r *WorkLogRepository) Upsert(ctx context.Context, internshipID, logDate string, hours float64, notes string) error {
	db := r.db.WithContext(ctx)

	var log model.WorkLog
	err := db.Where("internship_id = ? AND log_date = ?", internshipID, logDate).First(&log).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{"hours": hours, "notes": notes}
		if err := db.Model(&log).Updates(updates).Error; err != nil {
			return fmt.Errorf("update work log: %w", err)
		}
		return nil
	case err == gorm.ErrRecordNotFound:
		log = model.WorkLog{
			ID:           uuid.NewString(),
			InternshipID: internshipID,
			LogDate:      logDate,
			Hours:        hours,
			Notes:        notes,
		}
		if err := db.Create(&log).Error; err != nil {
			return fmt.Errorf("create work log: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("find work log: %w", err)
	}
}

// Delete removes the log for one date. Deleting an absent date is a no-op.
func (r *WorkLogRepository) Delete(ctx context.Context, internshipID, logDate string) error {
	if err := r.db.WithContext(ctx).
		Where("internship_id = ? AND log_date = ?", internshipID, logDate).
		Delete(&model.WorkLog{}).Error; err != nil {
		return fmt.Errorf("delete work log: %w", err)
	}
	return nil
}

func (r *WorkLogRepository) ListByInternship(ctx context.Context, internshipID string) ([]model.WorkLog, error) {
	var logs []model.WorkLog
	if err := r.db.WithContext(ctx).Where("internship_id = ?", internshipID).
		Order("log_date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// SumHours aggregates hours across all of an internship's rows. This is
// the ground truth the completed_hours column is reconciled against.
func (r *WorkLogRepository) SumHours(ctx context.Context, internshipID string) (float64, error) {
	var total float64
	if err := r.db.WithContext(ctx).Model(&model.WorkLog{}).
		Where("internship_id = ?", internshipID).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("sum work log hours: %w", err)
	}
	return total, nil
}
