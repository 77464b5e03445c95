package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"internship-tracker/internal/model"
)

// InternshipRepository handles CRUD for internships. Every query is scoped
// by the owning user's id.
type InternshipRepository struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) *InternshipRepository {
	return &InternshipRepository{db: db}
}

func (r *InternshipRepository) Create(ctx context.Context, internship *model.Internship) error {
	if err := r.db.WithContext(ctx).Create(internship).Error; err != nil {
		return fmt.Errorf("create internship: %w", err)
	}
	return nil
}

func (r *InternshipRepository) ListByUser(ctx context.Context, userID string) ([]model.Internship, error) {
	var internships []model.Internship
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&internships).Error; err != nil {
		return nil, err
	}
	return internships, nil
}

func (r *InternshipRepository) FindByID(ctx context.Context, userID, id string) (*model.Internship, error) {
	var internship model.Internship
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).
		First(&internship).Error; err != nil {
		return nil, err
	}
	return &internship, nil
}

// UpdateFields applies a partial header update (company, position, target,
// dates). Aggregate columns are not touched here.
func (r *InternshipRepository) UpdateFields(ctx context.Context, userID, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&model.Internship{}).
		Where("user_id = ? AND id = ?", userID, id).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("update internship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetCompletedHours overwrites the stored aggregate with a freshly
// recomputed total.
func (r *InternshipRepository) SetCompletedHours(ctx context.Context, id string, hours float64) error {
	if err := r.db.WithContext(ctx).Model(&model.Internship{}).
		Where("id = ?", id).
		Update("completed_hours", hours).Error; err != nil {
		return fmt.Errorf("set completed hours: %w", err)
	}
	return nil
}

func (r *InternshipRepository) ListAll(ctx context.Context) ([]model.Internship, error) {
	var internships []model.Internship
	if err := r.db.WithContext(ctx).Find(&internships).Error; err != nil {
		return nil, err
	}
	return internships, nil
}

// Delete removes an internship and all of its work logs.
func (r *InternshipRepository) Delete(ctx context.Context, userID, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var internship model.Internship
		if err := tx.Where("user_id = ? AND id = ?", userID, id).First(&internship).Error; err != nil {
			return err
		}
		if err := tx.Where("internship_id = ?", id).Delete(&model.WorkLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&internship).Error
	})
	if err != nil {
		return fmt.Errorf("delete internship: %w", err)
	}
	return nil
}
