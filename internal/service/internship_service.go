package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"internship-tracker/internal/model"
)

// InternshipInput represents data required to create an internship.
type InternshipInput struct {
	Company    string
	Position   string
	TotalHours float64
	StartDate  string
	EndDate    string
}

// InternshipUpdate carries a partial header edit; nil fields stay as-is.
type InternshipUpdate struct {
	Company    *string
	Position   *string
	TotalHours *float64
	StartDate  *string
	EndDate    *string
}

// InternshipService wraps internship CRUD and snapshot assembly.
type InternshipService struct {
	internships InternshipStore
	logs        WorkLogStore
}

func NewInternshipService(internships InternshipStore, logs WorkLogStore) *InternshipService {
	return &InternshipService{internships: internships, logs: logs}
}

func (s *InternshipService) Create(ctx context.Context, userID string, input InternshipInput) (model.Snapshot, error) {
	if input.Company == "" {
		return model.Snapshot{}, fmt.Errorf("company is required")
	}
	if input.TotalHours <= 0 {
		return model.Snapshot{}, fmt.Errorf("total hours must be positive")
	}
	if err := model.ValidateDateKey(input.StartDate); err != nil {
		return model.Snapshot{}, err
	}
	if err := model.ValidateDateKey(input.EndDate); err != nil {
		return model.Snapshot{}, err
	}

	internship := model.Internship{
		ID:             uuid.NewString(),
		UserID:         userID,
		Company:        input.Company,
		Position:       input.Position,
		TotalHours:     input.TotalHours,
		CompletedHours: 0,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
	}
	if err := s.internships.Create(ctx, &internship); err != nil {
		return model.Snapshot{}, err
	}

	return model.NewSnapshot(internship, nil), nil
}

// List returns snapshots for every internship owned by the user, newest
// first, with logs loaded and aggregates derived from the rows.
func (s *InternshipService) List(ctx context.Context, userID string) ([]model.Snapshot, error) {
	internships, err := s.internships.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]model.Snapshot, 0, len(internships))
	for _, internship := range internships {
		logs, err := s.logs.ListByInternship(ctx, internship.ID)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, model.NewSnapshot(internship, logs))
	}
	return snapshots, nil
}

func (s *InternshipService) Get(ctx context.Context, userID, id string) (model.Snapshot, error) {
	internship, err := s.internships.FindByID(ctx, userID, id)
	if err != nil {
		return model.Snapshot{}, err
	}
	logs, err := s.logs.ListByInternship(ctx, internship.ID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.NewSnapshot(*internship, logs), nil
}

func (s *InternshipService) Update(ctx context.Context, userID, id string, update InternshipUpdate) (model.Snapshot, error) {
	fields := map[string]interface{}{}
	if update.Company != nil {
		fields["company"] = *update.Company
	}
	if update.Position != nil {
		fields["position"] = *update.Position
	}
	if update.TotalHours != nil {
		if *update.TotalHours <= 0 {
			return model.Snapshot{}, fmt.Errorf("total hours must be positive")
		}
		fields["total_hours"] = *update.TotalHours
	}
	if update.StartDate != nil {
		if err := model.ValidateDateKey(*update.StartDate); err != nil {
			return model.Snapshot{}, err
		}
		fields["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		if err := model.ValidateDateKey(*update.EndDate); err != nil {
			return model.Snapshot{}, err
		}
		fields["end_date"] = *update.EndDate
	}

	if err := s.internships.UpdateFields(ctx, userID, id, fields); err != nil {
		return model.Snapshot{}, err
	}
	return s.Get(ctx, userID, id)
}

func (s *InternshipService) Delete(ctx context.Context, userID, id string) error {
	return s.internships.Delete(ctx, userID, id)
}
