package service

import (
	"context"

	"internship-tracker/internal/model"
)

// UserStore is the persistence surface for accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// InternshipStore is the persistence surface for internship headers.
type InternshipStore interface {
	Create(ctx context.Context, internship *model.Internship) error
	ListByUser(ctx context.Context, userID string) ([]model.Internship, error)
	FindByID(ctx context.Context, userID, id string) (*model.Internship, error)
	UpdateFields(ctx context.Context, userID, id string, fields map[string]interface{}) error
	SetCompletedHours(ctx context.Context, id string, hours float64) error
	ListAll(ctx context.Context) ([]model.Internship, error)
	Delete(ctx context.Context, userID, id string) error
}

// WorkLogStore is the persistence surface for per-date log rows.
type WorkLogStore interface {
	Upsert(ctx context.Context, internshipID, logDate string, hours float64, notes string) error
	Delete(ctx context.Context, internshipID, logDate string) error
	ListByInternship(ctx context.Context, internshipID string) ([]model.WorkLog, error)
	SumHours(ctx context.Context, internshipID string) (float64, error)
}
