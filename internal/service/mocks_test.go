package service

import (
	"context"
	"errors"

	"internship-tracker/internal/model"
)

// Mock stores in the func-field style: tests fill in only the calls they
// expect, everything else fails loudly.

type mockInternshipStore struct {
	createFunc            func(ctx context.Context, internship *model.Internship) error
	listByUserFunc        func(ctx context.Context, userID string) ([]model.Internship, error)
	findByIDFunc          func(ctx context.Context, userID, id string) (*model.Internship, error)
	updateFieldsFunc      func(ctx context.Context, userID, id string, fields map[string]interface{}) error
	setCompletedHoursFunc func(ctx context.Context, id string, hours float64) error
	listAllFunc           func(ctx context.Context) ([]model.Internship, error)
	deleteFunc            func(ctx context.Context, userID, id string) error
}

func (m *mockInternshipStore) Create(ctx context.Context, internship *model.Internship) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, internship)
	}
	return errors.New("not implemented")
}

func (m *mockInternshipStore) ListByUser(ctx context.Context, userID string) ([]model.Internship, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInternshipStore) FindByID(ctx context.Context, userID, id string) (*model.Internship, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, userID, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInternshipStore) UpdateFields(ctx context.Context, userID, id string, fields map[string]interface{}) error {
	if m.updateFieldsFunc != nil {
		return m.updateFieldsFunc(ctx, userID, id, fields)
	}
	return errors.New("not implemented")
}

func (m *mockInternshipStore) SetCompletedHours(ctx context.Context, id string, hours float64) error {
	if m.setCompletedHoursFunc != nil {
		return m.setCompletedHoursFunc(ctx, id, hours)
	}
	return errors.New("not implemented")
}

func (m *mockInternshipStore) ListAll(ctx context.Context) ([]model.Internship, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInternshipStore) Delete(ctx context.Context, userID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, id)
	}
	return errors.New("not implemented")
}

type mockWorkLogStore struct {
	upsertFunc           func(ctx context.Context, internshipID, logDate string, hours float64, notes string) error
	deleteFunc           func(ctx context.Context, internshipID, logDate string) error
	listByInternshipFunc func(ctx context.Context, internshipID string) ([]model.WorkLog, error)
	sumHoursFunc         func(ctx context.Context, internshipID string) (float64, error)
}

func (m *mockWorkLogStore) Upsert(ctx context.Context, internshipID, logDate string, hours float64, notes string) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, internshipID, logDate, hours, notes)
	}
	return errors.New("not implemented")
}

func (m *mockWorkLogStore) Delete(ctx context.Context, internshipID, logDate string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, internshipID, logDate)
	}
	return errors.New("not implemented")
}

func (m *mockWorkLogStore) ListByInternship(ctx context.Context, internshipID string) ([]model.WorkLog, error) {
	if m.listByInternshipFunc != nil {
		return m.listByInternshipFunc(ctx, internshipID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockWorkLogStore) SumHours(ctx context.Context, internshipID string) (float64, error) {
	if m.sumHoursFunc != nil {
		return m.sumHoursFunc(ctx, internshipID)
	}
	return 0, errors.New("not implemented")
}

type mockUserStore struct {
	createFunc      func(ctx context.Context, user *model.User) error
	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}
