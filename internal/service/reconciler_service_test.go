package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"internship-tracker/internal/model"
)

func TestReconcileAllHealsOnlyDriftedRows(t *testing.T) {
	updates := map[string]float64{}

	internships := &mockInternshipStore{
		listAllFunc: func(_ context.Context) ([]model.Internship, error) {
			return []model.Internship{
				{ID: "ok", CompletedHours: 10},
				{ID: "drifted", CompletedHours: 12},
			}, nil
		},
		setCompletedHoursFunc: func(_ context.Context, id string, hours float64) error {
			updates[id] = hours
			return nil
		},
	}
	logs := &mockWorkLogStore{
		sumHoursFunc: func(_ context.Context, internshipID string) (float64, error) {
			return 10, nil
		},
	}

	svc := NewReconcilerService(internships, logs, zap.NewNop())
	require.NoError(t, svc.ReconcileAll(context.Background()))

	assert.NotContains(t, updates, "ok")
	assert.Equal(t, 10.0, updates["drifted"])
}

func TestReconcileAllRunsTwiceWithSameResult(t *testing.T) {
	writes := 0

	stored := 7.0
	internships := &mockInternshipStore{
		listAllFunc: func(_ context.Context) ([]model.Internship, error) {
			return []model.Internship{{ID: "a", CompletedHours: stored}}, nil
		},
		setCompletedHoursFunc: func(_ context.Context, _ string, hours float64) error {
			writes++
			stored = hours
			return nil
		},
	}
	logs := &mockWorkLogStore{
		sumHoursFunc: func(_ context.Context, _ string) (float64, error) { return 9.5, nil },
	}

	svc := NewReconcilerService(internships, logs, zap.NewNop())
	require.NoError(t, svc.ReconcileAll(context.Background()))
	require.NoError(t, svc.ReconcileAll(context.Background()))

	assert.Equal(t, 1, writes, "second sweep found nothing to heal")
	assert.Equal(t, 9.5, stored)
}
