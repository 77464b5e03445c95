package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// ReconcilerService periodically re-derives every internship's
// completed_hours from its work-log rows. Running it is idempotent; it
// only writes when the stored aggregate has drifted.
type ReconcilerService struct {
	internships InternshipStore
	logs        WorkLogStore
	log         *zap.Logger
}

func NewReconcilerService(internships InternshipStore, logs WorkLogStore, log *zap.Logger) *ReconcilerService {
	return &ReconcilerService{internships: internships, logs: logs, log: log}
}

// ReconcileAll sweeps all internships and heals drifted aggregates.
func (s *ReconcilerService) ReconcileAll(ctx context.Context) error {
	internships, err := s.internships.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list internships: %w", err)
	}

	healed := 0
	for _, internship := range internships {
		total, err := s.logs.SumHours(ctx, internship.ID)
		if err != nil {
			return err
		}
		if math.Abs(internship.CompletedHours-total) < 1e-9 {
			continue
		}
		if err := s.internships.SetCompletedHours(ctx, internship.ID, total); err != nil {
			return err
		}
		s.log.Warn("healed drifted aggregate",
			zap.String("internship_id", internship.ID),
			zap.Float64("stored", internship.CompletedHours),
			zap.Float64("recomputed", total))
		healed++
	}

	s.log.Info("reconciliation sweep finished",
		zap.Int("internships", len(internships)),
		zap.Int("healed", healed))
	return nil
}
