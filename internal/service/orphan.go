package service

import (
	"context"
	"fmt"

	"github.com/4nxiouz/thaitep-exam-booking/internal/metrics"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type OrphanService struct {
	repo    ports.OrphanRepo
	storage ports.EvidenceStorage
	logger  logger.Logger
}

func NewOrphanService(repo ports.OrphanRepo, storage ports.EvidenceStorage, logger logger.Logger) *OrphanService {
	return &OrphanService{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// SweepOrphans retries deletion of up to limit recorded orphaned uploads.
// It returns how many objects were removed.
func (s *OrphanService) SweepOrphans(ctx context.Context, limit int) (int, error) {
	orphans, err := s.repo.ListOldest(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list orphans: %w", err)
	}

	removed := 0
	for _, o := range orphans {
		if err = s.storage.Delete(ctx, o.ObjectKey); err != nil {
			metrics.OrphansSwept.WithLabelValues("failed").Inc()
			s.logger.Warn("orphan delete failed",
				logger.String("key", o.ObjectKey),
				logger.Int("attempts", o.Attempts+1),
				logger.String("error", err.Error()),
			)
			if err = s.repo.MarkAttempt(ctx, o.ID); err != nil {
				s.logger.Error("failed to mark orphan attempt",
					logger.String("orphan_id", o.ID),
					logger.String("error", err.Error()),
				)
			}
			continue
		}

		if err = s.repo.Delete(ctx, o.ID); err != nil {
			// объект уже удалён, запись будет обработана повторно
			s.logger.Error("failed to delete orphan record",
				logger.String("orphan_id", o.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		metrics.OrphansSwept.WithLabelValues("deleted").Inc()
		removed++
	}

	return removed, nil
}
