package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type orphanSweeper interface {
	SweepOrphans(ctx context.Context, limit int) (int, error)
}

// Scheduler periodically retries deletion of evidence left behind by failed admissions.
type Scheduler struct {
	sweeper   orphanSweeper
	interval  time.Duration
	batchSize int
	logger    logger.Logger
}

func New(
	sweeper orphanSweeper,
	interval time.Duration,
	batchSize int,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:   sweeper,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("orphan sweeper started",
		logger.Duration("interval", s.interval),
		logger.Int("batch_size", s.batchSize),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("orphan sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	removed, err := s.sweeper.SweepOrphans(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("failed to sweep orphaned uploads",
			logger.String("error", err.Error()),
		)
		return
	}

	if removed > 0 {
		s.logger.Info("orphaned uploads removed",
			logger.Int("count", removed),
		)
	}
}
