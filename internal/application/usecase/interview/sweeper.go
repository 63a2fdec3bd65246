package interview

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/domain/interview"
	"github.com/recruai/platform-api/pkg/logger"
)

// Sweeper periodically marks past scheduled interviews completed. It runs
// beside the HTTP server and shares nothing with the request path except the
// repository.
type Sweeper struct {
	repo     interview.Repository
	interval time.Duration
	logger   logger.Logger
}

func NewSweeper(repo interview.Repository, interval time.Duration, log logger.Logger) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Sweeper{
		repo:     repo,
		interval: interval,
		logger:   log,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. The sweep is
// a single idempotent UPDATE, so overlapping or restarted runs are harmless.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Interview sweeper started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Interview sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

func (s *Sweeper) SweepOnce(ctx context.Context) {
	completed, err := s.repo.CompleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("Interview sweep failed", err)
		return
	}
	if completed > 0 {
		s.logger.Info("Marked expired interviews completed", zap.Int64("count", completed))
	}
}
