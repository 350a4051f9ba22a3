package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type bookingReloader interface {
	Reload(ctx context.Context) error
}

// Scheduler periodically refreshes rooms and bookings from the backend.
type Scheduler struct {
	bookingService bookingReloader
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingReloader,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	start := time.Now()
	if err := s.bookingService.Reload(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("periodic reload failed",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("periodic reload done",
		logger.Duration("took", time.Since(start)),
	)
}
