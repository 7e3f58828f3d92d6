package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultPositionMaxAge is how long a courier position is kept without a fresh report.
const DefaultPositionMaxAge = time.Hour

type positionEvictor interface {
	Evict(ctx context.Context, olderThan time.Time) (int, error)
}

// PositionEvictionJob drops courier positions that have not been refreshed for maxAge.
// Runs at the start of every minute.
type PositionEvictionJob struct {
	tracker positionEvictor
	maxAge  time.Duration
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewPositionEvictionJob(tracker positionEvictor, maxAge time.Duration, logger *slog.Logger) *PositionEvictionJob {
	if maxAge <= 0 {
		maxAge = DefaultPositionMaxAge
	}

	return &PositionEvictionJob{
		tracker: tracker,
		maxAge:  maxAge,
		now:     time.Now,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "position_eviction_job"),
	}
}

// Start schedules the job.
func (j *PositionEvictionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Position eviction job started (running every minute)",
		"max_age", j.maxAge.String(),
	)
	return nil
}

// Stop stops the job and waits for a running eviction to finish.
func (j *PositionEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Position eviction job stopped")
}

func (j *PositionEvictionJob) run(ctx context.Context) {
	evicted, err := j.tracker.Evict(ctx, j.now().Add(-j.maxAge))
	if err != nil {
		j.logger.ErrorContext(ctx, "Position eviction failed", "error", err)
		return
	}

	if evicted > 0 {
		j.logger.DebugContext(ctx, "Evicted stale courier positions", "count", evicted)
	}
}
