package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/metrics"
)

// LeadStatsWorker refreshes the leads_active / leads_deleted gauges from
// the repository on a fixed interval.
type LeadStatsWorker struct {
	repo         entity.LeadRepository
	tickInterval time.Duration
	log          *zap.SugaredLogger
	publish      func(activeByStatus map[string]int, deleted int)
}

func NewLeadStatsWorker(repo entity.LeadRepository, interval time.Duration, log *zap.SugaredLogger) *LeadStatsWorker {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LeadStatsWorker{
		repo:         repo,
		tickInterval: interval,
		log:          log,
		publish:      metrics.SetLeadGauges,
	}
}

// Start blocks until ctx is cancelled.
func (w *LeadStatsWorker) Start(ctx context.Context) {
	w.log.Infow("lead stats worker started", "interval", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Infow("lead stats worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *LeadStatsWorker) refresh(ctx context.Context) {
	stats, err := w.repo.Stats(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Errorw("lead stats refresh failed", "err", err)
		}
		return
	}

	active := make(map[string]int, len(stats.ActiveByStatus))
	for status, n := range stats.ActiveByStatus {
		active[status.String()] = n
	}
	w.publish(active, stats.Deleted)
}
