package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/memory"
)

type gaugeRecorder struct {
	mu      sync.Mutex
	calls   int
	active  map[string]int
	deleted int
}

func (g *gaugeRecorder) publish(active map[string]int, deleted int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.active = active
	g.deleted = deleted
}

func (g *gaugeRecorder) snapshot() (int, map[string]int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls, g.active, g.deleted
}

func TestLeadStatsWorkerRefresh(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLeadRepository()

	for _, s := range []entity.LeadStatus{entity.StatusHot, entity.StatusHot, entity.StatusProgress} {
		_, err := repo.Create(ctx, entity.NewLead{Name: "x", Status: s})
		require.NoError(t, err)
	}
	gone, err := repo.Create(ctx, entity.NewLead{Name: "gone", Status: entity.StatusDisqualified})
	require.NoError(t, err)
	require.NoError(t, repo.SoftDelete(ctx, gone.ID))

	rec := &gaugeRecorder{}
	w := NewLeadStatsWorker(repo, time.Hour, nil)
	w.publish = rec.publish

	w.refresh(ctx)

	calls, active, deleted := rec.snapshot()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, active["HOT"])
	assert.Equal(t, 1, active["PROGRESS"])
	assert.Zero(t, active["DISQUALIFIED"])
	assert.Equal(t, 1, deleted)
}

func TestLeadStatsWorkerStopsOnCancel(t *testing.T) {
	rec := &gaugeRecorder{}
	w := NewLeadStatsWorker(memory.NewLeadRepository(), 10*time.Millisecond, nil)
	w.publish = rec.publish

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		calls, _, _ := rec.snapshot()
		return calls >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
