package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/projecthub/projecthub-api/internal/core/domain"
	"github.com/projecthub/projecthub-api/internal/core/ports"
)

type recordingService struct {
	mu       sync.Mutex
	recorded []ports.ActivityInput
}

func (s *recordingService) Record(_ context.Context, input ports.ActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append(s.recorded, input)
	return nil
}

func (s *recordingService) ListByProject(context.Context, string, int) ([]domain.Activity, error) {
	return nil, nil
}

func (s *recordingService) snapshot() []ports.ActivityInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.ActivityInput(nil), s.recorded...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcherDeliversToService(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingService{}
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.ActivityInput{ProjectID: "p-1", Type: domain.ActivityProjectCreated})

	waitFor(t, func() bool { return len(svc.snapshot()) == 1 })
	got := svc.snapshot()[0]
	if got.ProjectID != "p-1" || got.Type != domain.ActivityProjectCreated {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestDispatcherPreservesPerProjectOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	const n = 50
	for i := 0; i < n; i++ {
		msg := string(rune('a' + i%26))
		d.Enqueue(ports.ActivityInput{ProjectID: "p-ordered", Message: msg, Timestamp: time.Unix(int64(i), 0)})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == n })

	recorded := svc.snapshot()
	for i := 1; i < len(recorded); i++ {
		if !recorded[i].Timestamp.After(recorded[i-1].Timestamp) {
			t.Fatalf("per-project order broken at %d: %v then %v", i, recorded[i-1].Timestamp, recorded[i].Timestamp)
		}
	}
}

func TestDispatcherShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, &recordingService{}, zerolog.Nop())
	first := d.shardIndex("p-1")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("p-1"); got != first {
			t.Fatalf("shard index changed: %d then %d", first, got)
		}
	}
}

func TestDispatcherDefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
