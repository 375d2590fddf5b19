package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a4co/transportista-service/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	seen   map[string][]string
	total  int
	failOn string
	delay  time.Duration
	done   chan struct{}
	want   int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{seen: make(map[string][]string), done: make(chan struct{}), want: want}
}

func (s *recordingService) processed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *recordingService) Process(_ context.Context, e ports.TrackingEventInput) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[e.TrackingNumber] = append(s.seen[e.TrackingNumber], e.Status)
	s.total++
	if s.total == s.want {
		close(s.done)
	}
	if e.Status == s.failOn {
		return errors.New("boom")
	}
	return nil
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
}

func TestDispatcher_PreservesPerShipmentOrder(t *testing.T) {
	steps := []string{"in_transit", "out_for_delivery", "failed_delivery", "out_for_delivery", "delivered"}
	codes := []string{"TR1", "TR2", "TR3", "TR4", "TR5", "TR6"}

	svc := newRecordingService(len(steps) * len(codes))
	d := NewDispatcher(3, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	var batch []ports.TrackingEventInput
	for _, st := range steps {
		for _, code := range codes {
			batch = append(batch, ports.TrackingEventInput{TrackingNumber: code, Status: st})
		}
	}
	d.EnqueueBatch(batch)
	waitFor(t, svc.done)

	cancel()
	d.Wait()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, code := range codes {
		assert.Equal(t, steps, svc.seen[code], "events for %s must stay in order", code)
	}
}

func TestDispatcher_ContinuesAfterFailure(t *testing.T) {
	svc := newRecordingService(2)
	svc.failOn = "bad"
	d := NewDispatcher(1, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.TrackingEventInput{TrackingNumber: "TR1", Status: "bad"})
	d.Enqueue(ports.TrackingEventInput{TrackingNumber: "TR1", Status: "in_transit"})
	waitFor(t, svc.done)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	require.Equal(t, []string{"bad", "in_transit"}, svc.seen["TR1"])
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(0), zerolog.Nop())
	require.Len(t, d.workers, defaultWorkers)

	first := d.shardIndex("TR20260219123456")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, d.shardIndex("TR20260219123456"))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, defaultWorkers)
}

func TestDispatcher_ShutdownDrainsQueuedEvents(t *testing.T) {
	const n = 20
	svc := newRecordingService(n)
	svc.delay = 5 * time.Millisecond
	d := NewDispatcher(1, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Enqueue(ports.TrackingEventInput{TrackingNumber: "TR1", Status: "in_transit"})
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	require.NoError(t, d.Shutdown(shutdownCtx))
	assert.Equal(t, n, svc.processed())

	// Waiting again and enqueueing after shutdown are both safe.
	d.Wait()
	d.Enqueue(ports.TrackingEventInput{TrackingNumber: "TR1", Status: "delivered"})
	require.NoError(t, d.Shutdown(shutdownCtx))
	assert.Equal(t, n, svc.processed())
}

func TestDispatcher_ShutdownHonoursDeadline(t *testing.T) {
	svc := newRecordingService(0)
	svc.delay = 50 * time.Millisecond
	d := NewDispatcher(1, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(ports.TrackingEventInput{TrackingNumber: "TR1", Status: "in_transit"})
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer stop()
	err := d.Shutdown(shutdownCtx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	cancel()
	d.Wait()
	assert.Less(t, svc.processed(), 10)
}
