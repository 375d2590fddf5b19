package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a4co/transportista-service/internal/core/domain"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	addr := mr.Addr()
	client, err := Connect(context.Background(), Config{Addr: addr})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = Connect(context.Background(), Config{Addr: addr, PingTimeout: 200 * time.Millisecond})
	assert.Error(t, err)
}

func TestConnect_AppliesPoolAndTimeouts(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{
		Addr:         mr.Addr(),
		DB:           2,
		PoolSize:     4,
		DialTimeout:  time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 250 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	opts := client.Options()
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 4, opts.PoolSize)
	assert.Equal(t, time.Second, opts.DialTimeout)
	assert.Equal(t, 500*time.Millisecond, opts.ReadTimeout)
	assert.Equal(t, 250*time.Millisecond, opts.WriteTimeout)
}

func TestConfig_DefaultPoolSize(t *testing.T) {
	assert.Equal(t, defaultPoolSize, Config{Addr: "localhost:6379"}.options().PoolSize)
}

func TestDedupChecker_MarkAndExpire(t *testing.T) {
	mr, client := newClient(t)
	d := NewDedupChecker(client, time.Minute)
	ctx := context.Background()
	ts := time.Unix(1771495200, 0)

	dup, err := d.IsDuplicate(ctx, "TR1", "in_transit", ts)
	require.NoError(t, err)
	assert.False(t, dup)

	require.NoError(t, d.Mark(ctx, "TR1", "in_transit", ts))
	assert.True(t, mr.Exists("dedup:TR1:in_transit:1771495200"))

	dup, err = d.IsDuplicate(ctx, "TR1", "in_transit", ts)
	require.NoError(t, err)
	assert.True(t, dup)

	mr.FastForward(2 * time.Minute)
	dup, _ = d.IsDuplicate(ctx, "TR1", "in_transit", ts)
	assert.False(t, dup)
}

func TestDedupChecker_Unavailable(t *testing.T) {
	mr, client := newClient(t)
	d := NewDedupChecker(client, 0)
	mr.Close()

	_, err := d.IsDuplicate(context.Background(), "TR1", "in_transit", time.Now())
	assert.Error(t, err)
}

func TestTrackingCache_RoundTrip(t *testing.T) {
	mr, client := newClient(t)
	c := NewTrackingCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "TR1")
	require.NoError(t, err)
	assert.False(t, ok)

	ts := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)
	in := &domain.Tracking{
		TrackingNumber:  "TR1",
		Status:          domain.StatusInTransit,
		CurrentLocation: "Av. Providencia 1234",
		History:         []domain.HistoryEntry{{Status: domain.StatusPending, Timestamp: ts}},
		LastUpdate:      ts,
	}
	require.NoError(t, c.Set(ctx, in))
	assert.True(t, mr.Exists("tracking:TR1"))

	got, ok, err := c.Get(ctx, "TR1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StatusInTransit, got.Status)
	require.Len(t, got.History, 1)
	assert.True(t, got.LastUpdate.Equal(ts))

	require.NoError(t, c.Invalidate(ctx, "TR1"))
	_, ok, _ = c.Get(ctx, "TR1")
	assert.False(t, ok)
}

func TestTrackingCache_TTL(t *testing.T) {
	mr, client := newClient(t)
	c := NewTrackingCache(client, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &domain.Tracking{TrackingNumber: "TR2"}))
	mr.FastForward(time.Minute)

	_, ok, err := c.Get(ctx, "TR2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTrackingCache_AddKeepsExistingProjection(t *testing.T) {
	_, client := newClient(t)
	c := NewTrackingCache(client, time.Minute)
	ctx := context.Background()

	fresh := &domain.Tracking{
		TrackingNumber: "TR3",
		Status:         domain.StatusDelivered,
		History:        []domain.HistoryEntry{{Status: domain.StatusPending}, {Status: domain.StatusDelivered}},
	}
	stale := &domain.Tracking{
		TrackingNumber: "TR3",
		Status:         domain.StatusPending,
		History:        []domain.HistoryEntry{{Status: domain.StatusPending}},
	}

	require.NoError(t, c.Set(ctx, fresh))
	require.NoError(t, c.Add(ctx, stale))

	got, ok, err := c.Get(ctx, "TR3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StatusDelivered, got.Status)

	require.NoError(t, c.Invalidate(ctx, "TR3"))
	require.NoError(t, c.Add(ctx, stale))
	got, ok, err = c.Get(ctx, "TR3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestTrackingCache_SetNeverRegresses(t *testing.T) {
	mr, client := newClient(t)
	c := NewTrackingCache(client, time.Minute)
	ctx := context.Background()

	one := &domain.Tracking{TrackingNumber: "TR4", Status: domain.StatusPending,
		History: []domain.HistoryEntry{{Status: domain.StatusPending}}}
	two := &domain.Tracking{TrackingNumber: "TR4", Status: domain.StatusInTransit,
		History: []domain.HistoryEntry{{Status: domain.StatusPending}, {Status: domain.StatusInTransit}}}

	require.NoError(t, c.Set(ctx, two))
	require.NoError(t, c.Set(ctx, one))
	got, _, err := c.Get(ctx, "TR4")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInTransit, got.Status, "an older projection must not replace a newer one")

	three := &domain.Tracking{TrackingNumber: "TR4", Status: domain.StatusDelivered,
		History: append(append([]domain.HistoryEntry{}, two.History...), domain.HistoryEntry{Status: domain.StatusDelivered})}
	require.NoError(t, c.Set(ctx, three))
	got, _, err = c.Get(ctx, "TR4")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, got.Status)
	assert.Greater(t, mr.TTL("tracking:TR4"), time.Duration(0))
}
