package memory

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const defaultDedupTTL = time.Hour

// DedupChecker is the in-process idempotency store used when Redis is not
// configured. Expired keys are dropped lazily on lookup.
type DedupChecker struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time
	now  func() time.Time
}

// NewDedupChecker creates a DedupChecker. A non-positive ttl defaults to one hour.
func NewDedupChecker(ttl time.Duration) *DedupChecker {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &DedupChecker{
		ttl:  ttl,
		seen: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (d *DedupChecker) IsDuplicate(_ context.Context, trackingNumber, status string, ts time.Time) (bool, error) {
	key := dedupKey(trackingNumber, status, ts)

	d.mu.Lock()
	defer d.mu.Unlock()

	expires, ok := d.seen[key]
	if !ok {
		return false, nil
	}
	if !d.now().Before(expires) {
		delete(d.seen, key)
		return false, nil
	}
	return true, nil
}

func (d *DedupChecker) Mark(_ context.Context, trackingNumber, status string, ts time.Time) error {
	key := dedupKey(trackingNumber, status, ts)

	d.mu.Lock()
	d.seen[key] = d.now().Add(d.ttl)
	d.mu.Unlock()
	return nil
}

func dedupKey(trackingNumber, status string, ts time.Time) string {
	return fmt.Sprintf("%s:%s:%d", trackingNumber, status, ts.Unix())
}
