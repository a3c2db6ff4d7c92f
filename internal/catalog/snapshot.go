package catalog

import (
	"context"
	"sync"
	"time"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// DefaultSnapshotTTL is how long a cached catalog listing stays fresh.
const DefaultSnapshotTTL = 15 * time.Minute

// Snapshot caches the full catalog product list with a TTL so document
// analysis does not hit the catalog API once per line item. A stale snapshot
// is still served when the catalog is unreachable; only a never-filled cache
// propagates the error. An empty catalog listing is a valid snapshot and is
// cached for the TTL like any other.
type Snapshot struct {
	catalog Catalog
	ttl     time.Duration
	nowFunc func() time.Time

	mu        sync.RWMutex
	products  []domain.ProductRecord
	fetchedAt time.Time
}

// SnapshotOption configures the Snapshot.
type SnapshotOption func(*Snapshot)

// WithSnapshotTTL overrides the default cache TTL.
func WithSnapshotTTL(ttl time.Duration) SnapshotOption {
	return func(s *Snapshot) {
		s.ttl = ttl
	}
}

// WithSnapshotNowFunc overrides the time function for testing.
func WithSnapshotNowFunc(f func() time.Time) SnapshotOption {
	return func(s *Snapshot) {
		s.nowFunc = f
	}
}

// NewSnapshot creates a snapshot cache over the given catalog.
func NewSnapshot(c Catalog, opts ...SnapshotOption) *Snapshot {
	s := &Snapshot{
		catalog: c,
		ttl:     DefaultSnapshotTTL,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Products returns the cached product list, refreshing it first when the
// cache is stale or empty.
func (s *Snapshot) Products(ctx context.Context) ([]domain.ProductRecord, error) {
	s.mu.RLock()
	fresh := !s.fetchedAt.IsZero() && s.nowFunc().Sub(s.fetchedAt) < s.ttl
	products := s.products
	s.mu.RUnlock()

	if fresh {
		return products, nil
	}

	if err := s.Refresh(ctx); err != nil {
		// Serve stale data over nothing.
		s.mu.RLock()
		defer s.mu.RUnlock()
		if !s.fetchedAt.IsZero() {
			return s.products, nil
		}
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products, nil
}

// Refresh fetches the catalog list and replaces the cache. The previous
// snapshot is kept on failure.
func (s *Snapshot) Refresh(ctx context.Context) error {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.products = products
	s.fetchedAt = s.nowFunc()
	s.mu.Unlock()

	return nil
}

// Len returns the number of cached products.
func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
