package geocode

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/evcraddock/condo-registry/internal/metrics"
)

// DefaultTimeout bounds each outbound provider call.
const DefaultTimeout = 10 * time.Second

// Resolver wraps a Geocoder with a process-wide cache keyed by the exact
// address string. Entries are write-once: a cached point is never replaced.
// Failed lookups are deliberately not cached, so a later retry with the
// same address can succeed once the provider recovers.
type Resolver struct {
	geocoder Geocoder
	timeout  time.Duration

	mu    sync.Mutex
	cache map[string]Point
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithTimeout overrides the per-lookup timeout.
func WithTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) { r.timeout = d }
}

// NewResolver creates a resolver around the given geocoder.
func NewResolver(g Geocoder, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		geocoder: g,
		timeout:  DefaultTimeout,
		cache:    make(map[string]Point),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the coordinates for an address. A blank address is
// rejected with ErrInvalidInput before any network call; a cache hit
// returns without one. Misses issue a single bounded provider lookup and
// cache only successes.
func (r *Resolver) Resolve(ctx context.Context, address string) (Point, error) {
	if strings.TrimSpace(address) == "" {
		return Point{}, ErrInvalidInput
	}

	r.mu.Lock()
	p, ok := r.cache[address]
	r.mu.Unlock()
	if ok {
		metrics.GeocodeLookups.WithLabelValues("hit").Inc()
		return p, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		metrics.GeocodeLookups.WithLabelValues("not_found").Inc()
		return Point{}, ErrNotFound
	}

	r.mu.Lock()
	// First writer wins; a concurrent resolution of the same address
	// returns an identical point anyway.
	if cached, ok := r.cache[address]; ok {
		p = cached
	} else {
		r.cache[address] = p
	}
	r.mu.Unlock()

	metrics.GeocodeLookups.WithLabelValues("miss").Inc()
	return p, nil
}
