package pipeline

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/skim"
	"golang.org/x/time/rate"
)

var _ skim.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter rate-limits page fetches per domain using token buckets, so
// a batch run spreads load across hosts instead of hammering one of them.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain, with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain. It
// returns an error if the context is canceled before the wait completes.
//
// Domains are keyed case-insensitively with any port stripped, so
// "Example.com:8080" and "example.com" share one bucket.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	key := normalizeDomain(domain)

	d.mu.Lock()
	limiter, ok := d.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[key] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

func normalizeDomain(domain string) string {
	if host, _, err := net.SplitHostPort(domain); err == nil {
		domain = host
	}
	return strings.ToLower(domain)
}
