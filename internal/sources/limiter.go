package sources

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter rate-limits outbound requests per hostname so refresh bursts
// don't hammer any single job board.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	r        rate.Limit
	burst    int
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        rate.Limit(reqPerSec),
		burst:    burst,
	}
}

// WaitURL blocks until a request to the URL's host is allowed, or ctx ends.
func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	host := "_"
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Host
	}

	hl.mu.Lock()
	lim, ok := hl.limiters[host]
	if !ok {
		lim = rate.NewLimiter(hl.r, hl.burst)
		hl.limiters[host] = lim
	}
	hl.mu.Unlock()

	return lim.Wait(ctx)
}
