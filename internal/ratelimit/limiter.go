package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// API names an upstream with its own request budget
type API string

// APIYahooFinance is the quote API
const APIYahooFinance API = "yfin"

// Limiter paces requests per API. Backends share one Limiter so concurrent
// batches draw from the same budget.
type Limiter struct {
	mu    sync.Mutex
	byAPI map[API]*rate.Limiter
}

func New() *Limiter {
	return &Limiter{byAPI: make(map[API]*rate.Limiter)}
}

// SetLimit caps api at rps requests per second with a burst of one.
// A non-positive rps lifts the cap. Changing the limit of an API already in
// use applies to callers blocked in Wait.
func (l *Limiter) SetLimit(api API, rps float64) {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.byAPI[api]; ok {
		lim.SetLimit(limit)
		return
	}
	l.byAPI[api] = rate.NewLimiter(limit, 1)
}

// Wait blocks until api may send another request. APIs without a limit
// never block. The error is ctx's, or rate's when the deadline is too
// close to be met.
func (l *Limiter) Wait(ctx context.Context, api API) error {
	l.mu.Lock()
	lim := l.byAPI[api]
	l.mu.Unlock()

	if lim == nil {
		return nil
	}
	return lim.Wait(ctx)
}
