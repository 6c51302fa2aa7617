package pumpfun

import (
	"net/http"
	"strconv"
	"time"
)

const resetBuffer = 1 * time.Second

// limiter tracks the server-reported quota and request spacing for a single
// client instance. The client consults it before every request and feeds it
// the headers of every response.
type limiter struct {
	minInterval time.Duration

	remaining   int // -1 until first observed
	limit       int
	reset       time.Time
	lastRequest time.Time
}

func newLimiter(minInterval time.Duration) *limiter {
	return &limiter{
		minInterval: minInterval,
		remaining:   -1,
	}
}

// delay returns how long the caller must sleep before issuing the next
// request: the unelapsed part of the minimum inter-request interval, extended
// to the quota reset time (plus buffer) when the remaining quota is exhausted.
func (l *limiter) delay(now time.Time) time.Duration {
	var wait time.Duration

	if !l.lastRequest.IsZero() {
		if since := now.Sub(l.lastRequest); since < l.minInterval {
			wait = l.minInterval - since
		}
	}

	if l.remaining >= 0 && l.remaining <= 1 && !l.reset.IsZero() {
		if untilReset := l.reset.Add(resetBuffer).Sub(now); untilReset > wait {
			wait = untilReset
		}
	}

	return wait
}

// observe records that a request was just issued.
func (l *limiter) observe(now time.Time) {
	l.lastRequest = now
}

// update parses the rate limit headers, keeping the previous values when a
// header is absent or malformed.
func (l *limiter) update(h http.Header) {
	if v, err := strconv.Atoi(h.Get("X-RateLimit-Remaining")); err == nil {
		l.remaining = v
	}
	if v, err := strconv.Atoi(h.Get("X-RateLimit-Limit")); err == nil {
		l.limit = v
	}
	if v, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		l.reset = time.Unix(v, 0)
	}
}
