// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"sync"
	"time"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/models"
	"golang.org/x/time/rate"
)

// DefaultWindow is the minimum interval between two shown notifications of
// the same class.
const DefaultWindow = 3 * time.Second

// Throttle wraps a [Sink] and drops a notification when another one of the
// same class was shown less than a window ago. Each class owns a limiter
// with burst 1 that refills once per window.
type Throttle struct {
	next   Sink
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	limiters map[string]*rate.Limiter

	logger *logger.Logger
}

// ThrottleOption configures a [Throttle].
type ThrottleOption func(*Throttle)

// WithClock replaces time.Now. Tests use it to step time deterministically.
func WithClock(now func() time.Time) ThrottleOption {
	return func(t *Throttle) {
		t.now = now
	}
}

// WithLogger logs dropped notifications at debug level.
func WithLogger(log *logger.Logger) ThrottleOption {
	return func(t *Throttle) {
		t.logger = log
	}
}

// NewThrottle wraps next. A non-positive window falls back to
// [DefaultWindow].
func NewThrottle(next Sink, window time.Duration, opts ...ThrottleOption) *Throttle {
	if window <= 0 {
		window = DefaultWindow
	}

	t := &Throttle{
		next:     next,
		window:   window,
		now:      time.Now,
		limiters: make(map[string]*rate.Limiter),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Notify forwards n unless its class is inside the throttle window.
func (t *Throttle) Notify(n models.Notification) {
	if !t.allow(n.Class) {
		t.logger.Debug().Str("func", "Throttle.Notify").Str("class", n.Class).Msg("notification throttled")
		return
	}
	t.next.Notify(n)
}

func (t *Throttle) allow(class string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	lim, ok := t.limiters[class]
	if !ok {
		lim = rate.NewLimiter(rate.Every(t.window), 1)
		t.limiters[class] = lim
	}

	return lim.AllowN(t.now(), 1)
}
