// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package docsync keeps one document consistent between an in-memory
// editable copy, the local cache and the server.
//
// A [Controller] applies edits synchronously, coalesces them behind a
// debounce timer and persists the latest value with a compare-and-swap
// save. A rejected save (412) reloads the document and retries exactly
// once with the still-pending edit; the outcome is reported through a
// notification sink. At most one save is in flight per controller.
//
// Typical lifecycle:
//
//	ctrl := docsync.New(store, localCache, sink, log, docsync.WithNormalizer(v.Normalize))
//	ctrl.Init(ctx)
//	ctrl.SetData(func(prev *models.Quote) models.Quote { ... })
//	...
//	ctrl.Drain(ctx)
//	ctrl.Close()
package docsync

import (
	"sync"
	"time"

	"github.com/MKhiriev/quote-sync/internal/adapter"
	"github.com/MKhiriev/quote-sync/internal/cache"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/notify"
	"github.com/MKhiriev/quote-sync/models"
)

// DefaultDebounce is the quiet period after the last edit before a save is
// sent.
const DefaultDebounce = 600 * time.Millisecond

// Normalizer shapes a document before it is accepted. An error rejects the
// edit and leaves the previous state in place.
type Normalizer[T any] func(T) (T, error)

// Notifications emitted after conflict resolution.
var (
	ResolvedNotification = models.Notification{
		Class:       models.NotificationSyncResolved,
		Title:       "Synced latest changes",
		Description: "Your edit was applied on top of the latest version.",
	}
	ConflictNotification = models.Notification{
		Class:       models.NotificationSyncConflict,
		Title:       "Updated elsewhere, please retry",
		Description: "This document changed in another window or device and your last edit was not saved.",
	}
)

// Controller is the synchronization state machine for one document.
// All methods are safe for concurrent use.
type Controller[T any] struct {
	store     adapter.DocumentStore[T]
	cache     *cache.Cache
	sink      notify.Sink
	normalize Normalizer[T]
	clone     func(T) T
	debounce  time.Duration
	cacheKey  string
	now       func() time.Time

	mu    sync.Mutex
	state models.SyncState[T]
	// pending is the latest local edit the server has not confirmed.
	pending *T
	// unconfirmed marks Data as a local copy the server may not hold: a
	// conflict reload failed after the edit was dropped. The next
	// revalidation reloads unconditionally.
	unconfirmed bool
	// editSeq increases with every accepted edit; a flush compares it to
	// find out whether newer edits arrived while it was in flight.
	editSeq  uint64
	inFlight bool
	// flightDone is closed when the current flight ends.
	flightDone chan struct{}
	timer      *time.Timer
	timerGen   uint64
	closed     bool

	changes chan struct{}

	logger *logger.Logger
}

// Option configures a [Controller].
type Option[T any] func(*Controller[T])

// WithDebounce overrides [DefaultDebounce]. Non-positive values are ignored.
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithNormalizer installs the document normalizer applied to every edit.
func WithNormalizer[T any](n Normalizer[T]) Option[T] {
	return func(c *Controller[T]) {
		c.normalize = n
	}
}

// WithCacheKey overrides the local cache key, [cache.KeyQuote] by default.
func WithCacheKey[T any](key string) Option[T] {
	return func(c *Controller[T]) {
		c.cacheKey = key
	}
}

// WithCloner sets the deep copy used for snapshots, updater input and the
// pending value. By default a T with a Clone() T method is copied with it;
// any other T is copied by assignment.
func WithCloner[T any](clone func(T) T) Option[T] {
	return func(c *Controller[T]) {
		if clone != nil {
			c.clone = clone
		}
	}
}

// WithClock replaces time.Now for LastSyncAt stamps.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *Controller[T]) {
		c.now = now
	}
}

// New creates a controller. It does no I/O until [Controller.Init].
func New[T any](store adapter.DocumentStore[T], localCache *cache.Cache, sink notify.Sink, log *logger.Logger, opts ...Option[T]) *Controller[T] {
	if sink == nil {
		sink = notify.SinkFunc(func(models.Notification) {})
	}
	if log == nil {
		log = logger.Nop()
	}

	c := &Controller[T]{
		store:    store,
		cache:    localCache,
		sink:     sink,
		debounce: DefaultDebounce,
		cacheKey: cache.KeyQuote,
		now:      time.Now,
		changes:  make(chan struct{}, 1),
		logger:   log,
	}
	if _, ok := any(*new(T)).(cloner[T]); ok {
		c.clone = func(v T) T { return any(v).(cloner[T]).Clone() }
	} else {
		c.clone = func(v T) T { return v }
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

type cloner[T any] interface {
	Clone() T
}

// State returns a snapshot of the observable state. Data points to a deep
// copy, so mutating it never reaches the controller.
func (c *Controller[T]) State() models.SyncState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Data = c.copyPtr(c.state.Data)
	if c.state.LastSyncAt != nil {
		at := *c.state.LastSyncAt
		s.LastSyncAt = &at
	}
	return s
}

// Changes signals state changes. Signals coalesce: a receiver that falls
// behind sees one pending signal, then reads the latest State.
func (c *Controller[T]) Changes() <-chan struct{} {
	return c.changes
}

// Close cancels the pending debounce timer and stops scheduling new ones.
// A flush already in flight completes. Close does not flush; call
// [Controller.Drain] first to persist the pending edit.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.stopTimerLocked()
}

func (c *Controller[T]) emit() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// writeCacheLocked mirrors the current in-memory state into the local
// cache. Callers hold c.mu, so snapshots are written in transition order.
func (c *Controller[T]) writeCacheLocked() {
	cache.Set(c.cache, c.cacheKey, models.CacheEntry[T]{
		Data:         c.state.Data,
		VersionToken: c.state.VersionToken,
		Dirty:        c.pending != nil || c.unconfirmed,
	})
}

func (c *Controller[T]) stampLocked() {
	at := c.now()
	c.state.LastSyncAt = &at
}

func (c *Controller[T]) copyPtr(p *T) *T {
	if p == nil {
		return nil
	}
	v := c.clone(*p)
	return &v
}
