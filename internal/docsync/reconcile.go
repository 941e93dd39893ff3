package docsync

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/quote-sync/internal/cache"
	"github.com/MKhiriev/quote-sync/models"
)

// Init bootstraps the state from the local cache, establishes the guest
// session and reconciles with the server using the cached version token.
//
// A 304 keeps the cached state; a 200 replaces it. A cached snapshot marked
// dirty is pushed after a 304 and discarded after a 200, because the server
// moved on. An edit made while Init runs, or one already being saved, wins
// and is flushed afterwards.
// Network failures are logged and recorded in State().Error.
func (c *Controller[T]) Init(ctx context.Context) {
	entry := cache.Get(c.cache, c.cacheKey, models.CacheEntry[T]{})

	c.mu.Lock()
	c.state.Data = c.copyPtr(entry.Data)
	c.state.VersionToken = entry.VersionToken
	if entry.Dirty && entry.Data != nil {
		c.pending = c.copyPtr(entry.Data)
		c.state.Phase = models.PhasePendingEdit
	}
	c.state.Loading = true
	startSeq := c.editSeq
	knownToken := entry.VersionToken
	c.mu.Unlock()
	c.emit()

	c.ensureSession(ctx)

	res, err := c.store.LoadDocument(ctx, knownToken)

	c.mu.Lock()
	c.state.Loading = false
	switch {
	case err != nil:
		c.logger.Err(err).Str("func", "Controller.Init").Msg("initial load failed, using cached state")
		c.state.Error = err.Error()
	case res.Status == http.StatusNotModified:
		c.state.Error = ""
		c.stampLocked()
	case res.Status == http.StatusOK && res.Document != nil:
		if c.editSeq != startSeq || c.inFlight {
			c.logger.Debug().Str("func", "Controller.Init").Msg("edited or saving while loading, keeping local edit")
			break
		}
		if c.pending != nil {
			c.logger.Info().Str("func", "Controller.Init").Msg("server changed since the unsaved snapshot, discarding it")
			c.pending = nil
		}
		c.state.Data = c.copyPtr(res.Document)
		c.state.VersionToken = res.VersionToken
		c.state.Error = ""
		c.unconfirmed = false
		c.stampLocked()
		c.writeCacheLocked()
	default:
		err = fmt.Errorf("%w: status %d", ErrUnexpectedLoad, res.Status)
		c.logger.Err(err).Str("func", "Controller.Init").Msg("initial load failed, using cached state")
		c.state.Error = err.Error()
	}

	flush := c.pending != nil
	if !flush && !c.inFlight {
		c.state.Phase = models.PhaseIdle
	}
	c.mu.Unlock()
	c.emit()

	if flush {
		c.Flush(ctx)
	}
}

// ensureSession restores the cached session token, refreshes the session
// and caches the token the server issued. Failures are not fatal.
func (c *Controller[T]) ensureSession(ctx context.Context) {
	if token := cache.Get(c.cache, cache.KeySession, ""); token != "" {
		c.store.SetSessionToken(token)
	}

	if err := c.store.EnsureSession(ctx); err != nil {
		c.logger.Warn().Err(err).Str("func", "Controller.ensureSession").Msg("session not established, continuing")
		return
	}

	if token := c.store.SessionToken(); token != "" {
		cache.Set(c.cache, cache.KeySession, token)
	}
}

// Revalidate asks the server whether the known version is still current.
// It does nothing while an edit is pending or a flush is in flight. A 304
// leaves Data and VersionToken untouched; a 200 adopts the server copy.
// After a conflict whose reload failed, Data holds a dropped edit, so the
// request carries no precondition and the server copy replaces it.
func (c *Controller[T]) Revalidate(ctx context.Context) {
	c.mu.Lock()
	if c.inFlight || c.state.Loading || c.pending != nil {
		c.mu.Unlock()
		return
	}
	known := c.state.VersionToken
	precondition := known
	if c.unconfirmed {
		// the local copy does not match any server version
		precondition = ""
	}
	c.mu.Unlock()

	res, err := c.store.LoadDocument(ctx, precondition)

	c.mu.Lock()
	if c.inFlight || c.pending != nil || c.state.VersionToken != known {
		// an edit or a save overtook this read
		c.mu.Unlock()
		return
	}
	switch {
	case err != nil:
		c.logger.Warn().Err(err).Str("func", "Controller.Revalidate").Msg("revalidation failed")
		c.state.Error = err.Error()
	case res.Status == http.StatusNotModified:
		c.state.Error = ""
	case res.Status == http.StatusOK && res.Document != nil:
		c.state.Data = c.copyPtr(res.Document)
		c.state.VersionToken = res.VersionToken
		c.state.Error = ""
		c.unconfirmed = false
		c.stampLocked()
		c.writeCacheLocked()
	}
	c.mu.Unlock()
	c.emit()
}

// Sync flushes when an edit is pending and revalidates otherwise. The
// periodic worker calls it so that an edit stranded by a network failure
// is eventually retried.
func (c *Controller[T]) Sync(ctx context.Context) {
	c.mu.Lock()
	pending := c.pending != nil
	c.mu.Unlock()

	if pending {
		c.Flush(ctx)
		return
	}
	c.Revalidate(ctx)
}
