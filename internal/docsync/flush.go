package docsync

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/quote-sync/models"
)

// Flush sends the pending edit to the server.
//
// It returns at once when a flush is already in flight, the initial
// reconcile is still running or nothing is pending. Otherwise it blocks
// until its own save, including conflict resolution, has finished. The
// body is the latest pending value at the moment of sending.
func (c *Controller[T]) Flush(ctx context.Context) {
	c.mu.Lock()
	if c.inFlight || c.state.Loading || c.pending == nil {
		c.mu.Unlock()
		return
	}
	c.stopTimerLocked()
	body, token, seq := c.beginFlightLocked()
	c.mu.Unlock()
	c.emit()

	res, err := c.store.SaveDocument(ctx, body, token)

	if err == nil && res.Status == http.StatusPreconditionFailed {
		c.mu.Lock()
		c.state.Phase = models.PhaseConflict
		c.mu.Unlock()
		c.emit()

		seq = c.resolveConflict(ctx, seq)

		c.mu.Lock()
		c.endFlightLocked(seq)
		c.mu.Unlock()
		c.emit()
		return
	}

	c.mu.Lock()
	switch {
	case err != nil:
		c.failLocked("Controller.Flush", err)
	case res.Status == http.StatusOK:
		c.confirmLocked(body, res.VersionToken, seq)
	default:
		c.failLocked("Controller.Flush", fmt.Errorf("%w: status %d", ErrUnexpectedSave, res.Status))
	}
	c.endFlightLocked(seq)
	c.mu.Unlock()
	c.emit()
}

// resolveConflict reloads the document without a precondition, adopts it
// and retries the pending edit exactly once. It returns the edit sequence
// of the body it last sent. Called without c.mu held.
func (c *Controller[T]) resolveConflict(ctx context.Context, seq uint64) uint64 {
	load, err := c.store.LoadDocument(ctx, "")
	if err == nil && (load.Status != http.StatusOK || load.Document == nil) {
		err = fmt.Errorf("%w: status %d", ErrUnexpectedLoad, load.Status)
	}

	c.mu.Lock()
	if err != nil {
		c.logger.Err(err).Str("func", "Controller.resolveConflict").Msg("reload after conflict failed")
		if c.editSeq == seq {
			// Data keeps the dropped edit, which the server never accepted
			c.unconfirmed = true
		}
		c.giveUpLocked(err, seq)
		c.mu.Unlock()
		c.sink.Notify(ConflictNotification)
		return seq
	}

	c.state.Data = c.copyPtr(load.Document)
	c.state.VersionToken = load.VersionToken
	c.unconfirmed = false
	c.stampLocked()

	if c.pending == nil {
		// nothing left to retry: the server copy is the result
		c.state.Error = ""
		c.writeCacheLocked()
		c.mu.Unlock()
		c.emit()
		return seq
	}
	c.writeCacheLocked()

	body, token := c.clone(*c.pending), load.VersionToken
	seq = c.editSeq
	c.mu.Unlock()
	c.emit()

	res, err := c.store.SaveDocument(ctx, body, token)
	if err == nil && res.Status != http.StatusOK {
		err = fmt.Errorf("%w: status %d", ErrUnexpectedSave, res.Status)
	}

	c.mu.Lock()
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "Controller.resolveConflict").Msg("retry after conflict failed, giving up")
		c.giveUpLocked(err, seq)
		c.mu.Unlock()
		c.sink.Notify(ConflictNotification)
		return seq
	}

	c.confirmLocked(body, res.VersionToken, seq)
	c.mu.Unlock()

	c.logger.Info().Str("func", "Controller.resolveConflict").Str("version_token", res.VersionToken).Msg("conflict resolved")
	c.sink.Notify(ResolvedNotification)
	return seq
}

func (c *Controller[T]) beginFlightLocked() (body T, token string, seq uint64) {
	c.inFlight = true
	c.flightDone = make(chan struct{})
	c.state.Phase = models.PhaseFlushing

	return c.clone(*c.pending), c.state.VersionToken, c.editSeq
}

// confirmLocked adopts a server-accepted token for the body sent at seq.
func (c *Controller[T]) confirmLocked(body T, token string, seq uint64) {
	c.state.VersionToken = token
	c.state.Error = ""
	c.unconfirmed = false
	c.stampLocked()

	if c.editSeq == seq {
		c.pending = nil
		c.state.Data = &body
	} else {
		c.state.Data = c.copyPtr(c.pending)
	}
	c.writeCacheLocked()
}

// giveUpLocked drops the edit sent at seq. A newer edit stays pending.
func (c *Controller[T]) giveUpLocked(err error, seq uint64) {
	c.state.Error = err.Error()
	if c.editSeq == seq {
		c.pending = nil
	} else {
		c.state.Data = c.copyPtr(c.pending)
	}
	c.writeCacheLocked()
}

func (c *Controller[T]) failLocked(fn string, err error) {
	c.logger.Err(err).Str("func", fn).Msg("save failed, keeping local edit")
	c.state.Error = err.Error()
}

// endFlightLocked clears the in-flight flag. When edits newer than seq are
// pending and no debounce timer is armed, it arms one so the newer value
// is not stranded.
func (c *Controller[T]) endFlightLocked(seq uint64) {
	c.inFlight = false
	close(c.flightDone)

	if c.pending == nil {
		c.state.Phase = models.PhaseIdle
		return
	}

	c.state.Phase = models.PhasePendingEdit
	if c.editSeq != seq && c.timer == nil {
		c.armTimerLocked()
	}
}

// Drain waits for an in-flight flush and then flushes what is still
// pending, once. It returns [ErrNotSaved] when an edit remains unsaved and
// ctx.Err() when ctx expires first.
func (c *Controller[T]) Drain(ctx context.Context) error {
	flushed := false
	for {
		c.mu.Lock()
		switch {
		case c.inFlight:
			done := c.flightDone
			c.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return ctx.Err()
			}
		case c.pending == nil:
			c.mu.Unlock()
			return nil
		case flushed || c.state.Loading:
			c.mu.Unlock()
			return ErrNotSaved
		default:
			c.mu.Unlock()
			c.Flush(ctx)
			flushed = true
		}
	}
}
