package docsync

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/quote-sync/models"
)

// SetData applies update to the latest local document. prev is nil until a
// document is known and must not be mutated; update must not call back
// into the controller.
//
// The result is normalized, stored in memory and in the local cache, and
// the debounce timer is restarted. SetData never blocks on the network and
// never fails outward: a rejected or panicking update leaves the state
// unchanged and is logged.
func (c *Controller[T]) SetData(update func(prev *T) T) {
	c.mu.Lock()
	defer c.emit()
	defer c.mu.Unlock()

	next, err := c.applyLocked(update)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "Controller.SetData").Msg("edit rejected")
		c.state.Error = err.Error()
		return
	}

	c.state.Data = c.copyPtr(&next)
	c.pending = &next
	c.editSeq++
	if !c.inFlight {
		c.state.Phase = models.PhasePendingEdit
	}
	c.writeCacheLocked()
	c.armTimerLocked()
}

// Replace is SetData with a fixed value.
func (c *Controller[T]) Replace(v T) {
	c.SetData(func(*T) T { return v })
}

func (c *Controller[T]) applyLocked(update func(prev *T) T) (next T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUpdatePanicked, r)
		}
	}()

	base := c.state.Data
	if c.pending != nil {
		// during conflict resolution Data shows the reloaded server copy
		base = c.pending
	}

	next = update(c.copyPtr(base))
	if c.normalize != nil {
		next, err = c.normalize(next)
		if err != nil {
			return next, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}
	// the caller may keep a reference to what update returned
	return c.clone(next), nil
}

// armTimerLocked replaces the debounce timer with a fresh one. At most one
// timer is live per controller.
func (c *Controller[T]) armTimerLocked() {
	if c.closed {
		return
	}
	c.stopTimerLocked()

	c.timerGen++
	gen := c.timerGen
	c.timer = time.AfterFunc(c.debounce, func() { c.onTimer(gen) })
}

func (c *Controller[T]) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller[T]) onTimer(gen uint64) {
	c.mu.Lock()
	if c.timer == nil || c.timerGen != gen || c.closed {
		// superseded by a newer edit or by Close
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	c.Flush(context.Background())
}
