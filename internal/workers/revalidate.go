// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/quote-sync/internal/logger"
)

// DefaultRevalidateInterval is used when a non-positive interval is given.
const DefaultRevalidateInterval = time.Minute

// RevalidateWorker calls Syncer.Sync on a ticker so that the client notices
// writes made elsewhere and retries edits stranded by a network failure.
type RevalidateWorker struct {
	syncer   Syncer
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRevalidateWorker creates a worker that is idle until Run is called.
func NewRevalidateWorker(syncer Syncer, interval time.Duration, log *logger.Logger) *RevalidateWorker {
	if interval <= 0 {
		interval = DefaultRevalidateInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RevalidateWorker{syncer: syncer, interval: interval, logger: log}
}

// Run implements [Worker]. It stops any previously running loop, then
// launches a goroutine that calls Sync every interval until ctx is
// cancelled or Stop is called.
func (w *RevalidateWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.logger.Debug().Str("func", "RevalidateWorker.Run").Dur("interval", w.interval).Msg("revalidation started")
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.syncer.Sync(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the loop and blocks until the
// goroutine has fully exited.
func (w *RevalidateWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
