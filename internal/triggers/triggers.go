// Package triggers forces out-of-band flushes on lifecycle events.
//
// The terminal client maps the browser-style lifecycle onto its own
// events: losing focus or suspending the process counts as "hidden",
// quitting or receiving a termination signal counts as "unload", and
// regaining focus counts as "visible".
package triggers

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/quote-sync/internal/logger"
)

// DefaultUnloadTimeout bounds the synchronous flush on unload.
const DefaultUnloadTimeout = 2 * time.Second

// Target is what the triggers act on. docsync.Controller implements it.
type Target interface {
	Flush(ctx context.Context)
	Drain(ctx context.Context) error
	Revalidate(ctx context.Context)
}

// Set dispatches lifecycle events to a [Target].
type Set struct {
	target        Target
	unloadTimeout time.Duration

	// signals delivered by Watch; replaced in tests
	signals []os.Signal

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewSet creates a trigger set. A non-positive unloadTimeout falls back to
// [DefaultUnloadTimeout].
func NewSet(target Target, unloadTimeout time.Duration, log *logger.Logger) *Set {
	if unloadTimeout <= 0 {
		unloadTimeout = DefaultUnloadTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Set{
		target:        target,
		unloadTimeout: unloadTimeout,
		signals:       []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP},
		logger:        log,
	}
}

// Hidden starts an immediate flush without waiting for the debounce timer.
// It does not block the caller.
func (s *Set) Hidden() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Debug().Str("func", "Set.Hidden").Msg("flushing on hide")
		s.target.Flush(context.Background())
	}()
}

// Visible starts a revalidation so that writes made elsewhere while the
// client was in the background show up.
func (s *Set) Visible() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.target.Revalidate(context.Background())
	}()
}

// Unload flushes synchronously, waiting at most for the unload timeout.
func (s *Set) Unload(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.unloadTimeout)
	defer cancel()

	err := s.target.Drain(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "Set.Unload").Msg("pending edit not saved before exit")
	}
	return err
}

// Watch blocks until ctx is done or a termination signal arrives. On a
// signal it runs Unload and then onExit, if set.
func (s *Set) Watch(ctx context.Context, onExit func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, s.signals...)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		return
	case sig := <-sigCh:
		s.logger.Info().Str("func", "Set.Watch").Str("signal", sig.String()).Msg("termination signal received")
		_ = s.Unload(context.Background())
		if onExit != nil {
			onExit()
		}
	}
}

// Wait blocks until every asynchronous trigger has finished.
func (s *Set) Wait() {
	s.wg.Wait()
}
