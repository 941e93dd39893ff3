package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/workers"
)

type App struct {
	document  Document
	ui        UI
	lifecycle Lifecycle
	workers   *workers.Workers

	logger *logger.Logger
}

func NewApp(document Document, ui UI, lifecycle Lifecycle, w *workers.Workers, log *logger.Logger) (*App, error) {
	switch {
	case document == nil:
		return nil, fmt.Errorf("%w: document", ErrMissingDependency)
	case ui == nil:
		return nil, fmt.Errorf("%w: ui", ErrMissingDependency)
	case lifecycle == nil:
		return nil, fmt.Errorf("%w: lifecycle", ErrMissingDependency)
	}
	if w == nil {
		w = workers.NewWorkers()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		document:  document,
		ui:        ui,
		lifecycle: lifecycle,
		workers:   w,
		logger:    log,
	}, nil
}

// Run shows the editor and blocks until the user quits, a termination
// signal arrives or ctx is cancelled. The pending edit is flushed before
// Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// workers start only after the initial reconcile so that a periodic
	// sync never races the first load
	initDone := make(chan struct{})
	go func() {
		defer close(initDone)
		a.document.Init(ctx)
		a.workers.Run(ctx)
	}()

	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		a.lifecycle.Watch(ctx, cancel)
	}()

	err := a.ui.Run(ctx)
	if err != nil && ctx.Err() != nil {
		// the editor was stopped by a signal or by the caller
		err = nil
	}
	if err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("editor stopped with error")
	}

	cancel()
	<-watchDone
	<-initDone

	a.shutdown()
	return err
}

func (a *App) shutdown() {
	a.workers.Stop()
	a.lifecycle.Wait()

	if err := a.lifecycle.Unload(context.Background()); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.shutdown").Msg("exiting with unsaved changes")
	}

	a.document.Close()
	a.logger.Info().Str("func", "*App.shutdown").Msg("client stopped")
}
