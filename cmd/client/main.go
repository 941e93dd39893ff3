package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/quote-sync/internal/adapter"
	"github.com/MKhiriev/quote-sync/internal/cache"
	"github.com/MKhiriev/quote-sync/internal/client"
	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/docsync"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/notify"
	"github.com/MKhiriev/quote-sync/internal/store"
	"github.com/MKhiriev/quote-sync/internal/triggers"
	"github.com/MKhiriev/quote-sync/internal/tui"
	"github.com/MKhiriev/quote-sync/internal/validators"
	"github.com/MKhiriev/quote-sync/internal/workers"
	"github.com/MKhiriev/quote-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// notificationBuffer holds toasts the editor has not rendered yet.
const notificationBuffer = 8

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("quote-client").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("quote-client", cfg.Log.File)

	ctx := context.Background()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("error closing local storage")
		}
	}()

	quoteStore, err := adapter.NewHTTPQuoteStore(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	toasts := notify.NewChanSink(notificationBuffer)
	logSink := notify.NewLogSink(log)
	sink := notify.NewThrottle(notify.SinkFunc(func(n models.Notification) {
		logSink.Notify(n)
		toasts.Notify(n)
	}), cfg.Sync.NotificationWindow, notify.WithLogger(log))

	controller := docsync.New(quoteStore, cache.New(localStorage.CacheRepository, log), sink, log,
		docsync.WithDebounce[models.Quote](cfg.Sync.Debounce),
		docsync.WithNormalizer[models.Quote](validators.NewQuoteValidator().Normalize),
	)

	lifecycle := triggers.NewSet(controller, cfg.Sync.UnloadTimeout, log)
	background := workers.NewWorkers(workers.NewRevalidateWorker(controller, cfg.Sync.RevalidateInterval, log))

	version := buildVersion
	if version == "N/A" && cfg.Version != "" {
		version = cfg.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.String()).Msg("starting quote client")

	ui := tui.New(controller, lifecycle, toasts.C(), buildInfo, log)

	app, err := client.NewApp(controller, ui, lifecycle, background, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
