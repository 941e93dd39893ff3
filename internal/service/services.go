package service

import (
	"fmt"

	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/store"
)

type Services struct {
	QuoteService   QuoteService
	SessionService SessionService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	quoteService := NewQuoteValidationService().Wrap(NewQuoteService(storages.QuoteRepository, logger))

	return &Services{
		QuoteService:   quoteService,
		SessionService: NewSessionService(storages.SessionStore, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
