package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/mock"
	"github.com/MKhiriev/quote-sync/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "semver", version: "1.0.0"},
		{name: "pre-release with build", version: "v1.2.3-beta+build.42"},
		{name: "empty", version: "", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storages := &store.Storages{
		QuoteRepository: mock.NewMockQuoteRepository(ctrl),
		SessionStore:    mock.NewMockSessionStore(ctrl),
	}

	t.Run("wires every service", func(t *testing.T) {
		cfg := &config.ServerConfig{App: config.App{Version: "1.0.0", TokenSignKey: "k", TokenIssuer: "quote-sync"}}

		services, err := NewServices(storages, cfg, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, services.QuoteService)
		assert.NotNil(t, services.SessionService)
		assert.IsType(t, &QuoteValidationService{}, services.QuoteService)
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := NewServices(storages, &config.ServerConfig{}, logger.Nop())
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})
}
