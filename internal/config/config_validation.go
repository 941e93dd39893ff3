// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

const (
	defaultTokenIssuer        = "quote-sync"
	defaultSessionTTL         = 30 * 24 * time.Hour
	defaultVersion            = "dev"
	defaultRequestTimeout     = 10 * time.Second
	defaultDebounce           = 600 * time.Millisecond
	defaultNotificationWindow = 3 * time.Second
	defaultRevalidateInterval = time.Minute
	defaultUnloadTimeout      = 2 * time.Second
	defaultCacheDSN           = "quote-cache.db"
)

// withDefaults fills every unset tunable with its default. Secrets and
// addresses are left alone; the role-specific views reject them when empty.
func (cfg *StructuredConfig) withDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = defaultSessionTTL
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Cache.DSN == "" {
		cfg.Storage.Cache.DSN = defaultCacheDSN
	}
	if cfg.Sync.Debounce == 0 {
		cfg.Sync.Debounce = defaultDebounce
	}
	if cfg.Sync.NotificationWindow == 0 {
		cfg.Sync.NotificationWindow = defaultNotificationWindow
	}
	if cfg.Sync.RevalidateInterval == 0 {
		cfg.Sync.RevalidateInterval = defaultRevalidateInterval
	}
	if cfg.Sync.UnloadTimeout == 0 {
		cfg.Sync.UnloadTimeout = defaultUnloadTimeout
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Cache.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Debounce < 0 || cfg.Sync.NotificationWindow < 0 ||
		cfg.Sync.RevalidateInterval <= 0 || cfg.Sync.UnloadTimeout <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Redis.URL == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.App.TokenSignKey) == "" || cfg.App.SessionTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
