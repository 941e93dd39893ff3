package config

import "fmt"

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	DB    DB
	Redis Redis
}

// ServerConfig is the server configuration view assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage ServerStorage
	Server  Server
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewServerConfig(cfg)
}

// NewServerConfig maps the server fields out of cfg and validates the result.
func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: cfg.App,
		Storage: ServerStorage{
			DB:    cfg.Storage.DB,
			Redis: cfg.Storage.Redis,
		},
		Server: cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
