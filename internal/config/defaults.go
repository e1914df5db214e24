package config

import "time"

// Defaults applied by [GetStructuredConfig] when no source sets a value.
const (
	DefaultTokenDuration  = 20 * time.Minute
	DefaultTokenIssuer    = "go-todo-keeper"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDriver         = DriverPostgres
	DefaultEnrichModel    = "gpt-4o-mini"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}
	if cfg.Adapter.Enrichment.Model == "" {
		cfg.Adapter.Enrichment.Model = DefaultEnrichModel
	}
	if cfg.Adapter.Enrichment.RequestTimeout == 0 {
		cfg.Adapter.Enrichment.RequestTimeout = DefaultRequestTimeout
	}
}
