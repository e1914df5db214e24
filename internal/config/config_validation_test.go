package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "key", TokenIssuer: DefaultTokenIssuer, TokenDuration: time.Minute},
		Storage: Storage{DB: DB{Driver: DriverPostgres, DSN: "postgres://localhost/todos"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "grpc only", mutate: func(cfg *StructuredConfig) {
			cfg.Server.HTTPAddress = ""
			cfg.Server.GRPCAddress = "localhost:9090"
		}},
		{name: "sqlite driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no listeners", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "enrichment without url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.Enrichment.Enabled = true }, wantErr: ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_FallsBackToServerAddress(t *testing.T) {
	cfg := &StructuredConfig{
		Server:  Server{HTTPAddress: "localhost:8080"},
		Adapter: Adapter{RequestTimeout: time.Second},
	}

	clientCfg, err := newClientConfig(cfg)
	assert.NoError(t, err)
	assert.Equal(t, "localhost:8080", clientCfg.Adapter.HTTPAddress)
}

func TestNewClientConfig_PrefersAdapterAddress(t *testing.T) {
	cfg := &StructuredConfig{
		Server:  Server{HTTPAddress: "localhost:8080"},
		Adapter: Adapter{HTTPAddress: "10.0.0.1:8080", RequestTimeout: time.Second},
	}

	clientCfg, err := newClientConfig(cfg)
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.1:8080", clientCfg.Adapter.HTTPAddress)
}

func TestNewClientConfig_MissingAddress(t *testing.T) {
	_, err := newClientConfig(&StructuredConfig{Adapter: Adapter{RequestTimeout: time.Second}})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
