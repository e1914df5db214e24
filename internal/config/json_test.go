package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "20m",
			"bcrypt_cost": 5,
			"version": "0.1.0"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"cors_origins": ["http://a.test"]
		},
		"storage": {
			"db": { "driver": "sqlite", "dsn": "file:todos.db" }
		},
		"adapter": {
			"http_address": "localhost:8080",
			"request_timeout": "3s",
			"enrichment": { "enabled": true, "base_url": "https://llm.test", "api_key": "k", "model": "m", "request_timeout": "9s" }
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 20*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 5, cfg.App.BcryptCost)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:todos.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.Enrichment.Enabled)
	assert.Equal(t, "https://llm.test", cfg.Adapter.Enrichment.BaseURL)
	assert.Equal(t, 9*time.Second, cfg.Adapter.Enrichment.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds number", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(20 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"20m0s"`, string(b))
}
