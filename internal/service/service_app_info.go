package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// versionInfo reports the version the server was configured with. The
// value is fixed at startup.
type versionInfo struct {
	version string
}

// NewAppInfoService fails with [ErrVersionIsNotSpecified] when cfg carries
// no version, so a server never advertises an empty one.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service is ready")

	return versionInfo{version: version}, nil
}

func (v versionInfo) GetAppVersion(context.Context) string {
	return v.version
}
