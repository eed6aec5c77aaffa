package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
)

// appInfoService answers GET /api/version/ with the configured release.
type appInfoService struct {
	version string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when the configured
// version is blank.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		logger.Error().Str("func", "NewAppInfoService").Msg("app version is not configured")
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("creating app info service")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
