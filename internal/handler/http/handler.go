package http

import (
	"time"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/service"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Dur("request_timeout", requestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
