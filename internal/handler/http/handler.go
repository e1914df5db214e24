package http

import (
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// corsOrigins are the origins allowed by the CORS middleware; empty
	// allows any origin.
	corsOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger, corsOrigins ...string) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		corsOrigins: corsOrigins,
		logger:      logger,
	}
}
