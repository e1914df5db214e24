package handler

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-todo-keeper/internal/handler/http"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

// Handlers holds one handler per enabled transport. A transport is enabled
// by giving it a listen address.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers fails when cfg enables neither transport.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" && cfg.GRPCAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	var handlers Handlers
	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger, cfg.CORSOrigins...)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers are created")

	return &handlers, nil
}
