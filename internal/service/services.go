package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	TodoService    TodoService
	AppInfoService AppInfoService
}

// NewServices wires the server services. The todo service is wrapped with
// the validation decorator.
func NewServices(storages *store.Storages, enricher EnrichmentService, cfg config.StructuredConfig, logger *logger.Logger, opts ...AuthOption) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	todoService := NewTodoService(storages.TodoRepository, enricher, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger, opts...),
		TodoService:    NewTodoValidationService().Wrap(todoService),
		AppInfoService: appInfoService,
	}, nil
}
