package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// App is the terminal client process: one API adapter shared by the UI
// for the whole session.
type App struct {
	api    adapter.TodoAPIAdapter
	ui     UI
	logger *logger.Logger
}

func NewApp(api adapter.TodoAPIAdapter, ui UI, logger *logger.Logger) *App {
	return &App{api: api, ui: ui, logger: logger}
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	// The server may still be starting; the UI reports connection errors
	// on its own, so a failed probe is only logged.
	if version, err := a.api.Version(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server is not reachable")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to server")
	}

	err := a.ui.Run(ctx)
	if errors.Is(err, context.Canceled) {
		a.logger.Info().Msg("terminal client interrupted")
		return nil
	}
	return err
}
