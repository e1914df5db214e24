package main

import (
	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/client"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// The TUI owns the terminal, so the client logs to a file.
const logFile = "todo-client.log"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewFileLogger("todo-client", logFile)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPTodoAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui := tui.New(api, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	if err = client.NewApp(api, ui, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
