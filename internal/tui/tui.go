package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	api       adapter.TodoAPIAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(api adapter.TodoAPIAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{api: api, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("terminal client closed by user")
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageLogin:    NewLoginModel(ctx, t.api),
		pageRegister: NewRegisterModel(ctx, t.api),
		pageList:     NewListModel(ctx, t.api),
		pageForm:     NewFormModel(ctx, t.api),
	}
	return NewRootModel(pages, pageLogin, t.buildInfo)
}
