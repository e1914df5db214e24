package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAPI(t *testing.T) *mock.MockTodoAPIAdapter {
	t.Helper()
	return mock.NewMockTodoAPIAdapter(gomock.NewController(t))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// exec runs cmd and returns the produced message.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func requireNavigate(t *testing.T, cmd tea.Cmd, page string) NavigateTo {
	t.Helper()
	nav, ok := exec(t, cmd).(NavigateTo)
	require.True(t, ok, "expected NavigateTo")
	require.Equal(t, page, nav.Page)
	return nav
}

var testCtx = context.Background()
