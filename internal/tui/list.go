package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

const listTitleWidth = 40

// ListModel shows the caller's todos. Every change goes to the server and
// is followed by a reload, so the list always mirrors the server state.
type ListModel struct {
	ctx context.Context
	api adapter.TodoAPIAdapter

	todos         []models.Todo
	version       string
	idx           int
	loading       bool
	confirmDelete bool
	status        string
	errMsg        string
}

func NewListModel(ctx context.Context, api adapter.TodoAPIAdapter) *ListModel {
	return &ListModel{ctx: ctx, api: api}
}

func (m *ListModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.todos = msg.todos
		if msg.version != "" {
			m.version = msg.version
		}
		m.clampIndex()
		return m, nil
	case statusMsg:
		m.status = string(msg)
		m.errMsg = ""
		return m, nil
	case todoToggledMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("%q marked %s", msg.todo.Title, completeLabel(msg.todo.Complete))
		m.errMsg = ""
		return m, m.Init()
	case todoDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Todo #%d deleted", msg.todoID)
		m.errMsg = ""
		return m, m.Init()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard is unavailable: " + msg.err.Error()
			return m, nil
		}
		m.status = "Description copied to clipboard"
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *ListModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmDelete = false
			if todo, ok := m.selected(); ok {
				return m, m.cmdDelete(todo.ID)
			}
		case key.Matches(msg, keys.no):
			m.confirmDelete = false
			m.status = "Delete cancelled"
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, func() tea.Msg { return quitMsg{} }
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.todos)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.status = ""
		return m, m.Init()
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageForm, editTodoMsg{})
	case key.Matches(msg, keys.logout):
		m.api.SetToken("")
		m.todos = nil
		m.idx = 0
		m.status = ""
		m.errMsg = ""
		return m, navigate(pageLogin, statusMsg("Logged out"))
	}

	todo, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.toggle):
		return m, m.cmdToggle(todo)
	case key.Matches(msg, keys.edit):
		return m, navigate(pageForm, editTodoMsg{todo: &todo})
	case key.Matches(msg, keys.delete):
		m.confirmDelete = true
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(todo.Description)
	}

	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && len(m.todos) == 0:
		b.WriteString("Loading...\n")
	case len(m.todos) == 0:
		b.WriteString("No todos yet, press n to create one\n")
	default:
		b.WriteString("   #    │ P │ Title\n")
		b.WriteString("────────┼───┼──────────────────────────────────────────\n")
		for i, todo := range m.todos {
			line := fmt.Sprintf("%s %-5d │ %d │ %s", checkbox(todo.Complete), todo.ID, todo.Priority, fitText(todo.Title, listTitleWidth))
			switch {
			case i == m.idx:
				line = selectedStyle.Render("> " + line)
			case todo.Complete:
				line = "  " + doneStyle.Render(line)
			default:
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		if todo, ok := m.selected(); ok {
			b.WriteString("\n")
			b.WriteString(valueOrDash(todo.Description))
			b.WriteString("\n")
		}
	}

	if m.confirmDelete {
		if todo, ok := m.selected(); ok {
			b.WriteString(fmt.Sprintf("\nDelete %q? y: yes │ n: no\n", todo.Title))
		}
	}
	renderNotices(&b, m.status, m.errMsg)

	title := "TODOS"
	if m.version != "" {
		title += " (server " + m.version + ")"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ space: done │ n: new │ e: edit │ d: delete │ y: copy │ r: refresh │ l: log out │ q: quit")
}

func (m *ListModel) selected() (models.Todo, bool) {
	if m.idx < 0 || m.idx >= len(m.todos) {
		return models.Todo{}, false
	}
	return m.todos[m.idx], true
}

func (m *ListModel) clampIndex() {
	if m.idx >= len(m.todos) {
		m.idx = len(m.todos) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *ListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		todos, err := api.ListTodos(ctx)
		if err != nil {
			return todosLoadedMsg{err: err}
		}
		// The version is cosmetic; a failure here does not fail the load.
		version, _ := api.Version(ctx)
		return todosLoadedMsg{todos: todos, version: version}
	}
}

// cmdToggle flips complete through a full-replace update.
func (m *ListModel) cmdToggle(todo models.Todo) tea.Cmd {
	ctx := m.ctx
	api := m.api

	fields := todo.Fields()
	fields.Complete = !fields.Complete

	return func() tea.Msg {
		updated, err := api.UpdateTodo(ctx, todo.ID, fields)
		return todoToggledMsg{todo: updated, err: err}
	}
}

func (m *ListModel) cmdDelete(todoID int64) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		return todoDeletedMsg{todoID: todoID, err: api.DeleteTodo(ctx, todoID)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func checkbox(complete bool) string {
	if complete {
		return "[x]"
	}
	return "[ ]"
}

func completeLabel(complete bool) string {
	if complete {
		return "done"
	}
	return "not done"
}
