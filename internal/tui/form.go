package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusTitle = iota
	focusDescription
	focusPriority
	focusComplete
	formFieldCount
)

// FormModel creates a new todo or replaces an existing one. Field rules are
// enforced by the server; the form only checks that priority is a number.
type FormModel struct {
	ctx context.Context
	api adapter.TodoAPIAdapter

	editing *models.Todo

	title       textinput.Model
	description textarea.Model
	priority    textinput.Model
	complete    bool

	focus      int
	submitting bool
	errMsg     string
}

func NewFormModel(ctx context.Context, api adapter.TodoAPIAdapter) *FormModel {
	m := &FormModel{ctx: ctx, api: api}
	m.reset(nil)
	return m
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editTodoMsg:
		m.reset(msg.todo)
		return m, nil
	case todoSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		verb := "created"
		if m.editing != nil {
			verb = "updated"
		}
		return m, navigate(pageList, statusMsg(fmt.Sprintf("Todo %q %s", msg.todo.Title, verb)))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.errMsg = ""
			return m, navigate(pageList, nil)
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % formFieldCount)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + formFieldCount) % formFieldCount)
			return m, nil
		case key.Matches(msg, keys.save):
			return m, m.submit()
		case key.Matches(msg, keys.enter) && m.focus != focusDescription:
			return m, m.submit()
		case key.Matches(msg, keys.toggle) && m.focus == focusComplete:
			m.complete = !m.complete
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	case focusPriority:
		m.priority, cmd = m.priority.Update(msg)
	}
	return m, cmd
}

func (m *FormModel) View() string {
	var b strings.Builder
	b.WriteString("Title       │ [")
	b.WriteString(m.title.View())
	b.WriteString("]\n")
	b.WriteString("Priority    │ [")
	b.WriteString(m.priority.View())
	b.WriteString("]\n")

	completeLine := "Complete    │ " + checkbox(m.complete)
	if m.focus == focusComplete {
		completeLine = selectedStyle.Render(completeLine)
	}
	b.WriteString(completeLine)
	b.WriteString("\n\nDescription\n")
	b.WriteString(m.description.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	renderNotices(&b, "", m.errMsg)

	title := "NEW TODO"
	if m.editing != nil {
		title = fmt.Sprintf("EDIT TODO #%d", m.editing.ID)
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ space: toggle complete │ ctrl+s: save │ esc: back")
}

func (m *FormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	priority, err := strconv.Atoi(strings.TrimSpace(m.priority.Value()))
	if err != nil {
		m.errMsg = "Priority must be a number from 1 to 5"
		return nil
	}

	fields := models.TodoFields{
		Title:       strings.TrimSpace(m.title.Value()),
		Description: strings.TrimSpace(m.description.Value()),
		Priority:    priority,
		Complete:    m.complete,
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	api := m.api
	if m.editing == nil {
		return func() tea.Msg {
			todo, err := api.CreateTodo(ctx, fields)
			return todoSavedMsg{todo: todo, err: err}
		}
	}

	todoID := m.editing.ID
	return func() tea.Msg {
		todo, err := api.UpdateTodo(ctx, todoID, fields)
		return todoSavedMsg{todo: todo, err: err}
	}
}

func (m *FormModel) setFocus(focus int) {
	m.title.Blur()
	m.description.Blur()
	m.priority.Blur()

	m.focus = focus
	switch focus {
	case focusTitle:
		m.title.Focus()
	case focusDescription:
		m.description.Focus()
	case focusPriority:
		m.priority.Focus()
	}
}

// reset fills the form from todo, or clears it when todo is nil.
func (m *FormModel) reset(todo *models.Todo) {
	m.title = textinput.New()
	m.title.Placeholder = "3 to 50 characters"
	m.title.CharLimit = 50
	m.title.Width = 50

	m.description = textarea.New()
	m.description.Placeholder = "3 to 1000 characters"
	m.description.CharLimit = 1000
	m.description.SetWidth(60)
	m.description.SetHeight(5)
	m.description.ShowLineNumbers = false

	m.priority = textinput.New()
	m.priority.Placeholder = "1-5"
	m.priority.CharLimit = 1
	m.priority.Width = 3

	m.editing = nil
	m.complete = false
	m.submitting = false
	m.errMsg = ""

	if todo != nil {
		edited := *todo
		m.editing = &edited
		m.title.SetValue(todo.Title)
		m.description.SetValue(todo.Description)
		m.priority.SetValue(strconv.Itoa(todo.Priority))
		m.complete = todo.Complete
	}

	m.setFocus(focusTitle)
}
