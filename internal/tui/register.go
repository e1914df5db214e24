package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel creates an account and sends the user back to the login
// screen. It does not log in by itself.
type RegisterModel struct {
	ctx context.Context
	api adapter.TodoAPIAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, api adapter.TodoAPIAdapter) *RegisterModel {
	return &RegisterModel{
		ctx:    ctx,
		api:    api,
		inputs: newRegisterInputs(),
	}
}

func newRegisterInputs() []textinput.Model {
	inputs := newCredentialInputs()

	nameInput := textinput.New()
	nameInput.Placeholder = "name (optional)"
	nameInput.CharLimit = 128
	nameInput.Width = 40

	phoneInput := textinput.New()
	phoneInput.Placeholder = "phone number (optional)"
	phoneInput.CharLimit = 32
	phoneInput.Width = 40

	return append(inputs, nameInput, phoneInput)
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.inputs = newRegisterInputs()
		m.focus = 0
		m.errMsg = ""
		return m, navigate(pageLogin, statusMsg("Account "+msg.username+" created, log in"))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.errMsg = ""
			return m, navigate(pageLogin, nil)
		case key.Matches(msg, keys.tab):
			m.focus = focusNext(m.inputs, m.focus)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focus = focusPrev(m.inputs, m.focus)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				Username:    strings.TrimSpace(m.inputs[0].Value()),
				Password:    m.inputs[1].Value(),
				Name:        strings.TrimSpace(m.inputs[2].Value()),
				PhoneNumber: strings.TrimSpace(m.inputs[3].Value()),
			}
			if req.Username == "" || req.Password == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{"Username", "Password", "Name    ", "Phone   "}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Create account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}
	renderNotices(&b, "", m.errMsg)

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		_, err := api.Register(ctx, req)
		return registerResultMsg{username: req.Username, err: err}
	}
}
