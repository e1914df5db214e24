// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (username and password) and dispatches an async token request
// on submission. On success it navigates to the todo list; the adapter keeps
// the issued token.
type LoginModel struct {
	ctx context.Context
	api adapter.TodoAPIAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the username field focused and
// the password field masked.
func NewLoginModel(ctx context.Context, api adapter.TodoAPIAdapter) *LoginModel {
	return &LoginModel{
		ctx:    ctx,
		api:    api,
		inputs: newCredentialInputs(),
	}
}

func newCredentialInputs() []textinput.Model {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 72
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return []textinput.Model{usernameInput, passwordInput}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginResultMsg]: clears the submitting state; navigates to the list on success.
//   - [statusMsg]: shows a notice, e.g. after registration or logout.
//   - ctrl+r: opens the registration screen.
//   - tab / shift+tab: moves focus between inputs.
//   - enter: validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, navigate(pageList, statusMsg("Logged in as "+msg.username))
	case statusMsg:
		m.status = string(msg)
		m.errMsg = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.register):
			m.errMsg = ""
			m.status = ""
			return m, navigate(pageRegister, nil)
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

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Log in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	renderNotices(&b, m.status, m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ ctrl+r: create account")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		_, err := api.Login(ctx, models.Credentials{Username: username, Password: password})
		return loginResultMsg{username: username, err: err}
	}
}

func (m *LoginModel) reset() {
	m.inputs = newCredentialInputs()
	m.focus = 0
	m.status = ""
	m.errMsg = ""
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func focusNext(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrev(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
