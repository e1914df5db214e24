// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLoginModel_Success(t *testing.T) {
	api := newAPI(t)
	m := NewLoginModel(testCtx, api)
	m.inputs[0].SetValue(" alice ")
	m.inputs[1].SetValue("s3cret")

	api.EXPECT().Login(gomock.Any(), models.Credentials{Username: "alice", Password: "s3cret"}).
		Return(models.TokenResponse{AccessToken: "tok", TokenType: models.TokenType}, nil)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	_, cmd = m.Update(exec(t, cmd))

	nav := requireNavigate(t, cmd, pageList)
	assert.Equal(t, statusMsg("Logged in as alice"), nav.Payload)
	assert.Empty(t, m.inputs[1].Value(), "password is cleared after login")
}

func TestLoginModel_WrongCredentials(t *testing.T) {
	api := newAPI(t)
	m := NewLoginModel(testCtx, api)
	m.inputs[0].SetValue("alice")
	m.inputs[1].SetValue("nope")
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.TokenResponse{}, adapter.ErrUnauthorized)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	_, cmd = m.Update(exec(t, cmd))

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "credentials are wrong")
}

func TestLoginModel_RequiresBothFields(t *testing.T) {
	m := NewLoginModel(testCtx, newAPI(t))
	m.inputs[0].SetValue("alice")

	_, cmd := m.Update(keyOf(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Username and password are required", m.errMsg)
}

func TestLoginModel_OpensRegister(t *testing.T) {
	m := NewLoginModel(testCtx, newAPI(t))

	_, cmd := m.Update(keyOf(tea.KeyCtrlR))

	requireNavigate(t, cmd, pageRegister)
}

func TestRegisterModel_CreatesAccountAndReturnsToLogin(t *testing.T) {
	api := newAPI(t)
	m := NewRegisterModel(testCtx, api)
	m.inputs[0].SetValue("bob")
	m.inputs[1].SetValue("hunter22")
	m.inputs[2].SetValue("Bob")

	api.EXPECT().Register(gomock.Any(), models.RegisterRequest{Username: "bob", Password: "hunter22", Name: "Bob"}).
		Return(models.User{UserID: 2, Login: "bob"}, nil)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	_, cmd = m.Update(exec(t, cmd))

	nav := requireNavigate(t, cmd, pageLogin)
	assert.Equal(t, statusMsg("Account bob created, log in"), nav.Payload)
}

func TestRegisterModel_TakenUsername(t *testing.T) {
	api := newAPI(t)
	m := NewRegisterModel(testCtx, api)
	m.inputs[0].SetValue("bob")
	m.inputs[1].SetValue("hunter22")
	api.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, adapter.ErrConflict)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	m.Update(exec(t, cmd))

	assert.Equal(t, "Username is already taken", m.errMsg)
}
