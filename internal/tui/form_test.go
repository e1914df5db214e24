package tui

import (
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fillForm(m *FormModel, title, description, priority string) {
	m.title.SetValue(title)
	m.description.SetValue(description)
	m.priority.SetValue(priority)
}

func TestFormModel_CreatesTodo(t *testing.T) {
	api := newAPI(t)
	m := NewFormModel(testCtx, api)
	m.Update(editTodoMsg{})
	fillForm(m, " Buy milk ", "Two liters", "3")

	want := models.TodoFields{Title: "Buy milk", Description: "Two liters", Priority: 3}
	created := models.NewTodo(want, 7)
	created.ID = 1
	api.EXPECT().CreateTodo(gomock.Any(), want).Return(created, nil)

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))
	msg := exec(t, cmd)
	assert.True(t, m.submitting)

	_, cmd = m.Update(msg)
	nav := requireNavigate(t, cmd, pageList)
	assert.Equal(t, statusMsg(`Todo "Buy milk" created`), nav.Payload)
}

func TestFormModel_EditsTodo(t *testing.T) {
	api := newAPI(t)
	m := NewFormModel(testCtx, api)
	m.Update(editTodoMsg{todo: &milk})

	assert.Equal(t, "Buy milk", m.title.Value())
	assert.Equal(t, "3", m.priority.Value())
	assert.Contains(t, m.View(), "EDIT TODO #1")

	m.setFocus(focusComplete)
	m.Update(keyOf(tea.KeySpace))
	assert.True(t, m.complete)

	want := milk.Fields()
	want.Complete = true
	api.EXPECT().UpdateTodo(gomock.Any(), int64(1), want).Return(models.Todo{ID: 1, Title: "Buy milk"}, nil)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	_, cmd = m.Update(exec(t, cmd))
	nav := requireNavigate(t, cmd, pageList)
	assert.Equal(t, statusMsg(`Todo "Buy milk" updated`), nav.Payload)
}

func TestFormModel_RejectsNonNumericPriority(t *testing.T) {
	m := NewFormModel(testCtx, newAPI(t))
	fillForm(m, "Buy milk", "Two liters", "x")

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "Priority must be a number")
}

func TestFormModel_ServerValidationErrorStays(t *testing.T) {
	api := newAPI(t)
	m := NewFormModel(testCtx, api)
	fillForm(m, "ab", "Two liters", "3")
	api.EXPECT().CreateTodo(gomock.Any(), gomock.Any()).
		Return(models.Todo{}, adapter.ErrBadRequest)

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))
	_, cmd = m.Update(exec(t, cmd))

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.NotEmpty(t, m.errMsg)
}

func TestFormModel_EnterInDescriptionDoesNotSubmit(t *testing.T) {
	m := NewFormModel(testCtx, newAPI(t))
	fillForm(m, "Buy milk", "Two liters", "3")
	m.Update(keyOf(tea.KeyTab))
	require.Equal(t, focusDescription, m.focus)

	m.Update(keyOf(tea.KeyEnter))

	assert.False(t, m.submitting)
}

func TestFormModel_FocusCycles(t *testing.T) {
	m := NewFormModel(testCtx, newAPI(t))

	for want := 1; want <= formFieldCount; want++ {
		m.Update(keyOf(tea.KeyTab))
		assert.Equal(t, want%formFieldCount, m.focus)
	}
	m.Update(keyOf(tea.KeyShiftTab))
	assert.Equal(t, focusComplete, m.focus)
}

func TestFormModel_EscGoesBack(t *testing.T) {
	m := NewFormModel(testCtx, newAPI(t))

	_, cmd := m.Update(keyOf(tea.KeyEsc))

	nav := requireNavigate(t, cmd, pageList)
	assert.Nil(t, nav.Payload)
}
