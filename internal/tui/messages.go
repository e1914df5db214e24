package tui

import (
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page right after its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// quitMsg asks the router to stop the program.
type quitMsg struct{}

// statusMsg shows a one-line notice on the receiving page.
type statusMsg string

// editTodoMsg opens the form. A nil todo means a new one.
type editTodoMsg struct {
	todo *models.Todo
}

type loginResultMsg struct {
	username string
	err      error
}

type registerResultMsg struct {
	username string
	err      error
}

type todosLoadedMsg struct {
	todos   []models.Todo
	version string
	err     error
}

type todoToggledMsg struct {
	todo models.Todo
	err  error
}

type todoDeletedMsg struct {
	todoID int64
	err    error
}

type todoSavedMsg struct {
	todo models.Todo
	err  error
}

type copiedMsg struct {
	err error
}
