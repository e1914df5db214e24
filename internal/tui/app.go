package tui

import (
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin    = "login"
	pageRegister = "register"
	pageList     = "list"
	pageForm     = "form"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "f1":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if _, ok := msg.(quitMsg); ok {
		r.quitByUser = true
		return r, tea.Quit
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = nav.Page

		if nav.Payload != nil {
			payload := nav.Payload
			return r, tea.Batch(next.Init(), func() tea.Msg { return payload })
		}
		return r, next.Init()
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("TODO KEEPER", "", "")
	}
	return page.View()
}
