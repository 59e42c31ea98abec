package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shayar/PhdMatcher-FE/internal/session"
	"github.com/shayar/PhdMatcher-FE/models"
)

// protectedPages need an authenticated session.
var protectedPages = map[string]bool{
	pageDashboard: true,
	pageSearch:    true,
	pageProfessor: true,
	pageProfile:   true,
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) observes the session and routes protected pages through session.Guard
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	session Session
	state   session.State
	spinner spinner.Model

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage once the session
// allows it.
func NewRootModel(pages map[string]tea.Model, startPage string, sess Session, buildInfo models.AppBuildInfo) RootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return RootModel{
		pages:     pages,
		current:   startPage,
		session:   sess,
		state:     session.State{Status: session.StatusInitializing},
		spinner:   s,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	sess := r.session
	return tea.Batch(
		r.spinner.Tick,
		func() tea.Msg { return sessionChangedMsg{state: sess.State()} },
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.current == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo || r.decision() == session.DecisionLoading {
			return r, nil
		}
	}

	// The loading spinner only ticks while the session loads.
	if tick, ok := msg.(spinner.TickMsg); ok && tick.ID == r.spinner.ID() {
		if r.decision() != session.DecisionLoading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(tick)
		return r, cmd
	}

	switch msg := msg.(type) {
	case sessionChangedMsg:
		return r.onSessionChanged(msg)

	case NavigateTo:
		return r.navigate(msg)
	}

	page := r.pages[r.current]
	if page == nil {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.decision() == session.DecisionLoading {
		return appStyle.Render(renderPage(models.AppName, r.spinner.View()+" Loading...", ""))
	}

	page := r.pages[r.current]
	if page == nil {
		return appStyle.Render(renderPage(models.AppName, "", ""))
	}
	return appStyle.Render(page.View())
}

// Current returns the name of the active page.
func (r RootModel) Current() string {
	return r.current
}

func (r RootModel) decision() session.Decision {
	if !protectedPages[r.current] {
		if r.state.IsLoading() {
			return session.DecisionLoading
		}
		return session.DecisionRender
	}
	return session.Guard(r.state)
}

// onSessionChanged applies a newer session snapshot, redirects when the
// active page is no longer allowed and lets the page see the new state.
func (r RootModel) onSessionChanged(msg sessionChangedMsg) (tea.Model, tea.Cmd) {
	if msg.state.Version <= r.state.Version && r.state.Status != session.StatusInitializing {
		return r, nil
	}
	wasLoading := r.state.IsLoading()
	r.state = msg.state

	switch r.state.Status {
	case session.StatusAnonymous:
		if protectedPages[r.current] {
			return r.navigate(NavigateTo{Page: pageLogin})
		}
	case session.StatusAuthenticated:
		if !protectedPages[r.current] {
			return r.navigate(NavigateTo{Page: pageDashboard})
		}
	}
	if wasLoading && !r.state.IsLoading() {
		// The start page was never initialised while the session loaded.
		return r.navigate(NavigateTo{Page: r.current})
	}

	page := r.pages[r.current]
	if page == nil {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	if protectedPages[nav.Page] && session.Guard(r.state) == session.DecisionRedirectLogin {
		nav = NavigateTo{Page: pageLogin}
		next = r.pages[pageLogin]
		if next == nil {
			return r, nil
		}
	}

	r.showBuildInfo = false
	r.current = nav.Page

	cmds := []tea.Cmd{next.Init()}
	if nav.Payload != nil {
		payload := nav.Payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}
