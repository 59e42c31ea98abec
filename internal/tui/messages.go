package tui

import (
	"github.com/shayar/PhdMatcher-FE/internal/session"
	"github.com/shayar/PhdMatcher-FE/models"
)

// Page names known to [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
	pageSearch    = "search"
	pageProfessor = "professor"
	pageProfile   = "profile"
)

// NavigateTo asks the root model to switch pages. Payload, when set, is
// delivered to the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type sessionChangedMsg struct {
	state session.State
}

type loginResultMsg struct {
	err error
}

type registerResultMsg struct {
	err error
}

type matchesLoadedMsg struct {
	result models.MatchResult
	err    error
}

type searchDoneMsg struct {
	query  models.SearchQuery
	result models.SearchResult
	err    error
}

// showProfessorMsg opens the detail page; back is the page esc returns to.
type showProfessorMsg struct {
	professor models.Professor
	back      string
}

type professorLoadedMsg struct {
	professor models.Professor
	err       error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type uploadProgressMsg struct {
	percent int
}

type uploadDoneMsg struct {
	ack models.UploadAck
	err error
}

type copiedMsg struct {
	what string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

type tokenVerifiedMsg struct {
	user models.User
	err  error
}
