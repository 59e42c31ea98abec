// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shayar/PhdMatcher-FE/internal/validators"
)

// LoginModel is the Bubble Tea model for the login screen. It renders email
// and password inputs and signs in through the session on submission.
// Success is observed by [RootModel] as a session transition; the model only
// handles failures.
type LoginModel struct {
	ctx     context.Context
	session Session

	form       inputForm
	submitting bool
}

// NewLoginModel creates a [LoginModel]. The email field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, sess Session) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: sess,
		form: newInputForm(
			formField{name: validators.FieldEmail, label: "Email", input: newInput("you@university.edu", 254, false)},
			formField{name: validators.FieldPassword, label: "Password", input: newInput("password", 256, true)},
		),
	}
}

// Init implements [tea.Model]. Every visit starts with an empty form.
func (m *LoginModel) Init() tea.Cmd {
	m.submitting = false
	m.form.reset()
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResultMsg: clears submitting state and shows any error.
//   - esc: back to the menu.
//   - tab / shift+tab: moves focus between inputs.
//   - enter: dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		m.form.setError(msg.err)
		if msg.err == nil {
			m.form.reset()
		}
		return m, nil
	case sessionChangedMsg:
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.form.errs = formErrors{}
			return m, m.cmdLogin(strings.TrimSpace(m.form.value(validators.FieldEmail)), m.form.value(validators.FieldPassword))
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n\n[Logging in...]")
	} else {
		b.WriteString("\n\n[Log in]")
	}

	if banner := renderBanner(m.form.errs.banner); banner != "" {
		b.WriteString("\n\n")
		b.WriteString(banner)
	}

	return renderPage("LOG IN", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		return loginResultMsg{err: sess.Login(ctx, email, password)}
	}
}
