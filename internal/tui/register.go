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
	"github.com/shayar/PhdMatcher-FE/models"
)

// RegisterModel is the Bubble Tea model for the sign-up screen. The form is
// checked locally by the session before anything is sent; a successful
// registration signs the user in.
type RegisterModel struct {
	ctx     context.Context
	session Session

	form       inputForm
	submitting bool
}

func NewRegisterModel(ctx context.Context, sess Session) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		session: sess,
		form: newInputForm(
			formField{name: validators.FieldFullName, label: "Full name", input: newInput("Jane Doe", 120, false)},
			formField{name: validators.FieldEmail, label: "Email", input: newInput("you@university.edu", 254, false)},
			formField{name: validators.FieldPassword, label: "Password", input: newInput("at least 8 characters", 256, true)},
			formField{name: validators.FieldConfirmPassword, label: "Confirm password", input: newInput("repeat password", 256, true)},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	m.submitting = false
	m.form.reset()
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
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
			return m, m.cmdRegister(m.registerForm())
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n\n[Creating account...]")
	} else {
		b.WriteString("\n\n[Create account]")
	}

	if banner := renderBanner(m.form.errs.banner); banner != "" {
		b.WriteString("\n\n")
		b.WriteString(banner)
	}

	return renderPage("CREATE ACCOUNT", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) registerForm() models.RegisterForm {
	return models.RegisterForm{
		RegisterRequest: models.RegisterRequest{
			Email:    strings.TrimSpace(m.form.value(validators.FieldEmail)),
			Password: m.form.value(validators.FieldPassword),
			FullName: strings.TrimSpace(m.form.value(validators.FieldFullName)),
		},
		ConfirmPassword: m.form.value(validators.FieldConfirmPassword),
	}
}

func (m *RegisterModel) cmdRegister(form models.RegisterForm) tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		return registerResultMsg{err: sess.Register(ctx, form)}
	}
}
