// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/service"
	"github.com/shayar/PhdMatcher-FE/internal/validators"
	"github.com/shayar/PhdMatcher-FE/models"
)

type profileMode int

const (
	profileView profileMode = iota
	profileEdit
	profileUpload
)

const (
	profileFieldFullName   = "full_name"
	profileFieldEducation  = "education_level"
	profileFieldStudy      = "field_of_study"
	profileFieldInterests  = "research_interests"
	profileFieldLocations  = "preferred_locations"
	profileFieldUniversity = "target_universities"
)

// ProfileModel shows the current user and lets them edit the profile,
// upload a resume or check the session with the backend. Changes are
// followed by a session refresh so every page sees the new user.
type ProfileModel struct {
	ctx      context.Context
	session  Session
	users    service.UserService
	verifier TokenVerifier

	user *models.User
	mode profileMode

	edit   inputForm
	upload inputForm

	saving    bool
	uploading bool
	percent   int
	bar       progress.Model
	progress  <-chan tea.Msg

	verifying bool
	status    string
	errMsg    string
}

func NewProfileModel(ctx context.Context, sess Session, users service.UserService, verifier TokenVerifier) *ProfileModel {
	return &ProfileModel{
		ctx:      ctx,
		session:  sess,
		users:    users,
		verifier: verifier,
		edit: newInputForm(
			formField{name: profileFieldFullName, label: "Full name", input: newInput("Jane Doe", 120, false)},
			formField{name: profileFieldEducation, label: "Education level", input: newInput("e.g. MSc", 60, false)},
			formField{name: profileFieldStudy, label: "Field of study", input: newInput("e.g. Computer Science", 120, false)},
			formField{name: profileFieldInterests, label: "Research interests", input: newInput("comma separated", 500, false)},
			formField{name: profileFieldLocations, label: "Preferred locations", input: newInput("comma separated", 300, false)},
			formField{name: profileFieldUniversity, label: "Target universities", input: newInput("comma separated", 300, false)},
		),
		upload: newInputForm(
			formField{name: validators.FieldFile, label: "Resume file", input: newInput("/path/to/resume.pdf", 4096, false)},
		),
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.user = m.session.State().User
	if !m.saving && !m.uploading {
		m.mode = profileView
	}
	m.errMsg = ""
	return nil
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		m.user = msg.state.User
		return m, nil

	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.edit.setError(msg.err)
			return m, nil
		}
		m.edit.errs = formErrors{}
		m.user = &msg.user
		m.mode = profileView
		m.status = "Profile saved"
		return m, tea.Batch(m.cmdRefresh(), cmdClearStatus())

	case uploadProgressMsg:
		m.percent = msg.percent
		return m, waitForUpload(m.progress)

	case uploadDoneMsg:
		m.uploading = false
		m.progress = nil
		if msg.err != nil {
			m.percent = 0
			m.upload.setError(msg.err)
			return m, nil
		}
		m.percent = 100
		m.upload.reset()
		m.mode = profileView
		m.status = "Resume uploaded"
		if msg.ack.Filename != "" {
			m.status += ": " + msg.ack.Filename
		}
		return m, tea.Batch(m.cmdRefresh(), cmdClearStatus())

	case tokenVerifiedMsg:
		m.verifying = false
		if msg.err != nil {
			m.errMsg = adapter.Message(msg.err)
			// the backend no longer accepts the token
			if errors.Is(msg.err, adapter.ErrAuthentication) {
				return m, m.cmdLogout()
			}
			return m, nil
		}
		m.errMsg = ""
		m.status = "Session verified for " + msg.user.Email
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case profileEdit:
			return m, m.updateEdit(msg)
		case profileUpload:
			return m, m.updateUpload(msg)
		default:
			return m, m.updateView(msg)
		}
	}

	switch m.mode {
	case profileEdit:
		return m, m.edit.update(msg)
	case profileUpload:
		return m, m.upload.update(msg)
	}
	return m, nil
}

func (m *ProfileModel) updateView(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		return func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	case key.Matches(msg, keys.edit):
		m.startEdit()
		return textinput.Blink
	case key.Matches(msg, keys.upload):
		if m.uploading {
			return nil
		}
		m.mode = profileUpload
		m.upload.reset()
		m.percent = 0
		return textinput.Blink
	case key.Matches(msg, keys.reload):
		return m.cmdRefresh()
	case key.Matches(msg, keys.verify):
		if m.verifying || m.verifier == nil {
			return nil
		}
		m.verifying = true
		m.errMsg = ""
		return m.cmdVerify()
	}
	return nil
}

func (m *ProfileModel) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = profileView
		return nil
	case key.Matches(msg, keys.tab):
		m.edit.focusNext()
		return nil
	case key.Matches(msg, keys.backtab):
		m.edit.focusPrev()
		return nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return nil
		}
		update := m.profileUpdate()
		m.saving = true
		m.edit.errs = formErrors{}
		return m.cmdSave(update)
	}
	return m.edit.update(msg)
}

func (m *ProfileModel) updateUpload(msg tea.KeyMsg) tea.Cmd {
	if m.uploading {
		return nil
	}
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = profileView
		return nil
	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(m.upload.value(validators.FieldFile))
		m.upload.errs = formErrors{}
		m.uploading = true
		m.percent = 0
		m.progress = m.startUpload(path)
		return waitForUpload(m.progress)
	}
	return m.upload.update(msg)
}

func (m *ProfileModel) View() string {
	switch m.mode {
	case profileEdit:
		return m.viewEdit()
	case profileUpload:
		return m.viewUpload()
	}

	var b strings.Builder
	if m.user == nil {
		b.WriteString("-")
	} else {
		u := m.user
		b.WriteString(fmt.Sprintf("Name:                %s\n", valueOrDash(u.FullName)))
		b.WriteString(fmt.Sprintf("Email:               %s\n", u.Email))
		b.WriteString(fmt.Sprintf("Education level:     %s\n", valueOrDash(u.EducationLevel)))
		b.WriteString(fmt.Sprintf("Field of study:      %s\n", valueOrDash(u.FieldOfStudy)))
		b.WriteString(fmt.Sprintf("Research interests:  %s\n", joinOrDash(u.ResearchInterests)))
		b.WriteString(fmt.Sprintf("Preferred locations: %s\n", joinOrDash(u.PreferredLocations)))
		b.WriteString(fmt.Sprintf("Target universities: %s\n", joinOrDash(u.TargetUniversities)))
		resume := "not uploaded"
		if u.HasResume() {
			resume = filepath.Base(u.ResumeFilePath)
		}
		b.WriteString(fmt.Sprintf("Resume:              %s\n", resume))
	}

	switch {
	case m.verifying:
		b.WriteString("\n[Verifying session...]\n")
	case m.status != "":
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if banner := renderBanner(m.errMsg); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
		b.WriteString("\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "e: edit │ u: upload resume │ t: verify session │ r: refresh │ esc: back")
}

func (m *ProfileModel) viewEdit() string {
	var b strings.Builder
	b.WriteString(m.edit.view())
	if m.saving {
		b.WriteString("\n\n[Saving...]")
	} else {
		b.WriteString("\n\n[Save]")
	}
	if banner := renderBanner(m.edit.errs.banner); banner != "" {
		b.WriteString("\n\n")
		b.WriteString(banner)
	}
	return renderPage("EDIT PROFILE", b.String(), "enter: save │ tab: next field │ esc: cancel")
}

func (m *ProfileModel) viewUpload() string {
	var b strings.Builder
	b.WriteString(m.upload.view())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("PDF, DOC or DOCX, up to 10MB."))
	b.WriteString("\n\n")
	if m.uploading || m.percent > 0 {
		b.WriteString(m.bar.ViewAs(float64(m.percent) / 100))
	} else {
		b.WriteString("[Upload]")
	}
	if banner := renderBanner(m.upload.errs.banner); banner != "" {
		b.WriteString("\n\n")
		b.WriteString(banner)
	}
	return renderPage("UPLOAD RESUME", b.String(), "enter: upload │ esc: cancel")
}

// startEdit fills the inputs from the current user.
func (m *ProfileModel) startEdit() {
	m.mode = profileEdit
	m.edit.reset()
	if m.user == nil {
		return
	}
	u := m.user
	m.edit.setValue(profileFieldFullName, u.FullName)
	m.edit.setValue(profileFieldEducation, u.EducationLevel)
	m.edit.setValue(profileFieldStudy, u.FieldOfStudy)
	m.edit.setValue(profileFieldInterests, strings.Join(u.ResearchInterests, ", "))
	m.edit.setValue(profileFieldLocations, strings.Join(u.PreferredLocations, ", "))
	m.edit.setValue(profileFieldUniversity, strings.Join(u.TargetUniversities, ", "))
}

// profileUpdate returns only the fields that differ from the current user.
func (m *ProfileModel) profileUpdate() models.ProfileUpdate {
	var current models.User
	if m.user != nil {
		current = *m.user
	}

	var update models.ProfileUpdate
	if v := strings.TrimSpace(m.edit.value(profileFieldFullName)); v != current.FullName {
		update.FullName = &v
	}
	if v := strings.TrimSpace(m.edit.value(profileFieldEducation)); v != current.EducationLevel {
		update.EducationLevel = &v
	}
	if v := strings.TrimSpace(m.edit.value(profileFieldStudy)); v != current.FieldOfStudy {
		update.FieldOfStudy = &v
	}
	if v := splitList(m.edit.value(profileFieldInterests)); !slices.Equal(v, current.ResearchInterests) {
		update.ResearchInterests = nonNil(v)
	}
	if v := splitList(m.edit.value(profileFieldLocations)); !slices.Equal(v, current.PreferredLocations) {
		update.PreferredLocations = nonNil(v)
	}
	if v := splitList(m.edit.value(profileFieldUniversity)); !slices.Equal(v, current.TargetUniversities) {
		update.TargetUniversities = nonNil(v)
	}
	return update
}

// nonNil turns a cleared list into an empty one so the update still carries
// it.
func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func (m *ProfileModel) cmdSave(update models.ProfileUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.users

	return func() tea.Msg {
		user, err := svc.UpdateProfile(ctx, update)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		sess.Refresh(ctx)
		return nil
	}
}

func (m *ProfileModel) cmdVerify() tea.Cmd {
	ctx := m.ctx
	verifier := m.verifier

	return func() tea.Msg {
		user, err := verifier.TestToken(ctx)
		return tokenVerifiedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdLogout() tea.Cmd {
	ctx := context.WithoutCancel(m.ctx)
	sess := m.session

	return func() tea.Msg {
		sess.Logout(ctx)
		return nil
	}
}

// startUpload runs the upload on its own goroutine. Progress values and the
// final uploadDoneMsg arrive on the returned channel, which is closed after
// the final message. The buffer holds every distinct percentage so the
// upload never waits on the UI.
func (m *ProfileModel) startUpload(path string) <-chan tea.Msg {
	ctx := m.ctx
	svc := m.users
	ch := make(chan tea.Msg, 102)

	go func() {
		defer close(ch)
		ack, err := svc.UploadResume(ctx, path, func(percent int) {
			ch <- uploadProgressMsg{percent: percent}
		})
		ch <- uploadDoneMsg{ack: ack, err: err}
	}()

	return ch
}

func waitForUpload(ch <-chan tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
