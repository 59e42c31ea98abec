// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/service"
	"github.com/shayar/PhdMatcher-FE/models"
)

// DashboardModel lists the current user's best matching professors.
type DashboardModel struct {
	ctx      context.Context
	session  Session
	matching service.MatchingService

	user    *models.User
	matches []models.Professor
	total   int
	tookMS  float64
	idx     int
	loading bool
	spinner spinner.Model
	errMsg  string
}

func NewDashboardModel(ctx context.Context, sess Session, matching service.MatchingService) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:      ctx,
		session:  sess,
		matching: matching,
		spinner:  s,
	}
}

// Init reloads the matches on every visit.
func (m *DashboardModel) Init() tea.Cmd {
	m.user = m.session.State().User
	return m.reload()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		m.user = msg.state.User
		return m, nil

	case matchesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Message(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.matches = msg.result.Matches
		m.total = msg.result.TotalMatches
		m.tookMS = msg.result.ProcessingTimeMS
		if m.idx >= len(m.matches) {
			m.idx = max(len(m.matches)-1, 0)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.matches)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if len(m.matches) == 0 {
				return m, nil
			}
			p := m.matches[m.idx]
			return m, func() tea.Msg {
				return NavigateTo{Page: pageProfessor, Payload: showProfessorMsg{professor: p, back: pageDashboard}}
			}
		case key.Matches(msg, keys.reload):
			return m, m.reload()
		case key.Matches(msg, keys.search):
			return m, func() tea.Msg { return NavigateTo{Page: pageSearch} }
		case key.Matches(msg, keys.profile):
			return m, func() tea.Msg { return NavigateTo{Page: pageProfile} }
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if m.user != nil {
		b.WriteString("Welcome, ")
		b.WriteString(m.user.DisplayName())
		b.WriteString("\n")
		if len(m.user.ResearchInterests) == 0 && !m.user.HasResume() {
			b.WriteString(helpStyle.Render("Add research interests or upload a resume in your profile to improve matches."))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Finding your matches...\n")
	case len(m.matches) == 0 && m.errMsg == "":
		b.WriteString("No matches yet.\n")
	default:
		b.WriteString(fmt.Sprintf("  %-6s │ %-24s │ %s\n", "Score", "Professor", "Institution"))
		for i, p := range m.matches {
			line := fmt.Sprintf("%s %s │ %-24s │ %s", cursor(i == m.idx), formatScore(p.MatchScore), fitText(p.Title(), 24), fitText(p.InstitutionName, 36))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render(fmt.Sprintf("\n%d of %d matches in %.0f ms", len(m.matches), m.total, m.tookMS)))
		b.WriteString("\n")
	}

	if banner := renderBanner(m.errMsg); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
	}

	return renderPage("MY MATCHES", strings.TrimRight(b.String(), "\n"),
		"enter: open │ r: reload │ s: search │ p: profile │ l: log out │ q: quit")
}

func (m *DashboardModel) reload() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoadMatches())
}

func (m *DashboardModel) cmdLoadMatches() tea.Cmd {
	ctx := m.ctx
	svc := m.matching

	return func() tea.Msg {
		result, err := svc.MyMatches(ctx, models.DefaultTopK)
		return matchesLoadedMsg{result: result, err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		sess.Logout(ctx)
		return nil
	}
}
