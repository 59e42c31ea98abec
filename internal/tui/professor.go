// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/service"
	"github.com/shayar/PhdMatcher-FE/models"
)

const statusTTL = 2 * time.Second

// ProfessorModel shows one professor. The row it was opened from is shown
// at once and replaced by the full record when it arrives; match details of
// the row are kept.
type ProfessorModel struct {
	ctx    context.Context
	search service.SearchService

	writeClipboard func(string) error

	professor models.Professor
	back      string
	loading   bool
	status    string
	errMsg    string
}

func NewProfessorModel(ctx context.Context, search service.SearchService) *ProfessorModel {
	return &ProfessorModel{
		ctx:            ctx,
		search:         search,
		writeClipboard: clipboard.WriteAll,
		back:           pageDashboard,
	}
}

func (m *ProfessorModel) Init() tea.Cmd {
	return nil
}

func (m *ProfessorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showProfessorMsg:
		m.professor = msg.professor
		m.back = msg.back
		m.status = ""
		m.errMsg = ""
		if m.professor.OpenAlexID == "" {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad(m.professor.OpenAlexID)

	case professorLoadedMsg:
		if msg.professor.OpenAlexID != "" && msg.professor.OpenAlexID != m.professor.OpenAlexID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Message(msg.err)
			return m, nil
		}
		full := msg.professor
		if full.MatchScore == nil {
			full.MatchScore = m.professor.MatchScore
		}
		if full.MatchExplanation == nil {
			full.MatchExplanation = m.professor.MatchExplanation
		}
		m.professor = full
		return m, nil

	case copiedMsg:
		m.status = msg.what + " copied to clipboard"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = ""
		m.errMsg = "Copy to clipboard failed: " + msg.err.Error()
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			back := m.back
			return m, func() tea.Msg { return NavigateTo{Page: back} }
		case key.Matches(msg, keys.copyLink):
			if m.professor.HomepageURL == "" {
				return m, nil
			}
			return m, m.cmdCopy("Homepage", m.professor.HomepageURL)
		case key.Matches(msg, keys.copyORCID):
			if m.professor.ORCID == "" {
				return m, nil
			}
			return m, m.cmdCopy("ORCID", m.professor.ORCID)
		}
	}

	return m, nil
}

func (m *ProfessorModel) View() string {
	p := m.professor
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Title()))
	b.WriteString("\n")
	b.WriteString(valueOrDash(p.InstitutionName))
	b.WriteString("\n\n")

	if p.MatchScore != nil {
		b.WriteString(fmt.Sprintf("Match:        %s\n", strings.TrimSpace(formatScore(p.MatchScore))))
	}
	b.WriteString(fmt.Sprintf("Works:        %d\n", p.WorksCount))
	b.WriteString(fmt.Sprintf("Citations:    %d\n", p.CitedByCount))
	b.WriteString(fmt.Sprintf("h-index:      %d   i10-index: %d\n", p.HIndex, p.I10Index))
	b.WriteString(fmt.Sprintf("Homepage:     %s\n", valueOrDash(p.HomepageURL)))
	b.WriteString(fmt.Sprintf("ORCID:        %s\n", valueOrDash(p.ORCID)))

	if len(p.Concepts) > 0 {
		b.WriteString("\nResearch areas:\n")
		for _, c := range p.Concepts {
			b.WriteString(fmt.Sprintf("  %-32s %3.0f%%\n", fitText(c.DisplayName, 32), c.Score*100))
		}
	}

	if p.ResearchSummary != "" {
		b.WriteString("\n")
		b.WriteString(p.ResearchSummary)
		b.WriteString("\n")
	}

	if ex := p.MatchExplanation; ex != nil {
		b.WriteString("\nWhy this match:\n")
		b.WriteString(fmt.Sprintf("  Concepts: %s\n", joinOrDash(ex.MatchingConcepts)))
		b.WriteString(fmt.Sprintf("  Keywords: %s\n", joinOrDash(ex.CommonKeywords)))
	}

	if m.loading {
		b.WriteString(helpStyle.Render("\nLoading details..."))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if banner := renderBanner(m.errMsg); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
	}

	return renderPage("PROFESSOR", strings.TrimRight(b.String(), "\n"), "c: copy homepage │ o: copy ORCID │ esc: back")
}

func (m *ProfessorModel) cmdLoad(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.search

	return func() tea.Msg {
		p, err := svc.Professor(ctx, id)
		if err != nil {
			return professorLoadedMsg{professor: models.Professor{OpenAlexID: id}, err: err}
		}
		return professorLoadedMsg{professor: p}
	}
}

func (m *ProfessorModel) cmdCopy(what, text string) tea.Cmd {
	write := m.writeClipboard

	return func() tea.Msg {
		if err := write(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
