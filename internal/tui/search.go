// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/service"
	"github.com/shayar/PhdMatcher-FE/models"
)

// SearchPageSize is the number of professors requested per page.
const SearchPageSize = 10

const (
	searchFieldQuery   = "query"
	searchFieldCountry = "country"
	searchFieldConcept = "concept"
)

// SearchModel runs free-text professor searches. Focus moves between the
// inputs and the result list with tab; paging keys work on the list.
type SearchModel struct {
	ctx    context.Context
	search service.SearchService

	form        inputForm
	listFocused bool

	last    models.SearchQuery
	result  models.SearchResult
	idx     int
	loading bool
	spinner spinner.Model
	errMsg  string
}

func NewSearchModel(ctx context.Context, search service.SearchService) *SearchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &SearchModel{
		ctx:    ctx,
		search: search,
		form: newInputForm(
			formField{name: searchFieldQuery, label: "Keywords", input: newInput("e.g. machine learning", 200, false)},
			formField{name: searchFieldCountry, label: "Country", input: newInput("optional, e.g. US", 56, false)},
			formField{name: searchFieldConcept, label: "Concept", input: newInput("optional, e.g. Robotics", 120, false)},
		),
		spinner: s,
	}
}

// Init keeps the previous query and results so that returning from a
// professor page lands where the user left.
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Message(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.last = msg.query
		m.result = msg.result
		m.idx = 0
		if len(m.result.Professors) > 0 {
			m.focusList()
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
		if key.Matches(msg, keys.esc) {
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		}
		if m.listFocused {
			return m, m.updateList(msg)
		}
		switch {
		case key.Matches(msg, keys.tab):
			if m.form.focus == len(m.form.fields)-1 && len(m.result.Professors) > 0 {
				m.focusList()
				return m, nil
			}
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.runSearch(m.query(0))
		}
	}

	if m.listFocused {
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *SearchModel) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.listFocused = false
		m.form.fields[m.form.focus].input.Focus()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.result.Professors)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.nextPage):
		if m.result.HasMore(m.last.Offset) {
			next := m.last
			next.Offset += len(m.result.Professors)
			return m.runSearch(next)
		}
	case key.Matches(msg, keys.prevPage):
		if m.last.Offset > 0 {
			prev := m.last
			prev.Offset = max(prev.Offset-SearchPageSize, 0)
			return m.runSearch(prev)
		}
	case key.Matches(msg, keys.enter):
		if len(m.result.Professors) == 0 {
			return nil
		}
		p := m.result.Professors[m.idx]
		return func() tea.Msg {
			return NavigateTo{Page: pageProfessor, Payload: showProfessorMsg{professor: p, back: pageSearch}}
		}
	}
	return nil
}

func (m *SearchModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Searching...\n")
	case m.last.Query == "" && m.last.Filters == nil && len(m.result.Professors) == 0:
		b.WriteString(helpStyle.Render("Type keywords and press enter."))
		b.WriteString("\n")
	case len(m.result.Professors) == 0:
		b.WriteString("No professors found.\n")
	default:
		for i, p := range m.result.Professors {
			line := fmt.Sprintf("%s %-24s │ %-30s │ h-index %d", cursor(m.listFocused && i == m.idx), fitText(p.Title(), 24), fitText(p.InstitutionName, 30), p.HIndex)
			if m.listFocused && i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		from := m.last.Offset + 1
		to := m.last.Offset + len(m.result.Professors)
		b.WriteString(helpStyle.Render(fmt.Sprintf("\n%d-%d of %d (%.0f ms)", from, to, m.result.TotalCount, m.result.QueryTimeMS)))
		b.WriteString("\n")
	}

	if banner := renderBanner(m.errMsg); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
	}

	hotKeys := "enter: search │ tab: next field │ esc: back"
	if m.listFocused {
		hotKeys = "enter: open │ ←/→: page │ tab: edit query │ esc: back"
	}
	return renderPage("SEARCH PROFESSORS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// query builds the request for the current inputs starting at offset.
func (m *SearchModel) query(offset int) models.SearchQuery {
	q := models.SearchQuery{
		Query:  strings.TrimSpace(m.form.value(searchFieldQuery)),
		Limit:  SearchPageSize,
		Offset: offset,
	}

	country := strings.TrimSpace(m.form.value(searchFieldCountry))
	concept := strings.TrimSpace(m.form.value(searchFieldConcept))
	if country != "" || concept != "" {
		q.Filters = &models.SearchFilters{Country: country}
		if concept != "" {
			q.Filters.Concepts = []string{concept}
		}
	}
	return q
}

func (m *SearchModel) focusList() {
	m.form.fields[m.form.focus].input.Blur()
	m.listFocused = true
}

func (m *SearchModel) runSearch(q models.SearchQuery) tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true

	ctx := m.ctx
	svc := m.search
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		result, err := svc.Search(ctx, q)
		return searchDoneMsg{query: q, result: result, err: err}
	})
}
