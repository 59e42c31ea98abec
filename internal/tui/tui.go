// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/service"
	"github.com/shayar/PhdMatcher-FE/internal/session"
	"github.com/shayar/PhdMatcher-FE/models"
)

var ErrUserQuit = errors.New("user quit")

// TUI runs the interactive terminal interface.
type TUI struct {
	services  *service.ClientServices
	session   Session
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, sess Session, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	if sess == nil {
		return nil, errors.New("tui: session is required")
	}

	return &TUI{
		services:       services,
		session:        sess,
		buildInfo:      buildInfo,
		logger:         log.WithComponent("tui"),
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. Session transitions
// are delivered to the program as messages for the whole run.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageDashboard, t.session, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	program := tea.NewProgram(root, opts...)

	unsubscribe := t.session.Subscribe(func(s session.State) {
		program.Send(sessionChangedMsg{state: s})
	})
	defer unsubscribe()

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("ui stopped by context")
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, t.session),
		pageRegister:  NewRegisterModel(ctx, t.session),
		pageDashboard: NewDashboardModel(ctx, t.session, t.services.Matching),
		pageSearch:    NewSearchModel(ctx, t.services.Search),
		pageProfessor: NewProfessorModel(ctx, t.services.Search),
		pageProfile:   NewProfileModel(ctx, t.session, t.services.User, t.services.Auth),
	}
}
