// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

// Decision tells a protected view what to render.
type Decision int

const (
	// DecisionLoading means a neutral loading indicator, never the protected
	// content.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin means the login entry point.
	DecisionRedirectLogin
	// DecisionRender means the protected content itself.
	DecisionRender
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRender:
		return "render"
	default:
		return "unknown"
	}
}

// Guard maps a session state to the routing decision for a view that
// requires a signed-in user.
func Guard(s State) Decision {
	switch {
	case s.IsLoading():
		return DecisionLoading
	case s.IsAuthenticated():
		return DecisionRender
	default:
		return DecisionRedirectLogin
	}
}
