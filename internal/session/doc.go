// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client's belief about who is signed in.
//
// A [Controller] is the only mutator of the session. It moves between three
// states:
//
//	Initializing ──Initialize──▶ Authenticated(user) | Anonymous
//	Anonymous    ──Login/Register──▶ Authenticated(user)
//	any          ──Logout──▶ Anonymous
//
// Operations that change the stored token (Initialize, Login, Register,
// Logout) run one at a time; starting one cancels the one in flight, and a
// result is applied only while its operation is still the newest. Refresh
// re-reads the user without touching the token and never signs anybody out.
//
// Observers registered with [Controller.Subscribe] receive a [State] after
// every applied transition. [Guard] turns a state into a routing decision for
// views that require a signed-in user.
package session
