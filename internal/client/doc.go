// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the stored session in the background with a deadline, runs
// the background workers and the terminal UI, and stops all of them when
// the UI exits.
package client
