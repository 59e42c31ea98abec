// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides client-side input validation that runs before
// any network call.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Failures are returned as validation-kind [adapter.Error] values carrying
// per-field details, so UI code handles them exactly like a backend
// validation rejection. The wrapped cause joins the sentinel errors of this
// package for errors.Is matching.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
