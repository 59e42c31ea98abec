// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullName      = errors.New("full name is required")
	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyPassword      = errors.New("password is required")
	ErrShortPassword      = errors.New("password too short")
	ErrPasswordMismatch   = errors.New("password confirmation mismatch")
	ErrNoFile             = errors.New("no file selected")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrFileTooLarge       = errors.New("file too large")
	ErrEmptyProfileUpdate = errors.New("nothing to update")
)
