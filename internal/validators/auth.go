// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/shayar/PhdMatcher-FE/models"
)

const (
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"

	// MinPasswordLength is counted in characters, not bytes.
	MinPasswordLength = 8
)

const (
	MsgFullNameRequired = "Full name is required"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email address"
	MsgPasswordRequired = "Password is required"
	MsgPasswordShort    = "Password must be at least 8 characters"
	MsgPasswordMismatch = "Passwords don't match"
)

// AuthValidator validates login and registration forms.
type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterForm:
		return v.validateRegisterForm(value, fields...)
	case *models.RegisterForm:
		return v.validateRegisterForm(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AuthValidator) validateRegisterForm(form models.RegisterForm, fields ...string) error {
	checks := map[string]func(*collector){
		FieldFullName: func(c *collector) {
			if strings.TrimSpace(form.FullName) == "" {
				c.add(FieldFullName, MsgFullNameRequired, ErrEmptyFullName)
			}
		},
		FieldEmail: func(c *collector) { checkEmail(c, form.Email) },
		FieldPassword: func(c *collector) {
			switch {
			case form.Password == "":
				c.add(FieldPassword, MsgPasswordRequired, ErrEmptyPassword)
			case utf8.RuneCountInString(form.Password) < MinPasswordLength:
				c.add(FieldPassword, MsgPasswordShort, ErrShortPassword)
			}
		},
		FieldConfirmPassword: func(c *collector) {
			if form.ConfirmPassword != form.Password {
				c.add(FieldConfirmPassword, MsgPasswordMismatch, ErrPasswordMismatch)
			}
		},
	}

	return run(checks, []string{FieldFullName, FieldEmail, FieldPassword, FieldConfirmPassword}, fields)
}

func (v *AuthValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	checks := map[string]func(*collector){
		FieldEmail: func(c *collector) {
			if strings.TrimSpace(req.Email) == "" {
				c.add(FieldEmail, MsgEmailRequired, ErrEmptyEmail)
			}
		},
		FieldPassword: func(c *collector) {
			if req.Password == "" {
				c.add(FieldPassword, MsgPasswordRequired, ErrEmptyPassword)
			}
		},
	}

	return run(checks, []string{FieldEmail, FieldPassword}, fields)
}

func checkEmail(c *collector, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		c.add(FieldEmail, MsgEmailRequired, ErrEmptyEmail)
		return
	}

	// net/mail accepts display names ("Bob <bob@x>"); only a bare address
	// containing a domain is a valid account email.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email, "@") {
		c.add(FieldEmail, MsgEmailInvalid, ErrInvalidEmail)
	}
}

// ValidateRegistration checks a registration form.
func ValidateRegistration(form models.RegisterForm) error {
	return NewAuthValidator().Validate(context.Background(), form)
}

// ValidateLogin checks that both credentials are present.
func ValidateLogin(email, password string) error {
	return NewAuthValidator().Validate(context.Background(), models.LoginRequest{Email: email, Password: password})
}
