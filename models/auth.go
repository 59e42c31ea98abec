// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest carries the credentials for POST /api/v1/auth/login.
// On the wire it is form-encoded as "username" (the email) and "password".
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the JSON body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// RegisterForm is what a user types into the registration screen. It extends
// [RegisterRequest] with the password confirmation, which never leaves the
// client.
type RegisterForm struct {
	RegisterRequest
	ConfirmPassword string `json:"-"`
}

// AuthResponse is returned by both the login and the register endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
