// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages of the development backend.
//
// All Msg* constants are written into the "detail" field of JSON error
// bodies. The client shows them to the user verbatim, so the wording
// follows the production backend.
package app

const (
	// MsgInvalidCredentials is returned when the email/password pair does
	// not match any registered user.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgCouldNotValidateCredentials is returned when the bearer token is
	// missing, malformed, expired or signed with another key.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgEmailAlreadyRegistered is returned when a registration reuses an
	// existing email.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInactiveUser is returned when the token belongs to a disabled
	// account.
	MsgInactiveUser = "Inactive user"

	// MsgUserNotFound is returned when the token subject no longer exists.
	MsgUserNotFound = "User not found"

	// MsgProfessorNotFound is returned for an unknown professor id.
	MsgProfessorNotFound = "Professor not found"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgFieldRequired is the per-field message of a missing value.
	MsgFieldRequired = "field required"

	// MsgInvalidEmail is the per-field message of a malformed email.
	MsgInvalidEmail = "value is not a valid email address"

	// MsgNoFileUploaded is returned when the multipart body has no file part.
	MsgNoFileUploaded = "No file uploaded"

	// MsgUnsupportedResume is returned for files other than PDF or Word.
	MsgUnsupportedResume = "Only PDF, DOC and DOCX files are allowed"

	// MsgResumeTooLarge is returned when the resume exceeds the size cap.
	MsgResumeTooLarge = "File size exceeds the 10MB limit"

	// MsgResumeUploaded acknowledges a stored resume.
	MsgResumeUploaded = "Resume uploaded successfully"

	// MsgInternalServerError is returned for unexpected failures.
	MsgInternalServerError = "Internal Server Error"
)
