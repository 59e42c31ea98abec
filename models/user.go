// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the authenticated account as returned by GET /api/v1/users/me.
// The client never computes or validates these fields; they are passed
// through from the backend as-is.
type User struct {
	// ID is the backend identifier of the user.
	ID int64 `json:"id"`

	// Email is the login identifier of the user.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"full_name,omitempty"`

	// IsActive reports whether the account is enabled on the backend.
	IsActive bool `json:"is_active"`

	// EducationLevel is the highest completed degree (e.g. "masters").
	EducationLevel string `json:"education_level,omitempty"`

	// FieldOfStudy is the user's primary academic field.
	FieldOfStudy string `json:"field_of_study,omitempty"`

	// ResearchInterests lists free-form research topics used by matching.
	ResearchInterests []string `json:"research_interests,omitempty"`

	// PreferredLocations lists countries or cities the user wants to study in.
	PreferredLocations []string `json:"preferred_locations,omitempty"`

	// TargetUniversities lists institutions the user is interested in.
	TargetUniversities []string `json:"target_universities,omitempty"`

	// ResumeFilePath is the backend-side path of the uploaded resume.
	// Empty until a resume has been uploaded.
	ResumeFilePath string `json:"resume_file_path,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// DisplayName returns FullName, falling back to Email when no name is set.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// HasResume reports whether the backend holds a resume for the user.
func (u User) HasResume() bool {
	return u.ResumeFilePath != ""
}

// ProfileUpdate is a partial [User] sent to PUT /api/v1/users/me.
// Nil fields are omitted from the request and left untouched by the backend.
type ProfileUpdate struct {
	FullName           *string  `json:"full_name,omitempty"`
	EducationLevel     *string  `json:"education_level,omitempty"`
	FieldOfStudy       *string  `json:"field_of_study,omitempty"`
	ResearchInterests  []string `json:"research_interests,omitempty"`
	PreferredLocations []string `json:"preferred_locations,omitempty"`
	TargetUniversities []string `json:"target_universities,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FullName == nil &&
		p.EducationLevel == nil &&
		p.FieldOfStudy == nil &&
		p.ResearchInterests == nil &&
		p.PreferredLocations == nil &&
		p.TargetUniversities == nil
}

// UploadAck is the backend acknowledgement of a resume upload. The exact
// shape is backend-defined; known fields are decoded and the rest ignored.
type UploadAck struct {
	Message  string `json:"message,omitempty"`
	FilePath string `json:"file_path,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// ResumeFile describes a resume chosen for upload, before it is read.
type ResumeFile struct {
	Name string
	Size int64
}
