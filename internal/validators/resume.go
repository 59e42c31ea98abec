// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shayar/PhdMatcher-FE/models"
)

const (
	FieldFile = "file"

	// MaxResumeSize is the largest resume the backend accepts.
	MaxResumeSize int64 = 10 * 1024 * 1024

	MsgNoFile          = "Please select a file"
	MsgUnsupportedFile = "Only PDF, DOC and DOCX files are supported"
	MsgFileTooLarge    = "File must be 10MB or smaller"
)

var allowedResumeExtensions = []string{".pdf", ".doc", ".docx"}

// ResumeValidator checks a resume before it is uploaded.
type ResumeValidator struct {
}

func NewResumeValidator() Validator {
	return &ResumeValidator{}
}

func (v *ResumeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ResumeFile:
		return v.validateResume(value, fields...)
	case *models.ResumeFile:
		return v.validateResume(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ResumeValidator) validateResume(file models.ResumeFile, fields ...string) error {
	checks := map[string]func(*collector){
		FieldFile: func(c *collector) {
			name := strings.TrimSpace(file.Name)
			switch {
			case name == "":
				c.add(FieldFile, MsgNoFile, ErrNoFile)
			case !isAllowedResumeExtension(name):
				c.add(FieldFile, MsgUnsupportedFile, ErrUnsupportedFile)
			case file.Size > MaxResumeSize:
				c.add(FieldFile, MsgFileTooLarge, ErrFileTooLarge)
			}
		},
	}

	return run(checks, []string{FieldFile}, fields)
}

func isAllowedResumeExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range allowedResumeExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ValidateResume checks a resume's name and size.
func ValidateResume(name string, size int64) error {
	return NewResumeValidator().Validate(context.Background(), models.ResumeFile{Name: name, Size: size})
}
