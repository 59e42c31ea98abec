// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/shayar/PhdMatcher-FE/internal/adapter"

// formErrors splits err into a banner and per-field messages. A failure
// whose every detail is attached to a known field gets no banner.
type formErrors struct {
	banner string
	fields map[string]string
}

func newFormErrors(err error, known ...string) formErrors {
	if err == nil {
		return formErrors{}
	}

	fe := formErrors{fields: make(map[string]string)}
	ae := adapter.As(err)
	if ae == nil {
		fe.banner = adapter.Message(err)
		return fe
	}

	for _, field := range known {
		if msg, ok := ae.FieldMessage(field); ok {
			fe.fields[field] = msg
		}
	}
	if len(fe.fields) == 0 || len(fe.fields) < len(ae.Fields) {
		fe.banner = adapter.Message(err)
	}
	return fe
}

func (f formErrors) field(name string) string {
	return f.fields[name]
}

