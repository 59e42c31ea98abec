// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
)

// collector accumulates field failures in check order.
type collector struct {
	fields []adapter.FieldError
	causes []error
}

func (c *collector) add(field, message string, cause error) {
	c.fields = append(c.fields, adapter.FieldError{Field: field, Message: message})
	c.causes = append(c.causes, cause)
}

// err returns nil when nothing failed. The top-level message is that of the
// first failing field.
func (c *collector) err() error {
	if len(c.fields) == 0 {
		return nil
	}

	e := adapter.NewValidationError(c.fields[0].Message, c.fields...)
	e.Cause = errors.Join(c.causes...)
	return e
}

// run executes checks for the requested fields, or for all of order when no
// field is named.
func run(checks map[string]func(*collector), order, fields []string) error {
	if len(fields) == 0 {
		fields = order
	}

	c := &collector{}
	for _, f := range fields {
		check, ok := checks[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		check(c)
	}

	return c.err()
}
