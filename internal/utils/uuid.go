package utils

import "github.com/google/uuid"

// RequestIDGenerator produces X-Request-ID values. IDs are UUIDv7 so they
// sort by creation time in the logs.
type RequestIDGenerator struct{}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

// Next returns a fresh request id. A failing clock source degrades to a
// random v4 id.
func (g *RequestIDGenerator) Next() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// IsRequestID reports whether s is a syntactically valid request id.
// Incoming ids that fail this check are replaced.
func IsRequestID(s string) bool {
	return uuid.Validate(s) == nil
}
