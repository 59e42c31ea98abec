package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "requestID", RequestIDCtxKey.String())
}

func TestGetRequestIDFromContext(t *testing.T) {
	id, ok := GetRequestIDFromContext(WithRequestID(context.Background(), "req-1"))
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)

	_, ok = GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetRequestIDFromContext(WithRequestID(context.Background(), ""))
	assert.False(t, ok)

	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)
	_, ok = GetRequestIDFromContext(ctx)
	assert.False(t, ok)
}

func TestRequestIDGenerator_Unique(t *testing.T) {
	g := NewRequestIDGenerator()
	a, b := g.Next(), g.Next()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
