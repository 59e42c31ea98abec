// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	})
}

func TestNewServer_Validation(t *testing.T) {
	_, err := NewServer(nil, "127.0.0.1:0", logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)

	_, err = NewServer(okHandler(), "", logger.Nop())
	assert.ErrorIs(t, err, errNoAddress)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	srv, err := NewServer(okHandler(), "127.0.0.1:0", logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool { return srv.Addr() != "" }, time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := NewServer(okHandler(), ln.Addr().String(), logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
	assert.Empty(t, srv.Addr())
}
