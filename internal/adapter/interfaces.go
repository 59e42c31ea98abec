// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the PhD Matcher client
// and its REST backend.
//
// The primary abstraction is [API], which decouples the service layer from
// HTTP details: base URL resolution, bearer attachment, JSON and form
// encoding, multipart uploads with progress, and error normalisation. The
// package ships one implementation built on resty ([NewHTTPAdapter]).
//
// Every failure leaving this package is an [*Error] of one of four kinds
// (transport, authentication, validation, unknown). Callers match kinds with
// [errors.Is] against [ErrTransport], [ErrAuthentication], [ErrValidation]
// and [ErrUnknown], and obtain a display message with [Message].
package adapter

import (
	"context"
	"io"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// API is the uniform request surface used by every service. Paths are
// relative to the configured base URL. out, when non-nil, receives the
// decoded JSON body of a 2xx response.
type API interface {
	// Get issues a GET with optional query parameters.
	Get(ctx context.Context, path string, query url.Values, out any) error

	// Post sends body as JSON.
	Post(ctx context.Context, path string, body, out any) error

	// PostForm sends form as application/x-www-form-urlencoded. Used by the
	// login exchange.
	PostForm(ctx context.Context, path string, form url.Values, out any) error

	// Put sends body as JSON.
	Put(ctx context.Context, path string, body, out any) error

	// Delete issues a DELETE.
	Delete(ctx context.Context, path string, out any) error

	// UploadFile sends file as the multipart field "file". onProgress may be
	// nil; see [ProgressFunc] for the emitted sequence.
	UploadFile(ctx context.Context, path string, file UploadFile, onProgress ProgressFunc, out any) error
}

// TokenSource supplies the bearer token attached to outgoing requests.
// ok is false when no credential is held; the request is then sent without
// an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (token string, ok bool)
}

// TokenSourceFunc adapts a plain function to [TokenSource].
type TokenSourceFunc func(ctx context.Context) (string, bool)

// Token implements [TokenSource].
func (f TokenSourceFunc) Token(ctx context.Context) (string, bool) {
	return f(ctx)
}

// UploadFile describes a file to send with [API.UploadFile].
type UploadFile struct {
	// Name is the file name reported to the server.
	Name string
	// Size is the total byte count, or <= 0 when unknown.
	Size int64
	// Reader yields the file contents.
	Reader io.Reader
}

// ProgressFunc receives upload progress as an integer percentage.
//
// Values are non-decreasing and never repeated. 0..99 are emitted while the
// body is being sent; 100 is emitted only after the server answered with a
// 2xx status. When the upload fails nothing further is emitted.
type ProgressFunc func(percent int)
