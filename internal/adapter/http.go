// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shayar/PhdMatcher-FE/internal/config"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
	"golang.org/x/time/rate"
)

const (
	headerRequestID     = "X-Request-ID"
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"

	uploadFieldName = "file"
)

type httpAdapter struct {
	client *utils.HTTPClient

	tokens         TokenSource
	limiter        *rate.Limiter
	requestIDs     *utils.RequestIDGenerator
	requestTimeout time.Duration
	uploadTimeout  time.Duration

	logger *logger.Logger
}

// NewHTTPAdapter constructs the resty-backed implementation of [API].
// It normalises and validates adapterCfg.HTTPAddress, applies the request and
// upload timeouts per call, and throttles outgoing requests when
// adapterCfg.RateLimit is positive. tokens may be nil for an adapter that
// never authenticates.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, userAgent string, logger *logger.Logger) (API, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if tokens == nil {
		tokens = TokenSourceFunc(func(context.Context) (string, bool) { return "", false })
	}

	// Timeouts are applied through the request context so uploads can run
	// longer than regular calls on the same client.
	a := &httpAdapter{
		client:         utils.NewHTTPClient(baseURL, 0, userAgent),
		tokens:         tokens,
		requestIDs:     utils.NewRequestIDGenerator(),
		requestTimeout: adapterCfg.RequestTimeout,
		uploadTimeout:  adapterCfg.UploadTimeout,
		logger:         logger.WithComponent("adapter"),
	}
	if adapterCfg.RateLimit > 0 {
		a.limiter = rate.NewLimiter(rate.Limit(adapterCfg.RateLimit), max(1, int(adapterCfg.RateLimit)))
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [API].
func (h *httpAdapter) Get(ctx context.Context, path string, query url.Values, out any) error {
	return h.do(ctx, http.MethodGet, path, h.requestTimeout, func(r *resty.Request) {
		if len(query) > 0 {
			r.SetQueryParamsFromValues(query)
		}
	}, out, nil)
}

// Post implements [API].
func (h *httpAdapter) Post(ctx context.Context, path string, body, out any) error {
	return h.do(ctx, http.MethodPost, path, h.requestTimeout, jsonBody(body), out, nil)
}

// PostForm implements [API].
func (h *httpAdapter) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return h.do(ctx, http.MethodPost, path, h.requestTimeout, func(r *resty.Request) {
		r.SetFormDataFromValues(form)
	}, out, nil)
}

// Put implements [API].
func (h *httpAdapter) Put(ctx context.Context, path string, body, out any) error {
	return h.do(ctx, http.MethodPut, path, h.requestTimeout, jsonBody(body), out, nil)
}

// Delete implements [API].
func (h *httpAdapter) Delete(ctx context.Context, path string, out any) error {
	return h.do(ctx, http.MethodDelete, path, h.requestTimeout, nil, out, nil)
}

// UploadFile implements [API]. The multipart body is streamed through a pipe
// so progress follows the bytes actually handed to the transport.
func (h *httpAdapter) UploadFile(ctx context.Context, path string, file UploadFile, onProgress ProgressFunc, out any) error {
	tracker := newProgressTracker(file.Size, onProgress)
	tracker.report(0)

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile(uploadFieldName, file.Name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err = io.Copy(part, &countingReader{r: file.Reader, tracker: tracker}); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()
	defer pr.Close()

	return h.do(ctx, http.MethodPost, path, h.uploadTimeout, func(r *resty.Request) {
		r.SetHeader(headerContentType, mw.FormDataContentType()).SetBody(pr)
	}, out, tracker)
}

func jsonBody(body any) func(*resty.Request) {
	return func(r *resty.Request) {
		r.SetHeader(headerContentType, "application/json")
		if body != nil {
			r.SetBody(body)
		}
	}
}

// do executes one request and normalises its outcome. tracker, when set, is
// completed on success and stopped on any failure.
func (h *httpAdapter) do(
	ctx context.Context,
	method, path string,
	timeout time.Duration,
	prepare func(*resty.Request),
	out any,
	tracker *progressTracker,
) (err error) {
	if tracker != nil {
		defer func() {
			if err != nil {
				tracker.stop()
			}
		}()
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.requestIDs.Next()
	}
	log := h.logger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Logger()

	if h.limiter != nil {
		if err = h.limiter.Wait(ctx); err != nil {
			log.Warn().Err(err).Msg("rate limiter wait aborted")
			return mapTransportError(err)
		}
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID)
	if token, ok := h.tokens.Token(ctx); ok && token != "" {
		req.SetHeader(headerAuthorization, "Bearer "+token)
	}
	if prepare != nil {
		prepare(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("request failed to complete")
		return mapTransportError(err)
	}

	log = log.With().Int("status", resp.StatusCode()).Dur("elapsed", time.Since(start)).Logger()
	if err = mapHTTPError(resp); err != nil {
		log.Info().Str("kind", KindOf(err).String()).Msg("request rejected")
		return err
	}
	log.Debug().Msg("request completed")

	if out != nil && len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), out); err != nil {
			log.Error().Err(err).Msg("error decoding response body")
			return NewUnknownError("Invalid response from server", err)
		}
	}

	if tracker != nil {
		tracker.complete()
	}

	return nil
}
