// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody is the union of error shapes the backend produces:
// {"detail": "text"}, {"detail": [{"loc": [...], "msg": "..."}]} and
// {"message": "text"}.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type detailItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// locationPrefixes are the leading loc segments that name where a field came
// from rather than the field itself.
var locationPrefixes = map[string]struct{}{
	"body": {}, "query": {}, "path": {}, "header": {}, "cookie": {},
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message, fields := parseErrorBody(resp.Body())
	if message == "" {
		message = MsgGeneric
	}

	return &Error{
		Kind:    kindForStatus(status),
		Status:  status,
		Message: message,
		Fields:  fields,
		Cause:   fmt.Errorf("http %d %s", status, resp.Request.URL),
	}
}

func mapTransportError(err error) error {
	return &Error{Kind: KindTransport, Message: MsgTransport, Cause: err}
}

func parseErrorBody(raw []byte) (string, []FieldError) {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", nil
	}

	if len(body.Detail) > 0 {
		var text string
		if err := json.Unmarshal(body.Detail, &text); err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}

		var items []detailItem
		if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
			msgs := make([]string, 0, len(items))
			fields := make([]FieldError, 0, len(items))
			for _, it := range items {
				if it.Msg == "" {
					continue
				}
				msgs = append(msgs, it.Msg)
				fields = append(fields, FieldError{Field: fieldName(it.Loc), Message: it.Msg})
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; "), fields
			}
		}
	}

	return strings.TrimSpace(body.Message), nil
}

func fieldName(loc []any) string {
	parts := make([]string, 0, len(loc))
	for i, seg := range loc {
		s := fmt.Sprint(seg)
		if _, ok := locationPrefixes[s]; ok && i == 0 {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ".")
}
