// Package response sends catalog operations through an HTTPAdapter and turns the
// raw replies into decoded payloads or typed errors.
package response

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tamilwords/internal/domain"
	"tamilwords/internal/endpoints"
	"tamilwords/internal/errors"
)

// maxErrorBody caps how much of a failed response is kept for the error message.
const maxErrorBody = 64 << 10

// Call describes one invocation of an operation.
type Call struct {
	IDs   []string
	Query url.Values
	Body  any
}

// Do expands op, sends it and decodes a 2xx reply into out. out may be nil when
// the payload is not needed.
func Do(ctx context.Context, adapter domain.HTTPAdapter, op endpoints.Operation, call Call, out any) error {
	path, err := op.Expand(call.IDs...)
	if err != nil {
		return errors.NewValidationError("path", strings.Join(call.IDs, ","), "expand", err.Error())
	}

	req := domain.Request{
		Operation: op.Name,
		Method:    op.Method,
		Path:      path,
		Query:     call.Query,
		Body:      call.Body,
	}

	resp, err := adapter.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}
	return Decode(resp, req, out)
}

// Decode consumes and closes resp. Non-2xx statuses become *errors.HTTPError with
// the API's detail message; bodies that are not valid JSON become *errors.DecodeError.
func Decode(resp *http.Response, req domain.Request, out any) error {
	defer resp.Body.Close()

	target := requestURL(resp, req)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.NewHTTPError(resp.StatusCode, req.Method, target, errorMessage(body))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewDecodeError(req.Method, target, err)
	}
	return nil
}

// errorMessage extracts FastAPI's "detail". Validation failures carry a list
// there, which is kept as raw JSON.
func errorMessage(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 && string(payload.Detail) != "null" {
		var detail string
		if json.Unmarshal(payload.Detail, &detail) == nil {
			return detail
		}
		return string(payload.Detail)
	}
	return strings.TrimSpace(string(body))
}

func requestURL(resp *http.Response, req domain.Request) string {
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return req.Path
}
