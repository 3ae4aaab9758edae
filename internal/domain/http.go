package domain

import (
	"context"
	"net/http"
	"net/url"
)

// Request is one outbound call built from an operation descriptor.
type Request struct {
	Operation string
	Method    string
	Path      string
	Query     url.Values
	Body      any
}

// HTTPAdapter defines the interface for HTTP operations against the search API.
type HTTPAdapter interface {
	// Do issues req relative to the adapter's base location. Transport failures are
	// returned as errors; any HTTP status is returned as a response.
	Do(ctx context.Context, req Request) (*http.Response, error)

	// BaseURL returns the base location the adapter is bound to.
	BaseURL() string
}
