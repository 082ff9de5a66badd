package restkit

import (
	"context"
	"net/http"
)

// Status is the transport-level status metadata of a response.
type Status struct {
	// Code is the HTTP status code.
	Code int
	// Reason is the status line (e.g. "200 OK").
	Reason string
	// Headers are the response headers.
	Headers http.Header
}

// IsSuccess returns true if the status code is 2xx.
func (s *Status) IsSuccess() bool {
	return s.Code >= 200 && s.Code < 300
}

// Transport sends a fully assembled request and returns the response payload
// and status metadata. A non-nil error means the send itself failed and no
// status metadata is available.
type Transport interface {
	Send(ctx context.Context, req *http.Request) ([]byte, *Status, error)
}

// RequestProcessor is an environment-level hook applied to every assembled
// request as the final assembly step (e.g. request signing). It must not
// fail; a nil processor is a no-op.
type RequestProcessor func(*http.Request) *http.Request

// Environment describes where assembled requests are directed. It is owned
// by the caller and read-only once handed to a client.
type Environment struct {
	// BaseURL is the base address requests are composed against.
	BaseURL string
	// Host optionally overrides the Host header (e.g. for fronting).
	Host string
	// Headers are default headers applied to all requests. Endpoint header
	// bindings override them.
	Headers map[string]string
	// Process is the post-assembly request hook.
	Process RequestProcessor
}
