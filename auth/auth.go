package auth

import (
	"context"
	"net/http"

	"github.com/kbukum/restkit"
)

// Method attaches credentials to outbound requests, decides when a failed
// call warrants a credential refresh, and performs the refresh.
type Method interface {
	// Authenticate attaches credentials to the request.
	Authenticate(ctx context.Context, req *http.Request) error

	// ShouldReauthenticate reports whether the classified error and the raw
	// status metadata of a failed attempt warrant a refresh-and-retry.
	ShouldReauthenticate(err error, status *restkit.Status) bool

	// Reauthenticate refreshes the stored credentials.
	Reauthenticate(ctx context.Context) error
}

// None is the no-op method: requests pass through untouched and failures
// never trigger reauthentication.
type None struct{}

// Authenticate is a no-op.
func (None) Authenticate(context.Context, *http.Request) error { return nil }

// ShouldReauthenticate always returns false.
func (None) ShouldReauthenticate(error, *restkit.Status) bool { return false }

// Reauthenticate fails: there is nothing to refresh.
func (None) Reauthenticate(context.Context) error {
	return restkit.NewRefreshUnsupportedError()
}

// HeaderKey attaches a fixed value to a request header.
type HeaderKey struct {
	// Name is the header name. Defaults to "X-API-Key".
	Name string
	// Value is the fixed header value.
	Value string
}

// APIKey creates a header-key method using the default header name.
func APIKey(value string) HeaderKey {
	return HeaderKey{Name: "X-API-Key", Value: value}
}

// Bearer creates a header-key method carrying a static bearer token.
func Bearer(token string) HeaderKey {
	return HeaderKey{Name: "Authorization", Value: "Bearer " + token}
}

// Authenticate sets the header.
func (h HeaderKey) Authenticate(_ context.Context, req *http.Request) error {
	name := h.Name
	if name == "" {
		name = "X-API-Key"
	}
	req.Header.Set(name, h.Value)
	return nil
}

// ShouldReauthenticate always returns false.
func (HeaderKey) ShouldReauthenticate(error, *restkit.Status) bool { return false }

// Reauthenticate fails: the key is static.
func (HeaderKey) Reauthenticate(context.Context) error {
	return restkit.NewRefreshUnsupportedError()
}

// Cookie attaches a fixed cookie to the request.
type Cookie struct {
	// Name is the cookie name.
	Name string
	// Value is the cookie value.
	Value string
}

// Authenticate adds the cookie.
func (c Cookie) Authenticate(_ context.Context, req *http.Request) error {
	req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	return nil
}

// ShouldReauthenticate always returns false.
func (Cookie) ShouldReauthenticate(error, *restkit.Status) bool { return false }

// Reauthenticate fails: the cookie is static.
func (Cookie) Reauthenticate(context.Context) error {
	return restkit.NewRefreshUnsupportedError()
}

// compile-time assertions
var _ Method = None{}
var _ Method = HeaderKey{}
var _ Method = Cookie{}
