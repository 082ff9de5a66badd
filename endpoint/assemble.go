package endpoint

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kbukum/restkit"
	"github.com/kbukum/restkit/codec"
)

const formURLEncoded = "application/x-www-form-urlencoded"

// NewRequest assembles a transport-ready request for the given request
// instance against the environment. The operation order is fixed: path,
// query/URL, headers, body, and finally the environment's request hook, so
// that environment-level signing always sees the final request. Any failure
// is an assembly error reported before the request is ever sent.
func (d *Definition[R]) NewRequest(ctx context.Context, env restkit.Environment, r R) (*http.Request, error) {
	path := d.Path.Resolve(r)

	query, form, err := resolveParameters(d.Parameters, r)
	if err != nil {
		return nil, err
	}

	u, err := composeURL(env.BaseURL, path)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		enc := d.QueryEncoder
		if enc == nil {
			enc = EncodeQuery
		}
		u.RawQuery = enc(query)
	}

	headers, err := resolveHeaders(d.Headers, r)
	if err != nil {
		return nil, err
	}

	body, contentType, err := d.encodeBody(r, form)
	if err != nil {
		return nil, err
	}

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := newRequest(ctx, d.Method, u.String(), reader)
	if err != nil {
		return nil, restkit.NewEndpointError(err)
	}

	// environment defaults first, bindings override
	for k, v := range env.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	if env.Host != "" {
		req.Host = env.Host // allow fronting
	}

	// the hook runs strictly last and cannot fail
	if env.Process != nil {
		req = env.Process(req)
	}
	return req, nil
}

// encodeBody attaches the explicit body when one exists, otherwise falls
// back to the form-encoded parameters.
func (d *Definition[R]) encodeBody(r R, form []QueryItem) ([]byte, string, error) {
	if d.Body != nil {
		if v := d.Body(r); v != nil {
			enc := d.Encoder
			if enc == nil {
				enc = codec.JSON{}
			}
			data, err := enc.Encode(v)
			if err != nil {
				return nil, "", restkit.NewEncodeError(err)
			}
			return data, enc.ContentType(), nil
		}
	}
	if len(form) > 0 {
		return encodeForm(form), formURLEncoded, nil
	}
	return nil, "", nil
}

// composeURL joins the resolved path onto the environment's base address.
func composeURL(baseURL, path string) (*url.URL, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, restkit.NewInvalidURLError(baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, restkit.NewInvalidURLError(baseURL, fmt.Errorf("base address must be absolute"))
	}
	u.Path = joinURLPath(u.Path, path)
	return u, nil
}

// joinURLPath appends the resource path to the base path.
func joinURLPath(basePath, resourcePath string) string {
	if resourcePath == "" {
		if basePath == "" {
			return "/"
		}
		return basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath + strings.TrimPrefix(resourcePath, "/")
}

// newRequest avoids the typed-nil body pitfall of http.NewRequestWithContext.
func newRequest(ctx context.Context, method, url string, body *bytes.Reader) (*http.Request, error) {
	if body == nil {
		return http.NewRequestWithContext(ctx, method, url, nil)
	}
	return http.NewRequestWithContext(ctx, method, url, body)
}
