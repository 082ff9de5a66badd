package restkit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultMaxBodySize caps how much of a response body the default
	// transport reads.
	DefaultMaxBodySize = 1 << 22

	defaultTimeout = 30 * time.Second
)

// TransportConfig configures the default net/http transport.
type TransportConfig struct {
	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures TLS settings. Nil uses the defaults.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// MaxBodySize caps the response body read. Defaults to DefaultMaxBodySize.
	MaxBodySize int64 `yaml:"max_body_size" mapstructure:"max_body_size"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *TransportConfig) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
}

// Validate checks that the configuration is valid.
func (c *TransportConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("restkit: timeout must be positive")
	}
	return c.TLS.Validate()
}

// HTTPTransport is the default Transport backed by net/http.
type HTTPTransport struct {
	client      *http.Client
	maxBodySize int64
}

// NewHTTPTransport creates the default transport with the given configuration.
func NewHTTPTransport(cfg TransportConfig) (*HTTPTransport, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	// Apply TLS configuration
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	return &HTTPTransport{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		maxBodySize: cfg.MaxBodySize,
	}, nil
}

// NewHTTPTransportFromClient wraps an existing *http.Client as a Transport.
func NewHTTPTransportFromClient(c *http.Client) *HTTPTransport {
	return &HTTPTransport{client: c, maxBodySize: DefaultMaxBodySize}
}

// Send executes the request and returns the response body and status metadata.
func (t *HTTPTransport) Send(ctx context.Context, req *http.Request) ([]byte, *Status, error) {
	resp, err := t.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBodySize))
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	status := &Status{
		Code:    resp.StatusCode,
		Reason:  resp.Status,
		Headers: resp.Header,
	}
	return body, status, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (t *HTTPTransport) Unwrap() *http.Client {
	return t.client
}

// compile-time assertion
var _ Transport = (*HTTPTransport)(nil)
