package client

import (
	"fmt"
	"time"

	"github.com/kbukum/restkit"
	"github.com/kbukum/restkit/auth"
	"github.com/kbukum/restkit/logger"
)

const defaultMaxRetries = 1

// Config configures the delivery client.
type Config struct {
	// BaseURL is the base address all endpoint paths are composed against.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Host optionally overrides the Host header (e.g. for fronting).
	Host string `yaml:"host" mapstructure:"host"`

	// Timeout is the per-request timeout applied by the default transport.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures the default transport. Ignored when Transport is set.
	TLS *restkit.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// MaxBodySize caps response body reads by the default transport.
	MaxBodySize int64 `yaml:"max_body_size" mapstructure:"max_body_size"`

	// MaxRetries bounds reauthentication retries per call. 0 means the
	// default of 1 (up to two attempts); negative disables retries.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`

	// Auth authenticates requests. Defaults to auth.None.
	Auth auth.Method `yaml:"-" mapstructure:"-"`

	// Transport overrides the default net/http transport.
	Transport restkit.Transport `yaml:"-" mapstructure:"-"`

	// Process is the post-assembly request hook (e.g. request signing).
	Process restkit.RequestProcessor `yaml:"-" mapstructure:"-"`

	// Logger is used for per-call logging. Defaults to a no-op logger.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.MaxRetries == 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.Auth == nil {
		c.Auth = auth.None{}
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("client: base_url is required")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
