package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/restkit"
	"github.com/kbukum/restkit/auth"
	"github.com/kbukum/restkit/endpoint"
	"github.com/kbukum/restkit/logger"
)

// Client coordinates delivery of logical calls. It is safe for concurrent
// use; the only shared mutable state lives inside the authentication method.
type Client struct {
	env        restkit.Environment
	transport  restkit.Transport
	auth       auth.Method
	maxRetries int
	log        *logger.Logger
}

// New creates a client with the given configuration. When no Transport is
// injected, the default TLS-aware net/http transport is built from the
// config.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := cfg.Transport
	if transport == nil {
		t, err := restkit.NewHTTPTransport(restkit.TransportConfig{
			Timeout:     cfg.Timeout,
			TLS:         cfg.TLS,
			MaxBodySize: cfg.MaxBodySize,
		})
		if err != nil {
			return nil, err
		}
		transport = t
	}

	return &Client{
		env: restkit.Environment{
			BaseURL: cfg.BaseURL,
			Host:    cfg.Host,
			Headers: cfg.Headers,
			Process: cfg.Process,
		},
		transport:  transport,
		auth:       cfg.Auth,
		maxRetries: cfg.MaxRetries,
		log:        cfg.Logger.WithComponent("client"),
	}, nil
}

// Auth returns the client's authentication method.
func (c *Client) Auth() auth.Method {
	return c.auth
}

// Do executes one logical call of the definition with the given request
// instance and returns the raw success payload and status metadata.
//
// The request is assembled fresh on every attempt so a refreshed credential
// is always reflected; exactly one network send occurs per attempt.
// Assembly and authentication failures are fatal and never retried. A
// classified failure triggers a refresh-and-retry only when the
// authentication method asks for one and attempts remain; exhausting the
// budget on a retryable failure reports ErrCodeMaxRetries rather than the
// last underlying error.
func Do[R any](ctx context.Context, c *Client, def *endpoint.Definition[R], r R) ([]byte, *restkit.Status, error) {
	log := c.log.WithFields(map[string]interface{}{
		logger.FieldCallID: uuid.NewString(),
		logger.FieldMethod: def.Method,
	})

	attempts := c.maxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		req, err := def.NewRequest(ctx, c.env, r)
		if err != nil {
			return nil, nil, err
		}
		if err := c.auth.Authenticate(ctx, req); err != nil {
			return nil, nil, err
		}

		payload, status, sendErr := c.transport.Send(ctx, req)
		body, cerr := Classify(payload, status, sendErr, def.ErrorDecoder)
		if cerr == nil {
			log.Debug("call succeeded", logger.Fields(
				logger.FieldAttempt, attempt+1,
				logger.FieldStatus, statusCode(status),
			))
			return body, status, nil
		}

		if !c.auth.ShouldReauthenticate(cerr, status) {
			return nil, status, cerr
		}
		if attempt == attempts-1 {
			break // retry budget exhausted
		}

		log.Debug("reauthenticating", logger.Fields(
			logger.FieldAttempt, attempt+1,
			logger.FieldStatus, statusCode(status),
		))
		if rerr := c.auth.Reauthenticate(ctx); rerr != nil {
			return nil, status, rerr
		}
	}

	log.Warn("call gave up", logger.Fields(logger.FieldAttempt, attempts))
	return nil, nil, restkit.NewMaxRetriesError(attempts)
}

func statusCode(s *restkit.Status) int {
	if s == nil {
		return 0
	}
	return s.Code
}
