package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/kbukum/restkit"
	"github.com/kbukum/restkit/logger"
)

// TokenPair is an access/refresh credential pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RefreshFunc exchanges a refresh token for a new credential pair.
type RefreshFunc func(ctx context.Context, refreshToken string) (TokenPair, error)

// RotatingToken is the rotating token-pair method. It attaches the current
// access token to requests and refreshes the pair through a caller-supplied
// RefreshFunc when a trigger status (401 by default) is observed.
//
// Refresh is single-flight: while one refresh is in flight, every concurrent
// Authenticate and Reauthenticate call awaits that same refresh and adopts
// its outcome; exactly one upstream refresh call is made. Canceling one
// caller's context only stops that caller from waiting, never the shared
// refresh itself.
type RotatingToken struct {
	refresh   RefreshFunc
	header    string
	prefix    string
	triggers  map[int]struct{}
	onUpdate  func(TokenPair)
	onFailure func(error)
	log       *logger.Logger

	mu       sync.Mutex
	pair     *TokenPair
	inflight *refreshOp
}

// refreshOp is one in-flight refresh. pair and err are written exactly once
// before done is closed; waiters read them only after done.
type refreshOp struct {
	done chan struct{}
	pair TokenPair
	err  error
}

func (op *refreshOp) wait(ctx context.Context) error {
	select {
	case <-op.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Option configures a RotatingToken.
type Option func(*RotatingToken)

// WithCredentials sets the initial credential pair.
func WithCredentials(pair TokenPair) Option {
	return func(r *RotatingToken) { r.pair = &pair }
}

// WithTriggerStatuses replaces the status codes that trigger reauthentication.
func WithTriggerStatuses(codes ...int) Option {
	return func(r *RotatingToken) {
		r.triggers = make(map[int]struct{}, len(codes))
		for _, c := range codes {
			r.triggers[c] = struct{}{}
		}
	}
}

// WithHeader overrides the header name and value prefix used to attach the
// access token. Defaults to "Authorization" and "Bearer ".
func WithHeader(name, prefix string) Option {
	return func(r *RotatingToken) {
		r.header = name
		r.prefix = prefix
	}
}

// WithUpdateHook registers a callback invoked after a successful refresh
// stores a new pair (e.g. to persist it).
func WithUpdateHook(fn func(TokenPair)) Option {
	return func(r *RotatingToken) { r.onUpdate = fn }
}

// WithFailureHook registers a callback invoked when a refresh fails.
func WithFailureHook(fn func(error)) Option {
	return func(r *RotatingToken) { r.onFailure = fn }
}

// WithLogger sets the logger used for refresh events.
func WithLogger(log *logger.Logger) Option {
	return func(r *RotatingToken) { r.log = log.WithComponent("auth") }
}

// NewRotatingToken creates a rotating token-pair method around the given
// refresh function.
func NewRotatingToken(refresh RefreshFunc, opts ...Option) *RotatingToken {
	r := &RotatingToken{
		refresh:  refresh,
		header:   "Authorization",
		prefix:   "Bearer ",
		triggers: map[int]struct{}{http.StatusUnauthorized: {}},
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Authenticate attaches the current access token. If a refresh is in
// flight, it first awaits its result, adopting a success and falling back
// to the stored pair on failure.
func (r *RotatingToken) Authenticate(ctx context.Context, req *http.Request) error {
	if op := r.current(); op != nil {
		if err := op.wait(ctx); err != nil {
			return err
		}
	}

	r.mu.Lock()
	pair := r.pair
	r.mu.Unlock()

	if pair == nil || pair.AccessToken == "" {
		return restkit.NewNotAuthenticatedError()
	}
	req.Header.Set(r.header, r.prefix+pair.AccessToken)
	return nil
}

// ShouldReauthenticate reports whether the observed status code is in the
// trigger set. The raw transport status is consulted first; when none is
// available the status recorded in the classified error is used.
func (r *RotatingToken) ShouldReauthenticate(err error, status *restkit.Status) bool {
	code := 0
	if status != nil {
		code = status.Code
	} else {
		var e *restkit.Error
		if errors.As(err, &e) {
			code = e.StatusCode
		}
	}
	_, ok := r.triggers[code]
	return ok
}

// Reauthenticate refreshes the credential pair. Concurrent calls coalesce
// onto a single upstream refresh and all observe its outcome.
func (r *RotatingToken) Reauthenticate(ctx context.Context) error {
	r.mu.Lock()
	if op := r.inflight; op != nil {
		r.mu.Unlock()
		if err := op.wait(ctx); err != nil {
			return err
		}
		return op.err
	}
	if r.pair == nil || r.pair.RefreshToken == "" {
		r.mu.Unlock()
		return restkit.NewNoRefreshTokenError()
	}
	op := &refreshOp{done: make(chan struct{})}
	refreshToken := r.pair.RefreshToken
	// publish before awaiting so concurrent callers coalesce onto this op
	r.inflight = op
	r.mu.Unlock()

	// the refresh is shared: one caller's cancellation must not abort it
	pair, err := r.refresh(context.WithoutCancel(ctx), refreshToken)

	r.mu.Lock()
	adopted := r.inflight == op
	if adopted {
		r.inflight = nil
		if err == nil {
			p := pair
			r.pair = &p
		}
	}
	r.mu.Unlock()

	if err != nil {
		op.err = restkit.NewRefreshFailedError(err)
		if r.onFailure != nil {
			r.onFailure(err)
		}
		r.log.Warn("token refresh failed", logger.Fields(logger.FieldError, err.Error()))
	} else {
		op.pair = pair
		if adopted && r.onUpdate != nil {
			r.onUpdate(pair)
		}
		r.log.Debug("token refreshed")
	}
	close(op.done)
	return op.err
}

// SetCredentials force-replaces the stored pair and detaches any in-flight
// refresh: its eventual result no longer replaces these credentials,
// although callers already awaiting it still observe its outcome.
func (r *RotatingToken) SetCredentials(pair TokenPair) {
	r.mu.Lock()
	p := pair
	r.pair = &p
	r.inflight = nil
	r.mu.Unlock()
}

// ClearCredentials drops the stored pair and detaches any in-flight refresh.
func (r *RotatingToken) ClearCredentials() {
	r.mu.Lock()
	r.pair = nil
	r.inflight = nil
	r.mu.Unlock()
}

// Credentials returns a copy of the stored pair, if any.
func (r *RotatingToken) Credentials() (TokenPair, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pair == nil {
		return TokenPair{}, false
	}
	return *r.pair, true
}

func (r *RotatingToken) current() *refreshOp {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inflight
}

var _ Method = (*RotatingToken)(nil)
