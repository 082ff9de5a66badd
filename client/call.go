package client

import (
	"context"

	"github.com/kbukum/restkit"
	"github.com/kbukum/restkit/codec"
	"github.com/kbukum/restkit/endpoint"
)

// Call executes the definition and decodes the success payload into T using
// the definition's response decoder. An empty payload (e.g. a 204) yields
// the zero value of T.
func Call[R, T any](ctx context.Context, c *Client, def *endpoint.Definition[R], r R) (T, error) {
	var out T
	body, _, err := Do(ctx, c, def, r)
	if err != nil {
		return out, err
	}
	if len(body) == 0 {
		return out, nil
	}
	dec := def.Decoder
	if dec == nil {
		dec = codec.JSON{}
	}
	if err := dec.Decode(body, &out); err != nil {
		var zero T
		return zero, restkit.NewResponseParseError(err)
	}
	return out, nil
}
