package endpoint

import (
	"github.com/kbukum/restkit"
)

// Definition describes one HTTP endpoint: how to build a request for it and
// how to decode what comes back. Create one instance per endpoint at
// declaration time and share it; a Definition is never mutated after
// declaration and is safe for concurrent use.
type Definition[R any] struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string

	// Path is the path template resolved against each request instance.
	Path Template[R]

	// Parameters are the query/form parameter bindings, in declaration order.
	Parameters []Parameter[R]

	// Headers are the header bindings.
	Headers []HeaderField[R]

	// Body extracts the explicit body value from the request instance.
	// Nil (or a nil result) means no explicit body; form parameters, if
	// any, then become the body.
	Body func(R) any

	// Encoder encodes the explicit body. Defaults to codec.JSON.
	Encoder restkit.BodyEncoder

	// Decoder decodes success payloads. Defaults to codec.JSON.
	Decoder restkit.ResponseDecoder

	// ErrorDecoder decodes non-2xx payloads into a structured error value.
	// Defaults to codec.DefaultErrorDecoder.
	ErrorDecoder restkit.ErrorDecoder

	// QueryEncoder renders resolved query items. Defaults to EncodeQuery.
	QueryEncoder QueryEncoder
}
