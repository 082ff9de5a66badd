package restkit

// BodyEncoder encodes a request body value into wire bytes.
type BodyEncoder interface {
	// ContentType returns the content type set on the request when no
	// header binding has set one already. Empty means none.
	ContentType() string
	// Encode converts a body value into bytes.
	Encode(v any) ([]byte, error)
}

// ResponseDecoder decodes a success response payload into a caller value.
type ResponseDecoder interface {
	Decode(data []byte, into any) error
}

// ErrorDecoder decodes a non-2xx response payload into a structured
// error-response value.
type ErrorDecoder interface {
	DecodeError(data []byte) (any, error)
}

// ParameterValue converts a typed value into its query/form string form.
// Returning ok=false declines the conversion; the parameter is omitted.
type ParameterValue interface {
	ParameterValue() (value string, ok bool)
}

// PathRepresentable renders a typed value as a path segment. An empty
// result elides the segment together with its separator.
type PathRepresentable interface {
	PathSegment() string
}
