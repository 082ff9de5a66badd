package codec

import (
	"encoding/json"

	"github.com/kbukum/restkit"
)

// ApplicationJSON is the content type for JSON bodies.
const ApplicationJSON = "application/json"

// JSON encodes request bodies and decodes response payloads as JSON.
// The zero value is ready to use.
type JSON struct{}

// compile-time assertions
var _ restkit.BodyEncoder = JSON{}
var _ restkit.ResponseDecoder = JSON{}

// ContentType returns "application/json".
func (JSON) ContentType() string {
	return ApplicationJSON
}

// Encode marshals v as JSON.
func (JSON) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode unmarshals data into the given value.
func (JSON) Decode(data []byte, into any) error {
	return json.Unmarshal(data, into)
}

// JSONError decodes a structured error-response body into E.
type JSONError[E any] struct{}

var _ restkit.ErrorDecoder = JSONError[struct{}]{}

// DecodeError unmarshals data into a value of type E.
func (JSONError[E]) DecodeError(data []byte) (any, error) {
	var e E
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return e, nil
}

// DefaultErrorDecoder decodes error bodies into a generic JSON object. It is
// used whenever a definition does not configure its own error decoder.
var DefaultErrorDecoder restkit.ErrorDecoder = JSONError[map[string]any]{}
