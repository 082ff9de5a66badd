package codec

import (
	"fmt"

	"github.com/kbukum/restkit"
)

// Raw passes []byte or string bodies and payloads through unmodified.
type Raw struct {
	// MIME is the content type to set on requests. Empty means none.
	MIME string
}

// compile-time assertions
var _ restkit.BodyEncoder = Raw{}
var _ restkit.ResponseDecoder = Raw{}

// ContentType returns the configured MIME type.
func (r Raw) ContentType() string {
	return r.MIME
}

// Encode accepts []byte or string body values.
func (Raw) Encode(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case string:
		return []byte(x), nil
	default:
		return nil, fmt.Errorf("codec: raw body must be []byte or string, got %T", v)
	}
}

// Decode copies the payload into a *[]byte or *string target.
func (Raw) Decode(data []byte, into any) error {
	switch x := into.(type) {
	case *[]byte:
		*x = data
		return nil
	case *string:
		*x = string(data)
		return nil
	default:
		return fmt.Errorf("codec: raw decode target must be *[]byte or *string, got %T", into)
	}
}
