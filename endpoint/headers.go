package endpoint

import (
	"fmt"
	"strconv"

	"github.com/kbukum/restkit"
)

// HeaderField is a header binding, keyed by header name.
type HeaderField[R any] struct {
	name     string
	literal  string
	accessor func(R) any // nil for literals
}

// Header creates a bound header. A value that resolves to nil omits the
// header; a value without a string representation fails assembly.
func Header[R any](name string, fn func(R) any) HeaderField[R] {
	return HeaderField[R]{name: name, accessor: fn}
}

// HeaderLit creates a literal header.
func HeaderLit[R any](name, value string) HeaderField[R] {
	return HeaderField[R]{name: name, literal: value}
}

// resolveHeaders resolves the bindings into a name to value map.
func resolveHeaders[R any](fields []HeaderField[R], r R) (map[string]string, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.accessor == nil {
			out[f.name] = f.literal
			continue
		}
		s, ok, err := headerString(f.name, f.accessor(r))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out[f.name] = s
	}
	return out, nil
}

// headerString converts a bound header value into its string form.
func headerString(name string, v any) (value string, ok bool, err error) {
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, true, nil
	case *string:
		if x == nil {
			return "", false, nil
		}
		return *x, true, nil
	case fmt.Stringer:
		return x.String(), true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	case int:
		return strconv.Itoa(x), true, nil
	case int64:
		return strconv.FormatInt(x, 10), true, nil
	case uint64:
		return strconv.FormatUint(x, 10), true, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true, nil
	default:
		return "", false, restkit.NewInvalidHeaderError(name, v)
	}
}
