package endpoint

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kbukum/restkit"
)

type paramKind int

const (
	queryBound paramKind = iota
	queryLiteral
	formBound
	formLiteral
)

// Parameter is a query or form parameter binding. Bound variants resolve
// their value from the request instance at assembly time; literal variants
// always contribute their fixed value.
type Parameter[R any] struct {
	kind     paramKind
	name     string
	literal  string
	accessor func(R) any
}

// Query creates a bound query parameter. A value that resolves to nil, or
// declines its ParameterValue conversion, is silently omitted.
func Query[R any](name string, fn func(R) any) Parameter[R] {
	return Parameter[R]{kind: queryBound, name: name, accessor: fn}
}

// QueryLit creates a literal query parameter.
func QueryLit[R any](name, value string) Parameter[R] {
	return Parameter[R]{kind: queryLiteral, name: name, literal: value}
}

// Form creates a bound form parameter. Form parameters build an
// application/x-www-form-urlencoded body when the endpoint has no explicit
// body.
func Form[R any](name string, fn func(R) any) Parameter[R] {
	return Parameter[R]{kind: formBound, name: name, accessor: fn}
}

// FormLit creates a literal form parameter.
func FormLit[R any](name, value string) Parameter[R] {
	return Parameter[R]{kind: formLiteral, name: name, literal: value}
}

// QueryItem is a resolved parameter name/value pair, in declaration order.
type QueryItem struct {
	Name  string
	Value string
}

// QueryEncoder renders resolved query items into a raw query string.
type QueryEncoder func(items []QueryItem) string

// EncodeQuery is the default query encoding strategy: each side is
// percent-encoded and pairs are joined with '&'.
func EncodeQuery(items []QueryItem) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(it.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(it.Value))
	}
	return b.String()
}

// PlusPreservingQuery encodes like EncodeQuery but keeps literal '+'
// characters instead of encoding them as %2B.
func PlusPreservingQuery(items []QueryItem) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(strings.ReplaceAll(url.QueryEscape(it.Name), "%2B", "+"))
		b.WriteByte('=')
		b.WriteString(strings.ReplaceAll(url.QueryEscape(it.Value), "%2B", "+"))
	}
	return b.String()
}

// resolveParameters splits the bindings into query and form items, resolved
// in declaration order.
func resolveParameters[R any](bindings []Parameter[R], r R) (query, form []QueryItem, err error) {
	for _, p := range bindings {
		switch p.kind {
		case queryLiteral:
			query = append(query, QueryItem{Name: p.name, Value: p.literal})
		case formLiteral:
			form = append(form, QueryItem{Name: p.name, Value: p.literal})
		case queryBound, formBound:
			s, ok, perr := parameterString(p.name, p.accessor(r))
			if perr != nil {
				return nil, nil, perr
			}
			if !ok {
				continue // optional-absent: omit the parameter entirely
			}
			if p.kind == queryBound {
				query = append(query, QueryItem{Name: p.name, Value: s})
			} else {
				form = append(form, QueryItem{Name: p.name, Value: s})
			}
		}
	}
	return query, form, nil
}

// encodeForm renders form items as an application/x-www-form-urlencoded
// body, each side percent-encoded.
func encodeForm(items []QueryItem) []byte {
	return []byte(EncodeQuery(items))
}

// parameterString converts a bound parameter value into its string form.
// ok=false means the value is absent and the parameter must be omitted.
func parameterString(name string, v any) (value string, ok bool, err error) {
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case restkit.ParameterValue:
		value, ok = x.ParameterValue()
		return value, ok, nil
	case string:
		return x, true, nil
	case *string:
		if x == nil {
			return "", false, nil
		}
		return *x, true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	case *bool:
		if x == nil {
			return "", false, nil
		}
		return strconv.FormatBool(*x), true, nil
	case int:
		return strconv.Itoa(x), true, nil
	case *int:
		if x == nil {
			return "", false, nil
		}
		return strconv.Itoa(*x), true, nil
	case int8:
		return strconv.FormatInt(int64(x), 10), true, nil
	case int16:
		return strconv.FormatInt(int64(x), 10), true, nil
	case int32:
		return strconv.FormatInt(int64(x), 10), true, nil
	case int64:
		return strconv.FormatInt(x, 10), true, nil
	case *int64:
		if x == nil {
			return "", false, nil
		}
		return strconv.FormatInt(*x, 10), true, nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), true, nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true, nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true, nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true, nil
	case uint64:
		return strconv.FormatUint(x, 10), true, nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true, nil
	case fmt.Stringer:
		return x.String(), true, nil
	default:
		return "", false, restkit.NewInvalidParameterError(name, v)
	}
}
