package endpoint

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kbukum/restkit"
)

// Template is an ordered path template. Segments are either literal strings
// or accessors bound against the request instance; each carries an order
// index and a flag for whether a separator precedes it. Templates are values:
// every builder method returns a new template, so declared templates can be
// shared and extended freely.
type Template[R any] struct {
	segments []segment[R]
}

type segment[R any] struct {
	index     int
	separator bool
	literal   string
	accessor  func(R) any // nil for literals
}

// Root returns an empty template.
func Root[R any]() Template[R] {
	return Template[R]{}
}

// Lit appends a literal segment, preceded by a separator.
func (t Template[R]) Lit(s string) Template[R] {
	return t.append(segment[R]{separator: true, literal: s})
}

// Bind appends a bound segment, preceded by a separator. The accessor result
// is rendered via PathSegment; an empty rendering elides the segment.
func (t Template[R]) Bind(fn func(R) any) Template[R] {
	return t.append(segment[R]{separator: true, accessor: fn})
}

// Extend appends a literal without a separator (e.g. a ".json" suffix).
func (t Template[R]) Extend(s string) Template[R] {
	return t.append(segment[R]{literal: s})
}

// ExtendBind appends a bound segment without a separator.
func (t Template[R]) ExtendBind(fn func(R) any) Template[R] {
	return t.append(segment[R]{accessor: fn})
}

// Join appends u's segments to t, re-indexed to continue t's running order,
// so compound templates keep their ordering guarantees.
func (t Template[R]) Join(u Template[R]) Template[R] {
	out := t.clone(len(u.segments))
	base := t.nextIndex()
	for _, s := range u.segments {
		s.index += base
		out.segments = append(out.segments, s)
	}
	return out
}

// Resolve renders the template against the request instance. Segments are
// walked in ascending index order; a separator is inserted only when the
// segment asks for one and the output does not already end in one; segments
// that render empty are dropped along with their separator.
func (t Template[R]) Resolve(r R) string {
	segs := make([]segment[R], len(t.segments))
	copy(segs, t.segments)
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].index < segs[j].index })

	var b strings.Builder
	elidedLast := false
	for _, s := range segs {
		v := s.literal
		if s.accessor != nil {
			v = PathSegment(s.accessor(r))
		}
		if v == "" {
			elidedLast = true
			continue
		}
		elidedLast = false
		if s.separator && b.Len() > 0 && !strings.HasSuffix(b.String(), "/") {
			b.WriteByte('/')
		}
		b.WriteString(v)
	}
	out := collapseSeparators(b.String())
	// an elided trailing segment must not leave a dangling separator behind
	if elidedLast && len(out) > 1 {
		out = strings.TrimSuffix(out, "/")
	}
	return out
}

func (t Template[R]) append(s segment[R]) Template[R] {
	out := t.clone(1)
	s.index = t.nextIndex()
	out.segments = append(out.segments, s)
	return out
}

func (t Template[R]) clone(extra int) Template[R] {
	segs := make([]segment[R], len(t.segments), len(t.segments)+extra)
	copy(segs, t.segments)
	return Template[R]{segments: segs}
}

func (t Template[R]) nextIndex() int {
	next := 0
	for _, s := range t.segments {
		if s.index >= next {
			next = s.index + 1
		}
	}
	return next
}

// collapseSeparators removes doubled separators introduced by literals that
// carry their own slashes.
func collapseSeparators(p string) string {
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// PathSegment renders a bound path value. nil renders empty, which elides
// the segment. Rendering is total: values without a dedicated representation
// fall back to fmt.Sprint.
func PathSegment(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case restkit.PathRepresentable:
		return x.PathSegment()
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
