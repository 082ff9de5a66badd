package endpoint

import (
	"strings"
	"testing"
)

type pathReq struct {
	UserID string
	Format string
	Filter *string
}

func TestTemplate_Resolve_LiteralAndBound(t *testing.T) {
	tpl := Root[pathReq]().
		Lit("user").
		Bind(func(r pathReq) any { return r.UserID }).
		Lit("profile")

	got := tpl.Resolve(pathReq{UserID: "42"})
	if got != "user/42/profile" {
		t.Errorf("Resolve = %q, want %q", got, "user/42/profile")
	}
}

func TestTemplate_Resolve_EmptySegmentElided(t *testing.T) {
	tpl := Root[pathReq]().
		Lit("user").
		Bind(func(r pathReq) any { return r.UserID }).
		Lit("profile")

	got := tpl.Resolve(pathReq{})
	if got != "user/profile" {
		t.Errorf("Resolve = %q, want %q", got, "user/profile")
	}
}

func TestTemplate_Resolve_EmptyTrailingSegment(t *testing.T) {
	tpl := Root[pathReq]().
		Lit("users").
		Bind(func(r pathReq) any { return r.UserID })

	got := tpl.Resolve(pathReq{})
	if got != "users" {
		t.Errorf("Resolve = %q, want %q", got, "users")
	}
	if strings.HasSuffix(got, "/") {
		t.Error("elided trailing segment left a dangling separator")
	}
}

func TestTemplate_Resolve_NoDoubledSeparators(t *testing.T) {
	tpl := Root[pathReq]().
		Lit("api/").
		Lit("/v1/").
		Bind(func(r pathReq) any { return r.UserID })

	got := tpl.Resolve(pathReq{UserID: "7"})
	if strings.Contains(got, "//") {
		t.Errorf("Resolve = %q contains a doubled separator", got)
	}
	if got != "api/v1/7" {
		t.Errorf("Resolve = %q, want %q", got, "api/v1/7")
	}
}

func TestTemplate_Extend_NoSeparator(t *testing.T) {
	tpl := Root[pathReq]().
		Lit("report").
		Extend(".").
		ExtendBind(func(r pathReq) any { return r.Format })

	got := tpl.Resolve(pathReq{Format: "json"})
	if got != "report.json" {
		t.Errorf("Resolve = %q, want %q", got, "report.json")
	}
}

func TestTemplate_Join_ReindexesAppendedSegments(t *testing.T) {
	prefix := Root[pathReq]().Lit("api").Lit("v2")
	suffix := Root[pathReq]().
		Lit("user").
		Bind(func(r pathReq) any { return r.UserID })

	got := prefix.Join(suffix).Resolve(pathReq{UserID: "9"})
	if got != "api/v2/user/9" {
		t.Errorf("Resolve = %q, want %q", got, "api/v2/user/9")
	}
}

func TestTemplate_BuildersDoNotMutateReceiver(t *testing.T) {
	base := Root[pathReq]().Lit("user")
	a := base.Lit("profile")
	b := base.Lit("settings")

	if got := a.Resolve(pathReq{}); got != "user/profile" {
		t.Errorf("a = %q", got)
	}
	if got := b.Resolve(pathReq{}); got != "user/settings" {
		t.Errorf("b = %q, shared template was mutated", got)
	}
}

func TestTemplate_Resolve_NilAccessorValueElided(t *testing.T) {
	tpl := Root[pathReq]().
		Lit("search").
		Bind(func(r pathReq) any { return r.Filter }).
		Lit("results")

	got := tpl.Resolve(pathReq{Filter: nil})
	if got != "search/results" {
		t.Errorf("Resolve = %q, want %q", got, "search/results")
	}
}

type hexID uint32

func (h hexID) PathSegment() string { return "x" }

func TestPathSegment(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"plain", "plain"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint(3), "3"},
		{true, "true"},
		{3.5, "3.5"},
		{hexID(1), "x"},
	}
	for _, tt := range tests {
		if got := PathSegment(tt.in); got != tt.want {
			t.Errorf("PathSegment(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
