package endpoint

import (
	"strings"
	"testing"

	"github.com/kbukum/restkit"
)

type paramReq struct {
	Page    *int
	Query   string
	Verbose bool
	Bad     struct{ x int }
}

func TestResolveParameters_DeclarationOrder(t *testing.T) {
	bindings := []Parameter[paramReq]{
		Query("q", func(r paramReq) any { return r.Query }),
		QueryLit[paramReq]("per_page", "50"),
		Query("verbose", func(r paramReq) any { return r.Verbose }),
	}

	query, form, err := resolveParameters(bindings, paramReq{Query: "gopher", Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(form) != 0 {
		t.Fatalf("unexpected form items: %v", form)
	}
	want := []QueryItem{{"q", "gopher"}, {"per_page", "50"}, {"verbose", "true"}}
	if len(query) != len(want) {
		t.Fatalf("got %d items, want %d", len(query), len(want))
	}
	for i := range want {
		if query[i] != want[i] {
			t.Errorf("item %d = %v, want %v", i, query[i], want[i])
		}
	}
}

func TestResolveParameters_AbsentValueOmitted(t *testing.T) {
	bindings := []Parameter[paramReq]{
		Query("page", func(r paramReq) any { return r.Page }),
		QueryLit[paramReq]("page_size", "10"),
	}

	query, _, err := resolveParameters(bindings, paramReq{Page: nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(query) != 1 || query[0].Name != "page_size" {
		t.Errorf("query = %v, want only the literal", query)
	}

	page := 3
	query, _, err = resolveParameters(bindings, paramReq{Page: &page})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(query) != 2 || query[0] != (QueryItem{"page", "3"}) {
		t.Errorf("query = %v, want page=3 first", query)
	}
}

func TestResolveParameters_InvalidType(t *testing.T) {
	bindings := []Parameter[paramReq]{
		Query("bad", func(r paramReq) any { return r.Bad }),
	}
	_, _, err := resolveParameters(bindings, paramReq{})
	if err == nil {
		t.Fatal("expected an error for a non-representable value")
	}
	if !restkit.IsEndpointError(err) {
		t.Errorf("error = %v, want an endpoint error", err)
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("error %q should name the parameter", err.Error())
	}
}

func TestResolveParameters_FormSplit(t *testing.T) {
	bindings := []Parameter[paramReq]{
		Form("username", func(r paramReq) any { return r.Query }),
		FormLit[paramReq]("grant_type", "password"),
		QueryLit[paramReq]("v", "2"),
	}
	query, form, err := resolveParameters(bindings, paramReq{Query: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(query) != 1 || len(form) != 2 {
		t.Fatalf("split = %d query / %d form, want 1/2", len(query), len(form))
	}
}

func TestEncodeQuery(t *testing.T) {
	got := EncodeQuery([]QueryItem{{"q", "a b+c"}, {"lang", "go"}})
	want := "q=a+b%2Bc&lang=go"
	if got != want {
		t.Errorf("EncodeQuery = %q, want %q", got, want)
	}
}

func TestPlusPreservingQuery(t *testing.T) {
	got := PlusPreservingQuery([]QueryItem{{"expr", "1+2"}})
	want := "expr=1+2"
	if got != want {
		t.Errorf("PlusPreservingQuery = %q, want %q", got, want)
	}
}

func TestEncodeForm(t *testing.T) {
	got := string(encodeForm([]QueryItem{{"user name", "a&b"}, {"ok", "yes"}}))
	want := "user+name=a%26b&ok=yes"
	if got != want {
		t.Errorf("encodeForm = %q, want %q", got, want)
	}
}

type maybeToken struct {
	set   bool
	value string
}

func (m maybeToken) ParameterValue() (string, bool) { return m.value, m.set }

func TestParameterString_RepresentableDeclines(t *testing.T) {
	s, ok, err := parameterString("token", maybeToken{})
	if err != nil || ok {
		t.Errorf("declining value: s=%q ok=%v err=%v, want omitted", s, ok, err)
	}
	s, ok, err = parameterString("token", maybeToken{set: true, value: "abc"})
	if err != nil || !ok || s != "abc" {
		t.Errorf("accepting value: s=%q ok=%v err=%v", s, ok, err)
	}
}
