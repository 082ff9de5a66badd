package client

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/kbukum/restkit"
	"github.com/kbukum/restkit/codec"
)

func TestClassify_Success(t *testing.T) {
	body, err := Classify([]byte(`{"ok":true}`), &restkit.Status{Code: 200}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %q", body)
	}
}

func TestClassify_SuccessRange(t *testing.T) {
	for _, code := range []int{200, 201, 206, 299} {
		if _, err := Classify([]byte("x"), &restkit.Status{Code: code}, nil, nil); err != nil {
			t.Errorf("code %d: unexpected error: %v", code, err)
		}
	}
}

func TestClassify_SuccessNilPayload(t *testing.T) {
	body, err := Classify(nil, &restkit.Status{Code: 200}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body == nil || len(body) != 0 {
		t.Errorf("body = %v, want empty non-nil", body)
	}
}

func TestClassify_NoContentDiscardsPayload(t *testing.T) {
	body, err := Classify([]byte("stray bytes"), &restkit.Status{Code: 204}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestClassify_APIError(t *testing.T) {
	payload := []byte(`{"message":"not found"}`)
	_, err := Classify(payload, &restkit.Status{Code: 404}, nil, codec.JSONError[map[string]any]{})
	if !restkit.IsAPIError(err) {
		t.Fatalf("error = %v, want api_error", err)
	}
	var e *restkit.Error
	if !errors.As(err, &e) {
		t.Fatal("not a structured error")
	}
	if e.StatusCode != 404 {
		t.Errorf("status = %d", e.StatusCode)
	}
	decoded, ok := e.Decoded.(map[string]any)
	if !ok || decoded["message"] != "not found" {
		t.Errorf("decoded = %v", e.Decoded)
	}
	if string(e.Body) != string(payload) {
		t.Errorf("body = %q", e.Body)
	}
}

func TestClassify_APIError_DefaultDecoder(t *testing.T) {
	_, err := Classify([]byte(`{"error":"bad"}`), &restkit.Status{Code: 400}, nil, nil)
	if !restkit.IsAPIError(err) {
		t.Errorf("error = %v, want api_error", err)
	}
}

func TestClassify_ErrorParseFailure(t *testing.T) {
	_, err := Classify([]byte("<html>oops</html>"), &restkit.Status{Code: 500}, nil, nil)
	if c, _ := restkit.CodeOf(err); c != restkit.ErrCodeErrorParse {
		t.Fatalf("error = %v, want error_parse", err)
	}
	if got := restkit.StatusOf(err); got != 500 {
		t.Errorf("status = %d", got)
	}
}

func TestClassify_UnexpectedStatus(t *testing.T) {
	for _, code := range []int{199, 301, 500} {
		_, err := Classify(nil, &restkit.Status{Code: code}, nil, nil)
		if !restkit.IsUnexpectedStatus(err) {
			t.Errorf("code %d: error = %v, want unexpected_status", code, err)
		}
	}
}

func TestClassify_MissingStatus(t *testing.T) {
	_, err := Classify(nil, nil, nil, nil)
	if c, _ := restkit.CodeOf(err); c != restkit.ErrCodeTransport {
		t.Errorf("error = %v, want transport protocol violation", err)
	}
}

func TestClassify_TransportError(t *testing.T) {
	_, err := Classify(nil, nil, fmt.Errorf("connection reset"), nil)
	if c, _ := restkit.CodeOf(err); c != restkit.ErrCodeTransport {
		t.Errorf("error = %v, want transport", err)
	}
	if restkit.IsOffline(err) {
		t.Error("plain transport failure must not classify as offline")
	}
}

func TestClassify_OfflineError(t *testing.T) {
	cases := []error{
		&net.DNSError{Err: "no such host", Name: "api.example.com", IsNotFound: true},
		fmt.Errorf("dial: %w", syscall.ECONNREFUSED),
		fmt.Errorf("dial: %w", syscall.ENETUNREACH),
		fmt.Errorf("dial: %w", syscall.EHOSTUNREACH),
	}
	for _, cause := range cases {
		_, err := Classify(nil, nil, cause, nil)
		if !restkit.IsOffline(err) {
			t.Errorf("cause %v: error = %v, want offline", cause, err)
		}
	}
}
