package http

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
)

// assertAnError stands in for any non-taxonomy failure.
var assertAnError = errors.New("boom")

// assertMessageContains checks that the JSON message envelope contains
// the given substring.
func assertMessageContains(t *testing.T, res *http.Response, substr string) {
	t.Helper()
	if substr == "" {
		return
	}
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(substr)) {
		t.Errorf("expected body to contain %q, got %q", substr, buf.String())
	}
}
