package handler

import (
	"strings"
	"testing"
)

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/healthz", nil, "")
	if w.Code != 200 {
		t.Fatalf("got %d want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("body %q", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	// Generate one counted request first.
	env.do(t, "GET", "/healthz", nil, "")

	w := env.do(t, "GET", "/metrics", nil, "")
	if w.Code != 200 {
		t.Fatalf("got %d want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "planner_http_requests_total") {
		t.Fatal("request counter missing from exposition")
	}
}
