package handler

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/zmtwc/planner/internal/config"
	"github.com/zmtwc/planner/internal/model"
	"github.com/zmtwc/planner/internal/service"
)

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/user/1", nil, "")
	if w.Code != 401 {
		t.Fatalf("got %d want 401", w.Code)
	}
	var resp model.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.Contains(resp.Error, "X-JWT-Token") {
		t.Fatalf("error %q does not mention the header", resp.Error)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	env := newTestEnv(t)

	for _, token := range []string{
		"not-a-jwt",
		"eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.bogus",
	} {
		w := env.do(t, "GET", "/user/1", nil, token)
		if w.Code != 401 {
			t.Fatalf("token %q: got %d want 401", token, w.Code)
		}
		var resp model.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp.Error != "invalid JWT token" {
			t.Fatalf("got error %q want %q", resp.Error, "invalid JWT token")
		}
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	env := newTestEnv(t)
	id, token := env.registerUser(t, "alice", "hunter2")

	w := env.do(t, "GET", "/user/1", nil, token)
	if w.Code != 200 {
		t.Fatalf("got %d want 200: %s", w.Code, w.Body.String())
	}
	var user model.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if user.ID != id || user.Username != "alice" {
		t.Fatalf("got %+v", user)
	}
}

func TestAuthMiddlewareTokenFromOtherSecret(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice", "hunter2")

	// Same claims, different signing key. The middleware must reject it.
	other, err := service.NewAuthService(env.store, config.AuthConfig{
		JWTSecret: "a-different-secret",
		Issuer:    "zmtwc",
		TokenTTL:  "24h",
	})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	foreign, err := other.IssueToken(1, "alice")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := env.do(t, "GET", "/user/1", nil, foreign)
	if w.Code != 401 {
		t.Fatalf("got %d want 401", w.Code)
	}
}
