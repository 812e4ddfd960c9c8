package auth_test

import (
	"errors"
	"testing"

	"subjectid/internal/auth"
	"subjectid/internal/config"
)

func testProvider() *auth.ConfigProvider {
	cfg := config.Default()
	cfg.Auth.Users = map[string]config.User{
		"alice": {Password: "secret", Role: "admin"},
		"bob":   {Password: "hunter2", Role: "user"},
	}
	return auth.NewConfigProvider(&cfg)
}

func TestAuthenticateSuccess(t *testing.T) {
	session, err := auth.Authenticate(testProvider(), "alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if session.User != "alice" || session.Role != "admin" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}
	if session.Started.IsZero() {
		t.Fatal("expected a session start time")
	}
}

func TestAuthenticateIssuesFreshTokens(t *testing.T) {
	first, err := auth.Authenticate(testProvider(), "bob", "hunter2")
	if err != nil {
		t.Fatalf("first Authenticate: %v", err)
	}
	second, err := auth.Authenticate(testProvider(), "bob", "hunter2")
	if err != nil {
		t.Fatalf("second Authenticate: %v", err)
	}
	if first.Token == second.Token {
		t.Fatal("session tokens should differ per check")
	}
}

func TestAuthenticateFailures(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
	}{
		{"unknown user", "mallory", "secret"},
		{"wrong password", "alice", "Secret"},
		{"empty user", "", "secret"},
		{"empty password", "alice", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Authenticate(testProvider(), tc.user, tc.password)
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
