package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"subjectid/internal/config"
)

// ErrInvalidCredentials marks a failed credential check. The message never
// distinguishes an unknown user from a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Credentials is what a Provider knows about one user.
type Credentials struct {
	Password string
	Role     string
}

// Provider supplies credential lookups. Implementations must treat lookups
// as read-only; the gate never mutates the credential source.
type Provider interface {
	Lookup(username string) (Credentials, bool)
}

// Session is the proof of a successful credential check.
type Session struct {
	User    string    `json:"user"`
	Role    string    `json:"role"`
	Token   string    `json:"token"`
	Started time.Time `json:"started"`
}

// Authenticate verifies a username/password pair against the provider and
// issues a session with a fresh token. Comparison is constant-time.
func Authenticate(provider Provider, username, password string) (Session, error) {
	if provider == nil {
		return Session{}, errors.New("auth: nil provider")
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidCredentials)
	}

	creds, ok := provider.Lookup(username)
	if !ok {
		return Session{}, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(creds.Password), []byte(password)) != 1 {
		return Session{}, ErrInvalidCredentials
	}

	return Session{
		User:    username,
		Role:    creds.Role,
		Token:   uuid.NewString(),
		Started: time.Now().UTC(),
	}, nil
}

// ConfigProvider reads credentials from the loaded configuration.
type ConfigProvider struct {
	users map[string]config.User
}

// NewConfigProvider builds a provider over the config auth table.
func NewConfigProvider(cfg *config.Config) *ConfigProvider {
	users := map[string]config.User{}
	if cfg != nil {
		users = cfg.Auth.Users
	}
	return &ConfigProvider{users: users}
}

// Lookup implements Provider.
func (p *ConfigProvider) Lookup(username string) (Credentials, bool) {
	user, ok := p.users[username]
	if !ok {
		return Credentials{}, false
	}
	return Credentials{Password: user.Password, Role: user.Role}, true
}
