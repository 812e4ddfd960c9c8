package testsupport

import (
	"path/filepath"
	"testing"

	"subjectid/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithUsers enables the credential gate with the given user table.
func WithUsers(users map[string]config.User) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Auth.Enabled = true
		b.cfg.Auth.Users = users
	}
}

// WithMaxNames caps ingest at the given count on the test config.
func WithMaxNames(limit int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Limits.MaxNames = limit
	}
}

// WithDefaultMethod overrides the default generation method.
func WithDefaultMethod(method string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Generate.DefaultMethod = method
	}
}
