package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// StateDir holds the run history database and lock file.
	StateDir string `toml:"state_dir"`
	// LogDir receives the subjectid log file when set.
	LogDir string `toml:"log_dir"`
}

// Limits caps ingest volume.
type Limits struct {
	MaxNames       int `toml:"max_names"`
	MaxFileSizeMiB int `toml:"max_file_size_mib"`
}

// Generate contains defaults for the generate command.
type Generate struct {
	// DefaultMethod is used when --method is not given. One of
	// md5, sha1, sha256, sequential, uuid.
	DefaultMethod string `toml:"default_method"`
	// CSVDelimiter separates fields in CSV exports. Single character.
	CSVDelimiter string `toml:"csv_delimiter"`
	// SortOutput sorts exported rows by name instead of input order.
	SortOutput bool `toml:"sort_output"`
}

// User is one credential entry in the auth table.
type User struct {
	Password string `toml:"password"`
	Role     string `toml:"role"`
}

// Auth contains the credential gate configuration.
type Auth struct {
	// Enabled requires a successful credential check before generate runs.
	Enabled bool `toml:"enabled"`
	// Users maps username to credentials.
	Users map[string]User `toml:"users"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for subjectid.
//
// Configuration sections by subsystem:
//   - Paths: state and log directories
//   - Limits: ingest caps (name count, file size)
//   - Generate: default method, CSV delimiter, output ordering
//   - Auth: optional credential gate and its user table
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Limits   Limits   `toml:"limits"`
	Generate Generate `toml:"generate"`
	Auth     Auth     `toml:"auth"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/subjectid/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. An absent file is not
// an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv("SUBJECTID_CONFIG"))
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("subjectid.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state and log directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.StateDir}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// HistoryDBPath returns the run history database location.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// LockPath returns the lock file guarding runs that share the state dir.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "subjectid.lock")
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves ~ prefixes and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}
