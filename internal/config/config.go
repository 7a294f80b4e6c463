// Package config provides reading and writing of pathnorm configuration.
// Supports both global (~/.pathnorm/config.yaml) and local (.pathnorm.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// The config selects the default equivalence profile; command-line flags
// add to it, and contradictions (config nfc + flag --nfd) are rejected by
// profile validation, not silently resolved.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/pathnorm/internal/equiv"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.pathnorm/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .pathnorm.yaml
	ScopeLocal
)

// ProfileOptions holds the equivalence profile selection. Each field maps
// to one symbolic option; invalid combinations are left for
// equiv.NewProfile to reject so config and flags fail the same way.
type ProfileOptions struct {
	NFC       bool `yaml:"nfc,omitempty"`
	NFD       bool `yaml:"nfd,omitempty"`
	Fold      bool `yaml:"fold,omitempty"`
	FoldASCII bool `yaml:"fold_ascii,omitempty"`
}

// Options returns the selected symbolic options.
func (p ProfileOptions) Options() []equiv.Option {
	var opts []equiv.Option
	if p.NFC {
		opts = append(opts, equiv.NFC)
	}
	if p.NFD {
		opts = append(opts, equiv.NFD)
	}
	if p.Fold {
		opts = append(opts, equiv.FoldUnicode)
	}
	if p.FoldASCII {
		opts = append(opts, equiv.FoldASCII)
	}
	return opts
}

// Config contains configuration for pathnorm.
type Config struct {
	Profile ProfileOptions `yaml:"profile,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return ".pathnorm.yaml"
}

// GlobalPath returns the path to the global (user) config file: ~/.pathnorm/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathnorm", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope. A missing file is
// not an error: it yields an empty config (byte-exact profile).
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	// Surface contradictory profile blocks at load time rather than on
	// first use.
	if _, err := equiv.NewProfile(cfg.Profile.Options()...); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config file %s: %w", c.path, err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	if scope == ScopeLocal {
		return LocalPath()
	}
	return GlobalPath()
}
