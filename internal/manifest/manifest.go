// Package manifest handles nemo.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a nemo.toml project/session configuration.
type Manifest struct {
	Project Project `toml:"project"`
	Runtime Runtime `toml:"runtime"`
	Library Library `toml:"library"`

	// Dir is the directory containing the nemo.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name      string `toml:"name"`
	Namespace string `toml:"namespace"`
}

// Runtime configures the interpreter's ambient settings: the library
// search path, the bootstrap file to load, and the activation depth
// limit.
type Runtime struct {
	Home       string `toml:"home"`
	Bootstrap  string `toml:"bootstrap"`
	StackDepth int    `toml:"stack-depth"`
}

// Library declares the class tags (set with Class>>tag:) that a session
// should load from the library search path, and any it should skip.
type Library struct {
	Tags    []string `toml:"tags"`
	Exclude []string `toml:"exclude"`
}

// Load parses a nemo.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "nemo.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// A StackDepth of 0 means unset: leave it that way so callers wire
	// vm.NewVM's own default through rather than overriding it here.
	return &m, nil
}

// FindAndLoad walks up from startDir looking for a nemo.toml file, then
// loads and returns it. Returns nil, nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "nemo.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// HomePath resolves the effective library home directory: an explicit
// override wins, then the manifest's own setting, then the environment
// variable.
func (m *Manifest) HomePath(override, envHome string) string {
	if override != "" {
		return override
	}
	if m != nil && m.Runtime.Home != "" {
		if filepath.IsAbs(m.Runtime.Home) {
			return m.Runtime.Home
		}
		return filepath.Join(m.Dir, m.Runtime.Home)
	}
	if envHome != "" {
		return envHome
	}
	return ""
}

// BootstrapPath resolves the effective bootstrap file override, or ""
// if none is configured (meaning: use the built-in bootstrap).
func (m *Manifest) BootstrapPath(override string) string {
	if override != "" {
		return override
	}
	if m == nil || m.Runtime.Bootstrap == "" {
		return ""
	}
	if filepath.IsAbs(m.Runtime.Bootstrap) {
		return m.Runtime.Bootstrap
	}
	return filepath.Join(m.Dir, m.Runtime.Bootstrap)
}
