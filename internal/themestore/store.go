// Package themestore persists the selected theme name and owns the only
// code allowed to touch ambient terminal state.
package themestore

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/glintui/glint/pkg/errors"
)

const (
	configDirName  = "glint"
	configFileName = "theme.yaml"
)

type preferences struct {
	Theme string `yaml:"theme"`
}

// Store reads and writes the theme preference file. The theme name is the
// only datum the whole system persists.
type Store struct {
	path string
}

// New locates the preference file under the user config dir.
func New() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	return NewAt(filepath.Join(dir, configDirName, configFileName)), nil
}

// NewAt creates a store over an explicit file path.
func NewAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the preference file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored theme name. A missing file is not an error; it
// returns the empty string and the caller falls back to the default theme.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", s.path, err)
	}

	var prefs preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return "", errors.NewParseError(s.path, 0, err)
	}
	return prefs.Theme, nil
}

// Save writes the theme name, creating the config directory if needed.
func (s *Store) Save(name string) error {
	data, err := yaml.Marshal(preferences{Theme: name})
	if err != nil {
		return fmt.Errorf("encoding theme preference: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
