package settings

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	KeyAccessToken = "access_token"
	KeyLocale      = "locale"
	KeyColorScheme = "color_scheme"
)

// Store holds the extension settings read from a YAML file. It is read-only
// once loaded.
type Store struct {
	path   string
	values map[string]string
}

// NewStore creates a store holding a copy of values.
func NewStore(values map[string]string) *Store {
	s := &Store{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Load reads path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("Settings file not found, using empty settings", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case map[string]any, []any:
			slog.Warn("Ignoring non-scalar setting", "path", path, "key", key)
			continue
		default:
			s.values[key] = strings.TrimSpace(fmt.Sprint(v))
		}
	}

	slog.Debug("Settings loaded", "path", path, "keys", len(s.values))
	return s, nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

func (s *Store) AccessToken() string {
	v, _ := s.Get(KeyAccessToken)
	return v
}

func (s *Store) Locale() string {
	v, _ := s.Get(KeyLocale)
	return v
}

func (s *Store) ColorScheme() string {
	v, _ := s.Get(KeyColorScheme)
	return v
}

func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}
