package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Data source identifiers. The analysis backends themselves live
// outside this app; the setting is stored and displayed only.
const (
	SourceBaoStock = "baostock"
	SourceQMT      = "qmt"
)

// Settings is the global app configuration edited on the settings page.
type Settings struct {
	DataSource string `json:"data_source"`
}

// Default returns the settings used when no file exists yet.
func Default() Settings {
	return Settings{DataSource: SourceBaoStock}
}

// Store persists Settings as a small JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a settings store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the settings file, merging defaults for missing fields. A
// missing file yields the defaults.
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if cfg.DataSource == "" {
		cfg.DataSource = SourceBaoStock
	}
	return cfg, nil
}

// Save writes the settings file, creating the directory if needed.
func (s *Store) Save(cfg Settings) error {
	if cfg.DataSource != SourceBaoStock && cfg.DataSource != SourceQMT {
		return fmt.Errorf("unknown data source %q", cfg.DataSource)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
