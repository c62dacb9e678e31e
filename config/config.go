// Package config persists the plugin configuration as a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the configuration schema version written by Save.
const CurrentVersion = 1

// UI scale bounds applied on load and update.
const (
	MinUIScale = 0.5
	MaxUIScale = 4.0
)

// Config is the persisted plugin configuration.
type Config struct {
	Version      int     `yaml:"version"`
	ShowTooltips bool    `yaml:"show_tooltips"`
	OpenOnStart  bool    `yaml:"open_on_start"`
	UIScale      float32 `yaml:"ui_scale"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Version:      CurrentVersion,
		ShowTooltips: true,
		OpenOnStart:  false,
		UIScale:      1,
	}
}

// normalize migrates older versions forward and clamps out-of-range values.
func (c *Config) normalize() {
	// Version 0 files only carried the version number; missing keys
	// already hold their defaults.
	if c.Version < CurrentVersion {
		c.Version = CurrentVersion
	}
	switch {
	case c.UIScale <= 0:
		c.UIScale = 1
	case c.UIScale < MinUIScale:
		c.UIScale = MinUIScale
	case c.UIScale > MaxUIScale:
		c.UIScale = MaxUIScale
	}
}

// Parse decodes a YAML document on top of the defaults and migrates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Store owns the configuration file. It is safe for concurrent use.
type Store struct {
	path   string
	logger *zap.Logger

	mu  sync.RWMutex
	cfg Config
	raw []byte // Bytes last read from or written to path
}

// Open loads the configuration at path. A missing file yields the defaults;
// nothing is written until Save.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{path: path, logger: logger, cfg: Default()}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("config file not found, using defaults", zap.String("path", path))
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Version > CurrentVersion {
		logger.Warn("config written by a newer version",
			zap.String("path", path), zap.Int("version", cfg.Version))
	}
	s.cfg = cfg
	s.raw = data
	return s, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update applies fn to the configuration and saves it.
func (s *Store) Update(fn func(*Config)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cfg)
	s.cfg.normalize()
	return s.saveLocked()
}

// Save writes the configuration to disk atomically.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := yaml.Marshal(s.cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}
	s.raw = data
	s.logger.Debug("config saved", zap.String("path", s.path))
	return nil
}

// Reload re-reads the file and reports whether the configuration changed.
// Content identical to what the store last read or wrote is ignored, so the
// store's own saves never count as a change. A missing file keeps the
// current configuration.
func (s *Store) Reload() (bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read config %s: %w", s.path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if bytes.Equal(data, s.raw) {
		return false, nil
	}
	cfg, err := Parse(data)
	if err != nil {
		return false, fmt.Errorf("%s: %w", s.path, err)
	}
	s.raw = data
	if cfg == s.cfg {
		return false, nil
	}
	s.cfg = cfg
	return true, nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once renamed
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
