package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultManifest    = "photos.json"
	defaultDBPath      = "gallery.db"
	defaultLogPath     = "gallery.log"
	defaultLogLevel    = "info"
	defaultLoadTimeout = 15 * time.Second
)

// Config holds runtime settings for the gallery.
type Config struct {
	Manifest      string
	DBPath        string
	LoadTimeout   time.Duration
	LogPath       string
	LogLevel      string
	InlinePreview bool
}

type fileConfig struct {
	Manifest      string `yaml:"manifest"`
	DBPath        string `yaml:"db_path"`
	LoadTimeout   string `yaml:"load_timeout"`
	LogPath       string `yaml:"log_path"`
	LogLevel      string `yaml:"log_level"`
	InlinePreview *bool  `yaml:"inline_preview"`
}

// LoadFromEnv reads GALLERY_* variables. When GALLERY_CONFIG names a YAML
// file its values are applied first and environment values override them.
func LoadFromEnv() (Config, error) {
	cfg := Config{InlinePreview: true}

	if path := strings.TrimSpace(os.Getenv("GALLERY_CONFIG")); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("GALLERY_MANIFEST"); v != "" {
		cfg.Manifest = v
	}
	if v := os.Getenv("GALLERY_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("GALLERY_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("GALLERY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GALLERY_LOAD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("GALLERY_LOAD_TIMEOUT: %w", err)
		}
		cfg.LoadTimeout = d
	}
	if v := os.Getenv("GALLERY_INLINE_PREVIEW"); v != "" {
		cfg.InlinePreview = v != "0" && !strings.EqualFold(v, "false")
	}

	if cfg.Manifest == "" {
		cfg.Manifest = defaultManifest
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.LogPath == "" {
		cfg.LogPath = defaultLogPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.LoadTimeout == 0 {
		cfg.LoadTimeout = defaultLoadTimeout
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	c.Manifest = fc.Manifest
	c.DBPath = fc.DBPath
	c.LogPath = fc.LogPath
	c.LogLevel = fc.LogLevel
	if fc.LoadTimeout != "" {
		d, err := time.ParseDuration(fc.LoadTimeout)
		if err != nil {
			return fmt.Errorf("parse config file %s: load_timeout: %w", path, err)
		}
		c.LoadTimeout = d
	}
	if fc.InlinePreview != nil {
		c.InlinePreview = *fc.InlinePreview
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Manifest) == "" {
		return errors.New("Manifest is required")
	}
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if c.LoadTimeout <= 0 {
		return fmt.Errorf("LoadTimeout must be positive: %s", c.LoadTimeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	return nil
}
