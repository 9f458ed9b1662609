// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/marknote/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete marknote configuration.
type Config struct {
	// Version of the configuration layout
	Version string `toml:"version" json:"version"`

	Storage StorageConfig `toml:"storage" json:"storage"`
	UI      UIConfig      `toml:"ui" json:"ui"`
	Log     LogConfig     `toml:"log" json:"log"`
}

// StorageConfig controls note persistence.
type StorageConfig struct {
	// Backend is "file" or "sqlite"
	Backend string `toml:"backend" json:"backend"`
	// Path of the notes file or database; "~" expands to the home directory
	Path string `toml:"path" json:"path"`
	// Key the snapshot is stored under
	Key string `toml:"key" json:"key"`
	// Watch reloads notes when another process changes the file
	Watch bool `toml:"watch" json:"watch"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// WordWrap is the Markdown render width; 0 follows the terminal
	WordWrap int `toml:"word_wrap" json:"word_wrap"`
	// AllowTagCreation lets the tag input create unknown tags
	AllowTagCreation bool `toml:"allow_tag_creation" json:"allow_tag_creation"`
	// SuggestedTags are offered as one-key shortcuts in the note form
	SuggestedTags []string `toml:"suggested_tags" json:"suggested_tags"`
}

// LogConfig controls the log file.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error"
	Level string `toml:"level" json:"level"`
	// Path of the log file; empty disables logging
	Path string `toml:"path" json:"path"`
}

// Known option values.
var (
	Backends  = []string{"file", "sqlite"}
	Themes    = []string{"dark", "light", "auto"}
	LogLevels = []string{"debug", "info", "warn", "error"}
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// CurrentVersion is the layout version written by Save.
const CurrentVersion = "1"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Storage: StorageConfig{
			Backend: "file",
			Path:    "~/.marknote/notes.json",
			Key:     "persist:root",
			Watch:   true,
		},
		UI: UIConfig{
			Theme:            "auto",
			WordWrap:         0,
			AllowTagCreation: true,
			SuggestedTags:    []string{"work", "personal", "ideas", "todo", "important"},
		},
		Log: LogConfig{
			Level: "info",
			Path:  "~/.marknote/marknote.log",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the marknote configuration directory path.
func ConfigDir() (string, error) {
	if dir := os.Getenv("MARKNOTE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".marknote"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ExpandPath resolves a leading "~" against the configuration directory's
// parent for "~/.marknote/..." paths, and the home directory otherwise.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	if rest, ok := strings.CutPrefix(path, "~/.marknote"); ok && (rest == "" || strings.HasPrefix(rest, "/")) {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, rest), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(tomlPath); statErr == nil {
		return LoadFromPath(tomlPath)
	}

	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(jsonPath); statErr == nil {
		return LoadFromPath(jsonPath)
	}

	cfg := Default()
	return cfg, cfg.finish()
}

// LoadFromPath loads configuration from a specific file with full validation.
// Files ending in .json are read as JSON, anything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	// Lists replace the defaults rather than merge into them.
	cfg.UI.SuggestedTags = nil

	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read JSON file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
		if cfg.UI.SuggestedTags == nil {
			cfg.UI.SuggestedTags = Default().UI.SuggestedTags
		}
	} else {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
		if !md.IsDefined("ui", "suggested_tags") {
			cfg.UI.SuggestedTags = Default().UI.SuggestedTags
		}
	}

	return cfg, cfg.finish()
}

// finish applies env overrides, defaults and validation.
func (c *Config) finish() error {
	c.ApplyEnvOverrides()
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder
	sb.WriteString("# marknote configuration file\n")
	sb.WriteString("# Generated by marknote - edit with care\n\n")

	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !slices.Contains(Backends, c.Storage.Backend) {
		errs = append(errs, ValidationError{
			Field:   "storage.backend",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(Backends, ", "), c.Storage.Backend),
		})
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		errs = append(errs, ValidationError{Field: "storage.path", Message: "cannot be empty"})
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		errs = append(errs, ValidationError{Field: "storage.key", Message: "cannot be empty"})
	}

	if !slices.Contains(Themes, c.UI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(Themes, ", "), c.UI.Theme),
		})
	}
	if c.UI.WordWrap < 0 || c.UI.WordWrap > 500 {
		errs = append(errs, ValidationError{
			Field:   "ui.word_wrap",
			Message: fmt.Sprintf("must be between 0 and 500, got %d", c.UI.WordWrap),
		})
	}
	for i, tag := range c.UI.SuggestedTags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("ui.suggested_tags[%d]", i),
				Message: "cannot be blank",
			})
		}
	}

	if !slices.Contains(LogLevels, c.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(LogLevels, ", "), c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaults.Storage.Path
		if c.Storage.Backend == "sqlite" {
			c.Storage.Path = "~/.marknote/notes.db"
		}
	}
	if c.Storage.Key == "" {
		c.Storage.Key = defaults.Storage.Key
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - MARKNOTE_BACKEND: overrides storage.backend
//   - MARKNOTE_STORE: overrides storage.path
//   - MARKNOTE_WATCH: "1"/"true" enables storage.watch
//   - MARKNOTE_THEME: overrides ui.theme
//   - MARKNOTE_LOG_LEVEL: overrides log.level
//   - MARKNOTE_LOG_FILE: overrides log.path
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MARKNOTE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("MARKNOTE_STORE"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("MARKNOTE_WATCH"); v != "" {
		c.Storage.Watch = parseBool(v)
	}
	if v := os.Getenv("MARKNOTE_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("MARKNOTE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("MARKNOTE_LOG_FILE"); v != "" {
		c.Log.Path = v
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "1" || s == "true" || s == "yes"
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
// String values are converted to the field's type; lists are comma
// separated.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			field.SetBool(parseBool(strVal))
			return nil
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				items := []string{}
				for _, s := range strings.Split(strVal, ",") {
					if s = strings.TrimSpace(s); s != "" {
						items = append(items, s)
					}
				}
				field.Set(reflect.ValueOf(items))
				return nil
			}
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"storage.backend",
		"storage.path",
		"storage.key",
		"storage.watch",
		"ui.theme",
		"ui.word_wrap",
		"ui.allow_tag_creation",
		"ui.suggested_tags",
		"log.level",
		"log.path",
	}
}

// String returns the configuration as indented JSON.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
