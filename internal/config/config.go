// Package config loads arrfill's output settings from layered JSONC files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Colour modes for the error prefix.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".arrfill.json"

// Error variables for config loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrSeparatorEmpty     = errors.New("separator cannot be empty")
	ErrInvalidColor       = errors.New("color must be one of auto, always, never")
)

// Config holds all configuration options.
type Config struct {
	// Separator is written between printed elements.
	Separator string `json:"separator"`

	// TrailingSeparator also writes Separator after the last element.
	TrailingSeparator bool `json:"trailing_separator"`

	// Color controls the error prefix colour: auto, always or never.
	Color string `json:"color"`

	// EffectiveCwd is the absolute working directory (from -C flag or os.Getwd)
	EffectiveCwd string `json:"-"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project or explicit config if loaded, empty otherwise
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Separator: " ",
		Color:     ColorAuto,
	}
}

// Overrides holds values given on the command line. Nil fields are unset.
type Overrides struct {
	Separator         *string
	TrailingSeparator *bool
	Color             *string
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDir    string            // directory searched for FileName; must be set
	ConfigPath string            // -c/--config flag value
	Overrides  Overrides         // flag overrides
	Env        map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config ($XDG_CONFIG_HOME/arrfill/config.json or ~/.config/arrfill/config.json)
// 3. Project config file (.arrfill.json in WorkDir, if exists)
// 4. Explicit config file via ConfigPath (replaces 3, must exist)
// 5. CLI overrides.
func Load(input LoadInput) (Config, error) {
	cfg := Default()

	globalPath := globalConfigPath(input.Env)
	if globalPath != "" {
		globalCfg, loaded, err := loadFile(globalPath, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg = merge(cfg, globalCfg)
			cfg.Sources.Global = globalPath
		}
	}

	projectPath, mustExist := projectConfigPath(input.WorkDir, input.ConfigPath)
	if mustExist {
		_, statErr := os.Stat(projectPath)
		if statErr != nil {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, input.ConfigPath)
		}
	}

	projectCfg, loaded, err := loadFile(projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg = merge(cfg, projectCfg)
		cfg.Sources.Project = projectPath
	}

	cfg = applyOverrides(cfg, input.Overrides)

	validateErr := validate(cfg)
	if validateErr != nil {
		return Config{}, validateErr
	}

	cfg.EffectiveCwd = input.WorkDir

	return cfg, nil
}

// globalConfigPath returns the path to the global config file.
// Returns empty string if neither XDG_CONFIG_HOME nor HOME is set.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "arrfill", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "arrfill", "config.json")
	}

	return ""
}

func projectConfigPath(workDir, configPath string) (string, bool) {
	if configPath == "" {
		return filepath.Join(workDir, FileName), false
	}

	if filepath.IsAbs(configPath) {
		return configPath, true
	}

	return filepath.Join(workDir, configPath), true
}

// fileConfig mirrors Config with pointer fields so an explicit value can be
// told apart from an absent one.
type fileConfig struct {
	Separator         *string `json:"separator"`
	TrailingSeparator *bool   `json:"trailing_separator"`
	Color             *string `json:"color"`
}

// loadFile loads a config file. If mustExist is false, a missing file is not
// an error and reports loaded=false.
func loadFile(path string, mustExist bool) (fileConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return fileConfig{}, false, nil
		}

		return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, parseErr := parse(data)
	if parseErr != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	if cfg.Separator != nil && *cfg.Separator == "" {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrSeparatorEmpty)
	}

	return cfg, true, nil
}

func parse(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

func merge(base Config, overlay fileConfig) Config {
	if overlay.Separator != nil {
		base.Separator = *overlay.Separator
	}

	if overlay.TrailingSeparator != nil {
		base.TrailingSeparator = *overlay.TrailingSeparator
	}

	if overlay.Color != nil {
		base.Color = *overlay.Color
	}

	return base
}

func applyOverrides(cfg Config, overrides Overrides) Config {
	if overrides.Separator != nil {
		cfg.Separator = *overrides.Separator
	}

	if overrides.TrailingSeparator != nil {
		cfg.TrailingSeparator = *overrides.TrailingSeparator
	}

	if overrides.Color != nil {
		cfg.Color = *overrides.Color
	}

	return cfg
}

func validate(cfg Config) error {
	if cfg.Separator == "" {
		return ErrSeparatorEmpty
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidColor, cfg.Color)
	}

	return nil
}

// Format returns the configuration as indented JSON.
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	return string(data), nil
}
