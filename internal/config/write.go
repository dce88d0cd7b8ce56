package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// ErrConfigFileExists is returned by Write when the target exists and
// overwriting was not requested.
var ErrConfigFileExists = errors.New("config file already exists")

const fileTemplate = `{
	// Written between printed elements.
	"separator": %s,
	// Also write the separator after the last element.
	"trailing_separator": %t,
	// Error prefix colour: auto, always or never.
	"color": %s,
}
`

// Render returns cfg as a commented JSONC document that Load accepts.
func Render(cfg Config) ([]byte, error) {
	separator, err := json.Marshal(cfg.Separator)
	if err != nil {
		return nil, fmt.Errorf("marshal separator: %w", err)
	}

	color, err := json.Marshal(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("marshal color: %w", err)
	}

	raw := fmt.Sprintf(fileTemplate, separator, cfg.TrailingSeparator, color)

	value, err := hujson.Parse([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}

	value.Format()

	return value.Pack(), nil
}

// Write renders cfg to path, replacing the file atomically. An existing file
// is only replaced when overwrite is set.
func Write(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		_, statErr := os.Stat(path)
		if statErr == nil {
			return fmt.Errorf("%w: %s", ErrConfigFileExists, path)
		}
	}

	validateErr := validate(cfg)
	if validateErr != nil {
		return validateErr
	}

	data, err := Render(cfg)
	if err != nil {
		return err
	}

	writeErr := atomic.WriteFile(path, bytes.NewReader(data))
	if writeErr != nil {
		return fmt.Errorf("write config %s: %w", path, writeErr)
	}

	return nil
}
