// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads vitals settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDarkMode  = "VITALS_DARK_MODE"
	EnvLogLevel  = "VITALS_LOG_LEVEL"
	EnvLogJSON   = "VITALS_LOG_JSON"
	EnvExportDir = "VITALS_EXPORT_DIR"
	EnvBPM       = "VITALS_BPM"
)

// Config holds the application settings.
type Config struct {
	DarkMode  bool
	LogLevel  string
	LogJSON   bool
	ExportDir string
	// BPM overrides the heart rate used to pace animations.
	// Zero uses the dataset's current reading.
	BPM float64
}

// Default returns the default settings.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load returns the settings from the environment after loading any of
// the given env files that exist. Variables already set in the
// environment take precedence over file values.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv returns the settings found using lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var err error
	if v, ok := lookup(EnvDarkMode); ok {
		c.DarkMode, err = strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvDarkMode, err)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogJSON); ok {
		c.LogJSON, err = strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLogJSON, err)
		}
	}
	if v, ok := lookup(EnvExportDir); ok {
		c.ExportDir = v
	}
	if v, ok := lookup(EnvBPM); ok {
		c.BPM, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvBPM, err)
		}
		if c.BPM < 0 {
			return Config{}, fmt.Errorf("invalid %s: negative rate %v", EnvBPM, c.BPM)
		}
	}
	return c, nil
}
