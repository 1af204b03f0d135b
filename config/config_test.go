// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	c, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	c, err = FromEnv(env(map[string]string{
		EnvDarkMode:  "true",
		EnvLogLevel:  "debug",
		EnvLogJSON:   "1",
		EnvExportDir: "/tmp/out",
		EnvBPM:       "84",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{DarkMode: true, LogLevel: "debug", LogJSON: true, ExportDir: "/tmp/out", BPM: 84}, c)
}

func TestFromEnvErrors(t *testing.T) {
	for _, bad := range []map[string]string{
		{EnvDarkMode: "perhaps"},
		{EnvLogJSON: "yes please"},
		{EnvBPM: "fast"},
		{EnvBPM: "-60"},
	} {
		_, err := FromEnv(env(bad))
		assert.Error(t, err, "%v", bad)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("VITALS_BPM=96\nVITALS_LOG_LEVEL=warn\n"), 0o600))
	t.Setenv(EnvLogLevel, "error")
	// Registered for cleanup by Setenv and then removed so the
	// file value can be loaded.
	t.Setenv(EnvBPM, "")
	os.Unsetenv(EnvBPM)

	c, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 96.0, c.BPM)
	assert.Equal(t, "error", c.LogLevel, "environment wins over file")
}
