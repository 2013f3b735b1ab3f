// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PAGE_LIMIT": "50",

		"ADAPTER_ADDRESS":         "http://projects.local:4000",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_TOKEN":           "secret-token",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILE_
		"STORAGE_BACKEND":   "file",
		"STORAGE_DB_DSN":    "/tmp/cache.db",
		"STORAGE_FILE_PATH": "/tmp/cache.json",

		"WORKERS_REFRESH_INTERVAL": "5m",

		"LOGGING_FILE":  "/var/log/pilot.log",
		"LOGGING_LEVEL": "info",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &ClientConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, 50, cfg.App.PageLimit)

	assert.Equal(t, "http://projects.local:4000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "secret-token", cfg.Adapter.Token)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/cache.json", cfg.Storage.File.Path)

	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)

	assert.Equal(t, "/var/log/pilot.log", cfg.Logging.File)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &ClientConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "not-a-duration"})

	err := parseEnv(&ClientConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_PAGE_LIMIT": "twenty"})

	err := parseEnv(&ClientConfig{})
	require.Error(t, err)
}

// setEnvVars sets every variable for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
