// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianLint/services/lint/naming"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "always", cfg.Rule.Properties)
	assert.Equal(t, "all", cfg.Rule.PropertiesStyle)
	assert.False(t, cfg.Rule.IgnoreDestructuring)
	assert.Equal(t, 10*1024*1024, cfg.Engine.MaxFileSizeBytes)
	assert.Equal(t, 4, cfg.Engine.WorkerCount)
	assert.Contains(t, cfg.Engine.Extensions, ".js")
	assert.Equal(t, "127.0.0.1:8910", cfg.Server.Address())
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	cfg, err := Load([]byte("rule:\n  ignore_destructuring: true\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Rule.IgnoreDestructuring)
	assert.Equal(t, "always", cfg.Rule.Properties)
	assert.Equal(t, 4, cfg.Engine.WorkerCount)
	assert.Equal(t, 8910, cfg.Server.Port)
}

func TestLoadUnknownPropertiesModeDegradesToAlways(t *testing.T) {
	cfg, err := Load([]byte("rule:\n  properties: sometimes\n"))
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Rule.Properties)
}

func TestLoadRejectsUnknownRuleKey(t *testing.T) {
	_, err := Load([]byte("rule:\n  ignore_destructing: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule section")
}

func TestLoadRejectsInvalidStyle(t *testing.T) {
	_, err := Load([]byte("rule:\n  properties_style: shouty\n"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidServer(t *testing.T) {
	_, err := Load([]byte("server:\n  host: 0.0.0.0\n  port: -1\n"))
	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("rule: [unclosed"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lint.yaml")
	data := "rule:\n  properties: never\n  properties_style: lower\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Rule.Properties)
	assert.Equal(t, "lower", cfg.Rule.PropertiesStyle)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestToOptions(t *testing.T) {
	cfg, err := Load([]byte("rule:\n  properties: never\n  ignore_destructuring: true\n"))
	require.NoError(t, err)

	opts := cfg.ToOptions()
	assert.Equal(t, naming.PropertiesNever, opts.Properties)
	assert.Equal(t, naming.PropertyStyleAll, opts.PropertiesStyle)
	assert.True(t, opts.IgnoreDestructuring)
}
