// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppDataPath_PerPlatform(t *testing.T) {
	env := map[string]string{
		"APPDATA": filepath.Join("C:", "Users", "u", "AppData", "Roaming"),
		"HOME":    filepath.Join("/", "home", "u"),
	}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		goos string
		want string
	}{
		{goos: "windows", want: filepath.Join(env["APPDATA"], AppName)},
		{goos: "darwin", want: filepath.Join(env["HOME"], "Library", "Application Support", AppName)},
		{goos: "linux", want: filepath.Join(env["HOME"], ".config", AppName)},
		{goos: "freebsd", want: filepath.Join(env["HOME"], ".config", AppName)},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, appDataPath(tt.goos, getenv))
		})
	}
}

func TestDefaultVaultDir_UnderAppData(t *testing.T) {
	assert.Equal(t, filepath.Join(AppDataPath(), "vault"), DefaultVaultDir())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	a := g.Generate()
	b := g.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
