// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform data location.
const AppName = "PasswordVault"

// AppDataPath returns the per-user application data directory:
//   - Windows: %APPDATA%\PasswordVault
//   - macOS:   $HOME/Library/Application Support/PasswordVault
//   - others:  $HOME/.config/PasswordVault
func AppDataPath() string {
	return appDataPath(runtime.GOOS, os.Getenv)
}

// DefaultVaultDir returns the default root directory of the vault tree.
func DefaultVaultDir() string {
	return filepath.Join(AppDataPath(), "vault")
}

func appDataPath(goos string, getenv func(string) string) string {
	switch goos {
	case "windows":
		return filepath.Join(getenv("APPDATA"), AppName)
	case "darwin":
		return filepath.Join(getenv("HOME"), "Library", "Application Support", AppName)
	default:
		return filepath.Join(getenv("HOME"), ".config", AppName)
	}
}
