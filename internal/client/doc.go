// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line driver of the vault.
//
// It parses commands with cobra, loads the configuration, wires the service
// layer and renders collections and vaults with lipgloss. Domain errors are
// printed through app.MessageFor so no command crashes on them.
package client
