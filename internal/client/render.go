// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/MKhiriev/go-password-vault/models"
)

const (
	maskedValue = "••••••••"
	noValue     = "—"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	collectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	vaultStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	labelStyle      = lipgloss.NewStyle().Faint(true).Width(12)
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderTree draws the subtree of id, collections before vaults.
func renderTree(t *models.VaultTree, id models.CollectionID) string {
	return collectionNode(t, id).String()
}

func collectionNode(t *models.VaultTree, id models.CollectionID) *tree.Tree {
	c, _ := t.Collection(id)

	node := tree.Root(collectionStyle.Render(c.Name + "/")).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(helpStyle)

	for _, child := range c.Children {
		node.Child(collectionNode(t, child))
	}
	for _, vid := range c.Vaults {
		v, _ := t.Vault(vid)
		node.Child(vaultStyle.Render(v.Name))
	}
	return node
}

// renderContent draws the detail view of a decrypted vault. The password is
// masked unless showPassword is set; code may be nil.
func renderContent(path string, c models.VaultContent, showPassword bool, code *models.OneTimeCode) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(path))
	b.WriteString("\n\n")

	password := valueOr(c.Password)
	if !showPassword && c.Password != nil && *c.Password != "" {
		password = maskedValue
	}

	totpValue := noValue
	if code != nil {
		totpValue = fmt.Sprintf("%s (%ds left)", code.Code, code.Remaining)
	}

	writeField(&b, "Login", valueOr(c.Login))
	writeField(&b, "Password", password)
	writeField(&b, "TOTP", totpValue)

	if len(c.ExtraData) > 0 {
		b.WriteString("\n")
		keys := make([]string, 0, len(c.ExtraData))
		for k := range c.ExtraData {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			writeField(&b, k, c.ExtraData[k])
		}
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func valueOr(s *string) string {
	if s == nil || *s == "" {
		return noValue
	}
	return *s
}
