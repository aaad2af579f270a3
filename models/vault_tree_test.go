// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVaultTree_HasOnlyRoot(t *testing.T) {
	tree := NewVaultTree()

	root := tree.Root()
	assert.Equal(t, RootID, root.ID)
	assert.Equal(t, RootCollectionName, root.Name)
	assert.True(t, root.IsRoot())
	assert.Empty(t, tree.PathOf(RootID))

	c, v := tree.Len()
	assert.Equal(t, 1, c)
	assert.Equal(t, 0, v)
}

func TestVaultTree_PathOf(t *testing.T) {
	tree := NewVaultTree()
	a, ok := tree.AddCollection(RootID, "A")
	require.True(t, ok)
	b, ok := tree.AddCollection(a, "B")
	require.True(t, ok)
	x, ok := tree.AddVault(b, "x")
	require.True(t, ok)

	assert.Equal(t, []string{"A"}, tree.PathOf(a))
	assert.Equal(t, []string{"A", "B"}, tree.PathOf(b))
	assert.Equal(t, []string{"A", "B", "x"}, tree.VaultPathOf(x))

	parent, ok := tree.Collection(b)
	require.True(t, ok)
	assert.Equal(t, a, parent.Parent)
	assert.Equal(t, []VaultID{x}, parent.Vaults)
}

func TestVaultTree_AddToMissingParent(t *testing.T) {
	tree := NewVaultTree()

	_, ok := tree.AddCollection(CollectionID(42), "orphan")
	assert.False(t, ok)

	_, ok = tree.AddVault(CollectionID(-5), "orphan")
	assert.False(t, ok)
}

func TestVaultTree_FindAndEnsure(t *testing.T) {
	tree := NewVaultTree()

	work := tree.EnsureCollectionPath("Work", "Mail")
	again := tree.EnsureCollectionPath("Work", "Mail")
	assert.Equal(t, work, again, "ensure must not duplicate existing nodes")

	found, ok := tree.FindCollection("Work", "Mail")
	require.True(t, ok)
	assert.Equal(t, work, found)

	_, ok = tree.FindCollection("Work", "Missing")
	assert.False(t, ok)

	root, ok := tree.FindCollection()
	require.True(t, ok)
	assert.Equal(t, RootID, root)

	v, _ := tree.AddVault(work, "gmail")
	got, ok := tree.FindVault(work, "gmail")
	require.True(t, ok)
	assert.Equal(t, v, got)

	_, ok = tree.FindVault(work, "yahoo")
	assert.False(t, ok)
}

func TestVaultTree_Descendants(t *testing.T) {
	tree := NewVaultTree()
	a, _ := tree.AddCollection(RootID, "A")
	b, _ := tree.AddCollection(a, "B")
	c, _ := tree.AddCollection(RootID, "C")
	x, _ := tree.AddVault(a, "x")
	y, _ := tree.AddVault(b, "y")
	_, _ = tree.AddVault(c, "z")

	collections, vaults := tree.Descendants(a)
	assert.Equal(t, []CollectionID{b}, collections)
	assert.ElementsMatch(t, []VaultID{x, y}, vaults)

	collections, vaults = tree.Descendants(RootID)
	assert.Len(t, collections, 3)
	assert.Len(t, vaults, 3)
}

func TestVaultContent_HasTOTP(t *testing.T) {
	assert.False(t, VaultContent{}.HasTOTP())
	assert.False(t, VaultContent{TOTPSecret: StringPtr("")}.HasTOTP())
	assert.True(t, VaultContent{TOTPSecret: StringPtr("JBSWY3DPEHPK3PXP")}.HasTOTP())
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    AlgorithmType
		wantErr bool
	}{
		{in: "AES-256-GCM", want: AES256GCM},
		{in: "aes-256-gcm", want: AES256GCM},
		{in: "Blowfish-CBC", want: BlowfishCBC},
		{in: "chacha20-poly1305", want: ChaCha20Poly1305},
		{in: "TWOFISH-CTR", want: TwofishCTR},
		{in: "DES", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsKnown())
		})
	}

	assert.False(t, AlgorithmType("ROT13").IsKnown())
}

func TestVaultTree_RemoveLastCollection(t *testing.T) {
	tree := NewVaultTree()
	work, _ := tree.AddCollection(RootID, "Work")
	mail, _ := tree.AddCollection(work, "Mail")

	assert.False(t, tree.RemoveLastCollection(work), "not the last one")
	assert.False(t, tree.RemoveLastCollection(RootID))

	require.True(t, tree.RemoveLastCollection(mail))
	_, ok := tree.Child(work, "Mail")
	assert.False(t, ok)
	c, _ := tree.Len()
	assert.Equal(t, 2, c)

	tree.AddVault(work, "email")
	assert.False(t, tree.RemoveLastCollection(work), "holds a vault")

	again, ok := tree.AddCollection(work, "Mail")
	require.True(t, ok)
	assert.Equal(t, mail, again)
}

func TestVaultTree_RemoveLastVault(t *testing.T) {
	tree := NewVaultTree()
	work, _ := tree.AddCollection(RootID, "Work")
	first, _ := tree.AddVault(work, "email")
	second, _ := tree.AddVault(work, "bank")

	assert.False(t, tree.RemoveLastVault(first))
	assert.False(t, tree.RemoveLastVault(VaultID(9)))

	require.True(t, tree.RemoveLastVault(second))
	_, ok := tree.FindVault(work, "bank")
	assert.False(t, ok)
	_, ok = tree.FindVault(work, "email")
	assert.True(t, ok)

	_, v := tree.Len()
	assert.Equal(t, 1, v)
	parent, _ := tree.Collection(work)
	assert.Equal(t, []VaultID{first}, parent.Vaults)
}
