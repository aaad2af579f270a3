// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// RootCollectionName is the fixed display name of the root collection.
// It never appears in any on-disk path.
const RootCollectionName = "RootCollection"

// CollectionID indexes a collection inside a [VaultTree].
type CollectionID int

// VaultID indexes a vault inside a [VaultTree].
type VaultID int

const (
	// RootID is the ID of the root collection of every tree.
	RootID CollectionID = 0

	// NoParent is the parent of the root collection.
	NoParent CollectionID = -1
)

// Collection is a folder-like node of the vault tree.
type Collection struct {
	ID       CollectionID
	Name     string
	Parent   CollectionID
	Children []CollectionID
	Vaults   []VaultID
}

// IsRoot reports whether the collection is the root of its tree.
func (c Collection) IsRoot() bool {
	return c.Parent == NoParent
}

// Vault is a leaf of the vault tree, backed by one encrypted file.
type Vault struct {
	ID     VaultID
	Name   string
	Parent CollectionID
}

// VaultTree is an arena holding one loaded hierarchy of collections and
// vaults. Nodes reference each other by index only: child lists own their
// entries, parent links are plain IDs used to rebuild filesystem paths.
//
// A VaultTree is a value snapshot. It is rebuilt from disk on every load and
// is not safe for concurrent mutation.
type VaultTree struct {
	collections []Collection
	vaults      []Vault
}

// NewVaultTree returns a tree that contains only the root collection.
func NewVaultTree() *VaultTree {
	return &VaultTree{
		collections: []Collection{{ID: RootID, Name: RootCollectionName, Parent: NoParent}},
	}
}

// Root returns the root collection.
func (t *VaultTree) Root() Collection {
	return t.collections[RootID]
}

// Len returns the number of collections and vaults in the tree.
func (t *VaultTree) Len() (collections, vaults int) {
	return len(t.collections), len(t.vaults)
}

// Collection returns the collection with the given ID.
func (t *VaultTree) Collection(id CollectionID) (Collection, bool) {
	if id < 0 || int(id) >= len(t.collections) {
		return Collection{}, false
	}
	return t.collections[id], true
}

// Vault returns the vault with the given ID.
func (t *VaultTree) Vault(id VaultID) (Vault, bool) {
	if id < 0 || int(id) >= len(t.vaults) {
		return Vault{}, false
	}
	return t.vaults[id], true
}

// AddCollection appends a child collection under parent and returns its ID.
// It returns false if parent does not exist.
func (t *VaultTree) AddCollection(parent CollectionID, name string) (CollectionID, bool) {
	if _, ok := t.Collection(parent); !ok {
		return 0, false
	}
	id := CollectionID(len(t.collections))
	t.collections = append(t.collections, Collection{ID: id, Name: name, Parent: parent})
	t.collections[parent].Children = append(t.collections[parent].Children, id)
	return id, true
}

// AddVault appends a vault under parent and returns its ID.
// It returns false if parent does not exist.
func (t *VaultTree) AddVault(parent CollectionID, name string) (VaultID, bool) {
	if _, ok := t.Collection(parent); !ok {
		return 0, false
	}
	id := VaultID(len(t.vaults))
	t.vaults = append(t.vaults, Vault{ID: id, Name: name, Parent: parent})
	t.collections[parent].Vaults = append(t.collections[parent].Vaults, id)
	return id, true
}

// RemoveLastCollection undoes the most recent AddCollection. It only removes
// id when it is the last collection added and still has no children or
// vaults, and reports whether it did.
func (t *VaultTree) RemoveLastCollection(id CollectionID) bool {
	c, ok := t.Collection(id)
	if !ok || c.IsRoot() || int(id) != len(t.collections)-1 || len(c.Children) > 0 || len(c.Vaults) > 0 {
		return false
	}
	parent := &t.collections[c.Parent]
	parent.Children = slices.DeleteFunc(parent.Children, func(child CollectionID) bool { return child == id })
	t.collections = t.collections[:id]
	return true
}

// RemoveLastVault undoes the most recent AddVault. It only removes id when
// it is the last vault added, and reports whether it did.
func (t *VaultTree) RemoveLastVault(id VaultID) bool {
	v, ok := t.Vault(id)
	if !ok || int(id) != len(t.vaults)-1 {
		return false
	}
	parent := &t.collections[v.Parent]
	parent.Vaults = slices.DeleteFunc(parent.Vaults, func(vault VaultID) bool { return vault == id })
	t.vaults = t.vaults[:id]
	return true
}

// PathOf returns the names of id and its ancestors, root excluded, in
// root-to-leaf order. The root collection yields an empty path.
func (t *VaultTree) PathOf(id CollectionID) []string {
	var parts []string
	for cur, ok := t.Collection(id); ok && !cur.IsRoot(); cur, ok = t.Collection(cur.Parent) {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}

// VaultPathOf returns the collection path of the vault followed by its name.
func (t *VaultTree) VaultPathOf(id VaultID) []string {
	v, ok := t.Vault(id)
	if !ok {
		return nil
	}
	return append(t.PathOf(v.Parent), v.Name)
}

// Child returns the direct child of parent named name.
func (t *VaultTree) Child(parent CollectionID, name string) (CollectionID, bool) {
	c, ok := t.Collection(parent)
	if !ok {
		return 0, false
	}
	for _, child := range c.Children {
		if t.collections[child].Name == name {
			return child, true
		}
	}
	return 0, false
}

// FindCollection walks path from the root. An empty path is the root.
func (t *VaultTree) FindCollection(path ...string) (CollectionID, bool) {
	cur := RootID
	for _, name := range path {
		next, ok := t.Child(cur, name)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// FindVault returns the vault named name directly inside collection.
func (t *VaultTree) FindVault(collection CollectionID, name string) (VaultID, bool) {
	c, ok := t.Collection(collection)
	if !ok {
		return 0, false
	}
	for _, v := range c.Vaults {
		if t.vaults[v].Name == name {
			return v, true
		}
	}
	return 0, false
}

// EnsureCollectionPath walks path from the root and adds every missing
// collection on the way. It returns the ID of the last element.
func (t *VaultTree) EnsureCollectionPath(path ...string) CollectionID {
	cur := RootID
	for _, name := range path {
		next, ok := t.Child(cur, name)
		if !ok {
			next, _ = t.AddCollection(cur, name)
		}
		cur = next
	}
	return cur
}

// Descendants returns every collection below id (id excluded) and every vault
// in id's subtree, depth first.
func (t *VaultTree) Descendants(id CollectionID) ([]CollectionID, []VaultID) {
	c, ok := t.Collection(id)
	if !ok {
		return nil, nil
	}
	collections := make([]CollectionID, 0)
	vaults := append([]VaultID(nil), c.Vaults...)
	for _, child := range c.Children {
		collections = append(collections, child)
		cc, vv := t.Descendants(child)
		collections = append(collections, cc...)
		vaults = append(vaults, vv...)
	}
	return collections, vaults
}
