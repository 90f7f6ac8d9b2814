// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"fmt"
)

// DocumentSet is a list of documents to obtain configuration from in
// descending order of precedence. Nil elements are treated as empty documents.
type DocumentSet []*Document

// LoadFiles loads the files at the given paths and returns a DocumentSet.
// If the returned error is nil, the returned set's length will be the same as
// the number of arguments. LoadFiles stops on the first error. Missing files
// produce empty documents bound to their path, so a later Save creates them.
func LoadFiles(ctx context.Context, paths ...string) (DocumentSet, error) {
	dset := make(DocumentSet, 0, len(paths))
	for _, p := range paths {
		d := New(p)
		if err := d.Load(ctx); err != nil {
			return dset, fmt.Errorf("load ini files: %w", err)
		}
		dset = append(dset, d)
	}
	return dset, nil
}

// Get returns the property from the first document that has the given key
// in the given section.
func (dset DocumentSet) Get(section, key string) (_ Property, ok bool) {
	for _, d := range dset {
		if p, ok := d.Get(section, key); ok {
			return p, true
		}
	}
	return Property{}, false
}

// GetString returns the value from the first document that has the given key
// in the given section, or defaultValue if none do. Each document's
// DefaultIfEmpty setting decides whether its empty values count.
func (dset DocumentSet) GetString(section, key, defaultValue string) string {
	for _, d := range dset {
		if v, ok := d.Lookup(section, key); ok {
			return v
		}
	}
	return defaultValue
}

// Contains reports whether any document has a section with the given name.
func (dset DocumentSet) Contains(section string) bool {
	for _, d := range dset {
		if d.Contains(section) {
			return true
		}
	}
	return false
}

// SectionNames returns the names of the sections in all documents, in the
// order they are first seen walking from the highest precedence document.
// The preamble's empty name is included once.
func (dset DocumentSet) SectionNames() []string {
	names := []string{""}
	seen := map[string]struct{}{"": {}}
	for _, d := range dset {
		for _, name := range d.SectionNames() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// Put sets the property on the first document and deletes the property in
// all subsequent documents. Put panics if len(dset) == 0. If dset[0] == nil,
// Put allocates a new, unbound Document.
func (dset DocumentSet) Put(section, key, value string) error {
	if dset[0] == nil {
		dset[0] = new(Document)
	}
	if err := dset[0].Put(section, key, value); err != nil {
		return err
	}
	dset[1:].Delete(section, key)
	return nil
}

// Delete deletes the property with the given key in the given section from
// every document. Nil elements of the set are ignored.
func (dset DocumentSet) Delete(section, key string) {
	for _, d := range dset {
		if d != nil {
			d.Delete(section, key)
		}
	}
}

// Save saves every document in the set to its file, stopping at the
// first error. Nil elements of the set are ignored.
func (dset DocumentSet) Save(ctx context.Context) error {
	for _, d := range dset {
		if d == nil {
			continue
		}
		if err := d.Save(ctx); err != nil {
			return err
		}
	}
	return nil
}
