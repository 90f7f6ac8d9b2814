// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"strconv"
)

// A Section is an ordered list of lines that appear under a section header.
// Key/value properties can be looked up by key and every line can be
// addressed by its position. The zero value is not usable; sections are
// obtained from a Document.
type Section struct {
	name    string
	entries []entry

	// keys maps property keys to positions in entries. Other lines are
	// indexed in lines under a synthetic key, so the two never collide.
	keys  map[string]int
	lines map[string]int
	seq   int
}

type entry struct {
	id   string
	prop Property
}

func newSection(name string) *Section {
	return &Section{
		name:  name,
		keys:  make(map[string]int),
		lines: make(map[string]int),
	}
}

// Name returns the section's name. The preamble's name is the empty string.
func (s *Section) Name() string {
	return s.name
}

// Len returns the number of lines in the section, including comments, empty
// lines and invalid lines.
func (s *Section) Len() int {
	return len(s.entries)
}

// At returns the i'th line in the section. At panics if i is out of range.
func (s *Section) At(i int) Property {
	return s.entries[i].prop
}

// Get returns the property with the given key.
func (s *Section) Get(key string) (_ Property, ok bool) {
	i, ok := s.keys[key]
	if !ok {
		return Property{}, false
	}
	return s.entries[i].prop, true
}

// Contains reports whether the section has a property with the given key.
func (s *Section) Contains(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Properties returns a copy of the section's lines in order.
func (s *Section) Properties() []Property {
	props := make([]Property, 0, len(s.entries))
	for _, e := range s.entries {
		props = append(props, e.prop)
	}
	return props
}

// Keys returns the keys of the key/value properties in order.
func (s *Section) Keys() []string {
	keys := make([]string, 0, len(s.keys))
	for _, e := range s.entries {
		if e.prop.Kind == KindProperty {
			keys = append(keys, e.prop.Key)
		}
	}
	return keys
}

// Add appends p to the end of the section, stamping it with the section's
// name. Lines that are not key/value properties have their key cleared.
//
// Add returns an error wrapping ErrMissingKey if p is a key/value property
// without a key, ErrDuplicateKey if the key is already present, or
// ErrPreambleProperty if s is the preamble.
func (s *Section) Add(p Property) error {
	return s.add(p, 0)
}

// AddProperty appends a key/value property to the end of the section.
// It fails under the same conditions as Add.
func (s *Section) AddProperty(key, value string) error {
	return s.add(Property{Key: key, Kind: KindProperty, Value: value}, 0)
}

// AddLine appends a line that is not a key/value property, like a comment.
// Passing KindProperty returns an error wrapping ErrMissingKey.
func (s *Section) AddLine(kind Kind, value string) error {
	if kind == KindProperty {
		return fmt.Errorf("section %q: add line: %w", s.name, ErrMissingKey)
	}
	return s.add(Property{Kind: kind, Value: value}, 0)
}

// add appends p. line is the 1-based source line p was parsed from, or zero
// if p did not come from a file.
func (s *Section) add(p Property, line int) error {
	if p.Kind != KindProperty {
		s.addLine(p, line)
		return nil
	}
	p.Section = s.name
	if p.Key == "" {
		return fmt.Errorf("section %q: %w", s.name, ErrMissingKey)
	}
	if s.name == "" {
		return fmt.Errorf("key %q: %w", p.Key, ErrPreambleProperty)
	}
	if _, dup := s.keys[p.Key]; dup {
		return fmt.Errorf("section %q: key %q: %w", s.name, p.Key, ErrDuplicateKey)
	}
	s.keys[p.Key] = len(s.entries)
	s.entries = append(s.entries, entry{id: p.Key, prop: p})
	return nil
}

// addLine appends a line that is not a key/value property under a synthetic
// key. It cannot fail.
func (s *Section) addLine(p Property, line int) {
	p.Section = s.name
	p.Key = ""
	id := s.lineKey(p.Kind, line)
	s.lines[id] = len(s.entries)
	s.entries = append(s.entries, entry{id: id, prop: p})
}

// lineKey returns an unused synthetic key for a line that has no key of its
// own. Parsed lines are named after their kind and line number ("Comment12").
// Everything else draws from a per-section counter ("Comment+3"), which cannot
// produce a name of the first form.
func (s *Section) lineKey(kind Kind, line int) string {
	if line > 0 {
		id := kind.String() + strconv.Itoa(line)
		if _, used := s.lines[id]; !used {
			return id
		}
	}
	s.seq++
	return kind.String() + "+" + strconv.Itoa(s.seq)
}

// Set sets the value of the property with the given key, keeping its
// position. If there is no such property, Set appends one and fails under the
// same conditions as Add.
func (s *Section) Set(key, value string) error {
	if i, ok := s.keys[key]; ok {
		s.entries[i].prop.Value = value
		return nil
	}
	return s.AddProperty(key, value)
}

// Remove removes the property with the given key, reporting whether it
// was present.
func (s *Section) Remove(key string) bool {
	i, ok := s.keys[key]
	if !ok {
		return false
	}
	s.RemoveAt(i)
	return true
}

// RemoveAt removes the i'th line of the section. RemoveAt panics if i is out
// of range.
func (s *Section) RemoveAt(i int) {
	delete(s.index(i), s.entries[i].id)
	copy(s.entries[i:], s.entries[i+1:])
	// Zero out truncated element for garbage collection.
	s.entries[len(s.entries)-1] = entry{}
	s.entries = s.entries[:len(s.entries)-1]
	for j := i; j < len(s.entries); j++ {
		s.index(j)[s.entries[j].id] = j
	}
}

// index returns the map that holds the position of the i'th entry.
func (s *Section) index(i int) map[string]int {
	if s.entries[i].prop.Kind == KindProperty {
		return s.keys
	}
	return s.lines
}

// last returns the final line of the section.
func (s *Section) last() (_ Property, ok bool) {
	if len(s.entries) == 0 {
		return Property{}, false
	}
	return s.entries[len(s.entries)-1].prop, true
}

