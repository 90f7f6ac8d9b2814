// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

// A Document is an ordered collection of sections bound to a file path.
// The zero value is an empty document that is not bound to any file.
//
// A Document always has a preamble section, named by the empty string, that
// holds the lines found before the first section header. The preamble is
// always first and is never removed.
//
// Documents are not safe for concurrent mutation. Callers that share a
// Document across goroutines must serialize access themselves.
type Document struct {
	// DefaultIfEmpty makes the getters return the default value for
	// properties that are present but have an empty value.
	DefaultIfEmpty bool

	path     string
	sections []*Section
	index    map[string]int
}

// New returns an empty document bound to the given file path. New does not
// read the file: call Load to do so.
func New(path string) *Document {
	d := &Document{path: path}
	d.reset()
	return d
}

// Path returns the path of the file the document was created for.
func (d *Document) Path() string {
	return d.path
}

func (d *Document) reset() {
	d.sections = []*Section{newSection("")}
	d.index = map[string]int{"": 0}
}

func (d *Document) init() {
	if d.index == nil {
		d.reset()
	}
}

// replace swaps in the sections of another document.
func (d *Document) replace(other *Document) {
	other.init()
	d.sections = other.sections
	d.index = other.index
}

// Preamble returns the section holding the lines before the first
// section header.
func (d *Document) Preamble() *Section {
	d.init()
	return d.sections[0]
}

// CountSections returns the number of sections, including the preamble.
func (d *Document) CountSections() int {
	d.init()
	return len(d.sections)
}

// CountProperties returns the number of lines across all sections, including
// comments, empty lines and invalid lines.
func (d *Document) CountProperties() int {
	n := 0
	for _, s := range d.sections {
		n += s.Len()
	}
	return n
}

// SectionNames returns the section names in order. The first name is always
// the preamble's empty name.
func (d *Document) SectionNames() []string {
	if d == nil {
		return nil
	}
	d.init()
	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, s.name)
	}
	return names
}

// Sections returns the sections in order. The returned slice is a copy, but
// the sections are shared with the document.
func (d *Document) Sections() []*Section {
	d.init()
	return append([]*Section(nil), d.sections...)
}

// Section returns the section with the given name. It never creates
// a section.
func (d *Document) Section(name string) (_ *Section, ok bool) {
	if d == nil {
		return nil, false
	}
	d.init()
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.sections[i], true
}

// GetSection returns the section with the given name, appending an empty
// section to the document if there is none.
func (d *Document) GetSection(name string) *Section {
	if s, ok := d.Section(name); ok {
		return s
	}
	return d.appendSection(name)
}

func (d *Document) appendSection(name string) *Section {
	s := newSection(name)
	d.index[name] = len(d.sections)
	d.sections = append(d.sections, s)
	return s
}

// Contains reports whether the document has a section with the given name.
func (d *Document) Contains(section string) bool {
	_, ok := d.Section(section)
	return ok
}

// ContainsKey reports whether the document has a property with the given key
// in the given section.
func (d *Document) ContainsKey(section, key string) bool {
	s, ok := d.Section(section)
	return ok && s.Contains(key)
}

// Get returns the property with the given key in the given section.
func (d *Document) Get(section, key string) (_ Property, ok bool) {
	s, ok := d.Section(section)
	if !ok {
		return Property{}, false
	}
	return s.Get(key)
}

// Put sets the property with the given key in the given section to value.
// An existing property keeps its position. Otherwise the property is appended
// to the section, creating the section at the end of the document if needed.
//
// When Put creates a section and the current last section ends with a
// non-empty line, an empty line is appended to that section first so the new
// section header stands apart.
//
// Put returns an error wrapping ErrMissingKey if key is empty or
// ErrPreambleProperty if section is the empty string.
func (d *Document) Put(section, key, value string) error {
	if key == "" {
		return ErrMissingKey
	}
	if section == "" {
		return ErrPreambleProperty
	}
	s, ok := d.Section(section)
	if !ok {
		last := d.sections[len(d.sections)-1]
		if p, ok := last.last(); ok && p.Value != "" {
			last.addLine(Property{Kind: KindEmptyLine}, 0)
		}
		s = d.appendSection(section)
	}
	return s.Set(key, value)
}

// Delete removes the property with the given key from the given section.
// If the property was the only line in the section, the section is removed
// instead. The preamble is never removed.
func (d *Document) Delete(section, key string) {
	s, ok := d.Section(section)
	if !ok || !s.Contains(key) {
		return
	}
	if s.Len() == 1 && section != "" {
		d.DeleteSection(section)
		return
	}
	s.Remove(key)
}

// DeleteSection removes the section with the given name along with all of its
// lines. Deleting the preamble clears it but keeps it in place.
func (d *Document) DeleteSection(name string) {
	i, ok := d.index[name]
	if !ok {
		return
	}
	if name == "" {
		d.sections[0] = newSection("")
		return
	}
	delete(d.index, name)
	copy(d.sections[i:], d.sections[i+1:])
	// Zero out truncated element for garbage collection.
	d.sections[len(d.sections)-1] = nil
	d.sections = d.sections[:len(d.sections)-1]
	for j := i; j < len(d.sections); j++ {
		d.index[d.sections[j].name] = j
	}
}
