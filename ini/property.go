// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "strconv"

// Kind identifies the role a line plays in an INI file.
type Kind int

// Line kinds.
const (
	// KindProperty is a key/value line.
	KindProperty Kind = iota
	// KindComment is a line starting with ';' or '#'.
	KindComment
	// KindEmptyLine is a line with nothing but whitespace.
	KindEmptyLine
	// KindInvalid is any line that could not be recognized.
	// It is kept verbatim.
	KindInvalid
)

// String returns the name of the kind, like "Comment".
func (k Kind) String() string {
	switch k {
	case KindProperty:
		return "Property"
	case KindComment:
		return "Comment"
	case KindEmptyLine:
		return "EmptyLine"
	case KindInvalid:
		return "Invalid"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// A Property is the content of a single line in a section. Only lines of
// KindProperty have a key. For every other kind, Value holds the full
// trimmed line.
//
// Section is the name of the section the line was added to. It is copied on
// insertion and never updated afterwards.
type Property struct {
	Key     string
	Kind    Kind
	Value   string
	Section string
}

// IsKeyed reports whether p is a key/value line.
func (p Property) IsKeyed() bool {
	return p.Kind == KindProperty
}
