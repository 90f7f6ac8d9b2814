// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "errors"

// Errors returned by document operations. They are usually wrapped with the
// section and key involved, so test for them with errors.Is.
var (
	// ErrDuplicateKey is returned when a section already has a property with
	// the same key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrMissingKey is returned when a key/value property is added without
	// a key.
	ErrMissingKey = errors.New("property has no key")

	// ErrPreambleProperty is returned when a key/value property is added to
	// the preamble. Lines before the first section header are never parsed
	// as properties, so such a property could not be read back.
	ErrPreambleProperty = errors.New("properties not allowed before first section")
)
