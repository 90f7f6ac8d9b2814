// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"strconv"
)

// Lookup returns the value of the property with the given key in the given
// section. If d.DefaultIfEmpty is set, an empty value is reported as absent.
func (d *Document) Lookup(section, key string) (_ string, ok bool) {
	p, ok := d.Get(section, key)
	if !ok || (d.DefaultIfEmpty && p.Value == "") {
		return "", false
	}
	return p.Value, true
}

// GetString returns the value of the property with the given key in the
// given section, or defaultValue if there is no such property.
func (d *Document) GetString(section, key, defaultValue string) string {
	v, ok := d.Lookup(section, key)
	if !ok {
		return defaultValue
	}
	return v
}

// GetBool returns the boolean value of the property with the given key in the
// given section, or defaultValue if there is no such property. It accepts the
// same strings as strconv.ParseBool. A value that does not parse is an error;
// the default is only used for missing properties.
func (d *Document) GetBool(section, key string, defaultValue bool) (bool, error) {
	v, ok := d.Lookup(section, key)
	if !ok {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("get [%s] %s: %w", section, key, err)
	}
	return b, nil
}

// GetInt returns the decimal integer value of the property with the given key
// in the given section, or defaultValue if there is no such property. A value
// that does not parse is an error.
func (d *Document) GetInt(section, key string, defaultValue int) (int, error) {
	v, ok := d.Lookup(section, key)
	if !ok {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("get [%s] %s: %w", section, key, err)
	}
	return i, nil
}

// GetInt64 is like GetInt but for 64-bit values.
func (d *Document) GetInt64(section, key string, defaultValue int64) (int64, error) {
	v, ok := d.Lookup(section, key)
	if !ok {
		return defaultValue, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("get [%s] %s: %w", section, key, err)
	}
	return i, nil
}
