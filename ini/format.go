// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"io"
)

// MarshalText serializes the document in INI format. Every line ends with
// a newline. Comment lines that do not start with ';' or '#' are written with
// a "; " prefix; the document itself is not modified.
func (d *Document) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	var buf []byte
	for _, s := range d.sections {
		if s.name != "" {
			buf = append(buf, '[')
			buf = append(buf, s.name...)
			buf = append(buf, "]\n"...)
		}
		for _, e := range s.entries {
			buf = appendLine(buf, e.prop)
		}
	}
	return buf, nil
}

func appendLine(dst []byte, p Property) []byte {
	switch p.Kind {
	case KindProperty:
		dst = append(dst, p.Key...)
		dst = append(dst, '=')
	case KindComment:
		if !isComment(p.Value) {
			dst = append(dst, "; "...)
		}
	}
	dst = append(dst, p.Value...)
	return append(dst, '\n')
}

func isComment(v string) bool {
	return len(v) > 0 && (v[0] == ';' || v[0] == '#')
}

// WriteTo writes the document to w in INI format.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	text, err := d.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(text)
	return int64(n), err
}

// UnmarshalText parses INI data, replacing all sections in d. The document's
// path and options are unchanged. If the data cannot be parsed, d is
// left untouched.
func (d *Document) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	d.replace(parsed)
	return nil
}
