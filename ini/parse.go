// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	// maxLineSize is the longest line Parse accepts.
	maxLineSize = math.MaxInt32

	byteOrderMark = "\ufeff"
)

// Parse parses an INI file into a new document that is not bound to any file.
//
// See the Syntax section in the package documentation for how each line
// is classified.
func Parse(r io.Reader) (*Document, error) {
	d := new(Document)
	d.reset()
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	curr := d.sections[0]
	lineno := 1
	for ; s.Scan(); lineno++ {
		text := s.Text()
		if lineno == 1 {
			text = strings.TrimPrefix(text, byteOrderMark)
		}
		line := strings.TrimSpace(text)
		switch {
		case line == "":
			curr.addLine(Property{Kind: KindEmptyLine}, lineno)
		case line[0] == ';' || line[0] == '#':
			curr.addLine(Property{Kind: KindComment, Value: line}, lineno)
		case isSectionHeader(line):
			curr = d.GetSection(sectionName(line))
		default:
			key, value, ok := splitProperty(line)
			if !ok || curr.name == "" {
				curr.addLine(Property{Kind: KindInvalid, Value: line}, lineno)
				continue
			}
			err := curr.add(Property{Key: key, Kind: KindProperty, Value: value}, lineno)
			if err != nil {
				return nil, fmt.Errorf("parse ini file: line %d: %w", lineno, err)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parse ini file: line %d: %w", lineno, err)
	}
	return d, nil
}

// isSectionHeader reports whether a trimmed line is a section header with
// a non-empty name. Headers without a name are kept as invalid lines.
func isSectionHeader(line string) bool {
	return line[0] == '[' && strings.HasSuffix(line, "]") && sectionName(line) != ""
}

// sectionName returns the text between the first '[' and the first ']' of a
// header line, without surrounding whitespace.
func sectionName(line string) string {
	end := strings.IndexByte(line, ']')
	if end < 1 {
		return ""
	}
	return strings.TrimSpace(line[1:end])
}

// splitProperty splits a line on its first equals sign. It reports false if
// there is no equals sign or the key is empty.
func splitProperty(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i == -1 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[i+1:]), true
}
