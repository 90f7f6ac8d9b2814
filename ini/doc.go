// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides an order-preserving document model for INI files.
See https://en.wikipedia.org/wiki/INI_file.

This package is specifically designed for read-modify-write scenarios: every
line of a file, including comments, blank lines and lines that could not be
understood, keeps its place when the document is loaded, edited and saved.

Syntax

An INI file is UTF-8 text read one line at a time. A leading byte order mark
is skipped and lines may be of any length. Whitespace at the beginning and end
of each line is ignored, and each line is one of:

	[section]     a section header
	key=value     a property
	; comment     a comment (so is a line starting with '#')
	              an empty line

Anything else is an invalid line. Invalid lines are not an error: they are
kept as-is and written back unchanged.

A section header starts with '[' and ends with ']' on the same line. The name
is the text up to the first ']' with surrounding whitespace removed. A header
with an empty name is an invalid line. If a section name appears more than
once, the later headers continue the earlier section instead of starting a
new one.

A property is split on its first equals sign ('='); whitespace around the key
and the value is removed. There is no quoting or escaping. Keys are
case-sensitive and must be unique within a section: a file that repeats a key
in the same section fails to parse with ErrDuplicateKey.

Lines that come before the first section header belong to the preamble, a
section named by the empty string. The preamble never holds properties, so a
line containing '=' there is an invalid line.

Writing

Saving writes a header for each section other than the preamble, followed by
its lines in order. Properties are written as key=value. Comments added
programmatically without a leading ';' or '#' are written with "; " in front.
A byte order mark is not written back. Since the parser trims whitespace and
merges repeated sections, a file written
by this package reads back into the same document and writes out the same
bytes again.
*/
package ini
