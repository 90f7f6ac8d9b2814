// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"zombiezen.com/go/log"
)

const filePerm = 0o644

// Load replaces the document's sections with the contents of its file.
// If the file does not exist, Load does nothing and returns nil. If the file
// cannot be parsed, the document is left unchanged.
func (d *Document) Load(ctx context.Context) error {
	f, err := os.Open(d.path)
	if os.IsNotExist(err) {
		log.Debugf(ctx, "%s does not exist; nothing to load", d.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load ini file: %w", err)
	}
	defer f.Close()
	parsed, err := Parse(f)
	if err != nil {
		return fmt.Errorf("load ini file %s: %w", d.path, err)
	}
	d.replace(parsed)
	log.Debugf(ctx, "Loaded %d sections from %s", len(d.sections), d.path)
	return nil
}

// Save writes the document to its file.
func (d *Document) Save(ctx context.Context) error {
	return d.SaveAs(ctx, d.path)
}

// SaveAs writes the document to the file at path. The file is replaced
// atomically: readers see either the old or the new content. The document
// stays bound to its original path.
func (d *Document) SaveAs(ctx context.Context, path string) error {
	text, err := d.MarshalText()
	if err != nil {
		return fmt.Errorf("save ini file %s: %w", path, err)
	}
	if err := writeFile(path, bytes.NewReader(text), filePerm); err != nil {
		return fmt.Errorf("save ini file: %w", err)
	}
	log.Debugf(ctx, "Wrote %d sections to %s", d.CountSections(), path)
	return nil
}

// Backup writes a copy of the document's file to path. If applyChanges is
// true, the in-memory document is saved to path. Otherwise the file on disk is
// copied byte for byte, and Backup returns an error satisfying
// errors.Is(err, os.ErrNotExist) if the file does not exist.
func (d *Document) Backup(ctx context.Context, path string, applyChanges bool) error {
	if applyChanges {
		return d.SaveAs(ctx, path)
	}
	src, err := os.Open(d.path)
	if err != nil {
		return fmt.Errorf("backup ini file: %w", err)
	}
	defer src.Close()
	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("backup ini file: %w", err)
	}
	if err := writeFile(path, src, info.Mode().Perm()); err != nil {
		return fmt.Errorf("backup ini file %s: %w", d.path, err)
	}
	log.Debugf(ctx, "Copied %s to %s", d.path, path)
	return nil
}

// writeFile atomically replaces the file at path with the contents of r.
// Files that did not exist before are created with the given permissions.
func writeFile(path string, r io.Reader, perm os.FileMode) error {
	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)
	if err := atomic.WriteFile(path, r); err != nil {
		return err
	}
	if created {
		// atomic.WriteFile doesn't set permissions for new files.
		if err := os.Chmod(path, perm); err != nil {
			return err
		}
	}
	return nil
}
