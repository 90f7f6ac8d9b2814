// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Command iniedit reads and edits INI files in place, keeping comments,
// blank lines and the order of sections and properties.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"
	"github.com/yourbase/inidoc/envvar"
	"github.com/yourbase/inidoc/ini"
	"zombiezen.com/go/log"
)

const usage = `usage: iniedit [options] COMMAND [ARGS]

Commands:
  get SECTION KEY [DEFAULT]  print a value
  set SECTION KEY VALUE      set a value, adding the section if needed
  delete SECTION [KEY]       delete a property, or a whole section
  sections                   list section names
  backup DEST                copy the file to DEST
  fmt                        print the file as it would be saved

Options:
`

var errNotSet = errors.New("not set")

func main() {
	ctx := context.Background()
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "iniedit:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	defaultIfEmpty, err := envvar.Bool("INIEDIT_DEFAULT_IF_EMPTY", false)
	if err != nil {
		return err
	}
	fset := flag.NewFlagSet("iniedit", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprint(stderr, usage)
		fset.PrintDefaults()
	}
	file := fset.StringP("file", "f", envvar.Get("INIEDIT_FILE", "config.ini"), "INI `path` to operate on ($INIEDIT_FILE)")
	typ := fset.StringP("type", "t", "string", "value type for get: string, bool, int or int64")
	apply := fset.Bool("apply", false, "for backup, write the file as iniedit would save it instead of copying it")
	fset.BoolVar(&defaultIfEmpty, "default-if-empty", defaultIfEmpty, "for get, treat empty values as not set ($INIEDIT_DEFAULT_IF_EMPTY)")
	if err := fset.Parse(args); err != nil {
		return err
	}
	args = fset.Args()
	if len(args) == 0 {
		fset.Usage()
		return errors.New("missing command")
	}

	doc := ini.New(*file)
	doc.DefaultIfEmpty = defaultIfEmpty
	cmd, args := args[0], args[1:]
	switch cmd {
	case "get":
		if len(args) != 2 && len(args) != 3 {
			return errors.New("usage: get SECTION KEY [DEFAULT]")
		}
		if err := doc.Load(ctx); err != nil {
			return err
		}
		v, err := get(doc, *typ, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, v)
		return nil
	case "set":
		if len(args) != 3 {
			return errors.New("usage: set SECTION KEY VALUE")
		}
		if err := doc.Load(ctx); err != nil {
			return err
		}
		if err := doc.Put(args[0], args[1], args[2]); err != nil {
			return fmt.Errorf("set [%s] %s: %w", args[0], args[1], err)
		}
		return doc.Save(ctx)
	case "delete":
		if len(args) != 1 && len(args) != 2 {
			return errors.New("usage: delete SECTION [KEY]")
		}
		if err := doc.Load(ctx); err != nil {
			return err
		}
		if len(args) == 1 {
			doc.DeleteSection(args[0])
		} else {
			doc.Delete(args[0], args[1])
		}
		return doc.Save(ctx)
	case "sections":
		if len(args) != 0 {
			return errors.New("usage: sections")
		}
		if err := doc.Load(ctx); err != nil {
			return err
		}
		for _, name := range doc.SectionNames() {
			if name != "" {
				fmt.Fprintln(stdout, name)
			}
		}
		return nil
	case "backup":
		if len(args) != 1 {
			return errors.New("usage: backup DEST")
		}
		if *apply {
			if err := doc.Load(ctx); err != nil {
				return err
			}
		}
		if err := doc.Backup(ctx, args[0], *apply); err != nil {
			return err
		}
		log.Infof(ctx, "Backed up %s to %s", *file, args[0])
		return nil
	case "fmt":
		if len(args) != 0 {
			return errors.New("usage: fmt")
		}
		if err := doc.Load(ctx); err != nil {
			return err
		}
		_, err := doc.WriteTo(stdout)
		return err
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// get formats the value of a property as the given type. Without a default,
// a property that is not set is an error.
func get(doc *ini.Document, typ string, args []string) (string, error) {
	section, key := args[0], args[1]
	def := ""
	if len(args) == 3 {
		def = args[2]
	} else if _, ok := doc.Lookup(section, key); !ok {
		return "", fmt.Errorf("[%s] %s: %w", section, key, errNotSet)
	}
	switch typ {
	case "string":
		return doc.GetString(section, key, def), nil
	case "bool":
		var d bool
		if def != "" {
			var err error
			if d, err = strconv.ParseBool(def); err != nil {
				return "", fmt.Errorf("default: %w", err)
			}
		}
		v, err := doc.GetBool(section, key, d)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	case "int":
		var d int
		if def != "" {
			var err error
			if d, err = strconv.Atoi(def); err != nil {
				return "", fmt.Errorf("default: %w", err)
			}
		}
		v, err := doc.GetInt(section, key, d)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	case "int64":
		var d int64
		if def != "" {
			var err error
			if d, err = strconv.ParseInt(def, 10, 64); err != nil {
				return "", fmt.Errorf("default: %w", err)
			}
		}
		v, err := doc.GetInt64(section, key, d)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("unknown type %q", typ)
	}
}
