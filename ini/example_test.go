// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/yourbase/inidoc/ini"
)

func ExampleParse() {
	const iniFile = `
		; Settings for the demo server.
		[server]
		host = example.com
		port = 8080
		[client]
		retries = 3`
	cfg, err := ini.Parse(strings.NewReader(iniFile))
	if err != nil {
		// handle error
	}

	// Sections keep the order they appear in. The first is the preamble.
	fmt.Printf("Sections: %q\n", cfg.SectionNames())

	// Get specific values.
	fmt.Println("Host:", cfg.GetString("server", "host", "localhost"))
	port, err := cfg.GetInt("server", "port", 80)
	if err != nil {
		// handle error
	}
	fmt.Println("Port:", port)

	// Output:
	// Sections: ["" "server" "client"]
	// Host: example.com
	// Port: 8080
}

// Editing a document keeps comments and the position of existing properties.
func ExampleDocument_Put() {
	cfg, err := ini.Parse(strings.NewReader(`[server]
; Keep this comment.
host = example.com
port = 8080
`))
	if err != nil {
		// handle error
	}
	if err := cfg.Put("server", "host", "example.org"); err != nil {
		// handle error
	}
	if err := cfg.Put("client", "retries", "5"); err != nil {
		// handle error
	}
	if _, err := cfg.WriteTo(os.Stdout); err != nil {
		// handle error
	}

	// Output:
	// [server]
	// ; Keep this comment.
	// host=example.org
	// port=8080
	//
	// [client]
	// retries=5
}

func ExampleDocument_Delete() {
	cfg, err := ini.Parse(strings.NewReader("[a]\nx=1\n[b]\ny=2\nz=3\n"))
	if err != nil {
		// handle error
	}
	// Deleting the only line of a section deletes the section.
	cfg.Delete("a", "x")
	cfg.Delete("b", "y")
	text, err := cfg.MarshalText()
	if err != nil {
		// handle error
	}
	fmt.Print(string(text))

	// Output:
	// [b]
	// z=3
}

// Comments added programmatically get a comment marker when written.
func ExampleSection_AddLine() {
	cfg := new(ini.Document)
	s := cfg.GetSection("paths")
	s.AddLine(ini.KindComment, "Where to find things.")
	s.AddProperty("root", "/srv")
	text, err := cfg.MarshalText()
	if err != nil {
		// handle error
	}
	fmt.Print(string(text))

	// Output:
	// [paths]
	// ; Where to find things.
	// root=/srv
}
