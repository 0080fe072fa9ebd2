// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Apply-boilerplate adds a license header to source files.

It recursively walks through the current directory and checks every file
with a recognized extension (.c, .h, .cpp, .hpp, .s, .rb, .if and .lua). If
the file doesn't contain the license header anywhere, the header is inserted
at the very top of the file. The header is read from the license_header file
in the current directory. It is written with "//" comments, which are
replaced with ";" for assembly, "#" for Ruby and interface files and "--"
for Lua.

Every file is reported as either "ok" or "UPDATED", followed by a summary and
the list of modified files. Running the tool again changes nothing.

The tool can be configured through a .boilerplate.txtar file in the current
directory. This file is a txtar archive and can contain the following files:

  - config.yaml: A YAML document with two optional lists. exclude_dirs holds
    directory prefixes that are not scanned (defaults to _build_).
    no_license holds file and directory prefixes that are never required to
    contain the license.
  - modeline: Editor modeline inserted after the license header, written
    with "//" comments like the header.

With -check, files are not modified. Instead, the tool prints what would
change and fails if any file is missing the header.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/boilerplate/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
