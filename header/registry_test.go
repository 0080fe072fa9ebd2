// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"testing"

	"go.astrophena.name/boilerplate/testutil"
)

func TestComment(t *testing.T) {
	cases := map[string]struct {
		template string
		marker   string
		want     string
	}{
		"ruby": {
			template: "// Copyright X",
			marker:   "#",
			want:     "# Copyright X",
		},
		"assembly": {
			template: "// Copyright X",
			marker:   ";",
			want:     "; Copyright X",
		},
		"lua": {
			template: "// Copyright X",
			marker:   "--",
			want:     "-- Copyright X",
		},
		"same marker": {
			template: "// Copyright X\n",
			marker:   "//",
			want:     "// Copyright X\n",
		},
		"every line": {
			template: "// Copyright X\n//\n// Distributed under Y.\n",
			marker:   "#",
			want:     "# Copyright X\n#\n# Distributed under Y.\n",
		},
		"only line starts": {
			template: "// See http://example.com // here\n",
			marker:   "#",
			want:     "# See http://example.com // here\n",
		},
		"lines without marker are kept": {
			template: "/*\n * Copyright X\n */\n// trailer\n",
			marker:   "--",
			want:     "/*\n * Copyright X\n */\n-- trailer\n",
		},
		"indented marker is kept": {
			template: "  // Copyright X\n",
			marker:   "#",
			want:     "  // Copyright X\n",
		},
		"triple slash": {
			template: "/// Copyright X\n",
			marker:   "#",
			want:     "#/ Copyright X\n",
		},
		"empty": {
			template: "",
			marker:   "#",
			want:     "",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, Comment(tc.template, tc.marker), tc.want)
		})
	}
}

func TestNewRegistry(t *testing.T) {
	const (
		license  = "// Copyright X\n// Licensed under Y.\n"
		modeline = "// vim: set ts=4 sw=4:\n"
	)

	r := NewRegistry(license, modeline)
	testutil.AssertEqual(t, r.Extensions(), []string{".c", ".cpp", ".h", ".hpp", ".if", ".lua", ".rb", ".s"})

	cases := map[string]Variant{
		".cpp": {License: license, Modeline: modeline},
		".h":   {License: license, Modeline: modeline},
		".s":   {License: "; Copyright X\n; Licensed under Y.\n", Modeline: "; vim: set ts=4 sw=4:\n"},
		".rb":  {License: "# Copyright X\n# Licensed under Y.\n", Modeline: "# vim: set ts=4 sw=4:\n"},
		".if":  {License: "# Copyright X\n# Licensed under Y.\n", Modeline: "# vim: set ts=4 sw=4:\n"},
		".lua": {License: "-- Copyright X\n-- Licensed under Y.\n", Modeline: "-- vim: set ts=4 sw=4:\n"},
	}
	for ext, want := range cases {
		t.Run(ext, func(t *testing.T) {
			got, ok := r.Lookup(ext)
			testutil.AssertEqual(t, ok, true)
			testutil.AssertEqual(t, got, want)
			testutil.AssertEqual(t, got.Header(), want.License+want.Modeline)
		})
	}

	t.Run("unknown extension", func(t *testing.T) {
		_, ok := r.Lookup(".md")
		testutil.AssertEqual(t, ok, false)
	})
}

func TestNewRegistrySubset(t *testing.T) {
	r := NewRegistry("// X\n", "", Ruby, Lua)
	testutil.AssertEqual(t, r.Extensions(), []string{".lua", ".rb"})

	v, ok := r.Lookup(".rb")
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, Variant{License: "# X\n"})

	_, ok = r.Lookup(".cpp")
	testutil.AssertEqual(t, ok, false)
}
