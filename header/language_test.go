// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"testing"

	"go.astrophena.name/boilerplate/testutil"
)

func TestLanguageFor(t *testing.T) {
	cases := map[string]struct {
		ext        string
		wantOK     bool
		wantLang   Language
		wantMarker string
	}{
		"cpp":          {ext: ".cpp", wantOK: true, wantLang: CPlusPlus, wantMarker: "//"},
		"hpp":          {ext: ".hpp", wantOK: true, wantLang: CPlusPlus, wantMarker: "//"},
		"c":            {ext: ".c", wantOK: true, wantLang: C, wantMarker: "//"},
		"h":            {ext: ".h", wantOK: true, wantLang: C, wantMarker: "//"},
		"assembly":     {ext: ".s", wantOK: true, wantLang: Assembly, wantMarker: ";"},
		"ruby":         {ext: ".rb", wantOK: true, wantLang: Ruby, wantMarker: "#"},
		"interface":    {ext: ".if", wantOK: true, wantLang: Interface, wantMarker: "#"},
		"lua":          {ext: ".lua", wantOK: true, wantLang: Lua, wantMarker: "--"},
		"markdown":     {ext: ".md"},
		"no extension": {ext: ""},
		"uppercase":    {ext: ".CPP"},
		"missing dot":  {ext: "cpp"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			lang, ok := LanguageFor(tc.ext)
			testutil.AssertEqual(t, ok, tc.wantOK)
			if !ok {
				return
			}
			testutil.AssertEqual(t, lang, tc.wantLang)
			testutil.AssertEqual(t, lang.CommentMarker(), tc.wantMarker)
		})
	}
}

func TestLanguagesCoverExtensions(t *testing.T) {
	var exts []string
	for _, lang := range Languages() {
		for _, ext := range lang.Extensions() {
			got, ok := LanguageFor(ext)
			if !ok || got != lang {
				t.Errorf("LanguageFor(%q) = %v, %v; want %v", ext, got, ok, lang)
			}
			exts = append(exts, ext)
		}
	}
	testutil.AssertEqual(t, len(exts), 8)
}

func TestLanguageString(t *testing.T) {
	testutil.AssertEqual(t, CPlusPlus.String(), "C++")
	testutil.AssertEqual(t, Lua.String(), "Lua")
	testutil.AssertEqual(t, Language(0).String(), "Language(unknown)")
}
