// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

// Language is a source language that can carry a license header.
type Language int

// Supported languages.
const (
	C Language = iota + 1
	CPlusPlus
	Assembly
	Ruby
	Interface
	Lua
)

type languageInfo struct {
	name   string
	marker string
	exts   []string
}

var languages = map[Language]languageInfo{
	C:         {name: "C", marker: "//", exts: []string{".c", ".h"}},
	CPlusPlus: {name: "C++", marker: "//", exts: []string{".cpp", ".hpp"}},
	Assembly:  {name: "Assembly", marker: ";", exts: []string{".s"}},
	Ruby:      {name: "Ruby", marker: "#", exts: []string{".rb"}},
	Interface: {name: "Interface", marker: "#", exts: []string{".if"}},
	Lua:       {name: "Lua", marker: "--", exts: []string{".lua"}},
}

var byExtension = func() map[string]Language {
	m := make(map[string]Language)
	for lang, info := range languages {
		for _, ext := range info.exts {
			m[ext] = lang
		}
	}
	return m
}()

// Languages returns all supported languages.
func Languages() []Language {
	return []Language{C, CPlusPlus, Assembly, Ruby, Interface, Lua}
}

// LanguageFor returns the language of files with the extension ext, including
// the leading dot.
func LanguageFor(ext string) (Language, bool) {
	lang, ok := byExtension[ext]
	return lang, ok
}

// CommentMarker returns the token that starts a single-line comment.
func (l Language) CommentMarker() string { return languages[l].marker }

// Extensions returns file extensions of the language.
func (l Language) Extensions() []string { return languages[l].exts }

func (l Language) String() string {
	if info, ok := languages[l]; ok {
		return info.name
	}
	return "Language(unknown)"
}
