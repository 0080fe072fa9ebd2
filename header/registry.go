// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"regexp"
	"slices"
)

// BaseMarker is the comment marker used by license and modeline templates.
const BaseMarker = "//"

var baseMarkerRe = regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(BaseMarker))

// Comment rewrites template for a language that uses marker for single-line
// comments. Only lines starting with [BaseMarker] are changed.
func Comment(template, marker string) string {
	if marker == BaseMarker {
		return template
	}
	return baseMarkerRe.ReplaceAllLiteralString(template, marker)
}

// Variant is a license header derived for one file extension.
type Variant struct {
	License  string
	Modeline string
}

// Header returns the text prepended to files missing the license.
func (v Variant) Header() string { return v.License + v.Modeline }

// Registry maps languages to header variants. It is immutable once created.
type Registry struct {
	variants map[Language]Variant
}

// NewRegistry derives header variants of the license and modeline templates
// for langs. If langs is empty, all supported languages are registered.
func NewRegistry(license, modeline string, langs ...Language) *Registry {
	if len(langs) == 0 {
		langs = Languages()
	}
	r := &Registry{variants: make(map[Language]Variant)}
	for _, lang := range langs {
		r.variants[lang] = Variant{
			License:  Comment(license, lang.CommentMarker()),
			Modeline: Comment(modeline, lang.CommentMarker()),
		}
	}
	return r
}

// Lookup returns the variant for files with the extension ext.
func (r *Registry) Lookup(ext string) (Variant, bool) {
	lang, ok := LanguageFor(ext)
	if !ok {
		return Variant{}, false
	}
	v, ok := r.variants[lang]
	return v, ok
}

// Extensions returns registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	var exts []string
	for lang := range r.variants {
		exts = append(exts, lang.Extensions()...)
	}
	slices.Sort(exts)
	return exts
}
