// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package header inserts license headers into source files.

A license template is written with "//" comments. [NewRegistry] derives a
variant of it for each supported [Language] by replacing "//" at the start of
every line with the language's comment marker:

	C, C++ (.c, .h, .cpp, .hpp)  //
	Assembly (.s)                ;
	Ruby (.rb), Interface (.if)  #
	Lua (.lua)                   --

[Applier.Apply] walks a directory tree and prepends the variant to every file
of a recognized extension that doesn't already contain it anywhere in its
content. Files are replaced by writing a sibling file with the ".new" suffix
and renaming it over the original, so running Apply twice changes nothing
the second time.

# Usage

	a := &header.Applier{
		Registry:    header.NewRegistry(license, ""),
		ExcludeDirs: []string{"_build_"},
		Stdout:      os.Stdout,
	}
	stats, err := a.Apply(ctx, ".")
	if err != nil {
		return err
	}
	return stats.WriteSummary(os.Stdout)

To report missing headers without touching files, set Writer to a
[Checker].
*/
package header
