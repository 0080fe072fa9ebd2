// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/boilerplate/testutil"
)

func TestLoadConfig(t *testing.T) {
	cases := map[string]struct {
		archive     string
		want        *config
		wantErrText string
	}{
		"missing archive": {
			want: &config{ExcludeDirs: []string{"_build_"}},
		},
		"empty archive": {
			archive: "# no files\n",
			want:    &config{ExcludeDirs: []string{"_build_"}},
		},
		"exclusions": {
			archive: "-- config.yaml --\nexclude_dirs: [out, build]\nno_license:\n  - vendor/\n",
			want: &config{
				ExcludeDirs: []string{"out", "build"},
				NoLicense:   []string{"vendor/"},
			},
		},
		"only exemptions keep default exclusions": {
			archive: "-- config.yaml --\nno_license: [gen.h]\n",
			want: &config{
				ExcludeDirs: []string{"_build_"},
				NoLicense:   []string{"gen.h"},
			},
		},
		"json config": {
			archive: "-- config.yaml --\n{\"exclude_dirs\": []}\n",
			want:    &config{ExcludeDirs: []string{}},
		},
		"modeline": {
			archive: "-- modeline --\n// vim: ts=4\n",
			want:    &config{ExcludeDirs: []string{"_build_"}, modeline: "// vim: ts=4\n"},
		},
		"unknown field": {
			archive:     "-- config.yaml --\nexclude: [x]\n",
			wantErrText: "parsing config.yaml",
		},
		"unknown file": {
			archive:     "-- license --\nx\n",
			wantErrText: `unknown file "license"`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".boilerplate.txtar")
			if tc.archive != "" {
				if err := os.WriteFile(path, []byte(tc.archive), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			got, err := loadConfig(path)
			if tc.wantErrText != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErrText) {
					t.Fatalf("loadConfig() error = %v, want it to contain %q", err, tc.wantErrText)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig(): %v", err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestLoadConfigDoesNotChangeDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".boilerplate.txtar")
	if err := os.WriteFile(path, []byte("-- config.yaml --\nexclude_dirs: [changed]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, defaultExcludeDirs, []string{"_build_"})
}
