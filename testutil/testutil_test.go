// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package testutil

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

func TestTxtarRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ar := txtar.Parse([]byte("-- b.c --\nint b;\n-- a/x.rb --\nputs 1\n"))
	ExtractTxtar(t, ar, dir)

	AssertEqual(t, ReadFile(t, filepath.Join(dir, "a", "x.rb")), "puts 1\n")
	AssertEqual(t, string(BuildTxtar(t, dir)), "-- a/x.rb --\nputs 1\n-- b.c --\nint b;\n")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	WriteFiles(t, dir, map[string]string{
		"main.cpp":      "int main(){}",
		"sub/dir/x.lua": "print(1)\n",
	})

	AssertEqual(t, ReadFile(t, filepath.Join(dir, "main.cpp")), "int main(){}")
	AssertEqual(t, ReadFile(t, filepath.Join(dir, "sub", "dir", "x.lua")), "print(1)\n")
}

func TestRunGoldenAfterChdir(t *testing.T) {
	root := t.TempDir()
	WriteFiles(t, root, map[string]string{
		"testdata/case.txtar":  "input\n",
		"testdata/case.golden": "want\n",
	})
	t.Chdir(root)

	chdir := func(t *testing.T, match string) []byte {
		t.Chdir(t.TempDir())
		return []byte("want\n")
	}
	RunGolden(t, "testdata/*.txtar", chdir, false)

	update := func(t *testing.T, match string) []byte {
		t.Chdir(t.TempDir())
		return []byte("updated\n")
	}
	RunGolden(t, "testdata/*.txtar", update, true)
	AssertEqual(t, ReadFile(t, filepath.Join(root, "testdata", "case.golden")), "updated\n")
}
