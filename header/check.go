// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type fileDiff struct {
	path  string
	diffs []diffmatchpatch.Diff
}

// Checker is a [Writer] that leaves files untouched and records what would
// have changed.
type Checker struct {
	root   string
	differ *diffmatchpatch.DiffMatchPatch
	files  []fileDiff
}

// NewChecker returns a new [Checker] for files under root. Paths are recorded
// slash-separated and relative to root, like in status lines of
// [Applier.Apply].
func NewChecker(root string) *Checker {
	return &Checker{root: root, differ: diffmatchpatch.New()}
}

// Write implements [Writer].
func (c *Checker) Write(path string, old, data []byte, _ fs.FileMode) error {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return err
	}
	a, b, lines := c.differ.DiffLinesToChars(string(old), string(data))
	diffs := c.differ.DiffMain(a, b, false)
	c.files = append(c.files, fileDiff{
		path:  filepath.ToSlash(rel),
		diffs: c.differ.DiffCharsToLines(diffs, lines),
	})
	return nil
}

// Paths returns paths of the files that would change, in the order they were
// written.
func (c *Checker) Paths() []string {
	paths := make([]string, 0, len(c.files))
	for _, f := range c.files {
		paths = append(paths, f.path)
	}
	return paths
}

// WriteDiffs prints recorded changes to w. Each file starts with a
// "--- path" line. If color is true, diffs are printed with ANSI colors in
// full, otherwise only changed lines are printed, prefixed by "+" or "-".
func (c *Checker) WriteDiffs(w io.Writer, color bool) error {
	bw := bufio.NewWriter(w)
	for _, f := range c.files {
		fmt.Fprintf(bw, "--- %s\n", f.path)
		if color {
			text := c.differ.DiffPrettyText(f.diffs)
			bw.WriteString(text)
			if !strings.HasSuffix(text, "\n") {
				bw.WriteString("\n")
			}
			continue
		}
		for _, d := range f.diffs {
			var prefix string
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				prefix = "+"
			case diffmatchpatch.DiffDelete:
				prefix = "-"
			default:
				continue
			}
			for line := range strings.Lines(d.Text) {
				bw.WriteString(prefix + line)
				if !strings.HasSuffix(line, "\n") {
					bw.WriteString("\n")
				}
			}
		}
	}
	return bw.Flush()
}
