// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"go.astrophena.name/boilerplate/logger"
)

// Applier inserts license headers into files of a directory tree.
//
// All fields must be set before calling [Applier.Apply] and must not be
// modified afterwards.
type Applier struct {
	// Registry holds header variants of recognized extensions. Files with
	// other extensions are ignored.
	Registry *Registry
	// ExcludeDirs lists slash-separated prefixes of directories that are not
	// scanned at all.
	ExcludeDirs []string
	// Exempt lists slash-separated prefixes of files and directories that
	// are scanned but never required to contain the license.
	Exempt []string
	// Writer persists modified files. If nil, a [FileWriter] is used.
	Writer Writer
	// Stdout receives one status line per scanned file. If nil, status
	// lines are discarded.
	Stdout io.Writer
}

// Stats holds results of [Applier.Apply].
type Stats struct {
	// OK is the number of files that were left unchanged.
	OK int
	// Modified is the number of files that received the header.
	Modified int
	// ModifiedFiles lists modified files in traversal order.
	ModifiedFiles []string
	// Check reports whether files were only checked, not written.
	Check bool
}

// WriteSummary prints the totals and the list of modified files.
func (s *Stats) WriteSummary(w io.Writer) error {
	changed, list := "files changed", "Modified files:"
	if s.Check {
		changed, list = "files missing header", "Files missing header:"
	}
	if _, err := fmt.Fprintf(w, "%d %s, %d files ok.\n", s.Modified, changed, s.OK); err != nil {
		return err
	}
	if len(s.ModifiedFiles) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, list); err != nil {
		return err
	}
	for _, f := range s.ModifiedFiles {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Apply walks the tree rooted at root in lexical order and prepends the
// license header to every eligible file that doesn't contain it yet.
//
// Paths in status lines, statistics and exclusion lists are slash-separated
// and relative to root. A file whose temporary copy can't be renamed over it
// is logged and still counted as modified; every other error stops the walk.
func (a *Applier) Apply(ctx context.Context, root string) (*Stats, error) {
	w := a.Writer
	if w == nil {
		w = &FileWriter{}
	}
	_, check := w.(*Checker)
	stdout := a.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	stats := &Stats{Check: check}
	err := filepath.WalkDir(root, func(fpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, fpath)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && hasAnyPrefix(rel, a.ExcludeDirs) {
				logger.Debug(ctx, "skipping excluded directory", slog.String("dir", rel))
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		variant, ok := a.Registry.Lookup(path.Ext(rel))
		if !ok {
			return nil
		}
		dir := path.Dir(rel)
		if hasAnyPrefix(dir, a.ExcludeDirs) {
			return nil
		}

		modified, err := a.process(ctx, w, fpath, dir, rel, variant)
		if err != nil {
			return err
		}

		if !modified {
			stats.OK++
			_, err := fmt.Fprintf(stdout, "%s is ok\n", rel)
			return err
		}
		stats.Modified++
		stats.ModifiedFiles = append(stats.ModifiedFiles, rel)
		status := "UPDATED"
		if check {
			status = "MISSING"
		}
		_, err = fmt.Fprintf(stdout, "%s is %s\n", rel, status)
		return err
	})
	return stats, err
}

// process inserts the header into a single file if needed and reports whether
// the file was modified.
func (a *Applier) process(ctx context.Context, w Writer, fpath, dir, rel string, v Variant) (bool, error) {
	content, err := os.ReadFile(fpath)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", rel)
	}

	if strings.Contains(string(content), v.License) {
		return false, nil
	}
	if hasAnyPrefix(dir, a.Exempt) || hasAnyPrefix(rel, a.Exempt) {
		return false, nil
	}

	info, err := os.Stat(fpath)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", rel)
	}

	data := make([]byte, 0, len(v.License)+len(v.Modeline)+len(content))
	data = append(data, v.Header()...)
	data = append(data, content...)

	if err := w.Write(fpath, content, data, info.Mode().Perm()); err != nil {
		var re *RenameError
		if !errors.As(err, &re) {
			return false, err
		}
		logger.Error(ctx, "couldn't rename file",
			slog.String("from", re.From),
			slog.String("to", re.To),
			slog.Any("err", re.Err),
		)
	}
	return true, nil
}
