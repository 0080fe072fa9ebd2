// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/natefinch/atomic"
)

// Writer persists new contents of a file.
type Writer interface {
	// Write replaces the contents of the file at path, which currently holds
	// old, with data. The file has permission bits perm.
	Write(path string, old, data []byte, perm fs.FileMode) error
}

// TempSuffix is appended to a file path to get the path of the temporary
// file written by [FileWriter].
const TempSuffix = ".new"

// RenameError is returned by [FileWriter] when the temporary file was written
// but could not replace the original. The original file is left unmodified.
type RenameError struct {
	From string
	To   string
	Err  error
}

func (e *RenameError) Error() string {
	return "couldn't rename file " + e.From + " to " + e.To + ": " + e.Err.Error()
}

func (e *RenameError) Unwrap() error { return e.Err }

// FileWriter writes new contents to a sibling temporary file and then renames
// it over the original.
type FileWriter struct {
	// rename is atomic.ReplaceFile if nil.
	rename func(from, to string) error
}

// Write implements [Writer].
func (w *FileWriter) Write(path string, _, data []byte, perm fs.FileMode) error {
	tmp := path + TempSuffix
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return errors.Wrapf(err, "writing %s", tmp)
	}
	// WriteFile doesn't change permissions of an existing file.
	if err := os.Chmod(tmp, perm); err != nil {
		return errors.Wrapf(err, "writing %s", tmp)
	}

	rename := w.rename
	if rename == nil {
		rename = atomic.ReplaceFile
	}
	if err := rename(tmp, path); err != nil {
		return &RenameError{From: tmp, To: path, Err: err}
	}
	return nil
}
