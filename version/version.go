// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running program.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"go.astrophena.name/boilerplate/syncx"
)

// Info describes the build of the running program.
type Info struct {
	// Name is the command name.
	Name string `json:"name"`
	// Commit is the VCS revision the program was built from, if known.
	Commit string `json:"commit,omitempty"`
	// Dirty reports whether the working tree had uncommitted changes.
	Dirty bool `json:"dirty,omitempty"`
	// Built is the commit time, if known.
	Built time.Time `json:"built,omitzero"`
	// Go is the Go version the program was built with.
	Go string `json:"go"`
	// OS and Arch describe the target platform.
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// String returns a human-readable multi-line representation of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s ", i.Name)
	if i.Commit != "" {
		fmt.Fprintf(&sb, "(%s", i.Commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	} else {
		sb.WriteString("(devel)")
	}
	sb.WriteString("\n")
	if !i.Built.IsZero() {
		fmt.Fprintf(&sb, "built at %s\n", i.Built.Format(time.RFC1123))
	}
	fmt.Fprintf(&sb, "with %s for %s/%s\n", i.Go, i.OS, i.Arch)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns the build information of the running program.
func Version() Info { return info.Get(readInfo) }

// CmdName returns the name of the running command.
func CmdName() string { return Version().Name }

func readInfo() Info {
	i := Info{
		Name: cmdName(),
		Go:   runtime.Version(),
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if bi.Path != "" && !strings.HasSuffix(os.Args[0], ".test") {
		i.Name = filepath.Base(bi.Path)
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		case "vcs.time":
			i.Built, _ = time.Parse(time.RFC3339, s.Value)
		}
	}
	return i
}

func cmdName() string {
	if len(os.Args) == 0 {
		return "unknown"
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
}
