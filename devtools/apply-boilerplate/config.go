// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"io/fs"
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/txtar"
	"sigs.k8s.io/yaml"
)

var defaultExcludeDirs = []string{"_build_"}

type config struct {
	ExcludeDirs []string `json:"exclude_dirs"`
	NoLicense   []string `json:"no_license"`

	modeline string
}

// loadConfig reads the configuration archive at path. A missing archive
// yields the default configuration.
func loadConfig(path string) (*config, error) {
	cfg := &config{ExcludeDirs: slices.Clone(defaultExcludeDirs)}

	ar, err := txtar.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	for _, f := range ar.Files {
		switch f.Name {
		case "config.yaml":
			if err := yaml.UnmarshalStrict(f.Data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parsing %s in %s", f.Name, path)
			}
		case "modeline":
			cfg.modeline = string(f.Data)
		default:
			return nil, errors.Newf("%s: unknown file %q", path, f.Name)
		}
	}

	return cfg, nil
}
