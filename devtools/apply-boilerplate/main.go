// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"go.astrophena.name/boilerplate/cli"
	"go.astrophena.name/boilerplate/header"
	"go.astrophena.name/boilerplate/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	root    string
	license string
	config  string
	check   bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.root, "root", ".", "Scan `dir` recursively.")
	fs.StringVar(&a.license, "license", "license_header", "Read the license header from `file`.")
	fs.StringVar(&a.config, "config", ".boilerplate.txtar", "Read configuration from `file`, if it exists.")
	fs.BoolVar(&a.check, "check", false, "Print the changes that would be made, without making them, and fail if any file is missing the header.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) > 0 {
		return errors.Wrapf(cli.ErrInvalidArgs, "unexpected arguments %q", env.Args)
	}

	license, err := os.ReadFile(a.license)
	if err != nil {
		return errors.Wrap(err, "reading license header")
	}

	cfg, err := loadConfig(a.config)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "loaded config",
		slog.Any("exclude_dirs", cfg.ExcludeDirs),
		slog.Any("no_license", cfg.NoLicense),
		slog.Bool("modeline", cfg.modeline != ""),
	)

	applier := &header.Applier{
		Registry:    header.NewRegistry(string(license), cfg.modeline),
		ExcludeDirs: cfg.ExcludeDirs,
		Exempt:      cfg.NoLicense,
		Stdout:      env.Stdout,
	}
	var checker *header.Checker
	if a.check {
		checker = header.NewChecker(a.root)
		applier.Writer = checker
	}

	stats, err := applier.Apply(ctx, a.root)
	if err != nil {
		return err
	}
	if err := stats.WriteSummary(env.Stdout); err != nil {
		return err
	}

	if checker == nil || stats.Modified == 0 {
		return nil
	}
	if err := checker.WriteDiffs(env.Stdout, cli.IsTerminalWriter(env.Stdout)); err != nil {
		return err
	}
	return &missingHeadersError{n: stats.Modified}
}

type missingHeadersError struct{ n int }

func (e *missingHeadersError) Error() string {
	return fmt.Sprintf("%d files are missing license headers", e.n)
}
