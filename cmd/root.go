// Package cmd implements the notox CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eykd/notox-go/internal/config"
	"github.com/eykd/notox-go/internal/logging"
	"github.com/eykd/notox-go/internal/walk"
)

// NewRootCmd creates the notox root command backed by the OS filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmdWithDeps(walk.OSFS{}, os.Stat, config.Load)
}

// SetVersionInfo attaches build metadata to the root command's --version
// output.
func SetVersionInfo(cmd *cobra.Command, version, commit, date string) {
	cmd.Version = version
	cmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit %s, built %s)\n", commit, date))
}

// newRootCmdWithDeps is NewRootCmd with injectable filesystem, stat, and
// config dependencies, for tests.
func newRootCmdWithDeps(fsys walk.FS, stat func(string) (os.FileInfo, error), loadConfig func() (config.Config, error)) *cobra.Command {
	var (
		do            bool
		jsonMode      bool
		jsonPretty    bool
		jsonOnlyError bool
		quiet         bool
		serial        bool
		workers       int
	)

	cmd := &cobra.Command{
		Use:   "notox [flags] [path ...]",
		Short: "notox rewrites file and directory names into a safe ASCII subset",
		Long: `notox rewrites file and directory names into a safe ASCII subset.

Accented and decorated letters are folded to plain ASCII, combining marks
are dropped, and runs of other disallowed characters collapse into a single
underscore. Without paths, the entries of the current directory are
checked. By default nothing is renamed; pass --do to apply the renames.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("serial") {
				serial = cfg.Serial
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Workers
			}
			logger := logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel), logging.Format(cfg.LogFormat))

			paths := resolvePaths(args, fsys, stat, logger)
			logger.Debug("running", "dry_run", !do, "serial", serial, "paths", len(paths))

			w := walk.New(fsys, walk.Options{
				DryRun:  !do,
				Serial:  serial,
				Workers: workers,
				Logger:  logger,
			})
			outcomes := w.Run(cmd.Context(), paths)

			return writeReport(cmd.OutOrStdout(), outcomes, reportOptions{
				JSON:       jsonMode || jsonPretty || jsonOnlyError,
				Pretty:     jsonPretty,
				OnlyErrors: jsonOnlyError,
				Quiet:      quiet,
			})
		},
	}

	cmd.Flags().BoolVarP(&do, "do", "d", false, "apply the renames (default is a dry run)")
	cmd.Flags().BoolVarP(&jsonMode, "json", "j", false, "print the result as JSON")
	cmd.Flags().BoolVarP(&jsonPretty, "json-pretty", "p", false, "print the result as indented JSON")
	cmd.Flags().BoolVarP(&jsonOnlyError, "json-error", "e", false, "print only errors, as JSON")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing")
	cmd.Flags().BoolVar(&serial, "serial", false, "disable parallel traversal for deterministic output order")
	cmd.Flags().IntVar(&workers, "workers", 0, "max concurrently traversed paths (0 = one per CPU)")

	return cmd
}

// resolvePaths turns the positional arguments into the de-duplicated set of
// roots to check, preserving first-appearance order. A bare "*" left
// unexpanded by the shell, or an empty argument list, expands to the
// entries of the current directory. Arguments that do not exist are skipped
// with a notice.
func resolvePaths(args []string, fsys walk.FS, stat func(string) (os.FileInfo, error), log *slog.Logger) []string {
	var paths []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	for _, arg := range args {
		if arg == "*" {
			for _, p := range entriesOf(".", fsys) {
				add(p)
			}
			continue
		}
		if _, err := stat(arg); err != nil {
			log.Warn("cannot find path", "path", arg)
			continue
		}
		add(arg)
	}
	if len(paths) == 0 {
		for _, p := range entriesOf(".", fsys) {
			add(p)
		}
	}
	return paths
}

// entriesOf lists dir's direct entries as paths; enumeration failures yield
// an empty set, matching the behavior of an unreadable working directory.
func entriesOf(dir string, fsys walk.FS) []string {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out
}
