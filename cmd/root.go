// Package cmd implements the pmx CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kb-labs/pmx/internal/config"
	"github.com/kb-labs/pmx/internal/logger"
	"github.com/kb-labs/pmx/internal/pm"
)

// SetVersionInfo is called from main.go with values injected at build time via -ldflags.
// It must be called before Execute().
func SetVersionInfo(version, commit, date string) {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"pmx %s (commit %s, built %s)\n", version, commit, date,
	))
	rootCmd.Version = version
}

var rootCmd = &cobra.Command{
	Use:   "pmx",
	Short: "pnpm project toolkit",
	Long: `pmx wraps pnpm with noise-filtered output and project housekeeping.

Examples:
  pmx install                  install declared dependencies
  pmx add react react-dom      add packages
  pmx add -D vitest            add a dev dependency
  pmx remove                   pick packages to remove interactively
  pmx clean --lockfile         drop node_modules and the lockfile
  pmx status                   show project and pnpm info`,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	flagDir    string
	flagSilent bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "C", "", "project directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagSilent, "silent", "s", false, "discard pnpm output")
}

// resolveDir returns the absolute project directory from --dir or the
// current directory.
func resolveDir() (string, error) {
	dir := flagDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = cwd
	}
	return filepath.Abs(dir)
}

// newPnpm builds the pnpm adapter for the resolved project directory,
// honoring the rc file. The caller closes the returned logger.
func newPnpm() (*pm.Pnpm, *config.Config, *logger.Logger, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, nil, nil, err
	}

	rc, err := config.Load(dir)
	if err != nil {
		return nil, nil, nil, err
	}

	silent := flagSilent || rc.Silent
	log := logger.NewDiscard()
	if !silent {
		if log, err = logger.New(dir); err != nil {
			return nil, nil, nil, err
		}
	}

	return &pm.Pnpm{Dir: dir, Log: log, Silent: silent}, rc, log, nil
}
