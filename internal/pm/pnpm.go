package pm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	pnpmBin    = "pnpm"
	lockfile   = "pnpm-lock.yaml"
	modulesDir = "node_modules"
)

// ErrNoDir is returned by filesystem operations that need a project
// directory when none was configured.
var ErrNoDir = errors.New("pnpm: working directory not configured")

// telemetryOff silences the update-notifier and sponsorship chatter the
// npm family prints. Appended after the inherited environment so it wins
// on key collision.
var telemetryOff = []string{
	"NO_UPDATE_NOTIFIER=1",
	"NPM_CONFIG_UPDATE_NOTIFIER=false",
	"ADBLOCK=1",
	"DISABLE_OPENCOLLECTIVE=1",
}

// Pnpm runs pnpm commands in a project directory. Each operation spawns
// one child process and owns it exclusively; concurrent operations on the
// same Pnpm are independent because every invocation gets its own stream
// filter.
type Pnpm struct {
	// Dir is the project directory pnpm runs in. Required for
	// RemoveLockfile and Clean; passed to the child process otherwise.
	Dir string
	// Log receives the echoed command line before each interactive
	// spawn. Falls back to stderr when nil.
	Log Logger
	// Silent discards all child output and disables command echoing.
	Silent bool
	// Spawn overrides process execution, for tests.
	Spawn SpawnFunc
	// Invoker carries the output sinks for interactive mode. Zero value
	// uses the real process streams.
	Invoker Invoker
}

var _ PackageManager = (*Pnpm)(nil)

func (p *Pnpm) Name() string { return pnpmBin }

// Install installs the dependencies declared in package.json.
func (p *Pnpm) Install() error { return p.run("install") }

// Add installs the named packages. With no names it behaves like Install.
func (p *Pnpm) Add(pkgs []string) error { return p.AddWith(pkgs, nil) }

// AddWith installs the named packages with extra pnpm parameters placed
// before the names. With no names it behaves like Install.
func (p *Pnpm) AddWith(pkgs []string, params []string) error {
	if len(pkgs) == 0 {
		return p.Install()
	}
	args := append([]string{"add"}, params...)
	return p.run(append(args, pkgs...)...)
}

// AddDev installs the named packages as dev dependencies.
func (p *Pnpm) AddDev(pkgs []string) error {
	return p.AddWith(pkgs, []string{"--save-dev"})
}

// AddGlobal installs the named packages globally.
func (p *Pnpm) AddGlobal(pkgs []string) error {
	return p.AddWith(pkgs, []string{"--global"})
}

// Remove uninstalls the named packages.
func (p *Pnpm) Remove(pkgs []string) error {
	return p.run(append([]string{"remove"}, pkgs...)...)
}

// Version returns pnpm's version string, trimmed.
func (p *Pnpm) Version() (string, error) { return p.capture("--version") }

// Config returns the value of a pnpm config key, trimmed.
func (p *Pnpm) Config(key string) (string, error) {
	return p.capture("config", "get", key)
}

// RemoveLockfile deletes pnpm-lock.yaml under Dir. A missing lockfile is
// treated as already clean.
func (p *Pnpm) RemoveLockfile() error {
	if p.Dir == "" {
		return ErrNoDir
	}
	if err := os.Remove(filepath.Join(p.Dir, lockfile)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", lockfile, err)
	}
	return nil
}

// Clean recursively deletes node_modules under Dir. A missing directory
// is treated as already clean.
func (p *Pnpm) Clean() error {
	if p.Dir == "" {
		return ErrNoDir
	}
	if err := os.RemoveAll(filepath.Join(p.Dir, modulesDir)); err != nil {
		return fmt.Errorf("clean %s: %w", modulesDir, err)
	}
	return nil
}

// ── invocation plumbing ───────────────────────────────────────────────────────

// run spawns an interactive invocation, downgraded to silent when
// configured, and turns a non-zero exit into an error.
func (p *Pnpm) run(args ...string) error {
	mode := ModeInteractive
	if p.Silent {
		mode = ModeSilent
	}
	res, err := p.spawn(Invocation{
		Binary: pnpmBin,
		Args:   args,
		Dir:    p.Dir,
		Env:    telemetryOff,
		Mode:   mode,
	})
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("pnpm %s: exit status %d", args[0], res.ExitCode)
	}
	return nil
}

// capture spawns a captured invocation and returns its trimmed stdout.
func (p *Pnpm) capture(args ...string) (string, error) {
	res, err := p.spawn(Invocation{
		Binary: pnpmBin,
		Args:   args,
		Dir:    p.Dir,
		Env:    telemetryOff,
		Mode:   ModeCaptured,
	})
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("pnpm %s: exit status %d: %s",
			args[0], res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}

// spawn echoes the command line for interactive invocations and
// dispatches to the configured SpawnFunc or the real Invoker.
func (p *Pnpm) spawn(inv Invocation) (*Result, error) {
	if inv.Mode == ModeInteractive {
		p.logf("%s", inv.Command())
	}
	if p.Spawn != nil {
		return p.Spawn(inv)
	}
	return p.Invoker.Run(inv)
}

func (p *Pnpm) logf(format string, args ...any) {
	if p.Log != nil {
		p.Log.Printf(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
