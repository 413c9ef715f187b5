// Package pm wraps node package manager invocations behind a typed API.
// Pnpm is the concrete adapter; PackageManager is the seam another
// manager (npm, bun) would implement to slot into the same callers.
package pm

// Logger is the minimal logging capability the adapter needs. It is
// injected, never owned — when nil the adapter falls back to stderr.
type Logger interface {
	Printf(format string, args ...any)
}

// PackageManager is the operation set a manager adapter exposes.
// All add variants degrade to Install when given no package names.
type PackageManager interface {
	// Name returns the manager's executable name.
	Name() string
	// Install installs the dependencies declared in package.json.
	Install() error
	// Add installs the named packages as regular dependencies.
	Add(pkgs []string) error
	// AddWith installs the named packages with extra manager parameters
	// placed before the names.
	AddWith(pkgs []string, params []string) error
	// AddDev installs the named packages as dev dependencies.
	AddDev(pkgs []string) error
	// AddGlobal installs the named packages globally.
	AddGlobal(pkgs []string) error
	// Remove uninstalls the named packages.
	Remove(pkgs []string) error
	// Version returns the manager's version string, trimmed.
	Version() (string, error)
	// Config returns the value of a manager config key, trimmed.
	Config(key string) (string, error)
	// RemoveLockfile deletes the manager's lockfile in the project
	// directory. Requires a configured directory; a missing lockfile is
	// not an error.
	RemoveLockfile() error
	// Clean recursively deletes the installed dependency directory.
	// Requires a configured directory; a missing directory is not an error.
	Clean() error
}
