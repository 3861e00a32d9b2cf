package stash

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"go.hackfix.me/stash/store"
)

// Driver identifies one of the built-in backing stores.
type Driver string

const (
	// DriverBadger is the persistent on-disk driver.
	DriverBadger Driver = "badger"
	// DriverMemory is the ephemeral in-process driver.
	DriverMemory Driver = "memory"
)

// DefaultKeyPrefix is the namespace used when none is configured.
const DefaultKeyPrefix = "stash/"

type config struct {
	driver  Driver
	prefix  string
	dataDir string
	store   store.Driver
	logger  *slog.Logger
}

// Option is a function that allows configuring the store.
type Option func(*config)

// WithDriver selects one of the built-in backing store drivers. Any
// identifier other than DriverBadger or DriverMemory causes New to fail
// with an InvalidArgumentError.
func WithDriver(d Driver) Option {
	return func(cfg *config) {
		cfg.driver = d
	}
}

// WithKeyPrefix sets the string prepended to every bare key. Surrounding
// whitespace is trimmed, and the result is stored verbatim. An empty
// result is allowed and disables namespacing entirely: the store then
// sees every key in the driver.
func WithKeyPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.prefix = strings.TrimSpace(prefix)
	}
}

// WithDataDir sets the directory the badger driver stores its data in.
func WithDataDir(path string) Option {
	return func(cfg *config) {
		cfg.dataDir = path
	}
}

// WithStore injects a concrete driver instance, bypassing identifier
// resolution. This is how custom drivers and test substitutes are
// plugged in. The store takes ownership of the driver and closes it on
// Close.
func WithStore(d store.Driver) Option {
	return func(cfg *config) {
		cfg.store = d
	}
}

// WithLogger sets the logger used to report failed operations. If not
// provided, failures are not logged.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// DefaultDataDir returns the default location of the badger driver's
// data.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, "stash", "store")
}
