package app

import (
	"context"
	"log/slog"
	"path/filepath"

	"go.hackfix.me/stash"
	"go.hackfix.me/stash/app/cli"
	actx "go.hackfix.me/stash/app/context"
	"go.hackfix.me/stash/store/sqlite"
)

// App is the application.
type App struct {
	ctx *actx.Context

	Exit func(int)
}

// New initializes a new application.
func New(opts ...Option) *App {
	defaultCtx := &actx.Context{
		Ctx:    context.Background(),
		Logger: slog.Default(),
	}
	app := &App{ctx: defaultCtx, Exit: func(int) {}}

	for _, opt := range opts {
		opt(app)
	}

	slog.SetDefault(app.ctx.Logger)

	return app
}

// Run parses the command line arguments and executes the selected command.
func (app *App) Run(args []string) error {
	c := &cli.CLI{}
	if err := c.Setup(app.ctx, args, app.Exit); err != nil {
		return err
	}

	if app.ctx.Store == nil {
		st, err := app.openStore(c)
		if err != nil {
			return err
		}
		app.ctx.Store = st
		defer func() {
			st.Close()
			app.ctx.Store = nil
		}()
	}

	return c.Ctx.Run(app.ctx)
}

// FatalIfErrorf terminates the application with an error message if err != nil.
func (app *App) FatalIfErrorf(err error, args ...interface{}) {
	if err != nil {
		app.ctx.Logger.Error(err.Error(), args...)
		app.Exit(1)
	}
}

// openStore resolves the driver selected on the command line and binds a
// store to it.
func (app *App) openStore(c *cli.CLI) (*stash.Store, error) {
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = stash.DefaultDataDir()
	}

	opts := []stash.Option{
		stash.WithKeyPrefix(c.Prefix),
		stash.WithLogger(app.ctx.Logger),
	}

	switch c.Driver {
	case "memory":
		opts = append(opts, stash.WithDriver(stash.DriverMemory))
	case "sqlite":
		// SQLite isn't one of the built-in driver identifiers; it is
		// injected as a concrete driver instance.
		if err := app.ctx.FS.MkdirAll(dataDir, 0o700); err != nil {
			return nil, err
		}
		drv, err := sqlite.Open(filepath.Join(dataDir, "store.db"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, stash.WithStore(drv))
	default:
		if err := app.ctx.FS.MkdirAll(dataDir, 0o700); err != nil {
			return nil, err
		}
		opts = append(opts,
			stash.WithDriver(stash.DriverBadger), stash.WithDataDir(dataDir))
	}

	return stash.New(opts...)
}
