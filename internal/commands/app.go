// Package commands is the moneywiz-decoder command line.
package commands

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/moneywiz-decoder/internal/config"
	"github.com/carson-networks/moneywiz-decoder/internal/logging"
	"github.com/carson-networks/moneywiz-decoder/internal/storage"
)

var errNoDatabase = errors.New("no database path: pass --db or set MONEYWIZ_DATABASE_PATH")

type App struct {
	Logger *logrus.Logger
	// Writer receives command output. Defaults to stdout.
	Writer io.Writer

	cfg *config.Config
}

func (a *App) CLI() *cli.App {
	writer := a.Writer
	if writer == nil {
		writer = os.Stdout
	}

	return &cli.App{
		Name:   "moneywiz-decoder",
		Usage:  "decode records from a MoneyWiz SQLite database",
		Writer: writer,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file",
				EnvVars: []string{"MONEYWIZ_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "path to the MoneyWiz SQLite database",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of decode workers",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn or error",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.decodeCommand(),
			a.inspectCommand(),
			a.entitiesCommand(),
		},
	}
}

// before loads the config file and environment, then applies the global flags
// on top.
func (a *App) before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("db") {
		cfg.DatabasePath = c.String("db")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.SetLevel(a.Logger, cfg.LogLevel); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

func (a *App) openStorage(ctx context.Context) (*storage.Storage, error) {
	if a.cfg.DatabasePath == "" {
		return nil, errNoDatabase
	}
	return storage.Open(ctx, a.cfg.Storage())
}
