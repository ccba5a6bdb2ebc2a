// Command fixture writes a MoneyWiz-shaped SQLite database for manual runs of
// moneywiz-decoder. It applies the Core Data schema migrations and, unless
// --empty is given, the sample rows used by the tests.
package main

import (
	"database/sql"
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/moneywiz-decoder/internal/logging"
	"github.com/carson-networks/moneywiz-decoder/internal/testutil"
)

func main() {
	logger := logging.SetupLogging()

	app := &cli.App{
		Name:  "fixture",
		Usage: "write a sample MoneyWiz database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Usage:    "database file to create or migrate",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "empty",
				Usage: "apply the schema without sample rows",
			},
		},
		Action: logging.LoggingWrapper("Fixture", logger, func(c *cli.Context, logData *logging.LogData) error {
			return build(c.String("out"), !c.Bool("empty"), logData)
		}),
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func build(path string, seed bool, logData *logging.LogData) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return err
	}
	source, err := iofs.New(testutil.Migrations, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return err
	}

	preMigrationVersion, _, err := m.Version()
	if err != nil && errors.Is(err, migrate.ErrNilVersion) {
		preMigrationVersion = 0
	} else if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil {
		return err
	}

	logData.AddData("path", path)
	logData.AddData("preMigrationVersion", preMigrationVersion)
	logData.AddData("postMigrationVersion", postMigrationVersion)

	if !seed {
		return nil
	}
	if preMigrationVersion != 0 {
		logData.AddData("seedSkipped", "database already migrated")
		return nil
	}
	if err := testutil.Seed(db); err != nil {
		return err
	}
	logData.AddData("rows", len(testutil.SampleRows()))
	return nil
}
