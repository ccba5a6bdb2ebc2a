package commands

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
	"github.com/carson-networks/moneywiz-decoder/internal/decoder"
	"github.com/carson-networks/moneywiz-decoder/internal/logging"
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func (a *App) inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "decode one record and dump it",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "id",
				Usage: "record Z_PK",
			},
			&cli.StringFlag{
				Name:  "gid",
				Usage: "record ZGID",
			},
		},
		Action: logging.LoggingWrapper("Inspect", a.Logger, a.inspect),
	}
}

func (a *App) inspect(c *cli.Context, logData *logging.LogData) error {
	if c.IsSet("id") == c.IsSet("gid") {
		return errors.New("inspect: pass exactly one of --id or --gid")
	}

	store, err := a.openStorage(c.Context)
	if err != nil {
		return err
	}
	defer store.Close()

	var row rowdata.Row
	if c.IsSet("id") {
		logData.AddData("id", c.Int64("id"))
		row, err = store.GetRecord(c.Context, rowdata.ID(c.Int64("id")))
	} else {
		logData.AddData("gid", c.String("gid"))
		row, err = store.GetRecordByGID(c.Context, c.String("gid"))
	}
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	ent, err := row.Int(rowdata.ColumnEnt)
	if err != nil {
		return err
	}
	typename, ok := store.TypenameFor(ent)
	if !ok {
		return fmt.Errorf("inspect: no entity registered for Z_ENT %d", ent)
	}
	logData.AddData("typename", typename)

	tolerances, err := a.cfg.Tolerances()
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "%s\n", typename)
	entity, err := decoder.New(tolerances).Decode(typename, row)
	if err != nil {
		fmt.Fprintf(out, "decode error: %v\n", err)
		var de *decodeerr.DecodeError
		if errors.As(err, &de) && de.Fields != nil {
			dumper.Fdump(out, de.Fields)
		}
		return nil
	}
	dumper.Fdump(out, entity.AsMap())
	return nil
}
