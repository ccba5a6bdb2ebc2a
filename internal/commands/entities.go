package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/moneywiz-decoder/internal/decoder"
	"github.com/carson-networks/moneywiz-decoder/internal/logging"
)

func (a *App) entitiesCommand() *cli.Command {
	return &cli.Command{
		Name:   "entities",
		Usage:  "list the Z_ENT entity numbers and whether each is decoded",
		Action: logging.LoggingWrapper("Entities", a.Logger, a.entities),
	}
}

func (a *App) entities(c *cli.Context, logData *logging.LogData) error {
	store, err := a.openStorage(c.Context)
	if err != nil {
		return err
	}
	defer store.Close()

	names := store.Entities()
	logData.AddData("entities", len(names))

	out := c.App.Writer
	for _, ent := range slices.Sorted(maps.Keys(names)) {
		mark := ""
		if decoder.Supports(names[ent]) {
			mark = " *"
		}
		fmt.Fprintf(out, "%4d %s%s\n", ent, names[ent], mark)
	}
	return nil
}
