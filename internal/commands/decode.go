package commands

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
	"github.com/carson-networks/moneywiz-decoder/internal/decoder"
	"github.com/carson-networks/moneywiz-decoder/internal/logging"
	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/operator"
	"github.com/carson-networks/moneywiz-decoder/internal/service"
)

func (a *App) decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "decode every supported record and report the result",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print decoded records as JSON lines instead of a summary",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit non-zero when any row fails to decode",
			},
		},
		Action: logging.LoggingWrapper("Decode", a.Logger, a.decode),
	}
}

func (a *App) decode(c *cli.Context, logData *logging.LogData) error {
	store, err := a.openStorage(c.Context)
	if err != nil {
		return err
	}
	defer store.Close()

	tolerances, err := a.cfg.Tolerances()
	if err != nil {
		return err
	}
	pool := operator.NewOperatorDelegator(decoder.New(tolerances), a.cfg.Workers, a.cfg.QueueSize)
	pool.Start()
	defer pool.Stop()

	svc := service.NewService(store, pool, a.Logger)
	reports, err := svc.Load(c.Context)
	if err != nil {
		return err
	}

	failed := 0
	for _, report := range reports {
		failed += len(report.Failures)
	}
	logData.AddData("failed", failed)

	out := c.App.Writer
	if c.Bool("json") {
		err = writeRecords(out, svc)
	} else {
		err = writeSummary(out, reports)
	}
	if err != nil {
		return err
	}

	if c.Bool("strict") && failed > 0 {
		return fmt.Errorf("%d rows failed to decode", failed)
	}
	return nil
}

// writeRecords prints one JSON object per decoded record: groups with their
// owner's login, then holdings, then transactions by occurrence.
func writeRecords(w io.Writer, svc *service.Service) error {
	enc := json.NewEncoder(w)

	for _, g := range svc.Group.All() {
		m := g.AsMap()
		if login, ok := svc.Group.OwnerLogin(g); ok {
			m["owner_login"] = login
		}
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode %s %d: %w", g.EntityName(), g.RecordID(), err)
		}
	}

	var entities []model.Entity
	for _, h := range svc.Holding.All() {
		entities = append(entities, h)
	}
	for _, tx := range svc.Transaction.All(time.Time{}) {
		entities = append(entities, tx)
	}

	for _, e := range entities {
		if err := enc.Encode(e.AsMap()); err != nil {
			return fmt.Errorf("encode %s %d: %w", e.EntityName(), e.RecordID(), err)
		}
	}
	return nil
}

func writeSummary(w io.Writer, reports []*service.LoadReport) error {
	for _, report := range reports {
		fmt.Fprintf(w, "%s: decoded %d, skipped %d, failed %d\n",
			report.Service, report.Decoded, report.Skipped, len(report.Failures))
		for _, name := range slices.Sorted(maps.Keys(report.Counts)) {
			fmt.Fprintf(w, "  %-32s %d\n", name, report.Counts[name])
		}
		for _, failure := range report.Failures {
			fmt.Fprintf(w, "  FAILED %s %d: %s\n", failure.Typename, failure.ID, describeFailure(failure))
		}
	}
	return nil
}

func describeFailure(failure service.RowFailure) string {
	if failure.Code == "" {
		return failure.Err.Error()
	}
	var de *decodeerr.DecodeError
	if errors.As(failure.Err, &de) {
		switch {
		case de.Invariant != "":
			return fmt.Sprintf("%s %s", failure.Code, de.Invariant)
		case de.Column != "":
			return fmt.Sprintf("%s %s", failure.Code, de.Column)
		}
	}
	return string(failure.Code)
}
