package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
	"github.com/carson-networks/moneywiz-decoder/internal/logging"
	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/operator"
	"github.com/carson-networks/moneywiz-decoder/internal/operator/actions"
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
	"github.com/carson-networks/moneywiz-decoder/internal/storage"
)

// RowFailure is a row that could not be decoded.
type RowFailure struct {
	ID       model.ID
	Typename string
	// Code is empty when the failure is not a decode error.
	Code decodeerr.Code
	Err  error
}

// LoadReport summarises one Load call. Failed rows never abort a load; they
// are listed here instead.
type LoadReport struct {
	RunID    uuid.UUID
	Service  string
	Decoded  int
	Skipped  int
	Counts   map[string]int
	Failures []RowFailure
	Duration time.Duration
}

// loader reads rows for a set of entities and decodes them on the pool.
type loader struct {
	source storage.IRecordSource
	pool   *operator.OperatorDelegator
	logger *logrus.Logger
}

func (l *loader) load(ctx context.Context, serviceName string, typenames []string) ([]model.Entity, *LoadReport, error) {
	start := time.Now()
	logData := logging.NewLogData(l.logger)
	endTimer := logData.AddTiming("duration")

	report := &LoadReport{
		RunID:   uuid.Must(uuid.NewV4()),
		Service: serviceName,
		Counts:  make(map[string]int),
	}
	logData.AddData("runID", report.RunID.String())

	rows, err := l.source.QueryObjects(ctx, typenames)
	if err != nil {
		endTimer()
		logData.Log().WithError(err).Errorf("Service.%s.Load.Error", serviceName)
		return nil, nil, err
	}

	batch := make([]actions.IAction, len(rows))
	for i, row := range rows {
		batch[i] = &actions.DecodeRow{Typename: l.typenameOf(row), Row: row}
	}
	results := l.pool.ProcessAll(ctx, batch)
	if err := ctx.Err(); err != nil {
		endTimer()
		logData.Log().WithError(err).Errorf("Service.%s.Load.Cancelled", serviceName)
		return nil, nil, err
	}

	entities := make([]model.Entity, 0, len(results))
	for i, res := range results {
		if res.Err == nil {
			entities = append(entities, res.Entity)
			report.Counts[res.Entity.EntityName()]++
			continue
		}
		if errors.Is(res.Err, decodeerr.ErrNotImplemented) {
			report.Skipped++
			continue
		}

		failure := RowFailure{
			ID:       rowID(rows[i]),
			Typename: batch[i].(*actions.DecodeRow).Typename,
			Err:      res.Err,
		}
		failure.Code, _ = decodeerr.CodeOf(res.Err)
		report.Failures = append(report.Failures, failure)
		l.logFailure(report.RunID, serviceName, failure)
	}
	report.Decoded = len(entities)
	report.Duration = time.Since(start)

	endTimer()
	logData.AddData("decoded", report.Decoded)
	logData.AddData("skipped", report.Skipped)
	logData.AddData("failed", len(report.Failures))
	logData.Log().Infof("Service.%s.Load.Complete", serviceName)

	return entities, report, nil
}

func (l *loader) typenameOf(row rowdata.Row) string {
	ent, err := row.Int(rowdata.ColumnEnt)
	if err != nil {
		return ""
	}
	name, _ := l.source.TypenameFor(ent)
	return name
}

func (l *loader) logFailure(runID uuid.UUID, serviceName string, failure RowFailure) {
	fields := logrus.Fields{
		"runID":    runID.String(),
		"rowID":    failure.ID,
		"typename": failure.Typename,
	}
	if failure.Code != "" {
		fields["code"] = failure.Code
	}
	var de *decodeerr.DecodeError
	if errors.As(failure.Err, &de) {
		if de.Invariant != "" {
			fields["invariant"] = de.Invariant
		}
		if de.Column != "" {
			fields["column"] = de.Column
		}
	}
	l.logger.WithFields(fields).WithError(failure.Err).Warnf("Service.%s.Load.RowFailure", serviceName)
}

func rowID(row rowdata.Row) model.ID {
	id, err := row.ID(rowdata.ColumnPK)
	if err != nil {
		return 0
	}
	return id
}
