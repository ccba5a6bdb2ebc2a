package model

import (
	"errors"
	"time"

	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// Record holds the identity and bookkeeping shared by every entity.
type Record struct {
	ID        ID
	GID       string
	Ent       int64
	CreatedAt time.Time

	raw rowdata.Row
}

func newRecord(row rowdata.Row) (Record, error) {
	id, err := row.ID(rowdata.ColumnPK)
	if err != nil {
		return Record{}, err
	}
	if id == 0 {
		return Record{}, decodeerr.MissingField(rowdata.ColumnPK, errors.New("zero id"))
	}
	ent, err := row.Int(rowdata.ColumnEnt)
	if err != nil {
		return Record{}, err
	}
	gid, err := row.String(rowdata.ColumnGID)
	if err != nil {
		return Record{}, err
	}
	if gid == "" {
		return Record{}, decodeerr.MissingField(rowdata.ColumnGID, errors.New("empty gid"))
	}
	createdAt, err := row.Datetime(rowdata.ColumnCreatedAt)
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:        id,
		GID:       gid,
		Ent:       ent,
		CreatedAt: createdAt,
		raw:       row,
	}, nil
}

// RecordID returns the record's primary key.
func (r Record) RecordID() ID {
	return r.ID
}

// RecordGID returns the record's sync gid.
func (r Record) RecordGID() string {
	return r.GID
}

// Filtered returns the source row without nulls, blobs and Z9_ columns.
func (r Record) Filtered() map[string]any {
	return r.raw.Filtered()
}

func (r Record) recordMap() map[string]any {
	return map[string]any{
		"id":  r.ID,
		"gid": r.GID,
	}
}
