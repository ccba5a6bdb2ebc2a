package storage

import (
	"context"

	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// IRecordSource is the read surface the services load records through.
//
//go:generate mockery --name IRecordSource --inpackage --with-expecter
type IRecordSource interface {
	TypenameFor(ent int64) (string, bool)
	EntFor(typename string) (int64, bool)
	QueryObjects(ctx context.Context, typenames []string) ([]rowdata.Row, error)
	GetRecord(ctx context.Context, id rowdata.ID) (rowdata.Row, error)
	GetRecordByGID(ctx context.Context, gid string) (rowdata.Row, error)
	CategoryAssignments(ctx context.Context) (map[rowdata.ID][]CategoryAssignment, error)
	RefundMap(ctx context.Context) (map[rowdata.ID]rowdata.ID, error)
	TagsMap(ctx context.Context) (map[rowdata.ID][]rowdata.ID, error)
	Users(ctx context.Context) (map[rowdata.ID]string, error)
}

var _ IRecordSource = (*Storage)(nil)
