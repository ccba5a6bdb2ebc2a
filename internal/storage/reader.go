package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// CategoryAssignment is one category split of a transaction.
type CategoryAssignment struct {
	Category rowdata.ID
	Amount   decimal.Decimal
}

// QueryObjects returns every ZSYNCOBJECT row whose entity is one of
// typenames, ordered by Z_PK. Unknown typenames match nothing.
func (s *Storage) QueryObjects(ctx context.Context, typenames []string) ([]rowdata.Row, error) {
	var ents []any
	for _, name := range typenames {
		if ent, ok := s.typenameToEnt[name]; ok {
			ents = append(ents, ent)
		}
	}
	if len(ents) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(
		`SELECT * FROM ZSYNCOBJECT WHERE Z_ENT IN (%s) ORDER BY Z_PK`,
		strings.TrimSuffix(strings.Repeat("?,", len(ents)), ","),
	)
	rows, err := s.DB.QueryContext(ctx, query, ents...)
	if err != nil {
		return nil, fmt.Errorf("Storage.QueryObjects: %w", err)
	}
	defer rows.Close()

	out, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Storage.QueryObjects: %w", err)
	}
	return out, nil
}

// GetRecord returns the ZSYNCOBJECT row with primary key id.
func (s *Storage) GetRecord(ctx context.Context, id rowdata.ID) (rowdata.Row, error) {
	row, err := s.getOne(ctx, `SELECT * FROM ZSYNCOBJECT WHERE Z_PK = ?`, int64(id))
	if err != nil {
		return nil, fmt.Errorf("Storage.GetRecord: %w", err)
	}
	return row, nil
}

// GetRecordByGID returns the ZSYNCOBJECT row with the given gid.
func (s *Storage) GetRecordByGID(ctx context.Context, gid string) (rowdata.Row, error) {
	row, err := s.getOne(ctx, `SELECT * FROM ZSYNCOBJECT WHERE ZGID = ?`, gid)
	if err != nil {
		return nil, fmt.Errorf("Storage.GetRecordByGID: %w", err)
	}
	return row, nil
}

func (s *Storage) getOne(ctx context.Context, query string, arg any) (rowdata.Row, error) {
	rows, err := s.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out, err := scanRows(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrRecordNotFound
	}
	return out[0], nil
}

// CategoryAssignments returns the category splits of every transaction,
// keyed by transaction id.
func (s *Storage) CategoryAssignments(ctx context.Context) (map[rowdata.ID][]CategoryAssignment, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT ZCATEGORY, ZTRANSACTION, ZAMOUNT FROM ZCATEGORYASSIGMENT WHERE ZTRANSACTION IS NOT NULL ORDER BY Z_PK`)
	if err != nil {
		return nil, fmt.Errorf("Storage.CategoryAssignments: %w", err)
	}
	defer rows.Close()

	raw, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Storage.CategoryAssignments: %w", err)
	}

	out := make(map[rowdata.ID][]CategoryAssignment)
	for _, row := range raw {
		transaction, err := row.ID("ZTRANSACTION")
		if err != nil {
			return nil, fmt.Errorf("Storage.CategoryAssignments: %w", err)
		}
		category, err := row.ID("ZCATEGORY")
		if err != nil {
			return nil, fmt.Errorf("Storage.CategoryAssignments: %w", err)
		}
		amount, err := row.Decimal("ZAMOUNT")
		if err != nil {
			return nil, fmt.Errorf("Storage.CategoryAssignments: %w", err)
		}
		out[transaction] = append(out[transaction], CategoryAssignment{Category: category, Amount: amount})
	}
	return out, nil
}

// RefundMap returns refund transaction id -> refunded withdraw id.
func (s *Storage) RefundMap(ctx context.Context) (map[rowdata.ID]rowdata.ID, error) {
	out := make(map[rowdata.ID]rowdata.ID)
	err := s.eachPair(ctx, `SELECT ZREFUNDTRANSACTION, ZWITHDRAWTRANSACTION FROM ZWITHDRAWREFUNDTRANSACTIONLINK`,
		func(refund, withdraw int64) {
			out[rowdata.ID(refund)] = rowdata.ID(withdraw)
		})
	if err != nil {
		return nil, fmt.Errorf("Storage.RefundMap: %w", err)
	}
	return out, nil
}

// TagsMap returns transaction id -> tag ids.
func (s *Storage) TagsMap(ctx context.Context) (map[rowdata.ID][]rowdata.ID, error) {
	out := make(map[rowdata.ID][]rowdata.ID)
	err := s.eachPair(ctx, `SELECT Z_36TRANSACTIONS, Z_35TAGS FROM Z_36TAGS ORDER BY Z_36TRANSACTIONS, Z_35TAGS`,
		func(transaction, tag int64) {
			out[rowdata.ID(transaction)] = append(out[rowdata.ID(transaction)], rowdata.ID(tag))
		})
	if err != nil {
		return nil, fmt.Errorf("Storage.TagsMap: %w", err)
	}
	return out, nil
}

func (s *Storage) eachPair(ctx context.Context, query string, fn func(a, b int64)) error {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a, b sql.NullInt64
		if err := rows.Scan(&a, &b); err != nil {
			return err
		}
		if !a.Valid || !b.Valid {
			continue
		}
		fn(a.Int64, b.Int64)
	}
	return rows.Err()
}

// Users returns user id -> sync login.
func (s *Storage) Users(ctx context.Context) (map[rowdata.ID]string, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT Z_PK, ZSYNCLOGIN FROM ZUSER`)
	if err != nil {
		return nil, fmt.Errorf("Storage.Users: %w", err)
	}
	defer rows.Close()

	out := make(map[rowdata.ID]string)
	for rows.Next() {
		var id int64
		var login sql.NullString
		if err := rows.Scan(&id, &login); err != nil {
			return nil, fmt.Errorf("Storage.Users: %w", err)
		}
		out[rowdata.ID(id)] = login.String
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Storage.Users: %w", err)
	}
	return out, nil
}
