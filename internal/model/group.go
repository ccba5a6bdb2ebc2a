package model

import (
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

const (
	colGroupName         = "ZNAME4"
	colGroupID           = "ZGROUPID3"
	colGroupDisplayOrder = "ZDISPLAYORDER4"
	colGroupUser         = "ZUSER5"
)

// Group is a named grouping of accounts owned by a user.
type Group struct {
	Record
	Name         string
	User         ID
	GroupID      *int64
	DisplayOrder *int64
}

// NewGroup decodes a Group row. Name and user are required.
func NewGroup(row rowdata.Row) (Group, error) {
	record, err := newRecord(row)
	if err != nil {
		return Group{}, err
	}
	g := Group{Record: record}
	if g.Name, err = row.String(colGroupName); err != nil {
		return Group{}, err
	}
	if g.User, err = row.ID(colGroupUser); err != nil {
		return Group{}, err
	}
	if g.GroupID, err = row.NullableInt(colGroupID); err != nil {
		return Group{}, err
	}
	if g.DisplayOrder, err = row.NullableInt(colGroupDisplayOrder); err != nil {
		return Group{}, err
	}
	return g, nil
}

func (Group) EntityName() string { return EntityGroup }

func (g Group) AsMap() map[string]any {
	m := g.recordMap()
	m["name"] = g.Name
	m["user"] = g.User
	m["group_id"] = int64Value(g.GroupID)
	m["display_order"] = int64Value(g.DisplayOrder)
	return m
}
