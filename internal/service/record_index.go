package service

import (
	"cmp"
	"slices"

	"github.com/carson-networks/moneywiz-decoder/internal/model"
)

// recordIndex is an immutable view of one load. Services swap the whole
// index under their lock on reload.
type recordIndex[T model.Entity] struct {
	byID    map[model.ID]T
	byGID   map[string]T
	ordered []T
}

func newRecordIndex[T model.Entity](records []T, order func(a, b T) int) *recordIndex[T] {
	idx := &recordIndex[T]{
		byID:    make(map[model.ID]T, len(records)),
		byGID:   make(map[string]T, len(records)),
		ordered: slices.Clone(records),
	}
	for _, r := range records {
		idx.byID[r.RecordID()] = r
		idx.byGID[r.RecordGID()] = r
	}
	slices.SortStableFunc(idx.ordered, order)
	return idx
}

func (idx *recordIndex[T]) get(id model.ID) (T, bool) {
	r, ok := idx.byID[id]
	return r, ok
}

func (idx *recordIndex[T]) getByGID(gid string) (T, bool) {
	r, ok := idx.byGID[gid]
	return r, ok
}

// filter returns the records in index order for which keep is true.
func (idx *recordIndex[T]) filter(keep func(T) bool) []T {
	var out []T
	for _, r := range idx.ordered {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func byRecordID[T model.Entity](a, b T) int {
	return cmp.Compare(a.RecordID(), b.RecordID())
}

// entitiesAs keeps the entities of type T.
func entitiesAs[T model.Entity](entities []model.Entity) []T {
	out := make([]T, 0, len(entities))
	for _, e := range entities {
		if typed, ok := e.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
