package model

import (
	"github.com/diagraft/diagraft/pkg/errors"
)

// Index maps entity ids to their records for coordinate lookups.
type Index map[string]Entity

// BuildIndex validates the entity list and builds the id lookup table.
// Every entity must carry both an id and a position; the first offender
// aborts with an error naming the record. A later entry with a duplicate
// id overwrites the earlier one without warning.
func BuildIndex(entities []Entity) (Index, error) {
	idx := make(Index, len(entities))
	for i, e := range entities {
		if err := errors.ValidateEntityID(e.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidEntity, err, "entity #%d", i)
		}
		if e.Pos == nil {
			return nil, errors.New(errors.ErrCodeInvalidEntity, "entity %q has no pos", e.ID)
		}
		idx[e.ID] = e
	}
	return idx, nil
}

// Pos returns the position of the entity with the given id.
func (idx Index) Pos(id string) (Point, bool) {
	e, ok := idx[id]
	if !ok || e.Pos == nil {
		return Point{}, false
	}
	return *e.Pos, true
}
