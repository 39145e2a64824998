package ecs

import "github.com/milk9111/pipescroller/ecs/component"

// Query returns the entities holding every listed kind, in the dense order
// of the first kind's storage.
func (w *World) Query(kinds ...component.Identifier) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	out := make([]Entity, 0, sets[0].Len())
next:
	for _, e := range sets[0].denseEntities {
		for _, s := range sets[1:] {
			if !s.Has(e) {
				continue next
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns the first entity holding kind.
func (w *World) First(kind component.Identifier) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s := w.store(kind.ID(), false)
	if s.Len() == 0 {
		return 0, false
	}
	return s.denseEntities[0], true
}
