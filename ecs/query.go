package ecs

// Each visits every component in set using a snapshot of the live handles, so
// fn may destroy entities (including ones not yet visited) without corrupting
// the iteration. Handles that die mid-walk are skipped, and a recycled id is
// never mistaken for the entity that used to own it.
func Each[T any](w *World, set *SparseSet[T], fn func(e Entity, v T)) {
	if w == nil || set == nil || fn == nil || set.Len() == 0 {
		return
	}
	for _, e := range Snapshot(w, set) {
		if !w.IsAlive(e) {
			continue
		}
		v, ok := set.Get(e.ID)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// Snapshot returns the live handles currently stored in set.
func Snapshot[T any](w *World, set *SparseSet[T]) []Entity {
	if w == nil || set == nil {
		return nil
	}
	out := make([]Entity, 0, set.Len())
	for _, id := range set.Entities() {
		if e, ok := w.Handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}
