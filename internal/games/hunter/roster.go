package hunter

import "github.com/vovakirdan/monster-hunter/internal/core"

// Bounded is anything with a world-space collision rectangle.
type Bounded interface {
	Bounds() core.Rect
}

// Group is an ordered collection of live entities of one kind.
// Iteration order is insertion order, which keeps collision resolution deterministic.
type Group[T Bounded] struct {
	items []T
}

// Add appends entities to the group.
func (g *Group[T]) Add(items ...T) {
	g.items = append(g.items, items...)
}

// Len returns the number of live entities.
func (g *Group[T]) Len() int {
	return len(g.items)
}

// Empty reports whether the group has no entities.
func (g *Group[T]) Empty() bool {
	return len(g.items) == 0
}

// Items returns the backing slice. Callers must not keep it across removals.
func (g *Group[T]) Items() []T {
	return g.items
}

// Each calls fn for every entity in order.
func (g *Group[T]) Each(fn func(T)) {
	for _, it := range g.items {
		fn(it)
	}
}

// RemoveIf drops every entity for which pred returns true and reports how many went.
func (g *Group[T]) RemoveIf(pred func(T) bool) int {
	kept := g.items[:0]
	for _, it := range g.items {
		if !pred(it) {
			kept = append(kept, it)
		}
	}
	removed := len(g.items) - len(kept)
	// Zero the tail so dropped pointers can be collected
	var zero T
	for i := len(kept); i < len(g.items); i++ {
		g.items[i] = zero
	}
	g.items = kept
	return removed
}

// Clear removes every entity.
func (g *Group[T]) Clear() {
	clear(g.items)
	g.items = g.items[:0]
}

// Overlapping returns the entities whose bounds intersect r, in order.
func (g *Group[T]) Overlapping(r core.Rect) []T {
	var hits []T
	for _, it := range g.items {
		if it.Bounds().Intersects(r) {
			hits = append(hits, it)
		}
	}
	return hits
}

// First returns the oldest entity, if any.
func (g *Group[T]) First() (T, bool) {
	if len(g.items) == 0 {
		var zero T
		return zero, false
	}
	return g.items[0], true
}
