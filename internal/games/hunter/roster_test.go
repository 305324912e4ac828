package hunter

import (
	"testing"

	"github.com/vovakirdan/monster-hunter/internal/core"
)

func enemyAt(x int) *Enemy {
	return &Enemy{Body: Body{Rect: core.NewRect(x, 0, 10, 10)}}
}

func TestGroupRemoveIfKeepsOrder(t *testing.T) {
	var g Group[*Enemy]
	g.Add(enemyAt(0), enemyAt(10), enemyAt(20), enemyAt(30))

	removed := g.RemoveIf(func(e *Enemy) bool { return e.Rect.X == 10 || e.Rect.X == 30 })
	if removed != 2 {
		t.Errorf("removed = %d, expected 2", removed)
	}
	if g.Len() != 2 {
		t.Fatalf("len = %d, expected 2", g.Len())
	}
	if g.Items()[0].Rect.X != 0 || g.Items()[1].Rect.X != 20 {
		t.Errorf("order not preserved: %d, %d", g.Items()[0].Rect.X, g.Items()[1].Rect.X)
	}
}

func TestGroupOverlapping(t *testing.T) {
	var g Group[*Enemy]
	g.Add(enemyAt(0), enemyAt(8), enemyAt(50))

	hits := g.Overlapping(core.NewRect(5, 5, 5, 5))
	if len(hits) != 2 {
		t.Fatalf("hits = %d, expected 2", len(hits))
	}
	if hits[0].Rect.X != 0 || hits[1].Rect.X != 8 {
		t.Error("hits should come back in insertion order")
	}
	if len(g.Overlapping(core.NewRect(100, 100, 5, 5))) != 0 {
		t.Error("distant rect should not overlap")
	}
}

func TestGroupClearAndFirst(t *testing.T) {
	var g Group[*Enemy]
	if _, ok := g.First(); ok {
		t.Error("empty group should have no first entity")
	}

	g.Add(enemyAt(1), enemyAt(2))
	if first, ok := g.First(); !ok || first.Rect.X != 1 {
		t.Error("First should return the oldest entity")
	}

	g.Clear()
	if !g.Empty() {
		t.Error("group should be empty after Clear")
	}
	count := 0
	g.Each(func(*Enemy) { count++ })
	if count != 0 {
		t.Errorf("Each visited %d entities after Clear", count)
	}
}
