package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/monster-hunter/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintRunsShowsBest(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{40, 310, 90} {
		if _, err := store.SaveRun(storage.Run{Score: score, Outcome: storage.OutcomeGameOver, Ticks: 600}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	var out bytes.Buffer
	if err := printRuns(&out, store); err != nil {
		t.Fatalf("printRuns() failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{"High Scores", "Best: 310", "Runs: 3"} {
		if !strings.Contains(text, want) {
			t.Errorf("output is missing %q:\n%s", want, text)
		}
	}
}

func TestPrintRunsEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := printRuns(&out, openStore(t)); err != nil {
		t.Fatalf("printRuns() failed: %v", err)
	}
	if strings.Contains(out.String(), "Best:") || !strings.Contains(out.String(), "No runs recorded yet") {
		t.Errorf("unexpected output for an empty history:\n%s", out.String())
	}
}

func TestPrintRunByID(t *testing.T) {
	store := openStore(t)
	id, err := store.SaveRun(storage.Run{Score: 150, Level: 1, Outcome: storage.OutcomeQuit, Ticks: 3600, Seed: 9, Difficulty: "easy"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	var out bytes.Buffer
	if err := printRun(&out, store, id); err != nil {
		t.Fatalf("printRun() failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{id, "score:      150", "level:      2", "seed:       9", "played:     1m0s"} {
		if !strings.Contains(text, want) {
			t.Errorf("output is missing %q:\n%s", want, text)
		}
	}

	if err := printRun(&out, store, uuid.NewString()); err == nil || !strings.Contains(err.Error(), "no run with id") {
		t.Errorf("unknown id error = %v", err)
	}
}
