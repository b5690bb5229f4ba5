package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/alien-evolution/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(t *testing.T, store *Store, typ core.EventType, level, stage, explosions int, at time.Duration) {
	t.Helper()
	_, err := store.RecordOutcome(core.Event{
		Type:       typ,
		At:         at,
		Level:      level,
		Stage:      stage,
		Explosions: explosions,
	})
	if err != nil {
		t.Fatalf("RecordOutcome() failed: %v", err)
	}
}

func TestStoreOpenFile(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	record(t, store, core.EventRoundStarted, 0, 1, 0, 100*time.Millisecond)
	record(t, store, core.EventCaught, 1, 1, 0, 2*time.Second)
	record(t, store, core.EventRoundFinished, 1, 1, 0, 2500*time.Millisecond)

	outcomes, err := store.RecentOutcomes(2)
	if err != nil {
		t.Fatalf("RecentOutcomes() failed: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}

	// Newest first
	if outcomes[0].Kind != "round_finished" {
		t.Errorf("outcomes[0].Kind = %q, expected round_finished", outcomes[0].Kind)
	}
	if outcomes[1].Kind != "caught" || outcomes[1].Level != 1 {
		t.Errorf("outcomes[1] = %+v", outcomes[1])
	}
	if outcomes[1].At != 2*time.Second {
		t.Errorf("outcomes[1].At = %v, expected 2s", outcomes[1].At)
	}
}

func TestStoreRecentDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		record(t, store, core.EventMissed, 0, 1, 0, time.Duration(i)*time.Second)
	}

	outcomes, err := store.RecentOutcomes(0)
	if err != nil {
		t.Fatalf("RecentOutcomes() failed: %v", err)
	}
	if len(outcomes) != 10 {
		t.Errorf("expected default limit of 10, got %d", len(outcomes))
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	record(t, store, core.EventRoundStarted, 0, 1, 0, 0)
	record(t, store, core.EventMissed, 0, 1, 0, time.Second)
	record(t, store, core.EventCaught, 1, 1, 0, 2*time.Second)
	record(t, store, core.EventRoundStarted, 1, 1, 0, 3*time.Second)
	record(t, store, core.EventCaught, 5, 2, 0, 4*time.Second)
	record(t, store, core.EventEvolved, 5, 2, 0, 4*time.Second)
	record(t, store, core.EventRoundStarted, 5, 2, 0, 7*time.Second)
	record(t, store, core.EventExploded, 0, 1, 1, 9*time.Second)

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}

	want := Summary{Rounds: 3, Catches: 2, Misses: 1, Explosions: 1, BestLevel: 5, BestStage: 2}
	if sum != want {
		t.Errorf("Summary() = %+v, expected %+v", sum, want)
	}
}

func TestStoreEmptySummary(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum != (Summary{BestStage: 1}) {
		t.Errorf("empty Summary() = %+v", sum)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)
	record(t, store, core.EventCaught, 1, 1, 0, time.Second)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	outcomes, err := store.RecentOutcomes(10)
	if err != nil {
		t.Fatalf("RecentOutcomes() failed: %v", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("expected empty journal, got %d outcomes", len(outcomes))
	}
}
