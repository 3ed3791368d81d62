package state

import (
	"sync"
	"testing"
	"time"

	"github.com/five82/liftbook/internal/program"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update([]program.Summary{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, 3)

	snap := s.Snapshot()
	if !snap.Loaded || len(snap.Summaries) != 2 || snap.Summaries[0].ID != "a" {
		t.Fatalf("snapshot = %#v, want 2 loaded summaries", snap)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.Failed() != 1 {
		t.Fatalf("Failed() = %d, want 1", snap.Failed())
	}

	// Returned snapshot should be independent of the stored one.
	snap.Summaries[0].ID = "mutated"
	if got := s.Snapshot().Summaries[0].ID; got != "a" {
		t.Fatalf("Snapshot should clone summaries; got id %q want a", got)
	}
}

func TestSnapshot_Stale(t *testing.T) {
	var s Store
	now := time.Now()
	if !s.Snapshot().Stale(now, time.Minute) {
		t.Fatal("zero snapshot should be stale")
	}

	s.Update(nil, 0)
	snap := s.Snapshot()
	if snap.Stale(now, time.Minute) {
		t.Fatal("fresh snapshot should not be stale")
	}
	if !snap.Stale(now.Add(2*time.Minute), time.Minute) {
		t.Fatal("snapshot older than maxAge should be stale")
	}
	if snap.Stale(now.Add(time.Hour), 0) {
		t.Fatal("maxAge 0 should never go stale once loaded")
	}
}

func TestSnapshot_FindAndFailed(t *testing.T) {
	snap := Snapshot{Summaries: []program.Summary{{ID: "x", Name: "X"}}, Requested: 1}
	if sum, ok := snap.Find("x"); !ok || sum.Name != "X" {
		t.Fatalf("Find(x) = %#v, %v", sum, ok)
	}
	if _, ok := snap.Find("y"); ok {
		t.Fatal("Find(y) = true, want false")
	}
	if snap.Failed() != 0 {
		t.Fatalf("Failed() = %d, want 0", snap.Failed())
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Update([]program.Summary{{ID: "a"}}, 1)
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	if snap := s.Snapshot(); !snap.Loaded || len(snap.Summaries) != 1 {
		t.Fatalf("snapshot = %#v after concurrent updates", snap)
	}
}
