package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/liftbook/internal/program"
)

type fakeFetcher struct {
	fail   map[string]bool
	delay  map[string]time.Duration
	hang   map[string]bool
	calls  atomic.Int32
	active atomic.Int32
	peak   atomic.Int32
}

func (f *fakeFetcher) FetchProgram(ctx context.Context, id string) (*program.Document, error) {
	f.calls.Add(1)
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	if f.hang[id] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if d := f.delay[id]; d > 0 {
		time.Sleep(d)
	}
	if f.fail[id] {
		return nil, errors.New("boom")
	}
	return &program.Document{
		Name:        "Name " + id,
		Description: "Desc " + id,
		Goals:       program.Goals{Primary: "goal " + id},
		Days:        []program.Day{{ID: "day1"}},
	}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_DefaultsAndCopies(t *testing.T) {
	c := New(&fakeFetcher{}, Options{})
	ids := c.List()
	if len(ids) != 2 || ids[0] != "arturos-workout" || ids[1] != "mohamed-ali-workout" {
		t.Fatalf("List() = %v, want defaults", ids)
	}
	ids[0] = "mutated"
	if c.List()[0] != "arturos-workout" {
		t.Fatal("List() should return a copy")
	}
	if _, ok := c.Single(); ok {
		t.Fatal("Single() = true for two programs")
	}

	one := New(&fakeFetcher{}, Options{IDs: []string{"solo"}})
	if id, ok := one.Single(); !ok || id != "solo" {
		t.Fatalf("Single() = %q, %v, want solo, true", id, ok)
	}
}

func TestLoadSummaries_DropsFailuresKeepsOrder(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		fail []string
		want []string
	}{
		{"all succeed", []string{"a", "b", "c"}, nil, []string{"a", "b", "c"}},
		{"middle fails", []string{"a", "b", "c"}, []string{"b"}, []string{"a", "c"}},
		{"all fail", []string{"a", "b"}, []string{"a", "b"}, nil},
		{"empty", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{fail: map[string]bool{}}
			for _, id := range tt.fail {
				f.fail[id] = true
			}
			c := New(f, Options{IDs: tt.ids, Logger: quietLogger()})

			got := c.LoadSummaries(context.Background(), tt.ids)
			if len(got) != len(tt.ids)-len(tt.fail) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.ids)-len(tt.fail))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Fatalf("got[%d].ID = %q, want %q", i, got[i].ID, id)
				}
				if got[i].Name != "Name "+id || got[i].Goals.Primary != "goal "+id {
					t.Fatalf("summary %q not populated: %#v", id, got[i])
				}
			}
			if int(f.calls.Load()) != len(tt.ids) {
				t.Fatalf("fetch calls = %d, want %d", f.calls.Load(), len(tt.ids))
			}
		})
	}
}

func TestLoadSummaries_OrderIndependentOfCompletion(t *testing.T) {
	f := &fakeFetcher{delay: map[string]time.Duration{
		"slow":   30 * time.Millisecond,
		"medium": 15 * time.Millisecond,
	}}
	ids := []string{"slow", "medium", "fast"}
	c := New(f, Options{IDs: ids, Logger: quietLogger()})

	got := c.LoadSummaries(context.Background(), ids)
	if len(got) != 3 || got[0].ID != "slow" || got[1].ID != "medium" || got[2].ID != "fast" {
		t.Fatalf("order = %v, want input order", got)
	}
}

func TestLoadSummaries_TimeoutIsolatesHungFetch(t *testing.T) {
	f := &fakeFetcher{hang: map[string]bool{"stuck": true}}
	ids := []string{"ok", "stuck"}
	c := New(f, Options{IDs: ids, FetchTimeout: 20 * time.Millisecond, Logger: quietLogger()})

	start := time.Now()
	got := c.LoadSummaries(context.Background(), ids)
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("got %v, want only ok", got)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("LoadSummaries took %v, want it bounded by the fetch timeout", elapsed)
	}
}

func TestLoadSummaries_BoundedConcurrency(t *testing.T) {
	f := &fakeFetcher{delay: map[string]time.Duration{}}
	var ids []string
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("p%d", i)
		ids = append(ids, id)
		f.delay[id] = 5 * time.Millisecond
	}
	c := New(f, Options{IDs: ids, Logger: quietLogger()})

	got := c.LoadSummaries(context.Background(), ids)
	if len(got) != 20 {
		t.Fatalf("len = %d, want 20", len(got))
	}
	if peak := f.peak.Load(); peak > maxConcurrentFetch {
		t.Fatalf("peak concurrency = %d, want <= %d", peak, maxConcurrentFetch)
	}
}
