// Package state holds the catalog snapshot shared between the loader and the
// surfaces that render it.
//
// # Overview
//
// Store is a mutex-guarded container for the latest catalog load. The web
// surface serves requests concurrently and reads the snapshot on every
// selection page; a refresh replaces it wholesale. The terminal surface keeps
// its own copy in the Bubble Tea model and uses the Snapshot type only as a
// value.
//
// # Concurrency Model
//
//   - Update(): write lock, replaces the whole snapshot
//   - Snapshot(): read lock, returns a copy with its own Summaries slice
//
// The zero Store is ready to use and reports an unloaded, stale snapshot:
//
//	var store state.Store
//	if store.Snapshot().Stale(time.Now(), ttl) {
//		ids := cat.List()
//		store.Update(cat.LoadSummaries(ctx, ids), len(ids))
//	}
//
// # Partial Catalogs
//
// Programs that fail to load are dropped from Summaries; Failed() reports how
// many so the surfaces can say "2 programs unavailable" instead of silently
// showing a shorter list.
package state
