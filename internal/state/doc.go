// Package state implements the vehicle collection store shared by the UI and
// the CLI.
//
// # Overview
//
// The Store holds the raw vehicle collection together with filter, sort and
// pagination state. Every read derives its view from current state, so no
// stale result can reach the presentation layer:
//
//	raw collection ──> Filtered() ──> Sorted() ──> Paginated()
//	                       │              │
//	                       └─ Validate    └─ Column extractor + null-last compare
//
// # Core Types
//
// Store:
//   - Raw collection replaced wholesale by Load or LoadSimulated
//   - Mutators: SetSort, SetPage, SetFilters, ClearFilters, ValidateFilters
//   - Views: Filtered, Sorted, TotalPages, Paginated, Snapshot
//
// Filters / FilterPatch:
//   - Substring criteria (class, make, model), case-insensitive
//   - Inclusive year and city-mpg ranges; either bound optional
//   - Transmission synonyms: a, automatica, automática → "a"; m, manual → "m"
//   - FilterPatch merges a partial update; Set[*int](nil) clears a bound
//
// Column:
//   - Closed enumeration of sortable fields; efficiency columns coerce to
//     numbers with the unavailable sentinel and absent values treated as null
//
// # Validation
//
// A range is invalid when both bounds are set and min > max. Invalid ranges
// never raise: they populate FilterErrors (keyed year / cityMpg) and force the
// filtered view, and every view derived from it, to empty.
//
// # Sorting
//
// Sorting is stable. Null values always follow non-null values regardless of
// direction. Numbers compare numerically; everything else compares as
// lower-cased strings. Selecting the active column again flips direction,
// selecting a new one starts ascending. Changing filters clears the sort
// column so filtered results show in collection order until re-sorted.
//
// # Pagination
//
// PageSize is fixed at 20. TotalPages is never below one, even for an empty
// view. SetPage ignores targets outside [1, TotalPages].
//
// # Persistence
//
// Filters, the sort descriptor and the current page are written to Storage on
// every change under FiltersKey, SortKey and PageKey, and restored by
// NewStore. Missing or malformed values fall back to defaults silently;
// storage failures are logged and never surface to callers.
//
// # Concurrency Model
//
// The Store is guarded by a sync.RWMutex. Load holds the lock only while
// flipping the loading flag and installing results, never across the network
// call, so the UI may keep mutating filters while a load is outstanding. There
// is no cancellation of an in-flight load and no guard against overlapping
// loads: the last one to complete wins.
//
// # Usage Example
//
//	store := state.NewStore(storage)
//	store.LoadSimulated()
//	store.SetFilters(state.FilterPatch{Make: state.Set("toyota")})
//	_ = store.SetSort(state.ColumnYear)
//	snap := store.Snapshot()
//	for _, v := range snap.PaginatedVehicles {
//		fmt.Println(v.Year, v.Model)
//	}
package state
