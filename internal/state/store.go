package state

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/five82/carlot/internal/carapi"
	"github.com/five82/carlot/internal/geo"
)

// PageSize is the number of vehicles per page.
const PageSize = 20

const unknownLoadError = "unknown error"

// ErrNoFetcher is returned by Load when no data source is configured.
var ErrNoFetcher = errors.New("no vehicle source configured")

// Snapshot is a consistent view of the store for the presentation layer.
type Snapshot struct {
	Vehicles          []carapi.Vehicle
	Loading           bool
	Error             string
	CurrentPage       int
	TotalPages        int
	FilteredCount     int
	PaginatedVehicles []carapi.Vehicle
	Filters           Filters
	FilterErrors      FilterErrors
	Sort              Sort
}

// Store holds the raw vehicle collection plus filter, sort and pagination
// state. Derived views are recomputed from current state on every read.
type Store struct {
	mu      sync.RWMutex
	storage Storage

	vehicles     []carapi.Vehicle
	loading      bool
	err          string
	currentPage  int
	filters      Filters
	filterErrors FilterErrors
	sort         Sort
}

// NewStore builds a Store and restores persisted preferences from storage.
// A nil storage disables persistence.
func NewStore(storage Storage) *Store {
	saved := restore(storage)
	s := &Store{
		storage:     storage,
		currentPage: saved.page,
		filters:     saved.filters,
		sort:        saved.sort,
	}
	s.filterErrors = s.filters.Validate()
	return s
}

// Load fetches vehicles from fetcher and replaces the collection. Records
// without coordinates get synthesized ones. On failure the collection is left
// untouched and the error message is recorded. The loading flag is held for
// the duration of the fetch, which runs without the store lock.
func (s *Store) Load(ctx context.Context, fetcher carapi.CarFetcher, query carapi.Query) error {
	if fetcher == nil {
		return ErrNoFetcher
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	fetched, err := fetcher.FetchCars(ctx, query)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = unknownLoadError
		}
		s.mu.Lock()
		s.err = msg
		s.mu.Unlock()
		return err
	}

	vehicles := withCoordinates(fetched)

	s.mu.Lock()
	s.vehicles = vehicles
	s.setPageLocked(1)
	s.mu.Unlock()
	return nil
}

// LoadSimulated replaces the collection with the bundled dataset.
func (s *Store) LoadSimulated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = carapi.SimulatedVehicles()
	s.setPageLocked(1)
}

// SetSort sorts by column, toggling direction when the column is already
// active and starting ascending otherwise.
func (s *Store) SetSort(column Column) error {
	if !column.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sort.Column == column {
		s.sort.Asc = !s.sort.Asc
	} else {
		s.sort = Sort{Column: column, Asc: true}
	}
	saveSort(s.storage, s.sort)
	s.setPageLocked(1)
	return nil
}

// SetPage moves to page when it lies in [1, TotalPages]; other values are
// ignored. It reports whether the page was applied.
func (s *Store) SetPage(page int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 || page > s.totalPagesLocked() {
		return false
	}
	s.setPageLocked(page)
	return true
}

// SetFilters merges patch into the current filters, re-validates, returns to
// page one and clears the active sort column.
func (s *Store) SetFilters(patch FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = patch.Apply(s.filters)
	saveFilters(s.storage, s.filters)
	s.filterErrors = s.filters.Validate()
	s.setPageLocked(1)
	s.sort.Column = ColumnNone
	saveSort(s.storage, s.sort)
}

// ClearFilters resets every criterion and validation error.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = Filters{}
	saveFilters(s.storage, s.filters)
	s.filterErrors = FilterErrors{}
	s.setPageLocked(1)
}

// ValidateFilters recomputes the validation errors and reports whether the
// current filters are valid.
func (s *Store) ValidateFilters() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterErrors = s.filters.Validate()
	return s.filterErrors.Empty()
}

// Filtered returns the records matching every active criterion, or nothing
// when a range is invalid.
func (s *Store) Filtered() []carapi.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filteredLocked()
}

// Sorted returns the filtered view ordered by the active sort.
func (s *Store) Sorted() []carapi.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortVehicles(s.filteredLocked(), s.sort)
}

// TotalPages returns the page count of the sorted view, never less than one.
func (s *Store) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalPagesLocked()
}

// Paginated returns the current page of the sorted view.
func (s *Store) Paginated() []carapi.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := s.filteredLocked()
	return paginate(filtered, sortVehicles(filtered, s.sort), s.currentPage)
}

// CurrentPage returns the 1-based current page.
func (s *Store) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// Filters returns a copy of the active filters.
func (s *Store) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.clone()
}

// Sort returns the active sort descriptor.
func (s *Store) Sort() Sort {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort
}

// Snapshot returns every value the presentation layer reads, computed from a
// single consistent state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filteredLocked()
	sorted := sortVehicles(filtered, s.sort)
	return Snapshot{
		Vehicles:          cloneVehicles(s.vehicles),
		Loading:           s.loading,
		Error:             s.err,
		CurrentPage:       s.currentPage,
		TotalPages:        pageCount(len(sorted)),
		FilteredCount:     len(filtered),
		PaginatedVehicles: paginate(filtered, sorted, s.currentPage),
		Filters:           s.filters.clone(),
		FilterErrors:      s.filterErrors,
		Sort:              s.sort,
	}
}

func (s *Store) filteredLocked() []carapi.Vehicle {
	if !s.filters.Validate().Empty() {
		return []carapi.Vehicle{}
	}
	out := make([]carapi.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if s.filters.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s *Store) totalPagesLocked() int {
	return pageCount(len(s.filteredLocked()))
}

func (s *Store) setPageLocked(page int) {
	s.currentPage = page
	savePage(s.storage, page)
}

func pageCount(n int) int {
	pages := (n + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// paginate slices the sorted view for page, falling back to the filtered view
// when the first page of the sorted view is unexpectedly empty.
func paginate(filtered, sorted []carapi.Vehicle, page int) []carapi.Vehicle {
	out := pageSlice(sorted, page)
	if len(out) == 0 && len(filtered) > 0 && page == 1 {
		out = pageSlice(filtered, page)
	}
	return out
}

func pageSlice(vehicles []carapi.Vehicle, page int) []carapi.Vehicle {
	start := (page - 1) * PageSize
	if start < 0 || start >= len(vehicles) {
		return []carapi.Vehicle{}
	}
	end := min(start+PageSize, len(vehicles))
	return cloneVehicles(vehicles[start:end])
}

// withCoordinates fills missing coordinates, keyed by id or, failing that,
// by position in the batch.
func withCoordinates(fetched []carapi.Vehicle) []carapi.Vehicle {
	out := make([]carapi.Vehicle, len(fetched))
	for i, v := range fetched {
		if !v.HasCoordinates() {
			key := strconv.Itoa(i)
			if v.ID != 0 {
				key = strconv.Itoa(v.ID)
			}
			c := geo.Synthesize(key)
			v.Latitude, v.Longitude = c.Latitude, c.Longitude
		}
		out[i] = v
	}
	return out
}

func cloneVehicles(vehicles []carapi.Vehicle) []carapi.Vehicle {
	if vehicles == nil {
		return nil
	}
	dup := make([]carapi.Vehicle, len(vehicles))
	copy(dup, vehicles)
	return dup
}
