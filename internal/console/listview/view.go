// Package listview turns the last-fetched collection snapshot into the
// searched, filtered, sorted, paginated slice a list screen renders.
// Derivation is a pure function of (snapshot, criteria); the view only
// adds memoization and the load-generation bookkeeping that keeps late
// fetch responses from resurrecting a torn-down screen's state.
package listview

import (
	"sort"
	"strings"
)

// PageSize is the fixed number of records per page.
const PageSize = 10

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Criteria is the current UI state of a list screen. Any change to the
// search text or a filter resets the page to 1; reselecting the active
// sort field toggles its direction.
type Criteria struct {
	Search    string
	Filters   map[string]string
	SortField string
	SortDir   Direction
	Page      int
}

// Key is a comparable sort key. Records sort numerically when both keys
// are numeric and lexicographically otherwise; ISO-8601 timestamps sort
// correctly as strings.
type Key struct {
	S       string
	N       int64
	Numeric bool
}

func StringKey(s string) Key { return Key{S: s} }
func NumberKey(n int64) Key  { return Key{N: n, Numeric: true} }

// compare returns -1/0/1. Equal keys return 0 so the stable sort keeps
// prior relative order.
func (k Key) compare(other Key) int {
	if k.Numeric && other.Numeric {
		switch {
		case k.N < other.N:
			return -1
		case k.N > other.N:
			return 1
		}
		return 0
	}
	return strings.Compare(k.S, other.S)
}

// Schema describes how one record type exposes its fields to the pipeline.
type Schema[T any] struct {
	// DefaultSort is the field a fresh view sorts by, ascending.
	DefaultSort string

	// Search returns the values matched (case-insensitively, OR semantics)
	// against the search text.
	Search func(T) []string

	// Filter returns the record's value for a categorical filter field.
	Filter func(T, string) string

	// Sort returns the record's key for a sort field.
	Sort func(T, string) Key
}

// Derived is the projection handed to the renderer.
type Derived[T any] struct {
	Filtered   []T
	Page       []T
	PageNum    int
	TotalPages int
}

// View owns the collection snapshot for one list screen.
type View[T any] struct {
	schema   Schema[T]
	records  []T
	criteria Criteria

	gen int

	dirty   bool
	derived Derived[T]
}

// New returns a view with default criteria: empty search, no filters,
// the schema's default sort ascending, page 1.
func New[T any](schema Schema[T]) *View[T] {
	return &View[T]{
		schema: schema,
		criteria: Criteria{
			Filters:   map[string]string{},
			SortField: schema.DefaultSort,
			SortDir:   Asc,
			Page:      1,
		},
		dirty: true,
	}
}

func (v *View[T]) Criteria() Criteria { return v.criteria }

// BeginLoad marks the start of a fetch and returns its generation token.
// Starting a newer load (or tearing the view down via Close) invalidates
// all earlier tokens.
func (v *View[T]) BeginLoad() int {
	v.gen++
	return v.gen
}

// ApplyLoad replaces the snapshot wholesale if token still belongs to the
// newest load. A stale token is discarded and false is returned.
func (v *View[T]) ApplyLoad(token int, records []T) bool {
	if token != v.gen {
		return false
	}
	v.records = records
	v.dirty = true
	return true
}

// Close invalidates outstanding load tokens so in-flight responses are
// dropped after the owning screen goes away.
func (v *View[T]) Close() {
	v.gen++
}

// SetSearch updates the search text and resets to page 1.
func (v *View[T]) SetSearch(text string) {
	if v.criteria.Search == text {
		return
	}
	v.criteria.Search = text
	v.criteria.Page = 1
	v.dirty = true
}

// SetFilter sets a categorical filter; an empty value clears it.
// Either way the page resets to 1.
func (v *View[T]) SetFilter(field, value string) {
	if value == "" {
		delete(v.criteria.Filters, field)
	} else {
		v.criteria.Filters[field] = value
	}
	v.criteria.Page = 1
	v.dirty = true
}

// SortBy sorts by field ascending, or toggles direction when field is
// already the active sort.
func (v *View[T]) SortBy(field string) {
	if v.criteria.SortField == field {
		if v.criteria.SortDir == Asc {
			v.criteria.SortDir = Desc
		} else {
			v.criteria.SortDir = Asc
		}
	} else {
		v.criteria.SortField = field
		v.criteria.SortDir = Asc
	}
	v.dirty = true
}

// SetPage moves to the requested page. Non-positive pages are ignored.
func (v *View[T]) SetPage(page int) {
	if page < 1 || page == v.criteria.Page {
		return
	}
	v.criteria.Page = page
	v.dirty = true
}

// Derive recomputes the projection when the snapshot or criteria changed
// since the last call, and otherwise returns the memoized result.
func (v *View[T]) Derive() Derived[T] {
	if !v.dirty {
		return v.derived
	}
	v.derived = derive(v.records, v.criteria, v.schema)
	v.dirty = false
	return v.derived
}

// derive is the pure pipeline: search, filters, stable sort, page slice.
func derive[T any](records []T, c Criteria, schema Schema[T]) Derived[T] {
	needle := strings.ToLower(c.Search)

	filtered := make([]T, 0, len(records))
	for _, r := range records {
		if needle != "" && !matchesSearch(r, needle, schema) {
			continue
		}
		if !matchesFilters(r, c.Filters, schema) {
			continue
		}
		filtered = append(filtered, r)
	}

	dir := 1
	if c.SortDir == Desc {
		dir = -1
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		a := schema.Sort(filtered[i], c.SortField)
		b := schema.Sort(filtered[j], c.SortField)
		return a.compare(b)*dir < 0
	})

	totalPages := (len(filtered) + PageSize - 1) / PageSize

	start := (c.Page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Derived[T]{
		Filtered:   filtered,
		Page:       filtered[start:end],
		PageNum:    c.Page,
		TotalPages: totalPages,
	}
}

func matchesSearch[T any](r T, needle string, schema Schema[T]) bool {
	for _, field := range schema.Search(r) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](r T, filters map[string]string, schema Schema[T]) bool {
	for field, want := range filters {
		if schema.Filter(r, field) != want {
			return false
		}
	}
	return true
}
