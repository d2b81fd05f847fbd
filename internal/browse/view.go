// Package browse filters, searches and orders the static catalogs for display.
//
// A View describes one entity type: which category values it understands and
// how each one matches, which text fields a search looks at, and which sort
// keys it offers. Apply never mutates its input and always returns a fresh
// slice, so callers can recompute on every criteria change.
package browse

import (
	"slices"
	"strings"
)

// All disables category filtering.
const All = "all"

// Criteria are the user's selections for one view.
type Criteria struct {
	Category string `json:"category" yaml:"category"`
	Query    string `json:"query" yaml:"query"`
	Sort     string `json:"sort" yaml:"sort"`
}

// Predicate reports whether an item belongs to a category.
type Predicate[T any] func(T) bool

// Comparator orders two items the way slices.SortStableFunc expects.
type Comparator[T any] func(a, b T) int

// View is the filter/search/sort configuration for one entity type.
type View[T any] struct {
	Name string

	// Categories maps every recognised category value to its matching rule.
	// Values missing from the table are treated as All.
	Categories map[string]Predicate[T]
	// FoldCategory matches category values case-insensitively.
	FoldCategory bool

	// Fields are the texts a search query is matched against.
	Fields []func(T) string

	Sorts map[string]Comparator[T]
	// DefaultSort is used for empty or unknown sort keys. Leave it empty to
	// keep catalog order.
	DefaultSort string
	// UnknownSort, when set, replaces DefaultSort for non-empty keys the
	// view does not offer.
	UnknownSort string
}

// Apply runs filter, search and sort in that order.
func (v *View[T]) Apply(items []T, c Criteria) []T {
	out := v.Filter(items, c.Category)
	out = v.search(out, c.Query)
	v.sortInPlace(out, c.Sort)
	return out
}

// Filter keeps the items matching category. Unknown categories keep everything.
func (v *View[T]) Filter(items []T, category string) []T {
	match, ok := v.predicate(category)
	if !ok {
		return slices.Clone(items)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Search keeps the items with at least one field containing query,
// ignoring case. An empty query keeps everything in order.
func (v *View[T]) Search(items []T, query string) []T {
	return v.search(slices.Clone(items), query)
}

// Sort returns a stably ordered copy of items.
func (v *View[T]) Sort(items []T, key string) []T {
	out := slices.Clone(items)
	v.sortInPlace(out, key)
	return out
}

// HasCategory reports whether category is one the view filters on.
func (v *View[T]) HasCategory(category string) bool {
	_, ok := v.predicate(category)
	return ok
}

// SortKey resolves key to the sort actually applied.
func (v *View[T]) SortKey(key string) string {
	if _, ok := v.Sorts[key]; ok {
		return key
	}
	if key != "" && v.UnknownSort != "" {
		return v.UnknownSort
	}
	return v.DefaultSort
}

func (v *View[T]) predicate(category string) (Predicate[T], bool) {
	if category == "" || category == All {
		return nil, false
	}
	if v.FoldCategory {
		category = strings.ToLower(category)
	}
	p, ok := v.Categories[category]
	return p, ok
}

// search filters items in place; items must already be owned by the caller.
func (v *View[T]) search(items []T, query string) []T {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	return slices.DeleteFunc(items, func(item T) bool {
		for _, field := range v.Fields {
			if strings.Contains(strings.ToLower(field(item)), q) {
				return false
			}
		}
		return true
	})
}

func (v *View[T]) sortInPlace(items []T, key string) {
	cmp, ok := v.Sorts[v.SortKey(key)]
	if !ok {
		return
	}
	slices.SortStableFunc(items, cmp)
}
