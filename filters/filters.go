// Package filters narrows in-memory collections by free-text query and
// category. Every list view (attractions, shows, planner pickers, map)
// filters through the same code path.
package filters

import "strings"

// CategoryAll is the sentinel that disables category matching.
const CategoryAll = "all"

// Searchable exposes the text fields a query is matched against and the
// item's category.
type Searchable interface {
	SearchFields() []string
	SearchCategory() string
}

type Query struct {
	Query    string
	Category string
}

// Apply returns the items matching q, preserving their relative order.
// An item matches when the query is empty or is a case-insensitive
// substring of at least one search field, AND the category is "all" (or
// empty) or equals the item's category. Filtering an already filtered
// result with the same query yields an identical list.
func Apply[T Searchable](items []T, q Query) []T {
	out := make([]T, 0, len(items))
	needle := strings.ToLower(strings.TrimSpace(q.Query))
	for _, item := range items {
		if !matchesQuery(item, needle) {
			continue
		}
		if !matchesCategory(item, q.Category) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesQuery(item Searchable, needle string) bool {
	if needle == "" {
		return true
	}
	for _, f := range item.SearchFields() {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func matchesCategory(item Searchable, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return item.SearchCategory() == category
}
