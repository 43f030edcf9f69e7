// Package query implements the read-only view-building helpers shared by
// every zone handler: foreign-key lookup with outer-join fallbacks,
// filter/sort/paginate parameter handling, positional ranking, and the
// ordered first-match rule table used by the listening analyzer.
package query

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// UnknownName is the fallback for a missing joined user/moderator name.
// Joins never fail a response; absent relations degrade to this literal.
const UnknownName = "알 수 없음"

// Page is the collection-view contract shared by paginated endpoints.
type Page[T any] struct {
	Items      []T  `json:"items"`
	TotalCount int  `json:"totalCount"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	HasMore    bool `json:"hasMore"`
}

// ParsePositiveInt parses a query parameter into a positive integer,
// substituting def for anything absent, malformed, or non-positive.
func ParsePositiveInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Paginate slices items with 1-indexed page numbers. A page beyond the
// end yields an empty slice with HasMore=false, never an error.
func Paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)
	start := (page - 1) * limit

	var sliced []T
	if start < total {
		end := start + limit
		if end > total {
			end = total
		}
		sliced = items[start:end]
	}
	if sliced == nil {
		sliced = []T{}
	}

	return Page[T]{
		Items:      sliced,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		HasMore:    start+limit < total,
	}
}

// FindByID scans items for the entity whose id matches target.
// Collections are small fixture arrays; a linear scan is intentional.
func FindByID[T any](items []T, id func(T) string, target string) (T, bool) {
	for _, item := range items {
		if id(item) == target {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the items satisfying pred, preserving order.
func Filter[T any](items []T, pred func(T) bool) []T {
	var out []T
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// SortByTimeDesc returns a copy of items ordered newest first by the
// parsed createdAt timestamp. Ties keep the underlying fixture order.
func SortByTimeDesc[T any](items []T, createdAt func(T) string) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ParseTime(createdAt(sorted[i])).After(ParseTime(createdAt(sorted[j])))
	})
	return sorted
}

// SortByIntDesc returns a copy of items ordered by a numeric key,
// largest first. Ties keep the underlying fixture order, which makes
// positional ranks deterministic.
func SortByIntDesc[T any](items []T, key func(T) int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})
	return sorted
}

// ContainsFold reports whether s contains substr, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// RoundedAverage computes round(total/count), returning 0 for an empty
// group instead of dividing by zero.
func RoundedAverage(total, count int) int {
	if count == 0 {
		return 0
	}
	if total >= 0 {
		return (total + count/2) / count
	}
	return -((-total + count/2) / count)
}

// FirstMatch evaluates items in declared order and returns the first one
// satisfying pred. Rank of declaration is the only tie-break: an earlier
// rule beats a later one even when both match.
func FirstMatch[T any](items []T, pred func(T) bool) (T, bool) {
	for _, item := range items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// ParseTime parses a fixture timestamp. Unparsable values sort as the
// zero time, which pushes them to the end of a descending sort.
func ParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
