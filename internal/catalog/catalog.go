// Package catalog manages the read-only snapshot of pre-scored alternative
// products. A snapshot is immutable once built; refreshes build a new
// snapshot and swap the holder reference atomically so concurrent ranking
// calls never observe a partial catalog.
package catalog

import (
	"errors"
	"sort"
	"sync/atomic"

	domain "github.com/greenverse/greenscore/pkg/types"
)

// ErrCatalogUnavailable is returned when no snapshot has been loaded yet or
// the last load failed and nothing older is available.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Catalog is an immutable snapshot of alternative records grouped by
// category and pre-sorted by {score desc, price asc}. Input order is
// irrelevant: New normalizes whatever it is given.
type Catalog struct {
	byCategory map[domain.CategoryKey][]domain.AlternativeRecord
	total      int
}

// New builds a snapshot from a flat record list.
func New(records []domain.AlternativeRecord) *Catalog {
	grouped := make(map[domain.CategoryKey][]domain.AlternativeRecord)
	for _, r := range records {
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	for key := range grouped {
		SortRecords(grouped[key])
	}

	return &Catalog{byCategory: grouped, total: len(records)}
}

// SortRecords orders records by score descending, ties broken by ascending
// price with nil prices last.
func SortRecords(records []domain.AlternativeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		switch {
		case a.Price == nil && b.Price == nil:
			return false
		case a.Price == nil:
			return false
		case b.Price == nil:
			return true
		default:
			return *a.Price < *b.Price
		}
	})
}

// ByCategory returns the pre-sorted records for a category. The returned
// slice is shared snapshot data and must not be mutated; rankers copy
// before filtering.
func (c *Catalog) ByCategory(key domain.CategoryKey) []domain.AlternativeRecord {
	return c.byCategory[key]
}

// Total returns the number of records in the snapshot.
func (c *Catalog) Total() int {
	return c.total
}

// Stats summarizes the snapshot for the operational API.
type Stats struct {
	Total       int                        `json:"total"`
	PerCategory map[domain.CategoryKey]int `json:"per_category"`
}

// Stats returns per-category record counts.
func (c *Catalog) Stats() Stats {
	per := make(map[domain.CategoryKey]int, len(c.byCategory))
	for key, recs := range c.byCategory {
		per[key] = len(recs)
	}
	return Stats{Total: c.total, PerCategory: per}
}

// Holder owns the current snapshot reference. Swap publishes a new
// snapshot; Current never blocks rankers on a refresh in flight.
type Holder struct {
	current atomic.Pointer[Catalog]
}

// NewHolder creates an empty holder. Current returns ErrCatalogUnavailable
// until the first Swap.
func NewHolder() *Holder {
	return &Holder{}
}

// Swap atomically publishes a new snapshot.
func (h *Holder) Swap(c *Catalog) {
	h.current.Store(c)
}

// Current returns the active snapshot.
func (h *Holder) Current() (*Catalog, error) {
	c := h.current.Load()
	if c == nil {
		return nil, ErrCatalogUnavailable
	}
	return c, nil
}
