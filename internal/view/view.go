package view

import (
	"cmp"
	"slices"

	"github.com/handiism/rtk-site/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Category selects which releases the grid shows.
// Any model.ReleaseType value works, plus CategoryAll.
type Category string

// CategoryAll is the sentinel category that disables filtering.
const CategoryAll Category = "all"

// Categories lists the filter chips in display order.
func Categories() []Category {
	cats := []Category{CategoryAll}
	for _, t := range model.PrimaryTypes {
		cats = append(cats, Category(t))
	}
	return cats
}

// Label returns the chip label ("All", "Album", "EP", ...).
func (c Category) Label() string {
	if c == CategoryAll {
		return "All"
	}
	return model.ReleaseType(c).Label()
}

// SortKey selects the grid ordering.
type SortKey string

const (
	// SortTitleAsc orders by title, A to Z.
	SortTitleAsc SortKey = "title-asc"

	// SortArtistAsc orders by artist, A to Z.
	SortArtistAsc SortKey = "artist-asc"

	// SortDateAsc orders oldest first.
	SortDateAsc SortKey = "date-asc"

	// SortDateDesc orders newest first. It is the default, and any
	// unrecognised key behaves like it.
	SortDateDesc SortKey = "date-desc"
)

// DefaultSort is the ordering used before the user picks one.
const DefaultSort = SortDateDesc

// SortKeys lists the sort options in dropdown order.
func SortKeys() []SortKey {
	return []SortKey{SortDateDesc, SortDateAsc, SortTitleAsc, SortArtistAsc}
}

// Label returns the dropdown label for the key.
func (k SortKey) Label() string {
	switch k {
	case SortTitleAsc:
		return "Title (A-Z)"
	case SortArtistAsc:
		return "Artist (A-Z)"
	case SortDateAsc:
		return "Oldest first"
	default:
		return "Newest first"
	}
}

// Valid reports whether k is one of the known keys.
func (k SortKey) Valid() bool {
	return slices.Contains(SortKeys(), k)
}

// Filter returns the releases whose Type equals category.
//
// CategoryAll returns the input slice itself. Otherwise a new slice is
// returned with matching releases in their original relative order.
// The input is never modified.
//
// Example:
//
//	singles := Filter(disco.Releases, Category(model.TypeSingle))
func Filter(releases []model.Release, category Category) []model.Release {
	if category == CategoryAll {
		return releases
	}

	filtered := make([]model.Release, 0, len(releases))
	for _, r := range releases {
		if Category(r.Type) == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Sort returns a new slice ordered by key.
//
// The sort is stable: releases with equal keys keep their input order.
// Title and artist comparisons use English collation on the precomputed
// lower-case fields; date comparisons use DateValue. The input slice is
// never reordered.
//
// Example:
//
//	newest := Sort(releases, SortDateDesc)
//	byTitle := Sort(releases, SortTitleAsc)
func Sort(releases []model.Release, key SortKey) []model.Release {
	sorted := slices.Clone(releases)
	if sorted == nil {
		sorted = []model.Release{}
	}

	switch key {
	case SortTitleAsc:
		col := newCollator()
		slices.SortStableFunc(sorted, func(a, b model.Release) int {
			return col.CompareString(a.TitleLower, b.TitleLower)
		})
	case SortArtistAsc:
		col := newCollator()
		slices.SortStableFunc(sorted, func(a, b model.Release) int {
			return col.CompareString(a.ArtistLower, b.ArtistLower)
		})
	case SortDateAsc:
		slices.SortStableFunc(sorted, func(a, b model.Release) int {
			return cmp.Compare(a.DateValue, b.DateValue)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b model.Release) int {
			return cmp.Compare(b.DateValue, a.DateValue)
		})
	}

	return sorted
}

// Apply filters by category and then sorts by key.
//
// The result is always a fresh slice, empty (not nil) when nothing matches.
//
// Example:
//
//	grid := Apply(disco.Releases, Category(model.TypeSingle), SortDateAsc)
func Apply(releases []model.Release, category Category, key SortKey) []model.Release {
	return Sort(Filter(releases, category), key)
}

// newCollator returns a collator for English. A Collator keeps internal
// buffers, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}
