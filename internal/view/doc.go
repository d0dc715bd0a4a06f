// Package view turns the loaded discography into the list the grid shows.
//
// Every function here is pure: it reads the releases it is given and
// returns a new slice, so the same dataset can be re-filtered and re-sorted
// any number of times without being fetched or modified again.
//
//	grid := view.Apply(disco.Releases, view.Category(model.TypeSingle), view.SortDateAsc)
//
// Supported sort keys: title-asc, artist-asc, date-asc, date-desc (default).
package view
