// Package page drives a page view: one parallel load, then any number of
// filter and sort changes on the loaded data.
//
// # Loading
//
// The Loader fetches the discography and the video link concurrently:
//
//	loader := page.NewLoader(repo, videos, logger)
//	st := page.NewState().Loading()
//	data, err := loader.Load(ctx)
//	st = st.Loaded(err)
//
// # Interaction
//
// State is a value; filter chips and the sort dropdown produce new
// states and never trigger another fetch:
//
//	st = st.WithCategory(view.Category(model.TypeEP)).WithSort(view.SortTitleAsc)
//	grid, err := page.Grid(st, data)
//	if errors.Is(err, catalog.ErrEmptyResult) {
//	    // "No releases found."
//	}
//
// # Homepage
//
//	latest, err := page.Hero(data)
package page
