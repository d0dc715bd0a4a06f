package page

import (
	"errors"

	"github.com/handiism/rtk-site/internal/catalog"
	"github.com/handiism/rtk-site/internal/model"
	"github.com/handiism/rtk-site/internal/view"
)

// ErrNotLoaded is returned by Grid before the data has been loaded.
var ErrNotLoaded = errors.New("data not loaded")

// Status is the lifecycle of the page data.
//
//	idle -> loading -> ready
//	               \-> load-error
//
// There is one load per page view; filter and sort changes keep the
// status at ready.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusLoadError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusLoadError:
		return "load-error"
	default:
		return "unknown"
	}
}

// State is the page controller state: where the load is, and which
// filter chip and sort option are active.
//
// State is a small value. Every transition returns a new State and leaves
// the receiver untouched, so a controller can keep the previous value
// around or compare before/after freely.
//
// Example:
//
//	st := page.NewState()
//	st = st.Loading()
//	data, err := loader.Load(ctx)
//	st = st.Loaded(err)
//	st = st.WithCategory(view.Category(model.TypeSingle))
//	grid, err := page.Grid(st, data)
type State struct {
	Status   Status
	Category view.Category
	Sort     view.SortKey

	// Err is the load error when Status is StatusLoadError.
	Err error
}

// NewState returns the idle state with the default filter and sort.
func NewState() State {
	return State{
		Status:   StatusIdle,
		Category: view.CategoryAll,
		Sort:     view.DefaultSort,
	}
}

// Loading moves to StatusLoading.
func (s State) Loading() State {
	s.Status = StatusLoading
	s.Err = nil
	return s
}

// Loaded moves to StatusReady, or StatusLoadError when err is non-nil.
func (s State) Loaded(err error) State {
	if err != nil {
		s.Status = StatusLoadError
		s.Err = err
		return s
	}
	s.Status = StatusReady
	s.Err = nil
	return s
}

// WithCategory selects a filter chip.
func (s State) WithCategory(c view.Category) State {
	s.Category = c
	return s
}

// WithSort selects a sort option.
func (s State) WithSort(k view.SortKey) State {
	s.Sort = k
	return s
}

// NextCategory cycles to the next filter chip.
func (s State) NextCategory() State {
	cats := view.Categories()
	return s.WithCategory(cats[(indexOf(cats, s.Category)+1)%len(cats)])
}

// PrevCategory cycles to the previous filter chip.
func (s State) PrevCategory() State {
	cats := view.Categories()
	i := indexOf(cats, s.Category)
	if i < 0 {
		i = 0
	}
	return s.WithCategory(cats[(i-1+len(cats))%len(cats)])
}

// NextSort cycles to the next sort option.
func (s State) NextSort() State {
	keys := view.SortKeys()
	return s.WithSort(keys[(indexOf(keys, s.Sort)+1)%len(keys)])
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return -1
}

// Grid returns the releases the discography grid shows for the state.
//
// Returns:
//   - ErrNotLoaded while idle or loading
//   - the load error when the load failed
//   - an empty slice and catalog.ErrEmptyResult when nothing matches
//   - the filtered, sorted list otherwise
func Grid(s State, data *Data) ([]model.Release, error) {
	switch s.Status {
	case StatusLoadError:
		return nil, s.Err
	case StatusReady:
	default:
		return nil, ErrNotLoaded
	}
	if data == nil || data.Discography == nil {
		return nil, ErrNotLoaded
	}

	grid := view.Apply(data.Discography.Releases, s.Category, s.Sort)
	if len(grid) == 0 {
		return grid, catalog.ErrEmptyResult
	}
	return grid, nil
}

// Hero returns the latest release for the homepage.
//
// Returns ErrNotLoaded without data, the discography load error if the
// catalog failed, or catalog.ErrEmptyResult for an empty catalog.
func Hero(data *Data) (*model.Release, error) {
	if data == nil {
		return nil, ErrNotLoaded
	}
	if data.DiscographyErr != nil {
		return nil, data.DiscographyErr
	}
	return data.Discography.Latest()
}
