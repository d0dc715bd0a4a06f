package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed is returned when a source cannot be retrieved:
	// network error, timeout, cancellation or a non-200 status.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrInvalidShape is returned when a source answered but the document
	// is not JSON or its root is not the expected array/object.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrEmptyResult means the data loaded fine but nothing is left to show,
	// e.g. a filter chip with no matching releases. It is a content state,
	// not a failure.
	ErrEmptyResult = errors.New("no releases found")

	// ErrNoVideo is returned when the video document has no embed URL.
	ErrNoVideo = errors.New("no video link")

	// ErrNotFound is returned by detail lookups for unknown ids.
	ErrNotFound = errors.New("release not found")
)

// LoadError describes why a source could not be loaded.
//
// Kind is ErrFetchFailed or ErrInvalidShape, so callers can branch with
// errors.Is without caring about the underlying cause:
//
//	disco, err := repo.Load(ctx)
//	switch {
//	case errors.Is(err, catalog.ErrFetchFailed):
//	    // show "could not reach the catalog"
//	case errors.Is(err, catalog.ErrInvalidShape):
//	    // show "catalog is broken"
//	}
type LoadError struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// URL is the source that failed.
	URL string

	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.URL, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func fetchFailed(url string, err error) *LoadError {
	return &LoadError{Kind: ErrFetchFailed, URL: url, Err: err}
}

func invalidShape(url string, err error) *LoadError {
	return &LoadError{Kind: ErrInvalidShape, URL: url, Err: err}
}
