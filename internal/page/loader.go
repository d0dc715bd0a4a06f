package page

import (
	"context"
	"io"

	"github.com/handiism/rtk-site/internal/catalog"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Data is everything a page view fetched.
//
// The discography and the video link are independent: either may fail
// without affecting the other.
type Data struct {
	Discography    *catalog.Discography
	DiscographyErr error

	// VideoURL is empty when VideoErr is set.
	VideoURL string
	VideoErr error
}

// HasVideo reports whether the video section should be shown.
func (d *Data) HasVideo() bool {
	return d != nil && d.VideoErr == nil && d.VideoURL != ""
}

// Loader fetches the data of one page view.
//
// Example usage:
//
//	loader := page.NewLoader(repo, videos, logger)
//	data, err := loader.Load(ctx)
//	if err != nil {
//	    // discography failed; data.VideoURL may still be usable
//	}
type Loader struct {
	releases *catalog.Repository
	videos   *catalog.VideoSource
	log      logrus.FieldLogger
}

// NewLoader creates a Loader. videos may be nil for pages without a video.
func NewLoader(releases *catalog.Repository, videos *catalog.VideoSource, log logrus.FieldLogger) *Loader {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Loader{
		releases: releases,
		videos:   videos,
		log:      log,
	}
}

// Load fetches the discography and the video link in parallel.
//
// Each fetch records its own outcome; neither cancels the other. The
// returned Data is never nil. The returned error is the discography
// error, since the page cannot render its main content without it; a
// missing video is only logged.
func (l *Loader) Load(ctx context.Context) (*Data, error) {
	data := &Data{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data.Discography, data.DiscographyErr = l.releases.Load(ctx)
		return nil
	})

	g.Go(func() error {
		if l.videos == nil {
			data.VideoErr = catalog.ErrNoVideo
			return nil
		}
		data.VideoURL, data.VideoErr = l.videos.Load(ctx)
		return nil
	})

	// Both branches return nil; outcomes are carried in data.
	_ = g.Wait()

	if data.VideoErr != nil {
		l.log.WithError(data.VideoErr).Warn("Video section omitted")
	}

	return data, data.DiscographyErr
}
