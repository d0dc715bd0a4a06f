package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/handiism/rtk-site/internal/catalog/dto"
	rtkhttp "github.com/handiism/rtk-site/internal/http"
	"github.com/sirupsen/logrus"
)

// Repository loads the catalog document from its remote source.
//
// Load never panics and never returns a partially built Discography:
// either the whole document is parsed or a *LoadError explains why not.
// There is no retry; a failed load is final for the session.
//
// Example usage:
//
//	repo := NewRepository(rtkhttp.NewClient(), settings.DiscographyURL, logger)
//	disco, err := repo.Load(ctx)
//	if err != nil {
//	    logger.WithError(err).Error("Catalog unavailable")
//	    return
//	}
//	fmt.Printf("%d releases\n", len(disco.Releases))
type Repository struct {
	client    *rtkhttp.Client
	sourceURL string
	parser    *Parser
	log       logrus.FieldLogger
}

// NewRepository creates a Repository reading from sourceURL.
func NewRepository(client *rtkhttp.Client, sourceURL string, log logrus.FieldLogger) *Repository {
	parser := NewParser(log)
	return &Repository{
		client:    client,
		sourceURL: sourceURL,
		parser:    parser,
		log:       parser.log,
	}
}

// SourceURL returns the configured catalog location.
func (r *Repository) SourceURL() string {
	return r.sourceURL
}

// Load fetches and parses the catalog.
//
// Returns a *LoadError of kind:
//   - ErrFetchFailed if the request fails or the status is not 200
//   - ErrInvalidShape if the body is not JSON or its root is not an array
//
// An empty array is not an error; the returned Discography is simply empty.
func (r *Repository) Load(ctx context.Context) (*Discography, error) {
	log := r.log.WithField("source", r.sourceURL)

	body, err := r.client.Get(ctx, r.sourceURL)
	if err != nil {
		log.WithError(err).Error("Failed to fetch discography data")
		return nil, fetchFailed(r.sourceURL, err)
	}

	all, err := r.parser.Parse(body)
	if err != nil {
		log.WithError(err).Error("Fetched discography data is not a valid array")
		return nil, invalidShape(r.sourceURL, err)
	}

	disco := NewDiscography(all)
	log.WithFields(logrus.Fields{
		"records":  len(disco.All),
		"releases": len(disco.Releases),
	}).Info("Discography loaded")

	return disco, nil
}

// VideoSource loads the homepage video link.
//
// A missing video is a soft failure: callers log it and omit the video
// section.
//
// Example usage:
//
//	videos := NewVideoSource(client, settings.VideoURL, logger)
//	embed, err := videos.Load(ctx)
//	if err != nil {
//	    // hide the video section
//	}
type VideoSource struct {
	client    *rtkhttp.Client
	sourceURL string
	log       logrus.FieldLogger
}

// NewVideoSource creates a VideoSource reading from sourceURL.
func NewVideoSource(client *rtkhttp.Client, sourceURL string, log logrus.FieldLogger) *VideoSource {
	return &VideoSource{
		client:    client,
		sourceURL: sourceURL,
		log:       NewParser(log).log,
	}
}

// Load returns the embeddable video URL.
//
// Returns a *LoadError (ErrFetchFailed / ErrInvalidShape) when the
// document cannot be read, or ErrNoVideo when it has no embed URL.
func (v *VideoSource) Load(ctx context.Context) (string, error) {
	log := v.log.WithField("source", v.sourceURL)

	if v.sourceURL == "" {
		return "", ErrNoVideo
	}

	var payload dto.JSONVideo
	if err := v.client.GetJSON(ctx, v.sourceURL, &payload); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			log.WithError(err).Warn("Video link document is not a JSON object")
			return "", invalidShape(v.sourceURL, err)
		}
		log.WithError(err).Warn("Failed to fetch video link")
		return "", fetchFailed(v.sourceURL, err)
	}

	if payload.EmbedURL == "" {
		log.Warn("Video link document has no embed URL")
		return "", ErrNoVideo
	}

	return string(payload.EmbedURL), nil
}
