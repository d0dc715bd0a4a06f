package ioutils

import (
	"context"
	"errors"
	"fmt"
	"io"

	rtkhttp "github.com/handiism/rtk-site/internal/http"
	"github.com/handiism/rtk-site/internal/model"
	"github.com/sirupsen/logrus"
)

// ErrNoArtwork is returned for releases without a cover image URL.
var ErrNoArtwork = errors.New("release has no artwork")

// ArtworkService downloads release covers and shrinks them to JPEG.
type ArtworkService struct {
	client *rtkhttp.Client
	images *ImageService
	log    logrus.FieldLogger
}

// NewArtworkService creates an ArtworkService. log may be nil.
func NewArtworkService(client *rtkhttp.Client, log logrus.FieldLogger) *ArtworkService {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &ArtworkService{client: client, images: NewImageService(), log: log}
}

// Fetch downloads the release cover and returns it as JPEG no larger than
// maxSize x maxSize. A non-positive maxSize keeps the original dimensions.
func (a *ArtworkService) Fetch(ctx context.Context, release *model.Release, maxSize int) ([]byte, error) {
	if release.Image == "" {
		return nil, ErrNoArtwork
	}

	data, err := a.client.DownloadBytes(ctx, release.Image)
	if err != nil {
		return nil, fmt.Errorf("download artwork for %s: %w", release.ID, err)
	}

	jpeg, err := a.images.ResizeImage(ctx, data, maxSize, maxSize)
	if err != nil {
		return nil, fmt.Errorf("decode artwork for %s: %w", release.ID, err)
	}

	a.log.WithFields(logrus.Fields{
		"release": release.ID,
		"bytes":   len(jpeg),
	}).Debug("Artwork fetched")

	return jpeg, nil
}

// Save fetches the cover and writes it to dir as "<title>.jpg".
// It returns the written path.
func (a *ArtworkService) Save(ctx context.Context, release *model.Release, dir string, maxSize int) (string, error) {
	jpeg, err := a.Fetch(ctx, release, maxSize)
	if err != nil {
		return "", err
	}

	name := release.Title
	if name == "" {
		name = release.ID
	}
	path := OutputPath(dir, name, ".jpg")
	if err := WriteFile(path, jpeg); err != nil {
		return "", err
	}

	a.log.WithField("path", path).Info("Artwork saved")
	return path, nil
}
