package ioutils

import (
	"bytes"
	"context"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// JPEGQuality is used for every encoded cover.
const JPEGQuality = 90

// ImageService resizes and re-encodes cover art.
//
// Catalog covers arrive as JPEG, PNG, GIF or WebP; every output is JPEG
// so it can be embedded in an MP3 or saved as cover.jpg.
//
// Example usage:
//
//	svc := NewImageService()
//	thumb, err := svc.ResizeImage(ctx, coverBytes, 500, 500)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// fitWithin scales w x h down to fit maxW x maxH, keeping the aspect
// ratio. Images that already fit are returned unchanged.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	ratio := float64(w) / float64(h)
	if float64(maxW)/float64(maxH) > ratio {
		return max(1, int(float64(maxH)*ratio)), maxH
	}
	return maxW, max(1, int(float64(maxW)/ratio))
}

// ResizeImage fits an image within maxWidth x maxHeight and returns it as
// JPEG. Smaller images are re-encoded without upscaling. A non-positive
// limit disables resizing.
//
// The Catmull-Rom kernel is used for scaling.
//
// Example:
//
//	// A 1500x1000 cover becomes 1000x667; a 800x600 one stays 800x600.
//	resized, err := svc.ResizeImage(ctx, data, 1000, 1000)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if maxWidth <= 0 || maxHeight <= 0 {
		return encodeJPEG(img)
	}

	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	if width == bounds.Dx() && height == bounds.Dy() {
		return encodeJPEG(img)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return encodeJPEG(dst)
}

// ConvertToJPEG re-encodes any supported image as JPEG.
func (s *ImageService) ConvertToJPEG(ctx context.Context, data []byte) ([]byte, error) {
	return s.ResizeImage(ctx, data, 0, 0)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
