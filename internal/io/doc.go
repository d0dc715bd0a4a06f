// Package ioutils provides file system and image utilities for exports.
//
// This package contains functions for:
//   - Atomic file writing
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//   - Cover art download, resizing and JPEG conversion
//
// # File Operations
//
//	err := ioutils.WriteFile("out/discography.html", html)
//	path := ioutils.OutputPath("covers", release.Title, ".jpg")
//
// # Artwork
//
//	svc := ioutils.NewArtworkService(client, log)
//	path, err := svc.Save(ctx, release, "covers", 1000)
package ioutils
