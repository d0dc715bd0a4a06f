package ioutils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	runsOfSpacing = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to path atomically, creating parent directories.
//
// Data goes to a temporary file in the same directory which is then
// renamed over path, so readers never see a partial export.
//
// Example:
//
//	err := WriteFile("out/singles.m3u", []byte("#EXTM3U\n..."))
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// SanitizeFileName makes a release title safe to use as a file name.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Runs of whitespace → single space
//   - Leading and trailing whitespace → removed
//
// An empty result becomes "untitled".
//
// Example:
//
//	SanitizeFileName("Night Drive: Part 1/2") // "Night Drive_ Part 1_2"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = runsOfSpacing.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	name = trailingDots.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	if name == "" {
		return "untitled"
	}
	return name
}

// OutputPath joins dir with a sanitized name and extension.
//
//	OutputPath("covers", "Night Drive?", ".jpg") // "covers/Night Drive_.jpg"
func OutputPath(dir, name, ext string) string {
	return filepath.Join(dir, SanitizeFileName(name)+ext)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
