package model

// ReleaseType is the category tag of a release.
//
// Unknown tags are kept verbatim; they simply never count as primary.
type ReleaseType string

const (
	// TypeAlbum is a full-length album.
	TypeAlbum ReleaseType = "album"

	// TypeEP is an extended play.
	TypeEP ReleaseType = "ep"

	// TypeSingle is a standalone single.
	TypeSingle ReleaseType = "single"

	// TypeCollab is a release led by another artist.
	TypeCollab ReleaseType = "collab"

	// TypeAlbumTrack is an individual track of an album or EP.
	// Album tracks never appear in the discography grid; they are only
	// used to build tracklists and single-track detail pages.
	TypeAlbumTrack ReleaseType = "album-track"
)

// PrimaryTypes lists the categories shown in the discography grid, in the
// order the filter chips are presented.
var PrimaryTypes = []ReleaseType{TypeAlbum, TypeEP, TypeSingle, TypeCollab}

// IsPrimary reports whether releases of this type belong in the discography grid.
func (t ReleaseType) IsPrimary() bool {
	for _, p := range PrimaryTypes {
		if t == p {
			return true
		}
	}
	return false
}

// IsCollection reports whether the type has a tracklist (album or EP).
func (t ReleaseType) IsCollection() bool {
	return t == TypeAlbum || t == TypeEP
}

// IsTrack reports whether the type is shown on a single-track detail page.
func (t ReleaseType) IsTrack() bool {
	return t == TypeSingle || t == TypeCollab || t == TypeAlbumTrack
}

// Label returns the display name used on detail pages.
//
//	TypeSingle.Label()      // "Single"
//	TypeCollab.Label()      // "Collaboration"
//	ReleaseType("x").Label() // "x"
func (t ReleaseType) Label() string {
	switch t {
	case TypeAlbum:
		return "Album"
	case TypeEP:
		return "EP"
	case TypeSingle:
		return "Single"
	case TypeCollab:
		return "Collaboration"
	case TypeAlbumTrack:
		return "Album Track"
	default:
		return string(t)
	}
}
