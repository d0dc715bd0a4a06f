package model

import (
	"strings"
	"time"
)

// RawRelease is one record of the catalog JSON document.
//
// Every field is optional on the wire. The catalog parser coerces each
// value to a string once, so an absent field and a null field both end up
// as the empty string.
//
// Example JSON element:
//
//	{
//	  "id": "night-drive",
//	  "title": "Night Drive",
//	  "artist": "Ryze Tha Kidd",
//	  "image": "https://cdn.example.com/night-drive.jpg",
//	  "listenLink": "https://open.spotify.com/track/...",
//	  "releaseDate": "2024-06-01",
//	  "type": "single"
//	}
type RawRelease struct {
	// ID identifies the release and doubles as its URL slug.
	ID string `json:"id"`

	// Title is the release title.
	Title string `json:"title"`

	// Artist is the credited artist line, e.g. "Ryze Tha Kidd ft. Someone".
	Artist string `json:"artist"`

	// Image is the cover art URL.
	Image string `json:"image"`

	// ListenLink points at a streaming platform.
	ListenLink string `json:"listenLink"`

	// ReleaseDate is the date as published in the catalog, usually YYYY-MM-DD.
	// It may be empty or malformed.
	ReleaseDate string `json:"releaseDate"`

	// Type is the release category tag.
	Type ReleaseType `json:"type"`
}

// Release is a RawRelease with its derived fields computed.
//
// Derived fields are filled exactly once by NewRelease and never
// recomputed; filtering and sorting only read them.
type Release struct {
	RawRelease

	// DisplayDate is the human readable date ("1st January 2024"),
	// or DateFallback when the raw date is missing or unparseable.
	DisplayDate string `json:"displayDate"`

	// TypeTag is the upper-case Type, empty when Type is empty.
	TypeTag string `json:"typeTag"`

	// DateValue is the release date in Unix milliseconds, 0 when unparseable.
	// Undated releases therefore sort as the oldest ones.
	DateValue int64 `json:"dateValue"`

	// TitleLower and ArtistLower are lower-case comparison keys.
	TitleLower  string `json:"-"`
	ArtistLower string `json:"-"`

	// dated is set when ReleaseDate parsed. DateValue alone cannot tell an
	// undated release from one released on 1970-01-01.
	dated bool
}

// NewRelease normalizes a raw record.
//
// Example:
//
//	r := NewRelease(RawRelease{ID: "a", Title: "Night Drive", Type: TypeSingle, ReleaseDate: "2024-01-01"})
//	// r.DisplayDate = "1st January 2024"
//	// r.TypeTag     = "SINGLE"
//	// r.DateValue   = 1704067200000
//	// r.TitleLower  = "night drive"
func NewRelease(raw RawRelease) Release {
	r := Release{
		RawRelease:  raw,
		DisplayDate: DateFallback,
		TypeTag:     strings.ToUpper(string(raw.Type)),
		TitleLower:  strings.ToLower(raw.Title),
		ArtistLower: strings.ToLower(raw.Artist),
	}

	if t, ok := ParseReleaseDate(raw.ReleaseDate); ok {
		r.DisplayDate = FormatDisplayDate(t)
		r.DateValue = t.UnixMilli()
		r.dated = true
	}

	return r
}

// HasDate reports whether the release carries a usable date.
func (r *Release) HasDate() bool {
	return r.dated
}

// Time returns the release date, or the zero time for undated releases.
func (r *Release) Time() time.Time {
	if !r.HasDate() {
		return time.Time{}
	}
	return time.UnixMilli(r.DateValue).UTC()
}

// Year returns the four digit release year, or "" for undated releases.
func (r *Release) Year() string {
	if !r.HasDate() {
		return ""
	}
	return r.Time().Format("2006")
}

// DetailPath returns the clean URL of the release's detail page.
//
//	album      -> /album/<id>
//	ep         -> /ep/<id>
//	collab     -> /collab/<id>
//	everything else (single, album-track, unknown) -> /single/<id>
func (r *Release) DetailPath() string {
	switch r.Type {
	case TypeAlbum:
		return "/album/" + r.ID
	case TypeEP:
		return "/ep/" + r.ID
	case TypeCollab:
		return "/collab/" + r.ID
	default:
		return "/single/" + r.ID
	}
}

// NewReleases normalizes a list of raw records, preserving order.
func NewReleases(raws []RawRelease) []Release {
	releases := make([]Release, len(raws))
	for i, raw := range raws {
		releases[i] = NewRelease(raw)
	}
	return releases
}
