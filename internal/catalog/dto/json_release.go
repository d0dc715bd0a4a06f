package dto

import (
	"bytes"
	"encoding/json"

	"github.com/handiism/rtk-site/internal/model"
)

// FlexString accepts any scalar JSON value and keeps it as a string.
//
// Catalog rows are hand-edited, so a field that should be a string is
// sometimes a number or null:
//
//	"id": 42        -> "42"
//	"title": null   -> ""
//	"type": "ep"    -> "ep"
//	"image": {...}  -> ""
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (fs *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*fs = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*fs = FlexString(s)
	case '{', '[':
		*fs = ""
	default:
		// numbers, true, false
		*fs = FlexString(data)
	}

	return nil
}

// JSONRelease represents one row of the catalog document.
type JSONRelease struct {
	ID          FlexString `json:"id"`
	Title       FlexString `json:"title"`
	Artist      FlexString `json:"artist"`
	Image       FlexString `json:"image"`
	ListenLink  FlexString `json:"listenLink"`
	ReleaseDate FlexString `json:"releaseDate"`
	Type        FlexString `json:"type"`
}

// ToRawRelease converts JSONRelease to a model.RawRelease.
func (jr *JSONRelease) ToRawRelease() model.RawRelease {
	return model.RawRelease{
		ID:          string(jr.ID),
		Title:       string(jr.Title),
		Artist:      string(jr.Artist),
		Image:       string(jr.Image),
		ListenLink:  string(jr.ListenLink),
		ReleaseDate: string(jr.ReleaseDate),
		Type:        model.ReleaseType(jr.Type),
	}
}

// JSONVideo is the video-link document shown on the homepage.
type JSONVideo struct {
	EmbedURL FlexString `json:"youtube_embed_url"`
}
