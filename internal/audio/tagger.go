package audio

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2"
	"github.com/handiism/rtk-site/internal/model"
)

// TagEditAction defines how to handle individual ID3 tags.
type TagEditAction int

const (
	// TagEmpty clears the frame.
	TagEmpty TagEditAction = iota

	// TagModify writes the value from the catalog.
	TagModify

	// TagDoNotModify leaves the existing frame unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags: true,
//	    Artist:     TagModify,      // credited artist line
//	    Title:      TagModify,      // release title
//	    Album:      TagModify,      // parent album for album tracks
//	    Comments:   TagModify,      // listen link
//	    Genre:      TagDoNotModify, // catalog has no genre
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no text frames are touched.
	ModifyTags bool

	// Artist controls TPE1 (Lead artist).
	Artist TagEditAction

	// AlbumArtist controls TPE2 (Album artist).
	AlbumArtist TagEditAction

	// Album controls TALB (Album title).
	Album TagEditAction

	// Title controls TIT2 (Title).
	Title TagEditAction

	// Year controls TYER (ID3v2.3).
	Year TagEditAction

	// Date controls TDRC (ID3v2.4).
	Date TagEditAction

	// TrackNumber controls TRCK.
	TrackNumber TagEditAction

	// Comments controls COMM; the listen link is stored there.
	Comments TagEditAction

	// Genre controls TCON.
	Genre TagEditAction
}

// DefaultTagConfig returns a config that writes every known field and
// leaves the genre alone.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags:  true,
		Artist:      TagModify,
		AlbumArtist: TagModify,
		Album:       TagModify,
		Title:       TagModify,
		Year:        TagModify,
		Date:        TagModify,
		TrackNumber: TagModify,
		Comments:    TagModify,
		Genre:       TagDoNotModify,
	}
}

// TrackInfo describes the file being tagged.
type TrackInfo struct {
	// Release is the catalog entry the file belongs to. Required.
	Release *model.Release

	// Album is the parent album or EP for album tracks, nil otherwise.
	Album *model.Release

	// Number is the 1-based position within Album, 0 when unknown.
	Number int
}

// albumTitle is the TALB value: the parent collection, or the release
// itself when it is an album or EP.
func (ti TrackInfo) albumTitle() string {
	if ti.Album != nil {
		return ti.Album.Title
	}
	if ti.Release.Type.IsCollection() {
		return ti.Release.Title
	}
	return ""
}

func (ti TrackInfo) albumArtist() string {
	if ti.Album != nil && ti.Album.Artist != "" {
		return ti.Album.Artist
	}
	return ti.Release.Artist
}

// Tagger writes ID3 tags from catalog entries to local MP3 files.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	err := tagger.SaveTags("night-drive.mp3", TrackInfo{Release: r}, artworkJPEG)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags to the MP3 at path.
//
// Existing frames are parsed first so TagDoNotModify keeps them.
// artwork, if non-nil, replaces any attached front cover and must be JPEG.
func (t *Tagger) SaveTags(path string, info TrackInfo, artwork []byte) error {
	if info.Release == nil {
		return fmt.Errorf("tag %s: no release", path)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("tag %s: %w", path, err)
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateStringTags(tag, info)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

func (t *Tagger) updateStringTags(tag *id3v2.Tag, info TrackInfo) {
	r := info.Release

	setText(tag, t.config.Artist, "TPE1", r.Artist)
	setText(tag, t.config.AlbumArtist, "TPE2", info.albumArtist())
	setText(tag, t.config.Album, "TALB", info.albumTitle())
	setText(tag, t.config.Title, "TIT2", r.Title)

	// Undated releases clear the date frames rather than writing "TBD".
	setText(tag, t.config.Year, "TYER", r.Year())
	date := ""
	if r.HasDate() {
		date = r.Time().Format("2006-01-02")
	}
	setText(tag, t.config.Date, "TDRC", date)

	number := ""
	if info.Number > 0 {
		number = strconv.Itoa(info.Number)
	}
	setText(tag, t.config.TrackNumber, "TRCK", number)

	setText(tag, t.config.Genre, "TCON", "")

	commentID := tag.CommonID("Comments")
	switch t.config.Comments {
	case TagEmpty:
		tag.DeleteFrames(commentID)
	case TagModify:
		tag.DeleteFrames(commentID)
		if r.ListenLink != "" {
			tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding:    id3v2.EncodingUTF8,
				Language:    "eng",
				Description: "Listen",
				Text:        r.ListenLink,
			})
		}
	}
}

// setText applies action to a text frame. An empty value under TagModify
// clears the frame.
func setText(tag *id3v2.Tag, action TagEditAction, id, value string) {
	switch action {
	case TagEmpty:
		tag.DeleteFrames(id)
	case TagModify:
		tag.DeleteFrames(id)
		if value != "" {
			tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
		}
	}
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})
}
