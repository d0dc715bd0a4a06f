// Package audio writes catalog metadata into local audio files.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3 tags to MP3 files:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags("night-drive.mp3", audio.TrackInfo{Release: r}, artworkJPEG)
//
// The tagger supports:
//   - Artist, Album Artist
//   - Album Title, Track Title
//   - Track Number, Year, Date
//   - Listen link (as a comment)
//   - Cover Art (embedded in MP3)
package audio
