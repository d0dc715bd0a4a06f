package export

import (
	"fmt"
	"strings"

	"github.com/handiism/rtk-site/internal/model"
)

// PlaylistFormat represents supported playlist file formats.
//
// Playlist entries are the releases' listen links, so the result opens in
// any player that accepts remote URLs:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines carrying "Artist - Title".
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS

	// FormatWPL creates .wpl files (Windows Media Player).
	FormatWPL

	// FormatZPL creates .zpl files (Zune/Groove Music).
	FormatZPL
)

// ParsePlaylistFormat maps a config value ("m3u", "pls", "wpl", "zpl")
// to a PlaylistFormat.
func ParsePlaylistFormat(s string) (PlaylistFormat, error) {
	switch strings.ToLower(s) {
	case "m3u", "":
		return FormatM3U, nil
	case "pls":
		return FormatPLS, nil
	case "wpl":
		return FormatWPL, nil
	case "zpl":
		return FormatZPL, nil
	default:
		return FormatM3U, fmt.Errorf("unknown playlist format: %s", s)
	}
}

// Extension returns the file extension including the dot.
func (f PlaylistFormat) Extension() string {
	switch f {
	case FormatPLS:
		return ".pls"
	case FormatWPL:
		return ".wpl"
	case FormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

// PlaylistCreator generates playlists from a list of releases.
//
// Releases without a listen link are skipped.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist("Singles", view.Apply(d.Releases, "single", view.SortDateDesc))
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:-1,Ryze Tha Kidd - Night Drive
//	// https://open.spotify.com/track/...
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended only affects FormatM3U.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// CreatePlaylist renders releases in order as a playlist named title.
func (p *PlaylistCreator) CreatePlaylist(title string, releases []model.Release) string {
	entries := playable(releases)

	switch p.format {
	case FormatPLS:
		return p.createPLS(entries)
	case FormatWPL:
		return p.createWPL(title, entries)
	case FormatZPL:
		return p.createZPL(title, entries)
	default:
		return p.createM3U(entries)
	}
}

func playable(releases []model.Release) []model.Release {
	var out []model.Release
	for _, r := range releases {
		if r.ListenLink != "" {
			out = append(out, r)
		}
	}
	return out
}

func entryName(r model.Release) string {
	if r.Artist == "" {
		return r.Title
	}
	return r.Artist + " - " + r.Title
}

// createM3U generates an M3U playlist. Durations are unknown, so extended
// entries use -1.
func (p *PlaylistCreator) createM3U(entries []model.Release) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, r := range entries {
		if p.extended {
			fmt.Fprintf(&sb, "#EXTINF:-1,%s\n", entryName(r))
		}
		sb.WriteString(r.ListenLink + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist:
//
//	[playlist]
//	File1=https://...
//	Title1=Artist - Title
//	Length1=-1
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(entries []model.Release) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, r := range entries {
		idx := i + 1
		fmt.Fprintf(&sb, "File%d=%s\n", idx, r.ListenLink)
		fmt.Fprintf(&sb, "Title%d=%s\n", idx, entryName(r))
		fmt.Fprintf(&sb, "Length%d=-1\n", idx)
	}

	fmt.Fprintf(&sb, "NumberOfEntries=%d\n", len(entries))
	sb.WriteString("Version=2\n")

	return sb.String()
}

func (p *PlaylistCreator) createWPL(title string, entries []model.Release) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(title))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, r := range entries {
		fmt.Fprintf(&sb, "      <media src=\"%s\"/>\n", escapeXML(r.ListenLink))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL is WPL plus per-entry title and artist attributes.
func (p *PlaylistCreator) createZPL(title string, entries []model.Release) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(title))
	sb.WriteString("    <meta name=\"Generator\" content=\"rtk-site\"/>\n")
	fmt.Fprintf(&sb, "    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(entries))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, r := range entries {
		fmt.Fprintf(&sb, "      <media src=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\" releaseType=\"%s\"/>\n",
			escapeXML(r.ListenLink),
			escapeXML(r.Title),
			escapeXML(r.Artist),
			escapeXML(r.Type.Label()))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// escapeXML escapes & < > " ' for attribute and text content.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
