package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/handiism/rtk-site/internal/model"
	"github.com/handiism/rtk-site/internal/view"
)

func createTestReleases() []model.Release {
	return model.NewReleases([]model.RawRelease{
		{ID: "night-drive", Title: "Night Drive", Artist: "Test Artist", ListenLink: "https://example.com/night-drive", ReleaseDate: "2024-06-01", Type: model.TypeSingle},
		{ID: "no-link", Title: "Unreleased", Artist: "Test Artist", Type: model.TypeSingle},
		{ID: "first-album", Title: "First Album", Artist: "Test Artist", ListenLink: "https://example.com/first-album", ReleaseDate: "2023-01-01", Type: model.TypeAlbum},
	})
}

func TestPlaylistCreator_M3U(t *testing.T) {
	content := NewPlaylistCreator(FormatM3U, false).CreatePlaylist("All", createTestReleases())

	if !strings.Contains(content, "https://example.com/night-drive\n") {
		t.Error("M3U should contain listen link")
	}
	if strings.Contains(content, "#EXT") {
		t.Error("plain M3U should not contain EXT directives")
	}
	if lines := strings.Count(content, "\n"); lines != 2 {
		t.Errorf("M3U has %d lines, want 2 (release without link skipped)", lines)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	content := NewPlaylistCreator(FormatM3U, true).CreatePlaylist("All", createTestReleases())

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Test Artist - Night Drive") {
		t.Errorf("Extended M3U missing EXTINF line:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	content := NewPlaylistCreator(FormatPLS, false).CreatePlaylist("All", createTestReleases())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=https://example.com/night-drive") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should count only playable entries")
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	content := NewPlaylistCreator(FormatWPL, false).CreatePlaylist("All", createTestReleases())

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<media src=\"https://example.com/first-album\"/>") {
		t.Error("WPL should contain media elements")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	content := NewPlaylistCreator(FormatZPL, false).CreatePlaylist("All", createTestReleases())

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, "releaseType=\"Album\"") {
		t.Error("ZPL should contain releaseType attribute")
	}
	if !strings.Contains(content, "content=\"2\"") {
		t.Error("ZPL ItemCount should be 2")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	releases := model.NewReleases([]model.RawRelease{
		{Title: "Track & \"Quote\"", Artist: "Artist & Co", ListenLink: "https://example.com/?a=1&b=2", Type: model.TypeSingle},
	})

	content := NewPlaylistCreator(FormatWPL, false).CreatePlaylist("Mix <Special>", releases)

	if !strings.Contains(content, "a=1&amp;b=2") {
		t.Error("WPL should escape & as &amp;")
	}
	if strings.Contains(content, "<Special>") {
		t.Error("WPL should escape < and >")
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		in   string
		want PlaylistFormat
		ext  string
	}{
		{"m3u", FormatM3U, ".m3u"},
		{"PLS", FormatPLS, ".pls"},
		{"wpl", FormatWPL, ".wpl"},
		{"zpl", FormatZPL, ".zpl"},
		{"", FormatM3U, ".m3u"},
	}
	for _, tt := range tests {
		got, err := ParsePlaylistFormat(tt.in)
		if err != nil || got != tt.want || got.Extension() != tt.ext {
			t.Errorf("ParsePlaylistFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := ParsePlaylistFormat("xspf"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("HTML"); err != nil || f != FormatHTML {
		t.Errorf("ParseFormat(HTML) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func newTestPage() *Page {
	releases := createTestReleases()
	grid := view.Apply(releases, view.CategoryAll, view.SortDateDesc)
	return &Page{
		ArtistName: "RYZE THA KIDD",
		Social:     []Link{{Label: "YouTube", URL: "https://youtube.com/@x"}},
		Year:       2024,
		Hero:       &releases[0],
		VideoURL:   "https://www.youtube.com/embed/abc",
		Category:   view.CategoryAll,
		Sort:       view.SortDateDesc,
		Releases:   grid,
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatText, newTestPage()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Latest Single: Night Drive (1st June 2024)",
		"Video: https://www.youtube.com/embed/abc",
		"/single/night-drive",
		"/album/first-album",
		"TBD",
		"© 2024 RYZE THA KIDD",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "/single/night-drive") > strings.Index(out, "/album/first-album") {
		t.Error("date-desc grid should list Night Drive first")
	}
}

func TestRender_TextMessage(t *testing.T) {
	page := &Page{ArtistName: "X", Year: 2024, Category: "ep", Sort: view.SortDateDesc, Message: "No releases found"}

	var buf bytes.Buffer
	if err := Render(&buf, FormatText, page); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No releases found") || strings.Contains(buf.String(), "TITLE") {
		t.Errorf("message page should replace the table:\n%s", buf.String())
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, newTestPage()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded struct {
		Artist string `json:"artist"`
		Latest struct {
			ID          string `json:"id"`
			DisplayDate string `json:"displayDate"`
		} `json:"latest"`
		Releases []struct {
			ID        string `json:"id"`
			DateValue int64  `json:"dateValue"`
		} `json:"releases"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Latest.ID != "night-drive" || decoded.Latest.DisplayDate != "1st June 2024" {
		t.Errorf("latest = %+v", decoded.Latest)
	}
	if len(decoded.Releases) != 3 || decoded.Releases[0].ID != "night-drive" {
		t.Errorf("releases = %+v", decoded.Releases)
	}
}

func TestRender_HTML(t *testing.T) {
	page := newTestPage()
	page.Releases[1].Title = "<script>alert(1)</script>"

	var buf bytes.Buffer
	if err := Render(&buf, FormatHTML, page); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<h1>RYZE THA KIDD</h1>`,
		`Latest Single`,
		`href="/album/first-album"`,
		`<iframe src="https://www.youtube.com/embed/abc"`,
		`&copy; 2024 RYZE THA KIDD`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html output missing %q", want)
		}
	}
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("titles must be escaped")
	}
}
