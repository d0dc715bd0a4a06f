package catalog

import (
	"net/url"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/handiism/rtk-site/internal/model"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for an id to be
// offered as a "did you mean" suggestion.
const suggestThreshold = 0.75

// Discography is the loaded catalog.
//
// A Discography holds two views of the same normalized records:
//   - All: every row of the document, in document order, album tracks included
//   - Releases: only the primary types (album, ep, single, collab), in
//     document order, used by the discography grid and the homepage hero
//
// A Discography is read-only once built and can be shared freely.
//
// Example usage:
//
//	disco := NewDiscography(releases)
//
//	latest := PickLatest(disco.All)
//	album, err := disco.FindAlbum("debut-album")
//	tracks := disco.AlbumTracks("debut-album")
type Discography struct {
	All      []model.Release
	Releases []model.Release
}

// NewDiscography builds a Discography from normalized records.
func NewDiscography(all []model.Release) *Discography {
	primary := make([]model.Release, 0, len(all))
	for _, r := range all {
		if r.Type.IsPrimary() {
			primary = append(primary, r)
		}
	}

	return &Discography{
		All:      all,
		Releases: primary,
	}
}

// Empty reports whether there is nothing to show in the grid.
func (d *Discography) Empty() bool {
	return d == nil || len(d.Releases) == 0
}

// PickLatest returns the release with the greatest DateValue.
//
// The list is scanned once; a later record only wins with a strictly
// greater date, so among equal dates the first one in input order is
// returned. Returns nil for an empty list.
//
// Example:
//
//	latest := PickLatest(disco.All)
//	if latest == nil {
//	    fmt.Println("No releases found.")
//	}
func PickLatest(releases []model.Release) *model.Release {
	if len(releases) == 0 {
		return nil
	}

	latest := &releases[0]
	for i := 1; i < len(releases); i++ {
		if releases[i].DateValue > latest.DateValue {
			latest = &releases[i]
		}
	}
	return latest
}

// Latest returns the newest record of the whole catalog, album tracks
// included, or ErrEmptyResult when the catalog has no records.
func (d *Discography) Latest() (*model.Release, error) {
	if d == nil || len(d.All) == 0 {
		return nil, ErrEmptyResult
	}
	return PickLatest(d.All), nil
}

// Find returns the first record with the given id, whatever its type.
func (d *Discography) Find(id string) (*model.Release, error) {
	return d.find(id, func(model.ReleaseType) bool { return true })
}

// FindSingle returns the single, collab or album track with the given id.
func (d *Discography) FindSingle(id string) (*model.Release, error) {
	return d.find(id, model.ReleaseType.IsTrack)
}

// FindAlbum returns the album or EP with the given id.
func (d *Discography) FindAlbum(id string) (*model.Release, error) {
	return d.find(id, model.ReleaseType.IsCollection)
}

func (d *Discography) find(id string, match func(model.ReleaseType) bool) (*model.Release, error) {
	if d == nil || id == "" {
		return nil, ErrNotFound
	}
	for i := range d.All {
		if d.All[i].ID == id && match(d.All[i].Type) {
			return &d.All[i], nil
		}
	}
	return nil, ErrNotFound
}

// AlbumTracks returns the album tracks belonging to an album or EP.
//
// Tracks are associated by id prefix: the album id minus its last
// dash-separated segment. An album id without a dash is used whole.
//
//	album "debut-album"  -> tracks "debut-01", "debut-02", ...
//	album "debut"        -> tracks "debut-01", "debut-02", ...
//
// Tracks are returned in document order.
func (d *Discography) AlbumTracks(albumID string) []model.Release {
	if d == nil || albumID == "" {
		return nil
	}

	prefix := albumID
	if idx := strings.LastIndex(albumID, "-"); idx > 0 {
		prefix = albumID[:idx]
	}

	var tracks []model.Release
	for _, r := range d.All {
		if r.Type == model.TypeAlbumTrack && strings.HasPrefix(r.ID, prefix) {
			tracks = append(tracks, r)
		}
	}
	return tracks
}

// Suggest returns up to limit known ids that look like id, best match first.
//
// Used to print "did you mean" hints when a detail lookup fails.
func (d *Discography) Suggest(id string, limit int) []string {
	if d == nil || id == "" || limit <= 0 {
		return nil
	}

	type candidate struct {
		id    string
		score float64
	}

	metric := metrics.NewJaroWinkler()
	metric.CaseSensitive = false

	seen := make(map[string]struct{})
	var candidates []candidate
	for _, r := range d.All {
		if r.ID == "" {
			continue
		}
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}

		score := strutil.Similarity(id, r.ID, metric)
		if score >= suggestThreshold {
			candidates = append(candidates, candidate{id: r.ID, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return ids
}

// ResolveID extracts a release id from a detail page reference.
//
// Accepted forms:
//
//	"night-drive"                 -> "night-drive"
//	"/single/night-drive"         -> "night-drive"
//	"/single/night-drive/"        -> "night-drive"
//	"single.html?id=night-drive"  -> "night-drive"
//	"single.html?slug=night-drive"-> "night-drive"
//
// Returns "" when nothing usable is found.
func ResolveID(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	q := u.Query()
	if id := q.Get("id"); id != "" {
		return id
	}
	if slug := q.Get("slug"); slug != "" {
		return slug
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if strings.HasSuffix(last, ".html") {
		return ""
	}
	return last
}
