package view

import (
	"slices"
	"testing"

	"github.com/handiism/rtk-site/internal/model"
)

func release(id, title, artist string, typ model.ReleaseType, date string) model.Release {
	return model.NewRelease(model.RawRelease{
		ID:          id,
		Title:       title,
		Artist:      artist,
		Type:        typ,
		ReleaseDate: date,
	})
}

func ids(releases []model.Release) []string {
	out := make([]string, len(releases))
	for i, r := range releases {
		out[i] = r.ID
	}
	return out
}

func sampleReleases() []model.Release {
	return []model.Release{
		release("a", "Alpha", "Ryze Tha Kidd", model.TypeSingle, "2024-01-01"),
		release("b", "bravo", "Ryze Tha Kidd", model.TypeAlbum, "2024-06-01"),
		release("c", "Charlie", "Ace", model.TypeSingle, "2023-01-01"),
		release("d", "Delta", "Zed", model.TypeCollab, "2024-06-01"),
		release("e", "Éclair", "ace", model.TypeEP, ""),
	}
}

func TestFilter_All(t *testing.T) {
	in := sampleReleases()
	got := Filter(in, CategoryAll)

	if !slices.Equal(ids(got), ids(in)) {
		t.Errorf("Filter(all) = %v, want %v", ids(got), ids(in))
	}
}

func TestFilter_Category(t *testing.T) {
	tests := []struct {
		category Category
		want     []string
	}{
		{Category(model.TypeSingle), []string{"a", "c"}},
		{Category(model.TypeAlbum), []string{"b"}},
		{Category(model.TypeEP), []string{"e"}},
		{Category("remix"), []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			in := sampleReleases()
			before := ids(in)

			got := Filter(in, tt.category)

			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("Filter(%s) = %v, want %v", tt.category, ids(got), tt.want)
			}
			for _, r := range got {
				if Category(r.Type) != tt.category {
					t.Errorf("Filter(%s) returned %q of type %q", tt.category, r.ID, r.Type)
				}
			}
			if !slices.Equal(ids(in), before) {
				t.Error("Filter modified its input")
			}
		})
	}
}

func TestSort_Orderings(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortDateDesc, []string{"b", "d", "a", "c", "e"}},
		{SortDateAsc, []string{"e", "c", "a", "b", "d"}},
		{SortTitleAsc, []string{"a", "b", "c", "d", "e"}},
		{SortArtistAsc, []string{"c", "e", "a", "b", "d"}},
		{SortKey("popularity"), []string{"b", "d", "a", "c", "e"}},
		{SortKey(""), []string{"b", "d", "a", "c", "e"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := Sort(sampleReleases(), tt.key)
			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("Sort(%s) = %v, want %v", tt.key, ids(got), tt.want)
			}
		})
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := sampleReleases()
	before := ids(in)

	for _, key := range append(SortKeys(), SortKey("unknown")) {
		out := Sort(in, key)
		if !slices.Equal(ids(in), before) {
			t.Fatalf("Sort(%s) reordered its input: %v", key, ids(in))
		}
		if len(out) > 0 && &out[0] == &in[0] {
			t.Fatalf("Sort(%s) returned the input backing array", key)
		}
	}
}

func TestSort_StableOnTies(t *testing.T) {
	in := []model.Release{
		release("x", "Same", "A", model.TypeSingle, "2024-06-01"),
		release("y", "same", "A", model.TypeSingle, "2024-06-01"),
		release("z", "SAME", "A", model.TypeSingle, "2024-06-01"),
	}

	for _, key := range SortKeys() {
		got := Sort(in, key)
		if !slices.Equal(ids(got), []string{"x", "y", "z"}) {
			t.Errorf("Sort(%s) on ties = %v, want [x y z]", key, ids(got))
		}
	}
}

func TestApply_SinglesOldestFirst(t *testing.T) {
	in := []model.Release{
		release("a", "", "", model.TypeSingle, "2024-01-01"),
		release("b", "", "", model.TypeAlbum, "2024-06-01"),
		release("c", "", "", model.TypeSingle, "2023-01-01"),
	}

	got := Apply(in, Category(model.TypeSingle), SortDateAsc)
	if !slices.Equal(ids(got), []string{"c", "a"}) {
		t.Errorf("Apply(single, date-asc) = %v, want [c a]", ids(got))
	}
}

func TestApply_UndatedSortsFirstAscending(t *testing.T) {
	in := []model.Release{
		release("dated", "", "", model.TypeSingle, "2001-01-01"),
		release("undated", "", "", model.TypeSingle, ""),
	}

	got := Apply(in, CategoryAll, SortDateAsc)
	if got[0].ID != "undated" {
		t.Errorf("undated release should sort first under date-asc, got %v", ids(got))
	}
	if got[0].DisplayDate != model.DateFallback {
		t.Errorf("DisplayDate = %q, want %q", got[0].DisplayDate, model.DateFallback)
	}
}

func TestApply_EmptyResults(t *testing.T) {
	got := Apply(sampleReleases(), Category(model.TypeAlbumTrack), SortDateDesc)
	if got == nil || len(got) != 0 {
		t.Errorf("Apply with no matches = %v, want empty non-nil slice", got)
	}

	got = Apply(nil, CategoryAll, SortTitleAsc)
	if got == nil || len(got) != 0 {
		t.Errorf("Apply(nil) = %v, want empty non-nil slice", got)
	}
}

func TestApply_NoEPs(t *testing.T) {
	in := []model.Release{
		release("a", "", "", model.TypeSingle, "2024-01-01"),
		release("b", "", "", model.TypeAlbum, "2024-06-01"),
	}

	got := Apply(in, Category(model.TypeEP), SortDateDesc)
	if len(got) != 0 {
		t.Errorf("Apply(ep) = %v, want []", ids(got))
	}
}

func TestApply_Idempotent(t *testing.T) {
	in := sampleReleases()

	for _, cat := range Categories() {
		for _, key := range SortKeys() {
			first := Apply(in, cat, key)
			second := Apply(in, cat, key)
			if !slices.Equal(ids(first), ids(second)) {
				t.Errorf("Apply(%s, %s) not idempotent: %v vs %v", cat, key, ids(first), ids(second))
			}
		}
	}
}

func TestSortDateDesc_FirstMatchesLatestWithoutTies(t *testing.T) {
	in := []model.Release{
		release("a", "", "", model.TypeSingle, "2024-01-01"),
		release("b", "", "", model.TypeAlbum, "2024-06-01"),
		release("c", "", "", model.TypeSingle, "2023-01-01"),
	}

	got := Sort(in, SortDateDesc)
	if got[0].ID != "b" {
		t.Errorf("first of date-desc = %q, want %q", got[0].ID, "b")
	}
}

func TestLabels(t *testing.T) {
	if CategoryAll.Label() != "All" {
		t.Errorf("CategoryAll.Label() = %q", CategoryAll.Label())
	}
	if Category(model.TypeCollab).Label() != "Collaboration" {
		t.Errorf("collab label = %q", Category(model.TypeCollab).Label())
	}
	if !SortDateAsc.Valid() || SortKey("nope").Valid() {
		t.Error("Valid() misreports known/unknown keys")
	}
	if len(Categories()) != 1+len(model.PrimaryTypes) {
		t.Errorf("Categories() = %v", Categories())
	}
}
