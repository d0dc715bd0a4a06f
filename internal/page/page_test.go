package page

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/handiism/rtk-site/internal/catalog"
	rtkhttp "github.com/handiism/rtk-site/internal/http"
	"github.com/handiism/rtk-site/internal/model"
	"github.com/handiism/rtk-site/internal/view"
)

const testCatalog = `[
	{"id": "a", "type": "single", "releaseDate": "2024-01-01"},
	{"id": "b", "type": "album", "releaseDate": "2024-06-01"},
	{"id": "c", "type": "single", "releaseDate": "2023-01-01"}
]`

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newLoader(catalogURL, videoURL string) *Loader {
	client := rtkhttp.NewClient()
	return NewLoader(
		catalog.NewRepository(client, catalogURL, nil),
		catalog.NewVideoSource(client, videoURL, nil),
		nil,
	)
}

func TestState_Transitions(t *testing.T) {
	st := NewState()
	if st.Status != StatusIdle || st.Category != view.CategoryAll || st.Sort != view.SortDateDesc {
		t.Fatalf("NewState() = %+v", st)
	}

	loading := st.Loading()
	if loading.Status != StatusLoading {
		t.Errorf("Loading().Status = %v", loading.Status)
	}
	if st.Status != StatusIdle {
		t.Error("Loading() modified the receiver")
	}

	ready := loading.Loaded(nil)
	if ready.Status != StatusReady || ready.Err != nil {
		t.Errorf("Loaded(nil) = %+v", ready)
	}

	boom := errors.New("boom")
	failed := loading.Loaded(boom)
	if failed.Status != StatusLoadError || !errors.Is(failed.Err, boom) {
		t.Errorf("Loaded(err) = %+v", failed)
	}

	filtered := ready.WithCategory(view.Category(model.TypeEP)).WithSort(view.SortTitleAsc)
	if filtered.Status != StatusReady {
		t.Error("filter/sort changes must keep StatusReady")
	}
}

func TestState_Cycling(t *testing.T) {
	st := NewState()
	cats := view.Categories()

	for i := 1; i <= len(cats); i++ {
		st = st.NextCategory()
		if want := cats[i%len(cats)]; st.Category != want {
			t.Fatalf("after %d NextCategory: %q, want %q", i, st.Category, want)
		}
	}

	st = NewState().PrevCategory()
	if st.Category != cats[len(cats)-1] {
		t.Errorf("PrevCategory from all = %q, want %q", st.Category, cats[len(cats)-1])
	}

	st = NewState().NextSort()
	if st.Sort != view.SortKeys()[1] {
		t.Errorf("NextSort from default = %q", st.Sort)
	}
}

func TestStatus_String(t *testing.T) {
	if StatusLoadError.String() != "load-error" || StatusReady.String() != "ready" {
		t.Error("unexpected Status strings")
	}
}

func TestGrid(t *testing.T) {
	all, err := catalog.NewParser(nil).Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	data := &Data{Discography: catalog.NewDiscography(all)}
	ready := NewState().Loaded(nil)

	if _, err := Grid(NewState(), data); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Grid while idle = %v, want ErrNotLoaded", err)
	}

	grid, err := Grid(ready.WithCategory(view.Category(model.TypeSingle)).WithSort(view.SortDateAsc), data)
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if len(grid) != 2 || grid[0].ID != "c" || grid[1].ID != "a" {
		t.Errorf("Grid(single, date-asc) = %v", grid)
	}

	grid, err = Grid(ready.WithCategory(view.Category(model.TypeEP)), data)
	if !errors.Is(err, catalog.ErrEmptyResult) {
		t.Errorf("Grid(ep) error = %v, want ErrEmptyResult", err)
	}
	if grid == nil || len(grid) != 0 {
		t.Errorf("Grid(ep) = %v, want empty slice", grid)
	}

	boom := &catalog.LoadError{Kind: catalog.ErrFetchFailed, URL: "x", Err: errors.New("down")}
	if _, err := Grid(NewState().Loaded(boom), nil); !errors.Is(err, catalog.ErrFetchFailed) {
		t.Errorf("Grid after failed load = %v, want ErrFetchFailed", err)
	}
}

func TestLoader_Load(t *testing.T) {
	catalogSrv := newServer(t, http.StatusOK, testCatalog)
	videoSrv := newServer(t, http.StatusOK, `{"youtube_embed_url": "https://www.youtube.com/embed/abc"}`)

	data, err := newLoader(catalogSrv.URL, videoSrv.URL).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !data.HasVideo() || data.VideoURL != "https://www.youtube.com/embed/abc" {
		t.Errorf("VideoURL = %q, VideoErr = %v", data.VideoURL, data.VideoErr)
	}

	latest, err := Hero(data)
	if err != nil {
		t.Fatalf("Hero failed: %v", err)
	}
	if latest.ID != "b" {
		t.Errorf("Hero = %q, want %q", latest.ID, "b")
	}
}

func TestHero_AlbumTrackNewerThanAlbum(t *testing.T) {
	catalogSrv := newServer(t, http.StatusOK, `[
		{"id": "debut-album", "type": "album", "releaseDate": "2024-01-01"},
		{"id": "debut-bonus", "type": "album-track", "releaseDate": "2024-06-01"}
	]`)

	loader := NewLoader(catalog.NewRepository(rtkhttp.NewClient(), catalogSrv.URL, nil), nil, nil)
	data, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	latest, err := Hero(data)
	if err != nil {
		t.Fatalf("Hero failed: %v", err)
	}
	if latest.ID != "debut-bonus" {
		t.Errorf("Hero = %q, want %q", latest.ID, "debut-bonus")
	}

	// The grid still lists primary releases only.
	grid, err := Grid(NewState().Loaded(nil), data)
	if err != nil || len(grid) != 1 || grid[0].ID != "debut-album" {
		t.Errorf("Grid = %v, %v; want [debut-album]", grid, err)
	}
}

func TestLoader_VideoFailureIsSoft(t *testing.T) {
	catalogSrv := newServer(t, http.StatusOK, testCatalog)
	videoSrv := newServer(t, http.StatusInternalServerError, ``)

	data, err := newLoader(catalogSrv.URL, videoSrv.URL).Load(context.Background())
	if err != nil {
		t.Fatalf("video failure must not fail the load: %v", err)
	}
	if data.HasVideo() {
		t.Error("HasVideo() should be false")
	}
	if len(data.Discography.Releases) != 3 {
		t.Errorf("got %d releases, want 3", len(data.Discography.Releases))
	}
}

func TestLoader_CatalogFailureKeepsVideo(t *testing.T) {
	catalogSrv := newServer(t, http.StatusOK, `{"not": "an array"}`)
	videoSrv := newServer(t, http.StatusOK, `{"youtube_embed_url": "https://www.youtube.com/embed/abc"}`)

	data, err := newLoader(catalogSrv.URL, videoSrv.URL).Load(context.Background())
	if !errors.Is(err, catalog.ErrInvalidShape) {
		t.Fatalf("Load error = %v, want ErrInvalidShape", err)
	}
	if !data.HasVideo() {
		t.Errorf("video should load despite catalog failure, VideoErr = %v", data.VideoErr)
	}
	if _, err := Hero(data); !errors.Is(err, catalog.ErrInvalidShape) {
		t.Errorf("Hero error = %v, want ErrInvalidShape", err)
	}
}

func TestLoader_EmptyCatalog(t *testing.T) {
	catalogSrv := newServer(t, http.StatusOK, `[]`)

	loader := NewLoader(catalog.NewRepository(rtkhttp.NewClient(), catalogSrv.URL, nil), nil, nil)
	data, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !errors.Is(data.VideoErr, catalog.ErrNoVideo) {
		t.Errorf("VideoErr = %v, want ErrNoVideo", data.VideoErr)
	}
	if _, err := Hero(data); !errors.Is(err, catalog.ErrEmptyResult) {
		t.Errorf("Hero on empty catalog = %v, want ErrEmptyResult", err)
	}
}
