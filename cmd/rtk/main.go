package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/handiism/rtk-site/internal/audio"
	"github.com/handiism/rtk-site/internal/catalog"
	"github.com/handiism/rtk-site/internal/config"
	"github.com/handiism/rtk-site/internal/export"
	rtkhttp "github.com/handiism/rtk-site/internal/http"
	ioutils "github.com/handiism/rtk-site/internal/io"
	"github.com/handiism/rtk-site/internal/model"
	"github.com/handiism/rtk-site/internal/page"
	"github.com/handiism/rtk-site/internal/view"
	"github.com/sirupsen/logrus"
)

// errCancelled reports that an interrupt stopped the command.
var errCancelled = errors.New("cancelled")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errCancelled) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// run executes one command. Deferred cleanup, such as closing the log
// file, has finished by the time it returns.
func run(args []string) error {
	fs := flag.NewFlagSet("rtk", flag.ContinueOnError)

	// Command line flags
	var (
		configFlag   = fs.String("config", "", "Path to config file (.json or .toml)")
		envFlag      = fs.String("env", ".env", "Path to .env file with RTK_* overrides")
		categoryFlag = fs.String("category", "", "Filter: all, album, ep, single, collab (overrides config)")
		sortFlag     = fs.String("sort", "", "Sort: date-desc, date-asc, title-asc, artist-asc (overrides config)")
		formatFlag   = fs.String("format", "text", "Output format: text, json, html")
		playlistFlag = fs.String("playlist", "", "Write a playlist of listen links instead: m3u, pls, wpl, zpl")
		outFlag      = fs.String("out", "", "Output file (default stdout)")
		latestFlag   = fs.Bool("latest", false, "Show only the latest release")
		idFlag       = fs.String("id", "", "Show one release by id, slug or detail path")
		artFlag      = fs.Bool("art", false, "Save the cover of -id as a JPEG")
		sizeFlag     = fs.Int("size", 0, "Maximum artwork size in pixels (overrides config)")
		dirFlag      = fs.String("dir", ".", "Directory for saved artwork")
		tagFlag      = fs.String("tag", "", "Write ID3 tags for -id into this MP3 file")
		verboseFlag  = fs.Bool("verbose", false, "Show debug logging")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// Load config
	if err := config.LoadEnv(*envFlag); err != nil {
		return fmt.Errorf("error loading %s: %w", *envFlag, err)
	}
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
	}

	// Apply flags
	if *categoryFlag != "" {
		settings.DefaultCategory = *categoryFlag
	}
	if *sortFlag != "" {
		settings.DefaultSort = *sortFlag
	}
	if *sizeFlag > 0 {
		settings.ArtworkMaxSize = *sizeFlag
	}
	if *playlistFlag != "" {
		settings.PlaylistFormat = strings.ToLower(*playlistFlag)
	}
	if err := settings.ApplyEnv(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	closeLog, err := settings.ConfigureLogger(logger)
	if err != nil {
		return fmt.Errorf("error opening log: %w", err)
	}
	defer closeLog()
	if *verboseFlag {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	cli := &app{
		settings: settings,
		log:      logger,
		client:   rtkhttp.NewClientWithTimeout(settings.Timeout()),
		format:   *formatFlag,
		out:      *outFlag,
	}

	switch {
	case *tagFlag != "":
		err = cli.tag(ctx, *idFlag, *tagFlag)
	case *artFlag:
		err = cli.artwork(ctx, *idFlag, *dirFlag)
	case *idFlag != "":
		err = cli.detail(ctx, *idFlag)
	case *playlistFlag != "":
		err = cli.playlist(ctx)
	case *latestFlag:
		err = cli.latest(ctx)
	default:
		err = cli.grid(ctx)
	}

	if err != nil && ctx.Err() != nil {
		return errCancelled
	}
	return err
}

type app struct {
	settings *config.Settings
	log      *logrus.Logger
	client   *rtkhttp.Client
	format   string
	out      string
}

func (a *app) repository() *catalog.Repository {
	return catalog.NewRepository(a.client, a.settings.DiscographyURL, a.log)
}

func (a *app) loader() *page.Loader {
	var videos *catalog.VideoSource
	if a.settings.VideoURL != "" {
		videos = catalog.NewVideoSource(a.client, a.settings.VideoURL, a.log)
	}
	return page.NewLoader(a.repository(), videos, a.log)
}

// loadDiscography loads only the catalog, for commands that need no video.
func (a *app) loadDiscography(ctx context.Context) (*catalog.Discography, error) {
	disco, err := a.repository().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load releases: %w", err)
	}
	return disco, nil
}

// findRelease resolves ref and looks it up, suggesting close ids on a miss.
func findRelease(disco *catalog.Discography, ref string) (*model.Release, error) {
	id := catalog.ResolveID(ref)
	if id == "" {
		return nil, errors.New("no release id given (use -id)")
	}

	r, err := disco.Find(id)
	if err != nil {
		if suggestions := disco.Suggest(id, 3); len(suggestions) > 0 {
			return nil, fmt.Errorf("%w: %s (did you mean %s?)", err, id, strings.Join(suggestions, ", "))
		}
		return nil, fmt.Errorf("%w: %s", err, id)
	}
	return r, nil
}

// parentAlbum returns the album or EP an album track belongs to, and the
// track's 1-based position in it.
func parentAlbum(disco *catalog.Discography, track *model.Release) (*model.Release, int) {
	if track.Type != model.TypeAlbumTrack {
		return nil, 0
	}
	for i := range disco.Releases {
		album := &disco.Releases[i]
		if !album.Type.IsCollection() {
			continue
		}
		for n, t := range disco.AlbumTracks(album.ID) {
			if t.ID == track.ID {
				return album, n + 1
			}
		}
	}
	return nil, 0
}

func (a *app) newPage(data *page.Data) *export.Page {
	p := &export.Page{
		ArtistName: a.settings.ArtistName,
		Year:       time.Now().Year(),
		Category:   a.settings.Category(),
		Sort:       a.settings.Sort(),
	}
	for _, l := range a.settings.Navigation {
		p.Navigation = append(p.Navigation, export.Link{Label: l.Label, URL: l.URL})
	}
	for _, l := range a.settings.Social {
		p.Social = append(p.Social, export.Link{Label: l.Label, URL: l.URL})
	}
	if data.HasVideo() {
		p.VideoURL = data.VideoURL
	}
	if hero, err := page.Hero(data); err == nil {
		p.Hero = hero
	}
	return p
}

func (a *app) write(data []byte) error {
	if a.out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := ioutils.WriteFile(a.out, data); err != nil {
		return err
	}
	a.log.WithField("path", a.out).Info("Output written")
	return nil
}

func (a *app) render(p *export.Page) error {
	format, err := export.ParseFormat(a.format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.Render(&buf, format, p); err != nil {
		return err
	}
	return a.write(buf.Bytes())
}

// grid prints the filtered and sorted discography page.
func (a *app) grid(ctx context.Context) error {
	state := page.NewState().
		WithCategory(a.settings.Category()).
		WithSort(a.settings.Sort()).
		Loading()

	data, err := a.loader().Load(ctx)
	state = state.Loaded(err)

	releases, err := page.Grid(state, data)
	switch {
	case errors.Is(err, catalog.ErrEmptyResult):
		p := a.newPage(data)
		p.Releases = releases
		p.Message = "No releases found"
		return a.render(p)
	case err != nil:
		return fmt.Errorf("failed to load releases: %w", err)
	}

	p := a.newPage(data)
	p.Releases = releases
	return a.render(p)
}

// latest prints the homepage hero.
func (a *app) latest(ctx context.Context) error {
	data, err := a.loader().Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load releases: %w", err)
	}

	p := a.newPage(data)
	if p.Hero == nil {
		p.Message = "No latest release available"
	} else {
		p.Releases = []model.Release{*p.Hero}
	}
	return a.render(p)
}

// detail prints one release and, for albums and EPs, its tracklist.
func (a *app) detail(ctx context.Context, ref string) error {
	disco, err := a.loadDiscography(ctx)
	if err != nil {
		return err
	}
	r, err := findRelease(disco, ref)
	if err != nil {
		return err
	}

	p := a.newPage(&page.Data{Discography: disco})
	p.Hero = nil
	p.Releases = []model.Release{*r}
	if r.Type.IsCollection() {
		p.Releases = append(p.Releases, disco.AlbumTracks(r.ID)...)
	}
	return a.render(p)
}

// playlist writes the current grid as a playlist of listen links.
func (a *app) playlist(ctx context.Context) error {
	disco, err := a.loadDiscography(ctx)
	if err != nil {
		return err
	}

	format, err := export.ParsePlaylistFormat(a.settings.PlaylistFormat)
	if err != nil {
		return err
	}

	releases := view.Apply(disco.Releases, a.settings.Category(), a.settings.Sort())
	if len(releases) == 0 {
		return catalog.ErrEmptyResult
	}

	title := fmt.Sprintf("%s - %s", a.settings.DisplayName, a.settings.Category().Label())
	content := export.NewPlaylistCreator(format, a.settings.M3UExtended).CreatePlaylist(title, releases)

	a.log.WithFields(logrus.Fields{
		"entries": len(releases),
		"format":  a.settings.PlaylistFormat,
	}).Debug("Playlist created")

	return a.write([]byte(content))
}

// artwork saves the cover of one release.
func (a *app) artwork(ctx context.Context, ref, dir string) error {
	disco, err := a.loadDiscography(ctx)
	if err != nil {
		return err
	}
	r, err := findRelease(disco, ref)
	if err != nil {
		return err
	}

	path, err := ioutils.NewArtworkService(a.client, a.log).Save(ctx, r, dir, a.settings.ArtworkMaxSize)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Saved %s\n", path)
	return nil
}

// tag writes catalog metadata and cover art for one release into an MP3.
func (a *app) tag(ctx context.Context, ref, file string) error {
	disco, err := a.loadDiscography(ctx)
	if err != nil {
		return err
	}
	r, err := findRelease(disco, ref)
	if err != nil {
		return err
	}

	info := audio.TrackInfo{Release: r}
	info.Album, info.Number = parentAlbum(disco, r)

	cover := r
	if cover.Image == "" && info.Album != nil {
		cover = info.Album
	}
	art, err := ioutils.NewArtworkService(a.client, a.log).Fetch(ctx, cover, a.settings.ArtworkMaxSize)
	if err != nil {
		// Tags are still useful without a cover.
		a.log.WithError(err).Warn("Artwork skipped")
		art = nil
	}

	if err := audio.NewTagger(nil).SaveTags(file, info, art); err != nil {
		return err
	}

	fmt.Printf("✅ Tagged %s as %q\n", file, r.Title)
	return nil
}
