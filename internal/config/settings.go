package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/handiism/rtk-site/internal/view"
	"github.com/sirupsen/logrus"
)

// Link is a labelled URL used for navigation and social icons.
type Link struct {
	Label string `json:"label" toml:"label"`
	URL   string `json:"url" toml:"url"`
}

// Settings holds all configuration options.
type Settings struct {
	// Site chrome
	ArtistName  string `json:"artist_name" toml:"artist_name"`
	DisplayName string `json:"display_name" toml:"display_name"`
	Social      []Link `json:"social" toml:"social"`
	Navigation  []Link `json:"navigation" toml:"navigation"`

	// Data sources
	DiscographyURL string  `json:"discography_url" toml:"discography_url"`
	VideoURL       string  `json:"video_url" toml:"video_url"`
	RequestTimeout float64 `json:"request_timeout" toml:"request_timeout"` // seconds

	// Grid defaults
	DefaultCategory string `json:"default_category" toml:"default_category"`
	DefaultSort     string `json:"default_sort" toml:"default_sort"`

	// Preferences (dark mode, animations)
	PreferencesPath string `json:"preferences_path" toml:"preferences_path"`

	// Exports
	PlaylistFormat string `json:"playlist_format" toml:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `json:"m3u_extended" toml:"m3u_extended"`
	ArtworkMaxSize int    `json:"artwork_max_size" toml:"artwork_max_size"`

	// Logging
	LogLevel string `json:"log_level" toml:"log_level"` // debug, info, warn, error
	LogFile  string `json:"log_file" toml:"log_file"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ArtistName:  "RYZE THA KIDD",
		DisplayName: "Ryze Tha Kidd",
		Social: []Link{
			{Label: "Twitter", URL: "https://twitter.com/ryzethakidd"},
			{Label: "Instagram", URL: "https://instagram.com/ryzethakidd"},
			{Label: "YouTube", URL: "https://youtube.com/@RyzeThaKidd"},
			{Label: "Spotify", URL: "https://open.spotify.com"},
			{Label: "Apple Music", URL: "https://music.apple.com"},
			{Label: "SoundCloud", URL: "https://soundcloud.com"},
		},
		Navigation: []Link{
			{Label: "Home", URL: "/"},
			{Label: "About", URL: "about"},
			{Label: "Discography", URL: "discography"},
			{Label: "Contact", URL: "contact"},
		},

		DiscographyURL: "https://gist.githubusercontent.com/ryanduncuft/39ade5f46c7b0a11618f5f016606ecc2/raw/rtk_data.json",
		VideoURL:       "https://gist.githubusercontent.com/ryanduncuft/d67c1848410f5d6a77d914794848bc7d/raw/video_link.json",
		RequestTimeout: 30,

		DefaultCategory: string(view.CategoryAll),
		DefaultSort:     string(view.DefaultSort),

		PreferencesPath: DefaultPreferencesPath(),

		PlaylistFormat: "m3u",
		M3UExtended:    true,
		ArtworkMaxSize: 1000,

		LogLevel: "info",
	}
}

// Load reads settings from a JSON or TOML file.
//
// The format is chosen by extension: ".toml" is decoded as TOML, anything
// else as JSON. Values missing from the file keep their defaults. A
// missing file is not an error; defaults are returned.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), settings); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return settings, nil
}

// Save writes settings to a JSON or TOML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return toml.NewEncoder(file).Encode(s)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks if the configuration is valid.
func (s *Settings) Validate() error {
	if err := validateURL("discography_url", s.DiscographyURL); err != nil {
		return err
	}
	if s.VideoURL != "" {
		if err := validateURL("video_url", s.VideoURL); err != nil {
			return err
		}
	}
	if s.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	if !validCategory(view.Category(s.DefaultCategory)) {
		return fmt.Errorf("invalid default category: %s", s.DefaultCategory)
	}
	if !view.SortKey(s.DefaultSort).Valid() {
		return fmt.Errorf("invalid default sort: %s", s.DefaultSort)
	}

	switch s.PlaylistFormat {
	case "m3u", "pls", "wpl", "zpl":
	default:
		return fmt.Errorf("invalid playlist format: %s (must be m3u, pls, wpl or zpl)", s.PlaylistFormat)
	}

	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s.LogLevel)
	}

	return nil
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL: %s", name, raw)
	}
	return nil
}

func validCategory(c view.Category) bool {
	for _, known := range view.Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Timeout returns RequestTimeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeout * float64(time.Second))
}

// Category returns the configured initial filter chip.
func (s *Settings) Category() view.Category {
	return view.Category(s.DefaultCategory)
}

// Sort returns the configured initial sort key.
func (s *Settings) Sort() view.SortKey {
	return view.SortKey(s.DefaultSort)
}

// ConfigureLogger applies LogLevel and LogFile to logger.
//
// The returned function closes the log file, if one was opened.
func (s *Settings) ConfigureLogger(logger *logrus.Logger) (func() error, error) {
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	if s.LogFile == "" {
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.LogFile), 0755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(file)
	return file.Close, nil
}
