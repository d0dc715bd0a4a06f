package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/rtk-site/internal/view"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if s.Sort() != view.SortDateDesc {
		t.Errorf("Sort() = %q, want %q", s.Sort(), view.SortDateDesc)
	}
	if s.Category() != view.CategoryAll {
		t.Errorf("Category() = %q, want %q", s.Category(), view.CategoryAll)
	}
	if s.Timeout().Seconds() != 30 {
		t.Errorf("Timeout() = %v, want 30s", s.Timeout())
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.DiscographyURL != DefaultSettings().DiscographyURL {
		t.Errorf("DiscographyURL = %q", s.DiscographyURL)
	}
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "config.json",
			content: `{"discography_url": "https://example.com/d.json", "default_sort": "title-asc"}`,
		},
		{
			name: "toml",
			file: "config.toml",
			content: `discography_url = "https://example.com/d.json"
default_sort = "title-asc"

[[social]]
label = "SoundCloud"
url = "https://soundcloud.com/example"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if s.DiscographyURL != "https://example.com/d.json" {
				t.Errorf("DiscographyURL = %q", s.DiscographyURL)
			}
			if s.Sort() != view.SortTitleAsc {
				t.Errorf("Sort() = %q", s.Sort())
			}
			// Untouched fields keep defaults.
			if s.LogLevel != "info" {
				t.Errorf("LogLevel = %q, want info", s.LogLevel)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad json", `{`, "failed to parse"},
		{"bad url", `{"discography_url": "ftp://x"}`, "http(s)"},
		{"empty url", `{"discography_url": ""}`, "cannot be empty"},
		{"bad sort", `{"default_sort": "random"}`, "invalid default sort"},
		{"bad category", `{"default_category": "mixtape"}`, "invalid default category"},
		{"bad playlist", `{"playlist_format": "xspf"}`, "invalid playlist format"},
		{"bad log level", `{"log_level": "loud"}`, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"config.json", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			s := DefaultSettings()
			s.ArtistName = "SOMEONE ELSE"
			s.DefaultCategory = "album"

			if err := s.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got.ArtistName != "SOMEONE ELSE" || got.Category() != "album" {
				t.Errorf("round trip lost values: %+v", got)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDiscographyURL, "https://env.example.com/d.json")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvRequestTimeout, "5")

	s := DefaultSettings()
	if err := s.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if s.DiscographyURL != "https://env.example.com/d.json" {
		t.Errorf("DiscographyURL = %q", s.DiscographyURL)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
	if s.Timeout().Seconds() != 5 {
		t.Errorf("Timeout() = %v", s.Timeout())
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"timeout not a number", EnvRequestTimeout, "soon", EnvRequestTimeout},
		{"negative timeout", EnvRequestTimeout, "-1", "must be positive"},
		{"bad log level", EnvLogLevel, "loud", "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			s := DefaultSettings()
			err := s.ApplyEnv()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ApplyEnv error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("RTK_VIDEO_URL=https://env.example.com/v.json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVideoURL, "")
	os.Unsetenv(EnvVideoURL)

	if err := LoadEnv(filepath.Join(dir, "missing.env"), envFile); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if got := os.Getenv(EnvVideoURL); got != "https://env.example.com/v.json" {
		t.Errorf("%s = %q", EnvVideoURL, got)
	}
}

func TestPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "preferences.json")

	prefs, err := OpenPreferences(path)
	if err != nil {
		t.Fatalf("OpenPreferences failed: %v", err)
	}
	if prefs.DarkMode() {
		t.Error("dark mode should default to off")
	}
	if !prefs.AnimationsEnabled() {
		t.Error("animations should default to on")
	}

	if on, err := prefs.ToggleDarkMode(); err != nil || !on {
		t.Fatalf("ToggleDarkMode() = %v, %v", on, err)
	}
	if on, err := prefs.ToggleAnimations(); err != nil || on {
		t.Fatalf("ToggleAnimations() = %v, %v", on, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("preferences not persisted: %v", err)
	}
	for _, key := range []string{"rtk_dark-mode", "rtk_animations"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("stored file missing key %q: %s", key, data)
		}
	}

	reopened, err := OpenPreferences(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if !reopened.DarkMode() || reopened.AnimationsEnabled() {
		t.Error("preferences did not survive reopen")
	}

	if err := reopened.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Clear should remove the file")
	}
	if reopened.DarkMode() || !reopened.AnimationsEnabled() {
		t.Error("Clear should restore defaults")
	}
	if err := reopened.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}

func TestOpenPreferences_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenPreferences(path); err == nil {
		t.Error("expected error for corrupt preferences")
	}
}
