package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvDiscographyURL  = "RTK_DISCOGRAPHY_URL"
	EnvVideoURL        = "RTK_VIDEO_URL"
	EnvPreferencesPath = "RTK_PREFERENCES_PATH"
	EnvLogLevel        = "RTK_LOG_LEVEL"
	EnvRequestTimeout  = "RTK_REQUEST_TIMEOUT"
)

// LoadEnv loads variables from .env files into the process environment.
// Files that do not exist are skipped; variables already set win.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides settings from RTK_* environment variables and
// re-validates the result. An unparseable RTK_REQUEST_TIMEOUT is an error.
func (s *Settings) ApplyEnv() error {
	if v := os.Getenv(EnvDiscographyURL); v != "" {
		s.DiscographyURL = v
	}
	if v := os.Getenv(EnvVideoURL); v != "" {
		s.VideoURL = v
	}
	if v := os.Getenv(EnvPreferencesPath); v != "" {
		s.PreferencesPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRequestTimeout, err)
		}
		s.RequestTimeout = secs
	}
	return s.Validate()
}
