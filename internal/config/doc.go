// Package config provides configuration management for rtk-site.
//
// This package handles:
//   - Loading and saving settings from JSON or TOML files
//   - Default configuration values
//   - RTK_* environment overrides, optionally read from a .env file
//   - Persistent user preferences (dark mode, animations)
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads the public catalog and video gists
//	// Newest releases first, all categories
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // file exists but is invalid
//	}
//
// # Environment
//
//	_ = config.LoadEnv(".env")
//	err := settings.ApplyEnv() // RTK_DISCOGRAPHY_URL, RTK_VIDEO_URL, ...
//
// # Preferences
//
//	prefs, err := config.OpenPreferences(settings.PreferencesPath)
//	dark, err := prefs.ToggleDarkMode()
//	err = prefs.Clear()
package config
