package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PreferencePrefix namespaces every stored key.
const PreferencePrefix = "rtk_"

// Preference keys (without PreferencePrefix).
const (
	KeyDarkMode   = "dark-mode"
	KeyAnimations = "animations"
)

const animationsDisabled = "disabled"

// DefaultPreferencesPath returns ~/.config/rtk-site/preferences.json
// (or the platform equivalent).
func DefaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, "rtk-site", "preferences.json")
}

// Preferences is a small persistent string map for user choices that
// survive restarts: dark mode and background animation.
//
// Every Set writes the file immediately. Clear removes the file.
//
// Example:
//
//	prefs, err := OpenPreferences(settings.PreferencesPath)
//	dark, err := prefs.ToggleDarkMode()
//	if !prefs.AnimationsEnabled() {
//	    // render static loading indicator
//	}
type Preferences struct {
	path   string
	values map[string]string
}

// OpenPreferences reads the preference file. A missing file yields empty
// preferences; an unreadable one is an error.
func OpenPreferences(path string) (*Preferences, error) {
	p := &Preferences{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &p.values); err != nil {
		return nil, err
	}
	if p.values == nil {
		p.values = make(map[string]string)
	}
	return p, nil
}

// Path returns the backing file.
func (p *Preferences) Path() string {
	return p.path
}

// Get returns a stored value.
func (p *Preferences) Get(key string) (string, bool) {
	v, ok := p.values[PreferencePrefix+key]
	return v, ok
}

// Set stores a value and persists the file.
func (p *Preferences) Set(key, value string) error {
	p.values[PreferencePrefix+key] = value
	return p.save()
}

// Clear forgets every preference and deletes the file.
func (p *Preferences) Clear() error {
	p.values = make(map[string]string)
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DarkMode reports whether dark mode is on. Default: off.
func (p *Preferences) DarkMode() bool {
	v, _ := p.Get(KeyDarkMode)
	return v == "true"
}

// SetDarkMode stores the dark mode flag.
func (p *Preferences) SetDarkMode(on bool) error {
	if on {
		return p.Set(KeyDarkMode, "true")
	}
	return p.Set(KeyDarkMode, "false")
}

// ToggleDarkMode flips dark mode and returns the new value.
func (p *Preferences) ToggleDarkMode() (bool, error) {
	on := !p.DarkMode()
	return on, p.SetDarkMode(on)
}

// AnimationsEnabled reports whether animations are on. Default: on.
func (p *Preferences) AnimationsEnabled() bool {
	v, _ := p.Get(KeyAnimations)
	return v != animationsDisabled
}

// SetAnimations stores the animation flag.
func (p *Preferences) SetAnimations(on bool) error {
	if on {
		return p.Set(KeyAnimations, "enabled")
	}
	return p.Set(KeyAnimations, animationsDisabled)
}

// ToggleAnimations flips the animation flag and returns the new value.
func (p *Preferences) ToggleAnimations() (bool, error) {
	on := !p.AnimationsEnabled()
	return on, p.SetAnimations(on)
}

func (p *Preferences) save() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(p.path, data, 0644)
}
