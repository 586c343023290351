package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	apperrors "github.com/handiism/art-exposure/internal/errors"
)

// AppName is used for the default directories.
const AppName = "art-exposure"

// Settings holds all configuration options.
type Settings struct {
	// Search settings
	Query     string `toml:"query"`
	HasImages bool   `toml:"has_images"`
	MaxTries  int    `toml:"max_tries"`

	// Image settings
	BorderWidth   int    `toml:"border_width"`
	DisplayHeight int    `toml:"display_height"` // 0 probes the main display
	Caption       bool   `toml:"caption"`
	Font          string `toml:"font"` // file path or system font name, "" for the embedded font

	// Output settings
	OutputDir    string `toml:"output_dir"`
	SetWallpaper bool   `toml:"set_wallpaper"`

	// HTTP settings
	APIBaseURL string   `toml:"api_base_url"`
	UserAgent  string   `toml:"user_agent"`
	Timeout    Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a string ("60s") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultSettings returns settings with default values.
//
// OutputDir is empty when the home directory cannot be determined, which
// Validate reports.
func DefaultSettings() *Settings {
	return &Settings{
		Query:     "Impressionism",
		HasImages: false,
		MaxTries:  20,

		BorderWidth:   100,
		DisplayHeight: 0,
		Caption:       false,
		Font:          "",

		OutputDir:    defaultOutputDir(),
		SetWallpaper: true,

		APIBaseURL: "https://collectionapi.metmuseum.org/public/collection/v1",
		UserAgent:  "",
		Timeout:    Duration{60 * time.Second},
	}
}

// DefaultPath returns the default config file location,
// <UserConfigDir>/art-exposure/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

func defaultOutputDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, "."+AppName)
}

// Load reads settings from a TOML file.
//
// Keys missing from the file keep their default value. A missing file
// yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if _, err := toml.DecodeFile(path, settings); err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, apperrors.Wrap(apperrors.KindConfig, err, "loading %s", path)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a TOML file, creating parent directories.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	switch {
	case s.MaxTries < 0:
		return apperrors.New(apperrors.KindConfig, "max_tries must not be negative, got %d", s.MaxTries)
	case s.BorderWidth < 0:
		return apperrors.New(apperrors.KindConfig, "border_width must not be negative, got %d", s.BorderWidth)
	case s.DisplayHeight < 0:
		return apperrors.New(apperrors.KindConfig, "display_height must not be negative, got %d", s.DisplayHeight)
	case s.OutputDir == "":
		if _, err := os.UserHomeDir(); err != nil {
			return apperrors.Wrap(apperrors.KindConfig, err, "output_dir must be set")
		}
		return apperrors.New(apperrors.KindConfig, "output_dir must be set")
	}
	return nil
}

// String returns a short summary for debug logs.
func (s *Settings) String() string {
	return fmt.Sprintf("query=%q max_tries=%d border=%d height=%d caption=%t output=%s",
		s.Query, s.MaxTries, s.BorderWidth, s.DisplayHeight, s.Caption, s.OutputDir)
}
