package exposure

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/handiism/art-exposure/internal/config"
	"github.com/handiism/art-exposure/internal/desktop"
	apperrors "github.com/handiism/art-exposure/internal/errors"
	"github.com/handiism/art-exposure/internal/http"
	ioutils "github.com/handiism/art-exposure/internal/io"
	"github.com/handiism/art-exposure/internal/met"
	"github.com/handiism/art-exposure/internal/model"
	"github.com/handiism/art-exposure/internal/selector"
	"github.com/spf13/afero"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result describes a completed run.
type Result struct {
	Artwork model.Artwork

	// Path is where the framed image was written.
	Path string

	// Attempts is the number of lookups the selector used.
	Attempts int

	// Bytes is the size of the downloaded source image.
	Bytes int

	// Width and Height are the dimensions of the saved image.
	Width, Height int

	// Pruned lists the previous images that were removed.
	Pruned []string

	// WallpaperSet is false when setting the wallpaper was disabled,
	// unsupported or failed.
	WallpaperSet bool
}

// Option customizes a Manager.
type Option func(*Manager)

// WithFs sets the filesystem the workspace is written to.
func WithFs(fs afero.Fs) Option {
	return func(m *Manager) { m.fs = fs }
}

// WithRandomSource sets the candidate picker.
func WithRandomSource(src selector.RandomSource) Option {
	return func(m *Manager) { m.random = src }
}

// WithDisplay sets the display height source.
func WithDisplay(d desktop.Display) Option {
	return func(m *Manager) { m.display = d }
}

// WithSetter sets the wallpaper setter.
func WithSetter(s desktop.Setter) Option {
	return func(m *Manager) { m.setter = s }
}

// WithRunner sets the command runner used by the default display and
// wallpaper setter.
func WithRunner(r desktop.Runner) Option {
	return func(m *Manager) { m.runner = r }
}

// WithPlatform overrides the GOOS value and home directory used to pick
// the platform implementations.
func WithPlatform(goos, homeDir string) Option {
	return func(m *Manager) {
		m.goos = goos
		m.homeDir = homeDir
		m.homeErr = nil
	}
}

// Manager runs the fetch, frame and apply pipeline once.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	met        *met.Client
	images     *ioutils.ImageService

	fs      afero.Fs
	random  selector.RandomSource
	display desktop.Display
	setter  desktop.Setter
	runner  desktop.Runner
	goos    string
	homeDir string
	homeErr error

	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) *Manager {
	httpClient := http.NewClient(settings.Timeout.Duration, settings.UserAgent)
	homeDir, homeErr := os.UserHomeDir()

	m := &Manager{
		settings:   settings,
		httpClient: httpClient,
		met:        met.NewClient(httpClient, settings.APIBaseURL),
		images:     ioutils.NewImageService(),
		fs:         afero.NewOsFs(),
		runner:     desktop.ExecRunner{},
		goos:       runtime.GOOS,
		homeDir:    homeDir,
		homeErr:    homeErr,
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.random == nil {
		m.random = selector.NewRandomSource(time.Now().UnixNano())
	}
	return m
}

// Run performs one full pass.
//
// Search, resolution, download, decode, font and save failures abort the
// run. Pruning and wallpaper failures are reported through progress
// events and leave the saved image in place.
func (m *Manager) Run(ctx context.Context) (*Result, error) {
	workspace := ioutils.NewWorkspace(m.fs, m.settings.OutputDir, m.images)
	if err := workspace.Init(); err != nil {
		return nil, err
	}

	display, err := m.resolveDisplay()
	if err != nil {
		return nil, err
	}
	height, err := display.Height(ctx)
	if err != nil {
		return nil, err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Target height: %dpx", height), Level: LevelVerbose})

	// Search
	m.progress(ProgressEvent{Message: fmt.Sprintf("Searching for %q", m.settings.Query), Level: LevelInfo})
	candidates, err := m.met.Search(ctx, m.settings.Query, m.settings.HasImages)
	if err != nil {
		return nil, err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d objects", candidates.Len()), Level: LevelInfo})

	// Resolve
	result := &Result{}
	sel := selector.New(m.random, m.settings.MaxTries)
	sel.OnAttempt = func(a selector.Attempt) {
		result.Attempts = a.N
		if a.Missing {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Attempt %d/%d: object %d has no image", a.N, sel.MaxTries(), a.ObjectID), Level: LevelVerbose})
			return
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Attempt %d/%d: %v", a.N, sel.MaxTries(), a.Err), Level: LevelWarning})
	}

	art, err := sel.Resolve(ctx, candidates, m.met.Object)
	if err != nil {
		return nil, err
	}
	result.Attempts++
	result.Artwork = art
	m.progress(ProgressEvent{Message: fmt.Sprintf("Selected: %s", art), Level: LevelInfo})
	if art.Date != "" {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Date: %s", art.Date), Level: LevelVerbose})
	}
	if art.ObjectURL != "" {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Object page: %s", art.ObjectURL), Level: LevelVerbose})
	}

	// Download
	data, err := m.httpClient.DownloadBytes(ctx, art.ImageURL, m.downloadProgress())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, apperrors.Wrap(apperrors.KindDownload, err, "downloading %s", art.ImageURL)
	}
	result.Bytes = len(data)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded %.2f MB", float64(len(data))/1024/1024), Level: LevelVerbose})

	// Frame
	framed, err := m.frame(data, height, art)
	if err != nil {
		return nil, err
	}
	result.Width, result.Height = framed.Rect.Dx(), framed.Rect.Dy()

	// Save
	name := ioutils.SanitizeFileName(art.FileName())
	path, err := workspace.Save(name, framed)
	if err != nil {
		return nil, err
	}
	result.Path = path
	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved %s (%dx%d)", path, result.Width, result.Height), Level: LevelSuccess})

	removed, errs := workspace.Prune(filepath.Base(path))
	for _, p := range removed {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Removed %s", p), Level: LevelVerbose})
	}
	for _, err := range errs {
		m.progress(ProgressEvent{Message: err.Error(), Level: LevelWarning})
	}
	result.Pruned = removed

	// Apply
	if !m.settings.SetWallpaper {
		return result, nil
	}
	result.WallpaperSet = m.apply(ctx, path)
	return result, nil
}

// frame decodes data and runs resize, border and the optional caption.
func (m *Manager) frame(data []byte, height int, art model.Artwork) (*image.NRGBA, error) {
	img, err := m.images.Decode(data)
	if err != nil {
		return nil, err
	}

	resized, err := m.images.Resize(img, height)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindDecode, err, "resizing")
	}

	if !m.settings.Caption {
		return m.images.AddBorder(resized, m.settings.BorderWidth, 1), nil
	}

	f, err := ioutils.LoadFont(m.settings.Font)
	if err != nil {
		return nil, err
	}
	framed := m.images.AddBorder(resized, m.settings.BorderWidth, ioutils.CaptionBottomMultiplier)
	m.images.OverlayText(framed, art.Title, art.Artist, f)
	return framed, nil
}

func (m *Manager) apply(ctx context.Context, path string) bool {
	setter := m.setter
	if setter == nil {
		if m.homeErr != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Home directory unknown: %v", m.homeErr), Level: LevelWarning})
		}
		s, err := desktop.NewSetter(m.goos, m.runner, m.homeDir)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Wallpaper not set: %v", err), Level: LevelWarning})
			return false
		}
		if mac, ok := s.(*desktop.MacSetter); ok {
			mac.OnWarning = func(err error) {
				m.progress(ProgressEvent{Message: err.Error(), Level: LevelWarning})
			}
		}
		setter = s
	}

	if err := setter.Set(ctx, path); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error setting wallpaper: %v", err), Level: LevelError})
		return false
	}
	m.progress(ProgressEvent{Message: "Wallpaper set", Level: LevelSuccess})
	return true
}

// downloadProgress reports every completed quarter of a download whose
// size is known.
func (m *Manager) downloadProgress() func(written, total int64) {
	var reported int64
	return func(written, total int64) {
		if total <= 0 {
			return
		}
		quarter := written * 4 / total
		if quarter > reported {
			reported = quarter
			m.progress(ProgressEvent{Message: fmt.Sprintf("Downloading: %d%%", quarter*25), Level: LevelVerbose})
		}
	}
}

func (m *Manager) resolveDisplay() (desktop.Display, error) {
	if m.display != nil {
		return m.display, nil
	}
	return desktop.NewDisplay(m.goos, m.runner, m.settings.DisplayHeight)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
