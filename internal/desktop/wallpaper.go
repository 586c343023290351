package desktop

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	apperrors "github.com/handiism/art-exposure/internal/errors"
)

// Setter applies an image file as desktop wallpaper.
type Setter interface {
	Set(ctx context.Context, imagePath string) error
}

// NewSetter returns the Setter for goos (a runtime.GOOS value).
//
// Only macOS is supported; other platforms get an
// errors.KindUnsupportedPlatform error.
func NewSetter(goos string, runner Runner, homeDir string) (Setter, error) {
	switch goos {
	case "darwin":
		return &MacSetter{runner: runner, homeDir: homeDir}, nil
	default:
		return nil, apperrors.New(apperrors.KindUnsupportedPlatform, "setting the wallpaper is not supported on %s", goos)
	}
}

// MacSetter sets the wallpaper of every macOS desktop through System Events.
type MacSetter struct {
	runner  Runner
	homeDir string

	// OnWarning, when set, receives failures of the optional
	// "fit to screen" step.
	OnWarning func(error)
}

// AppleScript returns the script that sets imagePath on every desktop.
func AppleScript(imagePath string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(imagePath)
	return fmt.Sprintf(`tell application "System Events" to tell every desktop to set picture to "%s"`, escaped)
}

// DockDatabase returns the path of the Dock desktop picture database.
func (s *MacSetter) DockDatabase() string {
	return filepath.Join(s.homeDir, "Library", "Application Support", "Dock", "desktoppicture.db")
}

// Set implements Setter.
//
// After the picture is set, the "fit to screen" option is written to the
// Dock database with sqlite3. That step is best effort: its failure is
// passed to OnWarning and does not fail Set.
func (s *MacSetter) Set(ctx context.Context, imagePath string) error {
	if _, err := s.runner.Run(ctx, "osascript", "-e", AppleScript(imagePath)); err != nil {
		return apperrors.Wrap(apperrors.KindWallpaper, err, "setting wallpaper to %s", imagePath)
	}

	if s.homeDir == "" {
		if s.OnWarning != nil {
			s.OnWarning(errors.New("skipping fit to screen: home directory unknown"))
		}
		return nil
	}
	if _, err := s.runner.Run(ctx, "sqlite3", s.DockDatabase(), "INSERT INTO data (value) VALUES (1);"); err != nil && s.OnWarning != nil {
		s.OnWarning(fmt.Errorf("setting fit to screen: %w", err))
	}
	return nil
}
