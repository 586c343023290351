package desktop

import (
	"bufio"
	"bytes"
	"context"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/handiism/art-exposure/internal/errors"
)

// Display reports the height, in pixels, images should be scaled to.
type Display interface {
	Height(ctx context.Context) (int, error)
}

// StaticDisplay is a Display with a fixed height.
type StaticDisplay int

// Height implements Display.
func (d StaticDisplay) Height(context.Context) (int, error) {
	if d <= 0 {
		return 0, apperrors.New(apperrors.KindDisplay, "invalid display height %d", int(d))
	}
	return int(d), nil
}

// NewDisplay returns the Display for goos.
//
// A positive override always wins. Otherwise macOS probes the main display;
// other platforms get an errors.KindUnsupportedPlatform error.
func NewDisplay(goos string, runner Runner, override int) (Display, error) {
	if override > 0 {
		return StaticDisplay(override), nil
	}
	switch goos {
	case "darwin":
		return &MacDisplay{runner: runner}, nil
	default:
		return nil, apperrors.New(apperrors.KindUnsupportedPlatform, "cannot detect the display height on %s, set it with --height", goos)
	}
}

// MacDisplay reads the main display resolution from system_profiler.
type MacDisplay struct {
	runner Runner
}

// Height implements Display.
func (d *MacDisplay) Height(ctx context.Context) (int, error) {
	out, err := d.runner.Run(ctx, "system_profiler", "SPDisplaysDataType")
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindDisplay, err, "querying displays")
	}
	h, err := ParseMainDisplayHeight(out)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindDisplay, err, "reading display height")
	}
	return h, nil
}

var (
	resolutionRe = regexp.MustCompile(`(?:UI Looks like|Resolution):\s*(\d+)\s*x\s*(\d+)`)
	displayRe    = regexp.MustCompile(`^\s*(.+):\s*$`)
)

// ParseMainDisplayHeight extracts the height of the main display from
// `system_profiler SPDisplaysDataType` output.
//
// Heights are in points, like the desktop frame: the "UI Looks like"
// resolution is preferred, and a raw Retina resolution is halved. The
// display marked "Main Display: Yes" wins; without that marker the first
// display is used.
func ParseMainDisplayHeight(out []byte) (int, error) {
	type display struct {
		ui, raw int
		retina  bool
		main    bool
	}
	var displays []*display
	var cur *display

	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)

		if m := resolutionRe.FindStringSubmatch(trimmed); m != nil {
			if cur == nil {
				cur = &display{}
				displays = append(displays, cur)
			}
			h, _ := strconv.Atoi(m[2])
			if strings.HasPrefix(trimmed, "UI Looks like") {
				cur.ui = h
			} else if cur.raw == 0 {
				cur.raw = h
				cur.retina = strings.Contains(trimmed, "Retina")
			}
			continue
		}
		if strings.HasPrefix(trimmed, "Main Display:") && cur != nil {
			cur.main = strings.Contains(trimmed, "Yes")
			continue
		}
		// A header line deeper than the "Displays:" group starts a new display.
		if displayRe.MatchString(line) && indent(line) >= 8 && trimmed != "Displays:" {
			cur = &display{}
			displays = append(displays, cur)
		}
	}

	height := func(d *display) int {
		switch {
		case d.ui > 0:
			return d.ui
		case d.retina:
			return d.raw / 2
		default:
			return d.raw
		}
	}

	var first *display
	for _, d := range displays {
		if height(d) == 0 {
			continue
		}
		if d.main {
			return height(d), nil
		}
		if first == nil {
			first = d
		}
	}
	if first == nil {
		return 0, apperrors.New(apperrors.KindDisplay, "no display resolution found")
	}
	return height(first), nil
}

func indent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
