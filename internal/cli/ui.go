package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/art-exposure/internal/exposure"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleLink    = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim).Width(10)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

func successLine(format string, args ...any) string {
	return styleSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...)
}

// printSummary writes the result of a run to w.
func printSummary(w io.Writer, r *exposure.Result) {
	var b strings.Builder

	title := r.Artwork.Title
	if title == "" {
		title = "Untitled"
	}
	artist := r.Artwork.Artist
	if artist == "" {
		artist = "Unknown artist"
	}

	b.WriteString(styleTitle.Render(title) + "\n")
	b.WriteString(artist + "\n")
	if r.Artwork.Date != "" {
		b.WriteString(styleDim.Render(r.Artwork.Date) + "\n")
	}
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(styleLabel.Render(label) + value + "\n")
	}
	if r.Artwork.ObjectURL != "" {
		row("Object", styleLink.Render(r.Artwork.ObjectURL))
	}
	row("Saved", r.Path)
	row("Size", fmt.Sprintf("%dx%d", r.Width, r.Height))
	row("Attempts", fmt.Sprintf("%d", r.Attempts))

	if r.WallpaperSet {
		b.WriteString(successLine("Wallpaper set") + "\n")
	} else {
		b.WriteString(styleWarning.Render(iconWarning+" Wallpaper not changed") + "\n")
	}

	fmt.Fprint(w, b.String())
}
