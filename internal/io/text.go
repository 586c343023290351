package ioutils

import (
	"image"
	"os"
	"unicode/utf8"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	apperrors "github.com/handiism/art-exposure/internal/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Caption placement, measured from the bottom edge of the framed image.
const (
	titleBottomOffset  = 275
	artistBottomOffset = 250
)

// CaptionBottomMultiplier is the bottom border multiplier used when a
// caption is rendered: three border widths leave room for both lines.
const CaptionBottomMultiplier = 3

// LoadFont loads the caption font.
//
// name is resolved in order:
//   - "" selects the embedded Go Regular font
//   - an existing file path is read directly
//   - anything else is looked up as a system font name, e.g. "Arial.ttf"
//
// A failure is an errors.KindFont error.
//
// Example:
//
//	f, err := LoadFont("/Library/Fonts/Georgia.ttf")
func LoadFont(name string) (*truetype.Font, error) {
	if name == "" {
		return parseFont(goregular.TTF, "Go Regular")
	}

	path := name
	if _, err := os.Stat(name); err != nil {
		found, findErr := findfont.Find(name)
		if findErr != nil {
			return nil, apperrors.Wrap(apperrors.KindFont, findErr, "font %q not found", name)
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindFont, err, "reading font %s", path)
	}
	return parseFont(data, path)
}

func parseFont(data []byte, name string) (*truetype.Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindFont, err, "parsing font %s", name)
	}
	return f, nil
}

// CaptionLayout is where and how large OverlayText draws each line.
// Points are the top-left corner of the text line.
type CaptionLayout struct {
	TitleScale  float64
	TitleAt     image.Point
	ArtistScale float64
	ArtistAt    image.Point
}

// LayoutCaption computes the caption geometry for a width x height image.
//
// The glyph scale is the image width divided by the character count, a
// rough fit that ignores real glyph widths. The artist line uses half that
// ratio and sits below the title, shifted down by the title scale.
// Long strings are neither wrapped nor clipped.
func LayoutCaption(width, height int, title, artist string) CaptionLayout {
	var l CaptionLayout
	if n := utf8.RuneCountInString(title); n > 0 {
		l.TitleScale = float64(width) / float64(n)
	}
	if n := utf8.RuneCountInString(artist); n > 0 {
		l.ArtistScale = 0.5 * float64(width) / float64(n)
	}
	l.TitleAt = image.Pt(int(0.3*float64(width)), height-titleBottomOffset)
	l.ArtistAt = image.Pt(int(0.4*float64(width)), height-artistBottomOffset+int(l.TitleScale))
	return l
}

// OverlayText draws title and artist in opaque black onto img, in place.
//
// Empty strings are skipped.
func (s *ImageService) OverlayText(img *image.NRGBA, title, artist string, f *truetype.Font) {
	l := LayoutCaption(img.Rect.Dx(), img.Rect.Dy(), title, artist)

	if title != "" {
		drawLine(img, f, l.TitleScale, l.TitleAt, title)
	}
	if artist != "" {
		drawLine(img, f, l.ArtistScale, l.ArtistAt, artist)
	}
}

// drawLine draws text with its top-left corner at at. scale is the pixel
// height of the line, from the font's ascender to its descender.
func drawLine(img *image.NRGBA, f *truetype.Font, scale float64, at image.Point, text string) {
	face := truetype.NewFace(f, &truetype.Options{
		Size:    emSize(f, scale),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(at.X), Y: fixed.I(at.Y) + face.Metrics().Ascent},
	}
	d.DrawString(text)
}

// emSize converts a line height in pixels into the em size truetype
// expects at 72 DPI.
func emSize(f *truetype.Font, pixelHeight float64) float64 {
	upem := float64(f.FUnitsPerEm())

	// At one pixel per font unit the metrics are the unscaled font values.
	ref := truetype.NewFace(f, &truetype.Options{Size: upem, DPI: 72})
	defer ref.Close()
	m := ref.Metrics()

	extent := float64(m.Ascent+m.Descent) / 64
	if extent <= 0 {
		return pixelHeight
	}
	return pixelHeight * upem / extent
}
