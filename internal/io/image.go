package ioutils

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	// Formats the collection serves besides JPEG and PNG.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	apperrors "github.com/handiism/art-exposure/internal/errors"
)

// ImageService turns downloaded artwork into a wallpaper.
//
// The pipeline is made of independent stages:
//   - Decode the downloaded bytes
//   - Resize to the display height, keeping the aspect ratio
//   - AddBorder to pad the image with a transparent frame
//   - OverlayText to print title and artist under the image (optional)
//   - EncodePNG to produce the output file
//
// Example usage:
//
//	svc := NewImageService()
//
//	img, _ := svc.Decode(data)
//	resized, _ := svc.Resize(img, 1080)
//	framed := svc.AddBorder(resized, 100, 1)
type ImageService struct {
	filter imaging.ResampleFilter
}

// NewImageService creates an ImageService resampling with Lanczos.
func NewImageService() *ImageService {
	return &ImageService{filter: imaging.Lanczos}
}

// Decode parses image bytes (JPEG, PNG, GIF, BMP, TIFF or WebP).
//
// JPEG EXIF orientation is applied so that photographs of objects come out
// upright. A failure is an errors.KindDecode error.
func (s *ImageService) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindDecode, err, "decoding image (%d bytes)", len(data))
	}
	return img, nil
}

// ScaledWidth returns the width that keeps the aspect ratio of a
// width x height image scaled to targetHeight, rounded to the nearest pixel.
//
// Example:
//
//	ScaledWidth(400, 300, 600) // 800
func ScaledWidth(width, height, targetHeight int) int {
	w := int(math.Round(float64(width) * float64(targetHeight) / float64(height)))
	return max(w, 1)
}

// Resize scales img to targetHeight pixels high.
//
// The new width is round(width * targetHeight / height). Resampling uses
// the service filter (Lanczos by default).
func (s *ImageService) Resize(img image.Image, targetHeight int) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("cannot resize empty image")
	}
	if targetHeight <= 0 {
		return nil, fmt.Errorf("invalid target height %d", targetHeight)
	}

	width := ScaledWidth(bounds.Dx(), bounds.Dy(), targetHeight)
	return imaging.Resize(img, width, targetHeight, s.filter), nil
}

// AddBorder pads img with a fully transparent frame.
//
// The result is (w + 2*borderWidth) wide and
// (h + borderWidth + bottomMultiplier*borderWidth) high. Use a
// bottomMultiplier of 1 for an even frame; a larger value reserves room
// for a caption.
//
// Interior pixels are copied unchanged.
func (s *ImageService) AddBorder(img image.Image, borderWidth, bottomMultiplier int) *image.NRGBA {
	src := toNRGBA(img)
	borderWidth = max(borderWidth, 0)
	bottomMultiplier = max(bottomMultiplier, 0)

	w, h := src.Rect.Dx(), src.Rect.Dy()
	// NewNRGBA is zeroed, so every pixel not copied below stays transparent.
	dst := image.NewNRGBA(image.Rect(0, 0, w+2*borderWidth, h+borderWidth+bottomMultiplier*borderWidth))

	rowBytes := w * 4
	for y := 0; y < h; y++ {
		srcOff := y * src.Stride
		dstOff := (y+borderWidth)*dst.Stride + borderWidth*4
		copy(dst.Pix[dstOff:dstOff+rowBytes], src.Pix[srcOff:srcOff+rowBytes])
	}

	return dst
}

// EncodePNG writes img to w as PNG.
func (s *ImageService) EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// toNRGBA returns img as an NRGBA image with its origin at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}
