// Package ioutils provides the image pipeline and file system utilities.
//
// This package contains:
//   - The ImageService stages that turn artwork into a wallpaper
//   - Caption font loading and text overlay
//   - Filename sanitization
//   - The Workspace the final image is written to
//
// # Image Pipeline
//
//	svc := ioutils.NewImageService()
//
//	img, err := svc.Decode(data)
//	resized, err := svc.Resize(img, 1080)              // 1080 px high, aspect kept
//	framed := svc.AddBorder(resized, 100, 3)           // transparent frame, tall bottom
//	svc.OverlayText(framed, art.Title, art.Artist, f)  // optional caption
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Monet / Sunrise: 1872.png") // "Monet___Sunrise__1872.png"
//
// # Workspace
//
// The Workspace writes images atomically and removes the previous ones:
//
//	ws := ioutils.NewWorkspace(afero.NewOsFs(), dir, svc)
//	path, err := ws.Save(name, framed)
//	ws.Prune(name)
package ioutils
