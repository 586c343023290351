package ioutils

import (
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	apperrors "github.com/handiism/art-exposure/internal/errors"
	"github.com/spf13/afero"
)

// SanitizeFileName maps name to a portable file name.
//
// ASCII letters, digits, '-', '_' and '.' are kept; every other character,
// spaces included, becomes one underscore. The output has exactly one
// character per input character.
//
// Example:
//
//	SanitizeFileName("Monet / Sunrise: 1872.png") // "Monet___Sunrise__1872.png"
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ManifestName is the file listing the images a Workspace has written.
// Prune only ever removes files named in it.
const ManifestName = ".art-exposure-manifest"

// Workspace is the directory wallpapers are written to.
//
// Example:
//
//	ws := NewWorkspace(afero.NewOsFs(), "/home/me/.art-exposure", NewImageService())
//	if err := ws.Init(); err != nil {
//	    return err
//	}
//	path, err := ws.Save("Monet_-_Sunrise.png", img)
//	ws.Prune(filepath.Base(path))
type Workspace struct {
	fs     afero.Fs
	dir    string
	images *ImageService
}

// NewWorkspace creates a Workspace rooted at dir on fs.
func NewWorkspace(fs afero.Fs, dir string, images *ImageService) *Workspace {
	return &Workspace{fs: fs, dir: dir, images: images}
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// Path returns the full path of name inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Init creates the workspace directory and its parents (mode 0755).
func (w *Workspace) Init() error {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, err, "creating %s", w.dir)
	}
	return nil
}

// Save encodes img as PNG under name and returns the full path.
//
// The image is written to a temporary file first and renamed into place,
// so name either holds the complete image or is left untouched.
func (w *Workspace) Save(name string, img image.Image) (string, error) {
	final := w.Path(name)
	tmp := w.Path("." + uuid.NewString() + ".tmp")

	f, err := w.fs.Create(tmp)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindPersistence, err, "creating %s", tmp)
	}

	if err := w.images.EncodePNG(f, img); err != nil {
		f.Close()
		w.fs.Remove(tmp)
		return "", apperrors.Wrap(apperrors.KindPersistence, err, "encoding %s", name)
	}
	if err := f.Close(); err != nil {
		w.fs.Remove(tmp)
		return "", apperrors.Wrap(apperrors.KindPersistence, err, "writing %s", name)
	}

	if err := w.record(name); err != nil {
		w.fs.Remove(tmp)
		return "", err
	}

	if err := w.fs.Rename(tmp, final); err != nil {
		w.fs.Remove(tmp)
		return "", apperrors.Wrap(apperrors.KindPersistence, err, "moving image to %s", final)
	}
	return final, nil
}

// Prune removes images written by earlier Saves, except keep.
//
// Only names listed in the manifest are considered, so other files in the
// directory are never touched. Entries whose file is already gone are
// dropped. Failures do not stop the sweep; they are returned alongside the
// removed paths and the entry stays listed.
func (w *Workspace) Prune(keep string) (removed []string, errs []error) {
	names, err := w.manifest()
	if err != nil {
		return nil, []error{err}
	}

	var kept []string
	for _, name := range names {
		if name == keep {
			kept = append(kept, name)
			continue
		}

		path := w.Path(name)
		info, err := w.fs.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil || !info.Mode().IsRegular() {
			kept = append(kept, name)
			continue
		}

		if err := w.fs.Remove(path); err != nil {
			errs = append(errs, apperrors.Wrap(apperrors.KindPersistence, err, "removing %s", path))
			kept = append(kept, name)
			continue
		}
		removed = append(removed, path)
	}

	if len(kept) == len(names) {
		return removed, errs
	}
	if err := w.writeManifest(kept); err != nil {
		errs = append(errs, err)
	}
	return removed, errs
}

// record adds name to the manifest.
func (w *Workspace) record(name string) error {
	names, err := w.manifest()
	if err != nil {
		return err
	}
	if slices.Contains(names, name) {
		return nil
	}
	return w.writeManifest(append(names, name))
}

// manifest returns the names listed in the manifest. A missing manifest is
// empty. Lines that are not plain file names in the workspace are skipped.
func (w *Workspace) manifest() ([]string, error) {
	data, err := afero.ReadFile(w.fs, w.Path(ManifestName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, err, "reading manifest")
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		name := strings.TrimSpace(line)
		if name == "" || name == "." || name == ".." || name == ManifestName || filepath.Base(name) != name {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (w *Workspace) writeManifest(names []string) error {
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	if err := afero.WriteFile(w.fs, w.Path(ManifestName), []byte(b.String()), 0o644); err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, err, "writing manifest")
	}
	return nil
}
