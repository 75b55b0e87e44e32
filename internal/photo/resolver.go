// Package photo locates and loads the per-person photograph for a
// roster record.
package photo

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/youruser/idcard/internal/roster"
)

var (
	// ErrPhotoNotFound means no file on disk matches the record. The
	// caller is expected to skip the record and keep going.
	ErrPhotoNotFound = errors.New("photo not found")
	// ErrBadImage means a file was found but could not be decoded.
	ErrBadImage = errors.New("bad image data")
)

// Extensions tried, in order, when resolving by ID convention.
// Matching ignores extension case so A1.Png and A1.JPG both resolve.
var photoExts = []string{".png", ".jpg", ".jpeg"}

type Resolver struct {
	Dir string
}

// Resolve returns the record's photo, EXIF-corrected. An explicit
// photo filename in the sheet wins; otherwise <ID>.<ext> is tried for
// the known image extensions.
func (rv Resolver) Resolve(rec roster.Record) (image.Image, error) {
	path, err := rv.Path(rec)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding photo %s for %s: %v: %w", path, rec.ID, err, ErrBadImage)
	}
	return img, nil
}

// Path finds the photo file for a record without decoding it.
func (rv Resolver) Path(rec roster.Record) (string, error) {
	if rec.Photo != "" {
		p := filepath.Join(rv.Dir, rec.Photo)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		return "", fmt.Errorf("photo %s for record %s: %w", p, rec.ID, ErrPhotoNotFound)
	}
	entries, err := os.ReadDir(rv.Dir)
	if err != nil {
		return "", fmt.Errorf("reading photo dir %s: %w", rv.Dir, err)
	}
	for _, ext := range photoExts {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if strings.EqualFold(filepath.Ext(name), ext) &&
				strings.TrimSuffix(name, filepath.Ext(name)) == rec.ID {
				return filepath.Join(rv.Dir, name), nil
			}
		}
	}
	return "", fmt.Errorf("no photo in %s for record %s: %w", rv.Dir, rec.ID, ErrPhotoNotFound)
}
