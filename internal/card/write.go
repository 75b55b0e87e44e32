package card

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/youruser/idcard/internal/roster"
	"github.com/youruser/idcard/internal/util"
)

// OutputName is the deterministic PNG filename for a record.
func OutputName(rec roster.Record) string {
	return strings.ToUpper(util.SafeFileName(rec.ID)) + ".png"
}

// WritePNG encodes img to path, creating parent directories and
// overwriting any existing file.
func WritePNG(img image.Image, path string) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating output dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
