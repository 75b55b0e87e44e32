package card

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontSpec names a face file and the size range it may be drawn at.
// Min is the floor for shrink-to-fit blocks; blocks that never shrink
// leave it equal to Size.
type FontSpec struct {
	Path string
	Size float64
	Min  float64
}

// loadFace opens the TTF/OTF at path at the given size. An empty or
// unloadable path falls back to the built-in bitmap face so a missing
// font file never fails a render.
func loadFace(path string, size float64) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	face, err := gg.LoadFontFace(path, size)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// fitFace returns the largest face for spec, stepping down one point
// at a time, at which text fits within maxWidth.
func fitFace(text string, spec FontSpec, maxWidth float64) font.Face {
	mc := gg.NewContext(1, 1)
	for size := spec.Size; size >= spec.Min; size-- {
		face := loadFace(spec.Path, size)
		mc.SetFontFace(face)
		if w, _ := mc.MeasureString(text); w <= maxWidth {
			return face
		}
	}
	return loadFace(spec.Path, spec.Min)
}
