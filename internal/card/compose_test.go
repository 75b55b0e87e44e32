package card

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/idcard/internal/roster"
)

func testLayout() Layout {
	return Layout{
		PhotoPos:   image.Pt(10, 10),
		PhotoSize:  image.Pt(50, 50),
		TextX:      70,
		TextY:      10,
		WrapWidth:  120,
		SectionGap: 6,
		TextColor:  color.NRGBA{A: 255},
		RoleColor:  color.NRGBA{R: 255, A: 255},
		NameFont:   FontSpec{Size: 14, Min: 10},
		IDFont:     FontSpec{Size: 12, Min: 12},
		RoleFont:   FontSpec{Size: 12, Min: 10},
		SmallFont:  FontSpec{Size: 10, Min: 10},
		QREnabled:  true,
		QRPos:      image.Pt(160, 150),
		QRSize:     40,
	}
}

func testCompositor(t *testing.T) *Compositor {
	t.Helper()
	tmplPath := filepath.Join(t.TempDir(), "template.png")
	tmpl := imaging.New(220, 200, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	require.NoError(t, imaging.Save(tmpl, tmplPath))

	comp, err := NewCompositor(tmplPath, testLayout())
	require.NoError(t, err)
	return comp
}

func testRecord() roster.Record {
	return roster.Record{
		ID:        "A1",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      "Teacher",
		School:    "Lincoln High",
		District:  "North",
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewCompositor_MissingTemplate(t *testing.T) {
	t.Parallel()
	_, err := NewCompositor(filepath.Join(t.TempDir(), "nope.png"), testLayout())
	assert.ErrorIs(t, err, ErrBadTemplate)
}

func TestRender_PastesPhoto(t *testing.T) {
	t.Parallel()
	comp := testCompositor(t)
	photo := imaging.New(30, 30, color.NRGBA{R: 255, A: 255})

	out, err := comp.Render(testRecord(), photo)
	require.NoError(t, err)

	// Inside the photo box the template white is replaced by photo red.
	r, g, _, _ := out.At(30, 30).RGBA()
	assert.Greater(t, r>>8, uint32(200))
	assert.Less(t, g>>8, uint32(50))

	// Far corner outside photo, text, and QR stays template white.
	r, g, b, _ := out.At(215, 5).RGBA()
	assert.Equal(t, uint32(255), r>>8)
	assert.Equal(t, uint32(255), g>>8)
	assert.Equal(t, uint32(255), b>>8)
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()
	comp := testCompositor(t)
	photo := imaging.New(30, 30, color.NRGBA{B: 255, A: 255})
	rec := testRecord()

	first, err := comp.Render(rec, photo)
	require.NoError(t, err)
	second, err := comp.Render(rec, photo)
	require.NoError(t, err)

	assert.Equal(t, encodePNG(t, first), encodePNG(t, second))
}

func TestRender_NilPhoto(t *testing.T) {
	t.Parallel()
	comp := testCompositor(t)
	_, err := comp.Render(testRecord(), nil)
	assert.Error(t, err)
}

func TestRender_TemplateUnchanged(t *testing.T) {
	t.Parallel()
	comp := testCompositor(t)
	photo := imaging.New(30, 30, color.NRGBA{R: 255, A: 255})

	_, err := comp.Render(testRecord(), photo)
	require.NoError(t, err)

	// The shared template must stay pristine between renders.
	r, g, b, _ := comp.template.At(30, 30).RGBA()
	assert.Equal(t, uint32(255), r>>8)
	assert.Equal(t, uint32(255), g>>8)
	assert.Equal(t, uint32(255), b>>8)
}

func TestDrawBlock_LineLimit(t *testing.T) {
	t.Parallel()
	comp := testCompositor(t)
	dc := gg.NewContext(220, 200)
	face := loadFace("", 14)
	text := "A VERY LONG NAME THAT WRAPS ONTO MANY MORE LINES THAN FIT"

	// Precondition: the text really wraps past the limit.
	dc.SetFontFace(face)
	require.Greater(t, len(dc.WordWrap(text, float64(comp.layout.WrapWidth))), 2)

	start := 10.0
	bottom := comp.drawBlock(dc, text, face, color.NRGBA{A: 255}, start, nameMaxLines)
	h := dc.FontHeight()
	assert.InDelta(t, start+float64(nameMaxLines)*(h+lineSpacing), bottom, 0.01,
		"block must stop at %d lines", nameMaxLines)
}

func TestOutputName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "A1.png", OutputName(roster.Record{ID: "A1"}))
	assert.Equal(t, "A_1.png", OutputName(roster.Record{ID: "a 1!"}))
	assert.Equal(t, "UNKNOWN.png", OutputName(roster.Record{}))
}

func TestWritePNG(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	img := imaging.New(10, 10, color.NRGBA{G: 255, A: 255})

	t.Run("creates nested output dir", func(t *testing.T) {
		path := filepath.Join(dir, "out", "cards", "A1.png")
		require.NoError(t, WritePNG(img, path))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(dir, "A1.png")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
		require.NoError(t, WritePNG(img, path))
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
	})
}

func TestQRImage(t *testing.T) {
	t.Parallel()
	img, err := QRImage("A1", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())

	_, err = QRImage("", 100)
	assert.Error(t, err)
}
