// Package card renders ID-card images: the shared template with one
// record's photo and text fields composited onto it.
package card

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/youruser/idcard/internal/config"
	"github.com/youruser/idcard/internal/roster"
)

var ErrBadTemplate = errors.New("bad template image")

const (
	nameMaxLines  = 2
	blockMaxLines = 3
	lineSpacing   = 2
)

// Layout is the card geometry and styling, derived from Config once
// per run.
type Layout struct {
	PhotoPos  image.Point
	PhotoSize image.Point

	TextX      int
	TextY      int
	WrapWidth  int
	SectionGap int

	TextColor color.NRGBA
	RoleColor color.NRGBA

	NameFont  FontSpec
	IDFont    FontSpec
	RoleFont  FontSpec
	SmallFont FontSpec

	QREnabled bool
	QRPos     image.Point
	QRSize    int
}

func LayoutFromConfig(cfg config.Config) (Layout, error) {
	textColor, err := cfg.TextColor()
	if err != nil {
		return Layout{}, err
	}
	roleColor, err := cfg.RoleColor()
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		PhotoPos:   image.Pt(cfg.PhotoX, cfg.PhotoY),
		PhotoSize:  image.Pt(cfg.PhotoWidth, cfg.PhotoHeight),
		TextX:      cfg.TextX,
		TextY:      cfg.TextY,
		WrapWidth:  cfg.WrapWidth,
		SectionGap: cfg.SectionGap,
		TextColor:  textColor,
		RoleColor:  roleColor,
		NameFont:   FontSpec{Path: cfg.FontNamePath, Size: cfg.FontNameSize, Min: 28},
		IDFont:     FontSpec{Path: cfg.FontIDPath, Size: cfg.FontIDSize, Min: cfg.FontIDSize},
		RoleFont:   FontSpec{Path: cfg.FontRolePath, Size: cfg.FontRoleSize, Min: 20},
		SmallFont:  FontSpec{Path: cfg.FontSmallPath, Size: cfg.FontSmallSize, Min: cfg.FontSmallSize},
		QREnabled:  cfg.QREnabled,
		QRPos:      image.Pt(cfg.QRX, cfg.QRY),
		QRSize:     cfg.QRSize,
	}, nil
}

// Compositor renders cards from one template. The template is loaded
// once and only ever read; each Render draws on its own copy.
type Compositor struct {
	template image.Image
	layout   Layout
}

func NewCompositor(templatePath string, layout Layout) (*Compositor, error) {
	tmpl, err := imaging.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("loading template %s: %v: %w", templatePath, err, ErrBadTemplate)
	}
	return &Compositor{template: tmpl, layout: layout}, nil
}

// Render produces the finished card for one record. Identical inputs
// yield identical pixels; nothing here is randomized or time-based.
func (c *Compositor) Render(rec roster.Record, photo image.Image) (image.Image, error) {
	if photo == nil {
		return nil, fmt.Errorf("record %s: nil photo", rec.ID)
	}
	l := c.layout
	dc := gg.NewContextForImage(c.template)

	resized := imaging.Resize(photo, l.PhotoSize.X, l.PhotoSize.Y, imaging.Lanczos)
	dc.DrawImage(resized, l.PhotoPos.X, l.PhotoPos.Y)

	y := float64(l.TextY)
	wrapW := float64(l.WrapWidth)
	gap := float64(l.SectionGap)

	name := strings.ToUpper(rec.FullName())
	y = c.drawBlock(dc, name, fitFace(name, l.NameFont, wrapW), l.TextColor, y, nameMaxLines)
	y += gap

	idLine := "ID: " + rec.ID
	y = c.drawBlock(dc, idLine, loadFace(l.IDFont.Path, l.IDFont.Size), l.TextColor, y, 1)
	y += gap

	role := strings.ToUpper(rec.Role)
	if role != "" {
		y = c.drawBlock(dc, role, fitFace(role, l.RoleFont, wrapW), l.RoleColor, y, 1)
		y += gap
	}

	small := loadFace(l.SmallFont.Path, l.SmallFont.Size)
	school := strings.ToUpper(strings.TrimSpace("SCHOOL: " + rec.School))
	y = c.drawBlock(dc, school, small, l.TextColor, y, blockMaxLines)
	y += 4

	district := strings.ToUpper(strings.TrimSpace("DISTRICT: " + rec.District))
	c.drawBlock(dc, district, small, l.TextColor, y, blockMaxLines)

	if l.QREnabled && rec.ID != "" {
		qr, err := QRImage(rec.ID, l.QRSize)
		if err != nil {
			return nil, fmt.Errorf("record %s: qr: %w", rec.ID, err)
		}
		dc.DrawImage(qr, l.QRPos.X, l.QRPos.Y)
	}

	return dc.Image(), nil
}

// drawBlock word-wraps text to the layout width and draws up to
// maxLines lines starting at top coordinate y. Returns the y below
// the drawn block.
func (c *Compositor) drawBlock(dc *gg.Context, text string, face font.Face, col color.NRGBA, y float64, maxLines int) float64 {
	dc.SetFontFace(face)
	dc.SetColor(col)
	lines := dc.WordWrap(text, float64(c.layout.WrapWidth))
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	h := dc.FontHeight()
	for _, ln := range lines {
		dc.DrawString(ln, float64(c.layout.TextX), y+h)
		y += h + lineSpacing
	}
	return y
}
