package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	// Shield the test from IDCARD_* values in the caller's shell.
	for _, k := range []string{
		"IDCARD_CSV", "IDCARD_TEMPLATE", "IDCARD_PHOTOS", "IDCARD_OUTPUT",
		"IDCARD_PHOTO_X", "IDCARD_PHOTO_Y", "IDCARD_PHOTO_W", "IDCARD_PHOTO_H",
		"IDCARD_TEXT_X", "IDCARD_TEXT_Y", "IDCARD_WRAP_WIDTH", "IDCARD_SECTION_GAP",
		"IDCARD_FONT_NAME_SIZE", "IDCARD_TEXT_COLOR", "IDCARD_ROLE_COLOR", "IDCARD_QR",
	} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "id_data.csv", cfg.CSVPath)
	assert.Equal(t, "id_template.png", cfg.TemplatePath)
	assert.Equal(t, "photos", cfg.PhotoDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 520, cfg.PhotoX)
	assert.Equal(t, 200, cfg.PhotoY)
	assert.Equal(t, 180, cfg.PhotoWidth)
	assert.Equal(t, 396, cfg.TextY)
	assert.Equal(t, 260, cfg.WrapWidth)
	assert.Equal(t, float64(56), cfg.FontNameSize)
	assert.True(t, cfg.QREnabled)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("IDCARD_CSV", "people.csv")
	t.Setenv("IDCARD_PHOTO_W", "240")
	t.Setenv("IDCARD_QR", "false")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "people.csv", cfg.CSVPath)
	assert.Equal(t, 240, cfg.PhotoWidth)
	assert.False(t, cfg.QREnabled)
}

func TestFromEnv_BadColor(t *testing.T) {
	t.Setenv("IDCARD_TEXT_COLOR", "red")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	c, err := ParseHexColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, c)

	c, err = ParseHexColor("#00ff7f")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 255, B: 127, A: 255}, c)

	_, err = ParseHexColor("000000")
	assert.Error(t, err)
}
