package config

import (
	"fmt"
	"image/color"

	"github.com/caarlos0/env/v11"
)

// Config holds everything a run needs: input locations, output
// location, and the card layout. Every field can be overridden from
// the environment; defaults reproduce the stock template layout.
type Config struct {
	CSVPath      string `env:"IDCARD_CSV" envDefault:"id_data.csv"`
	TemplatePath string `env:"IDCARD_TEMPLATE" envDefault:"id_template.png"`
	PhotoDir     string `env:"IDCARD_PHOTOS" envDefault:"photos"`
	OutputDir    string `env:"IDCARD_OUTPUT" envDefault:"output"`

	PhotoX      int `env:"IDCARD_PHOTO_X" envDefault:"520"`
	PhotoY      int `env:"IDCARD_PHOTO_Y" envDefault:"200"`
	PhotoWidth  int `env:"IDCARD_PHOTO_W" envDefault:"180"`
	PhotoHeight int `env:"IDCARD_PHOTO_H" envDefault:"180"`

	// Text flows downward from (TextX, TextY), wrapped to WrapWidth.
	TextX      int `env:"IDCARD_TEXT_X" envDefault:"520"`
	TextY      int `env:"IDCARD_TEXT_Y" envDefault:"396"`
	WrapWidth  int `env:"IDCARD_WRAP_WIDTH" envDefault:"260"`
	SectionGap int `env:"IDCARD_SECTION_GAP" envDefault:"10"`

	FontNamePath  string  `env:"IDCARD_FONT_NAME"`
	FontIDPath    string  `env:"IDCARD_FONT_ID"`
	FontRolePath  string  `env:"IDCARD_FONT_ROLE"`
	FontSmallPath string  `env:"IDCARD_FONT_SMALL"`
	FontNameSize  float64 `env:"IDCARD_FONT_NAME_SIZE" envDefault:"56"`
	FontIDSize    float64 `env:"IDCARD_FONT_ID_SIZE" envDefault:"34"`
	FontRoleSize  float64 `env:"IDCARD_FONT_ROLE_SIZE" envDefault:"52"`
	FontSmallSize float64 `env:"IDCARD_FONT_SMALL_SIZE" envDefault:"22"`

	TextColorHex string `env:"IDCARD_TEXT_COLOR" envDefault:"#000000"`
	RoleColorHex string `env:"IDCARD_ROLE_COLOR" envDefault:"#FF0000"`

	QREnabled bool `env:"IDCARD_QR" envDefault:"true"`
	QRX       int  `env:"IDCARD_QR_X" envDefault:"48"`
	QRY       int  `env:"IDCARD_QR_Y" envDefault:"48"`
	QRSize    int  `env:"IDCARD_QR_SIZE" envDefault:"120"`

	ServerPort string `env:"PORT" envDefault:"8080"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.TextColor(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.RoleColor(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) TextColor() (color.NRGBA, error) {
	return ParseHexColor(c.TextColorHex)
}

func (c Config) RoleColor() (color.NRGBA, error) {
	return ParseHexColor(c.RoleColorHex)
}

// ParseHexColor parses "#RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
