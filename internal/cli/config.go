package cli

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Config holds defaults loadable from a TOML file via --config. Values set
// explicitly on the command line always win over the file.
type Config struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	SpriteWidth  int    `toml:"sprite_width"`
	SpriteHeight int    `toml:"sprite_height"`
	Background   string `toml:"background"`
	Mapping      string `toml:"mapping"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// parseBackground turns a "#RRGGBB" or "#RRGGBBAA" string into a color.
// Without an alpha component the color is fully opaque.
func parseBackground(s string) (color.NRGBA, error) {
	hex := s
	alpha := uint8(255)
	if strings.HasPrefix(hex, "#") && len(hex) == 9 {
		v, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid background color %q", s)
		}
		alpha = uint8(v)
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid background color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
