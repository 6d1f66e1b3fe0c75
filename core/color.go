package core

import (
	"fmt"
	"strings"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack   = RGB{0, 0, 0}
	RGBWhite   = RGB{255, 255, 255}
	RGBRed     = RGB{255, 0, 0}
	RGBGreen   = RGB{0, 128, 0}
	RGBBlue    = RGB{0, 0, 255}
	RGBOrange  = RGB{255, 165, 0}
	RGBDarkRed = RGB{139, 0, 0}
	RGBPurple  = RGB{128, 0, 128}
	RGBYellow  = RGB{255, 255, 0}
	RGBButton  = RGB{76, 175, 80}
)

var namedColors = map[string]RGB{
	"black":   RGBBlack,
	"white":   RGBWhite,
	"red":     RGBRed,
	"green":   RGBGreen,
	"blue":    RGBBlue,
	"orange":  RGBOrange,
	"darkred": RGBDarkRed,
	"purple":  RGBPurple,
	"yellow":  RGBYellow,
}

// ParseColor accepts a CSS-style color name or #rrggbb
func ParseColor(s string) (RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		var c RGB
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err == nil {
			return c, nil
		}
	}
	return RGB{}, fmt.Errorf("unknown color %q", s)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// String returns #rrggbb
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText lets TOML and msgpack-friendly encoders emit colors as #rrggbb
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts anything ParseColor accepts
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
