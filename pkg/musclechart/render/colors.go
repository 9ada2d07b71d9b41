package render

import (
	"fmt"
	"image/color"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":  {A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"red":    {R: 255, A: 255},
	"green":  {G: 128, A: 255},
	"blue":   {B: 255, A: 255},
	"yellow": {R: 255, G: 255, A: 255},
	"orange": {R: 255, G: 165, A: 255},
	"purple": {R: 128, B: 128, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
}

// ParseColor resolves a color name or a #rrggbb hex string.
func ParseColor(name string) (color.RGBA, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(name, "#")
	if len(hex) == 6 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", name)
}

// colorOrBlack is ParseColor with a black fallback.
func colorOrBlack(name string) color.RGBA {
	c, err := ParseColor(name)
	if err != nil {
		return namedColors["black"]
	}
	return c
}

// hexColor returns c as RRGGBB, the form excelize expects.
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
