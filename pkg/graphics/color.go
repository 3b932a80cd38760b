// Package graphics provides the color and size values shared by widgets.
package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for alpha normalization.
const maxByte = 255.0

// Color is a CSS color literal such as "red", "#336699" or "rgba(0, 0, 0, 0.5)".
// The zero value means no color.
type Color string

// Basic palette.
const (
	ColorTransparent Color = ""
	ColorRed         Color = "red"
	ColorGreen       Color = "green"
	ColorBlue        Color = "blue"
)

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
// Fully opaque values collapse to the #rrggbb form.
func RGBA(r, g, b uint8, a float64) Color {
	a = clamp01(a)
	if a == 1 {
		return RGB(r, g, b)
	}
	alpha := strconv.FormatFloat(math.Round(a*1000)/1000, 'f', -1, 64)
	return Color(fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, alpha))
}

// FromColor converts any image/color value, such as the entries of
// golang.org/x/image/colornames, into a CSS color literal.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, float64(n.A)/maxByte)
}

// Named looks up an SVG 1.1 color keyword (the CSS named colors) and returns
// it as a Color. Lookup is case-insensitive.
func Named(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := colornames.Map[key]; !ok {
		return ColorTransparent, fmt.Errorf("unknown color name %q", name)
	}
	return Color(key), nil
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c == ColorTransparent
}

// String returns the CSS literal.
func (c Color) String() string {
	return string(c)
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
