package style

import (
	"fmt"
	"strconv"
)

// Color represents a terminal color value.
// Supports true color (RGB), the 16 named palette colors, and the
// terminal's reset color.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index.
	// G and B are ignored in indexed mode.
	Indexed bool
	// Reset indicates the terminal's reset (default) color.
	Reset bool
}

// ColorReset represents the terminal's reset color.
var ColorReset = Color{Reset: true}

// The named terminal colors, as palette indices 0-15.
var (
	ColorBlack        = Color{R: 0, Indexed: true}
	ColorRed          = Color{R: 1, Indexed: true}
	ColorGreen        = Color{R: 2, Indexed: true}
	ColorYellow       = Color{R: 3, Indexed: true}
	ColorBlue         = Color{R: 4, Indexed: true}
	ColorMagenta      = Color{R: 5, Indexed: true}
	ColorCyan         = Color{R: 6, Indexed: true}
	ColorGray         = Color{R: 7, Indexed: true}
	ColorDarkGray     = Color{R: 8, Indexed: true}
	ColorLightRed     = Color{R: 9, Indexed: true}
	ColorLightGreen   = Color{R: 10, Indexed: true}
	ColorLightYellow  = Color{R: 11, Indexed: true}
	ColorLightBlue    = Color{R: 12, Indexed: true}
	ColorLightMagenta = Color{R: 13, Indexed: true}
	ColorLightCyan    = Color{R: 14, Indexed: true}
	ColorWhite        = Color{R: 15, Indexed: true}
)

// colorNames maps color tokens to their values. Matching is exact;
// tokens are neither trimmed nor case folded.
var colorNames = map[string]Color{
	"reset":        ColorReset,
	"black":        ColorBlack,
	"white":        ColorWhite,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"gray":         ColorGray,
	"darkgray":     ColorDarkGray,
	"lightred":     ColorLightRed,
	"lightgreen":   ColorLightGreen,
	"lightyellow":  ColorLightYellow,
	"lightblue":    ColorLightBlue,
	"lightmagenta": ColorLightMagenta,
	"lightcyan":    ColorLightCyan,
}

// indexNames is the reverse of colorNames for the 16 palette entries.
var indexNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "gray",
	"darkgray", "lightred", "lightgreen", "lightyellow", "lightblue",
	"lightmagenta", "lightcyan", "white",
}

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses a color token: a color name, "reset", or six
// hexadecimal digits. The token is consumed exactly as given.
func ParseColor(token string) (Color, error) {
	if c, ok := colorNames[token]; ok {
		return c, nil
	}
	if len(token) == 6 {
		return colorFromHex(token)
	}
	return Color{}, &UnknownColorError{Token: token}
}

// colorFromHex decodes six hex digits as three RRGGBB byte pairs.
func colorFromHex(hex string) (Color, error) {
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return Color{}, &HexColorError{Token: hex, Err: err}
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return Color{}, &HexColorError{Token: hex, Err: err}
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return Color{}, &HexColorError{Token: hex, Err: err}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// IsReset returns true if this is the terminal's reset color.
func (c Color) IsReset() bool {
	return c.Reset
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Reset != other.Reset {
		return false
	}
	if c.Reset {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns the token form of the color, so that values produced by
// ParseColor print as valid configuration input.
func (c Color) String() string {
	if c.Reset {
		return "reset"
	}
	if c.Indexed {
		if int(c.R) < len(indexNames) {
			return indexNames[c.R]
		}
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
