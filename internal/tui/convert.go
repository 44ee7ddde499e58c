// Package tui renders styles and theme previews on the terminal.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gblmrn/ttyper/internal/style"
)

// Convert converts a style to tcell.Style.
func Convert(s style.Style) tcell.Style {
	st := tcell.StyleDefault

	if s.Foreground != nil {
		st = st.Foreground(convertColor(*s.Foreground))
	}
	if s.Background != nil {
		st = st.Background(convertColor(*s.Background))
	}

	if s.Modifiers.Has(style.ModBold) {
		st = st.Bold(true)
	}
	if s.Modifiers.Has(style.ModDim) {
		st = st.Dim(true)
	}
	if s.Modifiers.Has(style.ModItalic) {
		st = st.Italic(true)
	}
	if s.Modifiers.Has(style.ModUnderlined) {
		st = st.Underline(true)
	}
	// tcell has a single blink attribute; both speeds map to it.
	if s.Modifiers.Has(style.ModSlowBlink) || s.Modifiers.Has(style.ModRapidBlink) {
		st = st.Blink(true)
	}
	if s.Modifiers.Has(style.ModReversed) {
		st = st.Reverse(true)
	}
	if s.Modifiers.Has(style.ModCrossedOut) {
		st = st.StrikeThrough(true)
	}
	// ModHidden has no tcell attribute and is dropped here.

	return st
}

// convertColor converts a color to tcell.Color.
func convertColor(c style.Color) tcell.Color {
	if c.IsReset() {
		return tcell.ColorReset
	}
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
