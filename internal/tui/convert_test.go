package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gblmrn/ttyper/internal/style"
)

func TestConvertDefault(t *testing.T) {
	fg, bg, attrs := Convert(style.Style{}).Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("colors = %v/%v, want terminal defaults", fg, bg)
	}
	if attrs != tcell.AttrNone {
		t.Errorf("attrs = %v, want none", attrs)
	}
}

func TestConvertPaletteColors(t *testing.T) {
	s := style.NewStyle(style.ColorBlack).WithBackground(style.ColorWhite)
	fg, bg, _ := Convert(s).Decompose()
	if fg != tcell.PaletteColor(0) {
		t.Errorf("fg = %v, want palette index 0", fg)
	}
	if bg != tcell.PaletteColor(15) {
		t.Errorf("bg = %v, want palette index 15", bg)
	}
}

func TestConvertRGB(t *testing.T) {
	fg, _, _ := Convert(style.NewStyle(style.ColorFromRGB(0, 255, 0))).Decompose()
	if fg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("fg = %v, want RGB(0,255,0)", fg)
	}
}

func TestConvertReset(t *testing.T) {
	fg, _, _ := Convert(style.NewStyle(style.ColorReset)).Decompose()
	if fg != tcell.ColorReset {
		t.Errorf("fg = %v, want reset", fg)
	}
}

func TestConvertModifiers(t *testing.T) {
	tests := []struct {
		mods style.Modifier
		want tcell.AttrMask
	}{
		{style.ModBold, tcell.AttrBold},
		{style.ModDim, tcell.AttrDim},
		{style.ModItalic, tcell.AttrItalic},
		{style.ModUnderlined, tcell.AttrUnderline},
		{style.ModSlowBlink, tcell.AttrBlink},
		{style.ModRapidBlink, tcell.AttrBlink},
		{style.ModSlowBlink | style.ModRapidBlink, tcell.AttrBlink},
		{style.ModReversed, tcell.AttrReverse},
		{style.ModCrossedOut, tcell.AttrStrikeThrough},
		// No terminal counterpart; dropped in conversion.
		{style.ModHidden, tcell.AttrNone},
		{style.ModBold | style.ModItalic, tcell.AttrBold | tcell.AttrItalic},
	}

	for _, tt := range tests {
		_, _, attrs := Convert(style.Style{Modifiers: tt.mods}).Decompose()
		if attrs != tt.want {
			t.Errorf("Convert(%v) attrs = %v, want %v", tt.mods, attrs, tt.want)
		}
	}
}
