package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gblmrn/ttyper/internal/config"
)

// sampleText is drawn next to each element name in the preview.
const sampleText = "the quick brown fox jumps over the lazy dog"

// Preview opens a full-screen listing of the theme's elements, each
// rendered in its own style. It returns when the user presses q, Esc,
// or Ctrl+C.
func Preview(theme config.Theme) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	for {
		drawPreview(screen, theme)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// drawPreview renders one line per theme element plus a quit hint.
func drawPreview(screen tcell.Screen, theme config.Theme) {
	base := Convert(theme.Default)
	screen.Fill(' ', base)

	_, height := screen.Size()
	row := 1
	for _, el := range theme.Elements() {
		if row >= height-1 {
			break
		}
		x := drawString(screen, 2, row, base, fmt.Sprintf("%-17s", el.Key))
		drawString(screen, x+1, row, Convert(el.Style), sampleText)
		row += 2
	}

	if height > 0 {
		drawString(screen, 2, height-1, base.Dim(true), "press q to quit")
	}

	screen.Show()
}

// drawString draws s starting at (x, y) and returns the column after the
// last cell. Wide runes advance by their display width.
func drawString(screen tcell.Screen, x, y int, st tcell.Style, s string) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
	return x
}
