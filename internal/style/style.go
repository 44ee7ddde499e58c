package style

import "strings"

// Style represents the visual style of text. A nil Foreground or
// Background inherits the terminal default; the zero value is the
// default style.
type Style struct {
	Foreground *Color
	Background *Color
	Modifiers  Modifier
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{Foreground: &fg}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = &fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = &bg
	return s
}

// WithModifiers returns a new style with the given modifier set.
func (s Style) WithModifiers(m Modifier) Style {
	s.Modifiers = m
	return s
}

// IsDefault returns true if this is the default style.
func (s Style) IsDefault() bool {
	return s.Foreground == nil && s.Background == nil && s.Modifiers == ModNone
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return colorPtrEqual(s.Foreground, other.Foreground) &&
		colorPtrEqual(s.Background, other.Background) &&
		s.Modifiers == other.Modifiers
}

func colorPtrEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(*b)
}

// ParseStyle parses a style string of the form "<fg>[:<bg>][;<modifier>]*".
//
// The string splits once on ";" into a color section and a modifier
// section, and the color section splits once on ":" into foreground and
// background tokens; a missing background is treated as "none". A color
// token of "none" or "" leaves that side unset. The modifier section may
// carry one trailing ";". The token is consumed exactly as given.
func ParseStyle(token string) (Style, error) {
	colors, mods, _ := strings.Cut(token, ";")
	fgTok, bgTok, hasBg := strings.Cut(colors, ":")
	if !hasBg {
		bgTok = "none"
	}

	var s Style
	if fgTok != "none" && fgTok != "" {
		fg, err := ParseColor(fgTok)
		if err != nil {
			return Style{}, err
		}
		s.Foreground = &fg
	}
	if bgTok != "none" && bgTok != "" {
		bg, err := ParseColor(bgTok)
		if err != nil {
			return Style{}, err
		}
		s.Background = &bg
	}

	for _, name := range splitModifiers(mods) {
		m, err := ParseModifier(name)
		if err != nil {
			return Style{}, err
		}
		s.Modifiers = s.Modifiers.With(m)
	}
	return s, nil
}

// splitModifiers splits the modifier section on ";" with exactly one
// trailing empty token elided, so "bold;" parses like "bold" while the
// empty token in "bold;;italic" still surfaces as an error.
func splitModifiers(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// String returns the style in the configuration mini-language, so that
// any style produced by ParseStyle round-trips through it.
func (s Style) String() string {
	if s.IsDefault() {
		return "none"
	}
	var b strings.Builder
	if s.Foreground != nil {
		b.WriteString(s.Foreground.String())
	} else {
		b.WriteString("none")
	}
	if s.Background != nil {
		b.WriteByte(':')
		b.WriteString(s.Background.String())
	}
	for _, e := range modifierOrder {
		if s.Modifiers.Has(e.mod) {
			b.WriteByte(';')
			b.WriteString(e.name)
		}
	}
	return b.String()
}
