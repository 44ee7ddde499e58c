package style

import "strings"

// Modifier represents text rendering modifiers (bold, italic, etc.).
type Modifier uint16

// ModNone is the empty modifier set.
const ModNone Modifier = 0

// Modifier flags.
const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderlined
	ModSlowBlink
	ModRapidBlink
	ModReversed
	ModHidden
	ModCrossedOut
)

// modifierNames maps modifier tokens to their flags.
var modifierNames = map[string]Modifier{
	"bold":        ModBold,
	"crossed_out": ModCrossedOut,
	"dim":         ModDim,
	"hidden":      ModHidden,
	"italic":      ModItalic,
	"rapid_blink": ModRapidBlink,
	"reversed":    ModReversed,
	"slow_blink":  ModSlowBlink,
	"underlined":  ModUnderlined,
}

// modifierOrder lists the flags with their tokens in declaration order,
// for deterministic String output.
var modifierOrder = []struct {
	name string
	mod  Modifier
}{
	{"bold", ModBold},
	{"dim", ModDim},
	{"italic", ModItalic},
	{"underlined", ModUnderlined},
	{"slow_blink", ModSlowBlink},
	{"rapid_blink", ModRapidBlink},
	{"reversed", ModReversed},
	{"hidden", ModHidden},
	{"crossed_out", ModCrossedOut},
}

// ParseModifier parses a single modifier token.
func ParseModifier(token string) (Modifier, error) {
	if m, ok := modifierNames[token]; ok {
		return m, nil
	}
	return ModNone, &UnknownModifierError{Token: token}
}

// Has returns true if the modifier set contains the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new modifier set with the given modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new modifier set with the given modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String returns the set modifiers joined with "|", or "none" for the
// empty set.
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	for _, e := range modifierOrder {
		if m.Has(e.mod) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}
