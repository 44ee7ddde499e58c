package config

import (
	"github.com/gblmrn/ttyper/internal/style"
)

// Theme binds the named UI elements to styles. The zero value leaves
// every element at the terminal default; DefaultTheme is the built-in look.
type Theme struct {
	// Default is the base style for everything not covered below.
	Default style.Style

	// Title is the screen title line.
	Title style.Style

	// PromptUntyped is test text not yet reached.
	PromptUntyped style.Style

	// PromptCursor marks the current input position.
	PromptCursor style.Style

	// PromptCorrect is correctly typed text.
	PromptCorrect style.Style

	// PromptIncorrect is incorrectly typed text.
	PromptIncorrect style.Style

	// ResultsTitle is a heading on the results screen.
	ResultsTitle style.Style

	// ResultsValue is a metric value on the results screen.
	ResultsValue style.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Default:         style.Style{},
		Title:           style.NewStyle(style.ColorWhite).WithModifiers(style.ModBold),
		PromptUntyped:   style.NewStyle(style.ColorDarkGray),
		PromptCursor:    style.Style{}.WithModifiers(style.ModUnderlined),
		PromptCorrect:   style.NewStyle(style.ColorGreen),
		PromptIncorrect: style.NewStyle(style.ColorRed).WithModifiers(style.ModCrossedOut),
		ResultsTitle:    style.NewStyle(style.ColorCyan).WithModifiers(style.ModBold),
		ResultsValue:    style.NewStyle(style.ColorWhite),
	}
}

// ThemeElement pairs a theme key with its style.
type ThemeElement struct {
	Key   string
	Style style.Style
}

// Elements returns the theme bindings in declaration order.
func (t Theme) Elements() []ThemeElement {
	fields := t.fields()
	out := make([]ThemeElement, len(fields))
	for i, f := range fields {
		out[i] = ThemeElement{Key: f.key, Style: *f.dst}
	}
	return out
}

type themeField struct {
	key string
	dst *style.Style
}

// fields lists the theme bindings with their config keys, in declaration
// order. New elements only need an entry here.
func (t *Theme) fields() []themeField {
	return []themeField{
		{"default", &t.Default},
		{"title", &t.Title},
		{"prompt_untyped", &t.PromptUntyped},
		{"prompt_cursor", &t.PromptCursor},
		{"prompt_correct", &t.PromptCorrect},
		{"prompt_incorrect", &t.PromptIncorrect},
		{"results_title", &t.ResultsTitle},
		{"results_value", &t.ResultsValue},
	}
}

// fromTable applies the string values of a decoded theme table on top of
// the receiver, one field at a time. Unknown keys are ignored.
func (t *Theme) fromTable(table map[string]any) error {
	for _, f := range t.fields() {
		v, ok := table[f.key]
		if !ok {
			continue
		}
		raw, ok := v.(string)
		if !ok {
			return &TypeError{Path: "theme." + f.key, Expected: "string", Actual: tomlTypeName(v)}
		}
		s, err := style.ParseStyle(raw)
		if err != nil {
			return &ParseError{Path: "theme." + f.key, Message: err.Error(), Err: err}
		}
		*f.dst = s
	}
	return nil
}
