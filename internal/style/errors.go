package style

import "fmt"

// UnknownColorError is returned when a color token is neither a known
// color name nor six hexadecimal digits.
type UnknownColorError struct {
	// Token is the offending color token.
	Token string
}

// Error implements the error interface.
func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unrecognized color %q: expected a color name or hexadecimal color code", e.Token)
}

// HexColorError is returned when a six-digit color token contains
// characters that are not valid hexadecimal.
type HexColorError struct {
	// Token is the offending color token.
	Token string
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *HexColorError) Error() string {
	return fmt.Sprintf("color code %q was not valid hexadecimal: %v", e.Token, e.Err)
}

// Unwrap returns the underlying error.
func (e *HexColorError) Unwrap() error {
	return e.Err
}

// UnknownModifierError is returned when a modifier token is not a known
// modifier name.
type UnknownModifierError struct {
	// Token is the offending modifier token.
	Token string
}

// Error implements the error interface.
func (e *UnknownModifierError) Error() string {
	return fmt.Sprintf("unrecognized modifier %q: expected a style modifier", e.Token)
}
