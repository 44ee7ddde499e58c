// Package style implements the terminal color and style model for ttyper
// and the mini-language used for style values in the configuration file.
//
// A style string has the form:
//
//	<fg>[:<bg>][;<modifier>]*
//
// The foreground and background sections are color tokens; the literal
// token "none", or an empty token, leaves that side at the terminal
// default. A color token is
// either a named terminal color (black, red, green, yellow, blue, magenta,
// cyan, gray, darkgray, lightred, lightgreen, lightyellow, lightblue,
// lightmagenta, lightcyan, white), the special token "reset", or six
// hexadecimal digits forming a 24-bit RGB value. Modifier tokens name
// text attributes: bold, dim, italic, underlined, slow_blink, rapid_blink,
// reversed, hidden, crossed_out. A single trailing semicolon after the
// modifier list is allowed.
//
// Examples:
//
//	"gray"                          foreground only
//	"black:white"                   foreground and background
//	"none;bold;underlined"          modifiers on the default colors
//	"00ff00:000000;bold;italic"     full form with RGB colors
//
// Tokens are matched exactly: no case folding and no whitespace trimming.
// ParseColor, ParseModifier, and ParseStyle are plain functions so callers
// can parse style values outside of configuration loading.
package style
