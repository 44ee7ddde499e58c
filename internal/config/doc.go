// Package config loads the ttyper configuration file.
//
// Configuration lives in a single TOML file named config.toml directly
// under the platform's user configuration directory (for example
// ~/.config/config.toml on Linux). A file that is missing or cannot be
// read is not an error: Load falls back to the built-in defaults. Within
// a readable file every setting is independent, so a file that sets one
// field leaves all others at their defaults:
//
//	default_language = "english1000"
//	max_misalignment = 4
//
//	[theme]
//	title = "white;bold"
//	prompt_incorrect = "red:darkgray;crossed_out"
//
// Theme values use the style mini-language documented in the style
// package. Malformed TOML, a wrongly typed field, and an unparsable style
// value are fatal: Load reports the error and applies nothing from the
// file.
//
// # Error Handling
//
// The package defines the error types callers can match on:
//
//   - ParseError: the file or a field value failed to parse
//   - TypeError: a field has the wrong TOML type (matches ErrTypeMismatch)
//   - ValidationError: a field value is out of range
//   - ErrNoConfigDir: the platform config directory cannot be determined
//
// Unknown keys are ignored by Load; UnknownKeys lists them so tooling can
// point out likely typos.
package config
