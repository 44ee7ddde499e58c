package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application settings. It is a plain value: Load
// returns it fully populated and callers may copy it freely.
type Config struct {
	// DefaultLanguage is the word list used when none is given.
	DefaultLanguage string

	// DefaultLexer is the text segmentation mode used when none is given.
	DefaultLexer string

	// MaxMisalignment is the number of lines the prompt may drift before
	// it is recentered. Never negative.
	MaxMisalignment int

	// Theme is the UI style bindings.
	Theme Theme
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultLanguage: "english200",
		DefaultLexer:    "extended-grapheme-clusters",
		MaxMisalignment: 8,
		Theme:           DefaultTheme(),
	}
}

// DefaultPath returns the default configuration file location: config.toml
// directly under the platform's user configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration file at path. A file that is missing,
// unreadable, or not valid UTF-8 yields the defaults without error; a
// file that reads but does not parse is fatal, and no part of it is
// applied.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	if !utf8.Valid(data) {
		return Default(), nil
	}
	return parse(path, data)
}

// Parse decodes configuration file content. Every recognized field either
// takes the supplied, type-checked value or keeps its default.
func Parse(data []byte) (Config, error) {
	return parse("", data)
}

// parse decodes TOML data into a generic tree and extracts the settings.
// source names the file in parse errors; it may be empty.
func parse(source string, data []byte) (Config, error) {
	tree, err := decodeTree(source, data)
	if err != nil {
		return Config{}, err
	}
	return fromTree(tree)
}

// decodeTree unmarshals TOML into a key-value tree, lifting the error
// position out of the decoder when parsing fails.
func decodeTree(source string, data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return tree, nil
}

// fromTree extracts the settings from a decoded tree, starting from the
// defaults. Unknown keys are ignored; see UnknownKeys.
func fromTree(tree map[string]any) (Config, error) {
	cfg := Default()

	if err := stringField(tree, "default_language", &cfg.DefaultLanguage); err != nil {
		return Config{}, err
	}
	if err := stringField(tree, "default_lexer", &cfg.DefaultLexer); err != nil {
		return Config{}, err
	}
	if err := intField(tree, "max_misalignment", &cfg.MaxMisalignment); err != nil {
		return Config{}, err
	}
	if cfg.MaxMisalignment < 0 {
		return Config{}, &ValidationError{
			Path:    "max_misalignment",
			Message: "must be non-negative",
			Value:   cfg.MaxMisalignment,
		}
	}

	if v, ok := tree["theme"]; ok {
		table, ok := v.(map[string]any)
		if !ok {
			return Config{}, &TypeError{Path: "theme", Expected: "table", Actual: tomlTypeName(v)}
		}
		if err := cfg.Theme.fromTable(table); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// UnknownKeys reports top-level and theme keys the loader does not
// recognize, sorted. Load ignores such keys; this surfaces likely typos.
func UnknownKeys(data []byte) ([]string, error) {
	tree, err := decodeTree("", data)
	if err != nil {
		return nil, err
	}

	var unknown []string
	for key := range tree {
		switch key {
		case "default_language", "default_lexer", "max_misalignment", "theme":
		default:
			unknown = append(unknown, key)
		}
	}

	if table, ok := tree["theme"].(map[string]any); ok {
		var t Theme
		known := make(map[string]bool)
		for _, f := range t.fields() {
			known[f.key] = true
		}
		for key := range table {
			if !known[key] {
				unknown = append(unknown, "theme."+key)
			}
		}
	}

	sort.Strings(unknown)
	return unknown, nil
}

func stringField(tree map[string]any, key string, dst *string) error {
	v, ok := tree[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return &TypeError{Path: key, Expected: "string", Actual: tomlTypeName(v)}
	}
	*dst = s
	return nil
}

func intField(tree map[string]any, key string, dst *int) error {
	v, ok := tree[key]
	if !ok {
		return nil
	}
	// TOML integers decode as int64; a float here is a type error.
	n, ok := v.(int64)
	if !ok {
		return &TypeError{Path: key, Expected: "integer", Actual: tomlTypeName(v)}
	}
	*dst = int(n)
	return nil
}

// tomlTypeName names a decoded value's TOML type for error messages.
func tomlTypeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case map[string]any:
		return "table"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
