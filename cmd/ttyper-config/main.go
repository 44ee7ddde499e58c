// Package main is the entry point for ttyper-config, the configuration
// inspection tool for ttyper.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/gblmrn/ttyper/internal/config"
	"github.com/gblmrn/ttyper/internal/tui"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	check      bool
	preview    bool
}

func run() int {
	opts := parseFlags()

	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.check {
		return check(path)
	}

	if opts.preview {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintf(os.Stderr, "Error: preview requires a terminal\n")
			return 1
		}
		if err := tui.Preview(cfg.Theme); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	printConfig(path, cfg)
	return 0
}

// check reports configuration keys the loader does not recognize. Unlike
// Load it treats a file it cannot decode as an error worth showing.
func check(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s: no config file, defaults apply\n", path)
		return 0
	}

	keys, err := config.UnknownKeys(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, key := range keys {
		fmt.Printf("%s: unknown key %q\n", path, key)
	}
	if len(keys) == 0 {
		fmt.Printf("%s: ok\n", path)
	}
	return 0
}

// printConfig writes the effective configuration as TOML, with every
// style in the form the loader accepts.
func printConfig(path string, cfg config.Config) {
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("# %s (not found, using defaults)\n", path)
	} else {
		fmt.Printf("# %s\n", path)
	}

	fmt.Printf("default_language = %q\n", cfg.DefaultLanguage)
	fmt.Printf("default_lexer = %q\n", cfg.DefaultLexer)
	fmt.Printf("max_misalignment = %d\n", cfg.MaxMisalignment)
	fmt.Println()
	fmt.Println("[theme]")
	for _, el := range cfg.Theme.Elements() {
		fmt.Printf("%s = %q\n", el.Key, el.Style)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.check, "check", false, "Report unrecognized configuration keys")
	flag.BoolVar(&opts.preview, "preview", false, "Preview the theme on the terminal")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ttyper-config - inspect the ttyper configuration\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ttyper-config [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ttyper-config                        Print the effective configuration\n")
		fmt.Fprintf(os.Stderr, "  ttyper-config -check                 Point out unrecognized keys\n")
		fmt.Fprintf(os.Stderr, "  ttyper-config -c alt.toml -preview   Preview a theme file\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("ttyper-config %s\n", version)
		os.Exit(0)
	}

	return opts
}
