// Package cli parses the command line into a Config.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/anne-skydancer/ds-collar-modular/internal/buildflags"
	"github.com/anne-skydancer/ds-collar-modular/internal/fs"
)

// DefaultExtension is the script extension discovered under src/.
const DefaultExtension = ".lsl"

// Config holds all the command-line flag values.
type Config struct {
	Root        string
	Extension   string
	DryRun      bool
	NoAnimation bool
	Verbose     bool
	Filter      bool
	Branch      string
	Markdown    bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses args the way ParseFlags parses the process arguments.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	flags := pflag.NewFlagSet("standardize-headers", pflag.ContinueOnError)
	// Parse errors are returned to the caller, which reports them.
	flags.SetOutput(io.Discard)

	// Define flags
	flags.StringVarP(&cfg.Root, "root", "C", "", "Repository root (default: enclosing git work tree, else current directory).")
	flags.StringVarP(&cfg.Extension, "extension", "e", DefaultExtension, "Extension of the scripts to standardize.")
	flags.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Report the files that would change without writing them.")
	flags.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the spinner and progress bar.")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every processed file.")

	// Filter mode
	flags.BoolVarP(&cfg.Filter, "filter", "f", false, "Standardize text from stdin (pipe) or the clipboard and print it.")
	flags.StringVarP(&cfg.Branch, "branch", "b", "", "Branch whose DEBUG/PRODUCTION values apply in filter mode ("+strings.Join(buildflags.Branches(), ", ")+").")
	flags.BoolVarP(&cfg.Markdown, "markdown", "m", false, "In filter mode, only rewrite fenced code blocks of the script language.")

	flags.Usage = func() {
		fmt.Println("Usage: standardize-headers [flags]")
		fmt.Println("\nRewrite boxed section headers to one-line headers and set DEBUG/PRODUCTION")
		fmt.Println("per branch folder for every script under src/.")
		fmt.Println("\nExample: pbpaste | standardize-headers -f -b dev")
		fmt.Println("\nFlags:")
		flags.SetOutput(os.Stdout)
		flags.PrintDefaults()
		flags.SetOutput(io.Discard)
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("error: unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	// Validate filter-only flags
	if !cfg.Filter && (cfg.Branch != "" || cfg.Markdown) {
		return nil, fmt.Errorf("error: --branch and --markdown require --filter")
	}
	if cfg.Branch != "" && !slices.Contains(buildflags.Branches(), cfg.Branch) {
		return nil, fmt.Errorf("error: unknown branch %q (want one of: %s)", cfg.Branch, strings.Join(buildflags.Branches(), ", "))
	}

	// Normalize extension
	if cfg.Extension == "" {
		return nil, fmt.Errorf("error: --extension must not be empty")
	}
	if cfg.Extension[0] != '.' {
		cfg.Extension = "." + cfg.Extension
	}

	if !cfg.Filter {
		if err := cfg.resolveRoot(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) resolveRoot() error {
	if c.Root == "" {
		root, err := fs.DefaultRoot()
		if err != nil {
			return err
		}
		c.Root = root
	}
	abs, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("invalid root %q: %w", c.Root, err)
	}
	c.Root = abs
	return nil
}
