// Command standardize-headers normalizes headers and build flags across the
// collar scripts.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/anne-skydancer/ds-collar-modular/cli"
	"github.com/anne-skydancer/ds-collar-modular/internal/fs"
	"github.com/anne-skydancer/ds-collar-modular/internal/logging"
	"github.com/anne-skydancer/ds-collar-modular/internal/nvim"
	"github.com/anne-skydancer/ds-collar-modular/internal/tui"
	"github.com/anne-skydancer/ds-collar-modular/internal/ui"
	"github.com/anne-skydancer/ds-collar-modular/model"
	"github.com/anne-skydancer/ds-collar-modular/standardize"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		ui.Error("%v", err)
		os.Exit(2)
	}

	log := logging.New(logging.Config{Verbose: cfg.Verbose})
	app := standardize.New(cfg, nil, log)

	if cfg.Filter {
		summary, err := app.Execute()
		if err != nil {
			fail(err)
		}
		if summary.Message != "" {
			ui.Success("%s", summary.Message)
		}
		return
	}

	var summary model.Summary
	if animate(cfg) {
		summary, err = tui.Run(app)
	} else {
		summary, err = app.Execute()
	}
	modified := fs.Relativize(cfg.Root, summary.Modified)
	if err != nil {
		if len(modified) > 0 {
			ui.Warning("%d file(s) were already written before the failure:", len(modified))
			for _, p := range modified {
				ui.Path("- %s", p)
			}
		}
		fail(err)
	}

	summary.Modified = modified
	if err := ui.PrintReport(os.Stdout, summary); err != nil {
		fail(fmt.Errorf("failed to write report: %w", err))
	}

	if !summary.DryRun && len(summary.Modified) > 0 {
		reloadEditor(log, cfg.Root, summary.Modified)
	}
}

// animate reports whether the progress view should be shown.
func animate(cfg *cli.Config) bool {
	if cfg.NoAnimation || cfg.Verbose {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// reloadEditor refreshes the buffers of the hosting Neovim, if any.
func reloadEditor(log logging.Logger, root string, modified []string) {
	addr := nvim.HostAddress()
	if addr == "" {
		return
	}
	manager, err := nvim.Dial(addr)
	if err != nil {
		log.Warn("could not reach neovim", "address", addr, "err", err)
		return
	}
	defer manager.Close()

	if err := manager.ReloadBuffers(modified); err != nil {
		log.Warn("could not reload buffers", "err", err)
		return
	}
	log.Debug("reloaded neovim buffers", "count", len(modified), "root", root)
}

func fail(err error) {
	var detailed *standardize.DetailedError
	if errors.As(err, &detailed) {
		fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", detailed.Stack)
	}
	ui.Error("Error: %v", err)
	os.Exit(1)
}
