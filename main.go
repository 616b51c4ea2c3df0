// Package main implements the main entry point for the NES emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/nesgoemu/internal/cli"
	"github.com/retroenv/nesgoemu/internal/config"
	"github.com/retroenv/nesgoemu/internal/detector"
	"github.com/retroenv/nesgoemu/internal/emulator"
	"github.com/retroenv/nesgoemu/internal/gui"
	"github.com/retroenv/nesgoemu/internal/loader"
	"github.com/retroenv/nesgoemu/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, emuOpts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts, emuOpts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("nesgoemu - NES emulator",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// run drives one emulation session: create the display, construct the
// emulator, load the cartridge into memory and enter the run loop.
// A cartridge load failure is reported but not fatal, the loop then
// executes whatever the zero-initialized address space holds.
func run(ctx context.Context, logger *log.Logger, opts options.Program,
	emuOpts options.Emulator) error {

	display, err := createDisplay(opts)
	if err != nil {
		return fmt.Errorf("creating display: %w", err)
	}
	defer display.Close()

	emu := emulator.New(logger, display, emuOpts)

	format := detector.New(logger).Detect(opts)
	cart, err := loader.New().Load(opts, format)
	if err != nil {
		logger.Error("Loading cartridge failed, continuing with empty memory",
			log.Err(err))
	} else {
		emu.InsertCartridge(cart)
		logger.Info("Running ROM", log.String("file", opts.Input))
	}

	return emu.Run(ctx)
}

func createDisplay(opts options.Program) (emulator.Display, error) {
	if opts.Headless {
		return emulator.NewHeadlessDisplay(), nil
	}
	return gui.New(config.WindowTitle, opts.Scale)
}
