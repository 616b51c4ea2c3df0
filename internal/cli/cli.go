// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/nesgoemu/internal/options"
)

// ParseFlags parses command line flags and returns program and emulator options
func ParseFlags() (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, options.Emulator{}, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, options.Emulator{}, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, options.Emulator{}, err
	}

	opts.Input = args[0]

	return opts, options.NewEmulator(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: nesgoemu [options] <ROM file>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && len(arg) > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions validates option values
func validateOptions(opts options.Program) error {
	if opts.Scale < 1 {
		return fmt.Errorf("invalid window scale factor %d, must be at least 1", opts.Scale)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d, must not be negative", opts.Frames)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Binary, "binary", false, "read input file as raw binary without an iNES header")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.IntVar(&opts.Frames, "frames", 0, "number of frames to emulate before exiting, 0 runs until quit")
	flags.BoolVar(&opts.Headless, "headless", false, "run without opening a window")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.IntVar(&opts.Scale, "scale", 2, "window scale factor")
}
