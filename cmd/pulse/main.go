package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/limbo/dailypulse/internal/cli"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	defaultDB := os.Getenv("PULSE_DB")
	if defaultDB == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		defaultDB = filepath.Join(home, ".dailypulse", "pulse.db")
	}

	// Global flags are needed before the services exist. Everything else,
	// including --help, is left for cobra.
	fs := pflag.NewFlagSet("pulse", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	var flags cli.GlobalFlags
	flags.Register(fs, defaultDB)
	if err := fs.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		return err
	}
	if flags.TimeZone == "" {
		flags.TimeZone = os.Getenv("PULSE_TZ")
	}

	app, closeApp, err := cli.OpenApp(flags, nil)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer closeApp()

	root := cli.NewRootCmd(app, defaultDB)
	root.SetArgs(args)
	return root.Execute()
}
