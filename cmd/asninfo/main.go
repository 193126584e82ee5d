// Package main provides the entry point for the asninfo schema tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mjwhitta/cli"

	"github.com/KilimcininKorOglu/asntypes/internal/config"
	"github.com/KilimcininKorOglu/asntypes/internal/logging"
)

// Exit codes
const (
	ExitSuccess = iota
	ExitError
	ExitMissingArg
)

// options holds the global flags.
type options struct {
	config  string
	format  string
	verbose bool
}

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	log    logging.Logger
	format string
	stdout io.Writer
	stderr io.Writer
}

func main() {
	var opts options

	cli.Align = true
	cli.Authors = []string{"asntypes authors"}
	cli.Banner = fmt.Sprintf("%s [OPTIONS] <command> [args...]", os.Args[0])
	cli.Info(
		"asninfo - ASN.1 schema inspection",
		"",
		"Loads YAML schema modules, checks that every definition can be",
		"decoded unambiguously and prints the resulting tag metadata.",
	)
	cli.ExitStatus(
		"0 - Success",
		"1 - Error or schema violations",
		"2 - Missing argument",
	)

	cli.Flag(&opts.config, "c", "config", "", "Configuration file")
	cli.Flag(&opts.format, "f", "format", "text", "Output format (text or json)")
	cli.Flag(&opts.verbose, "v", "verbose", false, "Verbose output")

	cli.Section("Commands",
		"  lint [schema...]         Load, build and validate schemas\n",
		"  describe <schema> [type] Print the metadata of built types\n",
		"  tags                     Print the universal tag table\n",
		"  version                  Show version information",
	)

	cli.Parse()

	if cli.NArg() == 0 {
		cli.Usage(ExitMissingArg)
	}
	if cli.Arg(0) == "help" {
		cli.Usage(ExitSuccess)
	}

	code := run(opts, cli.Args(), os.Stdout, os.Stderr)
	if code == ExitMissingArg {
		cli.Usage(code)
	}
	os.Exit(code)
}

// run executes a command and returns an exit code.
// This is separated from main() to facilitate testing.
func run(opts options, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return ExitMissingArg
	}

	switch opts.format {
	case "text", "json":
	default:
		fmt.Fprintf(stderr, "Unknown format: %s\n", opts.format)
		return ExitError
	}

	cfg := config.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = config.LoadConfig(opts.config); err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", opts.config, err)
			return ExitError
		}
	}
	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(stderr, "Error: config: %v\n", err)
		}
		return ExitError
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}

	a := &app{
		cfg:    cfg,
		log:    newLogger(cfg.Logging, stdout, stderr),
		format: opts.format,
		stdout: stdout,
		stderr: stderr,
	}
	defer a.log.Close()

	var err error
	switch args[0] {
	case "lint":
		err = a.lint(args[1:])
	case "describe":
		err = a.describe(args[1:])
	case "tags":
		err = a.tags()
	case "version":
		err = a.version()
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		return ExitError
	}

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errMissingArg):
		fmt.Fprintf(stderr, "Error: %s: missing argument\n", args[0])
		return ExitMissingArg
	case errors.Is(err, errViolations):
		return ExitError
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
}

// newLogger writes stdout and stderr output to the command's writers.
func newLogger(c config.LogConfig, stdout, stderr io.Writer) logging.Logger {
	switch c.Output {
	case "", "stderr":
		return logging.NewWithWriter(c.LoggerConfig(), stderr)
	case "stdout":
		return logging.NewWithWriter(c.LoggerConfig(), stdout)
	default:
		return logging.New(c.LoggerConfig())
	}
}
