// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"fullname-parser/internal/batch"
	"fullname-parser/internal/config"
	"fullname-parser/internal/formatters"
	_ "fullname-parser/internal/formatters/csv"
	_ "fullname-parser/internal/formatters/json"
	_ "fullname-parser/internal/formatters/text"
	_ "fullname-parser/internal/formatters/xlsx"
	_ "fullname-parser/internal/formatters/yaml"
	"fullname-parser/internal/help"
	"fullname-parser/internal/observability"
	"fullname-parser/internal/personname"
	"fullname-parser/internal/version"

	"golang.org/x/term"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// inputList collects repeated --input flags
type inputList []string

func (l *inputList) String() string {
	return strings.Join(*l, ",")
}

func (l *inputList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// configFlags holds command line flag values
type configFlags struct {
	outputFormat   string
	delimiter      string
	outputDir      string
	dictionaryFile string
	workers        int
	verbose        bool
	debug          bool
	noColor        bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format         string
	delimiter      string
	outputDir      string
	dictionaryFile string
	workers        int
	verbose        bool
	debug          bool
	noColor        bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fullname-parser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var inputs inputList
	flags := &configFlags{}
	fs.Var(&inputs, "input", "File with one name per line, or a directory of such files (repeatable)")
	fs.StringVar(&flags.outputDir, "output-dir", "", "Directory for batch output files (default: .)")
	fs.StringVar(&flags.outputFormat, "format", "", "Output format: csv, json, text, xlsx, yaml (default: csv)")
	fs.StringVar(&flags.delimiter, "delimiter", "", "Field delimiter for csv output (default: ,)")
	fs.StringVar(&flags.dictionaryFile, "dictionary", "", "YAML file overriding the built-in lookup tables")
	fs.IntVar(&flags.workers, "workers", 0, "Number of input files processed concurrently (default: 4)")
	fs.BoolVar(&flags.verbose, "verbose", false, "Log per-file metrics and add a summary to the output")
	fs.BoolVar(&flags.debug, "debug", false, "Log every parse step to stderr")
	fs.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	configFile := fs.String("config", "", "Path to configuration file (YAML)")
	profileName := fs.String("profile", "", "Profile name to use from config file")
	listProfiles := fs.Bool("list-profiles", false, "List available profiles")
	listFormats := fs.Bool("list-formats", false, "List available output formats")
	showDictionary := fs.Bool("show-dictionary", false, "Print the active lookup tables and exit")
	noHeader := fs.Bool("no-header", false, "Omit the header row")
	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help information")

	fs.Usage = func() {
		help.NewSystem(stderr, true).ShowGeneralHelp()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	colorOff := flags.noColor || !isTerminal(stdout)

	if *showVersion {
		fmt.Fprintln(stdout, version.Info())
		return exitOK
	}
	if *showHelp {
		help.NewSystem(stdout, colorOff).ShowGeneralHelp()
		return exitOK
	}
	if *listFormats {
		help.NewSystem(stdout, colorOff).ShowFormats(formatters.GetSupportedFormats())
		return exitOK
	}

	cfg := loadConfiguration(*configFile, stderr)

	if *listProfiles {
		help.NewSystem(stdout, colorOff).ShowProfiles(cfg.ListProfiles(), func(name string) string {
			if p := cfg.GetProfile(name); p != nil {
				return p.Description
			}
			return ""
		})
		return exitOK
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		activeProfile = cfg.GetProfile(*profileName)
		if activeProfile == nil {
			fmt.Fprintf(stderr, "Error: profile '%s' not found; available profiles: %s\n",
				*profileName, strings.Join(cfg.ListProfiles(), ", "))
			return exitUsage
		}
	}

	final := resolveConfiguration(cfg, activeProfile, flags, fs)
	if err := config.ValidateSettings("command line", final.format, final.delimiter, final.workers); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	colorOff = colorOff || final.noColor

	dict, err := cfg.BuildDictionary(final.dictionaryFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load dictionary: %v\n", err)
		return exitFailure
	}

	observer := newObserver(final, stderr)
	parser := personname.NewParser(personname.WithDictionary(dict), personname.WithObserver(observer))

	if *showDictionary {
		help.NewSystem(stdout, colorOff).ShowDictionary(parser.Dictionary())
		return exitOK
	}

	var delimiter rune
	if final.delimiter != "" {
		delimiter, _ = utf8.DecodeRuneInString(final.delimiter)
	}
	options := formatters.FormatterOptions{
		Delimiter: delimiter,
		NoColor:   colorOff,
		Verbose:   final.verbose,
		NoHeader:  *noHeader,
	}

	runner, err := batch.NewRunner(parser,
		batch.WithFormat(final.format),
		batch.WithFormatterOptions(options),
		batch.WithWorkers(final.workers),
		batch.WithObserver(observer),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if len(inputs) > 0 {
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Error: positional names cannot be combined with --input")
			return exitUsage
		}
		return runBatch(ctx, runner, inputs, final, stderr)
	}

	return runNames(parser, runner, fs.Args(), stdin, final, options, stdout, stderr)
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string, stderr io.Writer) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration\n")
		return config.LoadConfigOrDefault("")
	}
	return cfg
}

// resolveConfiguration resolves final configuration values from config file, profile, and command line flags
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags, fs *flag.FlagSet) *finalConfiguration {
	final := &finalConfiguration{
		format:    "csv",
		delimiter: ",",
		outputDir: ".",
		workers:   batch.DefaultWorkers,
	}

	if cfg != nil {
		if cfg.Defaults.Format != "" {
			final.format = cfg.Defaults.Format
		}
		if cfg.Defaults.Delimiter != "" {
			final.delimiter = cfg.Defaults.Delimiter
		}
		if cfg.Defaults.OutputDir != "" {
			final.outputDir = cfg.Defaults.OutputDir
		}
		if cfg.Defaults.Workers > 0 {
			final.workers = cfg.Defaults.Workers
		}
		final.verbose = cfg.Defaults.Verbose
		final.debug = cfg.Defaults.Debug
		final.noColor = cfg.Defaults.NoColor
	}

	if activeProfile != nil {
		if activeProfile.Format != "" {
			final.format = activeProfile.Format
		}
		if activeProfile.Delimiter != "" {
			final.delimiter = activeProfile.Delimiter
		}
		if activeProfile.OutputDir != "" {
			final.outputDir = activeProfile.OutputDir
		}
		if activeProfile.Workers > 0 {
			final.workers = activeProfile.Workers
		}
		if activeProfile.DictionaryFile != "" {
			final.dictionaryFile = activeProfile.DictionaryFile
		}
		// Profile booleans only switch features on
		final.verbose = final.verbose || activeProfile.Verbose
		final.debug = final.debug || activeProfile.Debug
		final.noColor = final.noColor || activeProfile.NoColor
	}

	if isFlagSet(fs, "format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}
	if isFlagSet(fs, "delimiter") {
		final.delimiter = flags.delimiter
	}
	if isFlagSet(fs, "output-dir") && flags.outputDir != "" {
		final.outputDir = flags.outputDir
	}
	if isFlagSet(fs, "workers") {
		final.workers = flags.workers
	}
	if isFlagSet(fs, "dictionary") && flags.dictionaryFile != "" {
		final.dictionaryFile = flags.dictionaryFile
	}
	if isFlagSet(fs, "verbose") {
		final.verbose = flags.verbose
	}
	if isFlagSet(fs, "debug") {
		final.debug = flags.debug
	}
	if isFlagSet(fs, "no-color") {
		final.noColor = flags.noColor
	}

	return final
}

// newObserver picks the observability level from the resolved settings
func newObserver(final *finalConfiguration, stderr io.Writer) *observability.StandardObserver {
	switch {
	case final.debug:
		return observability.NewDebugObserver(stderr).StandardObserver
	case final.verbose:
		return observability.NewStandardObserver(observability.ObservabilityMetrics, stderr)
	default:
		return observability.NewStandardObserver(observability.ObservabilityOff, io.Discard)
	}
}

// runBatch processes --input files and reports one line per file on stderr
func runBatch(ctx context.Context, runner *batch.Runner, inputs []string, final *finalConfiguration, stderr io.Writer) int {
	results, err := runner.Run(ctx, inputs, final.outputDir)
	for _, res := range results {
		if res.Error != nil {
			continue
		}
		fmt.Fprintf(stderr, "%s -> %s (%d names, %d not fully parsed)\n",
			res.InputPath, res.OutputPath, res.Records, res.Fallbacks)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// runNames parses positional names, or stdin lines when none are given, and
// writes one table to stdout. Binary formats are written to the output directory.
func runNames(parser *personname.Parser, runner *batch.Runner, names []string, stdin io.Reader, final *finalConfiguration,
	options formatters.FormatterOptions, stdout, stderr io.Writer) int {
	var records []personname.Record
	if len(names) > 0 {
		records = make([]personname.Record, 0, len(names))
		for _, name := range names {
			records = append(records, parser.Parse(name))
		}
	} else {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			help.NewSystem(stderr, true).ShowGeneralHelp()
			return exitUsage
		}
		var err error
		records, err = runner.ParseLines(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
	}

	content, err := formatters.Export(final.format, records, options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	if formatters.GetFormatInfo(final.format).Binary {
		outPath := runner.OutputPath("names", final.outputDir)
		if err := writeOutput(outPath, final.outputDir, content); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		fmt.Fprintf(stderr, "Wrote %d names to %s\n", len(records), outPath)
		return exitOK
	}

	fmt.Fprint(stdout, content)
	return exitOK
}

func writeOutput(path, dir, content string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
