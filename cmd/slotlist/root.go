package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slotlist"
	"github.com/joshuapare/slotlist/cmd/slotlist/logger"
	"github.com/joshuapare/slotlist/printer"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	noColor  bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "slotlist",
	Short: "Exercise and inspect arena-backed linked lists",
	Long: `slotlist drives the slotlist package from the command line. It builds
lists from arguments or random workloads, checks their structural invariants and
dumps the slot arena as a table, JSON, or a Graphviz graph.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging enables the global logger when --log-level or --verbose is set.
func setupLogging(_ *cobra.Command, _ []string) error {
	if logLevel == "" && !verbose {
		logger.Init(logger.Options{})
		return nil
	}

	name := logLevel
	if name == "" {
		name = "debug"
	}
	level, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{Enabled: true, Level: level, JSON: jsonOut})
	return nil
}

// Output helpers. Dumps and summaries go to stdout so they can be piped into
// dot or jq; failures and invariant diagnoses go to stderr.

// printInfo writes summary lines (the verify report); --quiet drops them.
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError reports a failed run on stderr, even with --quiet.
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose narrates individual list operations (pops, growth,
// compaction) when --verbose is set.
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON writes one indented JSON document, used for the --json forms
// of verify and version.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// openList creates a list for a command, logging through the CLI logger.
func openList(reserve int, backing string) (*slotlist.List[int], error) {
	if reserve < 0 {
		return nil, fmt.Errorf("--reserve must not be negative, got %d", reserve)
	}
	b, err := slotlist.ParseBacking(backing)
	if err != nil {
		return nil, err
	}

	opts := slotlist.DefaultOptions()
	opts.Logger = logger.L
	opts.Backing = b
	return slotlist.New[int](reserve, &opts)
}

// closeList closes l and joins its error into *errp, so a list that fails
// verification on close fails the command.
func closeList(l io.Closer, errp *error) {
	if err := l.Close(); err != nil {
		logger.Warn("close failed", "err", err)
		*errp = errors.Join(*errp, err)
	}
}

// diagnose writes the violated invariants of f to stderr and returns them
// as a *slotlist.CorruptionError.
func diagnose(op string, f slotlist.Flags) error {
	corrupt := &slotlist.CorruptionError{Op: op, Flags: f}
	if err := printer.Diagnose(os.Stderr, op, f); err != nil {
		return errors.Join(corrupt, err)
	}
	return corrupt
}
