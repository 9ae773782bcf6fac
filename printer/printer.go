// Package printer renders slotlist snapshots for humans and tools.
//
// It consumes only slotlist.Snapshot and slotlist.Flags, so it can never
// mutate a list.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/slotlist"
)

const (
	DefaultMaxSlots = 0
	// minCellWidth matches the three-column cells of the classic dump.
	minCellWidth = 3
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the human-readable slot table.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatDOT outputs a Graphviz digraph.
	FormatDOT Format = "dot"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatDOT:
		return f, nil
	default:
		return "", fmt.Errorf("printer: unknown format %q (want text, json or dot)", s)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, dot).
	// Default: FormatText
	Format Format

	// MaxSlots limits how many slots are rendered, sentinel included
	// (0 = all slots).
	// Default: 0
	MaxSlots int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:   FormatText,
		MaxSlots: DefaultMaxSlots,
	}
}

// Printer writes snapshots of a List[T].
type Printer[T any] struct {
	opts   Options
	writer io.Writer
	format func(T) string
}

// New creates a new Printer.
//
// format renders a single element; nil uses fmt.Sprint.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions(), strconv.Itoa)
//	p.Print(l.Snapshot())
func New[T any](w io.Writer, opts Options, format func(T) string) *Printer[T] {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	return &Printer[T]{
		opts:   opts,
		writer: w,
		format: format,
	}
}

// Print renders snap in the configured format.
func (p *Printer[T]) Print(snap slotlist.Snapshot[T]) error {
	switch p.opts.Format {
	case FormatText, "":
		return p.printText(snap)
	case FormatJSON:
		return p.printJSON(snap)
	case FormatDOT:
		return p.printDOT(snap)
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

// visible returns how many slots to render and whether the arena was cut.
func (p *Printer[T]) visible(snap slotlist.Snapshot[T]) (int, bool) {
	n := len(snap.States)
	if p.opts.MaxSlots > 0 && p.opts.MaxSlots < n {
		return p.opts.MaxSlots, true
	}
	return n, false
}

// Diagnose writes one "prefix: explanation" line per violated invariant in f.
// It writes nothing when f is zero.
func Diagnose(w io.Writer, prefix string, f slotlist.Flags) error {
	for _, msg := range f.Explain() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", prefix, msg); err != nil {
			return err
		}
	}
	return nil
}
