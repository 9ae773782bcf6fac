package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slotlist"
	"github.com/joshuapare/slotlist/cmd/slotlist/logger"
	"github.com/joshuapare/slotlist/printer"
)

var demoFormat string

func init() {
	cmd := newDemoCmd()
	cmd.Flags().StringVar(&demoFormat, "format", "text", "Dump format (text, json, dot)")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the reference insert/grow scenario and dump the arena",
		Long: `The demo command reserves 10 slots, links -1, -2 and -3 one after
another, grows the arena to 12 slots, appends -4, inserts 0 before the
sentinel (at the tail) and finally inserts 1 before the slot holding 0.

Example:
  slotlist demo
  slotlist demo --format dot | dot -Tsvg > demo.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() (err error) {
	l, err := openList(10, "heap")
	if err != nil {
		return err
	}
	defer closeList(l, &err)

	s := slotlist.Sentinel
	for _, v := range []int{-1, -2, -3} {
		if s, err = l.InsertAfter(s, v); err != nil {
			return err
		}
	}
	printVerbose("Inserted -1, -2, -3 (tail slot %d)\n", s)

	if err := l.Grow(12); err != nil {
		return err
	}
	printVerbose("Grew arena to %d slots\n", l.Cap())

	if s, err = l.InsertAfter(s, -4); err != nil {
		return err
	}
	if s, err = l.InsertBefore(slotlist.Sentinel, 0); err != nil {
		return err
	}
	if _, err = l.InsertBefore(s, 1); err != nil {
		return err
	}
	logger.Info("demo built", "size", l.Len(), "capacity", l.Cap(), "sorted", l.IsSorted())

	if f := l.Verify(); f != 0 {
		return diagnose("demo", f)
	}
	return dumpList(l, demoFormat)
}

// dumpList prints l in the named format. --json overrides a text format.
func dumpList(l *slotlist.List[int], name string) error {
	format, err := printer.ParseFormat(name)
	if err != nil {
		return err
	}
	if jsonOut && format == printer.FormatText {
		format = printer.FormatJSON
	}
	if quiet {
		return nil
	}

	opts := printer.DefaultOptions()
	opts.Format = format
	return printer.New(os.Stdout, opts, strconv.Itoa).Print(l.Snapshot())
}
