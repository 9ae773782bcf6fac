package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slotlist"
	"github.com/joshuapare/slotlist/cmd/slotlist/logger"
)

var (
	dumpReserve  int
	dumpFront    bool
	dumpPopFront int
	dumpCompact  bool
	dumpBacking  string
	dumpFormat   string
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpReserve, "reserve", 0, "Initial capacity")
	cmd.Flags().BoolVar(&dumpFront, "front", false, "Push values at the head instead of the tail")
	cmd.Flags().IntVar(&dumpPopFront, "pop-front", 0, "Pop this many values from the head after inserting")
	cmd.Flags().BoolVar(&dumpCompact, "compact", false, "Compact the arena before dumping")
	cmd.Flags().StringVar(&dumpBacking, "backing", "heap", "Link storage (heap, mmap)")
	cmd.Flags().StringVar(&dumpFormat, "format", "text", "Dump format (text, json, dot)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [ints...]",
		Short: "Build a list from integers and dump its arena",
		Long: `The dump command pushes each integer argument onto a new list and
prints the resulting slot arena.

Example:
  slotlist dump 1 2 3
  slotlist dump --reserve 8 --front 1 2 3
  slotlist dump --pop-front 1 --compact 1 2 3 --format json
  slotlist dump --backing mmap 4 5 6`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) (err error) {
	vals := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", a, err)
		}
		vals = append(vals, v)
	}

	l, err := openList(dumpReserve, dumpBacking)
	if err != nil {
		return err
	}
	defer closeList(l, &err)
	logger.Debug("dump list created", "reserve", dumpReserve, "backing", dumpBacking)

	for _, v := range vals {
		if dumpFront {
			_, err = l.PushFront(v)
		} else {
			_, err = l.PushBack(v)
		}
		if err != nil {
			return err
		}
	}

	for range dumpPopFront {
		v, err := l.PopFront()
		if errors.Is(err, slotlist.ErrEmpty) {
			printVerbose("List empty, stopping pops\n")
			break
		}
		printVerbose("Popped %d\n", v)
	}

	if dumpCompact {
		l.Compact()
		printVerbose("Compacted %d elements\n", l.Len())
	}
	return dumpList(l, dumpFormat)
}
