package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slotlist"
	"github.com/joshuapare/slotlist/cmd/slotlist/logger"
)

var (
	verifyOps     int
	verifySeed    uint64
	verifyReserve int
	verifyBacking string
)

func init() {
	cmd := newVerifyCmd()
	cmd.Flags().IntVar(&verifyOps, "ops", 10000, "Number of random operations")
	cmd.Flags().Uint64Var(&verifySeed, "seed", 1, "Workload seed")
	cmd.Flags().IntVar(&verifyReserve, "reserve", 0, "Initial capacity")
	cmd.Flags().StringVar(&verifyBacking, "backing", "heap", "Link storage (heap, mmap)")
	rootCmd.AddCommand(cmd)
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run a random workload and check invariants after every step",
		Long: `The verify command applies a seeded random mix of inserts, removals,
pops and compactions to one list and runs the structural verifier after
each operation. The first violation aborts the run with a diagnosis.

Example:
  slotlist verify
  slotlist verify --ops 100000 --seed 42 --backing mmap
  slotlist verify --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify()
		},
	}
	return cmd
}

// workload applies random operations to a list, tracking live slots.
type workload struct {
	l     *slotlist.List[int]
	rng   *rand.Rand
	slots []slotlist.Slot
}

// pick removes and returns a random tracked slot.
func (w *workload) pick() slotlist.Slot {
	i := w.rng.IntN(len(w.slots))
	s := w.slots[i]
	w.slots[i] = w.slots[len(w.slots)-1]
	w.slots = w.slots[:len(w.slots)-1]
	return s
}

func (w *workload) step(i int) (string, error) {
	var (
		op  string
		s   slotlist.Slot
		err error
	)
	switch r := w.rng.IntN(100); {
	case r < 30 || len(w.slots) == 0:
		op = "push back"
		s, err = w.l.PushBack(i)
	case r < 45:
		op = "push front"
		s, err = w.l.PushFront(i)
	case r < 60:
		op = "insert after"
		s, err = w.l.InsertAfter(w.slots[w.rng.IntN(len(w.slots))], i)
	case r < 70:
		op = "insert before"
		s, err = w.l.InsertBefore(w.slots[w.rng.IntN(len(w.slots))], i)
	case r < 90:
		op = "remove"
		w.l.Remove(w.pick())
		return op, nil
	case r < 99:
		op = "pop"
		if _, err = w.l.PopBack(); err == nil {
			w.slots = w.slots[:0]
			for s := range w.l.All() {
				w.slots = append(w.slots, s)
			}
		}
		return op, err
	default:
		op = "compact"
		w.l.Compact()
		w.slots = w.slots[:0]
		for s := range w.l.All() {
			w.slots = append(w.slots, s)
		}
		return op, nil
	}
	if err == nil {
		w.slots = append(w.slots, s)
	}
	return op, err
}

func runVerify() (err error) {
	if verifyOps < 0 {
		return errors.New("--ops must not be negative")
	}

	l, err := openList(verifyReserve, verifyBacking)
	if err != nil {
		return err
	}
	defer closeList(l, &err)

	printVerbose("Running %d operations (seed %d, backing %s)\n", verifyOps, verifySeed, verifyBacking)

	w := &workload{l: l, rng: rand.New(rand.NewPCG(verifySeed, verifySeed^0x9e3779b97f4a7c15))}
	counts := make(map[string]int)
	for i := range verifyOps {
		op, err := w.step(i)
		if err != nil {
			return fmt.Errorf("operation %d (%s): %w", i, op, err)
		}
		counts[op]++

		if f := l.Verify(); f != 0 {
			logger.Error("invariant violated", "op", op, "step", i, "flags", f.String())
			printError("%s invariants violated after operation %d (%s)\n", render(failStyle, "FAIL"), i, op)
			return diagnose(op, f)
		}
	}

	stats := l.Stats()
	logger.Info("verify finished", "ops", verifyOps, "size", l.Len(), "capacity", l.Cap())

	if jsonOut {
		return printJSON(map[string]any{
			"ops":         verifyOps,
			"seed":        verifySeed,
			"backing":     verifyBacking,
			"size":        l.Len(),
			"capacity":    l.Cap(),
			"sorted":      l.IsSorted(),
			"acquires":    stats.Acquires,
			"releases":    stats.Releases,
			"grows":       stats.Grows,
			"compactions": stats.Compactions,
			"counts":      counts,
			"valid":       true,
		})
	}

	printInfo("%s\n\n", render(headerStyle, "Workload verification"))
	row := func(label string, v any) {
		printInfo("  %s %v\n", render(labelStyle, fmt.Sprintf("%-12s", label+":")), v)
	}
	row("Operations", verifyOps)
	row("Seed", verifySeed)
	row("Backing", verifyBacking)
	row("Size", l.Len())
	row("Capacity", l.Cap())
	row("Sorted", l.IsSorted())
	row("Grows", stats.Grows)
	row("Compactions", stats.Compactions)
	printInfo("\n  %s all invariants held\n", render(okStyle, "OK"))
	return nil
}
