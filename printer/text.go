package printer

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/joshuapare/slotlist"
)

const (
	freeCell     = "F"
	sentinelCell = "-"
)

// printText prints the header block and the INDX/Data/Prev/Next table.
func (p *Printer[T]) printText(snap slotlist.Snapshot[T]) error {
	bw := bufio.NewWriter(p.writer)

	bw.WriteString("List dump:\n")
	fmt.Fprintf(bw, "\tfree_head: %d\n", snap.FreeHead)
	fmt.Fprintf(bw, "\tfree_back: %d\n", snap.FreeBack)
	fmt.Fprintf(bw, "\treserved:  %d\n", snap.Reserved)
	fmt.Fprintf(bw, "\tcapacity:  %d\n", snap.Capacity)
	fmt.Fprintf(bw, "\tsize:      %d\n", snap.Size)
	fmt.Fprintf(bw, "\tsorted:    %t\n", snap.Sorted)
	fmt.Fprintf(bw, "\tshift:     %d\n", snap.Shift)

	n, cut := p.visible(snap)
	rows := [4][]string{}
	for i := range n {
		rows[0] = append(rows[0], strconv.Itoa(i))
		switch snap.States[i] {
		case slotlist.StateSentinel:
			rows[1] = append(rows[1], sentinelCell)
			rows[2] = append(rows[2], slotCell(snap.Prev[i]))
		case slotlist.StateFree:
			rows[1] = append(rows[1], freeCell)
			rows[2] = append(rows[2], freeCell)
		default:
			rows[1] = append(rows[1], p.format(snap.Values[i]))
			rows[2] = append(rows[2], slotCell(snap.Prev[i]))
		}
		rows[3] = append(rows[3], slotCell(snap.Next[i]))
	}

	cell := minCellWidth
	for _, row := range rows {
		for _, c := range row {
			cell = max(cell, displayWidth(c))
		}
	}

	for r, label := range [4]string{"INDX", "Data", "Prev", "Next"} {
		bw.WriteString(label)
		bw.WriteString(":")
		for _, c := range rows[r] {
			bw.WriteByte(' ')
			bw.WriteString(padLeft(c, cell))
		}
		bw.WriteByte('\n')
	}
	if cut {
		fmt.Fprintf(bw, "... %d more slots\n", len(snap.States)-n)
	}
	return bw.Flush()
}

func slotCell(s slotlist.Slot) string {
	return strconv.FormatUint(uint64(s), 10)
}

// displayWidth counts terminal columns: wide and fullwidth runes take two.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

func padLeft(s string, n int) string {
	if pad := n - displayWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
