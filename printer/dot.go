package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emicklei/dot"

	"github.com/joshuapare/slotlist"
)

// recordEscaper protects Graphviz record syntax inside a field. Quoting of
// the attribute itself is left to the dot package.
var recordEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`<`, `\<`,
	`>`, `\>`,
)

func nodeID(s slotlist.Slot) string {
	return "s" + strconv.FormatUint(uint64(s), 10)
}

// recordLabel renders a two-field record label "{slot|text}".
func recordLabel(s slotlist.Slot, text string) dot.Literal {
	return dot.Literal(fmt.Sprintf(`"{%d|%s}"`, s, recordEscaper.Replace(text)))
}

// buildDOT turns a snapshot into a graph: solid next edges and dashed prev
// edges on the live ring, dotted edges along the free pool.
func (p *Printer[T]) buildDOT(snap slotlist.Snapshot[T]) *dot.Graph {
	n, _ := p.visible(snap)

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	nodes := make([]dot.Node, n)
	for i := range n {
		s := slotlist.Slot(i)
		nd := g.Node(nodeID(s)).Attr("shape", "record")
		switch snap.States[i] {
		case slotlist.StateSentinel:
			nd.Attr("label", recordLabel(s, "sentinel")).Attr("style", "bold")
		case slotlist.StateFree:
			nd.Attr("label", recordLabel(s, freeCell)).Attr("style", "dashed").Attr("color", "gray")
		default:
			nd.Attr("label", recordLabel(s, p.format(snap.Values[i])))
		}
		nodes[i] = nd
	}

	shown := func(s slotlist.Slot) bool { return int(s) < n }
	for i := range n {
		switch snap.States[i] {
		case slotlist.StateFree:
			if nx := snap.Next[i]; nx != slotlist.Sentinel && shown(nx) {
				g.Edge(nodes[i], nodes[nx]).Attr("style", "dotted").Attr("color", "gray")
			}
		default:
			if snap.Size == 0 {
				continue
			}
			if nx := snap.Next[i]; shown(nx) {
				g.Edge(nodes[i], nodes[nx])
			}
			if pv := snap.Prev[i]; shown(pv) {
				g.Edge(nodes[i], nodes[pv]).Attr("style", "dashed")
			}
		}
	}

	if snap.FreeHead != slotlist.Sentinel && shown(snap.FreeHead) {
		head := g.Node("free").Attr("shape", "plaintext")
		g.Edge(head, nodes[snap.FreeHead]).Attr("style", "dotted")
	}
	return g
}

// printDOT prints the snapshot as a Graphviz digraph.
func (p *Printer[T]) printDOT(snap slotlist.Snapshot[T]) error {
	_, err := fmt.Fprintln(p.writer, p.buildDOT(snap).String())
	return err
}
