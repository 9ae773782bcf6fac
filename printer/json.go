package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/slotlist"
)

// jsonDump is the JSON form of a snapshot.
type jsonDump struct {
	Reserved  int             `json:"reserved"`
	Capacity  int             `json:"capacity"`
	Size      int             `json:"size"`
	FreeHead  slotlist.Slot   `json:"free_head"`
	FreeBack  slotlist.Slot   `json:"free_back"`
	Sorted    bool            `json:"sorted"`
	Shift     slotlist.Slot   `json:"shift"`
	Order     []slotlist.Slot `json:"order"`
	Free      []slotlist.Slot `json:"free"`
	Slots     []jsonSlot      `json:"slots"`
	Truncated bool            `json:"truncated,omitempty"`
}

// jsonSlot is one arena slot.
type jsonSlot struct {
	Slot  slotlist.Slot  `json:"slot"`
	State string         `json:"state"`
	Value *string        `json:"value,omitempty"`
	Prev  *slotlist.Slot `json:"prev,omitempty"`
	Next  slotlist.Slot  `json:"next"`
}

// printJSON prints the snapshot as one indented JSON document.
func (p *Printer[T]) printJSON(snap slotlist.Snapshot[T]) error {
	n, cut := p.visible(snap)
	doc := jsonDump{
		Reserved:  snap.Reserved,
		Capacity:  snap.Capacity,
		Size:      snap.Size,
		FreeHead:  snap.FreeHead,
		FreeBack:  snap.FreeBack,
		Sorted:    snap.Sorted,
		Shift:     snap.Shift,
		Order:     snap.Order(),
		Free:      snap.FreeChain(),
		Slots:     make([]jsonSlot, 0, n),
		Truncated: cut,
	}
	if doc.Free == nil {
		doc.Free = []slotlist.Slot{}
	}

	for i := range n {
		st := snap.States[i]
		js := jsonSlot{
			Slot:  slotlist.Slot(i),
			State: st.String(),
			Next:  snap.Next[i],
		}
		if st != slotlist.StateFree {
			prev := snap.Prev[i]
			js.Prev = &prev
		}
		if st == slotlist.StateLive {
			v := p.format(snap.Values[i])
			js.Value = &v
		}
		doc.Slots = append(doc.Slots, js)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
