package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spritestage/scene"
)

// objectEntry is one row of the object list.
type objectEntry struct {
	Index int
	Name  string
}

func (e objectEntry) label() string {
	return fmt.Sprintf("%d. %s", e.Index+1, e.Name)
}

// objectPanel lists sprites in insertion order. Picking a row selects the
// sprite on the canvas.
type objectPanel struct {
	Container *widget.Container
	list      *widget.List
	entries   []any
	// selected mirrors the editor selection so programmatic selections,
	// which the list reports through the same deferred event as clicks, are
	// not fed back into the controller.
	selected int
	onSelect func(idx int)
}

func buildObjectPanel(fontFace *text.Face, onSelect func(idx int)) *objectPanel {
	p := &objectPanel{selected: -1, onSelect: onSelect}

	p.Container = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	p.Container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Objects", fontFace, labelColor),
	))

	p.list = widget.NewList(
		widget.ListOpts.Entries(nil),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(objectEntry); ok {
				return entry.label()
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(objectEntry)
			if !ok || entry.Index == p.selected {
				return
			}
			if p.onSelect != nil {
				p.onSelect(entry.Index)
			}
		}),
	)
	p.list.GetWidget().MinWidth = 200
	p.list.GetWidget().MinHeight = 160
	p.Container.AddChild(p.list)
	return p
}

// SetObjects replaces the rows with objs and highlights row selected.
func (p *objectPanel) SetObjects(objs []scene.SpriteObject, selected int) {
	if p == nil || p.list == nil {
		return
	}
	entries := make([]any, len(objs))
	for i, o := range objs {
		entries[i] = objectEntry{Index: i, Name: o.Name}
	}
	p.entries = entries
	p.list.SetEntries(entries)
	p.SetSelected(selected)
}

// SetSelected highlights row idx, or no row when idx is out of range.
func (p *objectPanel) SetSelected(idx int) {
	if p == nil || p.list == nil {
		return
	}
	if idx < 0 || idx >= len(p.entries) {
		p.selected = -1
		p.list.SetSelectedEntry(nil)
		return
	}
	p.selected = idx
	p.list.SetSelectedEntry(p.entries[idx])
}
