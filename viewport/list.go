package viewport

import "tally/scroll"

// Item is anything with a stable identity.
type Item interface {
	ID() string
}

// RenderFunc renders an item, returning false to render nothing for it.
type RenderFunc[T Item] func(item T, index int, selected bool) (Element, bool)

// RenderList renders the items in range with leading filler for the rows above.
// Static elements are appended after the items.
func RenderList[T Item](items []T, rng scroll.Range, layout Layout, selectedRow int, render RenderFunc[T], static ...Element) Frame {

	if layout.ViewportHeight <= 0 {
		return Frame{Deferred: true}
	}

	rowHeight := layout.RowHeight
	frm := Frame{TotalHeight: len(items) * rowHeight}

	// ranges can be stale while resizing
	start := min(max(rng.Start, 0), len(items))
	if start > 0 {
		frm.Elements = append(frm.Elements, filler("leading", start*rowHeight))
	}

	rng = rng.Clamp(len(items))
	for idx := start; idx <= rng.End; idx++ {
		item := items[idx]
		elm, ok := render(item, idx, idx == selectedRow)
		if !ok {
			continue
		}

		elm.Kind = Row
		elm.Key = item.ID()
		elm.Row = idx
		elm.Height = rowHeight
		elm.Parity = ParityOf(idx)
		elm.Selected = idx == selectedRow
		frm.Elements = append(frm.Elements, elm)
	}

	for _, elm := range static {
		elm.Kind = Static
		elm.Row = -1
		frm.Elements = append(frm.Elements, elm)
	}

	return frm
}
