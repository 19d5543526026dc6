package viewport

import (
	"fmt"
	"slices"

	"tally/scroll"
)

// GroupIndex maps between groups of one header row plus detail rows and
// absolute row numbers.
type GroupIndex struct {
	// preceding[g] is the count of rows before group g, preceding[len] the total
	preceding []int
}

// NewGroupIndex builds an index from the detail row count of each group.
func NewGroupIndex(detailCounts []int) GroupIndex {

	preceding := make([]int, len(detailCounts)+1)
	for grp, count := range detailCounts {
		preceding[grp+1] = preceding[grp] + 1 + max(count, 0)
	}

	return GroupIndex{preceding: preceding}
}

// Len returns the number of groups.
func (idx GroupIndex) Len() int {
	return max(len(idx.preceding)-1, 0)
}

// RowCount returns the number of absolute rows.
func (idx GroupIndex) RowCount() int {
	if len(idx.preceding) == 0 {
		return 0
	}
	return idx.preceding[len(idx.preceding)-1]
}

// Preceding returns the number of rows before a group, its header row's number.
func (idx GroupIndex) Preceding(group int) int {
	return idx.preceding[group]
}

// Span returns the number of rows in a group, header included.
func (idx GroupIndex) Span(group int) int {
	return idx.preceding[group+1] - idx.preceding[group]
}

// RowsAfter returns the number of rows after a group.
func (idx GroupIndex) RowsAfter(group int) int {
	return idx.RowCount() - idx.preceding[group+1]
}

// GroupOf returns the group an absolute row belongs to.
// Rows outside the index map to the first or last group.
func (idx GroupIndex) GroupOf(row int) int {

	if idx.Len() == 0 {
		return 0
	}

	pos, found := slices.BinarySearch(idx.preceding, row)
	if !found {
		pos--
	}
	return max(0, min(pos, idx.Len()-1))
}

// Locate returns the group of a row and the row's offset within it,
// zero for the header row.
func (idx GroupIndex) Locate(row int) (group, offset int) {

	group = idx.GroupOf(row)
	if idx.Len() == 0 {
		return
	}
	offset = row - idx.preceding[group]
	return
}

// HeaderDetail renders groups of type G, each with a header row followed by
// detail rows of type D.
type HeaderDetail[G Item, D any] struct {
	Details      func(group G) []D
	RenderGroup  func(group G, groupIdx int, selected bool) (Element, bool)
	RenderDetail func(group G, groupIdx int, detail D, detailIdx int, selected bool) (Element, bool)
}

// Index builds the group index for groups.
func (hd HeaderDetail[G, D]) Index(groups []G) GroupIndex {

	counts := make([]int, len(groups))
	for i, group := range groups {
		counts[i] = len(hd.Details(group))
	}
	return NewGroupIndex(counts)
}

// Render renders the groups touched by the row range.
// Rows stripe by group so detail rows share their header's parity.
func (hd HeaderDetail[G, D]) Render(groups []G, index GroupIndex, rng scroll.Range, layout Layout, selectedRow int) Frame {

	if layout.ViewportHeight <= 0 {
		return Frame{Deferred: true}
	}

	rowHeight := layout.RowHeight
	rowCount := index.RowCount()
	frm := Frame{TotalHeight: rowCount * rowHeight}

	rng = rng.Clamp(rowCount)
	if rng.Empty() || index.Len() == 0 || len(groups) < index.Len() {
		if rowCount > 0 {
			frm.Elements = append(frm.Elements, filler("leading", rowCount*rowHeight))
		}
		return frm
	}

	startGroup := index.GroupOf(rng.Start)
	endGroup := index.GroupOf(rng.End)

	if lead := index.Preceding(startGroup); lead > 0 {
		frm.Elements = append(frm.Elements, filler("leading", lead*rowHeight))
	}

	add := func(elm Element, key string, row int, parity Parity) {
		elm.Kind = Row
		elm.Key = key
		elm.Row = row
		elm.Height = rowHeight
		elm.Parity = parity
		elm.Selected = row == selectedRow
		frm.Elements = append(frm.Elements, elm)
	}

	for grp := startGroup; grp <= endGroup; grp++ {
		group := groups[grp]
		parity := ParityOf(grp)
		row := index.Preceding(grp)

		elm, ok := hd.RenderGroup(group, grp, row == selectedRow)
		if ok {
			add(elm, group.ID(), row, parity)
		}

		for dtl, detail := range hd.Details(group) {
			row := index.Preceding(grp) + 1 + dtl
			elm, ok := hd.RenderDetail(group, grp, detail, dtl, row == selectedRow)
			if ok {
				add(elm, fmt.Sprintf("%s/%d", group.ID(), dtl), row, parity)
			}
		}
	}

	if trail := index.RowsAfter(endGroup); trail > 0 {
		frm.Elements = append(frm.Elements, filler("trailing", trail*rowHeight))
	}

	return frm
}
