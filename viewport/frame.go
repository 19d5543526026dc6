// Package viewport renders the in-range rows of a virtualized grid, with filler
// standing in for the rows outside the range.
package viewport

import (
	"strings"

	"tally/selection"
)

// Kind is the kind of a rendered element.
type Kind int

const (
	Filler Kind = iota
	Row
	Static
)

// Parity is the odd/even striping of a row.
type Parity int

const (
	Even Parity = iota
	Odd
)

func (par Parity) String() string {
	if par == Odd {
		return "odd"
	}
	return "even"
}

// ParityOf returns the parity of a row or group index.
func ParityOf(idx int) Parity {
	if idx%2 == 0 {
		return Even
	}
	return Odd
}

// Element is one rendered block of lines.
type Element struct {
	Kind Kind
	Key  string
	// Row is the absolute row rendered, -1 for filler and static elements.
	Row      int
	Height   int
	Content  string
	Cells    []selection.CellBox
	Parity   Parity
	Selected bool
}

// Layout gives the measurements a frame is rendered for.
type Layout struct {
	RowHeight      int
	ViewportHeight int
}

// Frame is a rendered range of rows.
type Frame struct {
	Elements []Element
	// TotalHeight is the height of all rows, rendered or not.
	TotalHeight int
	// Deferred is true when nothing was rendered for want of a laid out viewport.
	Deferred bool
}

// Paint returns height lines of the frame starting scrollTop lines down.
func (frm Frame) Paint(scrollTop, height int) []string {

	lines := make([]string, 0, max(height, 0))
	bottom := scrollTop + height

	top := 0
	for _, elm := range frm.Elements {
		end := top + elm.Height
		if end > scrollTop && top < bottom {
			content := contentLines(elm)
			for y := max(top, scrollTop); y < min(end, bottom); y++ {
				line := ""
				if y-top < len(content) {
					line = content[y-top]
				}
				lines = append(lines, line)
			}
		}
		top = end
		if top >= bottom {
			break
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// ListHitTest returns list geometry for the frame painted scrollTop lines down
// at screen line top.
func (frm Frame) ListHitTest(scrollTop, top int) selection.ListHitTest {

	ht := selection.ListHitTest{Offset: -1}
	frm.walk(func(elm Element, y int) {
		if ht.Offset < 0 {
			ht.Offset = elm.Row
		}
		ht.Bottoms = append(ht.Bottoms, y-scrollTop+top+elm.Height)
		ht.RowIndex = append(ht.RowIndex, elm.Row)
	})

	ht.Offset = max(ht.Offset, 0)
	return ht
}

// TableHitTest returns table geometry for the frame painted scrollTop lines down
// at screen line top.
func (frm Frame) TableHitTest(scrollTop, top int) selection.TableHitTest {

	ht := selection.TableHitTest{Offset: -1}
	frm.walk(func(elm Element, y int) {
		if ht.Offset < 0 {
			ht.Offset = elm.Row
		}
		rowTop := y - scrollTop + top
		ht.Rows = append(ht.Rows, selection.RowBox{
			Top:    rowTop,
			Bottom: rowTop + elm.Height,
			Cells:  elm.Cells,
		})
		ht.RowIndex = append(ht.RowIndex, elm.Row)
	})

	ht.Offset = max(ht.Offset, 0)
	return ht
}

// unexported

// walk calls fn for each row element with its content line.
func (frm Frame) walk(fn func(elm Element, y int)) {

	y := 0
	for _, elm := range frm.Elements {
		if elm.Kind == Row {
			fn(elm, y)
		}
		y += elm.Height
	}
}

// contentLines splits content into lines, short content is padded by Paint.
func contentLines(elm Element) []string {

	if elm.Content == "" {
		return nil
	}
	return strings.Split(elm.Content, "\n")
}

func filler(key string, height int) Element {
	return Element{
		Kind:   Filler,
		Key:    key,
		Row:    -1,
		Height: height,
	}
}
