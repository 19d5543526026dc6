package ledger

import (
	"strings"

	nt "tally/entity"
	"tally/selection"
	"tally/style"
	"tally/viewport"
)

const detailIndent = "  "

// header renders the transaction and split column titles.
func (pnl Panel) header() string {

	cols := *pnl.cols
	group := []string{
		style.Cell(" Date", cols.date.Width, style.HeaderStyle),
		style.Cell(" Payee", cols.payee.Width, style.HeaderStyle),
		style.Cell(" Memo", cols.memo.Width, style.HeaderStyle),
		style.CellRight("Amount ", cols.amount.Width, style.HeaderStyle),
	}
	detail := []string{
		style.Cell("   Category", cols.date.Width+cols.payee.Width, style.DetailHeadStyle),
		style.Cell("   Memo", cols.memo.Width, style.DetailHeadStyle),
		style.CellRight("Amount ", cols.amount.Width, style.DetailHeadStyle),
	}

	return strings.Join(group, "") + "\n" + strings.Join(detail, "")
}

// prototype renders a row for measuring row height.
func (pnl Panel) prototype() string {

	proto := nt.Transaction{Payee: "Prototype", Splits: []nt.Split{{Category: "prototype"}}}
	return pnl.renderRow(-1, viewport.Even, false, "", pnl.groupTexts(&proto), pnl.cols.groupCells())
}

func (pnl Panel) renderer() viewport.HeaderDetail[entry, nt.Split] {

	return viewport.HeaderDetail[entry, nt.Split]{
		Details: func(ent entry) []nt.Split {
			return ent.tx.Splits
		},
		RenderGroup: func(ent entry, groupIdx int, selected bool) (viewport.Element, bool) {
			row := pnl.book.index.Preceding(groupIdx)
			cells := pnl.cols.groupCells()
			return viewport.Element{
				Content: pnl.renderRow(row, viewport.ParityOf(groupIdx), selected, "", pnl.groupTexts(ent.tx), cells),
				Cells:   cells,
			}, true
		},
		RenderDetail: func(ent entry, groupIdx int, split nt.Split, detailIdx int, selected bool) (viewport.Element, bool) {
			row := pnl.book.index.Preceding(groupIdx) + 1 + detailIdx
			cells := pnl.cols.detailCells()
			return viewport.Element{
				Content: pnl.renderRow(row, viewport.ParityOf(groupIdx), selected, detailIndent, pnl.detailTexts(split), cells),
				Cells:   cells,
			}, true
		},
	}
}

func (pnl Panel) groupTexts(tx *nt.Transaction) []string {

	cols := *pnl.cols
	return []string{
		tx.Value("date").Format(cols.date.Format),
		tx.Payee,
		tx.Memo,
		tx.Value("amount").Format(cols.amount.Format),
	}
}

func (pnl Panel) detailTexts(split nt.Split) []string {

	return []string{
		split.Category,
		split.Memo,
		split.Value("amount").Format(pnl.cols.amount.Format),
	}
}

// renderRow renders the cells of a row, marking the selected and edited cell.
// The last cell holds an amount and aligns right, the others are indented.
func (pnl Panel) renderRow(row int, par viewport.Parity, selected bool, indent string, texts []string, cells []selection.CellBox) string {

	cell := pnl.cursor.Cell()
	pending, editing := pnl.cursor.Pending()
	rowStyle := style.RowStyle(par, selected)

	var bld strings.Builder
	column := 0
	for i, box := range cells {
		span := max(box.Span, 1)
		covers := func(at selection.Cell) bool {
			return at.Row == row && at.Column >= column && at.Column < column+span
		}

		text := texts[i]
		edited := editing && covers(pending.Cell)
		if edited {
			before, after := pending.Input.Split()
			text = style.Caret(before, after)
		}

		st := style.CellStyle(rowStyle, covers(cell), edited)
		width := box.Right - box.Left
		if i == len(cells)-1 {
			bld.WriteString(style.CellRight(text+" ", width, st))
		} else {
			bld.WriteString(style.Cell(" "+indent+text, width, st))
		}
		column += span
	}

	return bld.String()
}
