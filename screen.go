package tally

// Screen indicates which screen is currently displayed
type Screen int

const (
	AccountsScreen Screen = iota
	LedgerScreen
)

func (scr Screen) String() string {
	if scr == LedgerScreen {
		return "ledger"
	}
	return "accounts"
}

// next returns the screen after scr
func (scr Screen) next() Screen {
	if scr == AccountsScreen {
		return LedgerScreen
	}
	return AccountsScreen
}
