package scroll

// Port is the scrolling region of a panel, in lines.
// It keeps its tracker current as it scrolls and serves as a cursor's scroller.
type Port struct {
	tracker   *Tracker
	size      Size
	scrollTop int
	rowCount  int
}

// NewPort creates a port scrolled by trk.
func NewPort(trk *Tracker) *Port {
	return &Port{tracker: trk}
}

// Tracker returns the port's tracker.
func (port *Port) Tracker() *Tracker {
	return port.tracker
}

// Size returns the size of the port, header included.
func (port *Port) Size() Size {
	return port.size
}

// Band returns the height of the scrolling region below the header.
func (port *Port) Band() int {
	return max(port.size.Height-port.tracker.HeaderHeight(), 0)
}

// Viewport returns the scroll state of the port.
// Rows scroll under a sticky header, so the client height is the band.
func (port *Port) Viewport() Viewport {

	return Viewport{
		ClientHeight: port.Band(),
		ScrollTop:    port.scrollTop,
	}
}

// ScrollTop returns the first line of rows shown.
func (port *Port) ScrollTop() int {
	return port.scrollTop
}

// ScrollTo scrolls so that line top is shown first, within the rows.
func (port *Port) ScrollTo(top int) {

	port.scrollTop = max(0, min(top, port.maxTop()))
	port.tracker.OnScroll(port.Viewport())
}

// ScrollBy scrolls by delta lines.
func (port *Port) ScrollBy(delta int) {
	port.ScrollTo(port.scrollTop + delta)
}

// Resize sets the size of the port, remeasuring from container.
func (port *Port) Resize(size Size, container Container) {

	port.size = size
	port.tracker.Measure(container)
	port.ScrollTo(port.scrollTop)
}

// SetRowCount sets the number of rows scrolled through.
func (port *Port) SetRowCount(count int) {

	port.rowCount = max(count, 0)
	port.ScrollTo(port.scrollTop)
}

// Range returns the rows to render.
// It always reaches the last row showing in the band, whatever the overscan.
func (port *Port) Range() Range {

	rng := port.tracker.Range(port.Band(), port.rowCount)

	rowHeight := port.tracker.RowHeight()
	if rowHeight > 0 && port.Band() > 0 {
		last := (port.scrollTop + port.Band() - 1) / rowHeight
		rng.End = max(rng.End, last)
	}
	return rng.Clamp(port.rowCount)
}

// unexported

func (port *Port) maxTop() int {
	return max(port.rowCount*port.tracker.RowHeight()-port.Band(), 0)
}
