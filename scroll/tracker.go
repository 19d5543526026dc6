// Package scroll tracks which rows of a virtualized grid are in range.
package scroll

import (
	"math"

	"tally/notify"
)

const (
	// DefaultOverscan is the number of extra screens rendered on each side.
	DefaultOverscan = 1.0

	unbounded = math.MaxInt32
)

// Config specifies a tracker.
type Config struct {
	RowHeight      int     `yaml:"row_height"`
	HeaderHeight   int     `yaml:"header_height,omitempty"`
	Prototype      string  `yaml:"prototype,omitempty"`
	Header         string  `yaml:"header,omitempty"`
	OverscanFactor float64 `yaml:"overscan_factor,omitempty"`
}

// Viewport is the scroll state of a container, in lines.
type Viewport struct {
	ClientHeight int
	ScrollTop    int
}

// Size is a window or panel size.
type Size struct {
	Width  int
	Height int
}

// Range is an inclusive span of rows.
type Range struct {
	Start int
	End   int
}

// Empty is true when the range holds no rows.
func (rng Range) Empty() bool {
	return rng.End < rng.Start
}

// Clamp limits the range to rows that exist.
func (rng Range) Clamp(rowCount int) Range {

	if rng.Start < 0 {
		rng.Start = 0
	}
	if rng.End > rowCount-1 {
		rng.End = rowCount - 1
	}
	return rng
}

// Tracker computes the row range to render from scroll position.
type Tracker struct {
	cfg          Config
	rowHeight    int
	headerHeight int
	startRow     int
	changes      notify.List[int]
}

// New creates a tracker from config.
// A zero RowHeight leaves the tracker unmeasured until Measure succeeds.
func (cfg *Config) New() *Tracker {

	if cfg.OverscanFactor <= 0 {
		cfg.OverscanFactor = DefaultOverscan
	}

	return &Tracker{
		cfg:          *cfg,
		rowHeight:    cfg.RowHeight,
		headerHeight: cfg.HeaderHeight,
	}
}

// Measure takes row and header heights from a rendered container.
func (trk *Tracker) Measure(container Container) {

	trk.rowHeight = MeasureRowHeight(container, trk.cfg.Prototype, trk.cfg.RowHeight)
	trk.headerHeight = MeasureHeaderHeight(container, trk.cfg.Header, trk.cfg.HeaderHeight)
}

// RowHeight returns the current row height, zero when not yet measurable.
func (trk *Tracker) RowHeight() int {
	return trk.rowHeight
}

// HeaderHeight returns the height of the fixed header region.
func (trk *Tracker) HeaderHeight() int {
	return trk.headerHeight
}

// StartRow returns the first row to be rendered.
func (trk *Tracker) StartRow() int {
	return trk.startRow
}

// OnScroll recomputes the start row for the container's scroll position.
// Start rows are even so that odd/even striping holds still while scrolling.
func (trk *Tracker) OnScroll(vp Viewport) int {

	start := 0
	if trk.rowHeight > 0 {
		overscan := ceilDiv(vp.ClientHeight, trk.rowHeight)
		start = max(0, vp.ScrollTop/trk.rowHeight-overscan)
		if start%2 != 0 {
			start++
		}
	}

	if start != trk.startRow {
		trk.startRow = start
		trk.changes.Notify(start)
	}
	return start
}

// EndRow returns the last row to be rendered for a visible height.
// Until rows have height, the end is unbounded.
func (trk *Tracker) EndRow(visibleHeight int) int {

	if trk.rowHeight <= 0 {
		return unbounded
	}

	visibleRows := float64(visibleHeight) / float64(trk.rowHeight)
	return trk.startRow + int(math.Ceil(visibleRows*(1+2*trk.cfg.OverscanFactor)))
}

// Range returns the rows to render, clamped to rowCount.
func (trk *Tracker) Range(visibleHeight, rowCount int) Range {

	rng := Range{
		Start: trk.startRow,
		End:   trk.EndRow(visibleHeight),
	}
	return rng.Clamp(rowCount)
}

// PageSize returns the number of whole rows in a container height.
func (trk *Tracker) PageSize(containerHeight int) int {

	if trk.rowHeight <= 0 {
		return 0
	}
	return containerHeight / trk.rowHeight
}

// Subscribe registers for start row changes.
func (trk *Tracker) Subscribe(fn func(startRow int)) (unsubscribe func()) {
	return trk.changes.Register(fn)
}

// unexported

func ceilDiv(num, den int) int {

	if num <= 0 {
		return 0
	}
	return (num + den - 1) / den
}
