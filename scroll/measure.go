package scroll

// Container is a rendered region whose parts can be measured by selector.
type Container interface {
	// Measure returns the rendered height of the part named by selector.
	Measure(selector string) (height int, ok bool)
}

// MeasureRowHeight returns the rendered height of the prototype row,
// or dflt when there is nothing usable to measure.
func MeasureRowHeight(container Container, prototype string, dflt int) int {

	return measure(container, prototype, dflt)
}

// MeasureHeaderHeight returns the rendered height of the fixed header region.
// No header selector means no header.
func MeasureHeaderHeight(container Container, header string, dflt int) int {

	if header == "" {
		return 0
	}
	return measure(container, header, dflt)
}

// unexported

func measure(container Container, selector string, dflt int) int {

	if container == nil || selector == "" {
		return dflt
	}

	height, ok := container.Measure(selector)
	if !ok || height <= 0 {
		return dflt
	}
	return height
}
