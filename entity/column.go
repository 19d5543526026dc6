package entity

// Column is a configured grid column.
type Column struct {
	Field  string `yaml:"field"`
	Width  int    `yaml:"width"`
	Format string `yaml:"format,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// Visible returns the columns not hidden.
func Visible(cols []Column) []Column {

	visible := []Column{}
	for _, col := range cols {
		if !col.Hidden {
			visible = append(visible, col)
		}
	}
	return visible
}
