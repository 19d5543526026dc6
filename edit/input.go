// Package edit provides the in-place text input used while a grid cell is edited.
package edit

import (
	"strings"

	"github.com/rivo/uniseg"
)

const (
	defaultMaxLength = 100
)

// Input is an editable line of text with a caret.
// The caret moves over grapheme clusters, so an accented letter or emoji is one step.
// Input is a value type; methods return the updated input.
type Input struct {
	value     []string
	caret     int
	maxLength int
}

// New creates an input holding value with the caret at its end.
func New(value string, maxLength int) Input {
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}

	clusters := graphemes(value)
	if len(clusters) > maxLength {
		clusters = clusters[:maxLength]
	}

	return Input{
		value:     clusters,
		caret:     len(clusters),
		maxLength: maxLength,
	}
}

// Apply updates the input for a named key or printable text.
// Handled is false when the key means nothing to the input.
func (in Input) Apply(name, text string) (out Input, handled bool) {

	// copy so earlier values are not shared
	in.value = append([]string(nil), in.value...)

	switch name {
	case "backspace":
		if in.caret > 0 {
			in.value = append(in.value[:in.caret-1], in.value[in.caret:]...)
			in.caret--
		}
	case "delete":
		if in.caret < len(in.value) {
			in.value = append(in.value[:in.caret], in.value[in.caret+1:]...)
		}
	case "left":
		if in.caret > 0 {
			in.caret--
		}
	case "right":
		if in.caret < len(in.value) {
			in.caret++
		}
	case "home", "ctrl+a":
		in.caret = 0
	case "end", "ctrl+e":
		in.caret = len(in.value)
	case "ctrl+u":
		in.value = in.value[in.caret:]
		in.caret = 0
	case "ctrl+k":
		in.value = in.value[:in.caret]
	default:
		if text == "" {
			return in, false
		}
		in = in.insert(text)
	}

	return in, true
}

// Value returns the current text.
func (in Input) Value() string {
	return strings.Join(in.value, "")
}

// Caret returns the caret position in grapheme clusters.
func (in Input) Caret() int {
	return in.caret
}

// Split returns the text before and after the caret, for rendering.
func (in Input) Split() (before, after string) {
	return strings.Join(in.value[:in.caret], ""), strings.Join(in.value[in.caret:], "")
}

// unexported

func (in Input) insert(text string) Input {

	for _, cluster := range graphemes(text) {
		if len(in.value) >= in.maxLength {
			break
		}
		in.value = append(in.value[:in.caret], append([]string{cluster}, in.value[in.caret:]...)...)
		in.caret++
	}
	return in
}

func graphemes(text string) (clusters []string) {

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return
}
