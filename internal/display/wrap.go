package display

import (
	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to width columns. A width below one falls back to
// DefaultWidth.
func Wrap(text string, width int) string {
	if width < 1 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}
