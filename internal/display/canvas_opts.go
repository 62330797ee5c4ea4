package display

// DefaultEmphasisSize sits between the default drawer font size and the
// same size under hover emphasis.
const DefaultEmphasisSize = 36

type CanvasOpt func(*Canvas)

// WithASCII draws plain characters for terminals without emoji fonts.
func WithASCII(ascii bool) CanvasOpt {
	return func(c *Canvas) {
		c.ascii = ascii
	}
}

func WithEmphasisSize(size float64) CanvasOpt {
	return func(c *Canvas) {
		c.emphasisSize = size
	}
}
