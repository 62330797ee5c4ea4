package display

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-hamster/internal/entity"
)

var emojiRunes = map[entity.Symbol]rune{
	entity.SymbolHamster: '🐹',
	entity.SymbolSprout:  '🌱',
	entity.SymbolPointer: '👉',
}

var asciiRunes = map[entity.Symbol]rune{
	entity.SymbolHamster: 'h',
	entity.SymbolSprout:  '"',
	entity.SymbolPointer: '>',
}

var colors = map[entity.Color]tcell.Color{
	entity.ColorGreen:  tcell.ColorGreen,
	entity.ColorBrown:  tcell.NewRGBColor(139, 69, 19),
	entity.ColorYellow: tcell.ColorYellow,
}

// Canvas draws entity glyphs onto a tcell screen. A terminal cannot scale a
// glyph, so sizes at or above the emphasis size are drawn bold instead. The
// pointer does not cover a glyph already in its cell; it reverses it.
type Canvas struct {
	screen       tcell.Screen
	proj         Projection
	ascii        bool
	emphasisSize float64
}

func NewCanvas(screen tcell.Screen, proj Projection, opts ...CanvasOpt) *Canvas {
	c := &Canvas{
		screen:       screen,
		proj:         proj,
		emphasisSize: DefaultEmphasisSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Canvas) DrawGlyph(sym entity.Symbol, size float64, color entity.Color, at entity.Vec2) {
	col, row := c.proj.ToCell(at)
	w, h := c.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}

	if sym == entity.SymbolPointer {
		if under, combc, style, _ := c.screen.GetContent(col, row); under != ' ' && under != 0 {
			c.screen.SetContent(col, row, under, combc, style.Reverse(true))
			return
		}
	}

	c.screen.SetContent(col, row, c.glyphRune(sym), nil, glyphStyle(color, size >= c.emphasisSize))
}

func (c *Canvas) glyphRune(sym entity.Symbol) rune {
	runes := emojiRunes
	if c.ascii {
		runes = asciiRunes
	}
	if r, ok := runes[sym]; ok {
		return r
	}
	return '?'
}

func glyphStyle(color entity.Color, bold bool) tcell.Style {
	style := tcell.StyleDefault
	if fg, ok := colors[color]; ok {
		style = style.Foreground(fg)
	}
	return style.Bold(bold)
}
