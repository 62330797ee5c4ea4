package entity

import (
	"fmt"
	"math"
)

// Vec2 is a point or offset in environment coordinates. The origin is the
// bottom-left of the screen and y grows upward.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Symbol identifies the glyph an entity is drawn with.
type Symbol int

const (
	SymbolUnknown Symbol = iota
	SymbolHamster
	SymbolSprout
	SymbolPointer
)

var symbolNames = map[Symbol]string{
	SymbolHamster: "hamster",
	SymbolSprout:  "sprout",
	SymbolPointer: "pointer",
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("symbol(%d)", int(s))
}

func (s Symbol) MarshalText() ([]byte, error) {
	name, ok := symbolNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown symbol: %d", int(s))
	}
	return []byte(name), nil
}

func (s *Symbol) UnmarshalText(text []byte) error {
	for sym, name := range symbolNames {
		if name == string(text) {
			*s = sym
			return nil
		}
	}
	return fmt.Errorf("unknown symbol: %s", text)
}

// Color is the palette entry a glyph is tinted with. The display surface maps
// it to a concrete color when drawing.
type Color int

const (
	ColorUnknown Color = iota
	ColorGreen
	ColorBrown
	ColorYellow
)

var colorNames = map[Color]string{
	ColorGreen:  "green",
	ColorBrown:  "brown",
	ColorYellow: "yellow",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) MarshalText() ([]byte, error) {
	name, ok := colorNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown color: %d", int(c))
	}
	return []byte(name), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	for col, name := range colorNames {
		if name == string(text) {
			*c = col
			return nil
		}
	}
	return fmt.Errorf("unknown color: %s", text)
}

// Appearance holds what every entity needs to be drawn.
type Appearance struct {
	Symbol   Symbol  `json:"symbol"`
	Size     float64 `json:"size"`
	Color    Color   `json:"color"`
	Position Vec2    `json:"position"`
}

// Canvas is the drawing contract of the display surface: a glyph of the given
// size and color, centered at a position.
type Canvas interface {
	DrawGlyph(sym Symbol, size float64, color Color, at Vec2)
}
