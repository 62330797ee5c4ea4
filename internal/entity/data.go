package entity

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// HoverEmphasis scales the drawn size of an entity hovered this frame.
const HoverEmphasis = 1.25

// Interaction is the per-frame cursor state of an entity. It is never
// persisted and is cleared every time the entity is drawn.
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionHovered
)

// StaticData is the payload of every entity that does not update itself.
type StaticData struct {
	// ID is assigned at spawn and only used to tell entities apart
	ID string `json:"id"`

	Appearance

	// Plantable marks decor that may be placed into the world
	Plantable bool `json:"plantable"`

	Interaction Interaction `json:"-"`
}

func (d *StaticData) Validate() error {
	el := errors.NewErrorList()

	if _, ok := symbolNames[d.Symbol]; !ok {
		el.Add(fmt.Errorf("symbol is required"))
	}
	if _, ok := colorNames[d.Color]; !ok {
		el.Add(fmt.Errorf("color is required"))
	}
	if d.Size < 0 {
		el.Add(fmt.Errorf("size must not be negative"))
	}

	return el.Err()
}

// draw renders the glyph and consumes the hover flag.
func (d *StaticData) draw(c Canvas) {
	size := d.Size
	if d.Interaction == InteractionHovered {
		size *= HoverEmphasis
	}
	c.DrawGlyph(d.Symbol, size, d.Color, d.Position)
	d.Interaction = InteractionNone
}

// DynamicData extends StaticData with movement and a behavior state.
type DynamicData struct {
	StaticData

	// MoveSpeed is in distance units per second
	MoveSpeed float64  `json:"moveSpeed"`
	Behavior  Behavior `json:"behaviorState"`
}

func (d *DynamicData) Validate() error {
	el := errors.NewErrorList()

	el.Add(d.StaticData.Validate())
	if d.MoveSpeed < 0 {
		el.Add(fmt.Errorf("moveSpeed must not be negative"))
	}

	return el.Err()
}
