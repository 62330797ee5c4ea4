package display

import (
	"math"

	"github.com/pixil98/go-hamster/internal/entity"
)

// Projection maps environment coordinates onto terminal cells. The
// environment grows upward from the bottom-left while terminal rows grow
// downward from the top, so the y axis is flipped.
type Projection struct {
	CellWidth  float64
	CellHeight float64
	Rows       int
}

// ToWorld returns the centre of the terminal cell at col, row.
func (p Projection) ToWorld(col, row int) entity.Vec2 {
	return entity.Vec2{
		X: (float64(col) + 0.5) * p.CellWidth,
		Y: (float64(p.Rows-1-row) + 0.5) * p.CellHeight,
	}
}

// ToCell returns the terminal cell containing v.
func (p Projection) ToCell(v entity.Vec2) (col, row int) {
	col = int(math.Floor(v.X / p.CellWidth))
	row = p.Rows - 1 - int(math.Floor(v.Y/p.CellHeight))
	return col, row
}
