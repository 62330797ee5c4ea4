package drawer

import (
	"fmt"

	"github.com/pixil98/go-hamster/internal/entity"
	"github.com/pixil98/go-hamster/internal/invariant"
)

// CellScale is the ratio of a cell's edge to the drawer font size.
const CellScale = 1.5

// Drawer is a fixed grid of item slots anchored at its bottom-left corner.
// Row 0 is the top row. An entity stored in a cell has its position and size
// dictated by that cell.
type Drawer struct {
	anchor   entity.Vec2
	fontSize float64
	cells    [][]*entity.Entity
}

// New creates an empty drawer of rows x cols cells.
func New(rows, cols int, anchor entity.Vec2, fontSize float64) *Drawer {
	cells := make([][]*entity.Entity, rows)
	for r := range cells {
		cells[r] = make([]*entity.Entity, cols)
	}
	return &Drawer{
		anchor:   anchor,
		fontSize: fontSize,
		cells:    cells,
	}
}

func (d *Drawer) Rows() int {
	return len(d.cells)
}

func (d *Drawer) Cols() int {
	if len(d.cells) == 0 {
		return 0
	}
	return len(d.cells[0])
}

func (d *Drawer) Anchor() entity.Vec2 {
	return d.anchor
}

func (d *Drawer) FontSize() float64 {
	return d.fontSize
}

func (d *Drawer) CellSize() float64 {
	return d.fontSize * CellScale
}

// Capacity is the total number of cells.
func (d *Drawer) Capacity() int {
	return d.Rows() * d.Cols()
}

// Len is the number of occupied cells.
func (d *Drawer) Len() int {
	n := 0
	d.Each(func(int, int, *entity.Entity) { n++ })
	return n
}

// CellCenter returns the screen position at the center of a cell.
func (d *Drawer) CellCenter(row, col int) entity.Vec2 {
	size := d.CellSize()
	return entity.Vec2{
		X: d.anchor.X + float64(col)*size + size/2,
		Y: d.anchor.Y + float64(d.Rows()-1-row)*size + size/2,
	}
}

// Add stores e in the first empty cell, scanning rows top to bottom and
// columns left to right. A full drawer is left untouched.
func (d *Drawer) Add(e *entity.Entity) (row, col int, err error) {
	for r, cells := range d.cells {
		for c, occupant := range cells {
			if occupant == nil {
				d.store(r, c, e)
				return r, c, nil
			}
		}
	}
	return -1, -1, ErrDrawerFull
}

// Place stores e in a specific empty cell.
func (d *Drawer) Place(row, col int, e *entity.Entity) error {
	if err := d.checkIndex(row, col); err != nil {
		return err
	}
	if d.cells[row][col] != nil {
		return fmt.Errorf("%w: %d,%d", ErrCellOccupied, row, col)
	}
	d.store(row, col, e)
	return nil
}

func (d *Drawer) store(row, col int, e *entity.Entity) {
	invariant.Check(d.cells[row][col] == nil, "drawer cell %d,%d written while occupied", row, col)

	e.SetPosition(d.CellCenter(row, col))
	e.SetSize(d.fontSize)
	d.cells[row][col] = e
}

// At returns the occupant of a cell, or nil if it is empty.
func (d *Drawer) At(row, col int) (*entity.Entity, error) {
	if err := d.checkIndex(row, col); err != nil {
		return nil, err
	}
	return d.cells[row][col], nil
}

// Take removes and returns the occupant of a cell, or nil if it is empty.
func (d *Drawer) Take(row, col int) (*entity.Entity, error) {
	if err := d.checkIndex(row, col); err != nil {
		return nil, err
	}
	e := d.cells[row][col]
	d.cells[row][col] = nil
	return e, nil
}

// Contains reports whether p lies inside the drawer's bounds.
func (d *Drawer) Contains(p entity.Vec2) bool {
	size := d.CellSize()
	return p.X >= d.anchor.X && p.X < d.anchor.X+float64(d.Cols())*size &&
		p.Y >= d.anchor.Y && p.Y < d.anchor.Y+float64(d.Rows())*size
}

// CellAt returns the cell containing p.
func (d *Drawer) CellAt(p entity.Vec2) (row, col int, ok bool) {
	if !d.Contains(p) {
		return -1, -1, false
	}

	size := d.CellSize()
	col = int((p.X - d.anchor.X) / size)
	row = d.Rows() - 1 - int((p.Y-d.anchor.Y)/size)

	if err := d.checkIndex(row, col); err != nil {
		invariant.Check(false, "point %v inside drawer bounds resolved to %v", p, err)
		return -1, -1, false
	}
	return row, col, true
}

// Hit returns the occupant of the cell under p, if any.
func (d *Drawer) Hit(p entity.Vec2) *entity.Entity {
	row, col, ok := d.CellAt(p)
	if !ok {
		return nil
	}
	return d.cells[row][col]
}

// Draw renders every occupied cell.
func (d *Drawer) Draw(c entity.Canvas) {
	d.Each(func(_, _ int, e *entity.Entity) { e.Draw(c) })
}

// Each calls fn for every occupied cell in row-major order.
func (d *Drawer) Each(fn func(row, col int, e *entity.Entity)) {
	for r, row := range d.cells {
		for c, e := range row {
			if e != nil {
				fn(r, c, e)
			}
		}
	}
}

func (d *Drawer) checkIndex(row, col int) error {
	if row < 0 || row >= d.Rows() || col < 0 || col >= d.Cols() {
		return fmt.Errorf("%w: %d,%d in %dx%d", ErrGridIndexOutOfRange, row, col, d.Rows(), d.Cols())
	}
	return nil
}
