package drawer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-hamster/internal/entity"
)

type drawerJSON struct {
	BottomLeftCorner entity.Vec2         `json:"bottomLeftCorner"`
	FontSize         float64             `json:"fontSize"`
	EntityTable      [][]json.RawMessage `json:"entityTable"`
}

var null = []byte("null")

func (d *Drawer) MarshalJSON() ([]byte, error) {
	table := make([][]json.RawMessage, len(d.cells))
	for r, row := range d.cells {
		table[r] = make([]json.RawMessage, len(row))
		for c, e := range row {
			if e == nil {
				table[r][c] = null
				continue
			}
			b, err := entity.MarshalTagged(e)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", r, c, err)
			}
			table[r][c] = b
		}
	}

	return json.Marshal(drawerJSON{
		BottomLeftCorner: d.anchor,
		FontSize:         d.fontSize,
		EntityTable:      table,
	})
}

func (d *Drawer) UnmarshalJSON(b []byte) error {
	var in drawerJSON
	if err := entity.DecodeStrict(b, &in); err != nil {
		return fmt.Errorf("%w: item drawer: %w", entity.ErrMalformedEntityData, err)
	}

	if err := validateTable(in); err != nil {
		return fmt.Errorf("%w: item drawer: %w", entity.ErrMalformedEntityData, err)
	}

	cols := 0
	if len(in.EntityTable) > 0 {
		cols = len(in.EntityTable[0])
	}
	next := New(len(in.EntityTable), cols, in.BottomLeftCorner, in.FontSize)

	for r, row := range in.EntityTable {
		for c, raw := range row {
			if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), null) {
				continue
			}
			e, err := entity.UnmarshalTagged(raw)
			if err != nil {
				return fmt.Errorf("item drawer cell %d,%d: %w", r, c, err)
			}
			next.store(r, c, e)
		}
	}

	*d = *next
	return nil
}

func validateTable(in drawerJSON) error {
	el := errors.NewErrorList()

	if in.FontSize <= 0 {
		el.Add(fmt.Errorf("fontSize must be positive"))
	}
	for r, row := range in.EntityTable {
		if len(row) != len(in.EntityTable[0]) {
			el.Add(fmt.Errorf("row %d has %d cells, expected %d", r, len(row), len(in.EntityTable[0])))
		}
	}

	return el.Err()
}
