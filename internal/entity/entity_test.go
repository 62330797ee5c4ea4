package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

type glyph struct {
	sym   Symbol
	size  float64
	color Color
	at    Vec2
}

type recordingCanvas struct {
	glyphs []glyph
}

func (c *recordingCanvas) DrawGlyph(sym Symbol, size float64, color Color, at Vec2) {
	c.glyphs = append(c.glyphs, glyph{sym: sym, size: size, color: color, at: at})
}

type fixedContext struct {
	cursor Vec2
	dt     float64
}

func (c fixedContext) CursorPosition() Vec2 { return c.cursor }
func (c fixedContext) DeltaTime() float64   { return c.dt }

func TestNewStatic(t *testing.T) {
	tests := map[string]struct {
		kind         StaticKind
		expSymbol    Symbol
		expPlantable bool
		expErr       error
	}{
		"base is the pointer": {
			kind:      StaticKindBase,
			expSymbol: SymbolPointer,
		},
		"grass is a plantable sprout": {
			kind:         StaticKindGrass,
			expSymbol:    SymbolSprout,
			expPlantable: true,
		},
		"unknown kind": {
			kind:   "unicorn",
			expErr: ErrUnknownEntityKind,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := NewStatic(tt.kind)
			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Errorf("got error %v, expected %v", err, tt.expErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "symbol", e.Data.Symbol, tt.expSymbol)
			testutil.AssertEqual(t, "plantable", e.Data.Plantable, tt.expPlantable)
			if e.Data.ID == "" {
				t.Errorf("expected an id to be assigned")
			}
		})
	}
}

func TestNewDynamic_UniqueIDs(t *testing.T) {
	a, err := NewDynamic(DynamicKindHamster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewDynamic(DynamicKindHamster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Data.ID == b.Data.ID {
		t.Errorf("expected distinct ids, both were %q", a.Data.ID)
	}
	testutil.AssertEqual(t, "initial state", a.State(), StateIdle)
}

func TestDynamicEntity_Update_DispatchesByKind(t *testing.T) {
	ctx := fixedContext{cursor: Vec2{X: 64, Y: 0}, dt: 0.125}

	tests := map[string]struct {
		kind   DynamicKind
		expPos Vec2
	}{
		"base kind holds still": {
			kind:   DynamicKindBase,
			expPos: Vec2{},
		},
		"hamster chases": {
			kind:   DynamicKindHamster,
			expPos: Vec2{X: 16, Y: 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := NewDynamic(tt.kind)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			e.Data.MoveSpeed = 128
			e.Chase()

			// Update must be resolved from the decoded tag, not the payload.
			b, err := json.Marshal(e)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			decoded := &DynamicEntity{}
			if err := json.Unmarshal(b, decoded); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			decoded.Update(ctx)
			testutil.AssertEqual(t, "position", decoded.Data.Position, tt.expPos)
		})
	}
}

func TestDynamicEntity_Pursue(t *testing.T) {
	e, err := NewDynamic(DynamicKindHamster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Data.Position = Vec2{X: 9, Y: 9}
	e.Pursue(Vec2{X: 10, Y: 10})

	e.Update(fixedContext{dt: 0.016})

	testutil.AssertEqual(t, "behavior", e.Data.Behavior, ConsumingTarget(ConsumeDuration))
}

func TestEntity_Draw_ConsumesHover(t *testing.T) {
	grass, err := NewStatic(StaticKindGrass)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := FromStatic(grass)
	e.SetSize(20)
	e.Hover()

	c := &recordingCanvas{}
	e.Draw(c)
	e.Draw(c)

	testutil.AssertEqual(t, "draw count", len(c.glyphs), 2)
	testutil.AssertEqual(t, "hovered size", c.glyphs[0].size, 20*HoverEmphasis)
	testutil.AssertEqual(t, "next frame size", c.glyphs[1].size, 20.0)
	testutil.AssertEqual(t, "hovered after draw", e.Hovered(), false)
}

func TestEntity_Accessors(t *testing.T) {
	hamster, err := NewDynamic(DynamicKindHamster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := FromDynamic(hamster)

	e.SetPosition(Vec2{X: 3, Y: 4})
	e.SetSize(48)

	testutil.AssertEqual(t, "variant", e.Variant(), VariantDynamic)
	testutil.AssertEqual(t, "tag", e.Tag(), "hamster")
	testutil.AssertEqual(t, "position", hamster.Data.Position, Vec2{X: 3, Y: 4})
	testutil.AssertEqual(t, "size", hamster.Data.Size, 48.0)
	testutil.AssertEqual(t, "symbol", e.Symbol(), SymbolHamster)
	testutil.AssertEqual(t, "id", e.ID(), hamster.Data.ID)
}
