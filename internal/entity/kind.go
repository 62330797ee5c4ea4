package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// StaticKind tags a static payload with the concrete kind it belongs to.
type StaticKind string

const (
	StaticKindBase  StaticKind = "staticEntity"
	StaticKindGrass StaticKind = "grass"
)

// DynamicKind tags a dynamic payload with the concrete kind it belongs to.
type DynamicKind string

const (
	DynamicKindBase    DynamicKind = "dynamicEntity"
	DynamicKindHamster DynamicKind = "hamster"
)

// Context is what a dynamic entity can see of its environment while updating.
type Context interface {
	CursorPosition() Vec2
	DeltaTime() float64
}

// StaticKindSpec is the registry entry for a static kind. New is only called
// at spawn; decoded payloads come from the snapshot.
type StaticKindSpec struct {
	New  func() StaticData
	Draw func(*StaticData, Canvas)
}

// DynamicKindSpec is the registry entry for a dynamic kind.
type DynamicKindSpec struct {
	New    func() DynamicData
	Update func(*DynamicData, Context)
	Draw   func(*DynamicData, Canvas)
}

var staticKinds = map[StaticKind]StaticKindSpec{
	StaticKindBase: {
		New:  newPointerData,
		Draw: drawStatic,
	},
	StaticKindGrass: {
		New:  newGrassData,
		Draw: drawStatic,
	},
}

var dynamicKinds = map[DynamicKind]DynamicKindSpec{
	DynamicKindBase: {
		New:    newDynamicData,
		Update: holdStill,
		Draw:   drawDynamic,
	},
	DynamicKindHamster: {
		New:    newHamsterData,
		Update: runBehavior,
		Draw:   drawDynamic,
	},
}

func init() {
	// Drawer slots decode a bare {type, data}, so a tag must name one kind only.
	for k := range staticKinds {
		if _, ok := dynamicKinds[DynamicKind(k)]; ok {
			panic(fmt.Sprintf("entity kind %q registered as both static and dynamic", k))
		}
	}
}

// LookupStatic returns the registry entry for kind.
func LookupStatic(kind StaticKind) (StaticKindSpec, bool) {
	spec, ok := staticKinds[kind]
	return spec, ok
}

// LookupDynamic returns the registry entry for kind.
func LookupDynamic(kind DynamicKind) (DynamicKindSpec, bool) {
	spec, ok := dynamicKinds[kind]
	return spec, ok
}

func newPointerData() StaticData {
	return StaticData{
		ID: uuid.New().String(),
		Appearance: Appearance{
			Symbol: SymbolPointer,
			Size:   24,
			Color:  ColorYellow,
		},
	}
}

func newGrassData() StaticData {
	return StaticData{
		ID: uuid.New().String(),
		Appearance: Appearance{
			Symbol: SymbolSprout,
			Size:   24,
			Color:  ColorGreen,
		},
		Plantable: true,
	}
}

func newDynamicData() DynamicData {
	return DynamicData{
		StaticData: StaticData{
			ID: uuid.New().String(),
			Appearance: Appearance{
				Symbol: SymbolHamster,
				Size:   24,
				Color:  ColorBrown,
			},
		},
		Behavior: Idle(),
	}
}

func newHamsterData() DynamicData {
	return DynamicData{
		StaticData: StaticData{
			ID: uuid.New().String(),
			Appearance: Appearance{
				Symbol: SymbolHamster,
				Size:   32,
				Color:  ColorBrown,
			},
		},
		MoveSpeed: 150,
		Behavior:  Idle(),
	}
}

func drawStatic(d *StaticData, c Canvas) {
	d.draw(c)
}

func drawDynamic(d *DynamicData, c Canvas) {
	d.StaticData.draw(c)
}

func holdStill(*DynamicData, Context) {}

func runBehavior(d *DynamicData, ctx Context) {
	d.Position, d.Behavior = d.Behavior.Step(d.Position, ctx.CursorPosition(), d.MoveSpeed, ctx.DeltaTime())
}
