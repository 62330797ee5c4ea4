package entity

import (
	"fmt"
)

// StaticEntity is a static payload together with its kind tag.
type StaticEntity struct {
	Kind StaticKind
	Data StaticData
}

// NewStatic spawns a static entity with the default payload of kind.
func NewStatic(kind StaticKind) (*StaticEntity, error) {
	spec, ok := LookupStatic(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityKind, kind)
	}
	return &StaticEntity{Kind: kind, Data: spec.New()}, nil
}

func (e *StaticEntity) spec() StaticKindSpec {
	if spec, ok := LookupStatic(e.Kind); ok {
		return spec
	}
	return staticKinds[StaticKindBase]
}

// Draw renders the entity with the draw behavior registered for its kind.
func (e *StaticEntity) Draw(c Canvas) {
	e.spec().Draw(&e.Data, c)
}

// DynamicEntity is a dynamic payload together with its kind tag.
type DynamicEntity struct {
	Kind DynamicKind
	Data DynamicData
}

// NewDynamic spawns a dynamic entity with the default payload of kind.
func NewDynamic(kind DynamicKind) (*DynamicEntity, error) {
	spec, ok := LookupDynamic(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityKind, kind)
	}
	return &DynamicEntity{Kind: kind, Data: spec.New()}, nil
}

func (e *DynamicEntity) spec() DynamicKindSpec {
	if spec, ok := LookupDynamic(e.Kind); ok {
		return spec
	}
	return dynamicKinds[DynamicKindBase]
}

// Update runs one tick of the update behavior registered for the entity's kind.
func (e *DynamicEntity) Update(ctx Context) {
	e.spec().Update(&e.Data, ctx)
}

func (e *DynamicEntity) Draw(c Canvas) {
	e.spec().Draw(&e.Data, c)
}

// State returns the current behavior state.
func (e *DynamicEntity) State() State {
	return e.Data.Behavior.State
}

// Chase starts following the cursor.
func (e *DynamicEntity) Chase() {
	e.Data.Behavior = ChasingCursor()
}

// Pursue starts moving toward a fixed point, consuming it on arrival.
func (e *DynamicEntity) Pursue(target Vec2) {
	e.Data.Behavior = PursuingTarget(target.X, target.Y)
}

// Variant names which base kind an Entity holds.
type Variant string

const (
	VariantStatic  Variant = "static"
	VariantDynamic Variant = "dynamic"
)

// Entity holds either a static or a dynamic entity and exposes the accessors
// both share. Exactly one of Static and Dynamic is set.
type Entity struct {
	Static  *StaticEntity
	Dynamic *DynamicEntity
}

func FromStatic(s *StaticEntity) *Entity {
	return &Entity{Static: s}
}

func FromDynamic(d *DynamicEntity) *Entity {
	return &Entity{Dynamic: d}
}

func (e *Entity) Variant() Variant {
	if e.Dynamic != nil {
		return VariantDynamic
	}
	return VariantStatic
}

func (e *Entity) data() *StaticData {
	if e.Dynamic != nil {
		return &e.Dynamic.Data.StaticData
	}
	return &e.Static.Data
}

// Tag returns the kind tag of whichever variant is held.
func (e *Entity) Tag() string {
	if e.Dynamic != nil {
		return string(e.Dynamic.Kind)
	}
	return string(e.Static.Kind)
}

func (e *Entity) ID() string {
	return e.data().ID
}

func (e *Entity) Symbol() Symbol {
	return e.data().Symbol
}

func (e *Entity) Position() Vec2 {
	return e.data().Position
}

func (e *Entity) SetPosition(p Vec2) {
	e.data().Position = p
}

func (e *Entity) Size() float64 {
	return e.data().Size
}

func (e *Entity) SetSize(size float64) {
	e.data().Size = size
}

// Hover flags the entity for emphasis on the next draw only.
func (e *Entity) Hover() {
	e.data().Interaction = InteractionHovered
}

func (e *Entity) Hovered() bool {
	return e.data().Interaction == InteractionHovered
}

func (e *Entity) Draw(c Canvas) {
	if e.Dynamic != nil {
		e.Dynamic.Draw(c)
		return
	}
	e.Static.Draw(c)
}
