package environment

import (
	"log/slog"

	"github.com/pixil98/go-hamster/internal/drawer"
	"github.com/pixil98/go-hamster/internal/entity"
)

// ClickResult reports how a click was routed.
type ClickResult int

const (
	ClickUnhandled ClickResult = iota
	ClickPickedUp
	ClickStored
	ClickHandled
)

func (r ClickResult) String() string {
	switch r {
	case ClickPickedUp:
		return "picked up"
	case ClickStored:
		return "stored"
	case ClickHandled:
		return "handled"
	default:
		return "unhandled"
	}
}

// ClickHandler gets clicks that miss the drawer. It returns true when it
// consumed the click. World intersection and placement plug in here.
type ClickHandler func(env *Environment, at entity.Vec2) bool

type Option func(*Environment)

// WithClickHandler appends a handler to the click fallthrough chain.
func WithClickHandler(h ClickHandler) Option {
	return func(env *Environment) {
		env.clickHandlers = append(env.clickHandlers, h)
	}
}

// Environment owns every live entity: the world lists, the drawer and the
// cursor. An entity is owned by exactly one of them at a time.
type Environment struct {
	statics  []*entity.StaticEntity
	dynamics []*entity.DynamicEntity
	drawer   *drawer.Drawer
	cursor   *entity.Entity

	deltaTime     float64
	clickHandlers []ClickHandler
}

// New creates an environment with an empty world, the given drawer and the
// default pointer as cursor.
func New(d *drawer.Drawer, opts ...Option) *Environment {
	env := &Environment{
		drawer: d,
		cursor: newPointer(),
	}
	env.apply(opts)
	return env
}

func (env *Environment) apply(opts []Option) {
	for _, opt := range opts {
		opt(env)
	}
}

func newPointer() *entity.Entity {
	// The base static kind is always registered.
	s, _ := entity.NewStatic(entity.StaticKindBase)
	return entity.FromStatic(s)
}

func isPointer(e *entity.Entity) bool {
	return e.Static != nil && e.Static.Kind == entity.StaticKindBase && e.Symbol() == entity.SymbolPointer
}

func (env *Environment) Statics() []*entity.StaticEntity {
	return env.statics
}

func (env *Environment) Dynamics() []*entity.DynamicEntity {
	return env.dynamics
}

func (env *Environment) Drawer() *drawer.Drawer {
	return env.drawer
}

func (env *Environment) Cursor() *entity.Entity {
	return env.cursor
}

// AddStatic puts a static entity into the world.
func (env *Environment) AddStatic(e *entity.StaticEntity) {
	env.statics = append(env.statics, e)
}

// AddDynamic puts a dynamic entity into the world.
func (env *Environment) AddDynamic(e *entity.DynamicEntity) {
	env.dynamics = append(env.dynamics, e)
}

// Store moves e into the first free drawer cell. A full drawer drops the item
// and reports false.
func (env *Environment) Store(e *entity.Entity) bool {
	if _, _, err := env.drawer.Add(e); err != nil {
		slog.Warn("dropping item", "kind", e.Tag(), "id", e.ID(), "error", err)
		return false
	}
	return true
}

// Holding reports whether the cursor carries an item rather than the pointer.
func (env *Environment) Holding() bool {
	return !isPointer(env.cursor)
}

// MoveCursor sets the cursor position from the input source.
func (env *Environment) MoveCursor(p entity.Vec2) {
	env.cursor.SetPosition(p)
}

// CursorPosition satisfies entity.Context
func (env *Environment) CursorPosition() entity.Vec2 {
	return env.cursor.Position()
}

// DeltaTime satisfies entity.Context
func (env *Environment) DeltaTime() float64 {
	return env.deltaTime
}

// Animate advances every dynamic entity by dt seconds and flags the drawer
// item under the cursor for emphasis on the next draw.
func (env *Environment) Animate(dt float64) {
	env.deltaTime = dt

	for _, d := range env.dynamics {
		d.Update(env)
	}

	if hovered := env.drawer.Hit(env.CursorPosition()); hovered != nil {
		hovered.Hover()
	}
}

// ProcessClick routes a click. The drawer is tested first: an occupied cell
// is picked up onto the cursor, and an empty cell takes a held item. Clicks
// outside the drawer go through the handler chain.
func (env *Environment) ProcessClick(at entity.Vec2) ClickResult {
	if row, col, ok := env.drawer.CellAt(at); ok {
		if result, done := env.clickDrawer(row, col, at); done {
			return result
		}
	}

	for _, h := range env.clickHandlers {
		if h(env, at) {
			return ClickHandled
		}
	}
	return ClickUnhandled
}

func (env *Environment) clickDrawer(row, col int, at entity.Vec2) (ClickResult, bool) {
	item, err := env.drawer.Take(row, col)
	if err != nil {
		slog.Error("taking from drawer", "row", row, "col", col, "error", err)
		return ClickUnhandled, false
	}

	held := env.cursor
	holding := env.Holding()

	if item == nil {
		if !holding {
			return ClickUnhandled, false
		}
		if err := env.drawer.Place(row, col, held); err != nil {
			slog.Error("storing held item", "row", row, "col", col, "error", err)
			return ClickUnhandled, false
		}
		env.cursor = newPointer()
		env.cursor.SetPosition(at)
		return ClickStored, true
	}

	// The item leaves the drawer before the cursor takes it. A held item
	// swaps into the freed cell.
	env.cursor = item
	item.SetPosition(at)
	if holding {
		if err := env.drawer.Place(row, col, held); err != nil {
			slog.Error("swapping held item", "row", row, "col", col, "error", err)
		}
	}
	return ClickPickedUp, true
}

// Draw renders the world statics, the world dynamics, the drawer and the
// cursor, in that order.
func (env *Environment) Draw(c entity.Canvas) {
	for _, s := range env.statics {
		s.Draw(c)
	}
	for _, d := range env.dynamics {
		d.Draw(c)
	}
	env.drawer.Draw(c)
	env.cursor.Draw(c)
}
