package environment

import (
	"fmt"

	"github.com/pixil98/go-hamster/internal/drawer"
	"github.com/pixil98/go-hamster/internal/entity"
)

// Seed describes the environment created on a first launch.
type Seed struct {
	Rows     int
	Cols     int
	Anchor   entity.Vec2
	FontSize float64

	// Grass is how many sprouts start in the drawer
	Grass int

	// HamsterAt is where the hamster is spawned
	HamsterAt entity.Vec2
}

func DefaultSeed() Seed {
	return Seed{
		Rows:      1,
		Cols:      5,
		Anchor:    entity.Vec2{X: 16, Y: 16},
		FontSize:  32,
		Grass:     3,
		HamsterAt: entity.Vec2{X: 320, Y: 240},
	}
}

// EmptyDrawer builds the drawer described by the seed with nothing in it.
func (s Seed) EmptyDrawer() *drawer.Drawer {
	return drawer.New(s.Rows, s.Cols, s.Anchor, s.FontSize)
}

// NewSeeded creates the first-launch environment: a hamster chasing the
// cursor and a drawer holding some grass.
func NewSeeded(s Seed, opts ...Option) (*Environment, error) {
	env := New(s.EmptyDrawer(), opts...)

	hamster, err := entity.NewDynamic(entity.DynamicKindHamster)
	if err != nil {
		return nil, fmt.Errorf("spawning hamster: %w", err)
	}
	hamster.Data.Position = s.HamsterAt
	hamster.Chase()
	env.AddDynamic(hamster)

	for i := 0; i < s.Grass; i++ {
		grass, err := entity.NewStatic(entity.StaticKindGrass)
		if err != nil {
			return nil, fmt.Errorf("spawning grass: %w", err)
		}
		if !env.Store(entity.FromStatic(grass)) {
			break
		}
	}

	return env, nil
}
