package environment

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	goerrors "github.com/pixil98/go-errors"
	"github.com/pixil98/go-hamster/internal/drawer"
	"github.com/pixil98/go-hamster/internal/entity"
)

// Snapshot is the persisted form of an Environment.
type Snapshot struct {
	StaticEntities  []*entity.StaticEntity  `json:"staticEntities"`
	DynamicEntities []*entity.DynamicEntity `json:"dynamicEntities"`
	Cursor          *entity.Entity          `json:"cursor"`
	ItemDrawer      *drawer.Drawer          `json:"itemDrawer"`
	DeltaTime       float64                 `json:"deltaTime"`
}

func (s *Snapshot) Validate() error {
	el := goerrors.NewErrorList()

	for i, e := range s.StaticEntities {
		if e == nil {
			el.Add(fmt.Errorf("staticEntities[%d] is null", i))
		}
	}
	for i, e := range s.DynamicEntities {
		if e == nil {
			el.Add(fmt.Errorf("dynamicEntities[%d] is null", i))
		}
	}
	if s.Cursor == nil {
		el.Add(fmt.Errorf("cursor is required"))
	}
	if s.ItemDrawer == nil {
		el.Add(fmt.Errorf("itemDrawer is required"))
	}

	return el.Err()
}

// Snapshot captures the environment for persistence.
func (env *Environment) Snapshot() *Snapshot {
	statics := env.statics
	if statics == nil {
		statics = []*entity.StaticEntity{}
	}
	dynamics := env.dynamics
	if dynamics == nil {
		dynamics = []*entity.DynamicEntity{}
	}

	return &Snapshot{
		StaticEntities:  statics,
		DynamicEntities: dynamics,
		Cursor:          env.cursor,
		ItemDrawer:      env.drawer,
		DeltaTime:       env.deltaTime,
	}
}

// Save encodes the environment.
func (env *Environment) Save() ([]byte, error) {
	b, err := json.Marshal(env.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("marshalling environment: %w", err)
	}
	return b, nil
}

// Load decodes an environment. Any failure leaves nothing behind; there is
// no partially loaded environment.
func Load(b []byte, opts ...Option) (*Environment, error) {
	var s Snapshot
	if err := entity.DecodeStrict(b, &s); err != nil {
		if errors.Is(err, entity.ErrUnknownEntityKind) || errors.Is(err, entity.ErrMalformedEntityData) {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		return nil, fmt.Errorf("loading environment: %w: %w", entity.ErrMalformedEntityData, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("loading environment: %w: %w", entity.ErrMalformedEntityData, err)
	}

	env := &Environment{
		statics:   s.StaticEntities,
		dynamics:  s.DynamicEntities,
		drawer:    s.ItemDrawer,
		cursor:    s.Cursor,
		deltaTime: s.DeltaTime,
	}
	env.apply(opts)
	return env, nil
}

// LoadOrDefault decodes an environment. Data that cannot be decoded is
// logged and replaced by an empty environment around the given drawer.
func LoadOrDefault(b []byte, empty *drawer.Drawer, opts ...Option) *Environment {
	env, err := Load(b, opts...)
	if err != nil {
		slog.Warn("discarding saved environment", "error", err)
		return New(empty, opts...)
	}
	return env
}
