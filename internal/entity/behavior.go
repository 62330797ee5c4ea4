package entity

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	// ArrivalDistance is how close a mover must be to count as arrived.
	ArrivalDistance = 2.0

	// ConsumeDuration is how long a target is consumed after arrival, in seconds.
	ConsumeDuration = 2.0
)

// State is the behavior state of a dynamic entity.
type State int

const (
	StateIdle State = iota
	StateChasingCursor
	StatePursuingTarget
	StateConsumingTarget
)

var stateNames = map[State]string{
	StateIdle:            "idle",
	StateChasingCursor:   "chasingCursor",
	StatePursuingTarget:  "pursuingTarget",
	StateConsumingTarget: "consumingTarget",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Behavior is a State plus the values the state carries. Target is only
// meaningful while pursuing and Remaining only while consuming.
type Behavior struct {
	State     State
	Target    Vec2
	Remaining float64
}

func Idle() Behavior {
	return Behavior{State: StateIdle}
}

func ChasingCursor() Behavior {
	return Behavior{State: StateChasingCursor}
}

func PursuingTarget(x, y float64) Behavior {
	return Behavior{State: StatePursuingTarget, Target: Vec2{X: x, Y: y}}
}

func ConsumingTarget(remaining float64) Behavior {
	return Behavior{State: StateConsumingTarget, Remaining: remaining}
}

// Step runs one tick of the state machine for an entity at pos moving at
// speed. It returns the new position and the next behavior.
func (b Behavior) Step(pos, cursor Vec2, speed, dt float64) (Vec2, Behavior) {
	switch b.State {
	case StateChasingCursor:
		next, _ := moveToward(pos, cursor, speed*dt)
		return next, b

	case StatePursuingTarget:
		next, dist := moveToward(pos, b.Target, speed*dt)
		if dist <= ArrivalDistance {
			return next, ConsumingTarget(ConsumeDuration)
		}
		return next, b

	case StateConsumingTarget:
		remaining := b.Remaining - dt
		if remaining < 0 {
			return pos, Idle()
		}
		return pos, ConsumingTarget(remaining)

	default:
		return pos, b
	}
}

// moveToward moves pos up to step units toward target without overshooting.
// It holds position once within ArrivalDistance. The returned distance is
// measured before moving.
func moveToward(pos, target Vec2, step float64) (Vec2, float64) {
	delta := target.Sub(pos)
	dist := delta.Len()
	if dist <= ArrivalDistance {
		return pos, dist
	}

	travel := math.Min(step, dist)
	if travel == dist {
		return target, dist
	}
	return pos.Add(delta.Scale(travel / dist)), dist
}

type behaviorJSON struct {
	State     string   `json:"state"`
	Target    *Vec2    `json:"target,omitempty"`
	Remaining *float64 `json:"remaining,omitempty"`
}

func (b Behavior) MarshalJSON() ([]byte, error) {
	name, ok := stateNames[b.State]
	if !ok {
		return nil, fmt.Errorf("unknown behavior state: %d", int(b.State))
	}

	out := behaviorJSON{State: name}
	switch b.State {
	case StatePursuingTarget:
		target := b.Target
		out.Target = &target
	case StateConsumingTarget:
		remaining := b.Remaining
		out.Remaining = &remaining
	}

	return json.Marshal(out)
}

func (b *Behavior) UnmarshalJSON(data []byte) error {
	var in behaviorJSON
	if err := DecodeStrict(data, &in); err != nil {
		return fmt.Errorf("decoding behavior: %w", err)
	}

	var state State
	found := false
	for s, name := range stateNames {
		if name == in.State {
			state, found = s, true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown behavior state: %q", in.State)
	}

	next := Behavior{State: state}
	switch state {
	case StatePursuingTarget:
		if in.Target == nil {
			return fmt.Errorf("%s requires a target", in.State)
		}
		next.Target = *in.Target
	case StateConsumingTarget:
		if in.Remaining == nil {
			return fmt.Errorf("%s requires remaining", in.State)
		}
		next.Remaining = *in.Remaining
	}

	*b = next
	return nil
}
