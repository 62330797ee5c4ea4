package entity

import (
	"encoding/json"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestBehavior_Step(t *testing.T) {
	tests := map[string]struct {
		behavior Behavior
		pos      Vec2
		cursor   Vec2
		speed    float64
		dt       float64
		expPos   Vec2
		expNext  Behavior
	}{
		"idle does nothing": {
			behavior: Idle(),
			pos:      Vec2{X: 1, Y: 1},
			cursor:   Vec2{X: 100, Y: 100},
			speed:    100,
			dt:       0.1,
			expPos:   Vec2{X: 1, Y: 1},
			expNext:  Idle(),
		},
		"chasing moves toward cursor by speed times dt": {
			behavior: ChasingCursor(),
			pos:      Vec2{X: 0, Y: 0},
			cursor:   Vec2{X: 80, Y: 0},
			speed:    40,
			dt:       0.125,
			expPos:   Vec2{X: 5, Y: 0},
			expNext:  ChasingCursor(),
		},
		"chasing never overshoots": {
			behavior: ChasingCursor(),
			pos:      Vec2{X: 0, Y: 0},
			cursor:   Vec2{X: 3, Y: 4},
			speed:    100,
			dt:       0.1,
			expPos:   Vec2{X: 3, Y: 4},
			expNext:  ChasingCursor(),
		},
		"chasing holds within arrival distance": {
			behavior: ChasingCursor(),
			pos:      Vec2{X: 0, Y: 0},
			cursor:   Vec2{X: 1, Y: 1},
			speed:    100,
			dt:       0.1,
			expPos:   Vec2{X: 0, Y: 0},
			expNext:  ChasingCursor(),
		},
		"pursuing moves without overshoot": {
			behavior: PursuingTarget(3, 4),
			pos:      Vec2{X: 0, Y: 0},
			speed:    100,
			dt:       0.1,
			expPos:   Vec2{X: 3, Y: 4},
			expNext:  PursuingTarget(3, 4),
		},
		"pursuing arrives and starts consuming": {
			behavior: PursuingTarget(10, 10),
			pos:      Vec2{X: 9, Y: 9},
			speed:    100,
			dt:       0.1,
			expPos:   Vec2{X: 9, Y: 9},
			expNext:  ConsumingTarget(ConsumeDuration),
		},
		"pursuing ignores the cursor": {
			behavior: PursuingTarget(0, 10),
			pos:      Vec2{X: 0, Y: 0},
			cursor:   Vec2{X: 50, Y: 0},
			speed:    20,
			dt:       0.25,
			expPos:   Vec2{X: 0, Y: 5},
			expNext:  PursuingTarget(0, 10),
		},
		"consuming counts down": {
			behavior: ConsumingTarget(1.5),
			pos:      Vec2{X: 2, Y: 2},
			dt:       0.5,
			expPos:   Vec2{X: 2, Y: 2},
			expNext:  ConsumingTarget(1.0),
		},
		"consuming reaching exactly zero stays consuming": {
			behavior: ConsumingTarget(0.5),
			dt:       0.5,
			expNext:  ConsumingTarget(0),
		},
		"consuming past zero goes idle": {
			behavior: ConsumingTarget(0.05),
			dt:       0.1,
			expNext:  Idle(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pos, next := tt.behavior.Step(tt.pos, tt.cursor, tt.speed, tt.dt)

			testutil.AssertEqual(t, "position", pos, tt.expPos)
			testutil.AssertEqual(t, "behavior", next, tt.expNext)
		})
	}
}

func TestBehavior_MovementClamp(t *testing.T) {
	target := Vec2{X: 3, Y: 4}

	for _, b := range []Behavior{ChasingCursor(), PursuingTarget(target.X, target.Y)} {
		t.Run(b.State.String(), func(t *testing.T) {
			pos, _ := b.Step(Vec2{}, target, 100, 0.1)
			testutil.AssertEqual(t, "distance to target", target.Sub(pos).Len(), 0.0)
		})
	}
}

func TestBehavior_JSON(t *testing.T) {
	tests := map[string]struct {
		json   string
		exp    Behavior
		expErr string
	}{
		"idle": {
			json: `{"state":"idle"}`,
			exp:  Idle(),
		},
		"chasing": {
			json: `{"state":"chasingCursor"}`,
			exp:  ChasingCursor(),
		},
		"pursuing": {
			json: `{"state":"pursuingTarget","target":{"x":10,"y":12}}`,
			exp:  PursuingTarget(10, 12),
		},
		"consuming": {
			json: `{"state":"consumingTarget","remaining":1.5}`,
			exp:  ConsumingTarget(1.5),
		},
		"pursuing without target": {
			json:   `{"state":"pursuingTarget"}`,
			expErr: "requires a target",
		},
		"consuming without remaining": {
			json:   `{"state":"consumingTarget"}`,
			expErr: "requires remaining",
		},
		"unknown state": {
			json:   `{"state":"napping"}`,
			expErr: "unknown behavior state",
		},
		"unknown field": {
			json:   `{"state":"idle","mood":"sleepy"}`,
			expErr: "decoding behavior",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var b Behavior
			err := json.Unmarshal([]byte(tt.json), &b)

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "behavior", b, tt.exp)

			out, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "json", string(out), tt.json)
		})
	}
}

func TestBehavior_UnmarshalJSON_TrailingData(t *testing.T) {
	var b Behavior
	err := b.UnmarshalJSON([]byte(`{"state":"idle"} {"state":"napping"}`))
	testutil.AssertErrorContains(t, err, "unexpected data after JSON value")
	testutil.AssertEqual(t, "behavior", b, Behavior{})
}
