package kinetic

import (
	"sort"
	"time"

	"github.com/tanema/gween"
)

// taskKind distinguishes the two transition paths. The set is closed.
type taskKind uint8

const (
	kindSpring taskKind = iota
	kindTween
)

// task is one in-flight transition of one target's property set. It is
// created by a transition request, advanced once per frame by the engine,
// and deregistered the frame its completion condition is met.
type task struct {
	target Target
	kind   taskKind

	// keys holds the animated property names in stable (sorted) order.
	// initial, goal, current — and velocity for springs — are keyed
	// identically. Raw string goals are not animated; they are written
	// verbatim on completion.
	keys     []string
	initial  map[string]float64
	goal     map[string]float64
	current  map[string]float64
	velocity map[string]float64
	tweens   map[string]*gween.Tween
	rawGoal  map[string]string

	spring   SpringConfig
	duration float32 // seconds, tween only
	easing   Easing

	start   time.Time
	delay   time.Duration
	started bool
	pinned  bool // current was pre-populated; skip the computed snapshot

	// claims, when non-nil, are registry keys that stand in for the task's
	// derived properties (a layout transition claims the transform property
	// while animating tx/ty/sx/sy). Nil means the animated keys themselves
	// are the claims.
	claims []string

	// apply writes the frame's values through to the target. The final
	// apply snaps every property to its exact goal to eliminate residual
	// floating error.
	apply func(final bool)

	sig *Signal
}

// newTask splits props into animated numeric goals and raw string goals and
// builds the task skeleton. Initial values are snapshotted lazily, once the
// start delay has elapsed.
func newTask(target Target, kind taskKind, props PropertySet) *task {
	t := &task{
		target:  target,
		kind:    kind,
		initial: make(map[string]float64, len(props)),
		goal:    make(map[string]float64, len(props)),
		current: make(map[string]float64, len(props)),
		sig:     newSignal(),
	}
	for name, v := range props {
		if v.IsRaw() {
			if t.rawGoal == nil {
				t.rawGoal = make(map[string]string)
			}
			t.rawGoal[name] = v.Raw
			continue
		}
		t.keys = append(t.keys, name)
		t.goal[name] = v.Number
	}
	sort.Strings(t.keys)
	switch kind {
	case kindSpring:
		t.velocity = make(map[string]float64, len(t.keys))
	case kindTween:
		t.tweens = make(map[string]*gween.Tween, len(t.keys))
	}
	return t
}

// begin snapshots initial values from the target's computed style and arms
// the per-property state. Called on the task's first active frame so that
// delayed transitions (stagger children) start from wherever the target is
// at that moment, not where it was when the request was issued.
func (t *task) begin() {
	t.started = true
	for _, k := range t.keys {
		if !t.pinned {
			t.current[k] = parseValue(t.target.Computed(k))
		}
		t.initial[k] = t.current[k]
		switch t.kind {
		case kindSpring:
			t.velocity[k] = 0
		case kindTween:
			t.tweens[k] = gween.New(float32(t.current[k]), float32(t.goal[k]), t.duration, t.easing)
		}
	}
}

// advance runs one fixed-dt step for every property and reports whether the
// task has completed. A spring completes only when every property is
// settled; a tween completes when its duration elapses.
func (t *task) advance(dt float64) bool {
	switch t.kind {
	case kindSpring:
		all := true
		for _, k := range t.keys {
			x, v := t.spring.step(t.current[k], t.velocity[k], t.goal[k], dt)
			t.current[k] = x
			t.velocity[k] = v
			if !settled(x, v, t.goal[k]) {
				all = false
			}
		}
		return all
	case kindTween:
		all := true
		for _, k := range t.keys {
			val, finished := t.tweens[k].Update(float32(dt))
			t.current[k] = float64(val)
			if !finished {
				all = false
			}
		}
		return all
	}
	return true
}

// disown removes one property from the task after a newer transition claims
// it. Reports whether the task has any animated properties left.
func (t *task) disown(property string) bool {
	for i, k := range t.keys {
		if k != property {
			continue
		}
		copy(t.keys[i:], t.keys[i+1:])
		t.keys = t.keys[:len(t.keys)-1]
		break
	}
	delete(t.initial, property)
	delete(t.goal, property)
	delete(t.current, property)
	delete(t.velocity, property)
	delete(t.tweens, property)
	return len(t.keys) > 0
}

// ownerClaims returns the registry keys this task owns for supersession.
func (t *task) ownerClaims() []string {
	if t.claims != nil {
		return t.claims
	}
	return t.keys
}

// composite reports whether the claims stand in for derived properties
// rather than mapping 1:1 onto the animated keys. Composite tasks are
// superseded wholesale instead of per property.
func (t *task) composite() bool {
	return t.claims != nil
}

// applyValues is the default write-through applier: every animated property
// is formatted and written each frame; the final frame writes exact goals
// plus any raw string goals.
func (t *task) applyValues(final bool) {
	for _, k := range t.keys {
		if final {
			t.target.Apply(k, formatValue(k, t.goal[k]))
			continue
		}
		t.target.Apply(k, formatValue(k, t.current[k]))
	}
	if final {
		for k, raw := range t.rawGoal {
			t.target.Apply(k, raw)
		}
	}
}
