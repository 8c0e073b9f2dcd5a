package kinetic

import (
	"math"
	"time"
)

// SpringConfig describes a damped spring. All three parameters must be
// positive; zero fields are filled from the Gentle preset when a transition
// is requested, so callers can override any subset.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Named presets. Hover and focus gestures default to Gentle, taps to Stiff,
// layout transitions to Smooth.
var (
	Gentle = SpringConfig{Stiffness: 120, Damping: 14, Mass: 1}
	Snappy = SpringConfig{Stiffness: 300, Damping: 25, Mass: 0.8}
	Bouncy = SpringConfig{Stiffness: 400, Damping: 12, Mass: 1}
	Stiff  = SpringConfig{Stiffness: 600, Damping: 35, Mass: 1}
	Smooth = SpringConfig{Stiffness: 170, Damping: 26, Mass: 1.2}
)

// withDefaults fills zero fields from the Gentle preset.
func (c SpringConfig) withDefaults() SpringConfig {
	if c.Stiffness == 0 {
		c.Stiffness = Gentle.Stiffness
	}
	if c.Damping == 0 {
		c.Damping = Gentle.Damping
	}
	if c.Mass == 0 {
		c.Mass = Gentle.Mass
	}
	return c
}

// step advances one property by a single fixed time step using semi-implicit
// Euler integration: the spring force pulls toward goal, the damping force
// opposes velocity, and the updated velocity moves the position.
//
// dt is the nominal per-frame interval derived from the configured frame
// rate, not the frame's measured elapsed time. This trades drift under
// variable refresh rates for simple, reproducible motion.
func (c SpringConfig) step(x, v, goal, dt float64) (float64, float64) {
	distance := goal - x
	acceleration := (distance*c.Stiffness - v*c.Damping) / c.Mass
	v += acceleration * dt
	x += v * dt
	return x, v
}

// settled reports whether a property has come to rest: both its velocity and
// its remaining distance to goal are within settleEpsilon.
func settled(x, v, goal float64) bool {
	return math.Abs(v) <= settleEpsilon && math.Abs(goal-x) <= settleEpsilon
}

// SettleTime estimates how long the spring takes to come to rest. The
// estimate only informs callers of an expected completion time; it never
// drives integration. Underdamped springs (damping ratio < 1) settle in
// roughly 4000/sqrt(stiffness) ms, overdamped ones in 6000/stiffness ms.
func (c SpringConfig) SettleTime() time.Duration {
	c = c.withDefaults()
	zeta := c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
	var ms float64
	if zeta < 1 {
		ms = 4000 / math.Sqrt(c.Stiffness)
	} else {
		ms = 6000 / c.Stiffness
	}
	return time.Duration(ms * float64(time.Millisecond))
}
