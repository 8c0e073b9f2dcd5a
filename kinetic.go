package kinetic

// TransformProperty is the property name treated as an opaque 2-D transform
// string. It is never parsed numerically; layout transitions write composed
// transform values through it and snap to "none" at identity.
const TransformProperty = "transform"

// settleEpsilon is the threshold below which a spring property's velocity and
// remaining distance are both considered zero.
const settleEpsilon = 0.01

// defaultFrameRate is the nominal frame rate used when Config.FrameRate is 0.
const defaultFrameRate = 60

// Value is a single property value: either a number with an implied unit, or
// a raw string passed through untouched (e.g. a transform keyword).
type Value struct {
	Number float64
	Raw    string
	isRaw  bool
}

// Num returns a numeric Value. The unit is implied by the property name:
// opacity and scale are unitless, everything else is pixels.
func Num(v float64) Value {
	return Value{Number: v}
}

// Str returns a raw string Value. Raw values are not animated; they are
// written verbatim when the owning transition completes.
func Str(s string) Value {
	return Value{Raw: s, isRaw: true}
}

// IsRaw reports whether the value is an opaque string.
func (v Value) IsRaw() bool {
	return v.isRaw
}

// PropertySet maps property names to desired values. Keys are caller-defined;
// the engine is property-agnostic apart from the unit rules on Num and the
// transform special case.
type PropertySet map[string]Value

// Rect is an axis-aligned rectangle in host coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
// Used as the geometry snapshot for layout transitions.
type Rect struct {
	X, Y, Width, Height float64
}

// Outcome describes how a completion signal was resolved.
type Outcome uint8

const (
	OutcomeFinished   Outcome = iota // transition ran to completion
	OutcomeCanceled                  // canceled via Signal.Cancel, Engine.Destroy, or a detached target
	OutcomeSuperseded                // every property was claimed by a newer transition
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeFinished:
		return "finished"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeSuperseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// EventType identifies an interaction phase edge delivered by a Surface.
// Each gesture phase has a paired enter/exit edge.
type EventType uint8

const (
	EventPointerEnter EventType = iota // pointer moved over the target (hover enter)
	EventPointerLeave                  // pointer left the target (hover exit)
	EventPressStart                    // press began on the target (tap enter)
	EventPressEnd                      // press released (tap exit)
	EventFocus                         // target gained focus
	EventBlur                          // target lost focus
)

// Target is an opaque handle to a visual node. The engine only ever reads a
// computed value for a named property and writes a presentation value back;
// layout, children, and rendering stay on the host's side of the boundary.
// Both operations must be O(1) and side-effect-free beyond the visual update.
//
// Targets are used as registry keys and must be comparable (pointer
// implementations are).
type Target interface {
	// Computed returns the current computed value for the named property,
	// or "" if the property is unset.
	Computed(property string) string
	// Apply writes a presentation value for the named property.
	Apply(property string, value string)
}

// Surface delivers interaction phase edges for a target. OnEvent subscribes
// fn to an edge and returns a remove function that unregisters exactly that
// subscription.
type Surface interface {
	OnEvent(event EventType, fn func()) (remove func())
}

// GestureTarget is a Target whose host also exposes interaction events.
type GestureTarget interface {
	Target
	Surface
}

// LayoutTarget is a Target whose host can report its current geometry.
// Required by layout transitions.
type LayoutTarget interface {
	Target
	Bounds() Rect
}

// Flusher is implemented by targets that can force a synchronous style
// flush. Layout transitions call it between applying the inverse transform
// and starting the spring, so the compensated frame is never visible.
type Flusher interface {
	Flush()
}

// Detacher is implemented by targets that can report removal from their
// host tree. A task whose target reports detachment is dropped and its
// signal resolves with OutcomeCanceled.
type Detacher interface {
	Detached() bool
}
