// Package kinetic is a frame-synchronized motion engine: it concurrently
// animates numeric and visual properties of multiple targets using spring
// physics or time-based easing, with gesture triggers, staggered group
// starts, and FLIP layout transitions.
//
// Kinetic mutates a target's presentation values only — rendering stays on
// the host's side of the [Target] boundary.
//
// # Quick start
//
// Construct an [Engine] with a frame source and request transitions on any
// [Target]:
//
//	frames := kinetic.NewGameSource()
//	engine := kinetic.NewEngine(kinetic.Config{Source: frames})
//
//	sig := engine.Spring(node, kinetic.PropertySet{
//		"x":       kinetic.Num(240),
//		"opacity": kinetic.Num(1),
//	}, &kinetic.SpringOptions{Config: kinetic.Snappy})
//
// Drive it from your game's Update method:
//
//	func (g *Game) Update() error { g.frames.Tick(); return nil }
//
// The engine advances every registered transition once per frame and stops
// requesting frames when none remain; a new request restarts the loop.
// The returned [Signal] resolves exactly once, when the transition settles
// (or is canceled or superseded):
//
//	<-sig.Done()
//
// # Springs and tweens
//
// Springs integrate a damped-spring force law at a fixed nominal time step
// and complete when every property settles; [SpringConfig] presets (Gentle,
// Snappy, Bouncy, Stiff, Smooth) cover the common feels. Tweens interpolate
// over a fixed duration through an easing curve; [EasingByName] resolves
// the named catalog (backed by [gween/ease]).
//
// # Gestures, staggers, layout
//
// [Engine.Gesture] binds hover/tap/focus property sets to a target's
// interaction surface; [Engine.Stagger] starts one spring per child with
// incremental delays; [Engine.Layout] animates a layout change with a
// First-Last-Invert-Play compensating transform.
//
// # Concurrency
//
// The engine is single-threaded and cooperative: all state is touched from
// the frame-callback context, and requests must come from that same
// goroutine. Only [Signal.Done] is safe to use across goroutines.
//
// [gween/ease]: https://github.com/tanema/gween
package kinetic
