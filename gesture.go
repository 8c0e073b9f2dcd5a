package kinetic

// Gestures maps interaction phases to the property sets they spring toward.
// Each phase has paired enter/exit semantics: entering springs to the phase
// set, exiting springs back to the rest values captured when the gesture was
// bound. Hover and focus use the Gentle preset, tap uses Stiff.
//
// Rapid re-triggering (hover in/out) just spawns a new spring each edge; the
// owner index supersedes the previous one, so motion reverses smoothly from
// wherever the property currently is.
type Gestures struct {
	Hover PropertySet
	Tap   PropertySet
	Focus PropertySet
}

// Gesture binds the gesture map to a target's interaction surface. One
// listener is subscribed per phase edge; the returned detach function
// removes every subscription it added, leaving no orphaned handlers.
func (e *Engine) Gesture(target GestureTarget, g Gestures) (detach func()) {
	var removes []func()

	bind := func(enter, exit EventType, props PropertySet, cfg SpringConfig) {
		if len(props) == 0 {
			return
		}
		rest := restValues(target, props)
		removes = append(removes,
			target.OnEvent(enter, func() {
				e.Spring(target, props, &SpringOptions{Config: cfg})
			}),
			target.OnEvent(exit, func() {
				e.Spring(target, rest, &SpringOptions{Config: cfg})
			}),
		)
	}

	bind(EventPointerEnter, EventPointerLeave, g.Hover, Gentle)
	bind(EventPressStart, EventPressEnd, g.Tap, Stiff)
	bind(EventFocus, EventBlur, g.Focus, Gentle)

	return func() {
		for _, remove := range removes {
			remove()
		}
		removes = nil
	}
}

// restValues snapshots the target's computed values for every property in
// props, so exit edges can spring back to the pre-gesture state. The
// transform property stays an opaque string; everything else parses to a
// number (malformed values degrade to 0).
func restValues(target Target, props PropertySet) PropertySet {
	rest := make(PropertySet, len(props))
	for name := range props {
		computed := target.Computed(name)
		if name == TransformProperty {
			if computed == "" {
				computed = "none"
			}
			rest[name] = Str(computed)
			continue
		}
		rest[name] = Num(parseValue(computed))
	}
	return rest
}
