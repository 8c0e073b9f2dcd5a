package kinetic

// Layout runs a FLIP transition: it snapshots the target's geometry, runs
// the caller's mutation (which changes layout through means outside this
// engine), snapshots again, applies the inverse transform so the target
// appears visually unchanged, then springs the transform back to identity.
//
// The inverse transform is written — and flushed, when the target supports
// it — before this function returns, so the compensated frame is never
// visible. The transform property is claimed in the owner index, so
// overlapping layout transitions on the same target supersede each other.
func (e *Engine) Layout(target LayoutTarget, mutate func()) *Signal {
	if e.destroyed {
		return resolvedSignal(OutcomeCanceled)
	}

	before := target.Bounds()
	if mutate != nil {
		mutate()
	}
	after := target.Bounds()

	dx := before.X - after.X
	dy := before.Y - after.Y
	sx := sizeRatio(before.Width, after.Width)
	sy := sizeRatio(before.Height, after.Height)

	if dx == 0 && dy == 0 && sx == 1 && sy == 1 {
		// Geometry did not change; nothing to compensate.
		return resolvedSignal(OutcomeFinished)
	}

	if e.skipMotion(false) {
		target.Apply(TransformProperty, "none")
		return resolvedSignal(OutcomeFinished)
	}

	// Invert: the target renders where it used to be.
	target.Apply(TransformProperty, formatTransform(dx, dy, sx, sy))
	if f, ok := target.(Flusher); ok {
		f.Flush()
	}

	// Play: spring the numeric transform components back to identity,
	// composing one transform string per frame and snapping to "none" at
	// the end.
	t := newTask(target, kindSpring, PropertySet{
		"tx": Num(0),
		"ty": Num(0),
		"sx": Num(1),
		"sy": Num(1),
	})
	t.spring = Smooth
	t.start = e.now()
	t.pinned = true
	t.current["tx"], t.current["ty"] = dx, dy
	t.current["sx"], t.current["sy"] = sx, sy
	t.claims = []string{TransformProperty}
	t.apply = func(final bool) {
		if final {
			target.Apply(TransformProperty, "none")
			return
		}
		target.Apply(TransformProperty, formatTransform(
			t.current["tx"], t.current["ty"],
			t.current["sx"], t.current["sy"],
		))
	}
	e.register(t)
	return t.sig
}

// sizeRatio computes a before/after scale ratio, treating degenerate
// (zero-sized) dimensions as unscaled.
func sizeRatio(before, after float64) float64 {
	if before <= 0 || after <= 0 {
		return 1
	}
	return before / after
}
