package kinetic

import "time"

// StaggerOptions adjusts a staggered group start.
type StaggerOptions struct {
	// Delay is the per-child start increment: child i starts after i*Delay
	// of wall-clock time. Defaults to 50ms.
	Delay  time.Duration
	Config SpringConfig
	Force  bool
}

// Stagger starts one spring transition per child with incrementally delayed
// starts and returns a combined signal that resolves only once every child's
// transition has resolved. Children are independent tasks; cancel them via
// their own signals if needed — the group signal itself is observation-only.
//
// Selection happens at the caller's boundary: pass the resolved child
// targets rather than a parent-plus-selector pair.
func (e *Engine) Stagger(children []Target, props PropertySet, opts *StaggerOptions) *Signal {
	var o StaggerOptions
	if opts != nil {
		o = *opts
	}
	if o.Delay <= 0 {
		o.Delay = 50 * time.Millisecond
	}
	if len(children) == 0 {
		return resolvedSignal(OutcomeFinished)
	}

	group := newSignal()
	remaining := len(children)
	for i, child := range children {
		sig := e.Spring(child, props, &SpringOptions{
			Config: o.Config,
			Delay:  time.Duration(i) * o.Delay,
			Force:  o.Force,
		})
		sig.subscribe(func(Outcome) {
			remaining--
			if remaining == 0 {
				group.resolve(OutcomeFinished)
			}
		})
	}
	return group
}
