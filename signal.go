package kinetic

// Signal is a single-resolution completion handle returned by every
// transition request. It resolves exactly once — when the transition
// finishes, is superseded, or is canceled — and never un-resolves.
//
// Done is safe to receive on from any goroutine; the remaining methods share
// the engine's single-threaded contract.
type Signal struct {
	done     chan struct{}
	outcome  Outcome
	resolved bool

	// canceled is the cancellation token. It is checked at the top of the
	// owning task's per-frame update.
	canceled bool

	// onResolve is an internal single listener used by stagger groups.
	onResolve func(Outcome)
}

func newSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// resolvedSignal returns a signal that is already resolved, for requests
// that complete synchronously (reduced motion, empty property sets).
func resolvedSignal(o Outcome) *Signal {
	s := newSignal()
	s.resolve(o)
	return s
}

// Done returns a channel that is closed when the signal resolves.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Resolved reports whether the signal has resolved.
func (s *Signal) Resolved() bool {
	return s.resolved
}

// Outcome returns how the signal resolved. Only meaningful once Resolved
// reports true (or Done is closed).
func (s *Signal) Outcome() Outcome {
	return s.outcome
}

// Cancel requests cancellation of the owning transition. The task is dropped
// at the top of its next per-frame update, freezing the target at its
// last-written values, and the signal resolves with OutcomeCanceled.
// Canceling an already-resolved signal is a no-op.
func (s *Signal) Cancel() {
	if s.resolved {
		return
	}
	s.canceled = true
}

// resolve fulfills the signal. Resolving twice is a no-op, so a task updated
// on a frame after its settle condition was already true cannot re-resolve.
func (s *Signal) resolve(o Outcome) {
	if s.resolved {
		return
	}
	s.resolved = true
	s.outcome = o
	close(s.done)
	if s.onResolve != nil {
		s.onResolve(o)
	}
}

// subscribe registers the internal resolution listener, invoking it
// immediately if the signal already resolved (e.g. a reduced-motion child
// inside a stagger group).
func (s *Signal) subscribe(fn func(Outcome)) {
	if s.resolved {
		fn(s.outcome)
		return
	}
	s.onResolve = fn
}
