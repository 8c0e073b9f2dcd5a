package kinetic

import "time"

// FrameSource delivers display-synchronized frame callbacks. RequestFrame
// schedules fn to run once, on the next frame; the engine re-requests after
// every processed frame while work remains. A source must never fire while
// the host is not visible.
type FrameSource interface {
	RequestFrame(fn func(now time.Time))
}

// ManualSource is a FrameSource stepped explicitly. Tests and headless
// hosts use it to drive an engine frame by frame with a synthetic clock.
type ManualSource struct {
	pending func(time.Time)
}

// NewManualSource creates an empty manual source.
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// RequestFrame stores fn as the pending frame callback.
func (s *ManualSource) RequestFrame(fn func(now time.Time)) {
	s.pending = fn
}

// Pending reports whether a frame request is outstanding. Once an engine's
// registry empties this stays false until a new transition is requested.
func (s *ManualSource) Pending() bool {
	return s.pending != nil
}

// Step fires the pending frame callback with the given time and reports
// whether one ran.
func (s *ManualSource) Step(now time.Time) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(now)
	return true
}

// Run steps frames at a fixed interval starting at start until no request
// is pending or max frames have run. Returns the number of frames run and
// the clock time after the last one.
func (s *ManualSource) Run(start time.Time, interval time.Duration, max int) (int, time.Time) {
	now := start
	for i := 0; i < max; i++ {
		if !s.Step(now) {
			return i, now
		}
		now = now.Add(interval)
	}
	return max, now
}
