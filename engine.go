package kinetic

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/tanema/gween/ease"
)

// Config configures an Engine. The zero value is usable: frames come from a
// GameSource, the nominal rate is 60, and reduced motion is off.
type Config struct {
	// Source delivers frame callbacks. Defaults to NewGameSource().
	Source FrameSource

	// FrameRate is the nominal frames per second the fixed integration step
	// is derived from. Defaults to 60. Pass DisplayRate() to match the
	// host's tick rate.
	FrameRate int

	// ReducedMotion reports the host's reduced-motion preference. When it
	// returns true and a request does not set Force, the request applies
	// final values immediately and resolves synchronously.
	ReducedMotion func() bool

	// Now is the clock used for start times and stagger delays.
	// Defaults to time.Now. Tests inject a fake clock here.
	Now func() time.Time

	// Debug enables per-frame stats logging to stderr.
	Debug bool
}

// SpringOptions adjusts a spring transition request.
type SpringOptions struct {
	Config SpringConfig  // zero fields filled from the Gentle preset
	Delay  time.Duration // wall-clock delay before the transition starts
	Force  bool          // animate even when reduced motion is preferred
}

// TweenOptions adjusts a tween transition request.
type TweenOptions struct {
	Duration time.Duration // defaults to 300ms
	Easing   Easing        // defaults to easeOut; resolve names via EasingByName
	Delay    time.Duration
	Force    bool
}

// FrameStats carries per-tick timing diagnostics. Elapsed and Rate are
// measured from real frame-to-frame time; they never feed the fixed
// integration step.
type FrameStats struct {
	Frame   int           // frames processed since construction
	Elapsed time.Duration // since the previous processed frame
	Rate    float64       // instantaneous frames per second
}

// ownerKey identifies one animated property on one target. The registry's
// owner index is keyed by it so that a new transition supersedes any prior
// transition on the same property instead of silently racing it.
type ownerKey struct {
	target   Target
	property string
}

// Engine is the frame-synchronized scheduler. One engine drives every
// transition registered with it from a single frame loop; construct it
// explicitly and inject it into callers (tests construct isolated engines
// with a ManualSource).
//
// The engine is single-threaded by contract: requests and frame callbacks
// must come from the same goroutine. Only Signal.Done crosses goroutines.
type Engine struct {
	source  FrameSource
	dt      float64
	reduced func() bool
	now     func() time.Time
	debug   bool

	tasks  []*task
	owners map[ownerKey]*task

	running   bool // a frame request is pending
	paused    bool
	hidden    bool
	destroyed bool

	lastTick time.Time
	stats    FrameStats
}

// NewEngine creates an engine. See Config for defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.Source == nil {
		cfg.Source = NewGameSource()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = defaultFrameRate
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{
		source:  cfg.Source,
		dt:      1.0 / float64(cfg.FrameRate),
		reduced: cfg.ReducedMotion,
		now:     cfg.Now,
		debug:   cfg.Debug,
		owners:  make(map[ownerKey]*task),
	}
}

// Spring starts a spring-physics transition of props on target and returns
// its completion signal.
func (e *Engine) Spring(target Target, props PropertySet, opts *SpringOptions) *Signal {
	var o SpringOptions
	if opts != nil {
		o = *opts
	}
	if e.destroyed {
		return resolvedSignal(OutcomeCanceled)
	}
	if len(props) == 0 {
		return resolvedSignal(OutcomeFinished)
	}
	if e.skipMotion(o.Force) {
		e.applyImmediate(target, props)
		return resolvedSignal(OutcomeFinished)
	}
	t := newTask(target, kindSpring, props)
	t.spring = o.Config.withDefaults()
	t.delay = o.Delay
	t.start = e.now()
	t.apply = t.applyValues
	e.register(t)
	return t.sig
}

// Tween starts a duration-based transition of props on target and returns
// its completion signal.
func (e *Engine) Tween(target Target, props PropertySet, opts *TweenOptions) *Signal {
	var o TweenOptions
	if opts != nil {
		o = *opts
	}
	if o.Duration <= 0 {
		o.Duration = 300 * time.Millisecond
	}
	if o.Easing == nil {
		o.Easing = ease.OutQuad
	}
	if e.destroyed {
		return resolvedSignal(OutcomeCanceled)
	}
	if len(props) == 0 {
		return resolvedSignal(OutcomeFinished)
	}
	if e.skipMotion(o.Force) {
		e.applyImmediate(target, props)
		return resolvedSignal(OutcomeFinished)
	}
	t := newTask(target, kindTween, props)
	t.duration = float32(o.Duration.Seconds())
	t.easing = o.Easing
	t.delay = o.Delay
	t.start = e.now()
	t.apply = t.applyValues
	e.register(t)
	return t.sig
}

// Pause stops issuing frame requests, freezing every task in place. Tween
// progress accumulates only on processed frames, so a paused tween resumes
// where it left off rather than jumping to completion.
func (e *Engine) Pause() {
	e.paused = true
}

// Resume restarts the loop if any tasks remain.
func (e *Engine) Resume() {
	if !e.paused {
		return
	}
	e.paused = false
	e.lastTick = time.Time{} // keep the paused gap out of the stats
	e.ensureRunning()
}

// SetVisible is the host's visibility hook: hiding pauses the loop so no
// work happens off-screen, showing resumes it.
func (e *Engine) SetVisible(visible bool) {
	if e.hidden == !visible {
		return
	}
	e.hidden = !visible
	if visible {
		e.lastTick = time.Time{}
		e.ensureRunning()
	}
}

// Destroy drops every task and shuts the engine down permanently. All live
// completion signals resolve with OutcomeCanceled so no caller is left
// waiting. Requests on a destroyed engine return pre-canceled signals.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	for _, t := range e.tasks {
		t.sig.resolve(OutcomeCanceled)
	}
	e.tasks = nil
	e.owners = make(map[ownerKey]*task)
}

// Active returns the number of registered tasks.
func (e *Engine) Active() int {
	return len(e.tasks)
}

// Stats returns the latest frame timing diagnostics.
func (e *Engine) Stats() FrameStats {
	return e.stats
}

// SetDebugMode enables or disables per-frame stats logging.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// --- Registration and supersession ---

// register claims the task's properties in the owner index and adds it to
// the registry. A prior owner of any claimed property loses that property;
// once it has none left it resolves with OutcomeSuperseded. Composite tasks
// (whose claims are not per-property, e.g. layout transitions) are
// superseded wholesale.
func (e *Engine) register(t *task) {
	for _, k := range t.ownerClaims() {
		key := ownerKey{t.target, k}
		if prev, ok := e.owners[key]; ok && prev != t {
			if prev.composite() || !prev.disown(k) {
				prev.sig.resolve(OutcomeSuperseded)
				e.remove(prev)
			}
		}
		e.owners[key] = t
	}
	e.tasks = append(e.tasks, t)
	if e.debug {
		e.logf("registered task: %d properties, %d active", len(t.keys), len(e.tasks))
	}
	e.ensureRunning()
}

// remove drops a task from the registry immediately (supersession path;
// completed tasks are compacted during the tick instead).
func (e *Engine) remove(t *task) {
	e.release(t)
	for i, x := range e.tasks {
		if x == t {
			copy(e.tasks[i:], e.tasks[i+1:])
			e.tasks[len(e.tasks)-1] = nil
			e.tasks = e.tasks[:len(e.tasks)-1]
			return
		}
	}
}

// release clears the task's remaining owner-index entries.
func (e *Engine) release(t *task) {
	for _, k := range t.ownerClaims() {
		key := ownerKey{t.target, k}
		if e.owners[key] == t {
			delete(e.owners, key)
		}
	}
}

// --- Frame loop ---

// ensureRunning requests the next frame when there is work and the loop is
// neither paused nor hidden. The loop self-stops: once the registry empties
// no further frames are requested until a new registration arrives.
func (e *Engine) ensureRunning() {
	if e.running || e.paused || e.hidden || e.destroyed || len(e.tasks) == 0 {
		return
	}
	e.running = true
	e.source.RequestFrame(e.tick)
}

// tick advances every registered task once, in registration order, then
// retires completed ones and re-requests a frame if work remains.
func (e *Engine) tick(now time.Time) {
	e.running = false
	if e.destroyed || e.paused || e.hidden {
		return
	}

	// Timing stats are diagnostics only; the integration step stays at the
	// fixed nominal dt regardless of the real elapsed time.
	if !e.lastTick.IsZero() {
		elapsed := now.Sub(e.lastTick)
		e.stats.Elapsed = elapsed
		if elapsed > 0 {
			e.stats.Rate = float64(time.Second) / float64(elapsed)
		}
	}
	e.lastTick = now
	e.stats.Frame++

	total := len(e.tasks)
	keep := e.tasks[:0]
	for _, t := range e.tasks {
		if e.updateTask(t, now) {
			keep = append(keep, t)
		} else {
			e.release(t)
		}
	}
	for i := len(keep); i < total; i++ {
		e.tasks[i] = nil
	}
	e.tasks = keep

	if e.debug {
		e.logf("frame %d: %v elapsed, %.1f fps, %d -> %d tasks",
			e.stats.Frame, e.stats.Elapsed, e.stats.Rate, total, len(e.tasks))
	}

	e.ensureRunning()
}

// updateTask advances one task and reports whether it stays registered.
func (e *Engine) updateTask(t *task, now time.Time) bool {
	if t.sig.resolved {
		return false
	}
	if t.sig.canceled {
		t.sig.resolve(OutcomeCanceled)
		return false
	}
	if d, ok := t.target.(Detacher); ok && d.Detached() {
		t.sig.resolve(OutcomeCanceled)
		return false
	}
	if !t.started {
		if now.Sub(t.start) < t.delay {
			return true
		}
		t.begin()
	}
	finished, ok := e.safeAdvance(t)
	if !ok {
		// Dropped without resolving; the target freezes at its
		// last-written values and the loop carries on.
		return false
	}
	if finished {
		t.sig.resolve(OutcomeFinished)
		return false
	}
	return true
}

// safeAdvance isolates a failing task: a panic in one task's update or
// apply must not abort the loop or the other tasks.
func (e *Engine) safeAdvance(t *task) (finished, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logf("dropping task after update panic: %v", r)
			ok = false
		}
	}()
	finished = t.advance(e.dt)
	t.apply(finished)
	return finished, true
}

// --- Helpers ---

// skipMotion reports whether a request should bypass animation entirely.
func (e *Engine) skipMotion(force bool) bool {
	return !force && e.reduced != nil && e.reduced()
}

// applyImmediate writes final values synchronously (reduced-motion path).
func (e *Engine) applyImmediate(target Target, props PropertySet) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := props[name]
		if v.IsRaw() {
			target.Apply(name, v.Raw)
			continue
		}
		target.Apply(name, formatValue(name, v.Number))
	}
}

func (e *Engine) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[kinetic] "+format+"\n", args...)
}
