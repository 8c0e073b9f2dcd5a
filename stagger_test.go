package kinetic

import (
	"testing"
	"time"
)

func staggerChildren(n int) []Target {
	children := make([]Target, n)
	for i := range children {
		node := NewStyleNode("item")
		node.SetComputed("x", "0px")
		children[i] = node
	}
	return children
}

func TestStaggerChildrenStartAfterTheirDelays(t *testing.T) {
	e, src, clock := newTestEngine()
	start := clock.now
	children := staggerChildren(3)

	e.Stagger(children, PropertySet{"x": Num(100)}, &StaggerOptions{
		Delay:  50 * time.Millisecond,
		Config: Snappy,
	})

	// Step frames and verify no child moves before its own delay.
	for frame := 0; frame < 20; frame++ {
		elapsed := clock.now.Sub(start)
		for i, c := range children {
			delay := time.Duration(i) * 50 * time.Millisecond
			if elapsed < delay && c.Computed("x") != "0px" {
				t.Fatalf("child %d moved at %v, before its %v delay", i, elapsed, delay)
			}
		}
		if !src.Step(clock.now) {
			t.Fatalf("loop stopped early at frame %d", frame)
		}
		clock.Advance(frameInterval)
	}

	// Well past every delay, all three are in flight.
	for i, c := range children {
		if c.Computed("x") == "0px" {
			t.Errorf("child %d never started", i)
		}
	}
}

func TestStaggerGroupResolvesAfterLastChild(t *testing.T) {
	e, src, clock := newTestEngine()
	children := staggerChildren(3)

	group := e.Stagger(children, PropertySet{"x": Num(100)}, &StaggerOptions{
		Delay:  50 * time.Millisecond,
		Config: Snappy,
	})

	// While the last child is still at rest, the group cannot have resolved.
	runFrames(src, clock, 2)
	if group.Resolved() {
		t.Fatal("group resolved before the last child even started")
	}

	runFrames(src, clock, 2000)
	if !group.Resolved() {
		t.Fatal("group should resolve once every child resolves")
	}
	for i, c := range children {
		if got := c.Computed("x"); got != "100px" {
			t.Errorf("child %d x = %q, want \"100px\"", i, got)
		}
	}
}

func TestStaggerReducedMotionResolvesSynchronously(t *testing.T) {
	src := NewManualSource()
	clock := &testClock{now: time.Unix(1000, 0)}
	e := NewEngine(Config{
		Source:        src,
		Now:           clock.Now,
		ReducedMotion: func() bool { return true },
	})
	children := staggerChildren(3)

	group := e.Stagger(children, PropertySet{"x": Num(100)}, nil)
	if !group.Resolved() {
		t.Fatal("group should resolve before the call returns")
	}
	for i, c := range children {
		if got := c.Computed("x"); got != "100px" {
			t.Errorf("child %d x = %q, want \"100px\"", i, got)
		}
	}
}

func TestStaggerNoChildrenResolvesImmediately(t *testing.T) {
	e, _, _ := newTestEngine()
	group := e.Stagger(nil, PropertySet{"x": Num(100)}, nil)
	if !group.Resolved() || group.Outcome() != OutcomeFinished {
		t.Fatal("empty stagger should resolve immediately")
	}
}

func TestSpringDelayOptionDefersStart(t *testing.T) {
	e, src, clock := newTestEngine()
	node := NewStyleNode("box")
	node.SetComputed("x", "0px")

	e.Spring(node, PropertySet{"x": Num(100)}, &SpringOptions{
		Config: Snappy,
		Delay:  100 * time.Millisecond,
	})

	runFrames(src, clock, 3) // ~50ms
	if got := node.Computed("x"); got != "0px" {
		t.Errorf("x = %q during delay, want \"0px\"", got)
	}
	runFrames(src, clock, 600)
	if got := node.Computed("x"); got != "100px" {
		t.Errorf("x = %q, want \"100px\"", got)
	}
}
