package kinetic

import (
	"testing"
	"time"
)

func TestLayoutInvertsGeometryChangeImmediately(t *testing.T) {
	e, _, _ := newTestEngine()
	node := NewStyleNode("card")
	node.SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	sig := e.Layout(node, func() {
		node.SetBounds(Rect{X: 100, Y: 50, Width: 200, Height: 100})
	})

	// The inverse transform is applied and flushed before Layout returns,
	// so the target still renders where it used to be.
	want := "translate(-100px, -50px) scale(0.5, 1)"
	if got := node.Computed(TransformProperty); got != want {
		t.Fatalf("transform = %q, want %q", got, want)
	}
	if node.Flushes() != 1 {
		t.Errorf("flushes = %d, want 1", node.Flushes())
	}
	if sig.Resolved() {
		t.Fatal("layout transition should still be animating")
	}
}

func TestLayoutSpringsBackToIdentity(t *testing.T) {
	e, src, clock := newTestEngine()
	node := NewStyleNode("card")
	node.SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	sig := e.Layout(node, func() {
		node.SetBounds(Rect{X: 40, Y: 0, Width: 100, Height: 100})
	})

	runFrames(src, clock, 600)
	if !sig.Resolved() || sig.Outcome() != OutcomeFinished {
		t.Fatalf("outcome = resolved:%v %v, want finished", sig.Resolved(), sig.Outcome())
	}
	if got := node.Computed(TransformProperty); got != "none" {
		t.Errorf("transform = %q at identity, want \"none\"", got)
	}
}

func TestLayoutWithNoGeometryChangeResolvesImmediately(t *testing.T) {
	e, src, _ := newTestEngine()
	node := NewStyleNode("card")
	node.SetBounds(Rect{X: 10, Y: 10, Width: 50, Height: 50})

	sig := e.Layout(node, func() {})
	if !sig.Resolved() || sig.Outcome() != OutcomeFinished {
		t.Fatal("unchanged geometry should resolve immediately")
	}
	if got := node.Computed(TransformProperty); got != "" {
		t.Errorf("transform = %q, want no write at all", got)
	}
	if src.Pending() {
		t.Error("no frames should be requested")
	}
}

func TestLayoutSupersedesPriorLayoutOnSameTarget(t *testing.T) {
	e, src, clock := newTestEngine()
	node := NewStyleNode("card")
	node.SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	first := e.Layout(node, func() {
		node.SetBounds(Rect{X: 60, Y: 0, Width: 100, Height: 100})
	})
	runFrames(src, clock, 3)

	second := e.Layout(node, func() {
		node.SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	})
	if !first.Resolved() || first.Outcome() != OutcomeSuperseded {
		t.Fatalf("first = resolved:%v %v, want superseded", first.Resolved(), first.Outcome())
	}
	if e.Active() != 1 {
		t.Fatalf("active tasks = %d, want 1", e.Active())
	}

	runFrames(src, clock, 600)
	if !second.Resolved() {
		t.Fatal("second layout transition should complete")
	}
	if got := node.Computed(TransformProperty); got != "none" {
		t.Errorf("transform = %q, want \"none\"", got)
	}
}

func TestLayoutReducedMotionSkipsCompensation(t *testing.T) {
	src := NewManualSource()
	clock := &testClock{now: time.Unix(1000, 0)}
	e := NewEngine(Config{
		Source:        src,
		Now:           clock.Now,
		ReducedMotion: func() bool { return true },
	})
	node := NewStyleNode("card")
	node.SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	sig := e.Layout(node, func() {
		node.SetBounds(Rect{X: 80, Y: 0, Width: 100, Height: 100})
	})
	if !sig.Resolved() {
		t.Fatal("reduced motion layout should resolve synchronously")
	}
	if got := node.Computed(TransformProperty); got != "none" {
		t.Errorf("transform = %q, want \"none\"", got)
	}
	if src.Pending() {
		t.Error("no frames should be requested")
	}
}

func TestSizeRatioGuardsDegenerateDimensions(t *testing.T) {
	if got := sizeRatio(0, 100); got != 1 {
		t.Errorf("sizeRatio(0, 100) = %f, want 1", got)
	}
	if got := sizeRatio(100, 0); got != 1 {
		t.Errorf("sizeRatio(100, 0) = %f, want 1", got)
	}
	if got := sizeRatio(50, 200); got != 0.25 {
		t.Errorf("sizeRatio(50, 200) = %f, want 0.25", got)
	}
}
