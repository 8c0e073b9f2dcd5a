package kinetic

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameSource adapts an Ebitengine game loop into a FrameSource. Call Tick
// once from your game's Update method:
//
//	type Game struct {
//		engine *kinetic.Engine
//		frames *kinetic.GameSource
//	}
//
//	func (g *Game) Update() error { g.frames.Tick(); return nil }
//
// No callback fires while the window is minimized, so the engine stays
// frozen until the window returns — the same visibility contract a browser
// host gives a hidden tab.
type GameSource struct {
	pending func(time.Time)
}

// NewGameSource creates an empty game source. Pass it as Config.Source (it
// is also the default).
func NewGameSource() *GameSource {
	return &GameSource{}
}

// RequestFrame stores fn as the pending frame callback.
func (s *GameSource) RequestFrame(fn func(now time.Time)) {
	s.pending = fn
}

// Tick fires the pending frame callback, if any. Call once per game Update.
func (s *GameSource) Tick() {
	if ebiten.IsWindowMinimized() {
		return
	}
	fn := s.pending
	if fn == nil {
		return
	}
	s.pending = nil
	fn(time.Now())
}

// DisplayRate returns the host's ticks per second, for Config.FrameRate.
func DisplayRate() int {
	return ebiten.TPS()
}
