package kinetic

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Easing is a timing curve in the gween/ease shape: given elapsed time t,
// start value b, total change c, and duration d, it returns the eased value.
// Any ease.TweenFunc works; Ease applies one on normalized progress.
type Easing = ease.TweenFunc

// Ease evaluates fn at normalized progress p in [0, 1] and returns the eased
// progress. Overshoot curves such as bounce may transiently leave [0, 1];
// inputs outside [0, 1] are not supported and must be clamped by the caller
// (the scheduler clamps before invoking).
func Ease(fn Easing, p float64) float64 {
	return float64(fn(float32(p), 0, 1, 1))
}

// easings is the fixed catalog of named timing curves.
var easings = map[string]Easing{
	"linear":         ease.Linear,
	"easeIn":         ease.InQuad,
	"easeOut":        ease.OutQuad,
	"easeInOut":      ease.InOutQuad,
	"easeInCubic":    ease.InCubic,
	"easeOutCubic":   ease.OutCubic,
	"easeInOutCubic": ease.InOutCubic,
	"easeInQuart":    ease.InQuart,
	"easeOutQuart":   ease.OutQuart,
	"easeInOutQuart": ease.InOutQuart,
	"easeInExpo":     ease.InExpo,
	"easeOutExpo":    ease.OutExpo,
	"bounce":         ease.OutBounce,
}

// EasingByName resolves a catalog name to its timing curve. Unknown names are
// a caller error and are rejected here, at the request boundary, rather than
// inside the frame loop.
func EasingByName(name string) (Easing, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("kinetic: unknown easing %q", name)
	}
	return fn, nil
}

// EasingNames returns the catalog names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
