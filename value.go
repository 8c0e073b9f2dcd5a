package kinetic

import (
	"strconv"
	"strings"
)

// parseValue extracts the numeric part of a computed property value.
// Handles plain numbers ("0.5"), pixel lengths ("12px", "-3.5px"), and
// percentages ("40%"). Anything that does not begin with a number — including
// "" and keywords like "none" — parses to 0: visual continuity is preferred
// over aborting a transition on malformed input.
func parseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	end := numericPrefix(s)
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// numericPrefix returns the length of the leading float literal in s
// (sign, digits, one decimal point). Exponents are not part of any CSS-like
// unit grammar and are not recognized.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	dot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits++
			i++
			continue
		}
		if c == '.' && !dot {
			dot = true
			i++
			continue
		}
		break
	}
	if digits == 0 {
		return 0
	}
	return i
}

// isUnitless reports whether the property carries no unit. Opacity and scale
// are plain numbers; every other numeric property is assumed to be pixels.
func isUnitless(property string) bool {
	return property == "opacity" || property == "scale"
}

// formatValue renders a numeric property value for a presentation write.
// Decimal notation only: parseValue does not recognize exponents, so every
// written value must round-trip through it.
func formatValue(property string, v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if isUnitless(property) {
		return s
	}
	return s + "px"
}

// formatTransform composes a translate+scale transform string, or "none"
// at identity.
func formatTransform(tx, ty, sx, sy float64) string {
	if tx == 0 && ty == 0 && sx == 1 && sy == 1 {
		return "none"
	}
	var b strings.Builder
	b.WriteString("translate(")
	b.WriteString(strconv.FormatFloat(tx, 'f', -1, 64))
	b.WriteString("px, ")
	b.WriteString(strconv.FormatFloat(ty, 'f', -1, 64))
	b.WriteString("px) scale(")
	b.WriteString(strconv.FormatFloat(sx, 'f', -1, 64))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(sy, 'f', -1, 64))
	b.WriteString(")")
	return b.String()
}
