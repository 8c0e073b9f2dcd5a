package kinetic

import (
	"strings"
	"testing"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"0.5", 0.5},
		{"12px", 12},
		{"-3.5px", -3.5},
		{"+8px", 8},
		{"40%", 40},
		{"  16px ", 16},
		{"", 0},
		{"none", 0},
		{"px", 0},
		{"-", 0},
		{".", 0},
		{"1.2.3px", 1.2},
	}
	for _, c := range cases {
		if got := parseValue(c.in); got != c.want {
			t.Errorf("parseValue(%q) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestFormatValueUnits(t *testing.T) {
	cases := []struct {
		property string
		v        float64
		want     string
	}{
		{"x", 100, "100px"},
		{"width", -3.5, "-3.5px"},
		{"opacity", 0.5, "0.5"},
		{"scale", 1.2, "1.2"},
		{"y", 0, "0px"},
	}
	for _, c := range cases {
		if got := formatValue(c.property, c.v); got != c.want {
			t.Errorf("formatValue(%q, %f) = %q, want %q", c.property, c.v, got, c.want)
		}
	}
}

func TestFormatValueRoundTripsThroughParse(t *testing.T) {
	// The engine re-reads its own writes (initial snapshots, gesture rest
	// values, superseding transitions), so every formatted value must parse
	// back exactly. Sub-1e-4 magnitudes are the trap: default float
	// formatting would switch to scientific notation, which the parser
	// rejects.
	values := []float64{
		0,
		100,
		-3.5,
		0.00003,
		8.333357982337475e-05,
		-0.000001,
		1e12,
	}
	for _, v := range values {
		for _, property := range []string{"opacity", "x"} {
			s := formatValue(property, v)
			if strings.ContainsAny(s, "eE") {
				t.Errorf("formatValue(%q, %g) = %q, want decimal notation", property, v, s)
			}
			if got := parseValue(s); got != v {
				t.Errorf("parseValue(formatValue(%q, %g)) = %g, want exact round-trip", property, v, got)
			}
		}
	}
}

func TestFormatTransform(t *testing.T) {
	if got := formatTransform(0, 0, 1, 1); got != "none" {
		t.Errorf("identity = %q, want \"none\"", got)
	}
	want := "translate(-100px, -50px) scale(0.5, 1)"
	if got := formatTransform(-100, -50, 0.5, 1); got != want {
		t.Errorf("formatTransform = %q, want %q", got, want)
	}
	// Pure translation still carries the scale component.
	want = "translate(10px, 0px) scale(1, 1)"
	if got := formatTransform(10, 0, 1, 1); got != want {
		t.Errorf("formatTransform = %q, want %q", got, want)
	}
}
