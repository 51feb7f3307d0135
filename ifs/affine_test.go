package ifs

import (
	"testing"

	"github.com/scottkirkwood/fractals/geom"
)

func TestMapApply(t *testing.T) {
	tests := []struct {
		m    Map
		in   geom.Point
		want geom.Point
	}{
		{Map{A: 1, E: 1}, geom.Pt(2, 3), geom.Pt(2, 3)},
		{Map{A: 0.5, E: 0.5, C: 1, F: -1}, geom.Pt(2, 4), geom.Pt(2, 1)},
		{Map{B: 1, D: -1}, geom.Pt(1, 2), geom.Pt(2, -1)},
		{Map{A: 0.85, B: 0.04, D: -0.04, E: 0.85, F: 1.6}, geom.Pt(0, 0), geom.Pt(0, 1.6)},
	}
	for _, tt := range tests {
		if got := tt.m.Apply(tt.in); !got.Near(tt.want, 1e-12) {
			t.Errorf("%+v.Apply(%v) = %v, want %v", tt.m, tt.in, got, tt.want)
		}
	}
}

func TestMapArrayOrder(t *testing.T) {
	v := [7]float64{1, 2, 3, 4, 5, 6, 0.5}
	m := MapFromArray(v)
	want := Map{A: 1, B: 2, D: 3, E: 4, C: 5, F: 6, P: 0.5}
	if m != want {
		t.Errorf("MapFromArray(%v) = %+v, want %+v", v, m, want)
	}
	if got := m.Array(); got != v {
		t.Errorf("Array() = %v, want %v", got, v)
	}
}

func TestMapSetUniform(t *testing.T) {
	s := MapSet{{P: 0}, {P: 0}, {P: 0}, {P: 0}}
	u := s.Uniform()
	for i, m := range u {
		if m.P != 0.25 {
			t.Errorf("Uniform()[%d].P = %v, want 0.25", i, m.P)
		}
	}
	if s[0].P != 0 {
		t.Errorf("Uniform modified the original set")
	}
}
