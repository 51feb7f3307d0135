// Package ifs draws Iterated Function Systems with the chaos game.
package ifs

import "github.com/scottkirkwood/fractals/geom"

// Map is one affine transform of an IFS plus its selection weight:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Map struct {
	A, B, D, E, C, F float64
	// P is the probability of picking this map
	P float64
}

// MapFromArray reads the persisted [a, b, d, e, c, f, p] order
func MapFromArray(v [7]float64) Map {
	return Map{A: v[0], B: v[1], D: v[2], E: v[3], C: v[4], F: v[5], P: v[6]}
}

// Array returns the map in the persisted [a, b, d, e, c, f, p] order
func (m Map) Array() [7]float64 {
	return [7]float64{m.A, m.B, m.D, m.E, m.C, m.F, m.P}
}

// Apply transforms p
func (m Map) Apply(p geom.Point) geom.Point {
	return geom.Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// MapSet is an ordered list of maps. Order only matters for editing.
type MapSet []Map

// Weights returns every map's P in order
func (s MapSet) Weights() []float64 {
	w := make([]float64, len(s))
	for i, m := range s {
		w[i] = m.P
	}
	return w
}

// Sum of all weights
func (s MapSet) Sum() float64 {
	var sum float64
	for _, m := range s {
		sum += m.P
	}
	return sum
}

// Uniform returns a copy with every weight set to 1/len(s)
func (s MapSet) Uniform() MapSet {
	out := make(MapSet, len(s))
	copy(out, s)
	for i := range out {
		out[i].P = 1 / float64(len(s))
	}
	return out
}

func (s MapSet) clone() MapSet {
	if s == nil {
		return nil
	}
	out := make(MapSet, len(s))
	copy(out, s)
	return out
}
