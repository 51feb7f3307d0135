package lsystem

import (
	"embed"
	"fmt"
	"path"
)

//go:embed examples/*.json
var examplesFS embed.FS

// Example is a bundled L-System
type Example struct {
	Name string
	File string
}

var examples = []Example{
	{"Dragon Curve", "DragonCurve.json"},
	{"Gosper Curve", "GosperCurve.json"},
	{"Hilbert Curve", "HilbertCurve.json"},
	{"Koch Curve", "KochCurve.json"},
	{"Koch Quadratic Curve", "KochQuadraticCurve.json"},
	{"Koch Quadratic Island", "KochQuadraticIsland.json"},
	{"Koch Quadratic Snowflake", "KochQuadraticSnowflake.json"},
	{"Koch Snowflake", "KochSnowflake.json"},
	{"L-System Bush 1", "LsystemBush-1.json"},
	{"L-System Bush 2", "LsystemBush-2.json"},
	{"L-System Bush 3", "LsystemBush-3.json"},
	{"L-System Sticks 1", "LsystemSticks-1.json"},
	{"L-System Sticks 2", "LsystemSticks-2.json"},
	{"Peano Curve", "PeanoFractal.json"},
	{"Penrose Tiling", "PenroseTiling.json"},
	{"Sierpiński Curve", "SierpinskiCurve.json"},
	{"Sierpiński Rhombus", "SierpinskiRhombus.json"},
	{"Sierpiński Triangle", "SierpinskiTriangle.json"},
}

// Examples lists the bundled L-Systems
func Examples() []Example {
	return append([]Example(nil), examples...)
}

// ExampleByName finds a bundled example
func ExampleByName(name string) (Example, bool) {
	for _, e := range examples {
		if e.Name == name {
			return e, true
		}
	}
	return Example{}, false
}

// Contents returns the example's JSON
func (e Example) Contents() ([]byte, error) {
	data, err := examplesFS.ReadFile(path.Join("examples", e.File))
	if err != nil {
		return nil, fmt.Errorf("example %q: %w", e.Name, err)
	}
	return data, nil
}

func (e Example) String() string {
	return e.Name
}
