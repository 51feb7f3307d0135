package ifs

import (
	"embed"
	"fmt"
	"path"
)

//go:embed examples/*.json
var examplesFS embed.FS

// Example is a bundled map set
type Example struct {
	Name string
	File string
}

var examples = []Example{
	{"Barnsley's Fern", "Barnsleys-Fern.json"},
	{"Binary", "Binary.json"},
	{"Coral", "Coral.json"},
	{"Crystal", "Crystal.json"},
	{"Dragon", "Dragon.json"},
	{"Floor", "Floor.json"},
	{"Koch-3", "Koch-3.json"},
	{"Sierpiński Triangle", "Sierpinski-Triangle.json"},
	{"Spiral", "Spiral.json"},
	{"Tree", "Tree.json"},
	{"Triangle", "Triangle.json"},
	{"Whirlpool", "Whirlpool.json"},
	{"Zigzag", "Zigzag.json"},
}

// Examples lists the bundled map sets
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
