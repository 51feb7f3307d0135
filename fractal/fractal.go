// Package fractal ties the IFS and L-System states together for a host
// program: the selected kind, the coordinate grid and the error messages
// shown to the user.
package fractal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/ifs"
	"github.com/scottkirkwood/fractals/lsystem"
	"github.com/scottkirkwood/fractals/view"
)

// State is what a host needs from a fractal. Any parameter edit resets
// initialization; drawing only happens after a successful Initialize and an
// explicit RequestDrawing.
type State interface {
	IsInitialized() bool
	Initialize() error
	ResetInitialization()
	RequestDrawing()
	Shapes(p view.Params) []geom.Shape
}

var (
	_ State = (*ifs.State)(nil)
	_ State = (*lsystem.State)(nil)
)

// Kind selects a fractal family
type Kind int

const (
	IFS Kind = iota
	LSystem
)

func (k Kind) String() string {
	switch k {
	case LSystem:
		return "L-System"
	default:
		return "Iterated Function System (IFS)"
	}
}

// ParseKind accepts "ifs" or "lsystem"/"l-system"
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ifs":
		return IFS, nil
	case "lsystem", "l-system":
		return LSystem, nil
	}
	return IFS, fmt.Errorf("unknown fractal kind %q, want ifs or lsystem", s)
}

// DetectKind tells a persisted IFS from a persisted L-System by its keys
func DetectKind(data []byte) (Kind, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return IFS, fmt.Errorf("reading fractal: %w", err)
	}
	for k := range doc {
		switch strings.ToLower(k) {
		case "systems":
			return IFS, nil
		case "axiom", "rules":
			return LSystem, nil
		}
	}
	return IFS, errors.New("reading fractal: neither Systems nor Axiom found")
}

// Context owns one state per kind plus the grid
type Context struct {
	Kind    Kind
	Grid    *view.Grid
	IFS     *ifs.State
	LSystem *lsystem.State
}

// NewContext returns default states with the grid off
func NewContext() *Context {
	return &Context{
		Grid:    view.NewGrid(),
		IFS:     ifs.NewState(),
		LSystem: lsystem.NewState(),
	}
}

// Current returns the state of the selected kind
func (c *Context) Current() State {
	if c.Kind == LSystem {
		return c.LSystem
	}
	return c.IFS
}

// Shapes returns the grid followed by the selected fractal
func (c *Context) Shapes(p view.Params) []geom.Shape {
	shapes := c.Grid.Shapes(p)
	return append(shapes, c.Current().Shapes(p)...)
}

// Bounds returns the box around the cached geometry of the selected kind,
// in abstract units.
func (c *Context) Bounds() (min, max geom.Point, ok bool) {
	if c.Kind == LSystem {
		return geom.Bounds(c.LSystem.Lines())
	}
	return geom.DotBounds(c.IFS.Dots())
}

// Load reads a persisted fractal of the selected kind into its state
func (c *Context) Load(data []byte) error {
	if c.Kind == LSystem {
		return c.LSystem.Load(data)
	}
	return c.IFS.Load(data)
}

// Save encodes the selected state
func (c *Context) Save() ([]byte, error) {
	if c.Kind == LSystem {
		return c.LSystem.Save()
	}
	return c.IFS.Save()
}

// Informer is implemented by validation errors with extra detail
type Informer interface {
	AdditionalInfo() (string, bool)
}

// Message formats err for a message dialog:
//
//	Validation Error: <summary>
//
//	Additional Info:
//	<detail>
//
// Errors that are not validation errors are returned as "Error: <err>".
func Message(err error) string {
	var inf Informer
	if !errors.As(err, &inf) {
		return fmt.Sprintf("Error: %v", err)
	}
	msg := fmt.Sprintf("Validation Error: %v", err)
	if info, ok := inf.AdditionalInfo(); ok {
		msg += "\n\nAdditional Info:\n" + info
	}
	return msg
}
