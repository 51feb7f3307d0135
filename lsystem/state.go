package lsystem

import (
	"image/color"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/logging"
	"github.com/scottkirkwood/fractals/style"
	"github.com/scottkirkwood/fractals/view"
)

const (
	DefaultLength      = 0.5
	DefaultStrokeWidth = 1.0
)

// State holds the editable L-System parameters, the rules compiled by the
// last successful Initialize and the cached lines.
type State struct {
	initialized      bool
	drawingRequested bool

	angle        float64
	initialAngle float64
	axiom        string
	rules        []string
	iterations   int
	length       float64

	stroke style.Stroke

	lines    []geom.Line
	rulesSet map[rune]string
}

// NewState returns a state with one blank rule
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the defaults
func (s *State) Reset() {
	*s = State{
		rules:      []string{""},
		iterations: 1,
		length:     DefaultLength,
		stroke:     style.ModelBlack(DefaultStrokeWidth),
		rulesSet:   map[rune]string{},
	}
}

// ResetWithEmptyRules restores the defaults without the blank rule
func (s *State) ResetWithEmptyRules() {
	s.Reset()
	s.rules = make([]string, 0, 3)
}

func (s *State) IsInitialized() bool {
	return s.initialized
}

// Params returns the raw parameters
func (s *State) Params() Params {
	return Params{
		Axiom:        s.axiom,
		Angle:        s.angle,
		InitialAngle: s.initialAngle,
		Length:       s.length,
		Iterations:   s.iterations,
		Rules:        append([]string(nil), s.rules...),
	}
}

// Initialize validates the parameters. On success the compiled rules are
// kept for drawing; on failure they are cleared.
func (s *State) Initialize() error {
	rules, err := Validate(s.Params())
	if err != nil {
		s.ResetInitialization()
		return err
	}
	s.rulesSet = rules
	s.initialized = true
	return nil
}

// ResetInitialization drops the compiled rules too
func (s *State) ResetInitialization() {
	s.rulesSet = map[rune]string{}
	s.initialized = false
}

func (s *State) RequestDrawing() {
	s.drawingRequested = true
}

func (s *State) IsDrawingRequested() bool {
	return s.drawingRequested
}

// Snapshot copies everything the engine needs
func (s *State) Snapshot() Model {
	rules := make(map[rune]string, len(s.rulesSet))
	for k, v := range s.rulesSet {
		rules[k] = v
	}
	return Model{
		Axiom:      s.axiom,
		Rules:      rules,
		Turn:       geom.FromDegree(s.angle),
		Heading:    geom.FromDegree(s.initialAngle),
		Iterations: s.iterations,
		Length:     s.length,
		Stroke:     s.stroke,
	}
}

// Shapes rewrites and interprets once per drawing request and returns the
// cached lines projected through p.
func (s *State) Shapes(p view.Params) []geom.Shape {
	if s.drawingRequested {
		s.drawingRequested = false
		if s.initialized {
			s.lines = s.Snapshot().Lines()
			logging.Logger().Debug("l-system generated", "lines", len(s.lines), "iterations", s.iterations)
		} else {
			logging.Logger().Warn("l-system drawing requested before initialization")
		}
	}
	shapes := make([]geom.Shape, len(s.lines))
	for i, l := range s.lines {
		shapes[i] = p.Line(l)
	}
	return shapes
}

// Lines returns the cached lines in abstract units
func (s *State) Lines() []geom.Line {
	return s.lines
}

// SetLines replaces the cache, for results generated from a Snapshot
func (s *State) SetLines(lines []geom.Line) {
	s.drawingRequested = false
	s.lines = lines
}

func (s *State) Axiom() string { return s.axiom }

func (s *State) SetAxiom(axiom string) {
	s.ResetInitialization()
	s.axiom = axiom
}

// Angle is the turn angle in degrees
func (s *State) Angle() float64 { return s.angle }

func (s *State) SetAngle(deg float64) {
	s.ResetInitialization()
	s.angle = deg
}

// InitialAngle is the starting heading in degrees
func (s *State) InitialAngle() float64 { return s.initialAngle }

func (s *State) SetInitialAngle(deg float64) {
	s.ResetInitialization()
	s.initialAngle = deg
}

func (s *State) Iterations() int { return s.iterations }

func (s *State) SetIterations(n int) {
	s.ResetInitialization()
	s.iterations = n
}

// Length is the step length in centimetres
func (s *State) Length() float64 { return s.length }

func (s *State) SetLength(l float64) {
	s.ResetInitialization()
	s.length = l
}

// Rules returns a copy of the raw rule lines
func (s *State) Rules() []string {
	return append([]string(nil), s.rules...)
}

func (s *State) SetRule(i int, line string) {
	s.ResetInitialization()
	s.rules[i] = line
}

func (s *State) PushEmptyRule() {
	s.ResetInitialization()
	s.rules = append(s.rules, "")
}

func (s *State) RemoveRule(i int) {
	s.ResetInitialization()
	s.rules = append(s.rules[:i], s.rules[i+1:]...)
}

// Color of the lines
func (s *State) Color() color.RGBA { return s.stroke.Color }

// SetColor takes effect on the next drawing request
func (s *State) SetColor(col color.RGBA) {
	s.ResetInitialization()
	s.stroke.Color = col
}

// SetStrokeWidth sets the line width in pixels
func (s *State) SetStrokeWidth(w float64) {
	s.ResetInitialization()
	s.stroke.Width = w
}
