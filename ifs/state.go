package ifs

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/logging"
	"github.com/scottkirkwood/fractals/style"
	"github.com/scottkirkwood/fractals/view"
)

// DefaultMap collapses everything onto the origin
var DefaultMap = Map{P: 1}

// State holds the editable IFS parameters and the last generated dots.
// It is owned by a single goroutine.
type State struct {
	initialized      bool
	drawingRequested bool

	dots []geom.Dot

	systems  MapSet
	schemes  []style.ColorScheme
	coloring bool

	iterations int
	radius     float64
	source     rand.Source

	// Strict panics when the engine rejects weights that passed validation.
	// Otherwise the dots are regenerated with uniform weights.
	Strict bool
}

// NewState returns a state holding a single DefaultMap
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the defaults, dropping the cached dots. Strict and the
// random source survive.
func (s *State) Reset() {
	strict, source := s.Strict, s.source
	*s = State{
		systems:    MapSet{DefaultMap},
		schemes:    []style.ColorScheme{{}},
		iterations: DefaultIterations,
		radius:     DefaultRadius,
		source:     source,
		Strict:     strict,
	}
}

func (s *State) IsInitialized() bool {
	return s.initialized
}

// Initialize validates the map set and marks the state initialized on
// success.
func (s *State) Initialize() error {
	if err := Validate(s.systems); err != nil {
		s.initialized = false
		return err
	}
	s.initialized = true
	return nil
}

func (s *State) ResetInitialization() {
	s.initialized = false
}

func (s *State) RequestDrawing() {
	s.drawingRequested = true
}

func (s *State) IsDrawingRequested() bool {
	return s.drawingRequested
}

// Shapes runs the chaos game once per drawing request and returns the
// cached dots projected through p.
func (s *State) Shapes(p view.Params) []geom.Shape {
	if s.drawingRequested {
		s.drawingRequested = false
		s.draw()
	}
	shapes := make([]geom.Shape, len(s.dots))
	for i, d := range s.dots {
		shapes[i] = p.Dot(d)
	}
	return shapes
}

// Dots returns the cached dots in abstract units
func (s *State) Dots() []geom.Dot {
	return s.dots
}

// Snapshot copies the engine inputs so they can be generated elsewhere.
// A seeded state hands out a fresh source drawn from its own, so the
// snapshot shares no mutable state and successive snapshots stay
// reproducible.
func (s *State) Snapshot() (MapSet, Options) {
	opts := s.options()
	if s.source != nil {
		opts.Source = rand.NewSource(s.source.Uint64())
	}
	return s.systems.clone(), opts
}

// SetDots replaces the cache, for results generated from a Snapshot.
func (s *State) SetDots(dots []geom.Dot) {
	s.drawingRequested = false
	s.dots = dots
}

func (s *State) options() Options {
	opts := Options{
		Iterations: s.iterations,
		Radius:     s.radius,
		Source:     s.source,
	}
	if s.coloring {
		opts.Schemes = append([]style.ColorScheme(nil), s.schemes...)
	}
	return opts
}

func (s *State) draw() {
	log := logging.Logger()
	if !s.initialized {
		log.Warn("ifs drawing requested before initialization")
		return
	}
	dots, err := Generate(s.systems, s.options())
	if errors.Is(err, ErrDegenerateWeights) {
		if s.Strict {
			panic(fmt.Sprintf("validated map set reached the engine with bad weights: %v", err))
		}
		log.Error("Error occurred while creating weighted index, using uniform weights", "error", err)
		dots, err = Generate(s.systems.Uniform(), s.options())
	}
	if err != nil {
		log.Error("ifs generation failed", "error", err)
		return
	}
	log.Debug("ifs generated", "dots", len(dots), "maps", len(s.systems))
	s.dots = dots
}

// Systems returns a copy of the map set
func (s *State) Systems() MapSet {
	return s.systems.clone()
}

// SetSystem replaces map i
func (s *State) SetSystem(i int, m Map) {
	s.ResetInitialization()
	s.systems[i] = m
}

// AddEmptySystem appends a DefaultMap
func (s *State) AddEmptySystem() {
	s.ResetInitialization()
	s.systems = append(s.systems, DefaultMap)
	s.schemes = append(s.schemes, style.ColorScheme{})
}

// PushSystem appends m with the standard colour
func (s *State) PushSystem(m Map) {
	s.ResetInitialization()
	s.systems = append(s.systems, m)
	s.schemes = append(s.schemes, style.ColorScheme{})
}

// RemoveSystem drops map i
func (s *State) RemoveSystem(i int) {
	s.ResetInitialization()
	s.systems = append(s.systems[:i], s.systems[i+1:]...)
	s.schemes = append(s.schemes[:i], s.schemes[i+1:]...)
}

// EmptySystems removes every map
func (s *State) EmptySystems() {
	s.ResetInitialization()
	s.systems = MapSet{}
	s.schemes = nil
}

// ColorScheme returns the scheme of map i
func (s *State) ColorScheme(i int) style.ColorScheme {
	return s.schemes[i]
}

// SetColorScheme sets the colouring of the dots produced by map i
func (s *State) SetColorScheme(i int, scheme style.ColorScheme) {
	s.ResetInitialization()
	s.schemes[i] = scheme
}

// SetColoring turns per-map colours on. When off every dot is black.
func (s *State) SetColoring(on bool) {
	s.ResetInitialization()
	s.coloring = on
}

func (s *State) Coloring() bool {
	return s.coloring
}

func (s *State) Iterations() int {
	return s.iterations
}

func (s *State) SetIterations(n int) {
	s.ResetInitialization()
	s.iterations = n
}

// Radius of the dots in centimetres
func (s *State) Radius() float64 {
	return s.radius
}

func (s *State) SetRadius(r float64) {
	s.ResetInitialization()
	s.radius = r
}

// SetSource makes generation reproducible. nil goes back to clock seeding.
// The source is kept across Reset and Load.
func (s *State) SetSource(src rand.Source) {
	s.ResetInitialization()
	s.source = src
}
