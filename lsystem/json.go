package lsystem

import (
	"encoding/json"
	"fmt"
)

type document struct {
	Axiom        string   `json:"Axiom"`
	Angle        float64  `json:"Angle"`
	InitialAngle float64  `json:"Initial Angle"`
	Iterations   uint     `json:"Iterations"`
	Rules        []string `json:"Rules"`
}

// Decode parses a persisted L-System without validating it. The step length
// is not persisted and is left at DefaultLength.
func Decode(data []byte) (Params, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Params{}, fmt.Errorf("l-system json: %w", err)
	}
	return Params{
		Axiom:        doc.Axiom,
		Angle:        doc.Angle,
		InitialAngle: doc.InitialAngle,
		Length:       DefaultLength,
		Iterations:   int(doc.Iterations),
		Rules:        doc.Rules,
	}, nil
}

// Encode writes p as indented JSON
func Encode(p Params) ([]byte, error) {
	if p.Iterations < 0 {
		return nil, fmt.Errorf("l-system json: negative iterations %d", p.Iterations)
	}
	rules := p.Rules
	if rules == nil {
		rules = []string{}
	}
	return json.MarshalIndent(document{
		Axiom:        p.Axiom,
		Angle:        p.Angle,
		InitialAngle: p.InitialAngle,
		Iterations:   uint(p.Iterations),
		Rules:        rules,
	}, "", "  ")
}

// Load replaces the parameters with the ones in data and validates them.
// Malformed JSON leaves the state untouched; parameters that fail
// validation reset the state to its defaults.
func (s *State) Load(data []byte) error {
	p, err := Decode(data)
	if err != nil {
		return err
	}
	s.ResetWithEmptyRules()
	s.axiom = p.Axiom
	s.angle = p.Angle
	s.initialAngle = p.InitialAngle
	s.iterations = p.Iterations
	s.rules = append(s.rules, p.Rules...)

	if err := s.Initialize(); err != nil {
		s.Reset()
		return err
	}
	return nil
}

// Save encodes the current parameters
func (s *State) Save() ([]byte, error) {
	return Encode(s.Params())
}
