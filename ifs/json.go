package ifs

import (
	"encoding/json"
	"fmt"
)

// document is the persisted form. Older files spell the key "systems";
// encoding/json matches keys case-insensitively so both decode.
type document struct {
	Systems [][]float64 `json:"Systems"`
}

// Decode parses a persisted map set without validating it
func Decode(data []byte) (MapSet, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ifs json: %w", err)
	}
	maps := make(MapSet, len(doc.Systems))
	for i, row := range doc.Systems {
		if len(row) != 7 {
			return nil, fmt.Errorf("ifs json: system %d has %d numbers, want 7", i+1, len(row))
		}
		var v [7]float64
		copy(v[:], row)
		maps[i] = MapFromArray(v)
	}
	return maps, nil
}

// Encode writes maps as indented JSON
func Encode(maps MapSet) ([]byte, error) {
	doc := document{Systems: make([][]float64, len(maps))}
	for i, m := range maps {
		v := m.Array()
		doc.Systems[i] = v[:]
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Load replaces the whole map set with the one in data and validates it.
// Malformed JSON leaves the state untouched. A set that fails validation
// resets the state to its defaults; the validation error is returned.
func (s *State) Load(data []byte) error {
	maps, err := Decode(data)
	if err != nil {
		return err
	}
	s.Reset()
	s.EmptySystems()
	for _, m := range maps {
		s.PushSystem(m)
	}
	if err := s.Initialize(); err != nil {
		s.Reset()
		return err
	}
	return nil
}

// Save encodes the current map set
func (s *State) Save() ([]byte, error) {
	return Encode(s.systems)
}
