package lsystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dragonJSON = `{
  "Axiom": "FX",
  "Angle": 90,
  "Initial Angle": 12.5,
  "Iterations": 10,
  "Rules": ["X -> X+YF+", "Y -> -FX-Y"]
}`

func TestDecode(t *testing.T) {
	p, err := Decode([]byte(dragonJSON))
	require.NoError(t, err)
	assert.Equal(t, Params{
		Axiom:        "FX",
		Angle:        90,
		InitialAngle: 12.5,
		Length:       DefaultLength,
		Iterations:   10,
		Rules:        []string{"X -> X+YF+", "Y -> -FX-Y"},
	}, p)
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{`{`, `{"Iterations": -1}`, `{"Rules": "F -> FF"}`, `{"Angle": "ninety"}`} {
		_, err := Decode([]byte(in))
		assert.Error(t, err, in)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := valid()
	p.Length = DefaultLength
	data, err := Encode(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Initial Angle"`)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestStateLoad(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Load([]byte(dragonJSON)))
	assert.True(t, s.IsInitialized())
	assert.Equal(t, "FX", s.Axiom())
	assert.Equal(t, 12.5, s.InitialAngle())
	assert.Equal(t, []string{"X -> X+YF+", "Y -> -FX-Y"}, s.Rules())

	data, err := s.Save()
	require.NoError(t, err)
	other := NewState()
	require.NoError(t, other.Load(data))
	assert.Equal(t, s.Params(), other.Params())
}

func TestStateLoadInvalidResets(t *testing.T) {
	s := NewState()
	s.SetAxiom("F")
	err := s.Load([]byte(`{"Axiom": "FZ", "Angle": 90, "Initial Angle": 0, "Iterations": 2, "Rules": ["F -> FF"]}`))
	assert.ErrorIs(t, err, ErrNonAlphabetSymbolAxiom)
	assert.False(t, s.IsInitialized())
	assert.Equal(t, NewState().Params(), s.Params())
}

func TestStateLoadMalformedKeepsState(t *testing.T) {
	s := NewState()
	s.SetAxiom("F")
	assert.Error(t, s.Load([]byte(`[]`)))
	assert.Equal(t, "F", s.Axiom())
}
