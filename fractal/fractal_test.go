package fractal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/ifs"
	"github.com/scottkirkwood/fractals/lsystem"
	"github.com/scottkirkwood/fractals/view"
)

func TestKind(t *testing.T) {
	assert.Equal(t, "Iterated Function System (IFS)", IFS.String())
	assert.Equal(t, "L-System", LSystem.String())

	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"ifs", IFS, false},
		{" IFS ", IFS, false},
		{"lsystem", LSystem, false},
		{"L-System", LSystem, false},
		{"mandelbrot", IFS, true},
	}
	for _, tc := range tests {
		got, err := ParseKind(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestMessage(t *testing.T) {
	err := &ifs.ValidationError{Kind: ifs.BadProbability, Value: 1.5}
	assert.Equal(t,
		"Validation Error: "+err.Error()+"\n\nAdditional Info:\nValue: 1.50",
		Message(err))

	wrapped := fmt.Errorf("loading fern: %w", err)
	assert.Equal(t, Message(err), Message(wrapped))

	noInfo := &ifs.ValidationError{Kind: ifs.NoSystems}
	assert.Equal(t, "Validation Error: "+noInfo.Error(), Message(noInfo))

	lerr := &lsystem.ValidationError{Kind: lsystem.NonAlphabetSymbolCondition, Rule: 2, Symbol: 'G'}
	assert.Equal(t,
		"Validation Error: "+lerr.Error()+"\n\nAdditional Info:\nRule: 2\nSymbol: G",
		Message(lerr))

	assert.Equal(t, "Error: boom", Message(errors.New("boom")))
}

func TestContextShapes(t *testing.T) {
	c := NewContext()
	p := view.NewParams(200, 100)

	require.NoError(t, c.IFS.Initialize())
	c.IFS.SetSource(rand.NewSource(1))
	c.IFS.SetIterations(10)
	require.NoError(t, c.IFS.Initialize())
	c.IFS.RequestDrawing()
	assert.Len(t, c.Shapes(p), 11)

	c.Grid.Enabled = true
	grid := c.Grid.Shapes(p)
	require.NotEmpty(t, grid)
	shapes := c.Shapes(p)
	assert.Len(t, shapes, len(grid)+11)
	_, isLine := shapes[0].(geom.Line)
	assert.True(t, isLine, "grid first")
	_, isDot := shapes[len(shapes)-1].(geom.Dot)
	assert.True(t, isDot, "fractal last")

	c.Kind = LSystem
	assert.Same(t, c.LSystem, c.Current())
	assert.Len(t, c.Shapes(p), len(grid), "lsystem not drawn yet")
}

func TestContextLoadSave(t *testing.T) {
	for _, kind := range []Kind{IFS, LSystem} {
		c := NewContext()
		c.Kind = kind
		var data []byte
		var err error
		if kind == IFS {
			e, ok := ifs.ExampleByName("Dragon")
			require.True(t, ok)
			data, err = e.Contents()
		} else {
			e, ok := lsystem.ExampleByName("Koch Curve")
			require.True(t, ok)
			data, err = e.Contents()
		}
		require.NoError(t, err)
		require.NoError(t, c.Load(data), kind)
		assert.True(t, c.Current().IsInitialized(), kind)

		out, err := c.Save()
		require.NoError(t, err)
		other := NewContext()
		other.Kind = kind
		require.NoError(t, other.Load(out), kind)
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{`{"Systems": [[0,0,0,0,0,0,1]]}`, IFS, false},
		{`{"systems": []}`, IFS, false},
		{`{"Axiom": "F", "Angle": 90}`, LSystem, false},
		{`{"Angle": 90, "Rules": ["F -> FF"]}`, LSystem, false},
		{`{"Angle": 90}`, IFS, true},
		{`[1, 2]`, IFS, true},
		{`{`, IFS, true},
	}
	for _, tc := range tests {
		got, err := DetectKind([]byte(tc.in))
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestContextBounds(t *testing.T) {
	c := NewContext()
	_, _, ok := c.Bounds()
	assert.False(t, ok, "nothing generated")

	c.Kind = LSystem
	c.LSystem.SetAxiom("F+F")
	c.LSystem.SetRule(0, "F -> F")
	c.LSystem.SetAngle(90)
	c.LSystem.SetLength(1)
	require.NoError(t, c.LSystem.Initialize())
	c.LSystem.RequestDrawing()
	c.Shapes(view.NewParams(10, 10))

	min, max, ok := c.Bounds()
	require.True(t, ok)
	assert.True(t, min.Near(geom.Pt(0, 0), 1e-9), min)
	assert.True(t, max.Near(geom.Pt(1, 1), 1e-9), max)
}
