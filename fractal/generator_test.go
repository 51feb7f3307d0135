package fractal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/ifs"
	"github.com/scottkirkwood/fractals/lsystem"
	"github.com/scottkirkwood/fractals/view"
)

func TestSlotKeepsNewest(t *testing.T) {
	s := newSlot[int]()
	_, ok := s.poll()
	assert.False(t, ok, "empty poll")

	assert.True(t, s.offer(1, 10))
	assert.True(t, s.offer(3, 30), "newer replaces pending")
	assert.False(t, s.offer(2, 20), "older dropped")

	v, ok := s.poll()
	require.True(t, ok)
	assert.Equal(t, 30, v)
	_, ok = s.poll()
	assert.False(t, ok, "only one pending")

	assert.False(t, s.offer(2, 20), "older than delivered")
	assert.True(t, s.offer(4, 40))
}

func TestGeneratorRequiresInitialized(t *testing.T) {
	c := NewContext()
	g := NewGenerator()
	_, err := g.Request(context.Background(), c)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.False(t, g.Apply(c))
}

func TestGeneratorDots(t *testing.T) {
	c := NewContext()
	c.IFS.SetSource(rand.NewSource(7))
	c.IFS.SetIterations(100)
	require.NoError(t, c.IFS.Initialize())

	g := NewGenerator()
	seq, err := g.Request(context.Background(), c)
	require.NoError(t, err)
	g.Wait()

	assert.True(t, g.Apply(c))
	assert.Len(t, c.IFS.Dots(), 101)
	assert.False(t, g.Apply(c), "nothing pending")
	assert.NotZero(t, seq)
}

func TestGeneratorDotsUniformFallback(t *testing.T) {
	g := NewGenerator()
	maps := ifs.MapSet{{A: 0.5, P: 0}, {E: 0.5, P: 0}}
	g.GenerateDots(context.Background(), maps, ifs.Options{
		Iterations: 5,
		Radius:     ifs.DefaultRadius,
		Source:     rand.NewSource(1),
	})
	g.Wait()
	r, ok := g.PollDots()
	require.True(t, ok)
	require.NoError(t, r.Err)
	assert.Len(t, r.Dots, 6)
}

func TestGeneratorDotsError(t *testing.T) {
	c := NewContext()
	g := NewGenerator()
	g.GenerateDots(context.Background(), ifs.MapSet{ifs.DefaultMap}, ifs.Options{Iterations: -1, Radius: 1})
	g.Wait()
	assert.False(t, g.Apply(c), "failed run leaves the state alone")
}

func TestGeneratorLines(t *testing.T) {
	c := NewContext()
	c.Kind = LSystem
	c.LSystem.SetAxiom("F")
	c.LSystem.SetRule(0, "F -> F+F")
	c.LSystem.SetIterations(2)
	require.NoError(t, c.LSystem.Initialize())

	g := NewGenerator()
	_, err := g.Request(context.Background(), c)
	require.NoError(t, err)
	g.Wait()

	r, ok := g.PollLines()
	require.True(t, ok)
	assert.Len(t, r.Lines, 4)
}

func TestGeneratorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGenerator()
	g.GenerateLines(ctx, lsystem.Model{Axiom: "F", Iterations: 1, Length: 1})
	g.Wait()
	_, ok := g.PollLines()
	assert.False(t, ok)
}

// Run with -race: concurrent generations from one seeded state must not
// share its random source.
func TestGeneratorSeededRequestsDoNotShareSource(t *testing.T) {
	c := NewContext()
	c.IFS.SetSystem(0, ifs.Map{A: 0.5, E: 0.5, P: 0.5})
	c.IFS.PushSystem(ifs.Map{A: 0.5, E: 0.5, C: 0.5, P: 0.5})
	c.IFS.SetSource(rand.NewSource(1))
	c.IFS.SetIterations(20000)
	require.NoError(t, c.IFS.Initialize())

	g := NewGenerator()
	for i := 0; i < 4; i++ {
		_, err := g.Request(context.Background(), c)
		require.NoError(t, err)
	}
	// the owning goroutine keeps drawing from its own source meanwhile
	c.IFS.RequestDrawing()
	c.IFS.Shapes(view.NewParams(10, 10))
	g.Wait()

	r, ok := g.PollDots()
	require.True(t, ok)
	assert.Len(t, r.Dots, 20001)
}

func TestGeneratorSeededIsReproducible(t *testing.T) {
	dots := func() []geom.Dot {
		c := NewContext()
		c.IFS.SetSystem(0, ifs.Map{A: 0.5, E: 0.5, P: 0.5})
		c.IFS.PushSystem(ifs.Map{A: 0.5, E: 0.5, C: 0.5, P: 0.5})
		c.IFS.SetSource(rand.NewSource(3))
		c.IFS.SetIterations(100)
		require.NoError(t, c.IFS.Initialize())

		g := NewGenerator()
		_, err := g.Request(context.Background(), c)
		require.NoError(t, err)
		g.Wait()
		r, ok := g.PollDots()
		require.True(t, ok)
		return r.Dots
	}
	assert.Equal(t, dots(), dots())
}
