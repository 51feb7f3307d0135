package ifs

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/style"
)

const (
	DefaultIterations = 20000
	DefaultRadius     = geom.DefaultDotRadius
)

// ErrDegenerateWeights means the weights cannot form a distribution. Weights
// that passed Validate never produce it.
var ErrDegenerateWeights = errors.New("ifs: degenerate probability weights")

// Distribution draws map indexes in proportion to their weights
type Distribution struct {
	cat distuv.Categorical
}

// NewDistribution builds a categorical distribution over weights. It fails
// with ErrDegenerateWeights when there are no weights, any is negative or
// not finite, or they are all zero.
func NewDistribution(weights []float64, src rand.Source) (*Distribution, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no weights", ErrDegenerateWeights)
	}
	var sum float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: weight %d is %v", ErrDegenerateWeights, i, w)
		}
		sum += w
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: weights sum to %v", ErrDegenerateWeights, sum)
	}
	return &Distribution{cat: distuv.NewCategorical(weights, src)}, nil
}

// Sample returns a map index
func (d *Distribution) Sample() int {
	return int(d.cat.Rand())
}

// Options for Generate
type Options struct {
	Iterations int
	// Radius of every dot, centimetres
	Radius float64
	// Schemes colour the dots of the map with the same index. Missing
	// entries are Standard.
	Schemes []style.ColorScheme
	// Source of randomness. nil seeds one from the clock.
	Source rand.Source
}

// NewSource returns a random source seeded from the clock
func NewSource() rand.Source {
	return rand.NewSource(uint64(time.Now().UnixNano()))
}

// Generate plays the chaos game: starting at the origin it applies a
// randomly picked map to the previous point, Iterations times. The result
// holds Iterations+1 dots.
func Generate(maps MapSet, opts Options) ([]geom.Dot, error) {
	if opts.Iterations < 0 {
		return nil, fmt.Errorf("ifs: negative iteration count %d", opts.Iterations)
	}
	if !(opts.Radius > 0) {
		return nil, fmt.Errorf("ifs: dot radius must be positive, got %v", opts.Radius)
	}
	src := opts.Source
	if src == nil {
		src = NewSource()
	}
	dist, err := NewDistribution(maps.Weights(), src)
	if err != nil {
		return nil, err
	}
	rng := rand.New(src)

	dots := make([]geom.Dot, 0, opts.Iterations+1)
	start := geom.NewDot()
	start.Radius = opts.Radius
	dots = append(dots, start)

	prev := start.Center
	for i := 0; i < opts.Iterations; i++ {
		idx := dist.Sample()
		next := maps[idx].Apply(prev)
		dots = append(dots, geom.Dot{
			Center: next,
			Color:  schemeAt(opts.Schemes, idx).Color(rng),
			Radius: opts.Radius,
		})
		prev = next
	}
	return dots, nil
}

func schemeAt(schemes []style.ColorScheme, i int) style.ColorScheme {
	if i < len(schemes) {
		return schemes[i]
	}
	return style.ColorScheme{}
}
