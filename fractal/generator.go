package fractal

import (
	"context"
	"errors"
	"sync"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/ifs"
	"github.com/scottkirkwood/fractals/logging"
	"github.com/scottkirkwood/fractals/lsystem"
)

// ErrNotInitialized is returned when a generation is requested for a state
// that has not passed validation since its last edit.
var ErrNotInitialized = errors.New("fractal state is not initialized")

// DotsResult is a finished chaos game run
type DotsResult struct {
	Seq  uint64
	Dots []geom.Dot
	Err  error
}

// LinesResult is a finished L-System run
type LinesResult struct {
	Seq   uint64
	Lines []geom.Line
}

// slot holds at most one pending value. A newer value replaces a pending
// one; values older than the latest offered are dropped.
type slot[T any] struct {
	mu     sync.Mutex
	ch     chan T
	latest uint64
}

func newSlot[T any]() *slot[T] {
	return &slot[T]{ch: make(chan T, 1)}
}

func (s *slot[T]) offer(seq uint64, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.latest {
		return false
	}
	select {
	case <-s.ch:
	default:
	}
	s.latest = seq
	s.ch <- v
	return true
}

func (s *slot[T]) poll() (T, bool) {
	select {
	case v := <-s.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Generator runs the engines off the owning goroutine. Results are picked up
// with Poll or Apply, which never block.
type Generator struct {
	mu  sync.Mutex
	seq uint64
	wg  sync.WaitGroup

	dots  *slot[DotsResult]
	lines *slot[LinesResult]
}

func NewGenerator() *Generator {
	return &Generator{
		dots:  newSlot[DotsResult](),
		lines: newSlot[LinesResult](),
	}
}

func (g *Generator) next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return g.seq
}

// GenerateDots runs the chaos game in a goroutine. Degenerate weights fall
// back to uniform weights, as the state does outside strict mode.
func (g *Generator) GenerateDots(ctx context.Context, maps ifs.MapSet, opts ifs.Options) uint64 {
	seq := g.next()
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		dots, err := ifs.Generate(maps, opts)
		if errors.Is(err, ifs.ErrDegenerateWeights) {
			logging.Logger().Error("weighted index rejected, using uniform weights", "error", err)
			dots, err = ifs.Generate(maps.Uniform(), opts)
		}
		if ctx.Err() != nil {
			return
		}
		g.dots.offer(seq, DotsResult{Seq: seq, Dots: dots, Err: err})
	}()
	return seq
}

// GenerateLines rewrites and interprets m in a goroutine
func (g *Generator) GenerateLines(ctx context.Context, m lsystem.Model) uint64 {
	seq := g.next()
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		lines := m.Lines()
		if ctx.Err() != nil {
			return
		}
		g.lines.offer(seq, LinesResult{Seq: seq, Lines: lines})
	}()
	return seq
}

// Request starts a generation for the selected kind of c
func (g *Generator) Request(ctx context.Context, c *Context) (uint64, error) {
	if !c.Current().IsInitialized() {
		return 0, ErrNotInitialized
	}
	if c.Kind == LSystem {
		return g.GenerateLines(ctx, c.LSystem.Snapshot()), nil
	}
	maps, opts := c.IFS.Snapshot()
	return g.GenerateDots(ctx, maps, opts), nil
}

// PollDots returns the pending chaos game result, if any
func (g *Generator) PollDots() (DotsResult, bool) {
	return g.dots.poll()
}

// PollLines returns the pending L-System result, if any
func (g *Generator) PollLines() (LinesResult, bool) {
	return g.lines.poll()
}

// Apply stores any pending results into the states of c. It reports
// whether anything changed.
func (g *Generator) Apply(c *Context) bool {
	changed := false
	if r, ok := g.PollDots(); ok {
		if r.Err != nil {
			logging.Logger().Error("ifs generation failed", "seq", r.Seq, "error", r.Err)
		} else {
			c.IFS.SetDots(r.Dots)
			changed = true
		}
	}
	if r, ok := g.PollLines(); ok {
		c.LSystem.SetLines(r.Lines)
		changed = true
	}
	return changed
}

// Wait blocks until every started generation has finished
func (g *Generator) Wait() {
	g.wg.Wait()
}
