// Package engine drives a Game of Life grid on a surface from a fixed-period
// ticker.
//
// Each tick paints the current generation, then replaces it with the next
// one. Ticks run on a single goroutine and never overlap.
package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"life-canvas/internal/render"
	"life-canvas/pkg/core"
	"life-canvas/pkg/life"
)

// Period is the fixed interval between ticks.
const Period = 500 * time.Millisecond

// State is the run state of an engine.
type State int

const (
	// Stopped is the initial state and the state after Stop.
	Stopped State = iota
	// Running means a ticker is active.
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Opener acquires the surface for a grid of w*h cells.
type Opener func(w, h int) (render.Surface, error)

// Snapshot is a point-in-time copy of the engine state.
type Snapshot struct {
	Generation int
	Population int
	State      State
	Grid       *core.Grid
}

// Option configures an Engine.
type Option func(*Engine)

// WithTicker replaces the ticker factory, mainly for tests.
func WithTicker(f TickerFactory) Option {
	return func(e *Engine) { e.newTicker = f }
}

// WithLogger sets the logger used for frame errors.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// OnTick registers fn to run on the loop goroutine after every tick. fn must
// not call Stop.
func OnTick(fn func(Snapshot)) Option {
	return func(e *Engine) { e.onTick = fn }
}

// Engine owns a grid, the surface it is painted on and the tick loop.
type Engine struct {
	newTicker TickerFactory
	log       *log.Logger
	onTick    func(Snapshot)

	// ctl serialises Start and Stop; state is only written while holding it.
	ctl   sync.Mutex
	state atomic.Int32
	quit  chan struct{}
	done  chan struct{}

	// mu guards the fields below; they are written by the loop goroutine.
	mu      sync.Mutex
	grid    *core.Grid
	gen     int
	surface render.Surface
}

// New copies initial and acquires a surface for it. Failure to acquire the
// surface is returned unchanged in kind: render.ErrContextUnavailable or
// render.ErrShaderSetup.
func New(initial *core.Grid, open Opener, opts ...Option) (*Engine, error) {
	if initial == nil {
		return nil, errors.Wrap(core.ErrEmptyGrid, "engine: nil initial grid")
	}
	if open == nil {
		return nil, errors.Wrap(render.ErrContextUnavailable, "engine: no surface opener")
	}
	surface, err := open(initial.W, initial.H)
	if err != nil {
		return nil, errors.Wrap(err, "engine: acquire surface")
	}
	if surface == nil {
		return nil, errors.Wrap(render.ErrContextUnavailable, "engine: opener returned no surface")
	}

	e := &Engine{
		newTicker: NewTimeTicker,
		log:       log.Default(),
		grid:      initial.Clone(),
		surface:   surface,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start begins ticking. Calling Start while running does nothing.
func (e *Engine) Start() {
	e.ctl.Lock()
	defer e.ctl.Unlock()
	if e.State() == Running {
		return
	}
	e.quit = make(chan struct{})
	e.done = make(chan struct{})
	e.state.Store(int32(Running))
	go e.loop(e.newTicker(Period), e.quit, e.done)
}

// Stop cancels the ticker and waits for the loop to exit, so no tick runs
// after Stop returns. Calling Stop while stopped does nothing.
func (e *Engine) Stop() {
	e.ctl.Lock()
	defer e.ctl.Unlock()
	if e.State() == Stopped {
		return
	}
	close(e.quit)
	<-e.done
	e.quit, e.done = nil, nil
	e.state.Store(int32(Stopped))
}

// Toggle starts a stopped engine and stops a running one.
func (e *Engine) Toggle() {
	if e.State() == Running {
		e.Stop()
		return
	}
	e.Start()
}

// Run starts the engine and blocks until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	e.Start()
	<-ctx.Done()
	e.Stop()
	return nil
}

// State reports whether the engine is running.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Snapshot returns a copy of the current generation.
func (e *Engine) Snapshot() Snapshot {
	state := e.State()
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(state)
}

func (e *Engine) snapshotLocked(state State) Snapshot {
	return Snapshot{
		Generation: e.gen,
		Population: e.grid.Population(),
		State:      state,
		Grid:       e.grid.Clone(),
	}
}

func (e *Engine) loop(t Ticker, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-quit:
			return
		case <-t.C():
			e.tick()
		}
	}
}

// tick paints the current generation and advances to the next one.
func (e *Engine) tick() {
	e.mu.Lock()
	e.surface.Clear()
	e.grid.Each(e.surface.DrawCell)
	if p, ok := e.surface.(render.Presenter); ok {
		if err := p.Present(); err != nil {
			e.log.Printf("engine: present generation %d: %v", e.gen, err)
		}
	}
	e.grid = life.Next(e.grid)
	e.gen++
	var snap Snapshot
	if e.onTick != nil {
		snap = e.snapshotLocked(Running)
	}
	e.mu.Unlock()

	if e.onTick != nil {
		e.onTick(snap)
	}
}
