package model

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/utils"
)

// Run is one trial: a freshly randomized grid iterated for a fixed number
// of generations while its densities are recorded
type Run struct {
	config   utils.Config
	grid     *Grid
	pool     *GridPool
	renderer *TerminalRenderer
	history  DensityHistory
}

// NewRun randomizes a grid from config using rng. pool may be nil.
func NewRun(config utils.Config, rng *rand.Rand, pool *GridPool) (*Run, error) {
	grid, err := NewRandomGrid(config.NumRows, config.NumCols, config.ProbabilityAlive, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRun]")
	}
	return &Run{
		config:   config,
		grid:     grid,
		pool:     pool,
		renderer: &TerminalRenderer{Alive: config.DisplayAlive, Dead: config.DisplayDead},
	}, nil
}

// Grid returns the current generation
func (r *Run) Grid() *Grid {
	return r.grid
}

// History returns the densities recorded so far
func (r *Run) History() *DensityHistory {
	return &r.history
}

// Iterate visits NumIterations+1 generations, the initial one included. Each
// visit records the density, writes whatever output the config asks for,
// then advances the grid.
func (r *Run) Iterate(w io.Writer) error {
	for range r.config.NumIterations + 1 {
		density := r.grid.Density()
		r.history.Record(density)

		if r.config.ShowDensity {
			if _, err := fmt.Fprintln(w, strconv.FormatFloat(density, 'f', -1, 64)); err != nil {
				return errors.Wrap(err, "[Iterate] failed to write density")
			}
		}
		if r.config.ShowGrid {
			if err := r.renderer.DisplayBordered(w, r.grid); err != nil {
				return errors.Wrap(err, "[Iterate] failed to write grid")
			}
		}
		if r.config.Trace {
			if err := r.renderer.Display(w, r.grid); err != nil {
				return errors.Wrap(err, "[Iterate] failed to write trace")
			}
		}

		r.grid.Advance(r.pool)
	}
	return nil
}

// AverageDensity returns the mean density over the visited generations
func (r *Run) AverageDensity() float64 {
	return r.history.Average()
}
