package utils

import (
	"encoding/json"
	"flag"
	"math"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// Config holds the configuration for a set of trials
type Config struct {
	NumCols          int     `json:"num_cols"`
	NumRows          int     `json:"num_rows"`
	NumIterations    int     `json:"num_iterations"`
	ProbabilityAlive float64 `json:"probability_alive"`
	DisplayAlive     string  `json:"display_alive"`
	DisplayDead      string  `json:"display_dead"`
	ShowDensity      bool    `json:"show_density"`
	ShowGrid         bool    `json:"show_grid"`
	NumTrials        int     `json:"num_trials"`
	Trace            bool    `json:"trace"`
	Seed             int64   `json:"seed"` // 0 means derive one from the clock
	Workers          int     `json:"workers"`
}

// DefaultConfig returns the defaults of the density experiment
func DefaultConfig() Config {
	return Config{
		NumCols:          20,
		NumRows:          20,
		NumIterations:    2,
		ProbabilityAlive: 0.375,
		DisplayAlive:     "1",
		DisplayDead:      "0",
		NumTrials:        20,
		Workers:          runtime.NumCPU(),
	}
}

// LoadConfig loads configuration from JSON file, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet. Short and long
// names share a destination, so whichever is given last wins.
func (c *Config) Bind(fs *flag.FlagSet) {
	for _, name := range []string{"n", "num-cols"} {
		fs.IntVar(&c.NumCols, name, c.NumCols, "the number of cols")
	}
	for _, name := range []string{"m", "num-rows"} {
		fs.IntVar(&c.NumRows, name, c.NumRows, "the number of rows")
	}
	for _, name := range []string{"i", "num-iterations"} {
		fs.IntVar(&c.NumIterations, name, c.NumIterations, "the number of iterations")
	}
	for _, name := range []string{"p", "probability-alive"} {
		fs.Float64Var(&c.ProbabilityAlive, name, c.ProbabilityAlive, "probability a cell is alive at start")
	}
	for _, name := range []string{"a", "display-alive"} {
		fs.StringVar(&c.DisplayAlive, name, c.DisplayAlive, "the character for alive")
	}
	for _, name := range []string{"d", "display-dead"} {
		fs.StringVar(&c.DisplayDead, name, c.DisplayDead, "the character for dead")
	}
	fs.BoolVar(&c.ShowDensity, "density", c.ShowDensity, "display the density")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "display the grid")
	fs.IntVar(&c.NumTrials, "trials", c.NumTrials, "the number of independent trials")
	fs.BoolVar(&c.Trace, "trace", c.Trace, "run a single trial and print the bare grid each generation")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source (0 derives one from the clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of trials simulated concurrently")
}

// Validate reports the first invalid option
func (c Config) Validate() error {
	switch {
	case c.NumRows < 1:
		return errors.Errorf("[Validate] num rows must be positive, got %d", c.NumRows)
	case c.NumCols < 1:
		return errors.Errorf("[Validate] num cols must be positive, got %d", c.NumCols)
	case c.NumIterations < 0:
		return errors.Errorf("[Validate] num iterations must not be negative, got %d", c.NumIterations)
	case math.IsNaN(c.ProbabilityAlive) || c.ProbabilityAlive < 0 || c.ProbabilityAlive > 1:
		return errors.Errorf("[Validate] probability alive must be within [0, 1], got %v", c.ProbabilityAlive)
	case c.NumTrials < 1:
		return errors.Errorf("[Validate] num trials must be positive, got %d", c.NumTrials)
	case c.Workers < 1:
		return errors.Errorf("[Validate] workers must be positive, got %d", c.Workers)
	}
	return nil
}
