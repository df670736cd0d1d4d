package model

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/sheikhrachel/torus-life/utils"
)

func testConfig() utils.Config {
	c := utils.DefaultConfig()
	c.NumRows = 6
	c.NumCols = 8
	c.Workers = 1
	c.Seed = 7
	return c
}

func TestIterateZeroIterations(t *testing.T) {
	config := testConfig()
	config.NumIterations = 0
	config.ShowDensity = true
	config.Trace = true

	run, err := NewRun(config, utils.NewRNG(config.Seed, 0), nil)
	if err != nil {
		t.Fatal(err)
	}
	initial := run.Grid().Render("1", "0")
	density := run.Grid().Density()

	var buf bytes.Buffer
	if err = run.Iterate(&buf); err != nil {
		t.Fatal(err)
	}

	if n := run.History().Len(); n != 1 {
		t.Fatalf("recorded %d generations, want 1", n)
	}
	if got := run.AverageDensity(); got != density {
		t.Errorf("AverageDensity = %v, want initial density %v", got, density)
	}
	lines := strings.SplitN(buf.String(), "\n", 2)
	if lines[1] != initial {
		t.Errorf("trace = %q, want the initial grid %q", lines[1], initial)
	}
}

func TestIterateRecordsEveryGeneration(t *testing.T) {
	config := testConfig()
	config.NumIterations = 4

	run, err := NewRun(config, utils.NewRNG(config.Seed, 0), NewGridPool())
	if err != nil {
		t.Fatal(err)
	}

	// Replay the same trial by hand
	shadow, _ := NewRandomGrid(config.NumRows, config.NumCols, config.ProbabilityAlive, utils.NewRNG(config.Seed, 0))
	var want []float64
	for range config.NumIterations + 1 {
		want = append(want, shadow.Density())
		shadow.Advance(nil)
	}

	var buf bytes.Buffer
	if err = run.Iterate(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}

	got := run.History().Values()
	if len(got) != len(want) {
		t.Fatalf("recorded %d densities, want %d", len(got), len(want))
	}
	var sum float64
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("generation %d density = %v, want %v", i, got[i], want[i])
		}
		sum += want[i]
	}
	if avg := run.AverageDensity(); math.Abs(avg-sum/float64(len(want))) > 1e-12 {
		t.Errorf("AverageDensity = %v, want %v", avg, sum/float64(len(want)))
	}
}

func TestIterateOutput(t *testing.T) {
	config := testConfig()
	config.NumRows = 2
	config.NumCols = 2
	config.NumIterations = 1
	config.ProbabilityAlive = 1
	config.ShowDensity = true
	config.ShowGrid = true

	run, err := NewRun(config, utils.NewRNG(config.Seed, 0), nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err = run.Iterate(&buf); err != nil {
		t.Fatal(err)
	}

	border := strings.Repeat("-", 14) + "\n"
	want := "1\n" + border + "11\n11\n" + border +
		"0\n" + border + "00\n00\n" + border
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestNewRunRejectsBadDimensions(t *testing.T) {
	config := testConfig()
	config.NumRows = 0
	if _, err := NewRun(config, utils.NewRNG(1, 0), nil); err == nil {
		t.Fatal("NewRun succeeded with zero rows")
	}
}

func TestDensityHistoryEmpty(t *testing.T) {
	var h DensityHistory
	if h.Average() != 0 {
		t.Errorf("empty Average = %v, want 0", h.Average())
	}
	h.Record(0.25)
	h.Record(0.75)
	if h.Average() != 0.5 {
		t.Errorf("Average = %v, want 0.5", h.Average())
	}
}
