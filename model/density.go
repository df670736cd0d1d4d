package model

import "github.com/montanaflynn/stats"

// DensityHistory records the density of each visited generation in order
type DensityHistory struct {
	values []float64
}

func (h *DensityHistory) Record(density float64) {
	h.values = append(h.values, density)
}

func (h *DensityHistory) Len() int {
	return len(h.values)
}

// Values returns a copy of the recorded densities
func (h *DensityHistory) Values() []float64 {
	return append([]float64(nil), h.values...)
}

// Average returns the arithmetic mean of the history, 0 when empty
func (h *DensityHistory) Average() float64 {
	mean, err := stats.Mean(h.values)
	if err != nil {
		return 0
	}
	return mean
}
