package utils

import (
	"io"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Summary holds descriptive statistics of per-trial average densities
type Summary struct {
	Number            int       `yaml:"number"`
	Sum               float64   `yaml:"sum"`
	Variance          float64   `yaml:"variance"`
	StandardDeviation float64   `yaml:"standard_deviation"`
	Min               float64   `yaml:"min"`
	Max               float64   `yaml:"max"`
	Mean              float64   `yaml:"mean"`
	Mode              []float64 `yaml:"mode,flow"`
	Median            float64   `yaml:"median"`
	Range             float64   `yaml:"range"`
	Q1                float64   `yaml:"q1"`
	Q2                float64   `yaml:"q2"`
	Q3                float64   `yaml:"q3"`
}

// Summarize computes the descriptive statistics of values.
// Variance and standard deviation are population statistics.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, errors.New("[Summarize] no values to summarize")
	}

	var (
		data = stats.Float64Data(values)
		s    = Summary{Number: len(values)}
		err  error
	)

	if s.Sum, err = data.Sum(); err != nil {
		return Summary{}, errors.Wrap(err, "[Summarize] sum")
	}
	if s.Variance, err = data.PopulationVariance(); err != nil {
		return Summary{}, errors.Wrap(err, "[Summarize] variance")
	}
	if s.StandardDeviation, err = data.StandardDeviationPopulation(); err != nil {
		return Summary{}, errors.Wrap(err, "[Summarize] standard deviation")
	}
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, errors.Wrap(err, "[Summarize] min")
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, errors.Wrap(err, "[Summarize] max")
	}
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, errors.Wrap(err, "[Summarize] mean")
	}
	if s.Mode, err = data.Mode(); err != nil {
		return Summary{}, errors.Wrap(err, "[Summarize] mode")
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, errors.Wrap(err, "[Summarize] median")
	}
	s.Range = s.Max - s.Min

	// Quartiles need at least two values to split into halves
	if len(values) > 1 {
		q, err := data.Quartile(data)
		if err != nil {
			return Summary{}, errors.Wrap(err, "[Summarize] quartiles")
		}
		s.Q1, s.Q2, s.Q3 = q.Q1, q.Q2, q.Q3
	} else {
		s.Q1, s.Q2, s.Q3 = s.Median, s.Median, s.Median
	}

	return s, nil
}

// WriteYAML encodes the summary as a YAML document
func (s Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "[WriteYAML] failed to encode summary")
	}
	return errors.Wrap(enc.Close(), "[WriteYAML] failed to flush summary")
}
