package model

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/utils"
)

// RunTrials runs config.NumTrials independent trials and returns the average
// density of each, in trial order.
//
// Trial i draws from its own stream utils.NewRNG(config.Seed, i), so results
// do not depend on config.Workers. Output of each trial is buffered and
// written to w in trial order.
func RunTrials(ctx context.Context, config utils.Config, w io.Writer) ([]float64, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[RunTrials]")
	}

	var (
		pool     = NewGridPool()
		averages = make([]float64, config.NumTrials)
		outputs  = make([]bytes.Buffer, config.NumTrials)
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(config.Workers)

	for i := range config.NumTrials {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			out := &outputs[i]
			fmt.Fprintf(out, "trial %d\n", i)

			run, err := NewRun(config, utils.NewRNG(config.Seed, uint64(i)), pool)
			if err != nil {
				return errors.Wrapf(err, "[RunTrials] trial %d", i)
			}
			if err = run.Iterate(out); err != nil {
				return errors.Wrapf(err, "[RunTrials] trial %d", i)
			}
			averages[i] = run.AverageDensity()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "[RunTrials]")
	}

	for i := range outputs {
		if _, err := outputs[i].WriteTo(w); err != nil {
			return nil, errors.Wrap(err, "[RunTrials] failed to write trial output")
		}
	}

	return averages, nil
}
