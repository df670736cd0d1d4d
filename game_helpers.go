package main

import (
	"context"
	"flag"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// parseConfig builds the configuration from args: defaults, then the JSON
// file named by -config, then every explicitly set flag
func parseConfig(args []string, stderr io.Writer) (utils.Config, error) {
	fs := flag.NewFlagSet("torus-life", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "JSON configuration file")
	flags := utils.DefaultConfig()
	flags.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return flags, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}

	config := flags
	if *configFile != "" {
		loaded, err := utils.LoadConfig(*configFile)
		if err != nil {
			return loaded, err
		}
		config = loaded

		// Re-apply explicitly set flags over the file
		overlay := flag.NewFlagSet("overlay", flag.ContinueOnError)
		config.Bind(overlay)
		var overlayErr error
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "config" || overlayErr != nil {
				return
			}
			overlayErr = overlay.Set(f.Name, f.Value.String())
		})
		if overlayErr != nil {
			return config, errors.Wrap(overlayErr, "[parseConfig] failed to apply flags")
		}
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// runTrace runs a single trial and writes the bare grid of every generation
func runTrace(config utils.Config, w io.Writer) error {
	config.Trace = true
	run, err := model.NewRun(config, utils.NewRNG(config.Seed, 0), model.NewGridPool())
	if err != nil {
		return err
	}
	return run.Iterate(w)
}

// runExperiment runs every trial and writes the summary of their averages
func runExperiment(ctx context.Context, config utils.Config, w io.Writer) error {
	averages, err := model.RunTrials(ctx, config, w)
	if err != nil {
		return err
	}

	summary, err := utils.Summarize(averages)
	if err != nil {
		return err
	}
	return summary.WriteYAML(w)
}
