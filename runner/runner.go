// Package runner wires one gradstats run: generate the dataset, reduce it,
// print the operator reports and export the dashboard document.
package runner

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gradstats/cohort"
	"github.com/katalvlaran/gradstats/config"
	"github.com/katalvlaran/gradstats/dashboard"
	"github.com/katalvlaran/gradstats/insight"
)

// App holds the collaborators of a run.
type App struct {
	// Out receives the textual reports.
	Out io.Writer
	// Log receives progress and best-effort failures.
	Log log.FieldLogger
	// HTTPClient fetches background art; nil means http.DefaultClient.
	HTTPClient *http.Client
}

// New returns an App writing to stdout and the standard logrus logger.
func New() *App {
	return &App{
		Out: os.Stdout,
		Log: log.StandardLogger(),
	}
}

// Result is everything one run produced.
type Result struct {
	Dataset     cohort.Dataset
	Summary     insight.Summary
	Correlation *insight.Correlation
	Dashboard   dashboard.Dashboard
}

// Run executes one run. Generation and reduction errors are fatal and
// returned; a failed background fetch is logged and the run continues.
func (a *App) Run(ctx context.Context, cfg config.Config) (Result, error) {
	logger := a.Log.WithFields(log.Fields{
		"start": cfg.StartYear,
		"end":   cfg.EndYear,
		"seed":  cfg.Seed,
	})

	ds, err := cohort.Generate(cfg.StartYear, cfg.EndYear,
		cohort.WithSeed(cfg.Seed),
		cohort.WithParams(cfg.Generator.Params()),
	)
	if err != nil {
		return Result{}, err
	}
	logger.WithField("years", ds.Len()).Info("generated dataset")

	sum, err := insight.Reduce(ds)
	if err != nil {
		return Result{}, err
	}

	var corr *insight.Correlation
	if c, err := insight.Correlate(ds); err != nil {
		logger.WithError(err).Info("skipping correlation heatmap")
	} else {
		corr = &c
	}

	if err := a.printReports(ds, sum, cfg.Output); err != nil {
		return Result{}, err
	}

	opts := []dashboard.Option{dashboard.WithFooter(cfg.Output.Footer)}
	if cfg.Background.Enabled {
		if bg := a.fetchBackground(ctx, cfg.Background, logger); bg != nil {
			opts = append(opts, dashboard.WithBackground(bg))
		}
	}

	d, err := dashboard.Build(ds, sum, corr, opts...)
	if err != nil {
		return Result{}, err
	}

	if cfg.Output.Path != "" {
		if err := exportFile(cfg.Output.Path, d, cfg.Output.Format); err != nil {
			return Result{}, err
		}
		logger.WithField("path", cfg.Output.Path).Info("dashboard written")
	}

	return Result{Dataset: ds, Summary: sum, Correlation: corr, Dashboard: d}, nil
}

func (a *App) printReports(ds cohort.Dataset, sum insight.Summary, out config.OutputConfig) error {
	fmt.Fprintln(a.Out, "\nPreview of the data:")
	if err := dashboard.WritePreview(a.Out, ds, out.PreviewRows); err != nil {
		return err
	}

	if out.Describe {
		desc, err := insight.Describe(ds)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "\nSummary Statistics:")
		if err := dashboard.WriteDescription(a.Out, desc); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.Out)

	return dashboard.WriteInsights(a.Out, sum)
}

// fetchBackground never fails the run: errors are logged and nil returned.
func (a *App) fetchBackground(ctx context.Context, bc config.BackgroundConfig, logger log.FieldLogger) *dashboard.Background {
	ctx, cancel := context.WithTimeout(ctx, bc.Timeout)
	defer cancel()

	bg, err := dashboard.FetchBackground(ctx, a.HTTPClient, bc.URL, bc.MaxBytes)
	if err != nil {
		logger.WithError(err).Warn("could not load background image")
		return nil
	}

	return bg
}

func exportFile(path string, d dashboard.Dashboard, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return dashboard.Export(f, d, format)
}
