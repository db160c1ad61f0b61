// Command regressor fits a line to yearly ice cover observations and predicts future winters.
//
//	regressor -data ice.json -method gd-normalized -iterations 200 -eta 0.1 -predict 2030
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aouyang1/go-regressor"
	"github.com/aouyang1/go-regressor/config"
	"github.com/aouyang1/go-regressor/dataset"
	"github.com/aouyang1/go-regressor/models"
)

type flags struct {
	configPath string
	data       string
	method     string
	iterations int
	eta        float64
	seed       uint64
	parallel   int
	predict    yearList
	model      string
	trace      bool
	logLevel   string
}

func main() {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "Path to YAML run config")
	flag.StringVar(&f.data, "data", "", "Path to JSON dataset of year/days observations")
	flag.StringVar(&f.method, "method", string(regressor.MethodClosedForm), "Fit method: closed, qr, gd, gd-normalized, sgd")
	flag.IntVar(&f.iterations, "iterations", models.DefaultIterations, "Number of descent iterations")
	flag.Float64Var(&f.eta, "eta", models.DefaultLearningRate, "Descent learning rate")
	flag.Uint64Var(&f.seed, "seed", 0, "Stochastic gradient descent seed")
	flag.IntVar(&f.parallel, "parallel", 1, "Number of chunks loss and gradient sums are split into")
	flag.Var(&f.predict, "predict", "Comma separated years to predict")
	flag.StringVar(&f.model, "json", "", "Path to write the fitted model as JSON")
	flag.BoolVar(&f.trace, "trace", true, "Print every descent iteration")
	flag.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := buildConfig(f, setFlags())
	if err == nil {
		err = run(cfg, os.Stdout)
	}
	if err != nil {
		slog.Error("regressor failed", "error", err.Error())
		os.Exit(1)
	}
}

func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// buildConfig starts from the YAML config, if any, and applies every flag set on the command
// line on top of it
func buildConfig(f flags, set map[string]bool) (*config.Config, error) {
	cfg := config.NewDefault()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if cfg.Fit == nil {
		cfg.Fit = regressor.NewDefaultOptions()
	}
	if cfg.Fit.DescentOptions == nil {
		cfg.Fit.DescentOptions = models.NewDefaultDescentOptions()
	}
	if set["data"] || cfg.Data == "" {
		cfg.Data = f.data
	}
	if set["method"] {
		cfg.Fit.Method = regressor.Method(f.method)
	}
	if set["iterations"] {
		cfg.Fit.DescentOptions.Iterations = f.iterations
	}
	if set["eta"] {
		cfg.Fit.DescentOptions.LearningRate = f.eta
	}
	if set["seed"] {
		cfg.Fit.DescentOptions.Seed = f.seed
	}
	if set["parallel"] {
		cfg.Fit.DescentOptions.Parallelization = f.parallel
	}
	if set["predict"] {
		cfg.Predict = f.predict
	}
	if set["json"] {
		cfg.Model = f.model
	}
	if set["trace"] || f.configPath == "" {
		cfg.Trace = f.trace
	}
	if set["log-level"] {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return cfg, nil
}

func run(cfg *config.Config, w io.Writer) error {
	ds, err := loadDataset(cfg.Data)
	if err != nil {
		return err
	}
	slog.Info("loaded dataset", "path", cfg.Data, "observations", ds.Len())

	summary, err := dataset.Summarize(ds)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d\n%.2f\n%.2f\n", summary.Count, summary.Mean, summary.StdDev)

	reg, err := regressor.New(cfg.Fit)
	if err != nil {
		return err
	}
	if err := reg.Fit(ds); err != nil {
		return err
	}

	if cfg.Trace && cfg.Fit.Method.Iterative() {
		if err := reg.Trace().Print(w); err != nil {
			return err
		}
	}

	m, err := reg.Model()
	if err != nil {
		return err
	}
	if err := m.TablePrint(w, "", "  "); err != nil {
		return err
	}

	for _, year := range cfg.Predict {
		y, err := reg.Predict(year)
		if err != nil {
			return fmt.Errorf("unable to predict %.0f, %w", year, err)
		}
		fmt.Fprintf(w, "%.2f\n", y)
	}

	if cfg.Model != "" {
		if err := writeJSON(cfg.Model, m); err != nil {
			return fmt.Errorf("unable to write model, %w", err)
		}
		slog.Info("wrote model", "path", cfg.Model)
	}
	return nil
}
