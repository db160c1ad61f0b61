package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aouyang1/go-regressor"
	"github.com/aouyang1/go-regressor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func defaultFlags() flags {
	return flags{
		method:     string(regressor.MethodClosedForm),
		iterations: models.DefaultIterations,
		eta:        models.DefaultLearningRate,
		parallel:   1,
		trace:      true,
		logLevel:   "info",
	}
}

func TestYearList(t *testing.T) {
	var y yearList
	require.Nil(t, y.Set("2030, 2050,"))
	assert.Equal(t, yearList{2030, 2050}, y)
	assert.Equal(t, "2030,2050", y.String())

	assert.NotNil(t, y.Set("20x0"))
}

func TestBuildConfig(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", `
data: from-config.json
trace: false
fit:
  method: gd
  descent_options:
    iterations: 20
    learning_rate: 0.01
`)

	testData := map[string]struct {
		flags      func(f *flags)
		set        []string
		data       string
		method     regressor.Method
		iterations int
		eta        float64
		trace      bool
		err        error
	}{
		"flags only": {
			flags: func(f *flags) {
				f.data = "ice.json"
				f.method = "sgd"
				f.iterations = 5
			},
			set:        []string{"data", "method", "iterations"},
			data:       "ice.json",
			method:     regressor.MethodStochasticGradientDescent,
			iterations: 5,
			eta:        models.DefaultLearningRate,
			trace:      true,
		},
		"config only": {
			flags: func(f *flags) {
				f.configPath = cfgPath
			},
			set:        []string{"config"},
			data:       "from-config.json",
			method:     regressor.MethodGradientDescent,
			iterations: 20,
			eta:        0.01,
			trace:      false,
		},
		"flags override config": {
			flags: func(f *flags) {
				f.configPath = cfgPath
				f.eta = 0.5
				f.data = "ice.json"
			},
			set:        []string{"config", "eta", "data"},
			data:       "ice.json",
			method:     regressor.MethodGradientDescent,
			iterations: 20,
			eta:        0.5,
			trace:      false,
		},
		"invalid learning rate": {
			flags: func(f *flags) {
				f.data = "ice.json"
				f.eta = 0
			},
			set: []string{"data", "eta"},
			err: models.ErrNonPositiveLearningRate,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			f := defaultFlags()
			td.flags(&f)
			set := make(map[string]bool)
			for _, s := range td.set {
				set[s] = true
			}

			cfg, err := buildConfig(f, set)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.data, cfg.Data)
			assert.Equal(t, td.method, cfg.Fit.Method)
			assert.Equal(t, td.iterations, cfg.Fit.DescentOptions.Iterations)
			assert.Equal(t, td.eta, cfg.Fit.DescentOptions.LearningRate)
			assert.Equal(t, td.trace, cfg.Trace)
		})
	}
}

func TestRun(t *testing.T) {
	dataPath := writeFile(t, "ice.json", `[
		{"year": 2000, "days": 30},
		{"year": 2001, "days": 40},
		{"year": 2002, "days": 50}
	]`)
	modelPath := filepath.Join(t.TempDir(), "model.json")

	f := defaultFlags()
	f.data = dataPath
	f.predict = yearList{2003}
	f.model = modelPath
	cfg, err := buildConfig(f, map[string]bool{"data": true, "predict": true, "json": true})
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, run(cfg, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, []string{"3", "40.00", "10.00"}, lines[:3])
	assert.Contains(t, buf.String(), "Params: b0 -19970.00, b1 10.00")
	assert.Equal(t, "60.00", lines[len(lines)-1])

	_, err = os.Stat(modelPath)
	assert.Nil(t, err)
}

func TestRunTrace(t *testing.T) {
	dataPath := writeFile(t, "ice.json", `[
		{"year": 1, "days": 1},
		{"year": 2, "days": 2},
		{"year": 3, "days": 2}
	]`)

	f := defaultFlags()
	f.data = dataPath
	f.method = string(regressor.MethodGradientDescent)
	f.iterations = 1
	cfg, err := buildConfig(f, map[string]bool{"data": true, "method": true, "iterations": true})
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, run(cfg, &buf))
	assert.Contains(t, buf.String(), "\n1 0.33 0.73 0.11\n")
}

func TestRunMissingDataset(t *testing.T) {
	f := defaultFlags()
	f.data = filepath.Join(t.TempDir(), "missing.json")
	cfg, err := buildConfig(f, map[string]bool{"data": true})
	require.Nil(t, err)

	assert.ErrorIs(t, run(cfg, &bytes.Buffer{}), os.ErrNotExist)
}
