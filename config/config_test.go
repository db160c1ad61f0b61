package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aouyang1/go-regressor"
	"github.com/aouyang1/go-regressor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	testData := map[string]struct {
		contents string
		expected *Config
		err      error
	}{
		"defaults": {
			contents: "data: ice.json\n",
			expected: &Config{
				Data:     "ice.json",
				LogLevel: "info",
				Fit:      regressor.NewDefaultOptions(),
			},
		},
		"sgd": {
			contents: `
data: ice.json
predict: [2030, 2050]
model: model.json
trace: true
log_level: debug
fit:
  method: sgd
  descent_options:
    iterations: 500
    learning_rate: 0.01
    seed: 3
    parallelization: 2
`,
			expected: &Config{
				Data:     "ice.json",
				Predict:  []float64{2030, 2050},
				Model:    "model.json",
				Trace:    true,
				LogLevel: "debug",
				Fit: &regressor.Options{
					Method: regressor.MethodStochasticGradientDescent,
					DescentOptions: &models.DescentOptions{
						Iterations:      500,
						LearningRate:    0.01,
						Seed:            3,
						Parallelization: 2,
					},
				},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, td.contents))
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, cfg)
			assert.Nil(t, cfg.Validate())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "data: [unterminated\n"))
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	testData := map[string]struct {
		cfg *Config
		err error
	}{
		"no data": {
			cfg: NewDefault(),
			err: ErrNoDataPath,
		},
		"bad log level": {
			cfg: &Config{Data: "ice.json", LogLevel: "loud"},
			err: ErrUnknownLogLevel,
		},
		"unknown method": {
			cfg: &Config{Data: "ice.json", Fit: &regressor.Options{Method: "newton"}},
			err: regressor.ErrUnknownMethod,
		},
		"negative iterations": {
			cfg: &Config{
				Data: "ice.json",
				Fit: &regressor.Options{
					Method:         regressor.MethodGradientDescent,
					DescentOptions: &models.DescentOptions{Iterations: -1, LearningRate: 0.1},
				},
			},
			err: models.ErrInvalidHyperparameter,
		},
		"nil fit defaults": {
			cfg: &Config{Data: "ice.json"},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := td.cfg.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, regressor.MethodClosedForm, td.cfg.Fit.Method)
		})
	}
}

func TestLevel(t *testing.T) {
	testData := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, expected := range testData {
		t.Run(name, func(t *testing.T) {
			cfg := &Config{LogLevel: name}
			lvl, err := cfg.Level()
			require.Nil(t, err)
			assert.Equal(t, expected, lvl)
		})
	}
}
