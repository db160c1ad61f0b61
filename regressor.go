// Package regressor fits a simple linear regression of ice cover duration against winter year
// using a closed form least squares solution, batch gradient descent, or stochastic gradient
// descent, and predicts the ice cover of future winters.
package regressor

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/aouyang1/go-regressor/dataset"
	"github.com/aouyang1/go-regressor/models"
)

var (
	ErrNotFit           = errors.New("regressor has not been fit")
	ErrNoOptionsInModel = errors.New("no options set in model")
	ErrNoClosedForm     = errors.New("no closed form solution available")
)

// Regressor fits a line to a dataset and can be used to predict y for new x values
type Regressor struct {
	opt *Options
	rnd *rand.Rand

	trainingData *dataset.Dataset
	fit          *models.Fit
	closedForm   *models.Params
	scores       *Scores
}

// New creates a new instance of a Regressor using the provided options. If no options are
// provided a default is used.
func New(opt *Options) (*Regressor, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Regressor{
		opt: opt,
	}, nil
}

// NewFromModel creates a new instance of Regressor from a pre-existing model. This should be
// generated from a previous call to Model().
func NewFromModel(model Model) (*Regressor, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	opt, err := model.Options.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid model options, %w", err)
	}
	return &Regressor{
		opt: opt,
		fit: &models.Fit{
			Params: model.Params,
			MSE:    model.MSE,
			Scaler: model.Scaler,
		},
		closedForm: model.ClosedForm,
		scores:     model.Scores,
	}, nil
}

// SetRand sets the random source stochastic gradient descent samples with. Without one a source
// seeded from the descent options is used on every fit.
func (r *Regressor) SetRand(rnd *rand.Rand) {
	r.rnd = rnd
}

// Fit fits the configured method against the dataset. The closed form solution is always
// computed as well since predictions use it.
func (r *Regressor) Fit(ds *dataset.Dataset) error {
	if ds.Len() == 0 {
		return fmt.Errorf("unable to fit regressor, %w", dataset.ErrEmptyDataset)
	}
	td := ds.Copy()

	fit, err := r.fitMethod(td)
	if err != nil {
		return fmt.Errorf("unable to fit %s, %w", r.opt.Method, err)
	}
	r.trainingData = td
	r.fit = fit

	r.closedForm = nil
	switch r.opt.Method {
	case MethodClosedForm:
		p := fit.Params
		r.closedForm = &p
	default:
		cf, err := models.ClosedForm(td)
		switch {
		case errors.Is(err, models.ErrDegenerateVariance):
			slog.Warn("no closed form solution for predictions", "method", r.opt.Method, "error", err.Error())
		case err != nil:
			return fmt.Errorf("unable to compute closed form solution, %w", err)
		default:
			r.closedForm = &cf.Params
		}
	}

	predicted, err := r.PredictFit(td.X)
	if err != nil {
		return err
	}
	r.scores, err = NewScores(predicted, td.Y)
	if err != nil {
		return fmt.Errorf("unable to score fit, %w", err)
	}

	slog.Debug("fit regressor",
		"method", r.opt.Method,
		"observations", td.Len(),
		"intercept", fit.Params.Intercept,
		"slope", fit.Params.Slope,
		"mse", fit.MSE,
	)
	return nil
}

func (r *Regressor) fitMethod(ds *dataset.Dataset) (*models.Fit, error) {
	switch r.opt.Method {
	case MethodClosedForm:
		return models.ClosedForm(ds)
	case MethodQR:
		return models.LeastSquaresQR(ds)
	case MethodGradientDescent:
		return models.BatchGradientDescent(ds, r.opt.DescentOptions)
	case MethodNormalizedGradientDescent:
		return models.NormalizedGradientDescent(ds, r.opt.DescentOptions)
	case MethodStochasticGradientDescent:
		return models.StochasticGradientDescent(ds, r.opt.DescentOptions, r.rnd)
	default:
		return nil, fmt.Errorf("%q, %w", r.opt.Method, ErrUnknownMethod)
	}
}

// Predict returns the closed form prediction b0 + b1*x for the given x, typically a winter year.
func (r *Regressor) Predict(x float64) (float64, error) {
	if r.fit == nil {
		return 0, ErrNotFit
	}
	if r.closedForm == nil {
		return 0, ErrNoClosedForm
	}
	return r.closedForm.Predict(x), nil
}

// PredictFit predicts every x in raw units with the params of the configured method
func (r *Regressor) PredictFit(x []float64) ([]float64, error) {
	if r.fit == nil {
		return nil, ErrNotFit
	}
	p := r.fit.RawParams()
	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = p.Predict(v)
	}
	return res, nil
}

// Params returns the params as fit. Normalized methods return params in the normalized x space.
func (r *Regressor) Params() models.Params {
	if r.fit == nil {
		return models.Params{}
	}
	return r.fit.Params
}

// RawParams returns the fit params in the raw x space
func (r *Regressor) RawParams() models.Params {
	if r.fit == nil {
		return models.Params{}
	}
	return r.fit.RawParams()
}

// ClosedFormParams returns the closed form solution predictions are made with
func (r *Regressor) ClosedFormParams() (models.Params, error) {
	if r.fit == nil {
		return models.Params{}, ErrNotFit
	}
	if r.closedForm == nil {
		return models.Params{}, ErrNoClosedForm
	}
	return *r.closedForm, nil
}

// MSE returns the mean squared error of the fit over the data it was fit against
func (r *Regressor) MSE() float64 {
	if r.fit == nil {
		return 0
	}
	return r.fit.MSE
}

// Trace returns the per iteration records of an iterative method
func (r *Regressor) Trace() models.Trace {
	if r.fit == nil {
		return nil
	}
	return r.fit.Trace
}

// Scaler returns the normalization applied to x before fitting, nil if none was applied
func (r *Regressor) Scaler() *dataset.Scaler {
	if r.fit == nil {
		return nil
	}
	return r.fit.Scaler
}

// Scores returns the fit scores against the raw training data
func (r *Regressor) Scores() *Scores {
	return r.scores
}

// TrainingData returns the training data used to fit the current regressor
func (r *Regressor) TrainingData() *dataset.Dataset {
	return r.trainingData
}

// Model generates a serializeable representation of the fit. This can be used to initialize a
// new Regressor for immediate predictions skipping the training step.
func (r *Regressor) Model() (Model, error) {
	if r.fit == nil {
		return Model{}, ErrNotFit
	}
	return Model{
		Options:    r.opt,
		Params:     r.fit.Params,
		MSE:        r.fit.MSE,
		Scaler:     r.fit.Scaler,
		ClosedForm: r.closedForm,
		Scores:     r.scores,
	}, nil
}
