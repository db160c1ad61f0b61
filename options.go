package regressor

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-regressor/models"
)

var ErrUnknownMethod = errors.New("unknown fit method")

// Method selects the strategy used to fit the line
type Method string

const (
	MethodClosedForm                Method = "closed"
	MethodQR                        Method = "qr"
	MethodGradientDescent           Method = "gd"
	MethodNormalizedGradientDescent Method = "gd-normalized"
	MethodStochasticGradientDescent Method = "sgd"
)

// Methods lists every supported fit method
var Methods = []Method{
	MethodClosedForm,
	MethodQR,
	MethodGradientDescent,
	MethodNormalizedGradientDescent,
	MethodStochasticGradientDescent,
}

func (m Method) Valid() bool {
	for _, method := range Methods {
		if m == method {
			return true
		}
	}
	return false
}

// Iterative returns true for methods that produce a trace
func (m Method) Iterative() bool {
	switch m {
	case MethodGradientDescent, MethodNormalizedGradientDescent, MethodStochasticGradientDescent:
		return true
	default:
		return false
	}
}

// Options configures how a Regressor fits
type Options struct {
	Method         Method                 `json:"method" yaml:"method"`
	DescentOptions *models.DescentOptions `json:"descent_options,omitempty" yaml:"descent_options"`
}

// NewDefaultOptions fits with the closed form solution
func NewDefaultOptions() *Options {
	return &Options{
		Method:         MethodClosedForm,
		DescentOptions: models.NewDefaultDescentOptions(),
	}
}

// Validate runs basic validation on the options filling in defaults where unset
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}
	if o.Method == "" {
		o.Method = MethodClosedForm
	}
	if !o.Method.Valid() {
		return nil, fmt.Errorf("%q, %w", o.Method, ErrUnknownMethod)
	}

	descentOpt, err := o.DescentOptions.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid descent options, %w", err)
	}
	o.DescentOptions = descentOpt
	return o, nil
}
