package models

const (
	DefaultIterations   = 100
	DefaultLearningRate = 0.1
)

// DescentOptions represents input options to run batch or stochastic gradient descent
type DescentOptions struct {
	// Iterations is the number of parameter updates performed. 0 leaves the params at their
	// initial value of (0, 0).
	Iterations int `json:"iterations" yaml:"iterations"`

	// LearningRate scales every gradient step. Must be positive.
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`

	// Seed initializes the random source stochastic gradient descent samples observations with
	// when no source is provided.
	Seed uint64 `json:"seed" yaml:"seed"`

	// Parallelization sets how many chunks of the dataset the loss and gradient are evaluated
	// over concurrently. 0 and 1 run sequentially.
	Parallelization int `json:"parallelization" yaml:"parallelization"`

	// Reporter is called with every record as it is produced
	Reporter Reporter `json:"-" yaml:"-"`
}

// NewDefaultDescentOptions returns a default set of gradient descent options
func NewDefaultDescentOptions() *DescentOptions {
	return &DescentOptions{
		Iterations:   DefaultIterations,
		LearningRate: DefaultLearningRate,
	}
}

// Validate runs basic validation on the descent options
func (d *DescentOptions) Validate() (*DescentOptions, error) {
	if d == nil {
		d = NewDefaultDescentOptions()
	}

	if d.Iterations < 0 {
		return nil, ErrNegativeIterations
	}
	if !(d.LearningRate > 0) {
		return nil, ErrNonPositiveLearningRate
	}
	if d.Parallelization < 0 {
		return nil, ErrNegativeParallelization
	}
	return d, nil
}

func (d *DescentOptions) report(r Record) {
	if d.Reporter != nil {
		d.Reporter(r)
	}
}
