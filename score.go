package regressor

import (
	"fmt"

	"github.com/aouyang1/go-regressor/stats"
)

// Scores summarizes how well a fit predicts its training data
type Scores struct {
	MSE  float64 `json:"mse"`  // mean squared error
	MAPE float64 `json:"mape"` // mean absolute percent error
	R2   float64 `json:"r2"`   // coefficient of determination
}

func NewScores(predicted, actual []float64) (*Scores, error) {
	mse, err := stats.MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := stats.MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute percent error, %w", err)
	}
	r2, err := stats.R2(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute coefficient of determination, %w", err)
	}
	return &Scores{
		MSE:  mse,
		MAPE: mape,
		R2:   r2,
	}, nil
}
