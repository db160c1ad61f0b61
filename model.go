package regressor

import (
	"fmt"
	"io"

	"github.com/aouyang1/go-regressor/dataset"
	"github.com/aouyang1/go-regressor/models"
)

// Model represents a serializeable format of a fit storing the options, params and scores
type Model struct {
	Options    *Options        `json:"options"`
	Params     models.Params   `json:"params"`
	MSE        float64         `json:"mse"`
	Scaler     *dataset.Scaler `json:"scaler,omitempty"`
	ClosedForm *models.Params  `json:"closed_form,omitempty"`
	Scores     *Scores         `json:"scores,omitempty"`
}

// Eq returns the fit represented as y ~ b0 + b1*x in the raw x space
func (m Model) Eq() string {
	p := m.Params.Denormalize(m.Scaler)
	return fmt.Sprintf("y ~ %.4f %+.4f*x", p.Intercept, p.Slope)
}

func (m Model) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sRegression:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}

	if m.Options != nil {
		if _, err := fmt.Fprintf(w, "%s%sMethod: %s\n", prefix, indentExpand(indent, 1), m.Options.Method); err != nil {
			return err
		}
		if m.Options.Method.Iterative() && m.Options.DescentOptions != nil {
			if _, err := fmt.Fprintf(w, "%s%sIterations: %d    Learning Rate: %g\n",
				prefix, indentExpand(indent, 1),
				m.Options.DescentOptions.Iterations,
				m.Options.DescentOptions.LearningRate,
			); err != nil {
				return err
			}
		}
	}

	if m.Scaler != nil {
		if _, err := fmt.Fprintf(w, "%s%sNormalization: mean %.2f, std dev %.2f\n",
			prefix, indentExpand(indent, 1), m.Scaler.Mean, m.Scaler.StdDev); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s%sParams: b0 %.2f, b1 %.2f\n",
		prefix, indentExpand(indent, 1), m.Params.Intercept, m.Params.Slope); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sEquation: %s\n", prefix, indentExpand(indent, 1), m.Eq()); err != nil {
		return err
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "%s%sScores:\n", prefix, indentExpand(indent, 0)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			prefix, indentExpand(indent, 1),
			m.Scores.MAPE,
			m.Scores.MSE,
			m.Scores.R2,
		); err != nil {
			return err
		}
	}
	return nil
}
