package models

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-regressor/dataset"
)

var (
	ErrEmptyDataset       = dataset.ErrEmptyDataset
	ErrDegenerateVariance = dataset.ErrDegenerateVariance

	ErrInvalidHyperparameter   = errors.New("invalid hyperparameter")
	ErrNegativeIterations      = fmt.Errorf("negative iterations, %w", ErrInvalidHyperparameter)
	ErrNonPositiveLearningRate = fmt.Errorf("non-positive learning rate, %w", ErrInvalidHyperparameter)
	ErrNegativeParallelization = fmt.Errorf("negative parallelization, %w", ErrInvalidHyperparameter)
)
