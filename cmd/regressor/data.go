package main

import (
	"fmt"
	"os"

	"github.com/aouyang1/go-regressor/dataset"
	"github.com/goccy/go-json"
)

// loadDataset reads a JSON array of {"year": ..., "days": ...} observations
func loadDataset(path string) (*dataset.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var obs []dataset.Observation
	if err := json.Unmarshal(data, &obs); err != nil {
		return nil, fmt.Errorf("unable to parse dataset %s, %w", path, err)
	}
	return dataset.New(obs)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
