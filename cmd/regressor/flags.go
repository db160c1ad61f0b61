package main

import (
	"strconv"
	"strings"
)

// yearList is a comma separated list of years to predict
type yearList []float64

func (y *yearList) String() string {
	if y == nil {
		return ""
	}
	parts := make([]string, len(*y))
	for i, v := range *y {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (y *yearList) Set(s string) error {
	var years []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return err
		}
		years = append(years, v)
	}
	*y = years
	return nil
}
