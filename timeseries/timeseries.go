// Package timeseries holds the ordered period/value observations consumed by
// every forecast model along with their shared validation rules.
package timeseries

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInsufficientData = errors.New("insufficient points in series")
	ErrMalformedSeries  = errors.New("series contains a non-finite value")
)

// MinPoints is the default minimum number of observations required to fit any
// forecast model.
const MinPoints = 3

// Point is a single observation of a financial metric at a reporting period.
// The period label must sort chronologically, e.g. "2025-07" or "2025-07-14".
type Point struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// Series is a chronologically ordered sequence of observations. Ordering is a
// caller precondition and is not verified here since silently re-sorting
// would hide caller bugs.
type Series []Point

// Validate checks that the series carries at least minPoints observations and
// that every value is a finite real number. A minPoints below MinPoints is
// raised to MinPoints. The input is never mutated.
func Validate(s Series, minPoints int) error {
	if minPoints < MinPoints {
		minPoints = MinPoints
	}
	if len(s) < minPoints {
		return fmt.Errorf("required %d points, got %d, %w", minPoints, len(s), ErrInsufficientData)
	}
	for i, pnt := range s {
		if math.IsNaN(pnt.Value) || math.IsInf(pnt.Value, 0) {
			return fmt.Errorf("value at index %d is %v, %w", i, pnt.Value, ErrMalformedSeries)
		}
	}
	return nil
}

// Values returns a copy of the observation values in series order.
func (s Series) Values() []float64 {
	vals := make([]float64, len(s))
	for i, pnt := range s {
		vals[i] = pnt.Value
	}
	return vals
}

// Last returns the final observation of the series.
func (s Series) Last() Point {
	if len(s) == 0 {
		return Point{}
	}
	return s[len(s)-1]
}
