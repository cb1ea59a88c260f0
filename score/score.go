// Package score evaluates how well a fitted model tracks the observed
// series.
package score

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var ErrFitLenMismatch = errors.New("fitted and actual have different lengths")

// ModelQuality reports fit diagnostics for models with an underlying fitted
// line.
type ModelQuality struct {
	RSquared          float64 `json:"r_squared"`
	StandardError     float64 `json:"standard_error"`
	MeanAbsoluteError float64 `json:"mean_absolute_error"`
}

// Evaluate computes fit diagnostics of the fitted values against the actual
// observations. RSquared is defined as 1.0 for an exactly constant actual
// series and StandardError as 0 for two or fewer observations.
func Evaluate(actual, fitted []float64) (*ModelQuality, error) {
	if len(actual) != len(fitted) {
		return nil, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(fitted), ErrFitLenMismatch)
	}

	n := len(actual)
	mean := stat.Mean(actual, nil)
	var ssr, tss, sumAbs float64
	for i := 0; i < n; i++ {
		resid := actual[i] - fitted[i]
		ssr += resid * resid
		tss += (actual[i] - mean) * (actual[i] - mean)
		sumAbs += math.Abs(resid)
	}

	// a constant actual series has zero total sum of squares and any flat
	// line fits it perfectly
	r2 := 1.0
	if tss > 0 {
		r2 = stat.RSquaredFrom(fitted, actual, nil)
		if math.IsNaN(r2) {
			r2 = 1.0
		}
	}

	var stderr float64
	if n > 2 {
		stderr = math.Sqrt(ssr / float64(n-2))
	}

	return &ModelQuality{
		RSquared:          r2,
		StandardError:     stderr,
		MeanAbsoluteError: sumAbs / float64(n),
	}, nil
}
