package linearmodel

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var ErrTooFewPoints = errors.New("need at least two points to fit a trend")

// TrendFit is a least squares line fit over the zero based index of a series.
// The index is the independent variable, not calendar time.
type TrendFit struct {
	Slope     float64
	Intercept float64
	Fitted    []float64
}

// FitTrend fits an OLS line value = slope*index + intercept over the series
// values.
func FitTrend(values []float64) (*TrendFit, error) {
	n := len(values)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	idx := make([]float64, n)
	for i := 0; i < n; i++ {
		idx[i] = float64(i)
	}
	x := mat.NewDense(n, 1, idx)
	y := mat.NewDense(n, 1, values)

	var model OLSRegression
	if err := model.Fit(x, y); err != nil {
		return nil, err
	}

	tf := &TrendFit{
		Slope:     model.Coef()[0],
		Intercept: model.Intercept(),
	}
	tf.Fitted = make([]float64, n)
	for i := 0; i < n; i++ {
		tf.Fitted[i] = tf.At(i)
	}
	return tf, nil
}

// At evaluates the fitted line at the given series index. Indexes at or past
// the series length extrapolate the trend.
func (tf *TrendFit) At(i int) float64 {
	return tf.Slope*float64(i) + tf.Intercept
}
