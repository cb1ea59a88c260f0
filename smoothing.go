package finforecast

import (
	"fmt"

	"github.com/finsight-io/finforecast/timeseries"
)

// DefaultAlpha is the smoothing factor used when the caller does not supply
// one.
const DefaultAlpha = 0.3

// ExponentialSmoothingForecast computes a single exponentially smoothed level
// over the series and holds the final level flat across every forecast
// period. The flat forecast is the defining property of single exponential
// smoothing, which carries no trend component. Alpha must be in (0, 1].
func ExponentialSmoothingForecast(series timeseries.Series, periods int, alpha float64) (*Result, error) {
	if err := timeseries.Validate(series, timeseries.MinPoints); err != nil {
		return nil, err
	}
	if err := validateHorizon(periods); err != nil {
		return nil, err
	}
	if !(alpha > 0 && alpha <= 1) {
		return nil, fmt.Errorf("alpha must be in (0, 1], got %v, %w", alpha, ErrInvalidParameter)
	}

	level := series[0].Value
	for i := 1; i < len(series); i++ {
		level = alpha*series[i].Value + (1-alpha)*level
	}

	labels := timeseries.NextPeriods(series.Last().Period, periods)
	forecasts := make([]Point, 0, periods)
	for step := 0; step < periods; step++ {
		forecasts = append(forecasts, Point{
			Period:     labels[step],
			Predicted:  level,
			Confidence: confidenceAt(confSmoothingStart, confSmoothingFloor, step, periods),
		})
	}

	return &Result{
		Method:        MethodExponentialSmoothing,
		Forecasts:     forecasts,
		GeneratedFrom: len(series),
	}, nil
}
