package finforecast

import (
	"fmt"

	"github.com/finsight-io/finforecast/timeseries"
	"gonum.org/v1/gonum/stat"
)

// DefaultWindowSize is the trailing window used when the caller does not
// supply one.
const DefaultWindowSize = 3

// MovingAverageForecast predicts each future period as the arithmetic mean of
// the trailing window. The window slides forward over an append-only buffer
// of original values plus previously generated forecasts, so forecasting
// period two may consume the period one forecast. Feeding forecasts back into
// the window is what lets a fixed-size window produce more than one distinct
// forecast value.
func MovingAverageForecast(series timeseries.Series, periods, windowSize int) (*Result, error) {
	if err := timeseries.Validate(series, timeseries.MinPoints); err != nil {
		return nil, err
	}
	if err := validateHorizon(periods); err != nil {
		return nil, err
	}
	if windowSize < 1 || windowSize > len(series) {
		return nil, fmt.Errorf("window size must be in [1, %d], got %d, %w", len(series), windowSize, ErrInvalidParameter)
	}

	buf := series.Values()
	labels := timeseries.NextPeriods(series.Last().Period, periods)
	forecasts := make([]Point, 0, periods)
	for step := 0; step < periods; step++ {
		predicted := stat.Mean(buf[len(buf)-windowSize:], nil)
		buf = append(buf, predicted)
		forecasts = append(forecasts, Point{
			Period:     labels[step],
			Predicted:  predicted,
			Confidence: confidenceAt(confMovingAvgStart, confMovingAvgFloor, step, periods),
		})
	}

	return &Result{
		Method:        MethodMovingAverage,
		Forecasts:     forecasts,
		GeneratedFrom: len(series),
	}, nil
}
