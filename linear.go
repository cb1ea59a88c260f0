package finforecast

import (
	"github.com/finsight-io/finforecast/linearmodel"
	"github.com/finsight-io/finforecast/score"
	"github.com/finsight-io/finforecast/timeseries"
)

// two-sided 95% normal multiplier
const zScore95 = 1.96

// LinearRegressionForecast fits an ordinary least squares line over the zero
// based index of the series and extrapolates it for the requested number of
// periods. The confidence interval is the horizon-invariant
// predicted ± 1.96*standardError band; downstream confidence heuristics were
// tuned against this exact shape so it is intentionally not widened with
// forecast distance.
func LinearRegressionForecast(series timeseries.Series, periods int) (*Result, error) {
	if err := timeseries.Validate(series, timeseries.MinPoints); err != nil {
		return nil, err
	}
	if err := validateHorizon(periods); err != nil {
		return nil, err
	}

	vals := series.Values()
	tf, err := linearmodel.FitTrend(vals)
	if err != nil {
		return nil, err
	}
	quality, err := score.Evaluate(vals, tf.Fitted)
	if err != nil {
		return nil, err
	}

	labels := timeseries.NextPeriods(series.Last().Period, periods)
	forecasts := make([]Point, 0, periods)
	for step := 0; step < periods; step++ {
		predicted := tf.At(len(series) + step)
		forecasts = append(forecasts, Point{
			Period:    labels[step],
			Predicted: predicted,
			Interval: &Interval{
				Lower: predicted - zScore95*quality.StandardError,
				Upper: predicted + zScore95*quality.StandardError,
			},
			Confidence: confidenceAt(confLinearStart, confLinearFloor, step, periods),
		})
	}

	return &Result{
		Method:        MethodLinearRegression,
		Forecasts:     forecasts,
		Quality:       quality,
		GeneratedFrom: len(series),
	}, nil
}
