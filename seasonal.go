package finforecast

import (
	"math"

	"github.com/finsight-io/finforecast/linearmodel"
	"github.com/finsight-io/finforecast/score"
	"github.com/finsight-io/finforecast/timeseries"
)

const (
	// SeasonalCycle is the number of periods in one seasonal cycle.
	SeasonalCycle = 12

	// decomposition alternates between the trend fit and the seasonal
	// index; a single pass leaves the trend contaminated by the seasonal
	// component since a sampled sinusoid is not orthogonal to a linear
	// ramp
	decompositionPasses = 3

	trendEps = 1e-10
)

// SeasonalForecast decomposes the series into an OLS trend and a
// multiplicative per-position seasonal index, then forecasts each future
// period as the extrapolated trend scaled by the index at that period's cycle
// slot. With fewer than one full cycle of history the index stays at identity
// and the model degrades deterministically to trend-only forecasting.
func SeasonalForecast(series timeseries.Series, periods int) (*Result, error) {
	if err := timeseries.Validate(series, timeseries.MinPoints); err != nil {
		return nil, err
	}
	if err := validateHorizon(periods); err != nil {
		return nil, err
	}

	vals := series.Values()
	n := len(vals)

	tf, err := linearmodel.FitTrend(vals)
	if err != nil {
		return nil, err
	}

	fullCycle := n >= SeasonalCycle
	index := identityIndex()
	confStart, confFloor := confTrendOnlyStart, confTrendOnlyFloor

	if fullCycle {
		confStart, confFloor = confSeasonalStart, confSeasonalFloor
		deseasonalized := make([]float64, n)
		for pass := 0; pass < decompositionPasses; pass++ {
			index = seasonalIndex(vals, tf)
			for i := 0; i < n; i++ {
				deseasonalized[i] = vals[i]
				if math.Abs(index[i%SeasonalCycle]) > trendEps {
					deseasonalized[i] = vals[i] / index[i%SeasonalCycle]
				}
			}
			if tf, err = linearmodel.FitTrend(deseasonalized); err != nil {
				return nil, err
			}
		}
		index = seasonalIndex(vals, tf)
	}

	// seasonal adjustment is not scored separately; quality reflects the
	// trend line only
	quality, err := score.Evaluate(vals, tf.Fitted)
	if err != nil {
		return nil, err
	}

	labels := timeseries.NextPeriods(series.Last().Period, periods)
	forecasts := make([]Point, 0, periods)
	for step := 0; step < periods; step++ {
		i := n + step
		idx := index[i%SeasonalCycle]
		trend := tf.At(i)
		lower := (trend - zScore95*quality.StandardError) * idx
		upper := (trend + zScore95*quality.StandardError) * idx
		if lower > upper {
			lower, upper = upper, lower
		}
		forecasts = append(forecasts, Point{
			Period:     labels[step],
			Predicted:  trend * idx,
			Interval:   &Interval{Lower: lower, Upper: upper},
			Confidence: confidenceAt(confStart, confFloor, step, periods),
		})
	}

	return &Result{
		Method:        MethodSeasonal,
		Forecasts:     forecasts,
		Quality:       quality,
		GeneratedFrom: n,
	}, nil
}

func identityIndex() []float64 {
	index := make([]float64, SeasonalCycle)
	for i := range index {
		index[i] = 1.0
	}
	return index
}

// seasonalIndex computes the mean ratio of actual to trend value at each
// position within the cycle. Positions with no usable ratio keep an index of
// 1.0.
func seasonalIndex(vals []float64, tf *linearmodel.TrendFit) []float64 {
	sums := make([]float64, SeasonalCycle)
	counts := make([]int, SeasonalCycle)
	for i, v := range vals {
		trend := tf.At(i)
		if math.Abs(trend) <= trendEps {
			continue
		}
		sums[i%SeasonalCycle] += v / trend
		counts[i%SeasonalCycle]++
	}

	index := identityIndex()
	for pos := 0; pos < SeasonalCycle; pos++ {
		if counts[pos] > 0 {
			index[pos] = sums[pos] / float64(counts[pos])
		}
	}
	return index
}
