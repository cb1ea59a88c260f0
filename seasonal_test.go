package finforecast

import (
	"math"
	"testing"

	"github.com/finsight-io/finforecast/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sinusoidSeries(n int, base, slope, amplitude float64) timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = base + slope*float64(i) + amplitude*math.Sin(2.0*math.Pi*float64(i)/float64(SeasonalCycle))
	}
	return monthlySeries(values...)
}

func TestSeasonalForecastRecoversSinusoid(t *testing.T) {
	const (
		base      = 1000.0
		slope     = 2.0
		amplitude = 150.0
	)
	series := sinusoidSeries(2*SeasonalCycle, base, slope, amplitude)

	res, err := SeasonalForecast(series, SeasonalCycle)
	require.Nil(t, err)
	require.Len(t, res.Forecasts, SeasonalCycle)

	var sumAbs float64
	for step, pnt := range res.Forecasts {
		i := 2*SeasonalCycle + step
		expected := base + slope*float64(i) + amplitude*math.Sin(2.0*math.Pi*float64(i)/float64(SeasonalCycle))
		sumAbs += math.Abs(pnt.Predicted - expected)
	}
	mae := sumAbs / float64(SeasonalCycle)
	assert.Less(t, mae, 0.05*amplitude, "mean absolute error vs generating function")
}

func TestSeasonalForecastFullCycle(t *testing.T) {
	series := sinusoidSeries(2*SeasonalCycle, 1000, 2, 150)

	res, err := SeasonalForecast(series, 6)
	require.Nil(t, err)

	assert.Equal(t, MethodSeasonal, res.Method)
	assert.Equal(t, 2*SeasonalCycle, res.GeneratedFrom)
	require.NotNil(t, res.Quality)

	// a full cycle of history earns a higher starting confidence than
	// plain linear regression
	assert.Greater(t, res.Forecasts[0].Confidence, confLinearStart)
	for _, pnt := range res.Forecasts {
		require.NotNil(t, pnt.Interval)
		assert.LessOrEqual(t, pnt.Interval.Lower, pnt.Predicted)
		assert.GreaterOrEqual(t, pnt.Interval.Upper, pnt.Predicted)
	}
}

func TestSeasonalForecastDegradedTrendOnly(t *testing.T) {
	// under one full cycle the model falls back to trend-only forecasting
	series := monthlySeries(100, 110, 120, 130, 140, 150)

	res, err := SeasonalForecast(series, 3)
	require.Nil(t, err)

	require.Len(t, res.Forecasts, 3)
	assert.InDelta(t, 160.0, res.Forecasts[0].Predicted, 1e-6)
	assert.InDelta(t, 170.0, res.Forecasts[1].Predicted, 1e-6)
	assert.InDelta(t, 180.0, res.Forecasts[2].Predicted, 1e-6)

	assert.Less(t, res.Forecasts[0].Confidence, confLinearStart)

	// degraded mode must be reproducible
	again, err := SeasonalForecast(series, 3)
	require.Nil(t, err)
	assert.Equal(t, res, again)
}

func TestSeasonalForecastConstantSeries(t *testing.T) {
	res, err := SeasonalForecast(constantSeries(2*SeasonalCycle, 100), 4)
	require.Nil(t, err)
	for _, pnt := range res.Forecasts {
		assert.InDelta(t, 100.0, pnt.Predicted, 1e-6)
	}
	assert.Equal(t, 1.0, res.Quality.RSquared)
}

func TestSeasonalForecastInsufficientData(t *testing.T) {
	_, err := SeasonalForecast(monthlySeries(1, 2), 3)
	require.ErrorIs(t, err, timeseries.ErrInsufficientData)
}
