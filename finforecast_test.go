package finforecast

import (
	"testing"

	"github.com/finsight-io/finforecast/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastRoutesEveryMethod(t *testing.T) {
	series := monthlySeries(800000, 850000, 900000, 875000, 950000, 1000000)

	for _, method := range SupportedMethods() {
		t.Run(string(method), func(t *testing.T) {
			res, err := Forecast(method, series, 3, &Params{Seed: 42})
			require.Nil(t, err)
			assert.Equal(t, method, res.Method)
			assert.Len(t, res.Forecasts, 3)
			assert.Equal(t, len(series), res.GeneratedFrom)
			// labels continue the monthly convention of the input
			assert.Equal(t, "2025-07", res.Forecasts[0].Period)
			assert.Equal(t, "2025-09", res.Forecasts[2].Period)
		})
	}
}

func TestForecastNilParamsUsesDefaults(t *testing.T) {
	series := monthlySeries(100, 110, 105, 120, 118, 130)
	for _, method := range SupportedMethods() {
		res, err := Forecast(method, series, 2, nil)
		require.Nil(t, err, string(method))
		assert.Len(t, res.Forecasts, 2)
	}
}

func TestForecastUnsupportedMethod(t *testing.T) {
	_, err := Forecast("arima", monthlySeries(1, 2, 3), 2, nil)
	require.ErrorIs(t, err, ErrUnsupportedMethod)
	// failure payload lists the supported identifiers
	assert.Contains(t, err.Error(), string(MethodLinearRegression))
	assert.Contains(t, err.Error(), string(MethodMonteCarlo))
}

func TestForecastValidatesBeforeRouting(t *testing.T) {
	short := monthlySeries(1, 2)
	for _, method := range SupportedMethods() {
		_, err := Forecast(method, short, 3, nil)
		require.ErrorIs(t, err, timeseries.ErrInsufficientData, string(method))
	}

	_, err := Forecast(MethodLinearRegression, monthlySeries(1, 2, 3), 0, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestForecastPassesParamsThrough(t *testing.T) {
	series := monthlySeries(10, 20, 30)

	_, err := Forecast(MethodExponentialSmoothing, series, 1, &Params{Alpha: 1.01})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Forecast(MethodMovingAverage, series, 1, &Params{WindowSize: 4})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Forecast(MethodMonteCarlo, series, 1, &Params{Simulations: -1})
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestConfidenceAt(t *testing.T) {
	assert.Equal(t, 95, confidenceAt(95, 50, 0, 3))
	assert.Equal(t, 50, confidenceAt(95, 50, 10, 3))

	prev := 101
	for step := 0; step < 12; step++ {
		c := confidenceAt(90, 50, step, 12)
		assert.LessOrEqual(t, c, prev)
		assert.GreaterOrEqual(t, c, 50)
		prev = c
	}
}
