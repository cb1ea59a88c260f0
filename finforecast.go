// Package finforecast turns a short ordered history of period/value
// observations into forward looking projections under several
// interchangeable statistical models, each returning point forecasts,
// confidence bounds, and a model quality diagnostic. Every model is a pure
// function over its input; the engine holds no state between calls, persists
// nothing, and never logs, so callers decide all user visible behavior from
// the typed errors it returns.
package finforecast

import (
	"fmt"

	"github.com/finsight-io/finforecast/timeseries"
)

// Params carries the model specific knobs routed by Forecast. Zero values
// fall back to the package defaults.
type Params struct {
	// Alpha is the exponential smoothing factor in (0, 1].
	Alpha float64

	// WindowSize is the trailing moving average window in [1, len(series)].
	WindowSize int

	// Simulations is the Monte Carlo trial count.
	Simulations int

	// Seed fixes the Monte Carlo randomness for reproducible runs.
	Seed uint64

	// Parallelization sets how many Monte Carlo trials run concurrently.
	Parallelization int
}

// NewDefaultParams returns the default model parameters.
func NewDefaultParams() *Params {
	return &Params{
		Alpha:       DefaultAlpha,
		WindowSize:  DefaultWindowSize,
		Simulations: DefaultSimulations,
	}
}

func (p *Params) withDefaults() *Params {
	if p == nil {
		return NewDefaultParams()
	}
	filled := *p
	if filled.Alpha == 0 {
		filled.Alpha = DefaultAlpha
	}
	if filled.WindowSize == 0 {
		filled.WindowSize = DefaultWindowSize
	}
	if filled.Simulations == 0 {
		filled.Simulations = DefaultSimulations
	}
	return &filled
}

// Forecast validates the series once and routes to the named model, passing
// through model specific parameters. Unknown methods fail with
// ErrUnsupportedMethod wrapping the supported identifiers. Every returned
// result carries exactly periods forecast points whose labels continue the
// input series' period labeling convention.
func Forecast(method Method, series timeseries.Series, periods int, params *Params) (*Result, error) {
	if err := timeseries.Validate(series, timeseries.MinPoints); err != nil {
		return nil, err
	}
	if err := validateHorizon(periods); err != nil {
		return nil, err
	}
	params = params.withDefaults()

	switch method {
	case MethodLinearRegression:
		return LinearRegressionForecast(series, periods)
	case MethodExponentialSmoothing:
		return ExponentialSmoothingForecast(series, periods, params.Alpha)
	case MethodMovingAverage:
		return MovingAverageForecast(series, periods, params.WindowSize)
	case MethodSeasonal:
		return SeasonalForecast(series, periods)
	case MethodMonteCarlo:
		return MonteCarloForecast(series, periods, &MonteCarloOptions{
			Simulations:     params.Simulations,
			Seed:            params.Seed,
			Parallelization: params.Parallelization,
		})
	default:
		return nil, fmt.Errorf("%q is not one of %v, %w", method, SupportedMethods(), ErrUnsupportedMethod)
	}
}
