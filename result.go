package finforecast

import (
	"github.com/finsight-io/finforecast/score"
)

// Method identifies a forecasting model.
type Method string

const (
	MethodLinearRegression     Method = "linear_regression"
	MethodExponentialSmoothing Method = "exponential_smoothing"
	MethodMovingAverage        Method = "moving_average"
	MethodSeasonal             Method = "seasonal"
	MethodMonteCarlo           Method = "monte_carlo"
)

// SupportedMethods returns the method identifiers the dispatcher routes.
func SupportedMethods() []Method {
	return []Method{
		MethodLinearRegression,
		MethodExponentialSmoothing,
		MethodMovingAverage,
		MethodSeasonal,
		MethodMonteCarlo,
	}
}

// Interval is a lower and upper confidence bound around a predicted value.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Point is a single forecast value at a future period. Interval is nil for
// models that do not estimate dispersion. Confidence is a heuristic certainty
// score from 0 to 100 decreasing with forecast distance, not a statistical
// confidence level.
type Point struct {
	Period     string    `json:"period"`
	Predicted  float64   `json:"predicted"`
	Interval   *Interval `json:"confidence_interval,omitempty"`
	Confidence int       `json:"confidence"`
}

// Result is the uniform output shape of every forecast model. Forecasts
// always has length equal to the requested horizon. Quality is nil for models
// without an underlying fitted line.
type Result struct {
	Method        Method              `json:"method"`
	Forecasts     []Point             `json:"forecasts"`
	Quality       *score.ModelQuality `json:"model_quality,omitempty"`
	GeneratedFrom int                 `json:"generated_from"`
}

// confidence start and floor per model, tuned so scores decay toward the
// floor as the step index approaches the horizon
const (
	confLinearStart = 95
	confLinearFloor = 50

	confSmoothingStart = 90
	confSmoothingFloor = 50

	confMovingAvgStart = 85
	confMovingAvgFloor = 50

	confSeasonalStart = 97
	confSeasonalFloor = 60

	confTrendOnlyStart = 80
	confTrendOnlyFloor = 50

	confMonteCarloStart = 90
	confMonteCarloFloor = 55
)

// confidenceAt interpolates the certainty score for the zero based forecast
// step. Non-increasing in step by construction.
func confidenceAt(start, floor, step, periods int) int {
	c := start - ((start-floor)*step)/periods
	if c < floor {
		c = floor
	}
	return c
}
