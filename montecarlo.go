package finforecast

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/finsight-io/finforecast/timeseries"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSimulations is the trial count used when the caller does not supply
// one.
const DefaultSimulations = 1000

// MonteCarloOptions configures the simulation model.
type MonteCarloOptions struct {
	// Simulations sets the number of independent trial paths. Must be at
	// least 1.
	Simulations int

	// Seed makes the standard normal draws reproducible. A zero seed is
	// replaced with a wall clock derived one.
	Seed uint64

	// Parallelization sets how many trial paths to run in parallel. More
	// will increase memory and compute usage.
	Parallelization int
}

// NewDefaultMonteCarloOptions returns a default set of Monte Carlo options.
func NewDefaultMonteCarloOptions() *MonteCarloOptions {
	return &MonteCarloOptions{
		Simulations:     DefaultSimulations,
		Parallelization: 1,
	}
}

// MonteCarloForecast estimates drift and volatility from the historical
// period over period percentage changes and simulates independent trial
// paths from the last observed value, each step multiplying by
// 1 + drift + volatility*z with z drawn standard normal. Each forecast
// point's predicted value is the mean of the per-trial values at that step
// and its interval the empirical 5th/95th percentile, a 90% band. Trial i
// draws from its own source seeded Seed+i so results are identical for a
// fixed seed regardless of how trials are scheduled.
func MonteCarloForecast(series timeseries.Series, periods int, opt *MonteCarloOptions) (*Result, error) {
	if opt == nil {
		opt = NewDefaultMonteCarloOptions()
	}
	if err := timeseries.Validate(series, timeseries.MinPoints); err != nil {
		return nil, err
	}
	if err := validateHorizon(periods); err != nil {
		return nil, err
	}
	if opt.Simulations < 1 {
		return nil, fmt.Errorf("simulations must be at least 1, got %d, %w", opt.Simulations, ErrInvalidParameter)
	}

	seed := opt.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	parallelization := opt.Parallelization
	if parallelization < 1 {
		parallelization = 1
	}

	drift, volatility := driftVolatility(series.Values())

	// steps x trials so each step's distribution is contiguous for
	// aggregation
	paths := make([][]float64, periods)
	for step := range paths {
		paths[step] = make([]float64, opt.Simulations)
	}

	last := series.Last().Value
	sem := make(chan struct{}, parallelization)
	var wg sync.WaitGroup
	for trial := 0; trial < opt.Simulations; trial++ {
		sem <- struct{}{}
		wg.Add(1)
		go func(trial int) {
			defer func() {
				wg.Done()
				<-sem
			}()
			normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed + uint64(trial))}
			v := last
			for step := 0; step < periods; step++ {
				v *= 1 + drift + volatility*normal.Rand()
				paths[step][trial] = v
			}
		}(trial)
	}
	wg.Wait()

	labels := timeseries.NextPeriods(series.Last().Period, periods)
	forecasts := make([]Point, 0, periods)
	sorted := make([]float64, opt.Simulations)
	for step := 0; step < periods; step++ {
		copy(sorted, paths[step])
		sort.Float64s(sorted)
		forecasts = append(forecasts, Point{
			Period:    labels[step],
			Predicted: stat.Mean(paths[step], nil),
			Interval: &Interval{
				Lower: stat.Quantile(0.05, stat.Empirical, sorted, nil),
				Upper: stat.Quantile(0.95, stat.Empirical, sorted, nil),
			},
			Confidence: confidenceAt(confMonteCarloStart, confMonteCarloFloor, step, periods),
		})
	}

	return &Result{
		Method:        MethodMonteCarlo,
		Forecasts:     forecasts,
		GeneratedFrom: len(series),
	}, nil
}

// driftVolatility estimates the mean and standard deviation of the period
// over period percentage changes. Pairs whose base value is zero contribute
// no change; with no usable pairs both estimates are zero and every path
// holds the last value.
func driftVolatility(vals []float64) (float64, float64) {
	changes := make([]float64, 0, len(vals)-1)
	for i := 1; i < len(vals); i++ {
		if vals[i-1] == 0 {
			continue
		}
		changes = append(changes, (vals[i]-vals[i-1])/vals[i-1])
	}
	switch len(changes) {
	case 0:
		return 0, 0
	case 1:
		return changes[0], 0
	}
	drift, volatility := stat.MeanStdDev(changes, nil)
	if math.IsNaN(volatility) {
		volatility = 0
	}
	return drift, volatility
}
