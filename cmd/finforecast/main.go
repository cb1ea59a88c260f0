// Command finforecast runs a forecast model over a period,value CSV series
// and prints the result as JSON.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/finsight-io/finforecast"
	"github.com/finsight-io/finforecast/timeseries"
	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// Config supplies defaults from FORECAST_* environment variables which flags
// may override.
type Config struct {
	Method      string  `envconfig:"METHOD" default:"linear_regression"`
	Periods     int     `envconfig:"PERIODS" default:"3"`
	Alpha       float64 `envconfig:"ALPHA" default:"0.3"`
	WindowSize  int     `envconfig:"WINDOW_SIZE" default:"3"`
	Simulations int     `envconfig:"SIMULATIONS" default:"1000"`
	Seed        uint64  `envconfig:"SEED"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// missing .env is fine; envconfig falls back to struct defaults
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("forecast", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var (
		csvPath    string
		plotPath   string
		profileCPU bool
	)

	cmd := &cobra.Command{
		Use:   "finforecast",
		Short: "Forecast a financial time series from a period,value CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if profileCPU {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}

			series, err := readSeries(csvPath)
			if err != nil {
				return err
			}

			params := &finforecast.Params{
				Alpha:       cfg.Alpha,
				WindowSize:  cfg.WindowSize,
				Simulations: cfg.Simulations,
				Seed:        cfg.Seed,
			}
			res, err := finforecast.Forecast(finforecast.Method(cfg.Method), series, cfg.Periods, params)
			if err != nil {
				return err
			}

			if plotPath != "" {
				if err := finforecast.PlotForecast(plotPath, series, res); err != nil {
					return fmt.Errorf("unable to render plot, %w", err)
				}
			}

			bytes, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to a period,value CSV file")
	cmd.Flags().StringVar(&cfg.Method, "method", cfg.Method, "forecast method identifier")
	cmd.Flags().IntVar(&cfg.Periods, "periods", cfg.Periods, "number of future periods to forecast")
	cmd.Flags().Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "exponential smoothing factor in (0, 1]")
	cmd.Flags().IntVar(&cfg.WindowSize, "window", cfg.WindowSize, "moving average window size")
	cmd.Flags().IntVar(&cfg.Simulations, "simulations", cfg.Simulations, "monte carlo trial count")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "monte carlo seed, 0 derives one from the clock")
	cmd.Flags().StringVar(&plotPath, "plot", "", "render an html chart to this path")
	cmd.Flags().BoolVar(&profileCPU, "profile", false, "write a cpu profile to the working directory")
	_ = cmd.MarkFlagRequired("csv")

	return cmd
}

func readSeries(path string) (timeseries.Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read csv, %w", err)
	}

	series := make(timeseries.Series, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d has %d columns, expected period,value", i, len(row))
		}
		val, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, fmt.Errorf("row %d has non-numeric value %q", i, row[1])
		}
		series = append(series, timeseries.Point{Period: row[0], Value: val})
	}
	return series, nil
}
