package finforecast

import (
	"fmt"
	"io"
	"os"

	"github.com/finsight-io/finforecast/timeseries"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineForecast generates an echart line chart plotting the historical series
// followed by the forecast points with their confidence band when present.
func LineForecast(series timeseries.Series, res *Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: fmt.Sprintf("%s forecast", res.Method),
			},
		),
	)

	periods := make([]string, 0, len(series)+len(res.Forecasts))
	lineDataActual := make([]opts.LineData, 0, len(series))
	for _, pnt := range series {
		periods = append(periods, pnt.Period)
		lineDataActual = append(lineDataActual, opts.LineData{Value: pnt.Value})
	}

	// pad the forecast series so it lines up after the history on the
	// shared x axis
	pad := make([]opts.LineData, len(series))
	for i := range pad {
		pad[i] = opts.LineData{Value: "-"}
	}

	lineDataForecast := append([]opts.LineData{}, pad...)
	lineDataUpper := append([]opts.LineData{}, pad...)
	lineDataLower := append([]opts.LineData{}, pad...)
	hasInterval := false
	for _, pnt := range res.Forecasts {
		periods = append(periods, pnt.Period)
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: pnt.Predicted})
		if pnt.Interval != nil {
			hasInterval = true
			lineDataUpper = append(lineDataUpper, opts.LineData{Value: pnt.Interval.Upper})
			lineDataLower = append(lineDataLower, opts.LineData{Value: pnt.Interval.Lower})
		}
	}

	line = line.SetXAxis(periods).
		AddSeries("Actual", lineDataActual).
		AddSeries("Forecast", lineDataForecast)
	if hasInterval {
		line = line.AddSeries("Upper", lineDataUpper).
			AddSeries("Lower", lineDataLower)
	}
	return line
}

// PlotForecast renders the forecast chart to an html file at the given path.
func PlotForecast(path string, series timeseries.Series, res *Result) error {
	page := components.NewPage()
	page.AddCharts(LineForecast(series, res))

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return page.Render(io.MultiWriter(file))
}
