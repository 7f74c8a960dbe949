package bench

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth = 8 * vg.Inch
	barWidth   = 20
)

// WriteChart draws the mean duration of every result as a bar chart and saves it to
// path. The image format follows the extension (.png, .svg, .pdf, ...).
func WriteChart(path string, results []Result) error {
	if len(results) == 0 {
		return fmt.Errorf("chart %s: no results: %w", path, ErrBadPlan)
	}

	var (
		values = make(plotter.Values, len(results))
		labels = make([]string, len(results))
	)
	for i, r := range results {
		values[i] = float64(r.Mean) / float64(time.Millisecond)
		labels[i] = r.Run + "/" + r.Variant
	}

	p := plot.New()
	p.Title.Text = "Mean wall-clock time per variant"
	p.Y.Label.Text = "ms"

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return fmt.Errorf("chart %s: %w", path, err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err = p.Save(chartWidth, chartWidth/2, path); err != nil {
		return fmt.Errorf("chart %s: %w", path, err)
	}

	return nil
}
