package plotting

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Render writes one bar-chart PNG per metric into outDir, named after
// the metric with spaces replaced by underscores. Rows whose values are
// all missing are skipped. It returns the paths of the written images.
func Render(res Results, outDir string) ([]string, error) {
	var written []string

	for _, row := range res.Rows {
		if row.Missing() {
			continue
		}

		path := filepath.Join(
			outDir,
			strings.ReplaceAll(row.Metric, " ", "_")+".png",
		)

		if err := renderMetric(row, res.Configs, path); err != nil {
			return written, fmt.Errorf("rendering %q: %w", row.Metric, err)
		}

		written = append(written, path)
	}

	return written, nil
}

func renderMetric(row MetricRow, configs []string, path string) error {
	p := plot.New()
	p.Title.Text = row.Metric + " Comparison"
	p.Y.Label.Text = row.Metric
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = -1
	p.X.Tick.Label.YAlign = -0.5

	values := make(plotter.Values, len(row.Values))
	for i, v := range row.Values {
		if math.IsNaN(v) {
			// A missing configuration renders as a zero-height bar
			// with no annotation.
			continue
		}
		values[i] = v
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(configs...)

	labels, err := barLabels(row)
	if err != nil {
		return err
	}
	p.Add(labels)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

func barLabels(row MetricRow) (*plotter.Labels, error) {
	data := plotter.XYLabels{}

	for i, v := range row.Values {
		if math.IsNaN(v) {
			continue
		}

		data.XYs = append(data.XYs, plotter.XY{X: float64(i), Y: v})
		data.Labels = append(data.Labels, fmt.Sprintf("%.2f", v))
	}

	return plotter.NewLabels(data)
}
