// Package plotting renders a simulator results table into per-metric
// comparison charts.
package plotting

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// MetricRow is one metric with one value per compared configuration.
// Missing values are NaN.
type MetricRow struct {
	Metric string
	Values []float64
}

// Results is a parsed results table: a metric-name column followed by
// one column per configuration, one row per metric.
type Results struct {
	Configs []string
	Rows    []MetricRow
}

// Missing reports whether every value of the row is absent.
func (r MetricRow) Missing() bool {
	for _, v := range r.Values {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}

// ReadResults parses a results CSV. The first column holds metric
// names; the remaining header cells name the compared configurations.
// Empty or non-numeric cells become NaN.
func ReadResults(path string) (Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return Results{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Results{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(records) == 0 || len(records[0]) < 2 {
		return Results{}, fmt.Errorf(
			"%s: need a metric column and at least one configuration column",
			path)
	}

	res := Results{Configs: records[0][1:]}

	for _, row := range records[1:] {
		mr := MetricRow{
			Metric: row[0],
			Values: make([]float64, len(res.Configs)),
		}

		for i := range mr.Values {
			mr.Values[i] = math.NaN()
			if i+1 >= len(row) {
				continue
			}

			cell := strings.TrimSpace(row[i+1])
			if cell == "" {
				continue
			}

			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				mr.Values[i] = v
			}
		}

		res.Rows = append(res.Rows, mr)
	}

	return res, nil
}
