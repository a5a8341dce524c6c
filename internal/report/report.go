// Package report assembles per-run analysis results into the table the
// tool displays and exports. Formatting here is part of the contract:
// the rounded strings are the reported values, and the CSV download is
// byte-for-byte these same cells.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/rtdlab/internal/rtd"
)

// Column labels, matching the exported CSV header exactly.
const (
	ColRun       = "Run"
	ColFlowRate  = "Flow Rate (mL/min)"
	ColMeanTime  = "Mean Residence Time (s)"
	ColVariance  = "Variance (s²)"
	ColDax       = "Axial Dispersion Coefficient (m²/s)"
	ColPeclet    = "Peclet Number"
	ColSpaceTime = "Space Time τ₀ (s)"
	ColReynolds  = "Reynolds Number"
)

// Table is the assembled results table: one row per run, in the order
// the runs first appeared in the input file.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Build assembles the table from per-run results. The Reynolds column
// is only present when the analysis had fluid properties to compute it
// with.
func Build(results []rtd.Result, withReynolds bool) *Table {
	cols := []string{ColRun, ColFlowRate, ColMeanTime, ColVariance, ColDax, ColPeclet, ColSpaceTime}
	if withReynolds {
		cols = append(cols, ColReynolds)
	}

	t := &Table{Columns: cols, Rows: make([][]string, 0, len(results))}
	for _, r := range results {
		row := []string{
			r.RunID,
			FormatFlow(r.FlowRateMlPerMin),
			FormatFixed(r.MeanResidenceTime),
			FormatFixed(r.Variance),
			FormatSci(r.AxialDispersion),
			FormatFixed(r.Peclet),
			FormatFixed(r.SpaceTime),
		}
		if withReynolds {
			row = append(row, FormatFixed(r.Reynolds))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// WriteText renders the table for the terminal.
func (t *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range t.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// WriteCSV writes the UTF-8 CSV form: header row of column names, then
// the same formatted cells shown in the text table.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Curves extracts the per-run plot payloads in table order.
func Curves(results []rtd.Result) []rtd.Curve {
	curves := make([]rtd.Curve, len(results))
	for i, r := range results {
		curves[i] = r.Curve
	}
	return curves
}

// FormatFixed reports a value rounded to two decimal places; undefined
// quantities render as NaN, distinct from a numeric 0.00.
func FormatFixed(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatSci reports a value in scientific notation with two decimals,
// used for the axial dispersion coefficient.
func FormatSci(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2e", v)
}

// FormatFlow echoes the flow rate as read from the input file.
func FormatFlow(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
