// Package dataset reads tracer-experiment CSV files into per-run
// traces. The file format is the one the lab instruments export: four
// named columns, one row per sample, runs interleaved or consecutive.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/rtdlab/internal/rtd"
)

// Required column headers, matched after trimming surrounding
// whitespace. Order in the file does not matter.
const (
	ColTime          = "Time (s)"
	ColConcentration = "Concentration (C)"
	ColFlowRate      = "Flow Rate (mL/min)"
	ColRun           = "Run"
)

// ErrEmptyFile indicates a file with a header but no data rows.
var ErrEmptyFile = errors.New("dataset: no data rows")

// MissingColumnError names every required column absent from the header.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return "dataset: missing required columns: " + strings.Join(e.Columns, ", ")
}

// ParseCSV reads the dataset and groups rows into one Trace per
// distinct run, preserving first-seen run order. The schema is checked
// before any row is parsed; a header missing required columns fails the
// whole parse with *MissingColumnError. A run's flow rate is the value
// on its first row; later rows of the same run are not validated
// against it.
func ParseCSV(r io.Reader) ([]rtd.Trace, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, name := range []string{ColTime, ColConcentration, ColFlowRate, ColRun} {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	timeIdx := cols[ColTime]
	concIdx := cols[ColConcentration]
	flowIdx := cols[ColFlowRate]
	runIdx := cols[ColRun]

	byRun := make(map[string]*rtd.Trace)
	var order []string

	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row: %w", err)
		}
		line++

		max := timeIdx
		for _, idx := range []int{concIdx, flowIdx, runIdx} {
			if idx > max {
				max = idx
			}
		}
		if len(row) <= max {
			return nil, fmt.Errorf("dataset: row %d: expected at least %d fields, got %d", line, max+1, len(row))
		}

		t, err := parseFloat(row[timeIdx], ColTime, line)
		if err != nil {
			return nil, err
		}
		c, err := parseFloat(row[concIdx], ColConcentration, line)
		if err != nil {
			return nil, err
		}
		flow, err := parseFloat(row[flowIdx], ColFlowRate, line)
		if err != nil {
			return nil, err
		}
		runID := strings.TrimSpace(row[runIdx])

		tr, ok := byRun[runID]
		if !ok {
			tr = &rtd.Trace{RunID: runID, FlowRateMlPerMin: flow}
			byRun[runID] = tr
			order = append(order, runID)
		}
		tr.Times = append(tr.Times, t)
		tr.Concentrations = append(tr.Concentrations, c)
	}

	if len(order) == 0 {
		return nil, ErrEmptyFile
	}

	traces := make([]rtd.Trace, 0, len(order))
	for _, id := range order {
		traces = append(traces, *byRun[id])
	}
	return traces, nil
}

func parseFloat(s, col string, line int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("dataset: row %d: bad %q value %q", line, col, s)
	}
	return v, nil
}
