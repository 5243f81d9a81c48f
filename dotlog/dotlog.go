// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dotlog records dot-difference trials into an etable.Table,
streams them to CSV, and summarizes staircase runs.
*/
package dotlog

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emer/dotdiff/dotenv"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// ConfigTrialLog configures the columns of a trial log table
func ConfigTrialLog(dt *etable.Table) {
	dt.SetMetaData("name", "TrialLog")
	dt.SetMetaData("desc", "Record of each dot-difference trial and staircase update")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{"Run", etensor.INT64, nil, nil},
		{"Trial", etensor.INT64, nil, nil},
		{"NumDots", etensor.FLOAT64, nil, nil},
		{"Target", etensor.STRING, nil, nil},
		{"NLeft", etensor.INT64, nil, nil},
		{"NRight", etensor.INT64, nil, nil},
		{"Resp", etensor.STRING, nil, nil},
		{"Correct", etensor.FLOAT64, nil, nil},
		{"NextDiff", etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
}

// LogTrial adds the current trial of the env to the table.
// Call after the response has been given.
func LogTrial(dt *etable.Table, ev *dotenv.DotEnv) int {
	row := dt.Rows
	dt.SetNumRows(row + 1)

	st := ev.Stim
	cor := 0.0
	if ev.Correct {
		cor = 1
	}
	dt.SetCellFloat("Run", row, float64(ev.Run.Cur))
	dt.SetCellFloat("Trial", row, float64(ev.TrialN))
	dt.SetCellFloat("NumDots", row, st.NumDots)
	dt.SetCellString("Target", row, st.Target.String())
	dt.SetCellFloat("NLeft", row, float64(st.NLeft))
	dt.SetCellFloat("NRight", row, float64(st.NRight))
	dt.SetCellString("Resp", row, ev.Resp.String())
	dt.SetCellFloat("Correct", row, cor)
	dt.SetCellFloat("NextDiff", row, ev.NumDots)
	return row
}

// Logger logs trials to a table, and streams each new row to File if set
type Logger struct {

	// trial log
	Table *etable.Table

	// if non-nil, rows are written here as tab-separated values as they are logged
	File io.Writer

	hdrs bool
}

// NewLogger returns a Logger with a configured trial log table
func NewLogger(w io.Writer) *Logger {
	lg := &Logger{Table: &etable.Table{}, File: w}
	ConfigTrialLog(lg.Table)
	return lg
}

// Log records the current trial of the env.  The row is always added to
// Table; the returned error reports a failed write to File.
func (lg *Logger) Log(ev *dotenv.DotEnv) error {
	row := LogTrial(lg.Table, ev)
	if lg.File == nil {
		return nil
	}
	out := &errWriter{w: lg.File}
	if !lg.hdrs {
		if _, err := lg.Table.WriteCSVHeaders(out, etable.Tab); err != nil {
			return err
		}
		if out.err != nil {
			return fmt.Errorf("dotlog: writing headers: %w", out.err)
		}
		lg.hdrs = true
	}
	if err := lg.Table.WriteCSVRow(out, row, etable.Tab); err != nil {
		return err
	}
	if out.err != nil {
		return fmt.Errorf("dotlog: writing row %d: %w", row, out.err)
	}
	return nil
}

// errWriter keeps the last write error, which the csv writers inside
// etable flush without returning
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	n, err := ew.w.Write(b)
	if err != nil {
		ew.err = err
	}
	return n, err
}
