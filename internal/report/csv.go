// Package report serializes decision results. The writers are external
// collaborators of the rule engine: pure functions of the rows they are
// given, with no influence on the decisions themselves.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/anivratgoel/carepal-id-bre/internal/model"
)

// Row pairs a decision with the report-level as-of date used to produce it.
// The as-of date exists only for the filtered view; it is not part of the
// decision.
type Row struct {
	Result model.DecisionResult
	AsOf   time.Time
}

// Header is the CSV header for the results file.
const Header = "file_name,bre_status,reject_reason,sanction_limit,active_credit_card,latest_dpd,severe_status"

const (
	numFields     = 7
	colFileName   = 0
	colStatus     = 1
	colReason     = 2
	colLimit      = 3
	colActiveCard = 4
	colLatestDPD  = 5
	colSevere     = 6
)

// MarshalRow converts a Row to a CSV record.
func MarshalRow(row Row) []string {
	rec := make([]string, numFields)
	rec[colFileName] = row.Result.FileName
	rec[colStatus] = string(row.Result.Status)
	rec[colReason] = string(row.Result.RejectReason)
	rec[colLimit] = row.Result.SanctionLimit.StringFixed(2)
	rec[colActiveCard] = strconv.FormatBool(row.Result.ActiveCreditCard)
	rec[colLatestDPD] = strconv.Itoa(row.Result.LatestDPD)
	rec[colSevere] = row.Result.SevereStatus
	return rec
}

// WriteCSV writes all rows as the tabular results report.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteFilteredCSV writes only the rows whose as-of date falls on or before
// cutoff. Rows without an as-of date are excluded.
func WriteFilteredCSV(w io.Writer, rows []Row, cutoff time.Time) error {
	var kept []Row
	for _, row := range rows {
		if row.AsOf.IsZero() || row.AsOf.After(cutoff) {
			continue
		}
		kept = append(kept, row)
	}
	return WriteCSV(w, kept)
}
