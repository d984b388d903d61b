package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is the structured (JSON) form of one decision, the subset of fields
// downstream systems consume.
type Entry struct {
	FileName         string `json:"file_name"`
	BREStatus        string `json:"bre_status"`
	SanctionLimit    string `json:"sanction_limit"`
	ActiveCreditCard bool   `json:"active_credit_card"`
}

// WriteJSON writes one entry per row as a JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			FileName:         row.Result.FileName,
			BREStatus:        string(row.Result.Status),
			SanctionLimit:    row.Result.SanctionLimit.StringFixed(0),
			ActiveCreditCard: row.Result.ActiveCreditCard,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding results JSON: %w", err)
	}
	return nil
}

// ReadJSON reads a results JSON file back into entries.
func ReadJSON(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding results JSON: %w", err)
	}
	return entries, nil
}

// EntriesHeader is the CSV header for converted JSON results.
const EntriesHeader = "file_name,bre_status,sanction_limit,active_credit_card"

// WriteEntriesCSV writes entries as CSV, the convert command's output.
func WriteEntriesCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(EntriesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		rec := []string{e.FileName, e.BREStatus, e.SanctionLimit, strconv.FormatBool(e.ActiveCreditCard)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
