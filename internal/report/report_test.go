package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anivratgoel/carepal-id-bre/internal/model"
)

func sampleRows() []Row {
	return []Row{
		{
			Result: model.DecisionResult{
				FileName:         "a.txt",
				Status:           model.StatusApprove,
				SanctionLimit:    decimal.NewFromInt(150000),
				ActiveCreditCard: true,
				LatestDPD:        0,
				SevereStatus:     model.SevereStatusNone,
			},
			AsOf: time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			Result: model.DecisionResult{
				FileName:      "b.txt",
				Status:        model.StatusReject,
				RejectReason:  model.ReasonSevereDerogatory,
				SanctionLimit: decimal.Zero,
				LatestDPD:     90,
				SevereStatus:  "SUIT",
			},
			AsOf: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, sampleRows())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "a.txt,APPROVE,,150000.00,true,0,none", lines[1])
	assert.Equal(t, "b.txt,REJECT,severe_derogatory,0.00,false,90,SUIT", lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", buf.String())
}

func TestWriteFilteredCSV(t *testing.T) {
	rows := sampleRows()
	rows = append(rows, Row{Result: model.DecisionResult{FileName: "undated.txt"}})

	var buf bytes.Buffer
	cutoff := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	err := WriteFilteredCSV(&buf, rows, cutoff)
	require.NoError(t, err)

	out := buf.String()
	// Only b.txt is as of a date on or before the cutoff; rows without an
	// as-of date are excluded.
	assert.NotContains(t, out, "a.txt")
	assert.Contains(t, out, "b.txt")
	assert.NotContains(t, out, "undated.txt")
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, sampleRows())
	require.NoError(t, err)

	entries, err := ReadJSON(&buf)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "a.txt", entries[0].FileName)
	assert.Equal(t, "APPROVE", entries[0].BREStatus)
	assert.Equal(t, "150000", entries[0].SanctionLimit)
	assert.True(t, entries[0].ActiveCreditCard)

	assert.Equal(t, "REJECT", entries[1].BREStatus)
	assert.Equal(t, "0", entries[1].SanctionLimit)
	assert.False(t, entries[1].ActiveCreditCard)
}

func TestWriteEntriesCSV(t *testing.T) {
	entries := []Entry{
		{FileName: "a.txt", BREStatus: "APPROVE", SanctionLimit: "150000", ActiveCreditCard: true},
	}

	var buf bytes.Buffer
	err := WriteEntriesCSV(&buf, entries)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, EntriesHeader, lines[0])
	assert.Equal(t, "a.txt,APPROVE,150000,true", lines[1])
}
