package bureau

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `{
  "json": {
    "qec-date": "2025-04-06T18:06:11.418Z",
    "data": {
      "cCRResponse": {
        "cIRReportDataLst": [
          {
            "cIRReportData": {
              "iDAndContactInfo": {
                "personalInfo": {"name": {"fullName": " Asha Rao "}}
              },
              "retailAccountDetails": [
                {
                  "accountType": "Gold Loan",
                  "open": "Yes",
                  "institution": "Sunrise Finance",
                  "accountStatus": "Current Account",
                  "sanctionAmount": "250000",
                  "balanceAmount": 120000,
                  "dateOpened": "2021-03-10",
                  "dateReported": "2025-11-30",
                  "history48Months": [
                    {"key": "11-25", "paymentStatus": "000", "assetClassificationStatus": "STD"},
                    {"key": "10-25", "paymentStatus": "30+", "suitFiledStatus": "Wilful Default", "assetClassificationStatus": "STD"}
                  ]
                },
                {
                  "accountType": "Credit Card",
                  "open": "No",
                  "institution": "Metro Bank",
                  "accountStatus": "Closed Account",
                  "sanctionAmount": "N/A",
                  "dateOpened": "31-01-2020",
                  "dateReported": "2025-10-15"
                }
              ],
              "enquiries": [
                {"date": "2025-11-01", "institution": "Metro Bank", "requestPurpose": "Credit Card"}
              ]
            }
          }
        ]
      }
    }
  }
}`

func TestParse(t *testing.T) {
	reports, err := Parse(strings.NewReader(sampleReport), "sample.txt")
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, "sample.txt", r.FileName)
	assert.Equal(t, "Asha Rao", r.Applicant)
	assert.Equal(t, time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC), r.Cutoff)
	assert.True(t, r.HasCutoff())
	// As-of is the latest dateReported across accounts.
	assert.Equal(t, time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), r.AsOf)

	require.Len(t, r.Accounts, 2)

	gold := r.Accounts[0]
	assert.Equal(t, "Gold Loan", gold.AccountType)
	assert.Equal(t, "Yes", gold.Open)
	assert.Equal(t, "Sunrise Finance", gold.Institution)
	assert.Equal(t, "Current Account", gold.Status)
	assert.True(t, gold.SanctionedAmount.Equal(decimal.NewFromInt(250000)))
	assert.True(t, gold.OutstandingAmount.Equal(decimal.NewFromInt(120000)))
	assert.Equal(t, time.Date(2021, 3, 10, 0, 0, 0, 0, time.UTC), gold.OpenDate)

	// History is chronological regardless of source order.
	require.Len(t, gold.DPDHistory, 2)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), gold.DPDHistory[0].Period)
	assert.Equal(t, 30, gold.DPDHistory[0].DPD)
	// Month-level status fields fold into the entry's remarks.
	assert.Equal(t, "30+; Wilful Default; STD", gold.DPDHistory[0].Remarks)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), gold.DPDHistory[1].Period)
	assert.Equal(t, 0, gold.DPDHistory[1].DPD)
	assert.Equal(t, "000; STD", gold.DPDHistory[1].Remarks)

	card := r.Accounts[1]
	assert.Equal(t, "Closed Account", card.Status)
	assert.True(t, card.SanctionedAmount.IsZero(), "N/A sanction amount degrades to zero")
	assert.Equal(t, time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC), card.OpenDate)
	assert.Empty(t, card.DPDHistory)

	require.Len(t, r.Enquiries, 1)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), r.Enquiries[0].Date)
	assert.Equal(t, "Credit Card", r.Enquiries[0].Purpose)
	assert.Equal(t, "Metro Bank", r.Enquiries[0].Institution)
}

func TestParse_NoWrapper(t *testing.T) {
	// Some files carry the payload at the root instead of under "json".
	unwrapped := `{
	  "data": {
	    "cCRResponse": {
	      "cIRReportDataLst": [
	        {"cIRReportData": {"retailAccountDetails": [{"accountType": "Personal Loan", "open": "Yes"}]}}
	      ]
	    }
	  }
	}`

	reports, err := Parse(strings.NewReader(unwrapped), "plain.json")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].HasCutoff())
	assert.True(t, reports[0].AsOf.IsZero())
	require.Len(t, reports[0].Accounts, 1)
}

func TestParse_ConsumerNotFound(t *testing.T) {
	payload := `{
	  "json": {
	    "data": {
	      "cCRResponse": {
	        "cIRReportDataLst": [
	          {"error": {"errorDesc": "Consumer not found in bureau records"}}
	        ]
	      }
	    }
	  }
	}`

	reports, err := Parse(strings.NewReader(payload), "ntc.txt")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Consumer Not Found", reports[0].Applicant)
	assert.Empty(t, reports[0].Accounts)
	assert.Empty(t, reports[0].Enquiries)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(strings.NewReader("not json at all"), "bad.txt")
	require.Error(t, err)

	_, err = Parse(strings.NewReader(`{"data": {}}`), "empty.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no report data")
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.JSON"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Name)
	assert.Equal(t, "b.JSON", files[1].Name)
	assert.Equal(t, filepath.Join(dir, "a.txt"), files[0].Path)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}
