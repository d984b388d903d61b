package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DPDEntry is one month of repayment history: the reporting period (first of
// the month), the days-past-due reported for it, and the month's raw status
// remarks, which may carry derogatory markers of their own.
type DPDEntry struct {
	Period  time.Time
	DPD     int
	Remarks string
}

// AccountRecord is one credit account line from a bureau report.
// Fields the source file omits or mangles are left at their zero values;
// aggregators treat those as "no signal" rather than failing the report.
type AccountRecord struct {
	AccountType       string
	Open              string // "Yes", "No", or "" when not reported
	Institution       string
	Status            string // free-text remarks, may carry derogatory markers
	SanctionedAmount  decimal.Decimal
	OutstandingAmount decimal.Decimal
	OpenDate          time.Time // zero = unknown
	DPDHistory        []DPDEntry
}

// EnquiryRecord is a single credit enquiry event.
type EnquiryRecord struct {
	Date        time.Time
	Purpose     string
	Institution string
}

// CreditReport is the normalized form of one bureau report: everything the
// rule engine needs, scoped to one source file. It is never mutated after
// parsing.
type CreditReport struct {
	FileName  string
	Applicant string
	AsOf      time.Time // report pull date; zero when the file carries none
	Cutoff    time.Time // optional policy cutoff date from the source file
	Accounts  []AccountRecord
	Enquiries []EnquiryRecord
}

// HasCutoff reports whether the source file carried a cutoff date.
func (r *CreditReport) HasCutoff() bool {
	return !r.Cutoff.IsZero()
}
