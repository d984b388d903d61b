// Package metrics computes the per-report signals the decision pipeline
// consumes. Every aggregator is a pure function over one report's records
// and an evaluation time; missing or malformed fields contribute nothing
// instead of failing the report.
package metrics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anivratgoel/carepal-id-bre/internal/classify"
	"github.com/anivratgoel/carepal-id-bre/internal/model"
)

// Metrics bundles every aggregated signal for one report.
type Metrics struct {
	ActiveCreditCard  bool
	LatestDPD         int
	SevereStatus      string
	VintageMonths     int
	VintageKnown      bool
	EnquiryCount      int
	SecuredExposure   decimal.Decimal
	UnsecuredExposure decimal.Decimal
}

// Compute runs every aggregator over the report.
func Compute(r *model.CreditReport, asOf time.Time, c *classify.Classifier, m *classify.Matcher, enquiryWindowMonths int) Metrics {
	months, known := Vintage(r.Accounts, asOf)
	secured, unsecured := Exposure(r.Accounts, c)
	return Metrics{
		ActiveCreditCard:  ActiveCreditCard(r.Accounts),
		LatestDPD:         LatestDPD(r.Accounts),
		SevereStatus:      SevereStatus(r.Accounts, m),
		VintageMonths:     months,
		VintageKnown:      known,
		EnquiryCount:      EnquiryCount(r.Enquiries, asOf, enquiryWindowMonths),
		SecuredExposure:   secured,
		UnsecuredExposure: unsecured,
	}
}

func isOpen(acc model.AccountRecord) bool {
	return strings.EqualFold(acc.Open, "yes")
}

// ActiveCreditCard reports whether any account is a currently open credit
// card. The check is on the raw account type, independent of category.
func ActiveCreditCard(accounts []model.AccountRecord) bool {
	for _, acc := range accounts {
		if strings.Contains(strings.ToLower(acc.AccountType), "credit card") && isOpen(acc) {
			return true
		}
	}
	return false
}

// LatestDPD returns the DPD reported at the chronologically latest history
// period across all accounts. Ties at the latest period take the maximum
// DPD. A report with no dated history anywhere yields 0.
func LatestDPD(accounts []model.AccountRecord) int {
	var latest time.Time
	dpd := 0
	for _, acc := range accounts {
		for _, e := range acc.DPDHistory {
			if e.Period.IsZero() {
				continue
			}
			switch {
			case e.Period.After(latest):
				latest = e.Period
				dpd = e.DPD
			case e.Period.Equal(latest) && e.DPD > dpd:
				dpd = e.DPD
			}
		}
	}
	return dpd
}

// SevereStatus scans every account's status remarks, and each month of its
// repayment history, for derogatory keywords and returns the most severe one
// found, or model.SevereStatusNone.
func SevereStatus(accounts []model.AccountRecord, m *classify.Matcher) string {
	texts := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		texts = append(texts, acc.Status)
		for _, e := range acc.DPDHistory {
			texts = append(texts, e.Remarks)
		}
	}
	if kw := m.MostSevere(texts...); kw != "" {
		return kw
	}
	return model.SevereStatusNone
}

// Vintage returns the whole months between the earliest known open date and
// asOf. known is false when no account carries a usable open date; callers
// must not read months in that case.
func Vintage(accounts []model.AccountRecord, asOf time.Time) (months int, known bool) {
	var oldest time.Time
	for _, acc := range accounts {
		if acc.OpenDate.IsZero() {
			continue
		}
		if oldest.IsZero() || acc.OpenDate.Before(oldest) {
			oldest = acc.OpenDate
		}
	}
	if oldest.IsZero() {
		return 0, false
	}

	months = (asOf.Year()-oldest.Year())*12 + int(asOf.Month()) - int(oldest.Month())
	if asOf.Day() < oldest.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months, true
}

// EnquiryCount counts enquiries dated within the trailing window
// [asOf - windowMonths, asOf]. Undated enquiries are ignored.
func EnquiryCount(enquiries []model.EnquiryRecord, asOf time.Time, windowMonths int) int {
	start := asOf.AddDate(0, -windowMonths, 0)
	count := 0
	for _, enq := range enquiries {
		if enq.Date.IsZero() {
			continue
		}
		if !enq.Date.Before(start) && !enq.Date.After(asOf) {
			count++
		}
	}
	return count
}

// Exposure sums outstanding balances over open accounts, split by category.
// Unknown-category accounts are excluded from both totals.
func Exposure(accounts []model.AccountRecord, c *classify.Classifier) (secured, unsecured decimal.Decimal) {
	for _, acc := range accounts {
		if !isOpen(acc) {
			continue
		}
		switch c.Classify(acc.AccountType) {
		case model.CategorySecured:
			secured = secured.Add(acc.OutstandingAmount)
		case model.CategoryUnsecured:
			unsecured = unsecured.Add(acc.OutstandingAmount)
		}
	}
	return secured, unsecured
}
