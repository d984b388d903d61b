// Package bureau turns raw credit information company report files into the
// normalized model the rule engine consumes. Field-level problems degrade to
// "no signal" sentinels; only a file that cannot be decoded at all is an
// error.
package bureau

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anivratgoel/carepal-id-bre/internal/model"
)

// flexString decodes a JSON value that the bureau emits sometimes as a
// string and sometimes as a bare number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	s := strings.TrimSpace(string(data))
	if s == "null" {
		s = ""
	}
	*f = flexString(s)
	return nil
}

// rootFields is the report payload, with or without the outer "json" wrapper.
type rootFields struct {
	QECDate string `json:"qec-date"`
	Data    struct {
		CCRResponse struct {
			Reports []reportItem `json:"cIRReportDataLst"`
		} `json:"cCRResponse"`
	} `json:"data"`
}

type fileEnvelope struct {
	rootFields
	JSON *rootFields `json:"json"`
}

type reportItem struct {
	Error  *reportError `json:"error"`
	Report *reportData  `json:"cIRReportData"`
}

type reportError struct {
	ErrorDesc string `json:"errorDesc"`
}

type reportData struct {
	IDAndContactInfo struct {
		PersonalInfo struct {
			Name struct {
				FullName string `json:"fullName"`
			} `json:"name"`
		} `json:"personalInfo"`
	} `json:"iDAndContactInfo"`
	RetailAccountDetails []retailAccount `json:"retailAccountDetails"`
	Enquiries            []enquiryItem   `json:"enquiries"`
}

type retailAccount struct {
	AccountType         string         `json:"accountType"`
	Open                string         `json:"open"`
	Institution         string         `json:"institution"`
	AccountStatus       string         `json:"accountStatus"`
	AssetClassification string         `json:"assetClassificationStatus"`
	SuitFiledStatus     string         `json:"suitFiledStatus"`
	SanctionAmount      flexString     `json:"sanctionAmount"`
	BalanceAmount       flexString     `json:"balanceAmount"`
	DateOpened          string         `json:"dateOpened"`
	DateReported        string         `json:"dateReported"`
	History             []historyEntry `json:"history48Months"`
}

type historyEntry struct {
	Key                 string `json:"key"`
	PaymentStatus       string `json:"paymentStatus"`
	AssetClassification string `json:"assetClassificationStatus"`
	SuitFiledStatus     string `json:"suitFiledStatus"`
}

type enquiryItem struct {
	Date           string `json:"date"`
	Institution    string `json:"institution"`
	RequestPurpose string `json:"requestPurpose"`
}

// ParseFile parses one report file from disk.
func ParseFile(path string) ([]*model.CreditReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, filepath.Base(path))
}

// Parse decodes a bureau report payload. One file can carry several report
// items; each becomes its own CreditReport. A consumer-not-found item
// yields an empty report (no accounts, no enquiries), which the engine
// rejects on its own terms.
func Parse(r io.Reader, fileName string) ([]*model.CreditReport, error) {
	var env fileEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", fileName, err)
	}

	root := &env.rootFields
	if env.JSON != nil {
		if env.JSON.QECDate == "" {
			env.JSON.QECDate = env.rootFields.QECDate
		}
		root = env.JSON
	}

	cutoff := parseCutoff(root.QECDate)

	var reports []*model.CreditReport
	for _, item := range root.Data.CCRResponse.Reports {
		if item.Error != nil {
			if strings.Contains(item.Error.ErrorDesc, "Consumer not found") {
				reports = append(reports, &model.CreditReport{
					FileName:  fileName,
					Applicant: "Consumer Not Found",
					Cutoff:    cutoff,
				})
			}
			continue
		}
		if item.Report == nil {
			continue
		}
		reports = append(reports, buildReport(fileName, cutoff, item.Report))
	}

	if len(reports) == 0 {
		return nil, fmt.Errorf("report %s: no report data found", fileName)
	}
	return reports, nil
}

func buildReport(fileName string, cutoff time.Time, data *reportData) *model.CreditReport {
	report := &model.CreditReport{
		FileName:  fileName,
		Applicant: strings.TrimSpace(data.IDAndContactInfo.PersonalInfo.Name.FullName),
		Cutoff:    cutoff,
	}

	var asOf time.Time
	for _, raw := range data.RetailAccountDetails {
		report.Accounts = append(report.Accounts, buildAccount(raw))
		if d := ParseDate(raw.DateReported); d.After(asOf) {
			asOf = d
		}
	}
	report.AsOf = asOf

	for _, raw := range data.Enquiries {
		report.Enquiries = append(report.Enquiries, model.EnquiryRecord{
			Date:        ParseDate(raw.Date),
			Purpose:     raw.RequestPurpose,
			Institution: raw.Institution,
		})
	}

	return report
}

func buildAccount(raw retailAccount) model.AccountRecord {
	acc := model.AccountRecord{
		AccountType:       raw.AccountType,
		Open:              raw.Open,
		Institution:       raw.Institution,
		Status:            joinStatus(raw.AccountStatus, raw.SuitFiledStatus, raw.AssetClassification),
		SanctionedAmount:  parseAmount(raw.SanctionAmount),
		OutstandingAmount: parseAmount(raw.BalanceAmount),
		OpenDate:          ParseDate(raw.DateOpened),
	}

	for _, h := range raw.History {
		dpd := ParseDPDValue(h.PaymentStatus)
		if v := ParseDPDValue(h.AssetClassification); v > dpd {
			dpd = v
		}
		acc.DPDHistory = append(acc.DPDHistory, model.DPDEntry{
			Period:  ParseMonthKey(h.Key),
			DPD:     dpd,
			Remarks: joinStatus(h.PaymentStatus, h.SuitFiledStatus, h.AssetClassification),
		})
	}
	sort.SliceStable(acc.DPDHistory, func(i, j int) bool {
		return acc.DPDHistory[i].Period.Before(acc.DPDHistory[j].Period)
	})

	return acc
}

// joinStatus folds the bureau's separate status fields into the single
// free-text remarks field the engine scans for derogatory markers.
func joinStatus(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "; ")
}

// parseAmount converts a bureau amount token to a decimal, treating
// anything non-numeric as zero.
func parseAmount(raw flexString) decimal.Decimal {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// parseCutoff parses the report-level cutoff date, which arrives as either
// a plain date or an ISO timestamp.
func parseCutoff(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	return ParseDate(s)
}
