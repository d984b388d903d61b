package bureau

import (
	"strconv"
	"strings"
	"time"
)

// Asset-classification codes reported in place of a numeric DPD.
// SUB/DBT/LSS all mean the account is at least 90 days past due.
const classifiedDPD = 90

// ParseDPDValue converts a bureau DPD token to a day count. Clean markers
// ("000", "STD", "NEW", "CLSD", "*", "NAP") map to 0, classified assets
// (SUB/DBT/LSS) to 90, and numeric tokens like "30+" to their number.
// Anything unrecognized is 0: no signal, never an error.
func ParseDPDValue(val string) int {
	s := strings.ToUpper(strings.TrimSpace(val))
	switch s {
	case "", "000", "STD", "NEW", "CLSD", "0", "*", "NAP":
		return 0
	}
	if strings.Contains(s, "SUB") || strings.Contains(s, "DBT") || strings.Contains(s, "LSS") {
		return classifiedDPD
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, "+"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseMonthKey parses a history period key like "11-25" (MM-YY) to the
// first of that month. Returns the zero time for malformed keys.
func ParseMonthKey(key string) time.Time {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 2 {
		return time.Time{}
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 0 || year > 99 {
		return time.Time{}
	}
	return time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a bureau date in YYYY-MM-DD or DD-MM-YYYY form.
// Returns the zero time when neither format matches.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", "02-01-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
