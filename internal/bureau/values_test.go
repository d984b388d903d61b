package bureau

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDPDValue(t *testing.T) {
	// Clean markers.
	for _, s := range []string{"", "000", "0", "STD", "NEW", "CLSD", "*", "NAP", " std "} {
		assert.Equal(t, 0, ParseDPDValue(s), "input %q", s)
	}

	// Numeric tokens, with or without the trailing plus.
	assert.Equal(t, 30, ParseDPDValue("30"))
	assert.Equal(t, 30, ParseDPDValue("30+"))
	assert.Equal(t, 30, ParseDPDValue("030"))
	assert.Equal(t, 120, ParseDPDValue("120"))

	// Classified assets count as 90 days past due.
	assert.Equal(t, 90, ParseDPDValue("SUB"))
	assert.Equal(t, 90, ParseDPDValue("DBT"))
	assert.Equal(t, 90, ParseDPDValue("LSS"))
	assert.Equal(t, 90, ParseDPDValue("sub-standard"))

	// Junk is no signal.
	assert.Equal(t, 0, ParseDPDValue("N/A"))
	assert.Equal(t, 0, ParseDPDValue("-30"))
}

func TestParseMonthKey(t *testing.T) {
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), ParseMonthKey("11-25"))
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), ParseMonthKey("01-20"))

	assert.True(t, ParseMonthKey("").IsZero())
	assert.True(t, ParseMonthKey("13-25").IsZero())
	assert.True(t, ParseMonthKey("garbage").IsZero())
	assert.True(t, ParseMonthKey("11-25-01").IsZero())
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, ParseDate("2025-11-30"))
	assert.Equal(t, want, ParseDate("30-11-2025"))

	assert.True(t, ParseDate("").IsZero())
	assert.True(t, ParseDate("30/11/2025").IsZero())
	assert.True(t, ParseDate("not a date").IsZero())
}
