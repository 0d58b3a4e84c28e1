package timeutil

import (
	"strings"
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30)
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// Now returns the current time in IST
func Now() time.Time {
	return time.Now().In(IST)
}

// Today returns the current calendar date in IST as YYYY-MM-DD,
// the entry form's default date.
func Today() string {
	return Now().Format("2006-01-02")
}

// ParseDate parses a record date. The store may hand back a bare
// calendar date or a full RFC3339 timestamp; only the date part matters.
func ParseDate(value string) (time.Time, error) {
	if i := strings.IndexByte(value, 'T'); i > 0 {
		value = value[:i]
	}
	return time.ParseInLocation("2006-01-02", value, IST)
}

// FormatDDMMYYYY reformats a record date for table display and CSV
// export. Unparseable dates pass through unchanged.
func FormatDDMMYYYY(value string) string {
	t, err := ParseDate(value)
	if err != nil {
		return value
	}
	return t.Format("02/01/2006")
}

// Month returns the calendar month (1-12) of a record date, or 0 if the
// date cannot be parsed.
func Month(value string) int {
	t, err := ParseDate(value)
	if err != nil {
		return 0
	}
	return int(t.Month())
}

// Year returns the calendar year of a record date, or 0 if the date
// cannot be parsed.
func Year(value string) int {
	t, err := ParseDate(value)
	if err != nil {
		return 0
	}
	return t.Year()
}
