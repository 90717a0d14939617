package finbook

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field coercion: pure, permissive conversions from raw cell text to numeric
// and temporal values. Failures never surface as errors; they degrade to the
// documented defaults (zero amount, unknown date).

// ParseAmount converts a raw cell to a decimal value.
//
// Every rune that is not a digit, '.' or '-' is stripped first, so currency
// symbols, thousands separators and unit suffixes are discarded rather than
// rejected: "$1,234.50" parses as 1234.50. Anything still unparseable,
// including the empty string, yields zero.
func ParseAmount(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// calendarFormats are tried in order before falling back to the D/M/Y match.
var calendarFormats = []string{
	DateFormat,
	readDateFormat,
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// dmyRE matches a D/M/Y-like date: day and month of 1-2 digits, a 2- or
// 4-digit year, separated by '/', '.', '-' or space.
var dmyRE = regexp.MustCompile(`^(\d{1,2})[/. -](\d{1,2})[/. -](\d{2,4})$`)

// ParseFlexDate converts a raw cell to a Date.
//
// It first attempts the calendar formats above; failing that, it matches the
// D/M/Y pattern, with day before month ("05/03/24" is 5 March 2024) and a
// 2-digit year read as 2000+YY. Anything else reports ok=false: the record
// remains valid but is excluded from date-keyed aggregation.
func ParseFlexDate(raw string) (Date, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Date{}, false
	}
	for _, format := range calendarFormats {
		if on, err := time.Parse(format, raw); err == nil {
			return NewDate(on.Date()), true
		}
	}
	m := dmyRE.FindStringSubmatch(raw)
	if m == nil {
		return Date{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, false
	}
	return NewDate(year, time.Month(month), day), true
}

// truthy and falsy literals recognized for the employee active flag.
var (
	truthyLiterals = map[string]bool{"true": true, "active": true, "1": true, "yes": true}
	falsyLiterals  = map[string]bool{"false": true, "inactive": true, "0": true, "no": true}
)

// ParseActive converts a raw cell to the employee active flag. It reports
// recognized=false for literals outside both sets; those default to active.
func ParseActive(raw string) (active, recognized bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case truthyLiterals[s]:
		return true, true
	case falsyLiterals[s]:
		return false, true
	default:
		return true, false
	}
}
