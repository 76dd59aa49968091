package dataset

// convert.go provides cell-level coercion from raw text to typed values.
//
// Source files come out of an export chain that leaves the usual artifacts:
//   - several date layouts, some with a time component
//   - thousands separators and currency symbols in numeric columns
//   - stray whitespace, surrounding quotes, Excel formula prefixes
//
// Coercion is strict where it matters: a non-empty value that does not parse
// as its column's type is an error, never a silently dropped cell.

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// numericPattern validates a numeric string after cleanup. Matches integers,
// decimals, and scientific notation.
var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// twoDigitYearPivot controls how 2-digit years are read. Parsed years more
// than this many years in the future roll back a century.
var twoDigitYearPivot = 20

// Date layouts split by year width so 2-digit years get pivot handling.
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"2006-01-02 15:04:05", "2006-01-02T15:04:05",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"2006-01-02", "2006/01/02", "2006.01.02",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
	}
)

// parseDate parses a raw date string using the known layouts.
// Returns ok=false for an empty string. A non-empty string that matches no
// layout returns an error; callers decide whether that is a ParseError (load
// time) or an InvalidInputError (search time).
func parseDate(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}

	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true, nil
		}
	}

	pivotYear := time.Now().Year() + twoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true, nil
		}
	}

	return time.Time{}, false, &ParseError{Column: "date", Value: s}
}

// parseNumber parses a raw numeric string to float64.
// Handles currency symbols, thousands separators, and accounting-style
// negatives in parentheses. Returns ok=false for an empty string.
func parseNumber(s string) (float64, bool, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}

	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericPattern.MatchString(s) {
		return 0, false, &ParseError{Column: "number", Value: raw}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, &ParseError{Column: "number", Value: raw}
	}

	return v, true, nil
}

// round2 rounds to 2 decimal places, matching the derived-column contract.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// cleanCell removes common export artifacts from a cell value:
// whitespace, Excel formula prefixes (="value"), and surrounding quotes.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return s
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
