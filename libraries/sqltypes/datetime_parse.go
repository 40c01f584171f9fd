// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sqltypes

import (
	"strconv"
	"strings"
	"time"
)

// zonedLayouts carry an offset or zone name, the result is converted into the locale's location.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999 -0700",
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	time.RFC850,
}

// wallLayouts have no zone and are taken as wall clock time.
var wallLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"20060102",
	"20060102 15:04:05.999999999",
	"20060102 15:04",
	"2006-01",
	time.ANSIC,
}

var monthNames = map[string]time.Month{}

func init() {
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		monthNames[name] = m
		monthNames[name[:3]] = m
	}
	monthNames["sept"] = time.September
}

// twoDigitYearMax is the last year a two digit year maps to: 29 is 2029, 30 is 1930.
const twoDigitYearMax = 2029

// parseDateTime accepts, in order of preference:
//   - ISO 8601 and RFC 3339 with an optional fraction and offset, SQL style "yyyy-mm-dd hh:mi:ss.mmm"
//   - RFC 1123, RFC 850 and ANSI C forms
//   - numeric dates in the locale's field order, separated by "/", "-" or "."
//   - dates with an English month name, such as "January 31, 2024", "31 Jan 2024" or "Jan 2024"
//   - any of the above with a time of day, or a time of day alone, with an optional AM or PM
//
// A missing date is today, a missing year the current year and a missing day the first of the month.
func parseDateTime(s string, l *Locale) (DateTime, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return DateTimeNull, formatErr(s, DateTimeTypeIdentifier, nil)
	}
	for _, layout := range zonedLayouts {
		if tm, err := time.Parse(layout, t); err == nil {
			return checkedDateTime(tm.In(l.location()), s)
		}
	}
	for _, layout := range wallLayouts {
		if tm, err := time.Parse(layout, t); err == nil {
			return checkedDateTime(tm, s)
		}
	}
	tm, ok := parseLoose(t, l)
	if !ok {
		return DateTimeNull, formatErr(s, DateTimeTypeIdentifier, nil)
	}
	return checkedDateTime(tm, s)
}

func checkedDateTime(tm time.Time, s string) (DateTime, error) {
	dt, err := NewDateTime(tm)
	if err != nil {
		return DateTimeNull, overflow(s, DateTimeTypeIdentifier)
	}
	return dt, nil
}

type clock struct {
	hour, minute, second, nanos int
}

// parseLoose handles the forms time.Parse layouts cannot express.
func parseLoose(s string, l *Locale) (time.Time, bool) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	var dateFields []string
	var clockField, meridiem string
	for _, f := range fields {
		lf := strings.ToLower(f)
		switch {
		case lf == "am" || lf == "pm":
			if meridiem != "" {
				return time.Time{}, false
			}
			meridiem = lf
		case strings.Contains(f, ":"):
			if clockField != "" {
				return time.Time{}, false
			}
			clockField = lf
			if strings.HasSuffix(lf, "am") || strings.HasSuffix(lf, "pm") {
				clockField, meridiem = lf[:len(lf)-2], lf[len(lf)-2:]
			}
		default:
			dateFields = append(dateFields, f)
		}
	}
	if meridiem != "" && clockField == "" {
		return time.Time{}, false
	}

	var c clock
	if clockField != "" {
		var ok bool
		if c, ok = parseClock(clockField, meridiem); !ok {
			return time.Time{}, false
		}
	}

	today := l.today()
	year, month, day := today.Date()
	if len(dateFields) > 0 {
		var ok bool
		if year, month, day, ok = parseDate(dateFields, l, today.Year()); !ok {
			return time.Time{}, false
		}
	}
	if day < 1 || day > daysIn(month, year) {
		return time.Time{}, false
	}
	return time.Date(year, month, day, c.hour, c.minute, c.second, c.nanos, time.UTC), true
}

// parseClock reads "h:mm", "h:mm:ss" or "h:mm:ss.fff".
func parseClock(s, meridiem string) (clock, bool) {
	var c clock
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return c, false
	}
	var ok bool
	if c.hour, ok = atoi(parts[0], 2); !ok {
		return c, false
	}
	if c.minute, ok = atoi(parts[1], 2); !ok || c.minute > 59 {
		return c, false
	}
	if len(parts) == 3 {
		sec, frac, hasFrac := strings.Cut(parts[2], ".")
		if c.second, ok = atoi(sec, 2); !ok || c.second > 59 {
			return c, false
		}
		if hasFrac {
			if len(frac) == 0 || len(frac) > 9 {
				return c, false
			}
			n, ok := atoi(frac, 9)
			if !ok {
				return c, false
			}
			for i := len(frac); i < 9; i++ {
				n *= 10
			}
			c.nanos = n
		}
	}
	switch meridiem {
	case "":
		if c.hour > 23 {
			return c, false
		}
	case "am", "pm":
		if c.hour < 1 || c.hour > 12 {
			return c, false
		}
		if c.hour == 12 {
			c.hour = 0
		}
		if meridiem == "pm" {
			c.hour += 12
		}
	}
	return c, true
}

// parseDate reads either a single numeric date field or month name forms.
func parseDate(fields []string, l *Locale, currentYear int) (int, time.Month, int, bool) {
	if len(fields) == 1 {
		if parts := splitNumericDate(fields[0], l); parts != nil {
			return numericDate(parts, l.DateOrder, currentYear)
		}
	}
	return namedDate(fields, currentYear)
}

func splitNumericDate(s string, l *Locale) []string {
	for _, sep := range []string{l.DateSeparator, "/", "-", "."} {
		if sep == "" || !strings.Contains(s, sep) {
			continue
		}
		parts := strings.Split(s, sep)
		if len(parts) < 2 || len(parts) > 3 {
			return nil
		}
		for _, p := range parts {
			if _, ok := atoi(p, 4); !ok {
				return nil
			}
		}
		return parts
	}
	return nil
}

func numericDate(parts []string, order DateOrder, currentYear int) (int, time.Month, int, bool) {
	n := make([]int, len(parts))
	for i, p := range parts {
		n[i], _ = atoi(p, 4)
	}
	var y, m, d int
	switch {
	case len(parts) == 3 && len(parts[0]) == 4:
		y, m, d = n[0], n[1], n[2]
	case len(parts) == 3 && order == DayMonthYear:
		d, m, y = n[0], n[1], expandYear(parts[2], n[2])
	case len(parts) == 3 && order == YearMonthDay:
		y, m, d = expandYear(parts[0], n[0]), n[1], n[2]
	case len(parts) == 3:
		m, d, y = n[0], n[1], expandYear(parts[2], n[2])
	case len(parts[0]) == 4:
		y, m, d = n[0], n[1], 1
	case len(parts[1]) == 4:
		m, y, d = n[0], n[1], 1
	case order == DayMonthYear:
		d, m, y = n[0], n[1], currentYear
	default:
		m, d, y = n[0], n[1], currentYear
	}
	if m < 1 || m > 12 {
		return 0, 0, 0, false
	}
	return y, time.Month(m), d, true
}

func namedDate(fields []string, currentYear int) (int, time.Month, int, bool) {
	var month time.Month
	var nums []string
	for _, f := range fields {
		lf := strings.TrimSuffix(strings.ToLower(f), ".")
		if m, ok := monthNames[lf]; ok {
			if month != 0 {
				return 0, 0, 0, false
			}
			month = m
			continue
		}
		nums = append(nums, strings.TrimSuffix(lf, "th"))
	}
	if month == 0 || len(nums) > 2 {
		return 0, 0, 0, false
	}
	year, day := currentYear, 1
	seenYear, seenDay := false, false
	for _, p := range nums {
		p = strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(p, "st"), "nd"), "rd")
		v, ok := atoi(p, 4)
		if !ok {
			return 0, 0, 0, false
		}
		if len(p) <= 2 && v >= 1 && v <= 31 && !seenDay {
			day, seenDay = v, true
		} else if !seenYear {
			year, seenYear = expandYear(p, v), true
		} else {
			return 0, 0, 0, false
		}
	}
	return year, month, day, true
}

func expandYear(text string, v int) int {
	if len(text) > 2 {
		return v
	}
	y := twoDigitYearMax/100*100 + v
	if y > twoDigitYearMax {
		y -= 100
	}
	return y
}

// atoi parses 1 to maxDigits decimal digits.
func atoi(s string, maxDigits int) (int, bool) {
	if len(s) == 0 || len(s) > maxDigits {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}
