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
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
)

// DateOrder is the order of the day, month and year fields in a numeric date.
type DateOrder uint8

const (
	MonthDayYear DateOrder = iota
	DayMonthYear
	YearMonthDay
)

func (o DateOrder) String() string {
	switch o {
	case MonthDayYear:
		return "mdy"
	case DayMonthYear:
		return "dmy"
	case YearMonthDay:
		return "ymd"
	default:
		return fmt.Sprintf("DateOrder(%d)", uint8(o))
	}
}

// Locale carries everything culture dependent: separators for numbers, the field order of numeric
// dates, the time zone that dates with an explicit offset are converted into, and the clock used to
// fill in missing date fields. Locales are not modified after construction; the With methods return
// copies.
type Locale struct {
	Tag              language.Tag
	DecimalSeparator string
	GroupSeparator   string
	DateSeparator    string
	DateOrder        DateOrder
	Location         *time.Location
	Now              func() time.Time
}

var invariantLocale = Locale{
	Tag:              language.Und,
	DecimalSeparator: ".",
	GroupSeparator:   ",",
	DateSeparator:    "/",
	DateOrder:        MonthDayYear,
	Location:         time.UTC,
	Now:              time.Now,
}

// InvariantLocale returns a new locale for the culture independent forms: "." as the decimal separator
// and month/day/year dates.
func InvariantLocale() *Locale {
	l := invariantLocale
	return &l
}

// NewLocale derives separators and date order for t from CLDR data.
func NewLocale(t language.Tag) *Locale {
	if t == language.Und {
		return InvariantLocale()
	}
	// 1234567.5 has grouping in every locale, including those that only group above four digits
	s := []rune(message.NewPrinter(t).Sprint(number.Decimal(1234567.5, number.MinFractionDigits(1))))
	group := between(s, '1', '2')
	dec := between(s, '7', '5')
	if dec == "" {
		dec = "."
	}
	l := &Locale{
		Tag:              t,
		DecimalSeparator: dec,
		GroupSeparator:   group,
		DateSeparator:    "/",
		DateOrder:        DayMonthYear,
		Location:         time.UTC,
		Now:              time.Now,
	}
	base, _ := t.Base()
	region, _ := t.Region()
	switch base.String() {
	case "en":
		if r := region.String(); r == "US" || r == "ZZ" || r == "PH" {
			l.DateOrder = MonthDayYear
		}
	case "ja", "zh", "ko", "hu", "lt", "mn":
		l.DateOrder = YearMonthDay
	case "de", "ru", "pl", "cs", "tr", "fi", "nb", "da", "uk", "sk", "ro":
		l.DateSeparator = "."
	case "nl":
		l.DateSeparator = "-"
	}
	return l
}

// between returns the runes strictly between the first occurrence of from and the next occurrence of to.
func between(s []rune, from, to rune) string {
	start := -1
	for i, r := range s {
		if start < 0 && r == from {
			start = i + 1
		} else if start >= 0 && r == to {
			return string(s[start:i])
		}
	}
	return ""
}

// LocaleForLCID returns the locale of a Windows locale identifier.
func LocaleForLCID(lcid uint32) (*Locale, error) {
	t, ok := collation.Tag(lcid)
	if !ok {
		return nil, collation.ErrUnsupportedLCID.New(lcid)
	}
	return NewLocale(t), nil
}

func (l *Locale) clone() *Locale {
	c := *l
	return &c
}

// WithNow returns a copy of l whose clock is now.
func (l *Locale) WithNow(now func() time.Time) *Locale {
	c := l.clone()
	c.Now = now
	return c
}

// WithLocation returns a copy of l that converts dates with an offset into loc.
func (l *Locale) WithLocation(loc *time.Location) *Locale {
	c := l.clone()
	c.Location = loc
	return c
}

func (l *Locale) location() *time.Location {
	if l.Location == nil {
		return time.UTC
	}
	return l.Location
}

// today returns the current date in the locale's time zone.
func (l *Locale) today() time.Time {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	return now().In(l.location())
}

// Parse reads s as a value of type id. Numbers may use the locale's decimal and group separators and
// dates are read in the locale's field order.
func (l *Locale) Parse(id Identifier, s string) (Value, error) {
	switch id {
	case SingleTypeIdentifier, DoubleTypeIdentifier, DecimalTypeIdentifier, MoneyTypeIdentifier,
		ByteTypeIdentifier, Int16TypeIdentifier, Int32TypeIdentifier, Int64TypeIdentifier:
		return Parse(id, l.normalizeNumber(s))
	case DateTimeTypeIdentifier:
		return parseDateTime(s, l)
	default:
		return Parse(id, s)
	}
}

// normalizeNumber rewrites locale separators to the invariant ones.
func (l *Locale) normalizeNumber(s string) string {
	if l.DecimalSeparator == "." && (l.GroupSeparator == "," || l.GroupSeparator == "") {
		return s
	}
	if l.GroupSeparator != "" {
		s = strings.ReplaceAll(s, l.GroupSeparator, "")
		// CLDR uses no-break spaces as group separators, people type plain ones
		if strings.TrimSpace(l.GroupSeparator) == "" {
			s = strings.TrimSpace(s)
			s = strings.ReplaceAll(s, " ", "")
		}
	}
	return strings.ReplaceAll(s, l.DecimalSeparator, ".")
}

// Format renders v with the locale's decimal separator, and DateTime values in the locale's field order.
func (l *Locale) Format(v Value) string {
	if v == nil || v.IsNull() {
		return nullString
	}
	switch x := v.(type) {
	case Single, Double, Decimal, Money:
		if l.DecimalSeparator == "." {
			return x.String()
		}
		return strings.Replace(x.String(), ".", l.DecimalSeparator, 1)
	case DateTime:
		t := x.time()
		var date string
		sep := l.DateSeparator
		switch l.DateOrder {
		case DayMonthYear:
			date = fmt.Sprintf("%02d%s%02d%s%04d", t.Day(), sep, int(t.Month()), sep, t.Year())
		case YearMonthDay:
			date = fmt.Sprintf("%04d%s%02d%s%02d", t.Year(), sep, int(t.Month()), sep, t.Day())
		default:
			date = fmt.Sprintf("%02d%s%02d%s%04d", int(t.Month()), sep, t.Day(), sep, t.Year())
		}
		return date + " " + t.Format("15:04:05.000")
	default:
		return v.String()
	}
}
