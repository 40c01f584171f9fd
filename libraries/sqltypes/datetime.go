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
	"math"
	"time"
)

const (
	// TicksPerSecond is the resolution of the time of day: one tick is 1/300 of a second.
	TicksPerSecond = 300
	TicksPerMinute = TicksPerSecond * 60
	TicksPerHour   = TicksPerMinute * 60
	ticksPerDay    = TicksPerHour * 24

	// MinDayTicks is 1753-01-01, MaxDayTicks is 9999-12-31.
	MinDayTicks  = -53690
	MaxDayTicks  = 2958463
	MaxTimeTicks = ticksPerDay - 1

	secondsPerDay  = 24 * 60 * 60
	nanosPerSecond = int64(time.Second)
)

// dayZero is the date at day tick 0.
var dayZero = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateTime is a nullable moment between 1753-01-01 00:00:00.000 and 9999-12-31 23:59:59.997, the T-SQL
// datetime. It is held as whole days since 1900-01-01 plus the time of day in 1/300 second ticks, and
// carries no time zone. The zero value is Null.
type DateTime struct {
	day     int32
	ticks   int32
	notNull bool
}

var _ Value = DateTime{}

var (
	DateTimeNull = DateTime{}
	DateTimeMin  = DateTime{day: MinDayTicks, ticks: 0, notNull: true}
	DateTimeMax  = DateTime{day: MaxDayTicks, ticks: MaxTimeTicks, notNull: true}
)

// NewDateTime takes the wall clock of t in its own location, rounding to the nearest tick.
func NewDateTime(t time.Time) (DateTime, error) {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	day := (midnight.Unix() - dayZero.Unix()) / secondsPerDay
	sinceMidnight := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())
	return fromDayAndNanoseconds(day, int64(sinceMidnight), t)
}

// fromDayAndNanoseconds rounds ns, at most one day, to the nearest tick. Half a tick rounds up.
func fromDayAndNanoseconds(day, ns int64, orig interface{}) (DateTime, error) {
	return fromDayAndTicks(day, (ns*TicksPerSecond+nanosPerSecond/2)/nanosPerSecond, orig)
}

// fromDayAndTicks normalizes ticks into [0, MaxTimeTicks], carrying whole days, and checks the range.
func fromDayAndTicks(day, ticks int64, orig interface{}) (DateTime, error) {
	day += floorDiv(ticks, ticksPerDay)
	ticks -= floorDiv(ticks, ticksPerDay) * ticksPerDay
	if day < MinDayTicks || day > MaxDayTicks {
		return DateTimeNull, overflow(orig, DateTimeTypeIdentifier)
	}
	return DateTime{day: int32(day), ticks: int32(ticks), notNull: true}, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// NewDateTimeFromParts builds a DateTime from calendar fields. Milliseconds may be fractional and
// round to the nearest tick.
func NewDateTimeFromParts(year, month, day, hour, minute, second int, millisecond float64) (DateTime, error) {
	switch {
	case month < 1 || month > 12:
		return DateTimeNull, ErrArgument.New(DateTimeTypeIdentifier.String(), fmt.Sprintf("month %d is out of range", month))
	case day < 1 || day > daysIn(time.Month(month), year):
		return DateTimeNull, ErrArgument.New(DateTimeTypeIdentifier.String(), fmt.Sprintf("day %d is out of range", day))
	case hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59:
		return DateTimeNull, ErrArgument.New(DateTimeTypeIdentifier.String(), fmt.Sprintf("%02d:%02d:%02d is not a valid time", hour, minute, second))
	case millisecond < 0 || millisecond >= 1000:
		return DateTimeNull, ErrArgument.New(DateTimeTypeIdentifier.String(), fmt.Sprintf("millisecond %v is out of range", millisecond))
	}
	midnight := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	d := (midnight.Unix() - dayZero.Unix()) / secondsPerDay
	ns := int64((hour*60+minute)*60+second)*nanosPerSecond + int64(math.Round(millisecond*1e6))
	return fromDayAndNanoseconds(d, ns, fmt.Sprintf("%04d-%02d-%02d", year, month, day))
}

// NewDateTimeFromTicks takes the stored form directly.
func NewDateTimeFromTicks(dayTicks, timeTicks int32) (DateTime, error) {
	if dayTicks < MinDayTicks || dayTicks > MaxDayTicks || timeTicks < 0 || timeTicks > MaxTimeTicks {
		return DateTimeNull, overflow(fmt.Sprintf("%d:%d", dayTicks, timeTicks), DateTimeTypeIdentifier)
	}
	return DateTime{day: dayTicks, ticks: timeTicks, notNull: true}, nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDateTime parses s with the invariant locale. See Locale.Parse for the accepted forms.
func ParseDateTime(s string) (DateTime, error) {
	return parseDateTime(s, &invariantLocale)
}

// IsNull implements Value interface.
func (x DateTime) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x DateTime) Type() Identifier {
	return DateTimeTypeIdentifier
}

// Value returns the moment as a UTC time.Time.
func (x DateTime) Value() (time.Time, error) {
	if x.IsNull() {
		return time.Time{}, nullValue(DateTimeTypeIdentifier)
	}
	return x.time(), nil
}

// Time is the same as Value.
func (x DateTime) Time() (time.Time, error) {
	return x.Value()
}

func (x DateTime) time() time.Time {
	// 10/3 ms per tick, rounded to the nearest millisecond
	ms := (int64(x.ticks)*10 + 1) / 3
	return dayZero.AddDate(0, 0, int(x.day)).Add(time.Duration(ms) * time.Millisecond)
}

// DayTicks is the number of days since 1900-01-01, negative before it.
func (x DateTime) DayTicks() (int32, error) {
	if x.IsNull() {
		return 0, nullValue(DateTimeTypeIdentifier)
	}
	return x.day, nil
}

// TimeTicks is the time of day in 1/300 second ticks.
func (x DateTime) TimeTicks() (int32, error) {
	if x.IsNull() {
		return 0, nullValue(DateTimeTypeIdentifier)
	}
	return x.ticks, nil
}

// String implements Value interface, as "yyyy-mm-dd hh:mi:ss.mmm".
func (x DateTime) String() string {
	if x.IsNull() {
		return nullString
	}
	return x.time().Format("2006-01-02 15:04:05.000")
}

// Equals implements Value interface.
func (x DateTime) Equals(other Value) bool {
	y, ok := other.(DateTime)
	return ok && x == y
}

func compareDateTime(x, y DateTime) int {
	if c := compareInt64(int64(x.day), int64(y.day)); c != 0 {
		return c
	}
	return compareInt64(int64(x.ticks), int64(y.ticks))
}

// CompareTo implements Value interface.
func (x DateTime) CompareTo(other Value) (int, error) {
	y, ok := other.(DateTime)
	if !ok {
		return 0, typeMismatch(DateTimeTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareDateTime(x, y), nil
}

// Add moves x by d, rounding the result to the nearest tick.
func (x DateTime) Add(d time.Duration) (DateTime, error) {
	if x.IsNull() {
		return DateTimeNull, nil
	}
	return x.shift(d, 1)
}

func (x DateTime) Subtract(d time.Duration) (DateTime, error) {
	if x.IsNull() {
		return DateTimeNull, nil
	}
	return x.shift(d, -1)
}

// shift adds sign*d in tick arithmetic. d is split into whole days and a remainder so that neither
// negating it nor scaling the remainder by TicksPerSecond can overflow.
func (x DateTime) shift(d time.Duration, sign int64) (DateTime, error) {
	const day = 24 * time.Hour
	days, rem := sign*int64(d/day), sign*int64(d%day)
	// in units of 1/(300*1e9) s
	n := int64(x.ticks)*nanosPerSecond + rem*TicksPerSecond + nanosPerSecond/2
	return fromDayAndTicks(int64(x.day)+days, floorDiv(n, nanosPerSecond), d)
}

func (x DateTime) compare(y DateTime, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareDateTime(x, y), op)
}

func (x DateTime) Equal(y DateTime) Boolean              { return x.compare(y, opEqual) }
func (x DateTime) NotEqual(y DateTime) Boolean           { return x.compare(y, opNotEqual) }
func (x DateTime) LessThan(y DateTime) Boolean           { return x.compare(y, opLess) }
func (x DateTime) LessThanOrEqual(y DateTime) Boolean    { return x.compare(y, opLessOrEqual) }
func (x DateTime) GreaterThan(y DateTime) Boolean        { return x.compare(y, opGreater) }
func (x DateTime) GreaterThanOrEqual(y DateTime) Boolean { return x.compare(y, opGreaterOrEqual) }

func (x DateTime) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
