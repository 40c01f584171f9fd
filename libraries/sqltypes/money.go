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
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MoneyScale is the number of fractional digits a Money value carries.
	MoneyScale = 4
	// TicksPerUnit is the number of Money ticks in one currency unit.
	TicksPerUnit = 10000
	// moneyPrecision is the precision of the T-SQL money type.
	moneyPrecision = 19
)

// Money is a nullable currency amount held as a signed 64-bit count of 1/10000 units, the T-SQL money.
// Its range is -922,337,203,685,477.5808 to 922,337,203,685,477.5807. The zero value is Null.
type Money struct {
	ticks   int64
	notNull bool
}

var _ Value = Money{}

var (
	MoneyNull = Money{}
	MoneyZero = NewMoneyFromTicks(0)
	MoneyMin  = NewMoneyFromTicks(math.MinInt64)
	MoneyMax  = NewMoneyFromTicks(math.MaxInt64)
)

// NewMoney rounds d half away from zero to four fractional digits.
func NewMoney(d decimal.Decimal) (Money, error) {
	r := d.Round(MoneyScale)
	c := r.Coefficient()
	if !c.IsInt64() {
		return MoneyNull, overflow(d.String(), MoneyTypeIdentifier)
	}
	return NewMoneyFromTicks(c.Int64()), nil
}

// NewMoneyFromInt32 never fails, every int32 fits.
func NewMoneyFromInt32(v int32) Money {
	return NewMoneyFromTicks(int64(v) * TicksPerUnit)
}

func NewMoneyFromInt64(v int64) (Money, error) {
	t, ok := mulInt64(v, TicksPerUnit)
	if !ok {
		return MoneyNull, overflow(v, MoneyTypeIdentifier)
	}
	return NewMoneyFromTicks(t), nil
}

func NewMoneyFromFloat64(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return MoneyNull, overflow(v, MoneyTypeIdentifier)
	}
	return NewMoney(decimal.NewFromFloat(v))
}

// NewMoneyFromTicks wraps a raw count of 1/10000 units.
func NewMoneyFromTicks(t int64) Money {
	return Money{ticks: t, notNull: true}
}

// ParseMoney accepts the Decimal grammar plus an optional leading "$" and "," group separators in the
// integral part.
func ParseMoney(s string) (Money, error) {
	t := strings.TrimSpace(s)
	sign := ""
	if len(t) > 0 && (t[0] == '-' || t[0] == '+') {
		sign, t = t[:1], t[1:]
	}
	t = strings.TrimPrefix(t, "$")
	intPart, frac, hasFrac := strings.Cut(t, ".")
	if strings.Contains(intPart, ",") {
		if strings.HasPrefix(intPart, ",") || strings.HasSuffix(intPart, ",") || strings.Contains(intPart, ",,") {
			return MoneyNull, formatErr(s, MoneyTypeIdentifier, nil)
		}
		intPart = strings.ReplaceAll(intPart, ",", "")
	}
	t = sign + intPart
	if hasFrac {
		t += "." + frac
	}
	if !isDecimalLiteral(t) {
		return MoneyNull, formatErr(s, MoneyTypeIdentifier, nil)
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return MoneyNull, formatErr(s, MoneyTypeIdentifier, err)
	}
	return NewMoney(d)
}

// IsNull implements Value interface.
func (x Money) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Money) Type() Identifier {
	return MoneyTypeIdentifier
}

func (x Money) Value() (decimal.Decimal, error) {
	if x.IsNull() {
		return decimal.Decimal{}, nullValue(MoneyTypeIdentifier)
	}
	return x.decimal(), nil
}

// Ticks returns the raw count of 1/10000 units.
func (x Money) Ticks() (int64, error) {
	if x.IsNull() {
		return 0, nullValue(MoneyTypeIdentifier)
	}
	return x.ticks, nil
}

func (x Money) decimal() decimal.Decimal {
	return decimal.New(x.ticks, -MoneyScale)
}

// String implements Value interface. Between two and four fractional digits are rendered.
func (x Money) String() string {
	if x.IsNull() {
		return nullString
	}
	s := x.decimal().StringFixed(MoneyScale)
	for i := 0; i < MoneyScale-2 && strings.HasSuffix(s, "0"); i++ {
		s = s[:len(s)-1]
	}
	return s
}

// Equals implements Value interface.
func (x Money) Equals(other Value) bool {
	y, ok := other.(Money)
	return ok && x == y
}

// CompareTo implements Value interface.
func (x Money) CompareTo(other Value) (int, error) {
	y, ok := other.(Money)
	if !ok {
		return 0, typeMismatch(MoneyTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareInt64(x.ticks, y.ticks), nil
}

func (x Money) Add(y Money) (Money, error) {
	if x.IsNull() || y.IsNull() {
		return MoneyNull, nil
	}
	r, ok := addInt64(x.ticks, y.ticks)
	if !ok {
		return MoneyNull, overflow(x.String()+" + "+y.String(), MoneyTypeIdentifier)
	}
	return NewMoneyFromTicks(r), nil
}

func (x Money) Subtract(y Money) (Money, error) {
	if x.IsNull() || y.IsNull() {
		return MoneyNull, nil
	}
	r, ok := subInt64(x.ticks, y.ticks)
	if !ok {
		return MoneyNull, overflow(x.String()+" - "+y.String(), MoneyTypeIdentifier)
	}
	return NewMoneyFromTicks(r), nil
}

// Multiply computes the exact product and rounds it to four fractional digits.
func (x Money) Multiply(y Money) (Money, error) {
	if x.IsNull() || y.IsNull() {
		return MoneyNull, nil
	}
	return NewMoney(x.decimal().Mul(y.decimal()))
}

func (x Money) Divide(y Money) (Money, error) {
	if x.IsNull() || y.IsNull() {
		return MoneyNull, nil
	}
	if y.ticks == 0 {
		return MoneyNull, divideByZero(MoneyTypeIdentifier)
	}
	return NewMoney(decimal.NewFromInt(x.ticks).DivRound(decimal.NewFromInt(y.ticks), MoneyScale))
}

func (x Money) Mod(y Money) (Money, error) {
	if x.IsNull() || y.IsNull() {
		return MoneyNull, nil
	}
	if y.ticks == 0 {
		return MoneyNull, divideByZero(MoneyTypeIdentifier)
	}
	return NewMoneyFromTicks(x.ticks % y.ticks), nil
}

func (x Money) compare(y Money, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareInt64(x.ticks, y.ticks), op)
}

func (x Money) Equal(y Money) Boolean              { return x.compare(y, opEqual) }
func (x Money) NotEqual(y Money) Boolean           { return x.compare(y, opNotEqual) }
func (x Money) LessThan(y Money) Boolean           { return x.compare(y, opLess) }
func (x Money) LessThanOrEqual(y Money) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Money) GreaterThan(y Money) Boolean        { return x.compare(y, opGreater) }
func (x Money) GreaterThanOrEqual(y Money) Boolean { return x.compare(y, opGreaterOrEqual) }

// rounded returns the nearest whole unit, with halves rounded away from zero.
func (x Money) rounded() int64 {
	q, r := x.ticks/TicksPerUnit, x.ticks%TicksPerUnit
	if r >= TicksPerUnit/2 {
		q++
	} else if r <= -TicksPerUnit/2 {
		q--
	}
	return q
}

func (x Money) ToBoolean() Boolean {
	if x.IsNull() {
		return BooleanNull
	}
	return NewBoolean(x.ticks != 0)
}

// ToByte rounds half away from zero.
func (x Money) ToByte() (Byte, error) {
	if x.IsNull() {
		return ByteNull, nil
	}
	v := x.rounded()
	if !inRange(v, 0, math.MaxUint8) {
		return ByteNull, overflow(x.String(), ByteTypeIdentifier)
	}
	return NewByte(uint8(v)), nil
}

func (x Money) ToInt16() (Int16, error) {
	if x.IsNull() {
		return Int16Null, nil
	}
	v := x.rounded()
	if !inRange(v, math.MinInt16, math.MaxInt16) {
		return Int16Null, overflow(x.String(), Int16TypeIdentifier)
	}
	return NewInt16(int16(v)), nil
}

func (x Money) ToInt32() (Int32, error) {
	if x.IsNull() {
		return Int32Null, nil
	}
	v := x.rounded()
	if !inRange(v, math.MinInt32, math.MaxInt32) {
		return Int32Null, overflow(x.String(), Int32TypeIdentifier)
	}
	return NewInt32(int32(v)), nil
}

// ToInt64 never fails: every Money rounds to an int64.
func (x Money) ToInt64() Int64 {
	if x.IsNull() {
		return Int64Null
	}
	return NewInt64(x.rounded())
}

func (x Money) ToSingle() Single {
	if x.IsNull() {
		return SingleNull
	}
	return Single{value: float32(x.decimal().InexactFloat64()), notNull: true}
}

func (x Money) ToDouble() Double {
	if x.IsNull() {
		return DoubleNull
	}
	return Double{value: x.decimal().InexactFloat64(), notNull: true}
}

// ToDecimal returns a decimal(19, 4).
func (x Money) ToDecimal() Decimal {
	if x.IsNull() {
		return DecimalNull
	}
	return Decimal{value: x.decimal(), precision: moneyPrecision, scale: MoneyScale, notNull: true}
}

func (x Money) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
