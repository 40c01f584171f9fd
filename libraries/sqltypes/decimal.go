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
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxPrecision is the largest number of digits a Decimal can hold.
	MaxPrecision = 38
	// MaxScale is the largest number of fractional digits a Decimal can hold.
	MaxScale = 38
	// minDivisionScale is the fewest fractional digits kept when a result has to be narrowed to fit.
	minDivisionScale = 6
)

// Decimal is a nullable fixed point number of up to 38 digits, the T-SQL decimal(p, s). The value is
// always held at exactly Scale() fractional digits. The zero value is Null.
type Decimal struct {
	value     decimal.Decimal
	precision uint8
	scale     uint8
	notNull   bool
}

var _ Value = Decimal{}

var (
	DecimalNull = Decimal{}
	DecimalZero = NewDecimalFromInt64(0)
	DecimalMax  = Decimal{value: decimal.RequireFromString(strings.Repeat("9", MaxPrecision)), precision: MaxPrecision, notNull: true}
	DecimalMin  = Decimal{value: decimal.RequireFromString("-" + strings.Repeat("9", MaxPrecision)), precision: MaxPrecision, notNull: true}
)

// NewDecimal converts d, taking its scale from its exponent. Fractional digits beyond what fits in 38
// digits are rounded away; more than 38 integer digits overflow.
func NewDecimal(d decimal.Decimal) (Decimal, error) {
	scale := 0
	if d.Exponent() < 0 {
		scale = int(-d.Exponent())
	}
	intDigits := integerDigits(d)
	if intDigits > MaxPrecision {
		return DecimalNull, overflow(d.String(), DecimalTypeIdentifier)
	}
	if intDigits+scale > MaxPrecision {
		scale = MaxPrecision - intDigits
	}
	return newDecimal(d, 0, scale)
}

func NewDecimalFromInt64(v int64) Decimal {
	d := decimal.NewFromInt(v)
	return Decimal{value: d, precision: uint8(numDigits(d)), notNull: true}
}

// NewDecimalFromFloat64 converts through the shortest decimal representation of v.
func NewDecimalFromFloat64(v float64) (Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DecimalNull, overflow(v, DecimalTypeIdentifier)
	}
	return NewDecimal(decimal.NewFromFloat(v))
}

func NewDecimalFromFloat32(v float32) (Decimal, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return DecimalNull, overflow(v, DecimalTypeIdentifier)
	}
	return NewDecimal(decimal.NewFromFloat32(v))
}

// NewDecimalFromParts builds a Decimal from its stored form: a 128-bit unsigned mantissa as four
// little-endian 32-bit words, a sign, and the declared precision and scale.
func NewDecimalFromParts(precision, scale uint8, positive bool, data [4]uint32) (Decimal, error) {
	if precision < 1 || precision > MaxPrecision {
		return DecimalNull, ErrArgument.New(DecimalTypeIdentifier.String(), fmt.Sprintf("precision %d is not between 1 and %d", precision, MaxPrecision))
	}
	if scale > precision {
		return DecimalNull, ErrArgument.New(DecimalTypeIdentifier.String(), fmt.Sprintf("scale %d is greater than precision %d", scale, precision))
	}
	m := new(big.Int)
	for i := len(data) - 1; i >= 0; i-- {
		m.Lsh(m, 32)
		m.Or(m, new(big.Int).SetUint64(uint64(data[i])))
	}
	if !positive {
		m.Neg(m)
	}
	d := decimal.NewFromBigInt(m, -int32(scale))
	if numDigits(d) > int(precision) {
		return DecimalNull, overflow(d.String(), DecimalTypeIdentifier)
	}
	return Decimal{value: d, precision: precision, scale: scale, notNull: true}, nil
}

// ParseDecimal parses an optionally signed run of digits with an optional fractional part. Exponent
// notation is not accepted.
func ParseDecimal(s string) (Decimal, error) {
	t := strings.TrimSpace(s)
	if !isDecimalLiteral(t) {
		return DecimalNull, formatErr(s, DecimalTypeIdentifier, nil)
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return DecimalNull, formatErr(s, DecimalTypeIdentifier, err)
	}
	return NewDecimal(d)
}

func isDecimalLiteral(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	digits, points := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}

// newDecimal rounds v to scale and sizes the precision to at least prec. Results that need more than
// 38 digits overflow.
func newDecimal(v decimal.Decimal, prec, scale int) (Decimal, error) {
	if scale > MaxScale {
		scale = MaxScale
	}
	r := v.Round(int32(scale))
	digits := numDigits(r)
	if digits > MaxPrecision {
		return DecimalNull, overflow(v.String(), DecimalTypeIdentifier)
	}
	p := max(prec, digits, scale, 1)
	if p > MaxPrecision {
		p = MaxPrecision
	}
	return Decimal{value: r, precision: uint8(p), scale: uint8(scale), notNull: true}, nil
}

// numDigits counts the digits of the unscaled value, one for zero.
func numDigits(d decimal.Decimal) int {
	c := d.Coefficient()
	if c.Sign() == 0 {
		return 1
	}
	return len(c.Abs(c).String())
}

// integerDigits counts the digits left of the decimal point, zero for a value below one.
func integerDigits(d decimal.Decimal) int {
	t := d.Truncate(0)
	if t.IsZero() {
		return 0
	}
	n := numDigits(t)
	if t.Exponent() > 0 {
		n += int(t.Exponent())
	}
	return n
}

// resultType narrows a result precision above 38 by giving up fractional digits, keeping at least
// min(scale, 6) of them.
func resultType(prec, scale int) (int, int) {
	if prec <= MaxPrecision {
		return prec, scale
	}
	intDigits := prec - scale
	minScale := min(scale, minDivisionScale)
	scale = max(MaxPrecision-intDigits, minScale)
	return MaxPrecision, scale
}

// IsNull implements Value interface.
func (x Decimal) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Decimal) Type() Identifier {
	return DecimalTypeIdentifier
}

func (x Decimal) Value() (decimal.Decimal, error) {
	if x.IsNull() {
		return decimal.Decimal{}, nullValue(DecimalTypeIdentifier)
	}
	return x.value, nil
}

// Precision is the declared number of digits. Zero for Null.
func (x Decimal) Precision() uint8 {
	return x.precision
}

// Scale is the number of fractional digits. Zero for Null.
func (x Decimal) Scale() uint8 {
	return x.scale
}

func (x Decimal) IsPositive() (bool, error) {
	if x.IsNull() {
		return false, nullValue(DecimalTypeIdentifier)
	}
	return x.value.Sign() >= 0, nil
}

// Data returns the magnitude of the unscaled value as four little-endian 32-bit words.
func (x Decimal) Data() ([4]uint32, error) {
	var data [4]uint32
	if x.IsNull() {
		return data, nullValue(DecimalTypeIdentifier)
	}
	m := x.value.Coefficient()
	m.Abs(m)
	mask := new(big.Int).SetUint64(math.MaxUint32)
	for i := range data {
		data[i] = uint32(new(big.Int).And(m, mask).Uint64())
		m.Rsh(m, 32)
	}
	return data, nil
}

// BinData returns Data as 16 little-endian bytes.
func (x Decimal) BinData() ([]byte, error) {
	data, err := x.Data()
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, 16)
	for _, w := range data {
		b = append(b, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return b, nil
}

// String implements Value interface. Exactly Scale() fractional digits are rendered.
func (x Decimal) String() string {
	if x.IsNull() {
		return nullString
	}
	return x.value.StringFixed(int32(x.scale))
}

// Equals implements Value interface. Values compare numerically, so 1.0 equals 1.00.
func (x Decimal) Equals(other Value) bool {
	y, ok := other.(Decimal)
	if !ok || x.IsNull() != y.IsNull() {
		return false
	}
	return x.IsNull() || x.value.Equal(y.value)
}

// CompareTo implements Value interface.
func (x Decimal) CompareTo(other Value) (int, error) {
	y, ok := other.(Decimal)
	if !ok {
		return 0, typeMismatch(DecimalTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return x.value.Cmp(y.value), nil
}

func (x Decimal) intDigits() int {
	return int(x.precision) - int(x.scale)
}

// Add sizes its result as max integer digits + max scale + 1.
func (x Decimal) Add(y Decimal) (Decimal, error) {
	if x.IsNull() || y.IsNull() {
		return DecimalNull, nil
	}
	s := max(int(x.scale), int(y.scale))
	p, s := resultType(max(x.intDigits(), y.intDigits())+s+1, s)
	return newDecimal(x.value.Add(y.value), p, s)
}

func (x Decimal) Subtract(y Decimal) (Decimal, error) {
	if x.IsNull() || y.IsNull() {
		return DecimalNull, nil
	}
	s := max(int(x.scale), int(y.scale))
	p, s := resultType(max(x.intDigits(), y.intDigits())+s+1, s)
	return newDecimal(x.value.Sub(y.value), p, s)
}

// Multiply sizes its result as p1 + p2 + 1 digits with s1 + s2 fractional digits.
func (x Decimal) Multiply(y Decimal) (Decimal, error) {
	if x.IsNull() || y.IsNull() {
		return DecimalNull, nil
	}
	p, s := resultType(int(x.precision)+int(y.precision)+1, int(x.scale)+int(y.scale))
	return newDecimal(x.value.Mul(y.value), p, s)
}

// Divide keeps max(6, s1 + p2 + 1) fractional digits, rounding half away from zero.
func (x Decimal) Divide(y Decimal) (Decimal, error) {
	if x.IsNull() || y.IsNull() {
		return DecimalNull, nil
	}
	if y.value.IsZero() {
		return DecimalNull, divideByZero(DecimalTypeIdentifier)
	}
	s := max(minDivisionScale, int(x.scale)+int(y.precision)+1)
	p, s := resultType(x.intDigits()+int(y.scale)+s, s)
	return newDecimal(x.value.DivRound(y.value, int32(s)), p, s)
}

// Mod returns the remainder of truncated division, with the sign of x.
func (x Decimal) Mod(y Decimal) (Decimal, error) {
	if x.IsNull() || y.IsNull() {
		return DecimalNull, nil
	}
	if y.value.IsZero() {
		return DecimalNull, divideByZero(DecimalTypeIdentifier)
	}
	s := max(int(x.scale), int(y.scale))
	p, s := resultType(min(x.intDigits(), y.intDigits())+s, s)
	return newDecimal(x.value.Mod(y.value), p, s)
}

func (x Decimal) compare(y Decimal, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(x.value.Cmp(y.value), op)
}

func (x Decimal) Equal(y Decimal) Boolean              { return x.compare(y, opEqual) }
func (x Decimal) NotEqual(y Decimal) Boolean           { return x.compare(y, opNotEqual) }
func (x Decimal) LessThan(y Decimal) Boolean           { return x.compare(y, opLess) }
func (x Decimal) LessThanOrEqual(y Decimal) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Decimal) GreaterThan(y Decimal) Boolean        { return x.compare(y, opGreater) }
func (x Decimal) GreaterThanOrEqual(y Decimal) Boolean { return x.compare(y, opGreaterOrEqual) }

// Round rounds half away from zero to position fractional digits, or to a power of ten when position
// is negative. Precision and scale are kept, so 6464.6464 rounded to 2 is 6464.6500.
func (x Decimal) Round(position int) (Decimal, error) {
	if x.IsNull() {
		return DecimalNull, nil
	}
	if position >= int(x.scale) {
		return x, nil
	}
	return x.fit(x.value.Round(int32(position)))
}

// Truncate drops digits beyond position, keeping precision and scale.
func (x Decimal) Truncate(position int) (Decimal, error) {
	if x.IsNull() {
		return DecimalNull, nil
	}
	if position >= int(x.scale) {
		return x, nil
	}
	p := int32(position)
	return x.fit(x.value.Shift(p).Truncate(0).Shift(-p))
}

// fit stores v at the precision and scale of x.
func (x Decimal) fit(v decimal.Decimal) (Decimal, error) {
	r := v.Round(int32(x.scale))
	if numDigits(r) > int(x.precision) {
		return DecimalNull, overflow(v.String(), DecimalTypeIdentifier)
	}
	return Decimal{value: r, precision: x.precision, scale: x.scale, notNull: true}, nil
}

// Floor returns the largest integer not greater than x, with scale 0.
func (x Decimal) Floor() (Decimal, error) {
	if x.IsNull() {
		return DecimalNull, nil
	}
	return newDecimal(x.value.Floor(), x.intDigits(), 0)
}

// Ceiling returns the smallest integer not less than x, with scale 0.
func (x Decimal) Ceiling() (Decimal, error) {
	if x.IsNull() {
		return DecimalNull, nil
	}
	return newDecimal(x.value.Ceil(), x.intDigits()+1, 0)
}

func (x Decimal) Abs() Decimal {
	if x.IsNull() {
		return DecimalNull
	}
	return Decimal{value: x.value.Abs(), precision: x.precision, scale: x.scale, notNull: true}
}

// Sign returns -1, 0 or 1.
func (x Decimal) Sign() Int32 {
	if x.IsNull() {
		return Int32Null
	}
	return NewInt32(int32(x.value.Sign()))
}

// Power raises x to exp, keeping the scale of x. Integral exponents are computed exactly, others
// through float64.
func (x Decimal) Power(exp float64) (Decimal, error) {
	if x.IsNull() {
		return DecimalNull, nil
	}
	if exp == math.Trunc(exp) && math.Abs(exp) <= math.MaxInt16 {
		r, err := x.value.PowInt32(int32(exp))
		if err != nil {
			return DecimalNull, ErrArgument.New(DecimalTypeIdentifier.String(), err.Error())
		}
		if integerDigits(r) > MaxPrecision {
			return DecimalNull, overflow(x.String()+"^"+formatFloat(exp, 64), DecimalTypeIdentifier)
		}
		return newDecimal(r, int(x.precision), int(x.scale))
	}
	f := math.Pow(x.value.InexactFloat64(), exp)
	if math.IsNaN(f) {
		return DecimalNull, ErrArgument.New(DecimalTypeIdentifier.String(), fmt.Sprintf("%s cannot be raised to %v", x.String(), exp))
	}
	if math.IsInf(f, 0) {
		return DecimalNull, overflow(x.String()+"^"+formatFloat(exp, 64), DecimalTypeIdentifier)
	}
	d := decimal.NewFromFloat(f)
	if integerDigits(d) > MaxPrecision {
		return DecimalNull, overflow(d.String(), DecimalTypeIdentifier)
	}
	return newDecimal(d, int(x.precision), int(x.scale))
}

// AdjustScale changes the scale by digits. Lost digits are rounded when round is set and truncated
// otherwise.
func (x Decimal) AdjustScale(digits int, round bool) (Decimal, error) {
	if x.IsNull() {
		return DecimalNull, nil
	}
	scale := int(x.scale) + digits
	if scale < 0 || scale > MaxScale {
		return DecimalNull, ErrArgument.New(DecimalTypeIdentifier.String(), fmt.Sprintf("scale %d is out of range", scale))
	}
	v := x.value
	if !round && digits < 0 {
		v = v.Truncate(int32(scale))
	}
	return newDecimal(v, int(x.precision)+digits, scale)
}

// ConvertToPrecScale returns x as a decimal(precision, scale), rounding lost fractional digits.
func (x Decimal) ConvertToPrecScale(precision, scale int) (Decimal, error) {
	if precision < 1 || precision > MaxPrecision || scale < 0 || scale > precision {
		return DecimalNull, ErrArgument.New(DecimalTypeIdentifier.String(), fmt.Sprintf("decimal(%d, %d) is not a valid type", precision, scale))
	}
	if x.IsNull() {
		return DecimalNull, nil
	}
	r := x.value.Round(int32(scale))
	if numDigits(r) > precision {
		return DecimalNull, overflow(x.String(), DecimalTypeIdentifier)
	}
	return Decimal{value: r, precision: uint8(precision), scale: uint8(scale), notNull: true}, nil
}

func (x Decimal) ToBoolean() Boolean {
	if x.IsNull() {
		return BooleanNull
	}
	return NewBoolean(!x.value.IsZero())
}

// truncated returns the integer part of x when it fits in [min, max].
func (x Decimal) truncated(min, max int64, id Identifier) (int64, error) {
	i := x.value.BigInt()
	if !i.IsInt64() || !inRange(i.Int64(), min, max) {
		return 0, overflow(x.String(), id)
	}
	return i.Int64(), nil
}

// ToByte truncates toward zero.
func (x Decimal) ToByte() (Byte, error) {
	if x.IsNull() {
		return ByteNull, nil
	}
	v, err := x.truncated(0, math.MaxUint8, ByteTypeIdentifier)
	if err != nil {
		return ByteNull, err
	}
	return NewByte(uint8(v)), nil
}

func (x Decimal) ToInt16() (Int16, error) {
	if x.IsNull() {
		return Int16Null, nil
	}
	v, err := x.truncated(math.MinInt16, math.MaxInt16, Int16TypeIdentifier)
	if err != nil {
		return Int16Null, err
	}
	return NewInt16(int16(v)), nil
}

func (x Decimal) ToInt32() (Int32, error) {
	if x.IsNull() {
		return Int32Null, nil
	}
	v, err := x.truncated(math.MinInt32, math.MaxInt32, Int32TypeIdentifier)
	if err != nil {
		return Int32Null, err
	}
	return NewInt32(int32(v)), nil
}

func (x Decimal) ToInt64() (Int64, error) {
	if x.IsNull() {
		return Int64Null, nil
	}
	v, err := x.truncated(math.MinInt64, math.MaxInt64, Int64TypeIdentifier)
	if err != nil {
		return Int64Null, err
	}
	return NewInt64(v), nil
}

func (x Decimal) ToSingle() Single {
	if x.IsNull() {
		return SingleNull
	}
	return Single{value: float32(x.value.InexactFloat64()), notNull: true}
}

func (x Decimal) ToDouble() Double {
	if x.IsNull() {
		return DoubleNull
	}
	return Double{value: x.value.InexactFloat64(), notNull: true}
}

// ToMoney rounds to four fractional digits.
func (x Decimal) ToMoney() (Money, error) {
	if x.IsNull() {
		return MoneyNull, nil
	}
	return NewMoney(x.value)
}

func (x Decimal) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
