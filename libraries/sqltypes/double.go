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
	"strconv"
	"strings"
)

// Double is a nullable, always finite float64, the T-SQL float. The zero value is Null.
type Double struct {
	value   float64
	notNull bool
}

var _ Value = Double{}

var (
	DoubleNull = Double{}
	DoubleZero = Double{value: 0, notNull: true}
	DoubleMin  = Double{value: -math.MaxFloat64, notNull: true}
	DoubleMax  = Double{value: math.MaxFloat64, notNull: true}
)

// NewDouble fails with ErrOverflow for NaN and the infinities.
func NewDouble(v float64) (Double, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DoubleNull, overflow(v, DoubleTypeIdentifier)
	}
	return Double{value: v, notNull: true}, nil
}

func ParseDouble(s string) (Double, error) {
	v, err := parseFloat(s, 64, DoubleTypeIdentifier)
	if err != nil {
		return DoubleNull, err
	}
	return Double{value: v, notNull: true}, nil
}

// IsNull implements Value interface.
func (x Double) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Double) Type() Identifier {
	return DoubleTypeIdentifier
}

func (x Double) Value() (float64, error) {
	if x.IsNull() {
		return 0, nullValue(DoubleTypeIdentifier)
	}
	return x.value, nil
}

// String implements Value interface. Values render in fixed notation unless their decimal exponent is
// 15 or more, or below -5.
func (x Double) String() string {
	if x.IsNull() {
		return nullString
	}
	return formatFloat(x.value, 64)
}

// Equals implements Value interface.
func (x Double) Equals(other Value) bool {
	y, ok := other.(Double)
	return ok && x == y
}

// CompareTo implements Value interface.
func (x Double) CompareTo(other Value) (int, error) {
	y, ok := other.(Double)
	if !ok {
		return 0, typeMismatch(DoubleTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareFloat64(x.value, y.value), nil
}

func (x Double) Add(y Double) (Double, error) {
	if x.IsNull() || y.IsNull() {
		return DoubleNull, nil
	}
	return NewDouble(x.value + y.value)
}

func (x Double) Subtract(y Double) (Double, error) {
	if x.IsNull() || y.IsNull() {
		return DoubleNull, nil
	}
	return NewDouble(x.value - y.value)
}

func (x Double) Multiply(y Double) (Double, error) {
	if x.IsNull() || y.IsNull() {
		return DoubleNull, nil
	}
	return NewDouble(x.value * y.value)
}

func (x Double) Divide(y Double) (Double, error) {
	if x.IsNull() || y.IsNull() {
		return DoubleNull, nil
	}
	if y.value == 0 {
		return DoubleNull, divideByZero(DoubleTypeIdentifier)
	}
	return NewDouble(x.value / y.value)
}

// Mod returns the floating point remainder of x / y, with the sign of x.
func (x Double) Mod(y Double) (Double, error) {
	if x.IsNull() || y.IsNull() {
		return DoubleNull, nil
	}
	if y.value == 0 {
		return DoubleNull, divideByZero(DoubleTypeIdentifier)
	}
	return NewDouble(math.Mod(x.value, y.value))
}

func (x Double) compare(y Double, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareFloat64(x.value, y.value), op)
}

func (x Double) Equal(y Double) Boolean              { return x.compare(y, opEqual) }
func (x Double) NotEqual(y Double) Boolean           { return x.compare(y, opNotEqual) }
func (x Double) LessThan(y Double) Boolean           { return x.compare(y, opLess) }
func (x Double) LessThanOrEqual(y Double) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Double) GreaterThan(y Double) Boolean        { return x.compare(y, opGreater) }
func (x Double) GreaterThanOrEqual(y Double) Boolean { return x.compare(y, opGreaterOrEqual) }

func (x Double) ToBoolean() Boolean {
	if x.IsNull() {
		return BooleanNull
	}
	return NewBoolean(x.value != 0)
}

// ToByte truncates toward zero.
func (x Double) ToByte() (Byte, error) {
	if x.IsNull() {
		return ByteNull, nil
	}
	if !floatInRange(x.value, 0, math.MaxUint8) {
		return ByteNull, overflow(x.String(), ByteTypeIdentifier)
	}
	return NewByte(uint8(x.value)), nil
}

// ToInt16 truncates toward zero.
func (x Double) ToInt16() (Int16, error) {
	if x.IsNull() {
		return Int16Null, nil
	}
	if !floatInRange(x.value, math.MinInt16, math.MaxInt16) {
		return Int16Null, overflow(x.String(), Int16TypeIdentifier)
	}
	return NewInt16(int16(x.value)), nil
}

// ToInt32 truncates toward zero.
func (x Double) ToInt32() (Int32, error) {
	if x.IsNull() {
		return Int32Null, nil
	}
	if !floatInRange(x.value, math.MinInt32, math.MaxInt32) {
		return Int32Null, overflow(x.String(), Int32TypeIdentifier)
	}
	return NewInt32(int32(x.value)), nil
}

// ToInt64 truncates toward zero.
func (x Double) ToInt64() (Int64, error) {
	if x.IsNull() {
		return Int64Null, nil
	}
	if !floatInRange(x.value, math.MinInt64, math.MaxInt64) {
		return Int64Null, overflow(x.String(), Int64TypeIdentifier)
	}
	return NewInt64(int64(x.value)), nil
}

// ToSingle rounds to the nearest float32 and fails when the magnitude exceeds float32's range.
func (x Double) ToSingle() (Single, error) {
	if x.IsNull() {
		return SingleNull, nil
	}
	return NewSingle(float32(x.value))
}

func (x Double) ToDecimal() (Decimal, error) {
	if x.IsNull() {
		return DecimalNull, nil
	}
	return NewDecimalFromFloat64(x.value)
}

func (x Double) ToMoney() (Money, error) {
	if x.IsNull() {
		return MoneyNull, nil
	}
	return NewMoneyFromFloat64(x.value)
}

func (x Double) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}

// formatFloat renders the shortest representation that round trips at the given bit size, switching to
// exponent notation for very large or small magnitudes.
func formatFloat(v float64, bitSize int) string {
	if v == 0 {
		return "0"
	}
	maxExp := 15
	if bitSize == 32 {
		maxExp = 7
	}
	e := strconv.FormatFloat(v, 'E', -1, bitSize)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'E')+1:])
	if exp >= maxExp || exp < -5 {
		return e
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}
