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
)

// Int16 is a nullable 16-bit signed integer. The zero value is Null.
type Int16 struct {
	value   int16
	notNull bool
}

var _ Value = Int16{}

var (
	Int16Null = Int16{}
	Int16Zero = NewInt16(0)
	Int16Min  = NewInt16(math.MinInt16)
	Int16Max  = NewInt16(math.MaxInt16)
)

func NewInt16(v int16) Int16 {
	return Int16{value: v, notNull: true}
}

func ParseInt16(s string) (Int16, error) {
	v, err := parseInteger(s, math.MinInt16, math.MaxInt16, Int16TypeIdentifier)
	if err != nil {
		return Int16Null, err
	}
	return NewInt16(int16(v)), nil
}

// IsNull implements Value interface.
func (x Int16) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Int16) Type() Identifier {
	return Int16TypeIdentifier
}

func (x Int16) Value() (int16, error) {
	if x.IsNull() {
		return 0, nullValue(Int16TypeIdentifier)
	}
	return x.value, nil
}

// String implements Value interface.
func (x Int16) String() string {
	if x.IsNull() {
		return nullString
	}
	return strconv.FormatInt(int64(x.value), 10)
}

// Equals implements Value interface.
func (x Int16) Equals(other Value) bool {
	y, ok := other.(Int16)
	return ok && x == y
}

// CompareTo implements Value interface.
func (x Int16) CompareTo(other Value) (int, error) {
	y, ok := other.(Int16)
	if !ok {
		return 0, typeMismatch(Int16TypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareInt64(int64(x.value), int64(y.value)), nil
}

func (x Int16) Add(y Int16) (Int16, error) {
	if x.IsNull() || y.IsNull() {
		return Int16Null, nil
	}
	return x.checked(int64(x.value) + int64(y.value))
}

func (x Int16) Subtract(y Int16) (Int16, error) {
	if x.IsNull() || y.IsNull() {
		return Int16Null, nil
	}
	return x.checked(int64(x.value) - int64(y.value))
}

func (x Int16) Multiply(y Int16) (Int16, error) {
	if x.IsNull() || y.IsNull() {
		return Int16Null, nil
	}
	return x.checked(int64(x.value) * int64(y.value))
}

func (x Int16) Divide(y Int16) (Int16, error) {
	if x.IsNull() || y.IsNull() {
		return Int16Null, nil
	}
	if y.value == 0 {
		return Int16Null, divideByZero(Int16TypeIdentifier)
	}
	return x.checked(int64(x.value) / int64(y.value))
}

func (x Int16) Mod(y Int16) (Int16, error) {
	if x.IsNull() || y.IsNull() {
		return Int16Null, nil
	}
	if y.value == 0 {
		return Int16Null, divideByZero(Int16TypeIdentifier)
	}
	if y.value == -1 && x.value == math.MinInt16 {
		return Int16Null, overflow(x.value, Int16TypeIdentifier)
	}
	return NewInt16(x.value % y.value), nil
}

func (x Int16) checked(r int64) (Int16, error) {
	if !inRange(r, math.MinInt16, math.MaxInt16) {
		return Int16Null, overflow(r, Int16TypeIdentifier)
	}
	return NewInt16(int16(r)), nil
}

func (x Int16) BitwiseAnd(y Int16) Int16 {
	if x.IsNull() || y.IsNull() {
		return Int16Null
	}
	return NewInt16(x.value & y.value)
}

func (x Int16) BitwiseOr(y Int16) Int16 {
	if x.IsNull() || y.IsNull() {
		return Int16Null
	}
	return NewInt16(x.value | y.value)
}

func (x Int16) Xor(y Int16) Int16 {
	if x.IsNull() || y.IsNull() {
		return Int16Null
	}
	return NewInt16(x.value ^ y.value)
}

func (x Int16) OnesComplement() Int16 {
	if x.IsNull() {
		return Int16Null
	}
	return NewInt16(^x.value)
}

func (x Int16) compare(y Int16, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareInt64(int64(x.value), int64(y.value)), op)
}

func (x Int16) Equal(y Int16) Boolean              { return x.compare(y, opEqual) }
func (x Int16) NotEqual(y Int16) Boolean           { return x.compare(y, opNotEqual) }
func (x Int16) LessThan(y Int16) Boolean           { return x.compare(y, opLess) }
func (x Int16) LessThanOrEqual(y Int16) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Int16) GreaterThan(y Int16) Boolean        { return x.compare(y, opGreater) }
func (x Int16) GreaterThanOrEqual(y Int16) Boolean { return x.compare(y, opGreaterOrEqual) }

func (x Int16) ToBoolean() Boolean {
	if x.IsNull() {
		return BooleanNull
	}
	return NewBoolean(x.value != 0)
}

func (x Int16) ToByte() (Byte, error) {
	if x.IsNull() {
		return ByteNull, nil
	}
	if !inRange(int64(x.value), 0, math.MaxUint8) {
		return ByteNull, overflow(x.value, ByteTypeIdentifier)
	}
	return NewByte(uint8(x.value)), nil
}

func (x Int16) ToInt32() Int32 {
	if x.IsNull() {
		return Int32Null
	}
	return NewInt32(int32(x.value))
}

func (x Int16) ToInt64() Int64 {
	if x.IsNull() {
		return Int64Null
	}
	return NewInt64(int64(x.value))
}

func (x Int16) ToSingle() Single {
	if x.IsNull() {
		return SingleNull
	}
	return Single{value: float32(x.value), notNull: true}
}

func (x Int16) ToDouble() Double {
	if x.IsNull() {
		return DoubleNull
	}
	return Double{value: float64(x.value), notNull: true}
}

func (x Int16) ToDecimal() Decimal {
	if x.IsNull() {
		return DecimalNull
	}
	return NewDecimalFromInt64(int64(x.value))
}

func (x Int16) ToMoney() Money {
	if x.IsNull() {
		return MoneyNull
	}
	return NewMoneyFromInt32(int32(x.value))
}

func (x Int16) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
