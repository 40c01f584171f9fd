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

// Int32 is a nullable 32-bit signed integer. The zero value is Null.
type Int32 struct {
	value   int32
	notNull bool
}

var _ Value = Int32{}

var (
	Int32Null = Int32{}
	Int32Zero = NewInt32(0)
	Int32Min  = NewInt32(math.MinInt32)
	Int32Max  = NewInt32(math.MaxInt32)
)

func NewInt32(v int32) Int32 {
	return Int32{value: v, notNull: true}
}

// ParseInt32 parses a base 10 integer.
func ParseInt32(s string) (Int32, error) {
	v, err := parseInteger(s, math.MinInt32, math.MaxInt32, Int32TypeIdentifier)
	if err != nil {
		return Int32Null, err
	}
	return NewInt32(int32(v)), nil
}

// IsNull implements Value interface.
func (x Int32) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Int32) Type() Identifier {
	return Int32TypeIdentifier
}

// Value returns the native value, or ErrNullValue.
func (x Int32) Value() (int32, error) {
	if x.IsNull() {
		return 0, nullValue(Int32TypeIdentifier)
	}
	return x.value, nil
}

// String implements Value interface.
func (x Int32) String() string {
	if x.IsNull() {
		return nullString
	}
	return strconv.FormatInt(int64(x.value), 10)
}

// Equals implements Value interface.
func (x Int32) Equals(other Value) bool {
	y, ok := other.(Int32)
	return ok && x == y
}

// CompareTo implements Value interface.
func (x Int32) CompareTo(other Value) (int, error) {
	y, ok := other.(Int32)
	if !ok {
		return 0, typeMismatch(Int32TypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareInt64(int64(x.value), int64(y.value)), nil
}

func (x Int32) Add(y Int32) (Int32, error) {
	if x.IsNull() || y.IsNull() {
		return Int32Null, nil
	}
	return x.checked(int64(x.value) + int64(y.value))
}

func (x Int32) Subtract(y Int32) (Int32, error) {
	if x.IsNull() || y.IsNull() {
		return Int32Null, nil
	}
	return x.checked(int64(x.value) - int64(y.value))
}

func (x Int32) Multiply(y Int32) (Int32, error) {
	if x.IsNull() || y.IsNull() {
		return Int32Null, nil
	}
	return x.checked(int64(x.value) * int64(y.value))
}

func (x Int32) Divide(y Int32) (Int32, error) {
	if x.IsNull() || y.IsNull() {
		return Int32Null, nil
	}
	if y.value == 0 {
		return Int32Null, divideByZero(Int32TypeIdentifier)
	}
	return x.checked(int64(x.value) / int64(y.value))
}

// Mod returns the remainder of x / y, with the sign of x. MinValue % -1 overflows.
func (x Int32) Mod(y Int32) (Int32, error) {
	if x.IsNull() || y.IsNull() {
		return Int32Null, nil
	}
	if y.value == 0 {
		return Int32Null, divideByZero(Int32TypeIdentifier)
	}
	if y.value == -1 && x.value == math.MinInt32 {
		return Int32Null, overflow(x.value, Int32TypeIdentifier)
	}
	return NewInt32(x.value % y.value), nil
}

func (x Int32) checked(r int64) (Int32, error) {
	if !inRange(r, math.MinInt32, math.MaxInt32) {
		return Int32Null, overflow(r, Int32TypeIdentifier)
	}
	return NewInt32(int32(r)), nil
}

func (x Int32) BitwiseAnd(y Int32) Int32 {
	if x.IsNull() || y.IsNull() {
		return Int32Null
	}
	return NewInt32(x.value & y.value)
}

func (x Int32) BitwiseOr(y Int32) Int32 {
	if x.IsNull() || y.IsNull() {
		return Int32Null
	}
	return NewInt32(x.value | y.value)
}

func (x Int32) Xor(y Int32) Int32 {
	if x.IsNull() || y.IsNull() {
		return Int32Null
	}
	return NewInt32(x.value ^ y.value)
}

func (x Int32) OnesComplement() Int32 {
	if x.IsNull() {
		return Int32Null
	}
	return NewInt32(^x.value)
}

func (x Int32) compare(y Int32, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareInt64(int64(x.value), int64(y.value)), op)
}

func (x Int32) Equal(y Int32) Boolean              { return x.compare(y, opEqual) }
func (x Int32) NotEqual(y Int32) Boolean           { return x.compare(y, opNotEqual) }
func (x Int32) LessThan(y Int32) Boolean           { return x.compare(y, opLess) }
func (x Int32) LessThanOrEqual(y Int32) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Int32) GreaterThan(y Int32) Boolean        { return x.compare(y, opGreater) }
func (x Int32) GreaterThanOrEqual(y Int32) Boolean { return x.compare(y, opGreaterOrEqual) }

func (x Int32) ToBoolean() Boolean {
	if x.IsNull() {
		return BooleanNull
	}
	return NewBoolean(x.value != 0)
}

func (x Int32) ToByte() (Byte, error) {
	if x.IsNull() {
		return ByteNull, nil
	}
	if !inRange(int64(x.value), 0, math.MaxUint8) {
		return ByteNull, overflow(x.value, ByteTypeIdentifier)
	}
	return NewByte(uint8(x.value)), nil
}

func (x Int32) ToInt16() (Int16, error) {
	if x.IsNull() {
		return Int16Null, nil
	}
	if !inRange(int64(x.value), math.MinInt16, math.MaxInt16) {
		return Int16Null, overflow(x.value, Int16TypeIdentifier)
	}
	return NewInt16(int16(x.value)), nil
}

func (x Int32) ToInt64() Int64 {
	if x.IsNull() {
		return Int64Null
	}
	return NewInt64(int64(x.value))
}

func (x Int32) ToSingle() Single {
	if x.IsNull() {
		return SingleNull
	}
	return Single{value: float32(x.value), notNull: true}
}

func (x Int32) ToDouble() Double {
	if x.IsNull() {
		return DoubleNull
	}
	return Double{value: float64(x.value), notNull: true}
}

func (x Int32) ToDecimal() Decimal {
	if x.IsNull() {
		return DecimalNull
	}
	return NewDecimalFromInt64(int64(x.value))
}

func (x Int32) ToMoney() Money {
	if x.IsNull() {
		return MoneyNull
	}
	return NewMoneyFromInt32(x.value)
}

func (x Int32) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
