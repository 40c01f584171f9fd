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

// Int64 is a nullable 64-bit signed integer, the T-SQL bigint. The zero value is Null.
type Int64 struct {
	value   int64
	notNull bool
}

var _ Value = Int64{}

var (
	Int64Null = Int64{}
	Int64Zero = NewInt64(0)
	Int64Min  = NewInt64(math.MinInt64)
	Int64Max  = NewInt64(math.MaxInt64)
)

func NewInt64(v int64) Int64 {
	return Int64{value: v, notNull: true}
}

func ParseInt64(s string) (Int64, error) {
	v, err := parseInteger(s, math.MinInt64, math.MaxInt64, Int64TypeIdentifier)
	if err != nil {
		return Int64Null, err
	}
	return NewInt64(v), nil
}

// IsNull implements Value interface.
func (x Int64) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Int64) Type() Identifier {
	return Int64TypeIdentifier
}

func (x Int64) Value() (int64, error) {
	if x.IsNull() {
		return 0, nullValue(Int64TypeIdentifier)
	}
	return x.value, nil
}

// String implements Value interface.
func (x Int64) String() string {
	if x.IsNull() {
		return nullString
	}
	return strconv.FormatInt(x.value, 10)
}

// Equals implements Value interface.
func (x Int64) Equals(other Value) bool {
	y, ok := other.(Int64)
	return ok && x == y
}

// CompareTo implements Value interface.
func (x Int64) CompareTo(other Value) (int, error) {
	y, ok := other.(Int64)
	if !ok {
		return 0, typeMismatch(Int64TypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareInt64(x.value, y.value), nil
}

func (x Int64) Add(y Int64) (Int64, error) {
	if x.IsNull() || y.IsNull() {
		return Int64Null, nil
	}
	r, ok := addInt64(x.value, y.value)
	if !ok {
		return Int64Null, ErrOverflow.New(x.String()+" + "+y.String(), Int64TypeIdentifier.String())
	}
	return NewInt64(r), nil
}

func (x Int64) Subtract(y Int64) (Int64, error) {
	if x.IsNull() || y.IsNull() {
		return Int64Null, nil
	}
	r, ok := subInt64(x.value, y.value)
	if !ok {
		return Int64Null, ErrOverflow.New(x.String()+" - "+y.String(), Int64TypeIdentifier.String())
	}
	return NewInt64(r), nil
}

func (x Int64) Multiply(y Int64) (Int64, error) {
	if x.IsNull() || y.IsNull() {
		return Int64Null, nil
	}
	r, ok := mulInt64(x.value, y.value)
	if !ok {
		return Int64Null, ErrOverflow.New(x.String()+" * "+y.String(), Int64TypeIdentifier.String())
	}
	return NewInt64(r), nil
}

func (x Int64) Divide(y Int64) (Int64, error) {
	if x.IsNull() || y.IsNull() {
		return Int64Null, nil
	}
	if y.value == 0 {
		return Int64Null, divideByZero(Int64TypeIdentifier)
	}
	if y.value == -1 && x.value == math.MinInt64 {
		return Int64Null, ErrOverflow.New(x.String()+" / -1", Int64TypeIdentifier.String())
	}
	return NewInt64(x.value / y.value), nil
}

func (x Int64) Mod(y Int64) (Int64, error) {
	if x.IsNull() || y.IsNull() {
		return Int64Null, nil
	}
	if y.value == 0 {
		return Int64Null, divideByZero(Int64TypeIdentifier)
	}
	if y.value == -1 && x.value == math.MinInt64 {
		return Int64Null, ErrOverflow.New(x.String()+" % -1", Int64TypeIdentifier.String())
	}
	return NewInt64(x.value % y.value), nil
}

func (x Int64) BitwiseAnd(y Int64) Int64 {
	if x.IsNull() || y.IsNull() {
		return Int64Null
	}
	return NewInt64(x.value & y.value)
}

func (x Int64) BitwiseOr(y Int64) Int64 {
	if x.IsNull() || y.IsNull() {
		return Int64Null
	}
	return NewInt64(x.value | y.value)
}

func (x Int64) Xor(y Int64) Int64 {
	if x.IsNull() || y.IsNull() {
		return Int64Null
	}
	return NewInt64(x.value ^ y.value)
}

func (x Int64) OnesComplement() Int64 {
	if x.IsNull() {
		return Int64Null
	}
	return NewInt64(^x.value)
}

func (x Int64) compare(y Int64, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareInt64(x.value, y.value), op)
}

func (x Int64) Equal(y Int64) Boolean              { return x.compare(y, opEqual) }
func (x Int64) NotEqual(y Int64) Boolean           { return x.compare(y, opNotEqual) }
func (x Int64) LessThan(y Int64) Boolean           { return x.compare(y, opLess) }
func (x Int64) LessThanOrEqual(y Int64) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Int64) GreaterThan(y Int64) Boolean        { return x.compare(y, opGreater) }
func (x Int64) GreaterThanOrEqual(y Int64) Boolean { return x.compare(y, opGreaterOrEqual) }

func (x Int64) ToBoolean() Boolean {
	if x.IsNull() {
		return BooleanNull
	}
	return NewBoolean(x.value != 0)
}

func (x Int64) ToByte() (Byte, error) {
	if x.IsNull() {
		return ByteNull, nil
	}
	if !inRange(x.value, 0, math.MaxUint8) {
		return ByteNull, overflow(x.value, ByteTypeIdentifier)
	}
	return NewByte(uint8(x.value)), nil
}

func (x Int64) ToInt16() (Int16, error) {
	if x.IsNull() {
		return Int16Null, nil
	}
	if !inRange(x.value, math.MinInt16, math.MaxInt16) {
		return Int16Null, overflow(x.value, Int16TypeIdentifier)
	}
	return NewInt16(int16(x.value)), nil
}

func (x Int64) ToInt32() (Int32, error) {
	if x.IsNull() {
		return Int32Null, nil
	}
	if !inRange(x.value, math.MinInt32, math.MaxInt32) {
		return Int32Null, overflow(x.value, Int32TypeIdentifier)
	}
	return NewInt32(int32(x.value)), nil
}

func (x Int64) ToSingle() Single {
	if x.IsNull() {
		return SingleNull
	}
	return Single{value: float32(x.value), notNull: true}
}

func (x Int64) ToDouble() Double {
	if x.IsNull() {
		return DoubleNull
	}
	return Double{value: float64(x.value), notNull: true}
}

func (x Int64) ToDecimal() Decimal {
	if x.IsNull() {
		return DecimalNull
	}
	return NewDecimalFromInt64(x.value)
}

// ToMoney fails with ErrOverflow when x is beyond the whole-unit range of Money.
func (x Int64) ToMoney() (Money, error) {
	if x.IsNull() {
		return MoneyNull, nil
	}
	return NewMoneyFromInt64(x.value)
}

func (x Int64) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
