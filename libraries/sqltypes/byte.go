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

// Byte is a nullable unsigned 8-bit integer, the T-SQL tinyint. The zero value is Null.
type Byte struct {
	value   uint8
	notNull bool
}

var _ Value = Byte{}

var (
	ByteNull = Byte{}
	ByteZero = NewByte(0)
	ByteMin  = NewByte(0)
	ByteMax  = NewByte(math.MaxUint8)
)

func NewByte(v uint8) Byte {
	return Byte{value: v, notNull: true}
}

// ParseByte parses a base 10 integer in [0, 255]. Negative input overflows.
func ParseByte(s string) (Byte, error) {
	v, err := parseInteger(s, 0, math.MaxUint8, ByteTypeIdentifier)
	if err != nil {
		return ByteNull, err
	}
	return NewByte(uint8(v)), nil
}

// IsNull implements Value interface.
func (x Byte) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Byte) Type() Identifier {
	return ByteTypeIdentifier
}

func (x Byte) Value() (uint8, error) {
	if x.IsNull() {
		return 0, nullValue(ByteTypeIdentifier)
	}
	return x.value, nil
}

// String implements Value interface.
func (x Byte) String() string {
	if x.IsNull() {
		return nullString
	}
	return strconv.FormatUint(uint64(x.value), 10)
}

// Equals implements Value interface.
func (x Byte) Equals(other Value) bool {
	y, ok := other.(Byte)
	return ok && x == y
}

// CompareTo implements Value interface.
func (x Byte) CompareTo(other Value) (int, error) {
	y, ok := other.(Byte)
	if !ok {
		return 0, typeMismatch(ByteTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareInt64(int64(x.value), int64(y.value)), nil
}

func (x Byte) Add(y Byte) (Byte, error) {
	if x.IsNull() || y.IsNull() {
		return ByteNull, nil
	}
	return x.checked(int64(x.value) + int64(y.value))
}

func (x Byte) Subtract(y Byte) (Byte, error) {
	if x.IsNull() || y.IsNull() {
		return ByteNull, nil
	}
	return x.checked(int64(x.value) - int64(y.value))
}

func (x Byte) Multiply(y Byte) (Byte, error) {
	if x.IsNull() || y.IsNull() {
		return ByteNull, nil
	}
	return x.checked(int64(x.value) * int64(y.value))
}

func (x Byte) Divide(y Byte) (Byte, error) {
	if x.IsNull() || y.IsNull() {
		return ByteNull, nil
	}
	if y.value == 0 {
		return ByteNull, divideByZero(ByteTypeIdentifier)
	}
	return NewByte(x.value / y.value), nil
}

func (x Byte) Mod(y Byte) (Byte, error) {
	if x.IsNull() || y.IsNull() {
		return ByteNull, nil
	}
	if y.value == 0 {
		return ByteNull, divideByZero(ByteTypeIdentifier)
	}
	return NewByte(x.value % y.value), nil
}

func (x Byte) checked(r int64) (Byte, error) {
	if !inRange(r, 0, math.MaxUint8) {
		return ByteNull, overflow(r, ByteTypeIdentifier)
	}
	return NewByte(uint8(r)), nil
}

func (x Byte) BitwiseAnd(y Byte) Byte {
	if x.IsNull() || y.IsNull() {
		return ByteNull
	}
	return NewByte(x.value & y.value)
}

func (x Byte) BitwiseOr(y Byte) Byte {
	if x.IsNull() || y.IsNull() {
		return ByteNull
	}
	return NewByte(x.value | y.value)
}

func (x Byte) Xor(y Byte) Byte {
	if x.IsNull() || y.IsNull() {
		return ByteNull
	}
	return NewByte(x.value ^ y.value)
}

func (x Byte) OnesComplement() Byte {
	if x.IsNull() {
		return ByteNull
	}
	return NewByte(^x.value)
}

func (x Byte) compare(y Byte, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareInt64(int64(x.value), int64(y.value)), op)
}

func (x Byte) Equal(y Byte) Boolean              { return x.compare(y, opEqual) }
func (x Byte) NotEqual(y Byte) Boolean           { return x.compare(y, opNotEqual) }
func (x Byte) LessThan(y Byte) Boolean           { return x.compare(y, opLess) }
func (x Byte) LessThanOrEqual(y Byte) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Byte) GreaterThan(y Byte) Boolean        { return x.compare(y, opGreater) }
func (x Byte) GreaterThanOrEqual(y Byte) Boolean { return x.compare(y, opGreaterOrEqual) }

func (x Byte) ToBoolean() Boolean {
	if x.IsNull() {
		return BooleanNull
	}
	return NewBoolean(x.value != 0)
}

func (x Byte) ToInt16() Int16 {
	if x.IsNull() {
		return Int16Null
	}
	return NewInt16(int16(x.value))
}

func (x Byte) ToInt32() Int32 {
	if x.IsNull() {
		return Int32Null
	}
	return NewInt32(int32(x.value))
}

func (x Byte) ToInt64() Int64 {
	if x.IsNull() {
		return Int64Null
	}
	return NewInt64(int64(x.value))
}

func (x Byte) ToSingle() Single {
	if x.IsNull() {
		return SingleNull
	}
	return Single{value: float32(x.value), notNull: true}
}

func (x Byte) ToDouble() Double {
	if x.IsNull() {
		return DoubleNull
	}
	return Double{value: float64(x.value), notNull: true}
}

func (x Byte) ToDecimal() Decimal {
	if x.IsNull() {
		return DecimalNull
	}
	return NewDecimalFromInt64(int64(x.value))
}

func (x Byte) ToMoney() Money {
	if x.IsNull() {
		return MoneyNull
	}
	return NewMoneyFromInt32(int32(x.value))
}

func (x Byte) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
