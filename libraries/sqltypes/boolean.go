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
)

// Boolean is a three-valued boolean: True, False or Null. The zero value is Null.
type Boolean struct {
	value   bool
	notNull bool
}

var _ Value = Boolean{}

var (
	BooleanNull  = Boolean{}
	BooleanTrue  = NewBoolean(true)
	BooleanFalse = NewBoolean(false)
	BooleanOne   = BooleanTrue
	BooleanZero  = BooleanFalse
)

func NewBoolean(v bool) Boolean {
	return Boolean{value: v, notNull: true}
}

// NewBooleanFromInt returns False for zero and True for any other value.
func NewBooleanFromInt(v int64) Boolean {
	return NewBoolean(v != 0)
}

// ParseBoolean accepts "true" or "false" in any letter case with optional surrounding whitespace. A
// signed integer is also accepted, with zero meaning False.
func ParseBoolean(s string) (Boolean, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "true":
		return BooleanTrue, nil
	case "false":
		return BooleanFalse, nil
	}
	if len(t) > 0 && (t[0] == '-' || t[0] == '+' || (t[0] >= '0' && t[0] <= '9')) {
		v, err := parseInteger(t, math.MinInt32, math.MaxInt32, BooleanTypeIdentifier)
		if err != nil {
			return BooleanNull, err
		}
		return NewBooleanFromInt(v), nil
	}
	return BooleanNull, formatErr(s, BooleanTypeIdentifier, nil)
}

// IsNull implements Value interface.
func (x Boolean) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Boolean) Type() Identifier {
	return BooleanTypeIdentifier
}

func (x Boolean) Value() (bool, error) {
	if x.IsNull() {
		return false, nullValue(BooleanTypeIdentifier)
	}
	return x.value, nil
}

// IsTrue reports whether x is True. It is false for Null.
func (x Boolean) IsTrue() bool {
	return x.notNull && x.value
}

// IsFalse reports whether x is False. It is false for Null.
func (x Boolean) IsFalse() bool {
	return x.notNull && !x.value
}

// ByteValue returns 1 for True and 0 for False.
func (x Boolean) ByteValue() (byte, error) {
	if x.IsNull() {
		return 0, nullValue(BooleanTypeIdentifier)
	}
	return byte(boolToInt(x.value)), nil
}

// String implements Value interface.
func (x Boolean) String() string {
	if x.IsNull() {
		return nullString
	}
	if x.value {
		return "True"
	}
	return "False"
}

// Equals implements Value interface.
func (x Boolean) Equals(other Value) bool {
	y, ok := other.(Boolean)
	return ok && x == y
}

// CompareTo implements Value interface. False sorts before True.
func (x Boolean) CompareTo(other Value) (int, error) {
	y, ok := other.(Boolean)
	if !ok {
		return 0, typeMismatch(BooleanTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareInt64(boolToInt(x.value), boolToInt(y.value)), nil
}

// And is the SQL conjunction: False if either side is False, otherwise Null if either side is Null.
func (x Boolean) And(y Boolean) Boolean {
	if x.IsFalse() || y.IsFalse() {
		return BooleanFalse
	}
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return BooleanTrue
}

// Or is the SQL disjunction: True if either side is True, otherwise Null if either side is Null.
func (x Boolean) Or(y Boolean) Boolean {
	if x.IsTrue() || y.IsTrue() {
		return BooleanTrue
	}
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return BooleanFalse
}

func (x Boolean) Xor(y Boolean) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return NewBoolean(x.value != y.value)
}

func (x Boolean) Not() Boolean {
	if x.IsNull() {
		return BooleanNull
	}
	return NewBoolean(!x.value)
}

// OnesComplement is the same as Not.
func (x Boolean) OnesComplement() Boolean {
	return x.Not()
}

func (x Boolean) compare(y Boolean, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareInt64(boolToInt(x.value), boolToInt(y.value)), op)
}

func (x Boolean) Equal(y Boolean) Boolean              { return x.compare(y, opEqual) }
func (x Boolean) NotEqual(y Boolean) Boolean           { return x.compare(y, opNotEqual) }
func (x Boolean) LessThan(y Boolean) Boolean           { return x.compare(y, opLess) }
func (x Boolean) LessThanOrEqual(y Boolean) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Boolean) GreaterThan(y Boolean) Boolean        { return x.compare(y, opGreater) }
func (x Boolean) GreaterThanOrEqual(y Boolean) Boolean { return x.compare(y, opGreaterOrEqual) }

func (x Boolean) ToByte() Byte {
	if x.IsNull() {
		return ByteNull
	}
	return NewByte(uint8(boolToInt(x.value)))
}

func (x Boolean) ToInt16() Int16 {
	if x.IsNull() {
		return Int16Null
	}
	return NewInt16(int16(boolToInt(x.value)))
}

func (x Boolean) ToInt32() Int32 {
	if x.IsNull() {
		return Int32Null
	}
	return NewInt32(int32(boolToInt(x.value)))
}

func (x Boolean) ToInt64() Int64 {
	if x.IsNull() {
		return Int64Null
	}
	return NewInt64(boolToInt(x.value))
}

func (x Boolean) ToSingle() Single {
	if x.IsNull() {
		return SingleNull
	}
	return Single{value: float32(boolToInt(x.value)), notNull: true}
}

func (x Boolean) ToDouble() Double {
	if x.IsNull() {
		return DoubleNull
	}
	return Double{value: float64(boolToInt(x.value)), notNull: true}
}

func (x Boolean) ToDecimal() Decimal {
	if x.IsNull() {
		return DecimalNull
	}
	return NewDecimalFromInt64(boolToInt(x.value))
}

func (x Boolean) ToMoney() Money {
	if x.IsNull() {
		return MoneyNull
	}
	return NewMoneyFromInt32(int32(boolToInt(x.value)))
}

func (x Boolean) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}

