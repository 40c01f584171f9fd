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
)

// Single is a nullable, always finite float32, the T-SQL real. The zero value is Null.
type Single struct {
	value   float32
	notNull bool
}

var _ Value = Single{}

var (
	SingleNull = Single{}
	SingleZero = Single{value: 0, notNull: true}
	SingleMin  = Single{value: -math.MaxFloat32, notNull: true}
	SingleMax  = Single{value: math.MaxFloat32, notNull: true}
)

// NewSingle fails with ErrOverflow for NaN and the infinities.
func NewSingle(v float32) (Single, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return SingleNull, overflow(v, SingleTypeIdentifier)
	}
	return Single{value: v, notNull: true}, nil
}

func ParseSingle(s string) (Single, error) {
	v, err := parseFloat(s, 32, SingleTypeIdentifier)
	if err != nil {
		return SingleNull, err
	}
	return Single{value: float32(v), notNull: true}, nil
}

// IsNull implements Value interface.
func (x Single) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Single) Type() Identifier {
	return SingleTypeIdentifier
}

func (x Single) Value() (float32, error) {
	if x.IsNull() {
		return 0, nullValue(SingleTypeIdentifier)
	}
	return x.value, nil
}

// String implements Value interface.
func (x Single) String() string {
	if x.IsNull() {
		return nullString
	}
	return formatFloat(float64(x.value), 32)
}

// Equals implements Value interface.
func (x Single) Equals(other Value) bool {
	y, ok := other.(Single)
	return ok && x == y
}

// CompareTo implements Value interface.
func (x Single) CompareTo(other Value) (int, error) {
	y, ok := other.(Single)
	if !ok {
		return 0, typeMismatch(SingleTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareFloat64(float64(x.value), float64(y.value)), nil
}

func (x Single) Add(y Single) (Single, error) {
	if x.IsNull() || y.IsNull() {
		return SingleNull, nil
	}
	return NewSingle(x.value + y.value)
}

func (x Single) Subtract(y Single) (Single, error) {
	if x.IsNull() || y.IsNull() {
		return SingleNull, nil
	}
	return NewSingle(x.value - y.value)
}

func (x Single) Multiply(y Single) (Single, error) {
	if x.IsNull() || y.IsNull() {
		return SingleNull, nil
	}
	return NewSingle(x.value * y.value)
}

func (x Single) Divide(y Single) (Single, error) {
	if x.IsNull() || y.IsNull() {
		return SingleNull, nil
	}
	if y.value == 0 {
		return SingleNull, divideByZero(SingleTypeIdentifier)
	}
	return NewSingle(x.value / y.value)
}

func (x Single) Mod(y Single) (Single, error) {
	if x.IsNull() || y.IsNull() {
		return SingleNull, nil
	}
	if y.value == 0 {
		return SingleNull, divideByZero(SingleTypeIdentifier)
	}
	return NewSingle(float32(math.Mod(float64(x.value), float64(y.value))))
}

func (x Single) compare(y Single, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareFloat64(float64(x.value), float64(y.value)), op)
}

func (x Single) Equal(y Single) Boolean              { return x.compare(y, opEqual) }
func (x Single) NotEqual(y Single) Boolean           { return x.compare(y, opNotEqual) }
func (x Single) LessThan(y Single) Boolean           { return x.compare(y, opLess) }
func (x Single) LessThanOrEqual(y Single) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Single) GreaterThan(y Single) Boolean        { return x.compare(y, opGreater) }
func (x Single) GreaterThanOrEqual(y Single) Boolean { return x.compare(y, opGreaterOrEqual) }

func (x Single) ToBoolean() Boolean {
	if x.IsNull() {
		return BooleanNull
	}
	return NewBoolean(x.value != 0)
}

func (x Single) ToByte() (Byte, error) {
	return x.ToDouble().ToByte()
}

func (x Single) ToInt16() (Int16, error) {
	return x.ToDouble().ToInt16()
}

func (x Single) ToInt32() (Int32, error) {
	return x.ToDouble().ToInt32()
}

func (x Single) ToInt64() (Int64, error) {
	return x.ToDouble().ToInt64()
}

func (x Single) ToDouble() Double {
	if x.IsNull() {
		return DoubleNull
	}
	return Double{value: float64(x.value), notNull: true}
}

// ToDecimal converts through the shortest decimal representation of the float32, so 0.1 becomes 0.1
// rather than 0.100000001490116.
func (x Single) ToDecimal() (Decimal, error) {
	if x.IsNull() {
		return DecimalNull, nil
	}
	return NewDecimalFromFloat32(x.value)
}

func (x Single) ToMoney() (Money, error) {
	if x.IsNull() {
		return MoneyNull, nil
	}
	d, err := NewDecimalFromFloat32(x.value)
	if err != nil {
		return MoneyNull, err
	}
	return d.ToMoney()
}

func (x Single) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
