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
	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
)

// String is nullable text together with the collation that governs how it compares. The zero value is
// Null.
type String struct {
	value   string
	coll    collation.Collation
	notNull bool
}

var _ Value = String{}

var StringNull = String{}

// NewString returns s with the default collation.
func NewString(s string) String {
	return String{value: s, coll: collation.Default, notNull: true}
}

func NewStringWithCollation(s string, c collation.Collation) String {
	return String{value: s, coll: c, notNull: true}
}

// NewStringFromBytes decodes data as UTF-16LE when unicode is set, and in the collation's code page
// otherwise. A nil slice gives Null.
func NewStringFromBytes(c collation.Collation, data []byte, unicode bool) (String, error) {
	if data == nil {
		return StringNull, nil
	}
	var s string
	var err error
	if unicode {
		s, err = collation.DecodeUnicode(data)
	} else {
		s, err = c.DecodeNonUnicode(data)
	}
	if err != nil {
		return StringNull, ErrArgument.New(StringTypeIdentifier.String(), err.Error())
	}
	return NewStringWithCollation(s, c), nil
}

// IsNull implements Value interface.
func (x String) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x String) Type() Identifier {
	return StringTypeIdentifier
}

func (x String) Value() (string, error) {
	if x.IsNull() {
		return "", nullValue(StringTypeIdentifier)
	}
	return x.value, nil
}

// Collation returns the collation of x. A Null string has the zero Collation.
func (x String) Collation() collation.Collation {
	return x.coll
}

func (x String) LCID() uint32 {
	return x.coll.LCID
}

func (x String) CompareOptions() collation.CompareOptions {
	return x.coll.Options
}

// String implements Value interface.
func (x String) String() string {
	if x.IsNull() {
		return nullString
	}
	return x.value
}

// Equals implements Value interface. It is an exact match of text and collation.
func (x String) Equals(other Value) bool {
	y, ok := other.(String)
	return ok && x == y
}

// CompareTo implements Value interface. Strings of different collations cannot be compared.
func (x String) CompareTo(other Value) (int, error) {
	y, ok := other.(String)
	if !ok {
		return 0, typeMismatch(StringTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	if !x.coll.Compatible(y.coll) {
		return 0, ErrIncompatibleCollation.New(x.coll.String(), y.coll.String())
	}
	return x.coll.Compare(x.value, y.value), nil
}

// Concat appends y, keeping the collation of x.
func (x String) Concat(y String) (String, error) {
	if x.IsNull() || y.IsNull() {
		return StringNull, nil
	}
	if !x.coll.Compatible(y.coll) {
		return StringNull, ErrIncompatibleCollation.New(x.coll.String(), y.coll.String())
	}
	return NewStringWithCollation(x.value+y.value, x.coll), nil
}

// Add is the same as Concat.
func (x String) Add(y String) (String, error) {
	return x.Concat(y)
}

func (x String) compare(y String, op compareOp) (Boolean, error) {
	if x.IsNull() || y.IsNull() {
		return BooleanNull, nil
	}
	if !x.coll.Compatible(y.coll) {
		return BooleanNull, ErrIncompatibleCollation.New(x.coll.String(), y.coll.String())
	}
	return boolCompare(x.coll.Compare(x.value, y.value), op), nil
}

func (x String) Equal(y String) (Boolean, error)              { return x.compare(y, opEqual) }
func (x String) NotEqual(y String) (Boolean, error)           { return x.compare(y, opNotEqual) }
func (x String) LessThan(y String) (Boolean, error)           { return x.compare(y, opLess) }
func (x String) LessThanOrEqual(y String) (Boolean, error)    { return x.compare(y, opLessOrEqual) }
func (x String) GreaterThan(y String) (Boolean, error)        { return x.compare(y, opGreater) }
func (x String) GreaterThanOrEqual(y String) (Boolean, error) { return x.compare(y, opGreaterOrEqual) }

// SortKey returns bytes that order and compare like x under its collation.
func (x String) SortKey() ([]byte, error) {
	if x.IsNull() {
		return nil, nullValue(StringTypeIdentifier)
	}
	return x.coll.Key(x.value), nil
}

// UnicodeBytes returns the text as UTF-16LE.
func (x String) UnicodeBytes() ([]byte, error) {
	if x.IsNull() {
		return nil, nullValue(StringTypeIdentifier)
	}
	return collation.EncodeUnicode(x.value)
}

// NonUnicodeBytes returns the text in the code page of the collation's locale.
func (x String) NonUnicodeBytes() ([]byte, error) {
	if x.IsNull() {
		return nil, nullValue(StringTypeIdentifier)
	}
	return x.coll.EncodeNonUnicode(x.value)
}

func (x String) ToBoolean() (Boolean, error) {
	if x.IsNull() {
		return BooleanNull, nil
	}
	return ParseBoolean(x.value)
}

func (x String) ToByte() (Byte, error) {
	if x.IsNull() {
		return ByteNull, nil
	}
	return ParseByte(x.value)
}

func (x String) ToInt16() (Int16, error) {
	if x.IsNull() {
		return Int16Null, nil
	}
	return ParseInt16(x.value)
}

func (x String) ToInt32() (Int32, error) {
	if x.IsNull() {
		return Int32Null, nil
	}
	return ParseInt32(x.value)
}

func (x String) ToInt64() (Int64, error) {
	if x.IsNull() {
		return Int64Null, nil
	}
	return ParseInt64(x.value)
}

func (x String) ToSingle() (Single, error) {
	if x.IsNull() {
		return SingleNull, nil
	}
	return ParseSingle(x.value)
}

func (x String) ToDouble() (Double, error) {
	if x.IsNull() {
		return DoubleNull, nil
	}
	return ParseDouble(x.value)
}

func (x String) ToDecimal() (Decimal, error) {
	if x.IsNull() {
		return DecimalNull, nil
	}
	return ParseDecimal(x.value)
}

func (x String) ToMoney() (Money, error) {
	if x.IsNull() {
		return MoneyNull, nil
	}
	return ParseMoney(x.value)
}

func (x String) ToBinary() (Binary, error) {
	if x.IsNull() {
		return BinaryNull, nil
	}
	return ParseBinary(x.value)
}

func (x String) ToGuid() (Guid, error) {
	if x.IsNull() {
		return GuidNull, nil
	}
	return ParseGuid(x.value)
}

// ToDateTime parses with the invariant locale.
func (x String) ToDateTime() (DateTime, error) {
	if x.IsNull() {
		return DateTimeNull, nil
	}
	return ParseDateTime(x.value)
}
