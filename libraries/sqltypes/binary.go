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
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Binary is a nullable variable-length byte sequence, the T-SQL varbinary. The zero value is Null.
type Binary struct {
	value   []byte
	notNull bool
}

var _ Value = Binary{}

var BinaryNull = Binary{}

// NewBinary copies b. A nil slice gives Null, an empty non-nil slice gives an empty value.
func NewBinary(b []byte) Binary {
	if b == nil {
		return BinaryNull
	}
	return Binary{value: append(make([]byte, 0, len(b)), b...), notNull: true}
}

// ParseBinary reads hexadecimal digits, with or without a leading "0x".
func ParseBinary(s string) (Binary, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		t = t[2:]
	}
	b, err := hex.DecodeString(t)
	if err != nil {
		return BinaryNull, formatErr(s, BinaryTypeIdentifier, err)
	}
	return Binary{value: b, notNull: true}, nil
}

// IsNull implements Value interface.
func (x Binary) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Binary) Type() Identifier {
	return BinaryTypeIdentifier
}

// Value returns a copy of the bytes.
func (x Binary) Value() ([]byte, error) {
	if x.IsNull() {
		return nil, nullValue(BinaryTypeIdentifier)
	}
	return append(make([]byte, 0, len(x.value)), x.value...), nil
}

func (x Binary) Length() (int, error) {
	if x.IsNull() {
		return 0, nullValue(BinaryTypeIdentifier)
	}
	return len(x.value), nil
}

// At returns the byte at index i.
func (x Binary) At(i int) (byte, error) {
	if x.IsNull() {
		return 0, nullValue(BinaryTypeIdentifier)
	}
	if i < 0 || i >= len(x.value) {
		return 0, ErrIndexOutOfRange.New(i, len(x.value))
	}
	return x.value[i], nil
}

// String implements Value interface. Bytes render as "0x" followed by upper case hex digits.
func (x Binary) String() string {
	if x.IsNull() {
		return nullString
	}
	return "0x" + strings.ToUpper(hex.EncodeToString(x.value))
}

// Equals implements Value interface.
func (x Binary) Equals(other Value) bool {
	y, ok := other.(Binary)
	return ok && x.IsNull() == y.IsNull() && bytes.Equal(x.value, y.value)
}

// CompareTo implements Value interface. The overlapping prefix is compared first, and when it is equal
// the shorter value sorts first.
func (x Binary) CompareTo(other Value) (int, error) {
	y, ok := other.(Binary)
	if !ok {
		return 0, typeMismatch(BinaryTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return bytes.Compare(x.value, y.value), nil
}

// Concat returns the bytes of x followed by the bytes of y.
func (x Binary) Concat(y Binary) Binary {
	if x.IsNull() || y.IsNull() {
		return BinaryNull
	}
	b := make([]byte, 0, len(x.value)+len(y.value))
	b = append(b, x.value...)
	return Binary{value: append(b, y.value...), notNull: true}
}

// Add is the same as Concat.
func (x Binary) Add(y Binary) Binary {
	return x.Concat(y)
}

func (x Binary) compare(y Binary, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(bytes.Compare(x.value, y.value), op)
}

func (x Binary) Equal(y Binary) Boolean              { return x.compare(y, opEqual) }
func (x Binary) NotEqual(y Binary) Boolean           { return x.compare(y, opNotEqual) }
func (x Binary) LessThan(y Binary) Boolean           { return x.compare(y, opLess) }
func (x Binary) LessThanOrEqual(y Binary) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Binary) GreaterThan(y Binary) Boolean        { return x.compare(y, opGreater) }
func (x Binary) GreaterThanOrEqual(y Binary) Boolean { return x.compare(y, opGreaterOrEqual) }

// ToGuid interprets exactly 16 bytes in Guid byte order.
func (x Binary) ToGuid() (Guid, error) {
	if x.IsNull() {
		return GuidNull, nil
	}
	if len(x.value) != guidLength {
		return GuidNull, ErrArgument.New(GuidTypeIdentifier.String(), fmt.Sprintf("expected %d bytes, found %d", guidLength, len(x.value)))
	}
	return NewGuidFromBytes(x.value)
}

func (x Binary) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
