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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const guidLength = 16

// guidOrder lists byte positions from most to least significant, as uniqueidentifier columns sort.
var guidOrder = [guidLength]int{10, 11, 12, 13, 14, 15, 8, 9, 6, 7, 4, 5, 0, 1, 2, 3}

// Guid is a nullable 16-byte identifier, the T-SQL uniqueidentifier. Bytes are held in the mixed-endian
// order used on the wire: the leading 32-bit and two 16-bit fields are little-endian, the last eight
// bytes are in text order. The zero value is Null.
type Guid struct {
	value   [guidLength]byte
	notNull bool
}

var _ Value = Guid{}

var GuidNull = Guid{}

// NewGuid converts an RFC 4122 UUID.
func NewGuid(u uuid.UUID) Guid {
	var b [guidLength]byte
	binary.LittleEndian.PutUint32(b[0:], binary.BigEndian.Uint32(u[0:]))
	binary.LittleEndian.PutUint16(b[4:], binary.BigEndian.Uint16(u[4:]))
	binary.LittleEndian.PutUint16(b[6:], binary.BigEndian.Uint16(u[6:]))
	copy(b[8:], u[8:])
	return Guid{value: b, notNull: true}
}

// NewGuidFromBytes reads 16 bytes in Guid byte order, the inverse of ToByteArray.
func NewGuidFromBytes(b []byte) (Guid, error) {
	if b == nil {
		return GuidNull, ErrNullArgument.New("b")
	}
	if len(b) != guidLength {
		return GuidNull, ErrArgument.New(GuidTypeIdentifier.String(), fmt.Sprintf("expected %d bytes, found %d", guidLength, len(b)))
	}
	var g Guid
	copy(g.value[:], b)
	g.notNull = true
	return g, nil
}

// NewGuidFromComponents builds a Guid from the fields of its text form: a is the first group, b and c
// the second and third, and d the last eight bytes.
func NewGuidFromComponents(a uint32, b, c uint16, d [8]byte) Guid {
	var g [guidLength]byte
	binary.LittleEndian.PutUint32(g[0:], a)
	binary.LittleEndian.PutUint16(g[4:], b)
	binary.LittleEndian.PutUint16(g[6:], c)
	copy(g[8:], d[:])
	return Guid{value: g, notNull: true}
}

// NewGuidRandom returns a random, version 4 Guid.
func NewGuidRandom() (Guid, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return GuidNull, err
	}
	return NewGuid(u), nil
}

// ParseGuid accepts the hyphenated form, optionally in braces or with a "urn:uuid:" prefix, and 32
// bare hex digits.
func ParseGuid(s string) (Guid, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return GuidNull, formatErr(s, GuidTypeIdentifier, err)
	}
	return NewGuid(u), nil
}

// IsNull implements Value interface.
func (x Guid) IsNull() bool {
	return !x.notNull
}

// Type implements Value interface.
func (x Guid) Type() Identifier {
	return GuidTypeIdentifier
}

func (x Guid) Value() (uuid.UUID, error) {
	if x.IsNull() {
		return uuid.Nil, nullValue(GuidTypeIdentifier)
	}
	return x.uuid(), nil
}

// UUID returns the RFC 4122 form, or uuid.Nil for Null.
func (x Guid) UUID() uuid.UUID {
	if x.IsNull() {
		return uuid.Nil
	}
	return x.uuid()
}

func (x Guid) uuid() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:], binary.LittleEndian.Uint32(x.value[0:]))
	binary.BigEndian.PutUint16(u[4:], binary.LittleEndian.Uint16(x.value[4:]))
	binary.BigEndian.PutUint16(u[6:], binary.LittleEndian.Uint16(x.value[6:]))
	copy(u[8:], x.value[8:])
	return u
}

// ToByteArray returns the 16 bytes in Guid byte order, or nil for Null.
func (x Guid) ToByteArray() []byte {
	if x.IsNull() {
		return nil
	}
	b := make([]byte, guidLength)
	copy(b, x.value[:])
	return b
}

// String implements Value interface. The text form is lower case and hyphenated.
func (x Guid) String() string {
	if x.IsNull() {
		return nullString
	}
	return x.uuid().String()
}

// Equals implements Value interface.
func (x Guid) Equals(other Value) bool {
	y, ok := other.(Guid)
	return ok && x == y
}

func compareGuid(x, y [guidLength]byte) int {
	for _, i := range guidOrder {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CompareTo implements Value interface. The node bytes are the most significant.
func (x Guid) CompareTo(other Value) (int, error) {
	y, ok := other.(Guid)
	if !ok {
		return 0, typeMismatch(GuidTypeIdentifier, other)
	}
	if cmp, ok := compareNulls(x.IsNull(), y.IsNull()); ok {
		return cmp, nil
	}
	return compareGuid(x.value, y.value), nil
}

func (x Guid) compare(y Guid, op compareOp) Boolean {
	if x.IsNull() || y.IsNull() {
		return BooleanNull
	}
	return boolCompare(compareGuid(x.value, y.value), op)
}

func (x Guid) Equal(y Guid) Boolean              { return x.compare(y, opEqual) }
func (x Guid) NotEqual(y Guid) Boolean           { return x.compare(y, opNotEqual) }
func (x Guid) LessThan(y Guid) Boolean           { return x.compare(y, opLess) }
func (x Guid) LessThanOrEqual(y Guid) Boolean    { return x.compare(y, opLessOrEqual) }
func (x Guid) GreaterThan(y Guid) Boolean        { return x.compare(y, opGreater) }
func (x Guid) GreaterThanOrEqual(y Guid) Boolean { return x.compare(y, opGreaterOrEqual) }

func (x Guid) ToBinary() Binary {
	if x.IsNull() {
		return BinaryNull
	}
	return NewBinary(x.value[:])
}

func (x Guid) ToString() String {
	if x.IsNull() {
		return StringNull
	}
	return NewString(x.String())
}
