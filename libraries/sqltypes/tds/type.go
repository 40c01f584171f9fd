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

// Package tds encodes values in the nullable column encodings of the TDS protocol: a type byte, type
// specific metadata, a length and the payload.
package tds

import (
	"fmt"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/sqltypes/libraries/sqltypes"
)

// ErrMalformed is returned when a buffer does not hold a well formed value.
var ErrMalformed = errors.NewKind("malformed %s value: %s")

// ErrUnsupportedType is returned for a type byte without an encoding here.
var ErrUnsupportedType = errors.NewKind("type 0x%02x is not supported")

// ErrTooLong is returned when a variable length value exceeds the largest encodable length.
var ErrTooLong = errors.NewKind("%s value of %d bytes exceeds the maximum of %d bytes")

// TypeID is the type byte that starts every encoded value.
type TypeID uint8

// Nullable type bytes. The fixed size types are carried in their variable length form so that Null has
// a representation.
const (
	GuidType      TypeID = 0x24
	IntNType      TypeID = 0x26
	BitNType      TypeID = 0x68
	DecimalNType  TypeID = 0x6a
	FltNType      TypeID = 0x6d
	MoneyNType    TypeID = 0x6e
	DateTimeNType TypeID = 0x6f
	BigVarBinType TypeID = 0xa5
	NVarCharType  TypeID = 0xe7
)

const (
	byteSize     = 1
	int16Size    = 2
	int32Size    = 4
	int64Size    = 8
	float32Size  = 4
	float64Size  = 8
	moneySize    = 8
	dateTimeSize = 8
	guidSize     = 16
	decimalSize  = 17
	// collationSize is a 32-bit LCID and flags word followed by a sort id byte.
	collationSize = 5

	// MaxVarLength is the largest payload of a variable length value.
	MaxVarLength = 8000
	// nullVarLength marks a Null variable length value.
	nullVarLength = 0xffff
)

func (id TypeID) String() string {
	switch id {
	case GuidType:
		return "GUIDTYPE"
	case IntNType:
		return "INTNTYPE"
	case BitNType:
		return "BITNTYPE"
	case DecimalNType:
		return "DECIMALNTYPE"
	case FltNType:
		return "FLTNTYPE"
	case MoneyNType:
		return "MONEYNTYPE"
	case DateTimeNType:
		return "DATETIMNTYPE"
	case BigVarBinType:
		return "BIGVARBINTYPE"
	case NVarCharType:
		return "NVARCHARTYPE"
	default:
		return fmt.Sprintf("TYPE(0x%02x)", uint8(id))
	}
}

// TypeOf returns the type byte used for values of type id.
func TypeOf(id sqltypes.Identifier) (TypeID, bool) {
	switch id {
	case sqltypes.BooleanTypeIdentifier:
		return BitNType, true
	case sqltypes.ByteTypeIdentifier, sqltypes.Int16TypeIdentifier, sqltypes.Int32TypeIdentifier, sqltypes.Int64TypeIdentifier:
		return IntNType, true
	case sqltypes.SingleTypeIdentifier, sqltypes.DoubleTypeIdentifier:
		return FltNType, true
	case sqltypes.DecimalTypeIdentifier:
		return DecimalNType, true
	case sqltypes.MoneyTypeIdentifier:
		return MoneyNType, true
	case sqltypes.DateTimeTypeIdentifier:
		return DateTimeNType, true
	case sqltypes.GuidTypeIdentifier:
		return GuidType, true
	case sqltypes.BinaryTypeIdentifier:
		return BigVarBinType, true
	case sqltypes.StringTypeIdentifier:
		return NVarCharType, true
	default:
		return 0, false
	}
}

// decimalLength returns the payload length used for a decimal of the given precision: a sign byte
// followed by 4, 8, 12 or 16 mantissa bytes.
func decimalLength(precision uint8) int {
	switch {
	case precision <= 9:
		return 5
	case precision <= 19:
		return 9
	case precision <= 28:
		return 13
	default:
		return decimalSize
	}
}
