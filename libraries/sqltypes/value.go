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

// Package sqltypes implements the SQL Server family of nullable value types. Every type carries an
// explicit Null state that is distinct from its zero value, relational operations follow three-valued
// logic, and all arithmetic and conversions are checked.
package sqltypes

import (
	"fmt"
	"strings"
)

// Value is implemented by every type in the package.
type Value interface {
	// IsNull reports whether the value is Null.
	IsNull() bool
	// Type returns the Identifier of the value's type.
	Type() Identifier
	// String returns the text form of the value, or "Null".
	String() string
	// Equals is host-level equality: two Nulls of the same type are equal, a Null never equals a non-null.
	Equals(other Value) bool
	// CompareTo orders values of the same type, sorting Null before any non-null value.
	CompareTo(other Value) (int, error)
}

// Identifier names a type of the family.
type Identifier uint8

const (
	UnknownTypeIdentifier Identifier = iota
	BooleanTypeIdentifier
	ByteTypeIdentifier
	Int16TypeIdentifier
	Int32TypeIdentifier
	Int64TypeIdentifier
	SingleTypeIdentifier
	DoubleTypeIdentifier
	DecimalTypeIdentifier
	MoneyTypeIdentifier
	StringTypeIdentifier
	BinaryTypeIdentifier
	GuidTypeIdentifier
	DateTimeTypeIdentifier
)

// Identifiers lists every known type, in declaration order.
var Identifiers = []Identifier{
	BooleanTypeIdentifier,
	ByteTypeIdentifier,
	Int16TypeIdentifier,
	Int32TypeIdentifier,
	Int64TypeIdentifier,
	SingleTypeIdentifier,
	DoubleTypeIdentifier,
	DecimalTypeIdentifier,
	MoneyTypeIdentifier,
	StringTypeIdentifier,
	BinaryTypeIdentifier,
	GuidTypeIdentifier,
	DateTimeTypeIdentifier,
}

var identifierNames = map[Identifier]string{
	UnknownTypeIdentifier:  "Unknown",
	BooleanTypeIdentifier:  "SqlBoolean",
	ByteTypeIdentifier:     "SqlByte",
	Int16TypeIdentifier:    "SqlInt16",
	Int32TypeIdentifier:    "SqlInt32",
	Int64TypeIdentifier:    "SqlInt64",
	SingleTypeIdentifier:   "SqlSingle",
	DoubleTypeIdentifier:   "SqlDouble",
	DecimalTypeIdentifier:  "SqlDecimal",
	MoneyTypeIdentifier:    "SqlMoney",
	StringTypeIdentifier:   "SqlString",
	BinaryTypeIdentifier:   "SqlBinary",
	GuidTypeIdentifier:     "SqlGuid",
	DateTimeTypeIdentifier: "SqlDateTime",
}

var identifierSqlNames = map[Identifier]string{
	BooleanTypeIdentifier:  "bit",
	ByteTypeIdentifier:     "tinyint",
	Int16TypeIdentifier:    "smallint",
	Int32TypeIdentifier:    "int",
	Int64TypeIdentifier:    "bigint",
	SingleTypeIdentifier:   "real",
	DoubleTypeIdentifier:   "float",
	DecimalTypeIdentifier:  "decimal",
	MoneyTypeIdentifier:    "money",
	StringTypeIdentifier:   "nvarchar",
	BinaryTypeIdentifier:   "varbinary",
	GuidTypeIdentifier:     "uniqueidentifier",
	DateTimeTypeIdentifier: "datetime",
}

// String returns the type name, e.g. "SqlInt32".
func (id Identifier) String() string {
	if name, ok := identifierNames[id]; ok {
		return name
	}
	return identifierNames[UnknownTypeIdentifier]
}

// IsValid reports whether id is one of Identifiers.
func (id Identifier) IsValid() bool {
	return id >= BooleanTypeIdentifier && id <= DateTimeTypeIdentifier
}

// SqlName returns the T-SQL name of the type, e.g. "int".
func (id Identifier) SqlName() string {
	return identifierSqlNames[id]
}

// ParseIdentifier resolves a type name. Both the type names ("SqlInt32", "Int32") and the T-SQL names
// ("int", "numeric") are accepted, case-insensitively.
func ParseIdentifier(name string) (Identifier, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for id, s := range identifierNames {
		if id == UnknownTypeIdentifier {
			continue
		}
		ls := strings.ToLower(s)
		if n == ls || n == strings.TrimPrefix(ls, "sql") {
			return id, nil
		}
	}
	for id, s := range identifierSqlNames {
		if n == s {
			return id, nil
		}
	}
	switch n {
	case "integer":
		return Int32TypeIdentifier, nil
	case "numeric", "dec":
		return DecimalTypeIdentifier, nil
	case "double", "float64":
		return DoubleTypeIdentifier, nil
	case "float32":
		return SingleTypeIdentifier, nil
	case "bool":
		return BooleanTypeIdentifier, nil
	case "varchar", "char", "nchar", "text", "ntext":
		return StringTypeIdentifier, nil
	case "binary", "image":
		return BinaryTypeIdentifier, nil
	case "uuid":
		return GuidTypeIdentifier, nil
	case "smallmoney":
		return MoneyTypeIdentifier, nil
	}
	return UnknownTypeIdentifier, ErrUnknownType.New(name)
}

// NullOf returns the Null value of the given type.
func NullOf(id Identifier) Value {
	switch id {
	case BooleanTypeIdentifier:
		return BooleanNull
	case ByteTypeIdentifier:
		return ByteNull
	case Int16TypeIdentifier:
		return Int16Null
	case Int32TypeIdentifier:
		return Int32Null
	case Int64TypeIdentifier:
		return Int64Null
	case SingleTypeIdentifier:
		return SingleNull
	case DoubleTypeIdentifier:
		return DoubleNull
	case DecimalTypeIdentifier:
		return DecimalNull
	case MoneyTypeIdentifier:
		return MoneyNull
	case StringTypeIdentifier:
		return StringNull
	case BinaryTypeIdentifier:
		return BinaryNull
	case GuidTypeIdentifier:
		return GuidNull
	case DateTimeTypeIdentifier:
		return DateTimeNull
	default:
		panic(fmt.Errorf(`type identifier "%v" is not valid`, uint8(id)))
	}
}

const nullString = "Null"

// compareNulls orders Null before any non-null value. ok is false when neither side is Null.
func compareNulls(xNull, yNull bool) (cmp int, ok bool) {
	switch {
	case xNull && yNull:
		return 0, true
	case xNull:
		return -1, true
	case yNull:
		return 1, true
	default:
		return 0, false
	}
}

func boolCompare(cmp int, op compareOp) Boolean {
	switch op {
	case opEqual:
		return NewBoolean(cmp == 0)
	case opNotEqual:
		return NewBoolean(cmp != 0)
	case opLess:
		return NewBoolean(cmp < 0)
	case opLessOrEqual:
		return NewBoolean(cmp <= 0)
	case opGreater:
		return NewBoolean(cmp > 0)
	case opGreaterOrEqual:
		return NewBoolean(cmp >= 0)
	default:
		panic(fmt.Errorf("unknown comparison operator %d", op))
	}
}

type compareOp uint8

const (
	opEqual compareOp = iota
	opNotEqual
	opLess
	opLessOrEqual
	opGreater
	opGreaterOrEqual
)

func compareInt64(l, r int64) int {
	if l == r {
		return 0
	} else if l < r {
		return -1
	} else {
		return 1
	}
}

func compareFloat64(l, r float64) int {
	if l == r {
		return 0
	} else if l < r {
		return -1
	} else {
		return 1
	}
}
