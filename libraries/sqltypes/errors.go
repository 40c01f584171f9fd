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
	"gopkg.in/src-d/go-errors.v1"
)

// ErrNullValue is returned when the payload of a Null value is read.
var ErrNullValue = errors.NewKind("data is Null: `%s` cannot be read on a Null value")

// ErrOverflow is returned when a result, conversion or constructor argument falls outside the
// representable range of the destination type.
var ErrOverflow = errors.NewKind("arithmetic overflow converting `%v` to `%s`")

// ErrDivideByZero is returned when a non-null divisor is zero.
var ErrDivideByZero = errors.NewKind("divide by zero error encountered in `%s`")

// ErrFormat is returned when text cannot be interpreted in the grammar of the destination type.
var ErrFormat = errors.NewKind("input string `%s` was not in a correct format for `%s`")

// ErrTypeMismatch is returned when two values of incompatible types are compared.
var ErrTypeMismatch = errors.NewKind("`%s` cannot be compared with a value of type `%s`")

// ErrArgument is returned when an argument is well typed but unusable, such as a byte slice of the wrong length.
var ErrArgument = errors.NewKind("invalid argument for `%s`: %s")

// ErrNullArgument is returned when a required argument is nil.
var ErrNullArgument = errors.NewKind("argument `%s` cannot be nil")

// ErrIncompatibleCollation is returned when two strings with different collations are compared or concatenated.
var ErrIncompatibleCollation = errors.NewKind("two strings have different collations: `%s` and `%s`")

// ErrIndexOutOfRange is returned when a Binary is indexed outside of its bounds.
var ErrIndexOutOfRange = errors.NewKind("index %d was outside the bounds of a value of length %d")

// ErrUnknownType is returned when a type name cannot be resolved.
var ErrUnknownType = errors.NewKind("unknown type `%s`")

// UnhandledTypeConversion is returned when no conversion exists between two types.
var UnhandledTypeConversion = errors.NewKind("`%s` does not know how to handle type conversions to `%s`")

func overflow(v interface{}, id Identifier) error {
	return ErrOverflow.New(v, id.String())
}

func formatErr(s string, id Identifier, cause error) error {
	if cause != nil {
		return ErrFormat.Wrap(cause, s, id.String())
	}
	return ErrFormat.New(s, id.String())
}

func nullValue(id Identifier) error {
	return ErrNullValue.New(id.String())
}

func divideByZero(id Identifier) error {
	return ErrDivideByZero.New(id.String())
}

func typeMismatch(id Identifier, other Value) error {
	if other == nil {
		return ErrTypeMismatch.New(id.String(), "<nil>")
	}
	return ErrTypeMismatch.New(id.String(), other.Type().String())
}
