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

// Package sqldb moves sqltypes values through database/sql.
package sqldb

import (
	"database/sql"
	"database/sql/driver"

	"github.com/dolthub/sqltypes/libraries/sqltypes"
)

// Arg returns v as a driver argument. Null is nil. Decimal, Money, DateTime and Guid are passed as
// their text form so that no precision is lost in drivers without matching native types.
func Arg(v sqltypes.Value) driver.Value {
	if v == nil || v.IsNull() {
		return nil
	}
	switch x := v.(type) {
	case sqltypes.Boolean:
		b, _ := x.Value()
		return b
	case sqltypes.Byte:
		n, _ := x.Value()
		return int64(n)
	case sqltypes.Int16:
		n, _ := x.Value()
		return int64(n)
	case sqltypes.Int32:
		n, _ := x.Value()
		return int64(n)
	case sqltypes.Int64:
		n, _ := x.Value()
		return n
	case sqltypes.Single:
		f, _ := x.Value()
		return float64(f)
	case sqltypes.Double:
		f, _ := x.Value()
		return f
	case sqltypes.String:
		s, _ := x.Value()
		return s
	case sqltypes.Binary:
		b, _ := x.Value()
		if b == nil {
			b = []byte{}
		}
		return b
	default:
		return v.String()
	}
}

// Args applies Arg to each of vals, for use as the variadic arguments of Exec and Query.
func Args(vals ...sqltypes.Value) []interface{} {
	args := make([]interface{}, len(vals))
	for i, v := range vals {
		args[i] = Arg(v)
	}
	return args
}

type valuer struct {
	v sqltypes.Value
}

func (vr valuer) Value() (driver.Value, error) {
	return Arg(vr.v), nil
}

// Valuer wraps v as a driver.Valuer.
func Valuer(v sqltypes.Value) driver.Valuer {
	return valuer{v: v}
}

// Scanner reads a column into a value of Type, converting whatever the driver returns through the
// conversion matrix.
type Scanner struct {
	Type  sqltypes.Identifier
	value sqltypes.Value
}

var _ sql.Scanner = (*Scanner)(nil)

// NewScanner returns a Scanner for columns of type id.
func NewScanner(id sqltypes.Identifier) *Scanner {
	return &Scanner{Type: id}
}

// Scan implements sql.Scanner.
func (s *Scanner) Scan(src interface{}) error {
	if !s.Type.IsValid() {
		return sqltypes.ErrUnknownType.New(s.Type)
	}
	if src == nil {
		s.value = sqltypes.NullOf(s.Type)
		return nil
	}
	// drivers hand back text columns as []byte
	if b, ok := src.([]byte); ok && s.Type != sqltypes.BinaryTypeIdentifier {
		src = string(b)
	}
	v, err := sqltypes.FromNative(src)
	if err != nil {
		return err
	}
	converted, err := sqltypes.Convert(v, s.Type)
	if err != nil {
		return err
	}
	s.value = converted
	return nil
}

// Value returns the last scanned value, or the Null of Type before the first Scan.
func (s *Scanner) Value() (sqltypes.Value, error) {
	if s.value != nil {
		return s.value, nil
	}
	if !s.Type.IsValid() {
		return nil, sqltypes.ErrUnknownType.New(s.Type)
	}
	return sqltypes.NullOf(s.Type), nil
}
