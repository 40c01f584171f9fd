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

package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/dolthub/sqltypes/libraries/sqltypes"
)

var operators = []string{"+", "-", "*", "/", "%", "&", "|", "^", "=", "<>", "<", "<=", ">", ">=", "and", "or"}

type relational[T any] interface {
	Equal(T) sqltypes.Boolean
	NotEqual(T) sqltypes.Boolean
	LessThan(T) sqltypes.Boolean
	LessThanOrEqual(T) sqltypes.Boolean
	GreaterThan(T) sqltypes.Boolean
	GreaterThanOrEqual(T) sqltypes.Boolean
}

type arithmetic[T any] interface {
	Add(T) (T, error)
	Subtract(T) (T, error)
	Multiply(T) (T, error)
	Divide(T) (T, error)
	Mod(T) (T, error)
}

type bitwise[T any] interface {
	BitwiseAnd(T) T
	BitwiseOr(T) T
	Xor(T) T
}

func errUndefined(op string, id sqltypes.Identifier) error {
	return errors.Errorf("operator '%s' is not defined for %s", op, id.SqlName())
}

func compare[T relational[T]](x, y T, op string) (sqltypes.Value, bool) {
	switch op {
	case "=":
		return x.Equal(y), true
	case "<>", "!=":
		return x.NotEqual(y), true
	case "<":
		return x.LessThan(y), true
	case "<=":
		return x.LessThanOrEqual(y), true
	case ">":
		return x.GreaterThan(y), true
	case ">=":
		return x.GreaterThanOrEqual(y), true
	}
	return nil, false
}

func arith[T interface {
	sqltypes.Value
	arithmetic[T]
}](x, y T, op string) (sqltypes.Value, bool, error) {
	var f func(T) (T, error)
	switch op {
	case "+":
		f = x.Add
	case "-":
		f = x.Subtract
	case "*":
		f = x.Multiply
	case "/":
		f = x.Divide
	case "%":
		f = x.Mod
	default:
		return nil, false, nil
	}
	v, err := f(y)
	if err != nil {
		return nil, true, err
	}
	return v, true, nil
}

func bits[T interface {
	sqltypes.Value
	bitwise[T]
}](x, y T, op string) (sqltypes.Value, bool) {
	switch op {
	case "&":
		return x.BitwiseAnd(y), true
	case "|":
		return x.BitwiseOr(y), true
	case "^":
		return x.Xor(y), true
	}
	return nil, false
}

func numeric[T interface {
	sqltypes.Value
	arithmetic[T]
	relational[T]
}](x, y T, op string) (sqltypes.Value, error) {
	if v, ok := compare[T](x, y, op); ok {
		return v, nil
	}
	if v, ok, err := arith[T](x, y, op); ok {
		return v, err
	}
	return nil, errUndefined(op, x.Type())
}

func integer[T interface {
	sqltypes.Value
	arithmetic[T]
	relational[T]
	bitwise[T]
}](x, y T, op string) (sqltypes.Value, error) {
	if v, ok := bits[T](x, y, op); ok {
		return v, nil
	}
	return numeric[T](x, y, op)
}

// evaluate applies a binary operator to two values of the same type.
func evaluate(lhs sqltypes.Value, op string, rhs sqltypes.Value) (sqltypes.Value, error) {
	op = strings.ToLower(strings.TrimSpace(op))
	if lhs.Type() != rhs.Type() {
		return nil, errors.Errorf("operands have different types: %s and %s", lhs.Type().SqlName(), rhs.Type().SqlName())
	}

	switch x := lhs.(type) {
	case sqltypes.Boolean:
		y := rhs.(sqltypes.Boolean)
		switch op {
		case "and", "&":
			return x.And(y), nil
		case "or", "|":
			return x.Or(y), nil
		case "^":
			return x.Xor(y), nil
		}
		if v, ok := compare(x, y, op); ok {
			return v, nil
		}
	case sqltypes.Byte:
		return integer(x, rhs.(sqltypes.Byte), op)
	case sqltypes.Int16:
		return integer(x, rhs.(sqltypes.Int16), op)
	case sqltypes.Int32:
		return integer(x, rhs.(sqltypes.Int32), op)
	case sqltypes.Int64:
		return integer(x, rhs.(sqltypes.Int64), op)
	case sqltypes.Single:
		return numeric(x, rhs.(sqltypes.Single), op)
	case sqltypes.Double:
		return numeric(x, rhs.(sqltypes.Double), op)
	case sqltypes.Decimal:
		return numeric(x, rhs.(sqltypes.Decimal), op)
	case sqltypes.Money:
		return numeric(x, rhs.(sqltypes.Money), op)
	case sqltypes.String:
		y := rhs.(sqltypes.String)
		switch op {
		case "+":
			return x.Concat(y)
		case "=":
			return x.Equal(y)
		case "<>", "!=":
			return x.NotEqual(y)
		case "<":
			return x.LessThan(y)
		case "<=":
			return x.LessThanOrEqual(y)
		case ">":
			return x.GreaterThan(y)
		case ">=":
			return x.GreaterThanOrEqual(y)
		}
	case sqltypes.Binary:
		y := rhs.(sqltypes.Binary)
		if op == "+" {
			return x.Concat(y), nil
		}
		if v, ok := compare(x, y, op); ok {
			return v, nil
		}
	case sqltypes.Guid:
		if v, ok := compare(x, rhs.(sqltypes.Guid), op); ok {
			return v, nil
		}
	case sqltypes.DateTime:
		if v, ok := compare(x, rhs.(sqltypes.DateTime), op); ok {
			return v, nil
		}
	}
	return nil, errUndefined(op, lhs.Type())
}
