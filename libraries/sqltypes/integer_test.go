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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteArithmetic(t *testing.T) {
	r, err := NewByte(255).Add(NewByte(0))
	require.NoError(t, err)
	assert.Equal(t, NewByte(255), r)

	_, err = NewByte(255).Add(NewByte(1))
	assert.True(t, ErrOverflow.Is(err))

	_, err = NewByte(0).Subtract(NewByte(1))
	assert.True(t, ErrOverflow.Is(err))

	_, err = NewByte(16).Multiply(NewByte(16))
	assert.True(t, ErrOverflow.Is(err))

	r, err = NewByte(200).Divide(NewByte(3))
	require.NoError(t, err)
	assert.Equal(t, NewByte(66), r)

	r, err = NewByte(200).Mod(NewByte(3))
	require.NoError(t, err)
	assert.Equal(t, NewByte(2), r)

	_, err = NewByte(1).Divide(NewByte(0))
	assert.True(t, ErrDivideByZero.Is(err))

	r, err = ByteNull.Divide(NewByte(0))
	require.NoError(t, err)
	assert.Equal(t, ByteNull, r)

	assert.Equal(t, NewByte(0xf0), NewByte(0x0f).OnesComplement())
	assert.Equal(t, NewByte(0x0a), NewByte(0x0f).BitwiseAnd(NewByte(0x3a)))
	assert.Equal(t, NewByte(0x3f), NewByte(0x0f).BitwiseOr(NewByte(0x3a)))
	assert.Equal(t, NewByte(0x35), NewByte(0x0f).Xor(NewByte(0x3a)))
	assert.Equal(t, ByteNull, ByteNull.Xor(NewByte(1)))
}

func TestInt32Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func(Int32, Int32) (Int32, error)
		x, y     Int32
		expected Int32
		kind     func(error) bool
	}{
		{"add", Int32.Add, NewInt32(1), NewInt32(2), NewInt32(3), nil},
		{"add overflow", Int32.Add, NewInt32(math.MaxInt32), NewInt32(1), Int32Null, ErrOverflow.Is},
		{"add null", Int32.Add, Int32Null, NewInt32(1), Int32Null, nil},
		{"subtract overflow", Int32.Subtract, NewInt32(math.MinInt32), NewInt32(1), Int32Null, ErrOverflow.Is},
		{"multiply", Int32.Multiply, NewInt32(-4), NewInt32(5), NewInt32(-20), nil},
		{"multiply overflow", Int32.Multiply, NewInt32(1 << 16), NewInt32(1 << 15), Int32Null, ErrOverflow.Is},
		{"divide truncates", Int32.Divide, NewInt32(-7), NewInt32(2), NewInt32(-3), nil},
		{"divide by zero", Int32.Divide, NewInt32(7), NewInt32(0), Int32Null, ErrDivideByZero.Is},
		{"null divide by zero", Int32.Divide, Int32Null, NewInt32(0), Int32Null, nil},
		{"divide overflow", Int32.Divide, NewInt32(math.MinInt32), NewInt32(-1), Int32Null, ErrOverflow.Is},
		{"mod sign of dividend", Int32.Mod, NewInt32(-7), NewInt32(2), NewInt32(-1), nil},
		{"mod by zero", Int32.Mod, NewInt32(7), NewInt32(0), Int32Null, ErrDivideByZero.Is},
		{"mod overflow", Int32.Mod, NewInt32(math.MinInt32), NewInt32(-1), Int32Null, ErrOverflow.Is},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := test.op(test.x, test.y)
			if test.kind != nil {
				assert.True(t, test.kind(err), "%v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, r)
		})
	}
}

func TestInt16AndInt64Arithmetic(t *testing.T) {
	_, err := NewInt16(math.MaxInt16).Add(NewInt16(1))
	assert.True(t, ErrOverflow.Is(err))
	r16, err := NewInt16(-300).Multiply(NewInt16(100))
	require.NoError(t, err)
	assert.Equal(t, NewInt16(-30000), r16)
	_, err = NewInt16(math.MinInt16).Divide(NewInt16(-1))
	assert.True(t, ErrOverflow.Is(err))

	_, err = NewInt64(math.MaxInt64).Add(NewInt64(1))
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewInt64(math.MinInt64).Subtract(NewInt64(1))
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewInt64(math.MinInt64).Multiply(NewInt64(-1))
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewInt64(1 << 32).Multiply(NewInt64(1 << 31))
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewInt64(math.MinInt64).Divide(NewInt64(-1))
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewInt64(1).Mod(NewInt64(0))
	assert.True(t, ErrDivideByZero.Is(err))

	r64, err := NewInt64(math.MaxInt64).Subtract(NewInt64(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, NewInt64(0), r64)
	assert.Equal(t, NewInt64(-1), NewInt64(0).OnesComplement())
}

func TestParseIntegers(t *testing.T) {
	tests := []struct {
		id       Identifier
		input    string
		expected string
		kind     func(error) bool
	}{
		{ByteTypeIdentifier, "255", "255", nil},
		{ByteTypeIdentifier, " 7 ", "7", nil},
		{ByteTypeIdentifier, "256", "", ErrOverflow.Is},
		{ByteTypeIdentifier, "-1", "", ErrOverflow.Is},
		{Int16TypeIdentifier, "-32768", "-32768", nil},
		{Int16TypeIdentifier, "32768", "", ErrOverflow.Is},
		{Int32TypeIdentifier, "+2147483647", "2147483647", nil},
		{Int32TypeIdentifier, "2147483648", "", ErrOverflow.Is},
		{Int32TypeIdentifier, "1.0", "", ErrFormat.Is},
		{Int32TypeIdentifier, "", "", ErrFormat.Is},
		{Int32TypeIdentifier, "0x10", "", ErrFormat.Is},
		{Int64TypeIdentifier, "-9223372036854775808", "-9223372036854775808", nil},
		{Int64TypeIdentifier, "9223372036854775808", "", ErrOverflow.Is},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%s %q", test.id, test.input), func(t *testing.T) {
			v, err := Parse(test.id, test.input)
			if test.kind != nil {
				assert.True(t, test.kind(err), "%v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.id, v.Type())
			assert.Equal(t, test.expected, v.String())
			// the canonical text parses back to the same value
			back, err := Parse(test.id, v.String())
			require.NoError(t, err)
			assert.True(t, v.Equals(back))
		})
	}
}

func TestIntegerNulls(t *testing.T) {
	nulls := []Value{ByteNull, Int16Null, Int32Null, Int64Null}
	for _, n := range nulls {
		t.Run(n.Type().String(), func(t *testing.T) {
			assert.True(t, n.IsNull())
			assert.Equal(t, "Null", n.String())
			assert.True(t, n.Equals(NullOf(n.Type())))
			cmp, err := n.CompareTo(NullOf(n.Type()))
			require.NoError(t, err)
			assert.Equal(t, 0, cmp)
		})
	}

	_, err := Int32Null.Value()
	assert.True(t, ErrNullValue.Is(err))
	assert.Equal(t, BooleanNull, Int32Null.LessThan(NewInt32(1)))
	assert.Equal(t, BooleanNull, NewInt64(1).Equal(Int64Null))
	assert.Equal(t, Int16Null, Int16Null.BitwiseOr(NewInt16(1)))
}

func TestIntegerComparisons(t *testing.T) {
	assert.Equal(t, BooleanTrue, NewInt32(-1).LessThan(NewInt32(0)))
	assert.Equal(t, BooleanTrue, NewInt32(0).LessThanOrEqual(NewInt32(0)))
	assert.Equal(t, BooleanFalse, NewInt16(3).GreaterThan(NewInt16(3)))
	assert.Equal(t, BooleanTrue, NewInt64(3).GreaterThanOrEqual(NewInt64(3)))
	assert.Equal(t, BooleanTrue, NewByte(3).NotEqual(NewByte(4)))

	cmp, err := NewInt64(math.MinInt64).CompareTo(NewInt64(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)
	cmp, err = NewInt16(1).CompareTo(Int16Null)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)
	_, err = NewInt16(1).CompareTo(NewInt32(1))
	assert.True(t, ErrTypeMismatch.Is(err))
	assert.False(t, NewInt16(1).Equals(NewInt32(1)))
}

func TestIntegerConversions(t *testing.T) {
	b, err := NewInt32(255).ToByte()
	require.NoError(t, err)
	assert.Equal(t, NewByte(255), b)
	_, err = NewInt32(256).ToByte()
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewInt16(-1).ToByte()
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewInt32(40000).ToInt16()
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewInt64(1 << 31).ToInt32()
	assert.True(t, ErrOverflow.Is(err))
	i32, err := NewInt64(-5).ToInt32()
	require.NoError(t, err)
	assert.Equal(t, NewInt32(-5), i32)

	b, err = Int64Null.ToByte()
	require.NoError(t, err)
	assert.Equal(t, ByteNull, b)

	assert.Equal(t, BooleanTrue, NewInt16(-3).ToBoolean())
	assert.Equal(t, BooleanFalse, NewInt64(0).ToBoolean())
	assert.Equal(t, NewInt64(300), NewInt16(300).ToInt64())
	assert.Equal(t, NewInt32(200), NewByte(200).ToInt32())
	assert.Equal(t, "12.00", NewInt32(12).ToMoney().String())
	assert.Equal(t, "-7", NewInt64(-7).ToDecimal().String())
	assert.Equal(t, NewString("-7"), NewInt64(-7).ToString())

	m, err := NewInt64(922337203685477).ToMoney()
	require.NoError(t, err)
	assert.Equal(t, "922337203685477.00", m.String())
	_, err = NewInt64(922337203685478).ToMoney()
	assert.True(t, ErrOverflow.Is(err))

	// float64 holds 2^53 + 1 only approximately
	assert.Equal(t, "9.007199254740992E+15", NewInt64(1<<53+1).ToDouble().String())
}
