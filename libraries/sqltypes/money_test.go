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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) Money {
	m, err := ParseMoney(s)
	require.NoError(t, err)
	return m
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1.5", "1.50"},
		{"$1,234.5", "1234.50"},
		{"-$1,234.5678", "-1234.5678"},
		{" +12 ", "12.00"},
		{"1.234", "1.234"},
		{"1.23456", "1.2346"},
		{"-1.23455", "-1.2346"},
		{"0", "0.00"},
		{"922337203685477.5807", "922337203685477.5807"},
		{"-922,337,203,685,477.5808", "-922337203685477.5808"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, mustMoney(t, test.input).String())
		})
	}

	assert.Equal(t, MoneyMax, mustMoney(t, "922337203685477.5807"))
	assert.Equal(t, MoneyMin, mustMoney(t, "-922337203685477.5808"))

	for _, bad := range []string{"", "$", ",123", "1,,2", "12,", "1e3", "1.2.3", "abc"} {
		_, err := ParseMoney(bad)
		assert.True(t, ErrFormat.Is(err), "%q: %v", bad, err)
	}
	for _, big := range []string{"922337203685477.5808", "-922337203685477.5809", "1000000000000000"} {
		_, err := ParseMoney(big)
		assert.True(t, ErrOverflow.Is(err), "%q: %v", big, err)
	}
}

func TestNewMoney(t *testing.T) {
	assert.Equal(t, "2147483647.00", NewMoneyFromInt32(math.MaxInt32).String())

	m, err := NewMoneyFromInt64(922337203685477)
	require.NoError(t, err)
	assert.Equal(t, "922337203685477.00", m.String())
	_, err = NewMoneyFromInt64(922337203685478)
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewMoneyFromInt64(math.MinInt64)
	assert.True(t, ErrOverflow.Is(err))

	_, err = NewMoneyFromFloat64(math.Inf(1))
	assert.True(t, ErrOverflow.Is(err))

	ticks, err := mustMoney(t, "1.2345").Ticks()
	require.NoError(t, err)
	assert.Equal(t, int64(12345), ticks)
	_, err = MoneyNull.Ticks()
	assert.True(t, ErrNullValue.Is(err))
	_, err = MoneyNull.Value()
	assert.True(t, ErrNullValue.Is(err))
	assert.Equal(t, "Null", MoneyNull.String())
}

func TestMoneyArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func(Money, Money) (Money, error)
		x, y     string
		expected string
	}{
		{"add", Money.Add, "1.25", "2.5", "3.75"},
		{"subtract", Money.Subtract, "1.25", "2.5", "-1.25"},
		{"multiply", Money.Multiply, "1.5", "2.25", "3.375"},
		{"multiply rounds", Money.Multiply, "0.0001", "0.5", "0.0001"},
		{"multiply underflow", Money.Multiply, "0.0001", "0.0001", "0.00"},
		{"divide", Money.Divide, "10", "3", "3.3333"},
		{"divide rounds", Money.Divide, "2", "3", "0.6667"},
		{"divide negative", Money.Divide, "-2", "3", "-0.6667"},
		{"mod", Money.Mod, "10", "3", "1.00"},
		{"mod negative", Money.Mod, "-10", "3", "-1.00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := test.op(mustMoney(t, test.x), mustMoney(t, test.y))
			require.NoError(t, err)
			assert.Equal(t, test.expected, r.String())
		})
	}

	tick := NewMoneyFromTicks(1)
	_, err := MoneyMax.Add(tick)
	assert.True(t, ErrOverflow.Is(err))
	_, err = MoneyMin.Subtract(tick)
	assert.True(t, ErrOverflow.Is(err))
	_, err = MoneyMax.Multiply(mustMoney(t, "2"))
	assert.True(t, ErrOverflow.Is(err))
	_, err = MoneyMax.Divide(mustMoney(t, "0.5"))
	assert.True(t, ErrOverflow.Is(err))
	_, err = MoneyMax.Divide(MoneyZero)
	assert.True(t, ErrDivideByZero.Is(err))
	_, err = MoneyMax.Mod(MoneyZero)
	assert.True(t, ErrDivideByZero.Is(err))

	r, err := MoneyNull.Divide(MoneyZero)
	require.NoError(t, err)
	assert.Equal(t, MoneyNull, r)

	assert.Equal(t, BooleanTrue, MoneyMin.LessThan(MoneyMax))
	assert.Equal(t, BooleanNull, MoneyNull.NotEqual(MoneyMax))
	cmp, err := MoneyNull.CompareTo(MoneyMin)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)
}

func TestMoneyConversions(t *testing.T) {
	tests := []struct {
		input    string
		expected int32
	}{
		{"2.5", 3},
		{"-2.5", -3},
		{"2.4999", 2},
		{"-2.4999", -2},
		{"0.5", 1},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			i, err := mustMoney(t, test.input).ToInt32()
			require.NoError(t, err)
			assert.Equal(t, NewInt32(test.expected), i)
		})
	}

	b, err := mustMoney(t, "-0.4").ToByte()
	require.NoError(t, err)
	assert.Equal(t, NewByte(0), b)
	_, err = mustMoney(t, "255.5").ToByte()
	assert.True(t, ErrOverflow.Is(err))
	_, err = mustMoney(t, "32767.5").ToInt16()
	assert.True(t, ErrOverflow.Is(err))
	_, err = MoneyMax.ToInt32()
	assert.True(t, ErrOverflow.Is(err))
	assert.Equal(t, NewInt64(922337203685478), MoneyMax.ToInt64())
	assert.Equal(t, NewInt64(-922337203685478), MoneyMin.ToInt64())

	d := mustMoney(t, "1.5").ToDecimal()
	assert.Equal(t, "1.5000", d.String())
	assert.Equal(t, uint8(19), d.Precision())
	assert.Equal(t, uint8(4), d.Scale())

	assert.Equal(t, "1.5", mustMoney(t, "1.5").ToDouble().String())
	assert.Equal(t, "1.5", mustMoney(t, "1.5").ToSingle().String())
	assert.Equal(t, BooleanFalse, MoneyZero.ToBoolean())
	assert.Equal(t, "1234.50", mustMoney(t, "1234.5").ToString().String())
	assert.True(t, MoneyNull.ToDecimal().IsNull())
	assert.Equal(t, Int64Null, MoneyNull.ToInt64())
}
