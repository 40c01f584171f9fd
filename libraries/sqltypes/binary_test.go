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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryConcatAndIndex(t *testing.T) {
	a := NewBinary([]byte{240, 15})
	b := NewBinary([]byte{10, 10, 10})

	ab := a.Concat(b)
	assert.Equal(t, "0xF00F0A0A0A", ab.String())
	ba := b.Add(a)
	v, err := ba.At(4)
	require.NoError(t, err)
	assert.Equal(t, byte(15), v)
	n, err := ba.Length()
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = ba.At(5)
	assert.True(t, ErrIndexOutOfRange.Is(err))
	_, err = ba.At(-1)
	assert.True(t, ErrIndexOutOfRange.Is(err))
	_, err = BinaryNull.At(0)
	assert.True(t, ErrNullValue.Is(err))
	_, err = BinaryNull.Length()
	assert.True(t, ErrNullValue.Is(err))

	assert.True(t, a.Concat(BinaryNull).IsNull())
	assert.True(t, BinaryNull.Concat(a).IsNull())
	assert.Equal(t, "0x", NewBinary([]byte{}).Concat(NewBinary([]byte{})).String())
}

func TestBinaryOrdering(t *testing.T) {
	tests := []struct {
		x, y     []byte
		expected int
	}{
		{[]byte{240, 15}, []byte{240, 15}, 0},
		{[]byte{240, 15}, []byte{10, 10, 10}, 1},
		{[]byte{1, 2}, []byte{1, 2, 0}, -1},
		{[]byte{1, 2, 0}, []byte{1, 2}, 1},
		{[]byte{}, []byte{0}, -1},
		{[]byte{0xff}, []byte{0, 0xff, 0xff}, 1},
	}

	for _, test := range tests {
		x, y := NewBinary(test.x), NewBinary(test.y)
		cmp, err := x.CompareTo(y)
		require.NoError(t, err)
		assert.Equal(t, test.expected, cmp, "%v vs %v", x, y)
		assert.Equal(t, NewBoolean(test.expected == 0), x.Equal(y))
		assert.Equal(t, NewBoolean(test.expected < 0), x.LessThan(y))
		assert.Equal(t, NewBoolean(test.expected > 0), x.GreaterThan(y))
	}

	cmp, err := NewBinary([]byte{}).CompareTo(BinaryNull)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)
	assert.Equal(t, BooleanNull, BinaryNull.Equal(BinaryNull))
	assert.True(t, BinaryNull.Equals(BinaryNull))
	assert.False(t, BinaryNull.Equals(NewBinary([]byte{})))
	_, err = BinaryNull.CompareTo(StringNull)
	assert.True(t, ErrTypeMismatch.Is(err))
}

func TestBinaryCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	b := NewBinary(src)
	src[0] = 9

	v, err := b.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, v)
	v[1] = 9
	first, err := b.At(1)
	require.NoError(t, err)
	assert.Equal(t, byte(2), first)

	assert.True(t, NewBinary(nil).IsNull())
	_, err = BinaryNull.Value()
	assert.True(t, ErrNullValue.Is(err))
}

func TestParseBinary(t *testing.T) {
	tests := []struct {
		input    string
		expected []byte
	}{
		{"0x0A0b", []byte{0x0a, 0x0b}},
		{"0XFF", []byte{0xff}},
		{"deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{" 0x ", []byte{}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			b, err := ParseBinary(test.input)
			require.NoError(t, err)
			v, err := b.Value()
			require.NoError(t, err)
			assert.Equal(t, test.expected, v)
		})
	}

	for _, bad := range []string{"0x1", "xyz", "0x0g"} {
		_, err := ParseBinary(bad)
		assert.True(t, ErrFormat.Is(err), "%q: %v", bad, err)
	}

	for i := 0; i < 100; i++ {
		buf := make([]byte, rand.Intn(64))
		rand.Read(buf)
		b := NewBinary(buf)
		back, err := ParseBinary(b.String())
		require.NoError(t, err)
		assert.True(t, b.Equals(back))
	}
}

func TestBinaryConversions(t *testing.T) {
	g, err := ParseGuid("6F9619FF-8B86-D011-B42D-00C04FC964FF")
	require.NoError(t, err)
	back, err := g.ToBinary().ToGuid()
	require.NoError(t, err)
	assert.Equal(t, g, back)

	_, err = NewBinary([]byte{1, 2, 3}).ToGuid()
	assert.True(t, ErrArgument.Is(err))
	ng, err := BinaryNull.ToGuid()
	require.NoError(t, err)
	assert.True(t, ng.IsNull())

	assert.Equal(t, "0x0102", NewBinary([]byte{1, 2}).ToString().String())
	assert.True(t, BinaryNull.ToString().IsNull())
}
