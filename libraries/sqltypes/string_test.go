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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
)

func mustCollation(t *testing.T, lcid uint32, opts collation.CompareOptions) collation.Collation {
	c, err := collation.New(lcid, opts)
	require.NoError(t, err)
	return c
}

func TestStringCompare(t *testing.T) {
	binary := mustCollation(t, collation.EnglishUSLCID, collation.BinarySort)

	tests := []struct {
		name     string
		x, y     String
		expected int
	}{
		{"ignore case", NewString("abc"), NewString("ABC"), 0},
		{"trailing spaces", NewString("abc  "), NewString("abc"), 0},
		{"less", NewString("abc"), NewString("abd"), -1},
		{"greater", NewString("b"), NewString("a"), 1},
		{"binary case", NewStringWithCollation("B", binary), NewStringWithCollation("a", binary), -1},
		{"binary equal", NewStringWithCollation("a ", binary), NewStringWithCollation("a", binary), 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cmp, err := test.x.CompareTo(test.y)
			require.NoError(t, err)
			assert.Equal(t, test.expected, cmp)

			eq, err := test.x.Equal(test.y)
			require.NoError(t, err)
			assert.Equal(t, NewBoolean(test.expected == 0), eq)
			lt, err := test.x.LessThan(test.y)
			require.NoError(t, err)
			assert.Equal(t, NewBoolean(test.expected < 0), lt)
			ge, err := test.x.GreaterThanOrEqual(test.y)
			require.NoError(t, err)
			assert.Equal(t, NewBoolean(test.expected >= 0), ge)
		})
	}

	assert.False(t, NewString("abc").Equals(NewString("ABC")))
	assert.True(t, NewString("abc").Equals(NewString("abc")))
}

func TestStringIncompatibleCollations(t *testing.T) {
	french := NewStringWithCollation("abc", mustCollation(t, 1036, collation.IgnoreCase))
	english := NewString("abc")

	_, err := french.CompareTo(english)
	assert.True(t, ErrIncompatibleCollation.Is(err))
	_, err = french.Equal(english)
	assert.True(t, ErrIncompatibleCollation.Is(err))
	_, err = french.Concat(english)
	assert.True(t, ErrIncompatibleCollation.Is(err))
	assert.False(t, french.Equals(english))

	cased := NewStringWithCollation("abc", mustCollation(t, collation.EnglishUSLCID, collation.None))
	_, err = cased.CompareTo(english)
	assert.True(t, ErrIncompatibleCollation.Is(err))

	// Null short circuits before the collation check
	eq, err := french.Equal(StringNull)
	require.NoError(t, err)
	assert.Equal(t, BooleanNull, eq)
	cmp, err := french.CompareTo(StringNull)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	_, err = english.CompareTo(NewInt32(1))
	assert.True(t, ErrTypeMismatch.Is(err))
}

func TestStringConcat(t *testing.T) {
	c := mustCollation(t, 1031, collation.IgnoreCase|collation.IgnoreNonSpace)
	x := NewStringWithCollation("Stra", c)

	r, err := x.Add(NewStringWithCollation("ße", c))
	require.NoError(t, err)
	assert.Equal(t, "Straße", r.String())
	assert.Equal(t, c, r.Collation())
	assert.Equal(t, uint32(1031), r.LCID())
	assert.Equal(t, collation.IgnoreCase|collation.IgnoreNonSpace, r.CompareOptions())

	r, err = x.Concat(StringNull)
	require.NoError(t, err)
	assert.True(t, r.IsNull())
	r, err = StringNull.Concat(x)
	require.NoError(t, err)
	assert.True(t, r.IsNull())
	assert.Equal(t, collation.Collation{}, StringNull.Collation())
}

func TestStringBytes(t *testing.T) {
	s := NewString("ab")
	u, err := s.UnicodeBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0, 'b', 0}, u)

	russian := mustCollation(t, 1049, collation.IgnoreCase)
	r := NewStringWithCollation("Привет", russian)
	nb, err := r.NonUnicodeBytes()
	require.NoError(t, err)
	assert.Len(t, nb, 6)

	back, err := NewStringFromBytes(russian, nb, false)
	require.NoError(t, err)
	assert.True(t, r.Equals(back))

	back, err = NewStringFromBytes(collation.Default, u, true)
	require.NoError(t, err)
	assert.True(t, s.Equals(back))

	n, err := NewStringFromBytes(collation.Default, nil, true)
	require.NoError(t, err)
	assert.True(t, n.IsNull())

	_, err = StringNull.UnicodeBytes()
	assert.True(t, ErrNullValue.Is(err))
	_, err = StringNull.NonUnicodeBytes()
	assert.True(t, ErrNullValue.Is(err))
	_, err = StringNull.SortKey()
	assert.True(t, ErrNullValue.Is(err))

	k1, err := NewString("ABC").SortKey()
	require.NoError(t, err)
	k2, err := NewString("abc").SortKey()
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestStringConversions(t *testing.T) {
	i, err := NewString(" 42 ").ToInt32()
	require.NoError(t, err)
	assert.Equal(t, NewInt32(42), i)
	_, err = NewString("4x").ToInt32()
	assert.True(t, ErrFormat.Is(err))
	_, err = NewString("40000").ToInt16()
	assert.True(t, ErrOverflow.Is(err))
	_, err = NewString("256").ToByte()
	assert.True(t, ErrOverflow.Is(err))

	b, err := NewString("true").ToBoolean()
	require.NoError(t, err)
	assert.Equal(t, BooleanTrue, b)

	d, err := NewString("1.50").ToDecimal()
	require.NoError(t, err)
	assert.Equal(t, "1.50", d.String())
	m, err := NewString("$1,000").ToMoney()
	require.NoError(t, err)
	assert.Equal(t, "1000.00", m.String())
	f, err := NewString("2.5").ToDouble()
	require.NoError(t, err)
	assert.Equal(t, "2.5", f.String())
	sg, err := NewString("2.5").ToSingle()
	require.NoError(t, err)
	assert.Equal(t, "2.5", sg.String())
	i64, err := NewString("-9223372036854775808").ToInt64()
	require.NoError(t, err)
	assert.Equal(t, Int64Min, i64)

	bin, err := NewString("0x0102").ToBinary()
	require.NoError(t, err)
	assert.Equal(t, "0x0102", bin.String())
	_, err = NewString("not a guid").ToGuid()
	assert.True(t, ErrFormat.Is(err))
	dt, err := NewString("2004-10-19 10:23:54").ToDateTime()
	require.NoError(t, err)
	assert.Equal(t, "2004-10-19 10:23:54.000", dt.String())

	n, err := StringNull.ToInt32()
	require.NoError(t, err)
	assert.Equal(t, Int32Null, n)
	nd, err := StringNull.ToDateTime()
	require.NoError(t, err)
	assert.True(t, nd.IsNull())
	_, err = StringNull.Value()
	assert.True(t, ErrNullValue.Is(err))
}
