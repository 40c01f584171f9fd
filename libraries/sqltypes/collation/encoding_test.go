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

package collation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestUnicode(t *testing.T) {
	b, err := EncodeUnicode("aé€")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0, 0xe9, 0, 0xac, 0x20}, b)

	s, err := DecodeUnicode(b)
	require.NoError(t, err)
	assert.Equal(t, "aé€", s)

	b, err = EncodeUnicode("\U0001F600")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x3d, 0xd8, 0x00, 0xde}, b)
}

func TestNonUnicode(t *testing.T) {
	tests := []struct {
		lcid     uint32
		text     string
		expected []byte
	}{
		{EnglishUSLCID, "café", []byte{'c', 'a', 'f', 0xe9}},
		{EnglishUSLCID, "€", []byte{0x80}},
		{1049, "Жук", []byte{0xc6, 0xf3, 0xea}},
		{1032, "αβ", []byte{0xe1, 0xe2}},
		{1041, "日本", []byte{0x93, 0xfa, 0x96, 0x7b}},
	}

	for _, test := range tests {
		c := Collation{LCID: test.lcid}
		b, err := c.EncodeNonUnicode(test.text)
		require.NoError(t, err)
		assert.Equal(t, test.expected, b, "%d %s", test.lcid, test.text)

		s, err := c.DecodeNonUnicode(b)
		require.NoError(t, err)
		assert.Equal(t, test.text, s)
	}

	// characters outside the code page are replaced rather than failing
	b, err := Default.EncodeNonUnicode("Жa")
	require.NoError(t, err)
	assert.Len(t, b, 2)
	assert.Equal(t, byte('a'), b[1])

	assert.Equal(t, charmap.Windows1252, Collation{LCID: 1}.Encoding())
	assert.Equal(t, charmap.Windows1251, Collation{LCID: 1049}.Encoding())
}
