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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		names    []string
		expected CompareOptions
	}{
		{nil, None},
		{[]string{"none"}, None},
		{[]string{"IgnoreCase"}, IgnoreCase},
		{[]string{"ignore_case", "ignore-width"}, IgnoreCase | IgnoreWidth},
		{[]string{"Ignore Non Space", "ignore_kana_type"}, IgnoreNonSpace | IgnoreKanaType},
		{[]string{"binary_sort"}, BinarySort},
		{[]string{"BinarySort2"}, BinarySort2},
	}

	for _, test := range tests {
		o, err := ParseOptions(test.names)
		require.NoError(t, err, "%v", test.names)
		assert.Equal(t, test.expected, o, "%v", test.names)
	}

	_, err := ParseOptions([]string{"ignore_case", "bogus"})
	assert.True(t, ErrInvalidOptions.Is(err))

	assert.Equal(t, "none", None.String())
	assert.Equal(t, "ignore_case,ignore_width", (IgnoreCase | IgnoreWidth).String())
	assert.Equal(t, "1033:ignore_case,ignore_kana_type,ignore_width", Default.String())
}

func TestNew(t *testing.T) {
	c, err := New(1036, IgnoreCase|IgnoreNonSpace)
	require.NoError(t, err)
	assert.Equal(t, uint32(1036), c.LCID)
	assert.Equal(t, language.MustParse("fr-FR"), c.Tag())

	_, err = New(9999, None)
	assert.True(t, ErrUnsupportedLCID.Is(err))
	_, err = New(EnglishUSLCID, BinarySort|IgnoreCase)
	assert.True(t, ErrInvalidOptions.Is(err))
	_, err = New(EnglishUSLCID, BinarySort|BinarySort2)
	assert.True(t, ErrInvalidOptions.Is(err))
	_, err = New(EnglishUSLCID, 0x100)
	assert.True(t, ErrInvalidOptions.Is(err))

	assert.True(t, Default.Compatible(Collation{LCID: EnglishUSLCID, Options: IgnoreCase | IgnoreKanaType | IgnoreWidth}))
	assert.False(t, Default.Compatible(Collation{LCID: EnglishUSLCID, Options: IgnoreCase}))
	assert.False(t, Default.Compatible(Collation{LCID: 2057, Options: Default.Options}))
	assert.Equal(t, language.Und, Collation{LCID: 1}.Tag())
}

func TestCompare(t *testing.T) {
	cased := Collation{LCID: EnglishUSLCID}
	accents := Collation{LCID: EnglishUSLCID, Options: IgnoreCase | IgnoreNonSpace}
	binary := Collation{LCID: EnglishUSLCID, Options: BinarySort}
	binary2 := Collation{LCID: EnglishUSLCID, Options: BinarySort2}
	german := Collation{LCID: 1031, Options: IgnoreCase}
	swedish := Collation{LCID: 1053, Options: IgnoreCase}
	caseOnly := Collation{LCID: EnglishUSLCID, Options: IgnoreCase}
	widthOnly := Collation{LCID: EnglishUSLCID, Options: IgnoreWidth}
	kanaOnly := Collation{LCID: EnglishUSLCID, Options: IgnoreKanaType}

	tests := []struct {
		name     string
		c        Collation
		a, b     string
		expected int
	}{
		{"ignore case", Default, "abc", "ABC", 0},
		{"trailing spaces", Default, "abc   ", "abc", 0},
		{"order", Default, "apple", "Banana", -1},
		{"ignore kana", Default, "カ", "か", 0},
		{"ignore width", Default, "ａ", "a", 0},
		{"accents ignored", accents, "café", "cafe", 0},
		{"binary", binary, "B", "a", -1},
		{"binary utf16", binary, "\uff5e", "\U0001F600", 1},
		{"binary2 code points", binary2, "\uff5e", "\U0001F600", -1},
		{"binary trailing spaces", binary2, "a ", "a", 0},
		{"half width katakana", Default, "ｶ", "か", 0},
		{"case only ignores case", caseOnly, "abc", "ABC", 0},
		{"case only keeps width", caseOnly, "A", "Ａ", -1},
		{"case only keeps kana", caseOnly, "あ", "ア", -1},
		{"case only keeps accents", caseOnly, "cafe", "café", -1},
		{"width only ignores width", widthOnly, "A", "Ａ", 0},
		{"width only keeps case", widthOnly, "a", "A", -1},
		{"width only keeps kana", widthOnly, "あ", "ア", -1},
		{"kana only ignores kana", kanaOnly, "あ", "ア", 0},
		{"kana only keeps case", kanaOnly, "a", "A", -1},
		{"kana only keeps width", kanaOnly, "a", "ａ", -1},
		{"german umlaut", german, "ä", "b", -1},
		{"swedish umlaut", swedish, "ä", "z", 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.c.Compare(test.a, test.b))
			assert.Equal(t, -test.expected, test.c.Compare(test.b, test.a))
		})
	}

	assert.NotEqual(t, 0, cased.Compare("a", "A"))
	assert.NotEqual(t, 0, Default.Compare("café", "cafe"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, Default.Key("abc"), Default.Key("ABC "))
	assert.Equal(t, -1, bytes.Compare(Default.Key("apple"), Default.Key("Banana")))

	binary := Collation{LCID: EnglishUSLCID, Options: BinarySort}
	assert.Equal(t, []byte{0, 'a', 0, 'b'}, binary.Key("ab"))
	binary2 := Collation{LCID: EnglishUSLCID, Options: BinarySort2}
	assert.Equal(t, []byte("ab"), binary2.Key("ab  "))

	caseOnly := Collation{LCID: EnglishUSLCID, Options: IgnoreCase}
	assert.Equal(t, caseOnly.Key("abc"), caseOnly.Key("ABC"))
	assert.NotEqual(t, caseOnly.Key("A"), caseOnly.Key("Ａ"))
	widthOnly := Collation{LCID: EnglishUSLCID, Options: IgnoreWidth}
	assert.Equal(t, widthOnly.Key("A"), widthOnly.Key("Ａ"))
	assert.NotEqual(t, widthOnly.Key("a"), widthOnly.Key("A"))

	words := []string{"delta", "Alpha", "charlie", "Bravo", "ｶ", "か", "Ａ"}
	for _, c := range []Collation{Default, caseOnly, widthOnly} {
		for i := range words {
			for j := range words {
				assert.Equal(t, c.Compare(words[i], words[j]), bytes.Compare(c.Key(words[i]), c.Key(words[j])), "%s %q %q", c, words[i], words[j])
			}
		}
	}
}

func TestLCIDs(t *testing.T) {
	ids := LCIDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, InvariantLCID, ids[0])
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}

	tag, ok := Tag(1031)
	assert.True(t, ok)
	assert.Equal(t, language.MustParse("de-DE"), tag)
	_, ok = Tag(9999)
	assert.False(t, ok)

	cp, ok := CodePage(1049)
	assert.True(t, ok)
	assert.Equal(t, 1251, cp)

	assert.Equal(t, uint32(1031), LCIDForTag(language.MustParse("de-DE")))
	assert.Equal(t, InvariantLCID, LCIDForTag(language.Und))
	assert.Equal(t, EnglishUSLCID, LCIDForTag(language.MustParse("en-US")))

	assert.Contains(t, Supported(), "1033 en-US")
	assert.Len(t, Supported(), len(ids))
}
