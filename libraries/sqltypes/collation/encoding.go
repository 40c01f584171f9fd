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
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var codePages = map[int]encoding.Encoding{
	874:  charmap.Windows874,
	932:  japanese.ShiftJIS,
	936:  simplifiedchinese.GBK,
	949:  korean.EUCKR,
	950:  traditionalchinese.Big5,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

// UTF16 is the encoding of Unicode text: little-endian UTF-16 without a byte order mark.
var UTF16 = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Encoding returns the ANSI code page encoding of the collation's locale.
func (c Collation) Encoding() encoding.Encoding {
	cp, ok := CodePage(c.LCID)
	if !ok {
		return charmap.Windows1252
	}
	if e, ok := codePages[cp]; ok {
		return e
	}
	return charmap.Windows1252
}

// EncodeUnicode returns s as UTF-16LE.
func EncodeUnicode(s string) ([]byte, error) {
	return UTF16.NewEncoder().Bytes([]byte(s))
}

// DecodeUnicode interprets b as UTF-16LE.
func DecodeUnicode(b []byte) (string, error) {
	out, err := UTF16.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeNonUnicode returns s in the collation's code page. Characters the code page cannot represent
// are replaced with the code page's substitution byte.
func (c Collation) EncodeNonUnicode(s string) ([]byte, error) {
	return encoding.ReplaceUnsupported(c.Encoding().NewEncoder()).Bytes([]byte(s))
}

// DecodeNonUnicode interprets b in the collation's code page.
func (c Collation) DecodeNonUnicode(b []byte) (string, error) {
	out, err := c.Encoding().NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
