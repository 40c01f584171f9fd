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

// Package collation describes how strings are compared: a Windows locale identifier plus a set of
// comparison flags, evaluated with the Unicode collation algorithm.
package collation

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrUnsupportedLCID is returned for a locale identifier without a known collation.
var ErrUnsupportedLCID = errors.NewKind("locale identifier %d is not supported")

// ErrInvalidOptions is returned for flag combinations that cannot be used together.
var ErrInvalidOptions = errors.NewKind("invalid compare options: %s")

// CompareOptions are flags controlling string comparison. The values match the flags stored with
// collated data on the wire.
type CompareOptions uint32

const (
	None           CompareOptions = 0
	IgnoreCase     CompareOptions = 0x1
	IgnoreNonSpace CompareOptions = 0x2
	IgnoreKanaType CompareOptions = 0x8
	IgnoreWidth    CompareOptions = 0x10
	BinarySort2    CompareOptions = 0x4000
	BinarySort     CompareOptions = 0x8000
)

const binaryMask = BinarySort | BinarySort2

var optionNames = []struct {
	opt  CompareOptions
	name string
}{
	{IgnoreCase, "ignore_case"},
	{IgnoreNonSpace, "ignore_non_space"},
	{IgnoreKanaType, "ignore_kana_type"},
	{IgnoreWidth, "ignore_width"},
	{BinarySort, "binary_sort"},
	{BinarySort2, "binary_sort2"},
}

func (o CompareOptions) Has(flag CompareOptions) bool {
	return o&flag == flag
}

// String renders the flags as a comma separated list of their names, or "none".
func (o CompareOptions) String() string {
	var names []string
	for _, n := range optionNames {
		if o.Has(n.opt) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ParseOptions accepts flag names in the forms printed by String, case-insensitively, with "-" or "_"
// as separators, or with no separators at all ("IgnoreCase").
func ParseOptions(names []string) (CompareOptions, error) {
	var o CompareOptions
	for _, name := range names {
		n := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
		if n == "" || n == "none" {
			continue
		}
		found := false
		for _, on := range optionNames {
			if strings.ReplaceAll(on.name, "_", "") == n {
				o |= on.opt
				found = true
				break
			}
		}
		if !found {
			return None, ErrInvalidOptions.New(fmt.Sprintf("unknown option `%s`", name))
		}
	}
	return o, nil
}

// Collation identifies a comparison culture and its flags. The zero value is not valid, use Default.
type Collation struct {
	LCID    uint32
	Options CompareOptions
}

// Default is the collation of strings constructed without one: US English, case, kana and width
// insensitive.
var Default = Collation{LCID: EnglishUSLCID, Options: IgnoreCase | IgnoreKanaType | IgnoreWidth}

// New validates lcid and opts. A binary sort flag cannot be combined with any other flag.
func New(lcid uint32, opts CompareOptions) (Collation, error) {
	if _, ok := lcids[lcid]; !ok {
		return Collation{}, ErrUnsupportedLCID.New(lcid)
	}
	if opts&binaryMask != 0 && opts != BinarySort && opts != BinarySort2 {
		return Collation{}, ErrInvalidOptions.New(opts.String())
	}
	valid := IgnoreCase | IgnoreNonSpace | IgnoreKanaType | IgnoreWidth | binaryMask
	if opts&^valid != 0 {
		return Collation{}, ErrInvalidOptions.New(strconv.FormatUint(uint64(opts), 16))
	}
	return Collation{LCID: lcid, Options: opts}, nil
}

// Tag returns the language tag of the collation's locale.
func (c Collation) Tag() language.Tag {
	t, ok := Tag(c.LCID)
	if !ok {
		return language.Und
	}
	return t
}

// Compatible reports whether strings of the two collations can be compared with each other.
func (c Collation) Compatible(other Collation) bool {
	return c == other
}

func (c Collation) String() string {
	return fmt.Sprintf("%d:%s", c.LCID, c.Options)
}

// Compare orders a and b, returning -1, 0 or 1. Trailing spaces are not significant.
func (c Collation) Compare(a, b string) int {
	a = strings.TrimRight(a, " ")
	b = strings.TrimRight(b, " ")
	switch {
	case c.Options.Has(BinarySort):
		return compareUTF16(a, b)
	case c.Options.Has(BinarySort2):
		return strings.Compare(a, b)
	}
	f := c.acquire()
	defer c.release(f)
	return f.col.CompareString(f.fold(a), f.fold(b))
}

// Key returns a sort key for s: two strings compare equal under c exactly when their keys are equal.
func (c Collation) Key(s string) []byte {
	s = strings.TrimRight(s, " ")
	switch {
	case c.Options.Has(BinarySort):
		b := make([]byte, 0, len(s)*2)
		for _, u := range utf16.Encode([]rune(s)) {
			b = append(b, byte(u>>8), byte(u))
		}
		return b
	case c.Options.Has(BinarySort2):
		return []byte(s)
	}
	f := c.acquire()
	defer c.release(f)
	var buf collate.Buffer
	key := f.col.KeyFromString(&buf, f.fold(s))
	return append([]byte(nil), key...)
}

// compareUTF16 orders by UTF-16 code unit, so supplementary characters sort below U+E000..U+FFFF.
func compareUTF16(a, b string) int {
	ua, ub := utf16.Encode([]rune(a)), utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	default:
		return 0
	}
}

// foldKana maps Katakana letters onto the matching Hiragana.
func foldKana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x30A1 && r <= 0x30F6 {
			return r - 0x60
		}
		return r
	}, s)
}

// folder pairs a full strength collator with the foldings the collation's flags ask for. The
// collator itself only drops diacritics: x/text's case and width options drop the whole tertiary
// level, which would also erase kana and width differences.
type folder struct {
	col   *collate.Collator
	caser cases.Caser
	opts  CompareOptions
}

func (f *folder) fold(s string) string {
	if f.opts.Has(IgnoreCase) {
		s = f.caser.String(s)
	}
	if f.opts.Has(IgnoreWidth) {
		s = width.Fold.String(s)
	}
	if f.opts.Has(IgnoreKanaType) {
		s = foldKana(s)
	}
	return s
}

// folders are not safe for concurrent use, so each collation keeps a pool of them.
var pools sync.Map

func (c Collation) pool() *sync.Pool {
	if p, ok := pools.Load(c); ok {
		return p.(*sync.Pool)
	}
	tag := c.Tag()
	var opts []collate.Option
	if c.Options.Has(IgnoreNonSpace) {
		opts = append(opts, collate.IgnoreDiacritics)
	}
	p := &sync.Pool{New: func() interface{} {
		return &folder{col: collate.New(tag, opts...), caser: cases.Fold(), opts: c.Options}
	}}
	actual, _ := pools.LoadOrStore(c, p)
	return actual.(*sync.Pool)
}

func (c Collation) acquire() *folder {
	return c.pool().Get().(*folder)
}

func (c Collation) release(f *folder) {
	c.pool().Put(f)
}

// Supported lists every valid locale identifier together with its language tag, ordered by identifier.
func Supported() []string {
	ids := LCIDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("%d %s", id, lcids[id].tag)
	}
	return out
}
