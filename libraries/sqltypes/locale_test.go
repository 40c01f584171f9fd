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
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
)

func TestNewLocale(t *testing.T) {
	tests := []struct {
		tag     string
		decimal string
		group   string
		dateSep string
		order   DateOrder
	}{
		{"en-US", ".", ",", "/", MonthDayYear},
		{"en-GB", ".", ",", "/", DayMonthYear},
		{"de-DE", ",", ".", ".", DayMonthYear},
		{"ja-JP", ".", ",", "/", YearMonthDay},
		{"nl-NL", ",", ".", "-", DayMonthYear},
	}

	for _, test := range tests {
		t.Run(test.tag, func(t *testing.T) {
			l := NewLocale(language.MustParse(test.tag))
			assert.Equal(t, test.decimal, l.DecimalSeparator)
			assert.Equal(t, test.group, l.GroupSeparator)
			assert.Equal(t, test.dateSep, l.DateSeparator)
			assert.Equal(t, test.order, l.DateOrder)
			assert.Equal(t, time.UTC, l.Location)
		})
	}

	fr := NewLocale(language.MustParse("fr-FR"))
	assert.Equal(t, ",", fr.DecimalSeparator)
	assert.NotEmpty(t, fr.GroupSeparator)
	assert.Empty(t, strings.TrimSpace(fr.GroupSeparator))

	und := NewLocale(language.Und)
	assert.Equal(t, language.Und, und.Tag)
	assert.Equal(t, ".", und.DecimalSeparator)
	assert.Equal(t, MonthDayYear, und.DateOrder)

	// every call hands out a separate copy
	inv := InvariantLocale()
	assert.NotSame(t, inv, InvariantLocale())
	inv.DecimalSeparator = ","
	inv.DateOrder = YearMonthDay
	assert.Equal(t, ".", InvariantLocale().DecimalSeparator)
	assert.Equal(t, MonthDayYear, InvariantLocale().DateOrder)
	v, err := Parse(DateTimeTypeIdentifier, "03/04/2005")
	require.NoError(t, err)
	assert.Equal(t, "2005-03-04 00:00:00.000", v.String())
	assert.Equal(t, "dmy", DayMonthYear.String())
	assert.Equal(t, "DateOrder(7)", DateOrder(7).String())
}

func TestLocaleForLCID(t *testing.T) {
	l, err := LocaleForLCID(1031)
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("de-DE"), l.Tag)

	l, err = LocaleForLCID(collation.InvariantLCID)
	require.NoError(t, err)
	assert.Equal(t, language.Und, l.Tag)
	assert.Equal(t, MonthDayYear, l.DateOrder)

	_, err = LocaleForLCID(9999)
	assert.True(t, collation.ErrUnsupportedLCID.Is(err))
}

func TestLocaleParseNumbers(t *testing.T) {
	de := NewLocale(language.MustParse("de-DE"))
	fr := NewLocale(language.MustParse("fr-FR"))

	tests := []struct {
		l        *Locale
		id       Identifier
		input    string
		expected string
	}{
		{de, DecimalTypeIdentifier, "1.234,5", "1234.5"},
		{de, DoubleTypeIdentifier, "-0,25", "-0.25"},
		{de, MoneyTypeIdentifier, "1.000,50", "1000.50"},
		{de, Int32TypeIdentifier, "1.000", "1000"},
		{fr, DecimalTypeIdentifier, "1 234,5", "1234.5"},
		{fr, DecimalTypeIdentifier, "1" + fr.GroupSeparator + "234,5", "1234.5"},
		{InvariantLocale(), MoneyTypeIdentifier, "1,234.5", "1234.50"},
		{InvariantLocale(), DoubleTypeIdentifier, "1.5", "1.5"},
		{de, StringTypeIdentifier, "1,5", "1,5"},
		{de, BooleanTypeIdentifier, "1", "True"},
	}

	for _, test := range tests {
		t.Run(test.l.Tag.String()+" "+test.input, func(t *testing.T) {
			v, err := test.l.Parse(test.id, test.input)
			require.NoError(t, err)
			assert.Equal(t, test.id, v.Type())
			assert.Equal(t, test.expected, v.String())
		})
	}

	_, err := de.Parse(DecimalTypeIdentifier, "1,2,3")
	assert.True(t, ErrFormat.Is(err))
	_, err = de.Parse(Int16TypeIdentifier, "40.000")
	assert.True(t, ErrOverflow.Is(err))
}

func TestLocaleDates(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC) }
	de := NewLocale(language.MustParse("de-DE")).WithNow(now)
	ja := NewLocale(language.MustParse("ja-JP")).WithNow(now)

	tests := []struct {
		l        *Locale
		input    string
		expected string
	}{
		{de, "19.10.2004", "2004-10-19 00:00:00.000"},
		{de, "19/10/2004 10:23", "2004-10-19 10:23:00.000"},
		{de, "15.03", "2024-03-15 00:00:00.000"},
		{de, "1.2.29", "2029-02-01 00:00:00.000"},
		{ja, "04/10/19", "2004-10-19 00:00:00.000"},
		{ja, "2004/10/19", "2004-10-19 00:00:00.000"},
		{de, "2004-10-19", "2004-10-19 00:00:00.000"},
	}

	for _, test := range tests {
		t.Run(test.l.Tag.String()+" "+test.input, func(t *testing.T) {
			v, err := test.l.Parse(DateTimeTypeIdentifier, test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, v.String())
		})
	}

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	l := InvariantLocale().WithLocation(berlin)
	v, err := l.Parse(DateTimeTypeIdentifier, "2004-07-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2004-07-01 12:00:00.000", v.String())
	v, err = l.Parse(DateTimeTypeIdentifier, "2004-07-01 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2004-07-01 10:00:00.000", v.String())

	assert.Equal(t, time.UTC, InvariantLocale().Location)
	assert.Equal(t, berlin, l.Location)
}

func TestLocaleFormat(t *testing.T) {
	dt := mustDateTime(t, "2004-10-19 10:23:54.123")
	d := mustDecimal(t, "1234.50")

	tests := []struct {
		tag      string
		v        Value
		expected string
	}{
		{"en-US", dt, "10/19/2004 10:23:54.123"},
		{"de-DE", dt, "19.10.2004 10:23:54.123"},
		{"ja-JP", dt, "2004/10/19 10:23:54.123"},
		{"en-US", d, "1234.50"},
		{"de-DE", d, "1234,50"},
		{"de-DE", mustMoney(t, "-2.5"), "-2,50"},
		{"de-DE", NewInt32(1000), "1000"},
		{"de-DE", Int32Null, "Null"},
		{"de-DE", NewString("a.b"), "a.b"},
	}

	for _, test := range tests {
		t.Run(test.tag+" "+test.v.String(), func(t *testing.T) {
			assert.Equal(t, test.expected, NewLocale(language.MustParse(test.tag)).Format(test.v))
		})
	}

	assert.Equal(t, "Null", InvariantLocale().Format(nil))
	assert.Equal(t, "1234.50", InvariantLocale().Format(d))
}
