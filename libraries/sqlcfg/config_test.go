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

package sqlcfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dolthub/sqltypes/libraries/sqltypes"
	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
)

func env(vars map[string]string) LookupEnv {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	l, err := cfg.Locale()
	require.NoError(t, err)
	assert.Equal(t, language.Und, l.Tag)
	assert.Equal(t, ".", l.DecimalSeparator)
	assert.Equal(t, sqltypes.MonthDayYear, l.DateOrder)
	assert.Equal(t, time.UTC, l.Location)

	c, err := cfg.Collation()
	require.NoError(t, err)
	assert.Equal(t, collation.Default, c)

	mode, err := cfg.Color()
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, mode)
}

func TestLoadFromBytes(t *testing.T) {
	data := []byte(`
locale: de-DE
time_zone: Europe/Berlin
today: "2024-01-31"
collation:
  lcid: 1036
  options: [ignore_case, ignore_non_space]
output:
  color: Never
`)
	cfg, err := LoadFromBytes(data, env(nil))
	require.NoError(t, err)

	tag, err := cfg.Tag()
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("de-DE"), tag)

	l, err := cfg.Locale()
	require.NoError(t, err)
	assert.Equal(t, ",", l.DecimalSeparator)
	assert.Equal(t, sqltypes.DayMonthYear, l.DateOrder)
	assert.Equal(t, "Europe/Berlin", l.Location.String())
	y, m, d := l.Now().Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.January, m)
	assert.Equal(t, 31, d)

	c, err := cfg.Collation()
	require.NoError(t, err)
	assert.Equal(t, uint32(1036), c.LCID)
	assert.Equal(t, collation.IgnoreCase|collation.IgnoreNonSpace, c.Options)

	mode, err := cfg.Color()
	require.NoError(t, err)
	assert.Equal(t, ColorNever, mode)

	// partial dates use the configured today
	v, err := l.Parse(sqltypes.DateTimeTypeIdentifier, "15.03")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15 00:00:00.000", v.String())
}

func TestLoadFromBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "colour: always\n"},
		{"bad locale", "locale: not_a_locale!\n"},
		{"bad time zone", "time_zone: Mars/Olympus\n"},
		{"bad today", "today: \"31/01/2024\"\n"},
		{"bad lcid", "collation:\n  lcid: 1\n"},
		{"bad option", "collation:\n  options: [ignore_everything]\n"},
		{"combined binary", "collation:\n  options: [binary_sort, ignore_case]\n"},
		{"bad color", "output:\n  color: sometimes\n"},
		{"unset variable", "locale: ${SQLVAL_LOCALE}\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(test.yaml), env(nil))
			assert.Error(t, err)
		})
	}
}

func TestInterpolateEnv(t *testing.T) {
	lookup := env(map[string]string{
		"LOCALE": "fr-FR",
		"EMPTY":  "",
		"ZONE":   "UTC",
	})
	tests := []struct {
		in       string
		expected string
		err      bool
	}{
		{"locale: ${LOCALE}", "locale: fr-FR", false},
		{"locale: ${MISSING:-en-US}", "locale: en-US", false},
		{"locale: ${EMPTY:-ja-JP}", "locale: ja-JP", false},
		{"tz: ${MISSING:-${ZONE}}", "tz: UTC", false},
		{"tz: ${MISSING:-${OTHER:-${ZONE}}} end", "tz: UTC end", false},
		{"${MISSING:-$$5-${ZONE}} ${LOCALE}", "$5-UTC fr-FR", false},
		{"${MISSING:-${ZONE}", "", true},
		{"price: $$5", "price: $5", false},
		{"stray $ sign", "stray $ sign", false},
		{"trailing $", "trailing $", false},
		{"${EMPTY}", "", true},
		{"${MISSING}", "", true},
		{"${1BAD}", "", true},
		{"${}", "", true},
		{"${LOCALE", "", true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			out, err := interpolateEnv([]byte(test.in), lookup)
			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, string(out))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlval.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: ${SQLCFG_TEST_LOCALE:-en-GB}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	l, err := cfg.Locale()
	require.NoError(t, err)
	assert.Equal(t, sqltypes.DayMonthYear, l.DateOrder)
	assert.Contains(t, cfg.String(), "locale: en-GB")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParseColorMode(t *testing.T) {
	for _, s := range []string{"auto", "ALWAYS", " never "} {
		_, err := ParseColorMode(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseColorMode("")
	assert.Error(t, err)
}
