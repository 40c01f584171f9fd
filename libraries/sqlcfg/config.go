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

// Package sqlcfg loads the YAML settings that choose the locale, the default string collation and
// output options.
package sqlcfg

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/dolthub/sqltypes/libraries/sqltypes"
	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
)

const todayLayout = "2006-01-02"

// ColorMode controls colored output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always and never in any case.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", errors.Errorf("invalid color mode '%s', expected one of auto, always, never", s)
	}
}

type CollationYAMLConfig struct {
	LCID    *uint32  `yaml:"lcid,omitempty"`
	Options []string `yaml:"options,omitempty"`
}

type OutputYAMLConfig struct {
	Color *string `yaml:"color,omitempty"`
}

// YAMLConfig is the file format. Unset fields take the defaults of Default.
type YAMLConfig struct {
	LocaleStr    *string              `yaml:"locale,omitempty"`
	TimeZoneStr  *string              `yaml:"time_zone,omitempty"`
	TodayStr     *string              `yaml:"today,omitempty"`
	CollationCfg *CollationYAMLConfig `yaml:"collation,omitempty"`
	OutputCfg    OutputYAMLConfig     `yaml:"output,omitempty"`
}

// Default returns an empty configuration: the invariant locale in UTC, the default collation and
// automatic color.
func Default() *YAMLConfig {
	return &YAMLConfig{}
}

// Load reads the configuration at path, expanding environment placeholders first.
func Load(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file '%s'", path)
	}
	cfg, err := LoadFromBytes(data, os.LookupEnv)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config file '%s'", path)
	}
	return cfg, nil
}

// LoadFromBytes expands placeholders in data with lookup, decodes it strictly and validates the result.
func LoadFromBytes(data []byte, lookup LookupEnv) (*YAMLConfig, error) {
	expanded, err := interpolateEnv(data, lookup)
	if err != nil {
		return nil, err
	}
	var cfg YAMLConfig
	if err := yaml.UnmarshalStrict(expanded, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate resolves every setting and returns the first that fails.
func (cfg *YAMLConfig) Validate() error {
	if _, err := cfg.Locale(); err != nil {
		return err
	}
	if _, err := cfg.Collation(); err != nil {
		return err
	}
	_, err := cfg.Color()
	return err
}

func (cfg *YAMLConfig) Tag() (language.Tag, error) {
	if cfg.LocaleStr == nil || *cfg.LocaleStr == "" {
		return language.Und, nil
	}
	t, err := language.Parse(*cfg.LocaleStr)
	if err != nil {
		return language.Und, errors.Wrapf(err, "invalid locale '%s'", *cfg.LocaleStr)
	}
	return t, nil
}

// Locale builds the locale for parsing and formatting. A configured today fixes the clock to midnight
// of that date in the configured time zone.
func (cfg *YAMLConfig) Locale() (*sqltypes.Locale, error) {
	t, err := cfg.Tag()
	if err != nil {
		return nil, err
	}
	l := sqltypes.NewLocale(t)
	if cfg.TimeZoneStr != nil && *cfg.TimeZoneStr != "" {
		loc, err := time.LoadLocation(*cfg.TimeZoneStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid time_zone '%s'", *cfg.TimeZoneStr)
		}
		l = l.WithLocation(loc)
	}
	if cfg.TodayStr != nil && *cfg.TodayStr != "" {
		loc := l.Location
		if loc == nil {
			loc = time.UTC
		}
		today, err := time.ParseInLocation(todayLayout, *cfg.TodayStr, loc)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid today '%s', expected yyyy-mm-dd", *cfg.TodayStr)
		}
		l = l.WithNow(func() time.Time { return today })
	}
	return l, nil
}

// Collation returns the collation given to strings read without one.
func (cfg *YAMLConfig) Collation() (collation.Collation, error) {
	if cfg.CollationCfg == nil {
		return collation.Default, nil
	}
	lcid := collation.Default.LCID
	if cfg.CollationCfg.LCID != nil {
		lcid = *cfg.CollationCfg.LCID
	}
	opts := collation.Default.Options
	if cfg.CollationCfg.Options != nil {
		var err error
		if opts, err = collation.ParseOptions(cfg.CollationCfg.Options); err != nil {
			return collation.Collation{}, err
		}
	}
	return collation.New(lcid, opts)
}

func (cfg *YAMLConfig) Color() (ColorMode, error) {
	if cfg.OutputCfg.Color == nil {
		return ColorAuto, nil
	}
	return ParseColorMode(*cfg.OutputCfg.Color)
}

// String returns the configuration as YAML.
func (cfg *YAMLConfig) String() string {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "Failed to marshal as yaml: " + err.Error()
	}
	return string(data)
}
