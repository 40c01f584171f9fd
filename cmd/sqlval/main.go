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

package main

import (
	"os"
	"strings"
	_ "time/tzdata"

	"github.com/attic-labs/kingpin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	goerrors "gopkg.in/src-d/go-errors.v1"
	"golang.org/x/text/language"

	"github.com/dolthub/sqltypes/cmd/sqlval/cli"
	"github.com/dolthub/sqltypes/libraries/sqlcfg"
	"github.com/dolthub/sqltypes/libraries/sqltypes"
	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
	"github.com/dolthub/sqltypes/libraries/sqltypes/tds"
)

const Version = "0.4.0"

const (
	exitOK         = 0
	exitUsage      = 1
	exitValueError = 2
)

// env is what every command runs against: the loaded configuration with command line overrides applied.
type env struct {
	cfg    *sqlcfg.YAMLConfig
	locale *sqltypes.Locale
	coll   collation.Collation
	log    *logrus.Logger
}

type kingpinHandler func(e *env) error
type kingpinCommand func(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler)

var kingpinCommands = []kingpinCommand{
	parseCmd,
	convertCmd,
	evalCmd,
	compareCmd,
	encodeCmd,
	decodeCmd,
	typesCmd,
	configCmd,
	versionCmd,
}

// valueErrors are the error kinds reported with exitValueError.
var valueErrors = []*goerrors.Kind{
	sqltypes.ErrNullValue,
	sqltypes.ErrOverflow,
	sqltypes.ErrDivideByZero,
	sqltypes.ErrFormat,
	sqltypes.ErrTypeMismatch,
	sqltypes.ErrArgument,
	sqltypes.ErrNullArgument,
	sqltypes.ErrIncompatibleCollation,
	sqltypes.ErrIndexOutOfRange,
	sqltypes.UnhandledTypeConversion,
	tds.ErrMalformed,
	tds.ErrUnsupportedType,
	tds.ErrTooLong,
}

// errUsageShown ends parsing once help or the version has been written.
var errUsageShown = errors.New("usage shown")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	app := kingpin.New("sqlval", "Parses, converts, compares and encodes nullable SQL values.")
	app.Terminate(nil)
	app.UsageWriter(cli.CliOut)
	app.ErrorWriter(cli.CliErr)
	app.HelpFlag.Short('h').PreAction(func(c *kingpin.ParseContext) error {
		if err := app.UsageForContext(c); err != nil {
			return err
		}
		return errUsageShown
	})
	app.Version(Version)
	app.VersionFlag.PreAction(func(*kingpin.ParseContext) error {
		return errUsageShown
	})

	configPath := app.Flag("config", "YAML configuration file").Envar("SQLVAL_CONFIG").String()
	localeStr := app.Flag("locale", "BCP 47 locale used to parse and format values, overriding the configuration").String()
	verbose := app.Flag("verbose", "log what each command does").Short('v').Bool()
	colorStr := app.Flag("color", "colored output").Enum(string(sqlcfg.ColorAuto), string(sqlcfg.ColorAlways), string(sqlcfg.ColorNever))

	handlers := map[string]kingpinHandler{}
	for _, cmdFunction := range kingpinCommands {
		command, handler := cmdFunction(app)
		handlers[command.FullCommand()] = handler
	}

	input, err := app.Parse(args)
	if err == errUsageShown {
		return exitOK
	}
	if err != nil {
		cli.PrintError(err)
		return exitUsage
	}

	log := logrus.New()
	log.SetOutput(cli.CliErr)
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	e, err := newEnv(*configPath, *localeStr, log)
	if err != nil {
		log.WithError(err).Error("failed to load configuration")
		cli.PrintError(err)
		return exitUsage
	}

	colorMode, _ := e.cfg.Color()
	if *colorStr != "" {
		colorMode = sqlcfg.ColorMode(*colorStr)
	}
	cli.SetColor(string(colorMode))

	handler := handlers[input]
	if handler == nil {
		cli.PrintError(errors.Errorf("unknown command '%s'", input))
		return exitUsage
	}

	log.WithField("command", input).Debug("running")
	if err := handler(e); err != nil {
		log.WithField("command", input).WithError(err).Debug("failed")
		cli.PrintError(err)
		if isValueError(err) {
			return exitValueError
		}
		return exitUsage
	}
	return exitOK
}

func newEnv(configPath, localeStr string, log *logrus.Logger) (*env, error) {
	cfg := sqlcfg.Default()
	if configPath != "" {
		var err error
		if cfg, err = sqlcfg.Load(configPath); err != nil {
			return nil, err
		}
		log.WithField("path", configPath).Debug("loaded configuration")
	}
	if localeStr != "" {
		if _, err := language.Parse(localeStr); err != nil {
			return nil, errors.Wrapf(err, "invalid locale '%s'", localeStr)
		}
		cfg.LocaleStr = &localeStr
	}

	l, err := cfg.Locale()
	if err != nil {
		return nil, err
	}
	coll, err := cfg.Collation()
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"locale":    l.Tag.String(),
		"collation": coll.String(),
	}).Debug("resolved environment")
	return &env{cfg: cfg, locale: l, coll: coll, log: log}, nil
}

// isValueError reports whether err, or anything it wraps, is one of valueErrors.
func isValueError(err error) bool {
	for err != nil {
		for _, k := range valueErrors {
			if k.Is(err) {
				return true
			}
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// parseValue reads text as a value of type id in the environment's locale. NULL in any case is the
// Null of id, and strings take the configured collation.
func (e *env) parseValue(id sqltypes.Identifier, text string) (sqltypes.Value, error) {
	if strings.EqualFold(strings.TrimSpace(text), "null") {
		return sqltypes.NullOf(id), nil
	}
	if id == sqltypes.StringTypeIdentifier {
		return sqltypes.NewStringWithCollation(text, e.coll), nil
	}
	v, err := e.locale.Parse(id, text)
	if err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{"type": id.String(), "input": text}).Debug("parsed")
	return v, nil
}

func (e *env) format(v sqltypes.Value) string {
	return cli.Value(e.locale.Format(v))
}
