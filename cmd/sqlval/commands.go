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
	"encoding/hex"
	"strings"

	"github.com/attic-labs/kingpin"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/sqltypes/cmd/sqlval/cli"
	"github.com/dolthub/sqltypes/libraries/sqltypes"
	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
	"github.com/dolthub/sqltypes/libraries/sqltypes/tds"
)

// addTypeArg adds a required type name argument.
func addTypeArg(cmd *kingpin.CmdClause, name, help string) *string {
	return cmd.Arg(name, help+", e.g. int, decimal or SqlMoney").Required().String()
}

func parseType(name string) (sqltypes.Identifier, error) {
	id, err := sqltypes.ParseIdentifier(name)
	if err != nil {
		return sqltypes.UnknownTypeIdentifier, errors.Wrap(err, "see 'sqlval types'")
	}
	return id, nil
}

func printValue(e *env, v sqltypes.Value) {
	cli.Printf("%s %s\n", cli.Type(v.Type().SqlName()), e.format(v))
}

func parseCmd(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("parse", "Parses text as a value of a type and prints it in canonical form")
	typ := addTypeArg(cmd, "type", "the type to parse")
	text := cmd.Arg("text", "the text to parse; NULL gives the Null of the type").Required().String()

	return cmd, func(e *env) error {
		id, err := parseType(*typ)
		if err != nil {
			return err
		}
		v, err := e.parseValue(id, *text)
		if err != nil {
			return err
		}
		printValue(e, v)
		return nil
	}
}

func convertCmd(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("convert", "Parses text as one type and converts it to another")
	from := addTypeArg(cmd, "from", "the type to parse")
	to := addTypeArg(cmd, "to", "the type to convert to")
	text := cmd.Arg("text", "the text to parse").Required().String()

	return cmd, func(e *env) error {
		src, err := parseType(*from)
		if err != nil {
			return err
		}
		dest, err := parseType(*to)
		if err != nil {
			return err
		}
		v, err := e.parseValue(src, *text)
		if err != nil {
			return err
		}
		out, err := sqltypes.Convert(v, dest)
		if err != nil {
			return err
		}
		e.log.WithFields(logrus.Fields{"from": src.String(), "to": dest.String()}).Debug("converted")
		printValue(e, out)
		return nil
	}
}

func evalCmd(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("eval", "Applies an operator to two values of a type: "+strings.Join(operators, " "))
	typ := addTypeArg(cmd, "type", "the type of both operands")
	lhs := cmd.Arg("lhs", "left operand").Required().String()
	op := cmd.Arg("op", "operator").Required().String()
	rhs := cmd.Arg("rhs", "right operand").Required().String()

	return cmd, func(e *env) error {
		id, err := parseType(*typ)
		if err != nil {
			return err
		}
		x, err := e.parseValue(id, *lhs)
		if err != nil {
			return err
		}
		y, err := e.parseValue(id, *rhs)
		if err != nil {
			return err
		}
		v, err := evaluate(x, *op, y)
		if err != nil {
			return err
		}
		printValue(e, v)
		return nil
	}
}

func compareCmd(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("compare", "Orders two values of a type, Null first, printing -1, 0 or 1")
	typ := addTypeArg(cmd, "type", "the type of both values")
	lhs := cmd.Arg("lhs", "first value").Required().String()
	rhs := cmd.Arg("rhs", "second value").Required().String()

	return cmd, func(e *env) error {
		id, err := parseType(*typ)
		if err != nil {
			return err
		}
		x, err := e.parseValue(id, *lhs)
		if err != nil {
			return err
		}
		y, err := e.parseValue(id, *rhs)
		if err != nil {
			return err
		}
		cmp, err := x.CompareTo(y)
		if err != nil {
			return err
		}
		cli.Println(cmp)
		return nil
	}
}

func encodeCmd(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("encode", "Prints the TDS encoding of a value as hex")
	typ := addTypeArg(cmd, "type", "the type of the value")
	text := cmd.Arg("text", "the text to parse").Required().String()

	return cmd, func(e *env) error {
		id, err := parseType(*typ)
		if err != nil {
			return err
		}
		v, err := e.parseValue(id, *text)
		if err != nil {
			return err
		}
		b, err := tds.Encode(v)
		if err != nil {
			return err
		}
		tid, _ := tds.TypeOf(id)
		e.log.WithFields(logrus.Fields{"type": tid.String(), "size": len(b)}).Debug("encoded")
		cli.Printf("0x%X %s\n", b, cli.Type("("+humanize.Bytes(uint64(len(b)))+")"))
		return nil
	}
}

func decodeCmd(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("decode", "Decodes a row of TDS encoded values given as hex")
	text := cmd.Arg("hex", "the encoded bytes, optionally prefixed with 0x").Required().String()

	return cmd, func(e *env) error {
		s := strings.TrimSpace(*text)
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
		if err != nil {
			return errors.Wrap(err, "invalid hex")
		}
		vals, err := tds.DecodeRow(b)
		if err != nil {
			return err
		}
		e.log.WithFields(logrus.Fields{"size": humanize.Bytes(uint64(len(b))), "values": len(vals)}).Debug("decoded")
		for _, v := range vals {
			printValue(e, v)
		}
		return nil
	}
}

func typesCmd(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("types", "Lists the supported types")

	return cmd, func(e *env) error {
		for _, id := range sqltypes.Identifiers {
			cli.Printf("%-18s %s\n", cli.Type(id.SqlName()), id.String())
		}
		return nil
	}
}

func configCmd(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("config", "Prints the active configuration")

	return cmd, func(e *env) error {
		cli.Print(e.cfg.String())
		cli.Printf("# locale: %s (decimal '%s', dates %s)\n", e.locale.Tag, e.locale.DecimalSeparator, e.locale.DateOrder)
		cli.Printf("# collation: %s\n", e.coll)
		cli.Printf("# supported collations: %s\n", strings.Join(collation.Supported(), ", "))
		return nil
	}
}

func versionCmd(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("version", "Prints the version")

	return cmd, func(e *env) error {
		cli.Println("sqlval version", Version)
		return nil
	}
}
