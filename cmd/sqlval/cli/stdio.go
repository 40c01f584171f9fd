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

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var CliOut io.Writer = color.Output
var CliErr io.Writer = color.Error

// SetIOStreams replaces the writers used for output and errors, returning a func that restores them.
func SetIOStreams(out, err io.Writer) (restore func()) {
	prevOut, prevErr := CliOut, CliErr
	CliOut, CliErr = out, err
	return func() {
		CliOut, CliErr = prevOut, prevErr
	}
}

// SetColor turns colored output on for "always", off for "never", and on for "auto" when stdout is a
// terminal.
func SetColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		fd := os.Stdout.Fd()
		color.NoColor = os.Getenv("TERM") == "dumb" || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	}
}

var (
	typeColor  = color.New(color.FgCyan)
	nullColor  = color.New(color.FgYellow, color.Italic)
	trueColor  = color.New(color.FgGreen)
	falseColor = color.New(color.FgRed)
	errColor   = color.New(color.FgRed, color.Bold)
)

func Type(s string) string {
	return typeColor.Sprint(s)
}

// Value colors Null and the Boolean results.
func Value(s string) string {
	switch s {
	case "Null":
		return nullColor.Sprint(s)
	case "True":
		return trueColor.Sprint(s)
	case "False":
		return falseColor.Sprint(s)
	default:
		return s
	}
}

func Println(a ...interface{}) {
	fmt.Fprintln(CliOut, a...)
}

func Print(a ...interface{}) {
	fmt.Fprint(CliOut, a...)
}

func Printf(format string, a ...interface{}) {
	fmt.Fprintf(CliOut, format, a...)
}

// PrintError writes err in the error color.
func PrintError(err error) {
	fmt.Fprintln(CliErr, errColor.Sprint("error: ")+err.Error())
}
