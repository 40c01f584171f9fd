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
	"github.com/pkg/errors"
)

// LookupEnv resolves environment variables during interpolation. It is os.LookupEnv outside of tests.
type LookupEnv func(name string) (string, bool)

// interpolateEnv expands placeholders in |data|:
// - ${VAR}          : VAR's value; an error if unset or empty
// - ${VAR:-default} : VAR's value if set and non-empty, otherwise default, itself interpolated
// - $$              : a literal '$'
//
// A '$' followed by anything else is left as is.
func interpolateEnv(data []byte, lookup LookupEnv) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '$' {
			out = append(out, data[i])
			continue
		}
		if i+1 < len(data) && data[i+1] == '$' {
			out = append(out, '$')
			i++
			continue
		}
		if i+1 >= len(data) || data[i+1] != '{' {
			out = append(out, '$')
			continue
		}

		end := closingBrace(data, i+2)
		if end < 0 {
			return nil, errors.Errorf("unterminated environment placeholder starting at byte %d", i)
		}

		name, def, hasDefault, err := splitPlaceholder(data[i+2 : end])
		if err != nil {
			return nil, err
		}
		if val, ok := lookup(name); ok && val != "" {
			out = append(out, val...)
		} else if hasDefault {
			expanded, err := interpolateEnv(def, lookup)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		} else {
			return nil, errors.Errorf("environment variable %q is not set", name)
		}
		i = end
	}
	return out, nil
}

// closingBrace returns the index of the '}' closing a placeholder whose body starts at |start|, skipping
// placeholders nested in a default, or -1 if there is none.
func closingBrace(data []byte, start int) int {
	depth := 0
	for j := start; j < len(data); j++ {
		switch {
		case data[j] == '$' && j+1 < len(data) && data[j+1] == '$':
			j++
		case data[j] == '$' && j+1 < len(data) && data[j+1] == '{':
			depth++
			j++
		case data[j] == '}':
			if depth == 0 {
				return j
			}
			depth--
		}
	}
	return -1
}

func splitPlaceholder(expr []byte) (name string, def []byte, hasDefault bool, err error) {
	namePart := expr
	for k := 0; k+1 < len(expr); k++ {
		if expr[k] == ':' && expr[k+1] == '-' {
			namePart, def, hasDefault = expr[:k], expr[k+2:], true
			break
		}
	}
	if !isValidEnvVarName(namePart) {
		return "", nil, false, errors.Errorf("invalid environment variable name %q", string(namePart))
	}
	return string(namePart), def, hasDefault, nil
}

func isValidEnvVarName(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for i, c := range b {
		letter := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
		if !letter && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	return true
}
