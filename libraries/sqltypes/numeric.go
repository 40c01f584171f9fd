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
	"math"
	"strconv"
	"strings"
)

// parseInteger parses a base 10 integer with optional sign and surrounding whitespace, and checks it
// against [min, max].
func parseInteger(s string, min, max int64, id Identifier) (int64, error) {
	t := strings.TrimSpace(s)
	v, err := strconv.ParseInt(t, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, overflow(s, id)
		}
		return 0, formatErr(s, id, err)
	}
	if v < min || v > max {
		return 0, overflow(s, id)
	}
	return v, nil
}

// parseFloat parses a floating point number of the given bit size. Infinities and NaN are rejected as
// format errors, magnitudes beyond the bit size as overflow.
func parseFloat(s string, bitSize int, id Identifier) (float64, error) {
	t := strings.TrimSpace(s)
	lt := strings.ToLower(strings.TrimLeft(t, "+-"))
	if strings.HasPrefix(lt, "inf") || strings.HasPrefix(lt, "nan") || strings.HasPrefix(lt, "0x") || strings.Contains(t, "_") {
		return 0, formatErr(s, id, nil)
	}
	v, err := strconv.ParseFloat(t, bitSize)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			if math.IsInf(v, 0) {
				return 0, overflow(s, id)
			}
			// underflow to zero or a denormal is not an error
			return v, nil
		}
		return 0, formatErr(s, id, err)
	}
	return v, nil
}

func inRange(v, min, max int64) bool {
	return v >= min && v <= max
}

func addInt64(x, y int64) (int64, bool) {
	r := x + y
	if (r > x) != (y > 0) {
		return 0, false
	}
	return r, true
}

func subInt64(x, y int64) (int64, bool) {
	r := x - y
	if (r < x) != (y > 0) {
		return 0, false
	}
	return r, true
}

func mulInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	r := x * y
	if r/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	return r, true
}

// floatInRange reports whether the truncated value of f fits in [min, max].
func floatInRange(f float64, min, max int64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	t := math.Trunc(f)
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive
	return t >= float64(min) && t < float64(max)+1
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
