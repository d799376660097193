// Copyright 2025 The NLP Odyssey Authors
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

package tools

import (
	"fmt"
	"strings"
)

// ratio formats an optional ratio value, "N/A" when absent.
func ratio(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// dollars formats an optional dollar amount, "N/A" when absent.
func dollars(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", *v)
}

// pct formats a fraction as a percentage (0.2531 -> "25.31%").
func pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// billions formats a dollar amount in billions ($383000000000 -> "$383.00B").
func billions(v float64) string {
	return fmt.Sprintf("$%.2fB", v/1e9)
}

// comma formats n with thousands separators.
func comma(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// orNA returns s, or "N/A" when empty.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
