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

package yfinance

import "fmt"

// Period is a historical data range accepted by the provider.
type Period string

const (
	Period1D  Period = "1d"
	Period5D  Period = "5d"
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	Period10Y Period = "10y"
	PeriodYTD Period = "ytd"
	PeriodMax Period = "max"
)

// Periods lists every valid period, in ascending range order.
func Periods() []Period {
	return []Period{
		Period1D, Period5D, Period1Mo, Period3Mo, Period6Mo,
		Period1Y, Period2Y, Period5Y, Period10Y, PeriodYTD, PeriodMax,
	}
}

// ParsePeriod validates s against the period enumeration.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	for _, valid := range Periods() {
		if p == valid {
			return p, nil
		}
	}
	return "", fmt.Errorf("yfinance: invalid period %q", s)
}

// IsValid reports whether p belongs to the period enumeration.
func (p Period) IsValid() bool {
	_, err := ParsePeriod(string(p))
	return err == nil
}

// interval returns the candle interval used when requesting history for p.
// Intraday ranges get intraday candles, everything else daily candles.
func (p Period) interval() string {
	switch p {
	case Period1D:
		return "5m"
	case Period5D:
		return "30m"
	default:
		return "1d"
	}
}
