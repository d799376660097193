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

import "time"

// Quote is the current price snapshot for a symbol.
type Quote struct {
	Symbol           string
	Name             string
	Currency         string
	Price            float64
	PreviousClose    float64
	Change           float64
	ChangePercent    float64
	MarketCap        float64
	FiftyTwoWeekLow  float64
	FiftyTwoWeekHigh float64
}

// Fundamentals holds valuation, profitability, growth and financial-health
// metrics for a symbol. Ratio fields are nil when the provider reports no
// value for them.
type Fundamentals struct {
	Symbol string

	// Valuation
	TrailingPE   *float64
	ForwardPE    *float64
	PEGRatio     *float64
	PriceToBook  *float64
	PriceToSales *float64

	// Profitability (fractions, e.g. 0.25 for 25%)
	ProfitMargin    float64
	OperatingMargin float64
	ReturnOnEquity  float64
	ReturnOnAssets  float64

	// Growth (fractions)
	RevenueGrowth  float64
	EarningsGrowth float64

	// Financial health
	TotalRevenue float64
	FreeCashFlow float64
	DebtToEquity *float64
	CurrentRatio *float64

	// Analyst info
	Recommendation string
	TargetPrice    *float64
}

// Profile is a company description and business overview.
type Profile struct {
	Symbol    string
	Name      string
	Sector    string
	Industry  string
	Country   string
	Employees int
	Summary   string
	Website   string
}

// NewsItem is a single news headline about a company.
type NewsItem struct {
	Title       string
	Publisher   string
	PublishedAt time.Time
	Link        string
}

// Candle is one OHLCV bar of a historical price series.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Series is the historical price series for a symbol over a period.
type Series struct {
	Symbol  string
	Period  Period
	Candles []Candle
}

// Empty reports whether the series carries no candles.
func (s *Series) Empty() bool {
	return s == nil || len(s.Candles) == 0
}
