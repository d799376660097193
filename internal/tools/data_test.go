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
	"context"
	"testing"
	"time"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/yfinance"
)

func ptr(v float64) *float64 { return &v }

// fakeMarketData serves canned data for AAPL and MSFT and ErrNotFound for
// everything else. It records the symbols it was asked for.
type fakeMarketData struct {
	requested []string
}

func (f *fakeMarketData) known(symbol string) bool {
	return symbol == "AAPL" || symbol == "MSFT"
}

func (f *fakeMarketData) track(symbol string) (string, bool) {
	normalized := yfinance.NormalizeSymbol(symbol)
	f.requested = append(f.requested, normalized)
	return normalized, f.known(normalized)
}

func (f *fakeMarketData) Quote(_ context.Context, symbol string) (*yfinance.Quote, error) {
	normalized, ok := f.track(symbol)
	if !ok {
		return nil, yfinance.ErrNotFound
	}
	return &yfinance.Quote{
		Symbol:           normalized,
		Name:             normalized + " Inc.",
		Price:            190.5,
		PreviousClose:    188,
		Change:           2.5,
		ChangePercent:    1.329787234,
		MarketCap:        2.95e12,
		FiftyTwoWeekLow:  124.17,
		FiftyTwoWeekHigh: 199.62,
	}, nil
}

func (f *fakeMarketData) Fundamentals(_ context.Context, symbol string) (*yfinance.Fundamentals, error) {
	normalized, ok := f.track(symbol)
	if !ok {
		return nil, yfinance.ErrNotFound
	}
	return &yfinance.Fundamentals{
		Symbol:         normalized,
		TrailingPE:     ptr(31.2),
		PriceToBook:    ptr(45.3),
		ProfitMargin:   0.2531,
		ReturnOnEquity: 1.456,
		RevenueGrowth:  0.021,
		TotalRevenue:   383e9,
		Recommendation: "buy",
		TargetPrice:    ptr(205.1),
	}, nil
}

func (f *fakeMarketData) Profile(_ context.Context, symbol string) (*yfinance.Profile, error) {
	normalized, ok := f.track(symbol)
	if !ok {
		return nil, yfinance.ErrNotFound
	}
	return &yfinance.Profile{
		Symbol:    normalized,
		Name:      normalized + " Inc.",
		Sector:    "Technology",
		Industry:  "Consumer Electronics",
		Country:   "United States",
		Employees: 161000,
		Summary:   "Designs and sells devices.",
		Website:   "https://example.com",
	}, nil
}

func (f *fakeMarketData) News(_ context.Context, symbol string, count int) ([]yfinance.NewsItem, error) {
	normalized, ok := f.track(symbol)
	if !ok {
		return nil, nil // search endpoint matches nothing for unknown symbols
	}
	items := []yfinance.NewsItem{
		{Title: normalized + " ships new product", Publisher: "Reuters", PublishedAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{Title: normalized + " beats estimates", Publisher: "Bloomberg", PublishedAt: time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC)},
	}
	if count < len(items) {
		items = items[:count]
	}
	return items, nil
}

func (f *fakeMarketData) History(_ context.Context, symbol string, period yfinance.Period) (*yfinance.Series, error) {
	normalized, ok := f.track(symbol)
	if !ok {
		return nil, yfinance.ErrNotFound
	}
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	series := &yfinance.Series{Symbol: normalized, Period: period}
	for i, c := range []float64{100, 110, 105} {
		series.Candles = append(series.Candles, yfinance.Candle{
			Time: start.AddDate(0, 0, i), Open: c - 1, High: c + 2, Low: c - 2, Close: c, Volume: 1000,
		})
	}
	return series, nil
}

func TestGetStockPrice(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.getStockPrice(t.Context(), TickerArgs{Ticker: "AAPL"})
	require.NoError(t, err)
	assert.Contains(t, out, "AAPL Inc. (AAPL)")
	assert.Contains(t, out, "Current Price: $190.50")
	assert.Contains(t, out, "Change: $+2.50 (+1.33%)")
	assert.Contains(t, out, "Market Cap: $2950.00B")
	assert.Contains(t, out, "52W Range: $124.17 - $199.62")
}

func TestGetStockPriceNormalizesTicker(t *testing.T) {
	fake := &fakeMarketData{}
	ts := New(fake)

	lower, err := ts.getStockPrice(t.Context(), TickerArgs{Ticker: "aapl"})
	require.NoError(t, err)
	upper, err := ts.getStockPrice(t.Context(), TickerArgs{Ticker: "AAPL"})
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.Equal(t, []string{"AAPL", "AAPL"}, fake.requested)
}

func TestGetStockPriceUnknownTicker(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.getStockPrice(t.Context(), TickerArgs{Ticker: "ZZZZ1"})
	require.NoError(t, err, "unknown ticker must not fail the run")
	assert.Contains(t, out, "No data found for ticker ZZZZ1")
}

func TestGetStockFundamentals(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.getStockFundamentals(t.Context(), TickerArgs{Ticker: "AAPL"})
	require.NoError(t, err)
	assert.Contains(t, out, "Fundamental Analysis for AAPL:")
	assert.Contains(t, out, "P/E Ratio: 31.20")
	assert.Contains(t, out, "Forward P/E: N/A")
	assert.Contains(t, out, "Profit Margin: 25.31%")
	assert.Contains(t, out, "ROE: 145.60%")
	assert.Contains(t, out, "Total Revenue: $383.00B")
	assert.Contains(t, out, "Recommendation: BUY")
	assert.Contains(t, out, "Target Price: $205.10")
}

func TestGetStockFundamentalsUnknownTicker(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.getStockFundamentals(t.Context(), TickerArgs{Ticker: "zzzz1"})
	require.NoError(t, err)
	assert.Contains(t, out, "No data found for ticker ZZZZ1")
}

func TestGetCompanyNews(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.getCompanyNews(t.Context(), TickerArgs{Ticker: "aapl"})
	require.NoError(t, err)
	assert.Contains(t, out, "Recent News for AAPL:")
	assert.Contains(t, out, "1. [2025-08-01] AAPL ships new product")
	assert.Contains(t, out, "Source: Reuters")
}

func TestGetCompanyNewsNoResults(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.getCompanyNews(t.Context(), TickerArgs{Ticker: "ZZZZ1"})
	require.NoError(t, err)
	assert.Contains(t, out, "No recent news found for ZZZZ1")
}

func TestGetCompanyInfo(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.getCompanyInfo(t.Context(), TickerArgs{Ticker: "AAPL"})
	require.NoError(t, err)
	assert.Contains(t, out, "Company Overview for AAPL:")
	assert.Contains(t, out, "Sector: Technology")
	assert.Contains(t, out, "Employees: 161,000")
	assert.Contains(t, out, "Designs and sells devices.")
}

func TestCompareStocks(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.compareStocks(t.Context(), CompareArgs{Tickers: []string{"msft", "AAPL"}})
	require.NoError(t, err)
	assert.Contains(t, out, "Stock Comparison:")

	// One column per ticker, input order preserved.
	assert.Regexp(t, `Metric\s+MSFT\s+AAPL`, out)
	assert.Contains(t, out, "Price")
	assert.Contains(t, out, "$190.50")
	assert.Contains(t, out, "P/E Ratio")
	assert.Contains(t, out, "25.31%")
}

func TestCompareStocksUnknownTickerGetsNAColumn(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.compareStocks(t.Context(), CompareArgs{Tickers: []string{"AAPL", "ZZZZ1"}})
	require.NoError(t, err)
	assert.Regexp(t, `Metric\s+AAPL\s+ZZZZ1`, out)
	assert.Contains(t, out, "N/A")
}

func TestCompareStocksNeedsTwoTickers(t *testing.T) {
	ts := New(&fakeMarketData{})

	out, err := ts.compareStocks(t.Context(), CompareArgs{Tickers: []string{"AAPL"}})
	require.NoError(t, err)
	assert.Contains(t, out, "at least 2 tickers")
}

func TestToolSurface(t *testing.T) {
	all := New(&fakeMarketData{}).All()
	require.Len(t, all, 8)

	names := make([]string, len(all))
	for i, tool := range all {
		ft, ok := tool.(agents.FunctionTool)
		require.True(t, ok, "tool %d is not a function tool", i)
		names[i] = ft.Name
		assert.NotEmpty(t, ft.ParamsJSONSchema, "tool %s has no parameter schema", ft.Name)
	}
	assert.Equal(t, []string{
		"get_stock_price",
		"get_stock_fundamentals",
		"get_company_news",
		"get_company_info",
		"compare_stocks",
		"plot_stock_price",
		"plot_multiple_stocks",
		"plot_volume",
	}, names)
}
