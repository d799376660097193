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

// Package tools exposes the market data and visualization operations as
// function tools for the agent loop. Which tool runs, in what order, is
// decided by the model; this package only supplies the callable surface.
//
// Tool failures (unknown ticker, provider outage) are returned to the model
// as plain messages rather than errors, so the agent can explain the problem
// conversationally instead of aborting the run.
package tools

import (
	"context"

	"github.com/nlpodyssey/openai-agents-go/agents"

	"github.com/marketlens/marketlens/internal/yfinance"
)

// MarketData is the read-only provider surface the tools run against.
// *yfinance.Client implements it; tests substitute fakes.
type MarketData interface {
	Quote(ctx context.Context, symbol string) (*yfinance.Quote, error)
	Fundamentals(ctx context.Context, symbol string) (*yfinance.Fundamentals, error)
	Profile(ctx context.Context, symbol string) (*yfinance.Profile, error)
	News(ctx context.Context, symbol string, count int) ([]yfinance.NewsItem, error)
	History(ctx context.Context, symbol string, period yfinance.Period) (*yfinance.Series, error)
}

var _ MarketData = (*yfinance.Client)(nil)

// Toolset binds the tool handlers to a market data provider.
type Toolset struct {
	data MarketData
}

func New(data MarketData) *Toolset {
	return &Toolset{data: data}
}

// All returns the full tool surface declared to the agent.
func (t *Toolset) All() []agents.Tool {
	return []agents.Tool{
		agents.NewFunctionTool(
			"get_stock_price",
			"Get current stock price and basic information. Input should be a stock ticker symbol (e.g. 'AAPL').",
			t.getStockPrice,
		),
		agents.NewFunctionTool(
			"get_stock_fundamentals",
			"Get detailed fundamental analysis including P/E ratios, profitability metrics, growth rates. Input should be a stock ticker.",
			t.getStockFundamentals,
		),
		agents.NewFunctionTool(
			"get_company_news",
			"Get recent news articles about a company. Input should be a stock ticker.",
			t.getCompanyNews,
		),
		agents.NewFunctionTool(
			"get_company_info",
			"Get company description, sector, industry, and business overview. Input should be a stock ticker.",
			t.getCompanyInfo,
		),
		agents.NewFunctionTool(
			"compare_stocks",
			"Compare multiple stocks side by side. Input should be a list of at least two tickers (e.g. [\"AAPL\", \"MSFT\", \"GOOGL\"]).",
			t.compareStocks,
		),
		agents.NewFunctionTool(
			"plot_stock_price",
			"Create a candlestick price chart for a stock. Takes a ticker and an optional period "+
				"(1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max; default 6mo).",
			t.plotStockPrice,
		),
		agents.NewFunctionTool(
			"plot_multiple_stocks",
			"Create a comparison chart showing multiple stocks' performance. Takes a list of tickers and an optional period (default 6mo).",
			t.plotMultipleStocks,
		),
		agents.NewFunctionTool(
			"plot_volume",
			"Create a trading volume chart for a stock. Takes a ticker and an optional period (default 3mo).",
			t.plotVolume,
		),
	}
}
