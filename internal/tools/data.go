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
	"errors"
	"fmt"
	"strings"

	"github.com/marketlens/marketlens/internal/yfinance"
)

// TickerArgs is the argument shape shared by the single-symbol data tools.
type TickerArgs struct {
	Ticker string `json:"ticker" jsonschema_description:"Stock ticker symbol, e.g. 'AAPL'."`
}

// CompareArgs is the argument shape of the comparison tool.
type CompareArgs struct {
	Tickers []string `json:"tickers" jsonschema_description:"Two or more stock ticker symbols to compare, e.g. [\"AAPL\", \"MSFT\"]."`
}

// dataError converts a provider failure into the message shown to the model.
func dataError(what, ticker string, err error) string {
	if errors.Is(err, yfinance.ErrNotFound) {
		return fmt.Sprintf("No data found for ticker %s. It may not be a valid symbol.", yfinance.NormalizeSymbol(ticker))
	}
	return fmt.Sprintf("Error fetching %s for %s: %v", what, yfinance.NormalizeSymbol(ticker), err)
}

func (t *Toolset) getStockPrice(ctx context.Context, args TickerArgs) (string, error) {
	q, err := t.data.Quote(ctx, args.Ticker)
	if err != nil {
		return dataError("price", args.Ticker, err), nil
	}

	return fmt.Sprintf(`%s (%s)
Current Price: $%.2f
Change: $%+.2f (%+.2f%%)
Market Cap: %s
52W Range: $%.2f - $%.2f
`,
		q.Name, q.Symbol,
		q.Price,
		q.Change, q.ChangePercent,
		billions(q.MarketCap),
		q.FiftyTwoWeekLow, q.FiftyTwoWeekHigh,
	), nil
}

func (t *Toolset) getStockFundamentals(ctx context.Context, args TickerArgs) (string, error) {
	f, err := t.data.Fundamentals(ctx, args.Ticker)
	if err != nil {
		return dataError("fundamentals", args.Ticker, err), nil
	}

	return fmt.Sprintf(`Fundamental Analysis for %s:

Valuation Metrics:
- P/E Ratio: %s
- Forward P/E: %s
- PEG Ratio: %s
- Price/Book: %s
- Price/Sales: %s

Profitability:
- Profit Margin: %s
- Operating Margin: %s
- ROE: %s
- ROA: %s

Growth:
- Revenue Growth: %s
- Earnings Growth: %s

Financial Health:
- Total Revenue: %s
- Free Cash Flow: %s
- Debt/Equity: %s
- Current Ratio: %s

Analyst Info:
- Recommendation: %s
- Target Price: %s
`,
		f.Symbol,
		ratio(f.TrailingPE), ratio(f.ForwardPE), ratio(f.PEGRatio), ratio(f.PriceToBook), ratio(f.PriceToSales),
		pct(f.ProfitMargin), pct(f.OperatingMargin), pct(f.ReturnOnEquity), pct(f.ReturnOnAssets),
		pct(f.RevenueGrowth), pct(f.EarningsGrowth),
		billions(f.TotalRevenue), billions(f.FreeCashFlow), ratio(f.DebtToEquity), ratio(f.CurrentRatio),
		strings.ToUpper(orNA(f.Recommendation)), dollars(f.TargetPrice),
	), nil
}

func (t *Toolset) getCompanyNews(ctx context.Context, args TickerArgs) (string, error) {
	items, err := t.data.News(ctx, args.Ticker, 5)
	if err != nil {
		return dataError("news", args.Ticker, err), nil
	}

	symbol := yfinance.NormalizeSymbol(args.Ticker)
	if len(items) == 0 {
		return fmt.Sprintf("No recent news found for %s", symbol), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recent News for %s:\n\n", symbol)
	for i, item := range items {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, item.PublishedAt.Format("2006-01-02"), item.Title)
		fmt.Fprintf(&b, "   Source: %s\n\n", orNA(item.Publisher))
	}
	return b.String(), nil
}

func (t *Toolset) getCompanyInfo(ctx context.Context, args TickerArgs) (string, error) {
	p, err := t.data.Profile(ctx, args.Ticker)
	if err != nil {
		return dataError("company info", args.Ticker, err), nil
	}

	summary := p.Summary
	if summary == "" {
		summary = "No description available"
	}

	return fmt.Sprintf(`Company Overview for %s:

Name: %s
Sector: %s
Industry: %s
Country: %s
Employees: %s

Business Summary:
%s

Website: %s
`,
		p.Symbol,
		p.Name, orNA(p.Sector), orNA(p.Industry), orNA(p.Country), comma(int64(p.Employees)),
		summary,
		orNA(p.Website),
	), nil
}

// compareStocks builds a side-by-side metric table, one column per ticker in
// input order. A ticker the provider rejects still gets its column, filled
// with N/A.
func (t *Toolset) compareStocks(ctx context.Context, args CompareArgs) (string, error) {
	if len(args.Tickers) < 2 {
		return "Please provide at least 2 tickers to compare", nil
	}

	type column struct {
		quote *yfinance.Quote
		fund  *yfinance.Fundamentals
	}

	symbols := make([]string, len(args.Tickers))
	columns := make([]column, len(args.Tickers))
	for i, ticker := range args.Tickers {
		symbols[i] = yfinance.NormalizeSymbol(ticker)
		if q, err := t.data.Quote(ctx, ticker); err == nil {
			columns[i].quote = q
		}
		if f, err := t.data.Fundamentals(ctx, ticker); err == nil {
			columns[i].fund = f
		}
	}

	metrics := []struct {
		label string
		cell  func(c column) string
	}{
		{"Price", func(c column) string {
			if c.quote == nil {
				return "N/A"
			}
			return fmt.Sprintf("$%.2f", c.quote.Price)
		}},
		{"Market Cap", func(c column) string {
			if c.quote == nil {
				return "N/A"
			}
			return fmt.Sprintf("$%.1fB", c.quote.MarketCap/1e9)
		}},
		{"P/E Ratio", func(c column) string {
			if c.fund == nil {
				return "N/A"
			}
			return ratio(c.fund.TrailingPE)
		}},
		{"Profit Margin", func(c column) string {
			if c.fund == nil {
				return "N/A"
			}
			return pct(c.fund.ProfitMargin)
		}},
		{"Revenue Growth", func(c column) string {
			if c.fund == nil {
				return "N/A"
			}
			return pct(c.fund.RevenueGrowth)
		}},
		{"ROE", func(c column) string {
			if c.fund == nil {
				return "N/A"
			}
			return pct(c.fund.ReturnOnEquity)
		}},
	}

	var b strings.Builder
	b.WriteString("Stock Comparison:\n\n")
	fmt.Fprintf(&b, "%-20s ", "Metric")
	for _, s := range symbols {
		fmt.Fprintf(&b, "%12s ", s)
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 20+13*len(symbols)))
	b.WriteString("\n")

	for _, m := range metrics {
		fmt.Fprintf(&b, "%-20s ", m.label)
		for _, c := range columns {
			fmt.Fprintf(&b, "%12s ", m.cell(c))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
