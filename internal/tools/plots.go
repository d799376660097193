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
	"fmt"

	"github.com/marketlens/marketlens/internal/charts"
	"github.com/marketlens/marketlens/internal/yfinance"
)

// PlotArgs is the argument shape of the single-symbol chart tools.
type PlotArgs struct {
	Ticker string `json:"ticker" jsonschema_description:"Stock ticker symbol, e.g. 'AAPL'."`
	Period string `json:"period" jsonschema:"enum=,enum=1d,enum=5d,enum=1mo,enum=3mo,enum=6mo,enum=1y,enum=2y,enum=5y,enum=10y,enum=ytd,enum=max" jsonschema_description:"Time period for the chart. Empty for the default."`
}

// MultiPlotArgs is the argument shape of the multi-symbol chart tool.
type MultiPlotArgs struct {
	Tickers []string `json:"tickers" jsonschema_description:"Two or more stock ticker symbols to plot together."`
	Period  string   `json:"period" jsonschema:"enum=,enum=1d,enum=5d,enum=1mo,enum=3mo,enum=6mo,enum=1y,enum=2y,enum=5y,enum=10y,enum=ytd,enum=max" jsonschema_description:"Time period for the chart. Empty for the default."`
}

// PlotResult pairs the message shown to the model with the renderable figure.
// The session adapter extracts the figure from the execution trace; the model
// only talks about the message.
type PlotResult struct {
	Message string          `json:"message"`
	Figure  *charts.Payload `json:"figure,omitempty"`
}

func plotError(format string, a ...any) PlotResult {
	return PlotResult{Message: fmt.Sprintf(format, a...)}
}

// resolvePeriod validates an optional period argument against the enumeration.
func resolvePeriod(s string, fallback yfinance.Period) (yfinance.Period, error) {
	if s == "" {
		return fallback, nil
	}
	return yfinance.ParsePeriod(s)
}

func (t *Toolset) plotStockPrice(ctx context.Context, args PlotArgs) (PlotResult, error) {
	period, err := resolvePeriod(args.Period, yfinance.Period6Mo)
	if err != nil {
		return plotError("Invalid period %q. Valid periods: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max.", args.Period), nil
	}

	series, err := t.data.History(ctx, args.Ticker, period)
	if err != nil {
		return plotError("Error creating price chart: %s", dataError("price history", args.Ticker, err)), nil
	}
	if series.Empty() {
		return plotError("No price data found for %s", series.Symbol), nil
	}

	payload, err := charts.Candlestick(series)
	if err != nil {
		return plotError("Error creating price chart: %v", err), nil
	}
	return PlotResult{Message: payload.Caption, Figure: payload}, nil
}

func (t *Toolset) plotMultipleStocks(ctx context.Context, args MultiPlotArgs) (PlotResult, error) {
	if len(args.Tickers) < 2 {
		return plotError("Please provide at least 2 tickers"), nil
	}
	period, err := resolvePeriod(args.Period, yfinance.Period6Mo)
	if err != nil {
		return plotError("Invalid period %q. Valid periods: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max.", args.Period), nil
	}

	// Fetch every series; symbols the provider rejects are dropped from the
	// chart rather than failing the whole comparison.
	var series []*yfinance.Series
	for _, ticker := range args.Tickers {
		s, err := t.data.History(ctx, ticker, period)
		if err != nil {
			continue
		}
		series = append(series, s)
	}

	payload, err := charts.Comparison(series, period)
	if err != nil {
		return plotError("Error creating comparison chart: %v", err), nil
	}
	return PlotResult{Message: payload.Caption, Figure: payload}, nil
}

func (t *Toolset) plotVolume(ctx context.Context, args PlotArgs) (PlotResult, error) {
	period, err := resolvePeriod(args.Period, yfinance.Period3Mo)
	if err != nil {
		return plotError("Invalid period %q. Valid periods: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max.", args.Period), nil
	}

	series, err := t.data.History(ctx, args.Ticker, period)
	if err != nil {
		return plotError("Error creating volume chart: %s", dataError("volume history", args.Ticker, err)), nil
	}
	if series.Empty() {
		return plotError("No volume data found for %s", series.Symbol), nil
	}

	payload, err := charts.Volume(series)
	if err != nil {
		return plotError("Error creating volume chart: %v", err), nil
	}
	return PlotResult{Message: payload.Caption, Figure: payload}, nil
}
