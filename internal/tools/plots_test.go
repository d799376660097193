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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/charts"
)

func TestPlotStockPrice(t *testing.T) {
	ts := New(&fakeMarketData{})

	res, err := ts.plotStockPrice(t.Context(), PlotArgs{Ticker: "aapl"})
	require.NoError(t, err)
	require.NotNil(t, res.Figure)
	require.NoError(t, res.Figure.Validate())

	assert.Equal(t, charts.KindCandlestick, res.Figure.Kind)
	assert.NotEmpty(t, res.Message)
	assert.Contains(t, res.Message, "AAPL")
	assert.Contains(t, res.Message, "6mo", "default period applies")
}

func TestPlotStockPriceExplicitPeriod(t *testing.T) {
	ts := New(&fakeMarketData{})

	res, err := ts.plotStockPrice(t.Context(), PlotArgs{Ticker: "AAPL", Period: "1y"})
	require.NoError(t, err)
	require.NotNil(t, res.Figure)
	assert.Equal(t, "1y", res.Figure.Period)
}

func TestPlotStockPriceInvalidPeriod(t *testing.T) {
	ts := New(&fakeMarketData{})

	res, err := ts.plotStockPrice(t.Context(), PlotArgs{Ticker: "AAPL", Period: "fortnight"})
	require.NoError(t, err)
	assert.Nil(t, res.Figure)
	assert.Contains(t, res.Message, "Invalid period")
}

func TestPlotStockPriceUnknownTicker(t *testing.T) {
	ts := New(&fakeMarketData{})

	res, err := ts.plotStockPrice(t.Context(), PlotArgs{Ticker: "ZZZZ1"})
	require.NoError(t, err, "unknown ticker must not fail the run")
	assert.Nil(t, res.Figure)
	assert.Contains(t, res.Message, "ZZZZ1")
}

func TestPlotMultipleStocks(t *testing.T) {
	ts := New(&fakeMarketData{})

	res, err := ts.plotMultipleStocks(t.Context(), MultiPlotArgs{Tickers: []string{"NVDA", "AAPL", "MSFT"}})
	require.NoError(t, err)

	// NVDA is unknown to the fake and gets dropped; the rest keep input order.
	require.NotNil(t, res.Figure)
	require.NoError(t, res.Figure.Validate())
	assert.Equal(t, charts.KindComparison, res.Figure.Kind)
	require.Len(t, res.Figure.Comparison.Series, 2)
	assert.Equal(t, "AAPL", res.Figure.Comparison.Series[0].Symbol)
	assert.Equal(t, "MSFT", res.Figure.Comparison.Series[1].Symbol)
}

func TestPlotMultipleStocksNeedsTwoTickers(t *testing.T) {
	ts := New(&fakeMarketData{})

	res, err := ts.plotMultipleStocks(t.Context(), MultiPlotArgs{Tickers: []string{"AAPL"}})
	require.NoError(t, err)
	assert.Nil(t, res.Figure)
	assert.Contains(t, res.Message, "at least 2 tickers")
}

func TestPlotMultipleStocksAllUnknown(t *testing.T) {
	ts := New(&fakeMarketData{})

	res, err := ts.plotMultipleStocks(t.Context(), MultiPlotArgs{Tickers: []string{"ZZZZ1", "ZZZZ2"}})
	require.NoError(t, err)
	assert.Nil(t, res.Figure)
	assert.Contains(t, res.Message, "Error creating comparison chart")
}

func TestPlotVolume(t *testing.T) {
	ts := New(&fakeMarketData{})

	res, err := ts.plotVolume(t.Context(), PlotArgs{Ticker: "MSFT"})
	require.NoError(t, err)
	require.NotNil(t, res.Figure)
	require.NoError(t, res.Figure.Validate())

	assert.Equal(t, charts.KindVolume, res.Figure.Kind)
	assert.Equal(t, "3mo", res.Figure.Period, "default period applies")
	assert.Contains(t, res.Message, "Average daily volume")
}
