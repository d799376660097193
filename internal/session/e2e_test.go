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

package session

import (
	"context"
	"testing"
	"time"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/agentstesting"
	"github.com/openai/openai-go/v2/packages/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/tools"
	"github.com/marketlens/marketlens/internal/yfinance"
)

// scriptedProvider serves a fixed quote and history for AAPL.
type scriptedProvider struct{}

func (scriptedProvider) Quote(_ context.Context, symbol string) (*yfinance.Quote, error) {
	if symbol != "AAPL" {
		return nil, yfinance.ErrNotFound
	}
	return &yfinance.Quote{
		Symbol: "AAPL", Name: "Apple Inc.", Currency: "USD",
		Price: 189.30, PreviousClose: 185.00,
		Change: 4.30, ChangePercent: 2.32,
		MarketCap: 2.9e12, FiftyTwoWeekLow: 164.08, FiftyTwoWeekHigh: 199.62,
	}, nil
}

func (scriptedProvider) Fundamentals(_ context.Context, symbol string) (*yfinance.Fundamentals, error) {
	return nil, yfinance.ErrNotFound
}

func (scriptedProvider) Profile(_ context.Context, symbol string) (*yfinance.Profile, error) {
	return nil, yfinance.ErrNotFound
}

func (scriptedProvider) News(_ context.Context, symbol string, count int) ([]yfinance.NewsItem, error) {
	return nil, nil
}

func (scriptedProvider) History(_ context.Context, symbol string, period yfinance.Period) (*yfinance.Series, error) {
	if symbol != "AAPL" {
		return nil, yfinance.ErrNotFound
	}
	day := int64(24 * time.Hour / time.Second)
	series := &yfinance.Series{Symbol: "AAPL", Period: period}
	for i := range 5 {
		t := int64(1700000000) + int64(i)*day
		base := 180.0 + float64(i)
		series.Candles = append(series.Candles, yfinance.Candle{
			Time: time.Unix(t, 0).UTC(), Open: base, High: base + 2, Low: base - 1, Close: base + 1,
			Volume: 50_000_000,
		})
	}
	return series, nil
}

func scriptedAgent(model *agentstesting.FakeModel) *agents.Agent {
	return &agents.Agent{
		Name:  "Financial Analyst",
		Model: param.NewOpt(agents.NewAgentModel(model)),
		Tools: tools.New(scriptedProvider{}).All(),
	}
}

func TestConversationPriceQuery(t *testing.T) {
	model := agentstesting.NewFakeModel(false, nil)
	model.AddMultipleTurnOutputs([]agentstesting.FakeModelTurnOutput{
		{Value: []agents.TResponseOutputItem{
			agentstesting.GetFunctionToolCall("get_stock_price", `{"ticker": "aapl"}`),
		}},
		{Value: []agents.TResponseOutputItem{
			agentstesting.GetTextMessage("AAPL is trading at $189.30, up 2.32% on the day."),
		}},
	})

	conv, err := New(t.Context(), Params{ID: "e2e-price", Agent: scriptedAgent(model)})
	require.NoError(t, err)
	defer conv.Close()

	turn, err := conv.Ask(t.Context(), "What is Apple's current stock price?")
	require.NoError(t, err)
	assert.Contains(t, turn.Reply, "AAPL")
	assert.Contains(t, turn.Reply, "189.30")
	assert.Empty(t, turn.Charts)

	items, err := conv.History(t.Context(), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestConversationChartQuery(t *testing.T) {
	model := agentstesting.NewFakeModel(false, nil)
	model.AddMultipleTurnOutputs([]agentstesting.FakeModelTurnOutput{
		{Value: []agents.TResponseOutputItem{
			agentstesting.GetFunctionToolCall("plot_stock_price", `{"ticker": "AAPL", "period": "6mo"}`),
		}},
		{Value: []agents.TResponseOutputItem{
			agentstesting.GetTextMessage("Here is the 6-month price chart for AAPL. ![chart](placeholder.png)"),
		}},
	})

	conv, err := New(t.Context(), Params{ID: "e2e-chart", Agent: scriptedAgent(model)})
	require.NoError(t, err)
	defer conv.Close()

	turn, err := conv.Ask(t.Context(), "Show me AAPL's price chart for the last 6 months")
	require.NoError(t, err)
	assert.NotContains(t, turn.Reply, "![")
	require.Len(t, turn.Charts, 1)
	chart := turn.Charts[0]
	assert.Equal(t, "candlestick", string(chart.Kind))
	require.NotNil(t, chart.Candlestick)
	assert.Len(t, chart.Candlestick.Points, 5)
	assert.NotEmpty(t, chart.Caption)
}
