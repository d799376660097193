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

import (
	"context"
	"net/url"
	"time"
)

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []chartQuote `json:"quote"`
	} `json:"indicators"`
}

// chartQuote arrays carry JSON nulls for sessions without trades,
// hence the pointer element types.
type chartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// History returns the OHLCV series for a symbol over the given period.
// It returns ErrNotFound when the provider has no data for the symbol,
// and an empty series when the symbol exists but the range has no candles.
func (c *Client) History(ctx context.Context, symbol string, period Period) (*Series, error) {
	symbol = NormalizeSymbol(symbol)
	if _, err := ParsePeriod(string(period)); err != nil {
		return nil, err
	}

	query := url.Values{
		"range":    {string(period)},
		"interval": {period.interval()},
	}

	var resp chartResponse
	if err := c.getJSON(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query, &resp); err != nil {
		return nil, err
	}
	if e := resp.Chart.Error; e != nil {
		return nil, ErrNotFound
	}
	if len(resp.Chart.Result) == 0 {
		return nil, ErrNotFound
	}

	result := resp.Chart.Result[0]
	series := &Series{Symbol: symbol, Period: period}
	if len(result.Indicators.Quote) == 0 {
		return series, nil
	}

	quote := result.Indicators.Quote[0]
	for i, ts := range result.Timestamp {
		candle, ok := candleAt(quote, i)
		if !ok {
			continue
		}
		candle.Time = time.Unix(ts, 0).UTC()
		series.Candles = append(series.Candles, candle)
	}
	return series, nil
}

// candleAt extracts the i-th bar, skipping entries where price data is null.
func candleAt(q chartQuote, i int) (Candle, bool) {
	at := func(vals []*float64) (float64, bool) {
		if i >= len(vals) || vals[i] == nil {
			return 0, false
		}
		return *vals[i], true
	}

	var c Candle
	var ok bool
	if c.Open, ok = at(q.Open); !ok {
		return Candle{}, false
	}
	if c.High, ok = at(q.High); !ok {
		return Candle{}, false
	}
	if c.Low, ok = at(q.Low); !ok {
		return Candle{}, false
	}
	if c.Close, ok = at(q.Close); !ok {
		return Candle{}, false
	}
	if i < len(q.Volume) && q.Volume[i] != nil {
		c.Volume = *q.Volume[i]
	}
	return c, true
}
