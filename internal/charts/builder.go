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

package charts

import (
	"fmt"
	"strings"

	"github.com/marketlens/marketlens/internal/yfinance"
)

const dateLayout = "2006-01-02"

// Candlestick builds an OHLC price chart for a single symbol.
func Candlestick(series *yfinance.Series) (*Payload, error) {
	if series.Empty() {
		return nil, fmt.Errorf("charts: no price data for %s", series.Symbol)
	}

	figure := &CandlestickFigure{
		Symbol: series.Symbol,
		Points: make([]CandlePoint, len(series.Candles)),
	}
	for i, c := range series.Candles {
		figure.Points[i] = CandlePoint{
			Date:  c.Time.Format(dateLayout),
			Open:  c.Open,
			High:  c.High,
			Low:   c.Low,
			Close: c.Close,
		}
	}

	return &Payload{
		Kind:    KindCandlestick,
		Title:   fmt.Sprintf("%s Stock Price - %s", series.Symbol, series.Period),
		Period:  string(series.Period),
		Caption: fmt.Sprintf(
			"Created price chart for %s over %s. The chart shows opening, high, low, and closing prices.",
			series.Symbol, series.Period,
		),
		Candlestick: figure,
	}, nil
}

// Comparison builds a multi-symbol performance chart. Every input series is
// normalized to its percentage return from the first close of the period, and
// the output preserves the input order. Series without candles are skipped.
func Comparison(series []*yfinance.Series, period yfinance.Period) (*Payload, error) {
	figure := &ComparisonFigure{}
	var symbols []string

	for _, s := range series {
		if s.Empty() {
			continue
		}
		base := s.Candles[0].Close
		if base == 0 {
			continue
		}
		line := ComparisonSeries{
			Symbol: s.Symbol,
			Points: make([]LinePoint, len(s.Candles)),
		}
		for i, c := range s.Candles {
			line.Points[i] = LinePoint{
				Date:  c.Time.Format(dateLayout),
				Value: (c.Close/base - 1) * 100,
			}
		}
		figure.Series = append(figure.Series, line)
		symbols = append(symbols, s.Symbol)
	}

	if len(figure.Series) == 0 {
		return nil, fmt.Errorf("charts: no price data for comparison")
	}

	return &Payload{
		Kind:    KindComparison,
		Title:   fmt.Sprintf("Stock Performance Comparison - %s", period),
		Period:  string(period),
		Caption: fmt.Sprintf(
			"Created comparison chart for %s over %s. Shows percentage return from start of period.",
			strings.Join(symbols, ", "), period,
		),
		Comparison: figure,
	}, nil
}

// Volume builds a trading volume chart for a single symbol. Bars are marked
// up or down depending on whether the session closed above its open; the
// caption reports the average daily volume.
func Volume(series *yfinance.Series) (*Payload, error) {
	if series.Empty() {
		return nil, fmt.Errorf("charts: no volume data for %s", series.Symbol)
	}

	figure := &VolumeFigure{
		Symbol: series.Symbol,
		Bars:   make([]VolumeBar, len(series.Candles)),
	}
	var total int64
	for i, c := range series.Candles {
		direction := DirectionUp
		if c.Close < c.Open {
			direction = DirectionDown
		}
		figure.Bars[i] = VolumeBar{
			Date:      c.Time.Format(dateLayout),
			Volume:    c.Volume,
			Direction: direction,
		}
		total += c.Volume
	}
	average := total / int64(len(series.Candles))

	return &Payload{
		Kind:    KindVolume,
		Title:   fmt.Sprintf("%s Trading Volume - %s", series.Symbol, series.Period),
		Period:  string(series.Period),
		Caption: fmt.Sprintf(
			"Created volume chart for %s over %s. Average daily volume: %s shares.",
			series.Symbol, series.Period, groupDigits(average),
		),
		Volume: figure,
	}, nil
}

// groupDigits formats n with thousands separators (1234567 -> "1,234,567").
func groupDigits(n int64) string {
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
