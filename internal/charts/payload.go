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

// Package charts builds display-ready chart payloads from historical price
// series. A payload pairs a renderable figure with a one-line caption; it
// lives for a single response turn and is rendered by the conversational
// interface, not by this package.
package charts

import "fmt"

// Kind selects the figure variant carried by a Payload.
type Kind string

const (
	KindCandlestick Kind = "candlestick"
	KindComparison  Kind = "comparison"
	KindVolume      Kind = "volume"
)

// IsValid reports whether k is one of the known chart kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindCandlestick, KindComparison, KindVolume:
		return true
	}
	return false
}

// Payload is a renderable chart plus its caption. Exactly one figure field is
// set, matching Kind.
type Payload struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Caption string `json:"caption"`
	Period  string `json:"period"`

	Candlestick *CandlestickFigure `json:"candlestick,omitempty"`
	Comparison  *ComparisonFigure  `json:"comparison,omitempty"`
	Volume      *VolumeFigure      `json:"volume,omitempty"`
}

// Validate checks that the payload carries a caption and the figure variant
// announced by its kind.
func (p *Payload) Validate() error {
	if p.Caption == "" {
		return fmt.Errorf("charts: payload has no caption")
	}
	switch p.Kind {
	case KindCandlestick:
		if p.Candlestick == nil || len(p.Candlestick.Points) == 0 {
			return fmt.Errorf("charts: candlestick payload has no points")
		}
	case KindComparison:
		if p.Comparison == nil || len(p.Comparison.Series) == 0 {
			return fmt.Errorf("charts: comparison payload has no series")
		}
	case KindVolume:
		if p.Volume == nil || len(p.Volume.Bars) == 0 {
			return fmt.Errorf("charts: volume payload has no bars")
		}
	default:
		return fmt.Errorf("charts: unknown payload kind %q", p.Kind)
	}
	return nil
}

// CandlestickFigure is an OHLC price chart for a single symbol.
type CandlestickFigure struct {
	Symbol string        `json:"symbol"`
	Points []CandlePoint `json:"points"`
}

// CandlePoint is one OHLC bar of a candlestick figure.
type CandlePoint struct {
	Date  string  `json:"date"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// ComparisonFigure is a multi-symbol performance chart. Each series is the
// percentage return from the start of the period, so symbols with different
// price levels are directly comparable.
type ComparisonFigure struct {
	Series []ComparisonSeries `json:"series"`
}

// ComparisonSeries is the normalized return line for one symbol.
type ComparisonSeries struct {
	Symbol string      `json:"symbol"`
	Points []LinePoint `json:"points"`
}

// LinePoint is one date/value pair of a line series.
type LinePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// VolumeFigure is a daily trading volume bar chart.
type VolumeFigure struct {
	Symbol string      `json:"symbol"`
	Bars   []VolumeBar `json:"bars"`
}

// Direction of a volume bar: "up" when the session closed at or above its
// open, "down" otherwise. The interface colors bars by direction.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// VolumeBar is the traded volume of one session.
type VolumeBar struct {
	Date      string `json:"date"`
	Volume    int64  `json:"volume"`
	Direction string `json:"direction"`
}
