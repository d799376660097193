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
	"strings"
)

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	Price                *priceModule        `json:"price"`
	SummaryDetail        *summaryModule      `json:"summaryDetail"`
	FinancialData        *financialModule    `json:"financialData"`
	DefaultKeyStatistics *keyStatsModule     `json:"defaultKeyStatistics"`
	AssetProfile         *assetProfileModule `json:"assetProfile"`
}

type priceModule struct {
	Symbol                     string    `json:"symbol"`
	ShortName                  string    `json:"shortName"`
	LongName                   string    `json:"longName"`
	Currency                   string    `json:"currency"`
	RegularMarketPrice         *rawValue `json:"regularMarketPrice"`
	RegularMarketPreviousClose *rawValue `json:"regularMarketPreviousClose"`
	MarketCap                  *rawValue `json:"marketCap"`
}

type summaryModule struct {
	TrailingPE                   *rawValue `json:"trailingPE"`
	ForwardPE                    *rawValue `json:"forwardPE"`
	PriceToSalesTrailing12Months *rawValue `json:"priceToSalesTrailing12Months"`
	FiftyTwoWeekLow              *rawValue `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh             *rawValue `json:"fiftyTwoWeekHigh"`
}

type financialModule struct {
	ProfitMargins     *rawValue `json:"profitMargins"`
	OperatingMargins  *rawValue `json:"operatingMargins"`
	ReturnOnEquity    *rawValue `json:"returnOnEquity"`
	ReturnOnAssets    *rawValue `json:"returnOnAssets"`
	RevenueGrowth     *rawValue `json:"revenueGrowth"`
	EarningsGrowth    *rawValue `json:"earningsGrowth"`
	TotalRevenue      *rawValue `json:"totalRevenue"`
	FreeCashflow      *rawValue `json:"freeCashflow"`
	DebtToEquity      *rawValue `json:"debtToEquity"`
	CurrentRatio      *rawValue `json:"currentRatio"`
	RecommendationKey string    `json:"recommendationKey"`
	TargetMeanPrice   *rawValue `json:"targetMeanPrice"`
}

type keyStatsModule struct {
	PegRatio    *rawValue `json:"pegRatio"`
	PriceToBook *rawValue `json:"priceToBook"`
}

type assetProfileModule struct {
	Sector              string `json:"sector"`
	Industry            string `json:"industry"`
	Country             string `json:"country"`
	FullTimeEmployees   int    `json:"fullTimeEmployees"`
	LongBusinessSummary string `json:"longBusinessSummary"`
	Website             string `json:"website"`
}

// quoteSummary fetches the requested modules for a symbol.
func (c *Client) quoteSummary(ctx context.Context, symbol string, modules ...string) (*quoteSummaryResult, error) {
	symbol = NormalizeSymbol(symbol)
	query := url.Values{"modules": {strings.Join(modules, ",")}}

	var resp quoteSummaryResponse
	if err := c.getJSON(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), query, &resp); err != nil {
		return nil, err
	}
	if e := resp.QuoteSummary.Error; e != nil {
		if strings.EqualFold(e.Code, "Not Found") {
			return nil, ErrNotFound
		}
		return nil, e
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, ErrNotFound
	}
	return &resp.QuoteSummary.Result[0], nil
}

// Quote returns the current price snapshot for a symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = NormalizeSymbol(symbol)
	res, err := c.quoteSummary(ctx, symbol, "price", "summaryDetail")
	if err != nil {
		return nil, err
	}
	if res.Price == nil || res.Price.RegularMarketPrice == nil {
		return nil, ErrNotFound
	}

	q := &Quote{
		Symbol:        symbol,
		Name:          res.Price.LongName,
		Currency:      res.Price.Currency,
		Price:         res.Price.RegularMarketPrice.value(),
		PreviousClose: res.Price.RegularMarketPreviousClose.value(),
		MarketCap:     res.Price.MarketCap.value(),
	}
	if q.Name == "" {
		q.Name = res.Price.ShortName
	}
	if q.Name == "" {
		q.Name = symbol
	}
	if q.PreviousClose == 0 {
		q.PreviousClose = q.Price
	}
	q.Change = q.Price - q.PreviousClose
	if q.PreviousClose != 0 {
		q.ChangePercent = q.Change / q.PreviousClose * 100
	}
	if res.SummaryDetail != nil {
		q.FiftyTwoWeekLow = res.SummaryDetail.FiftyTwoWeekLow.value()
		q.FiftyTwoWeekHigh = res.SummaryDetail.FiftyTwoWeekHigh.value()
	}
	return q, nil
}

// Fundamentals returns valuation, profitability, growth, financial-health and
// analyst metrics for a symbol.
func (c *Client) Fundamentals(ctx context.Context, symbol string) (*Fundamentals, error) {
	symbol = NormalizeSymbol(symbol)
	res, err := c.quoteSummary(ctx, symbol, "summaryDetail", "financialData", "defaultKeyStatistics")
	if err != nil {
		return nil, err
	}
	if res.SummaryDetail == nil && res.FinancialData == nil && res.DefaultKeyStatistics == nil {
		return nil, ErrNotFound
	}

	f := &Fundamentals{Symbol: symbol}
	if sd := res.SummaryDetail; sd != nil {
		f.TrailingPE = sd.TrailingPE.ptr()
		f.ForwardPE = sd.ForwardPE.ptr()
		f.PriceToSales = sd.PriceToSalesTrailing12Months.ptr()
	}
	if ks := res.DefaultKeyStatistics; ks != nil {
		f.PEGRatio = ks.PegRatio.ptr()
		f.PriceToBook = ks.PriceToBook.ptr()
	}
	if fd := res.FinancialData; fd != nil {
		f.ProfitMargin = fd.ProfitMargins.value()
		f.OperatingMargin = fd.OperatingMargins.value()
		f.ReturnOnEquity = fd.ReturnOnEquity.value()
		f.ReturnOnAssets = fd.ReturnOnAssets.value()
		f.RevenueGrowth = fd.RevenueGrowth.value()
		f.EarningsGrowth = fd.EarningsGrowth.value()
		f.TotalRevenue = fd.TotalRevenue.value()
		f.FreeCashFlow = fd.FreeCashflow.value()
		f.DebtToEquity = fd.DebtToEquity.ptr()
		f.CurrentRatio = fd.CurrentRatio.ptr()
		f.Recommendation = fd.RecommendationKey
		f.TargetPrice = fd.TargetMeanPrice.ptr()
	}
	return f, nil
}

// Profile returns the company description and business overview for a symbol.
func (c *Client) Profile(ctx context.Context, symbol string) (*Profile, error) {
	symbol = NormalizeSymbol(symbol)
	res, err := c.quoteSummary(ctx, symbol, "price", "assetProfile")
	if err != nil {
		return nil, err
	}

	p := &Profile{Symbol: symbol, Name: symbol}
	if res.Price != nil {
		if res.Price.LongName != "" {
			p.Name = res.Price.LongName
		} else if res.Price.ShortName != "" {
			p.Name = res.Price.ShortName
		}
	}
	if ap := res.AssetProfile; ap != nil {
		p.Sector = ap.Sector
		p.Industry = ap.Industry
		p.Country = ap.Country
		p.Employees = ap.FullTimeEmployees
		p.Summary = ap.LongBusinessSummary
		p.Website = ap.Website
	}
	return p, nil
}
