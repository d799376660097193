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

// Package yfinance is a read-only client for the Yahoo Finance public API:
// current quotes, fundamentals, company profiles, news, and historical OHLCV
// series. The response shape is provider-defined; this package parses it
// defensively and normalizes it into plain domain types.
//
// Every call hits the live provider. There is no caching and no retrying.
package yfinance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"

	// Yahoo rejects requests without a browser-looking user agent.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0"
)

// ErrNotFound is returned when the provider has no data for a symbol.
var ErrNotFound = errors.New("yfinance: symbol not found")

// ClientParams configures a Client. The zero value is valid.
type ClientParams struct {
	// Optional base URL of the provider API.
	// Defaults to the public Yahoo Finance endpoint.
	BaseURL string

	// Optional HTTP client. Defaults to a client with a 15s timeout.
	HTTPClient *http.Client
}

// Client performs read-only market data queries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(params ClientParams) *Client {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// NormalizeSymbol upper-cases and trims a ticker symbol. All lookups apply it,
// so "aapl" and "AAPL" produce identical requests.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// getJSON performs one GET against the provider and decodes the JSON body into v.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("yfinance: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("yfinance: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("yfinance: request %s: unexpected status %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("yfinance: decode %s response: %w", path, err)
	}
	return nil
}

// rawValue is the provider's number envelope: {"raw": 1.23, "fmt": "1.23"}.
type rawValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

func (v *rawValue) value() float64 {
	if v == nil {
		return 0
	}
	return v.Raw
}

func (v *rawValue) ptr() *float64 {
	if v == nil {
		return nil
	}
	raw := v.Raw
	return &raw
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("yfinance: provider error %s: %s", e.Code, e.Description)
}
