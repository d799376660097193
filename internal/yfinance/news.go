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
	"strconv"
	"time"
)

type searchResponse struct {
	News []searchNewsItem `json:"news"`
}

type searchNewsItem struct {
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
}

// News returns up to count recent news items about a symbol, newest first.
// An unknown symbol yields an empty slice, not an error: the provider's
// search endpoint simply matches nothing.
func (c *Client) News(ctx context.Context, symbol string, count int) ([]NewsItem, error) {
	symbol = NormalizeSymbol(symbol)
	if count <= 0 {
		count = 5
	}

	query := url.Values{
		"q":           {symbol},
		"newsCount":   {strconv.Itoa(count)},
		"quotesCount": {"0"},
	}

	var resp searchResponse
	if err := c.getJSON(ctx, "/v1/finance/search", query, &resp); err != nil {
		return nil, err
	}

	items := make([]NewsItem, 0, len(resp.News))
	for _, n := range resp.News {
		if len(items) == count {
			break
		}
		items = append(items, NewsItem{
			Title:       n.Title,
			Publisher:   n.Publisher,
			Link:        n.Link,
			PublishedAt: time.Unix(n.ProviderPublishTime, 0).UTC(),
		})
	}
	return items, nil
}
