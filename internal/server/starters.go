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

package server

// Starter is an example query surfaced by the interface to new users.
type Starter struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// Starters covers every agent capability: single-stock analysis,
// comparisons, news, and each chart kind.
func Starters() []Starter {
	return []Starter{
		{
			Label:   "Analyze Apple's Fundamentals",
			Message: "Analyze Apple's stock fundamentals including P/E ratio, profit margins, and growth metrics",
		},
		{
			Label:   "Compare Tech Giants",
			Message: "Compare AAPL, MSFT, and GOOGL performance over the last year with a chart",
		},
		{
			Label:   "Latest Tesla News",
			Message: "What's the latest news about Tesla (TSLA)?",
		},
		{
			Label:   "Get NVIDIA Price",
			Message: "What is NVIDIA's current stock price?",
		},
		{
			Label:   "Tesla Price Chart",
			Message: "Show me Tesla's stock price chart for the last 6 months",
		},
		{
			Label:   "Company Info",
			Message: "Tell me about Microsoft - what sector are they in and what do they do?",
		},
		{
			Label:   "Volume Analysis",
			Message: "Show me the trading volume for AMD over the past 3 months",
		},
		{
			Label:   "Compare Semiconductors",
			Message: "Compare the fundamentals of NVDA and AMD side by side",
		},
	}
}
