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

// Package analyst declares the financial analyst agent: its instructions,
// tool surface, and model settings. The agent loop that drives it is the
// agents framework's, not ours.
package analyst

import (
	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/modelsettings"
	"github.com/openai/openai-go/v2/packages/param"

	"github.com/marketlens/marketlens/internal/tools"
)

const (
	// DefaultModel mirrors the hosted model the agent was tuned against.
	DefaultModel = "gpt-4o-mini"

	// DefaultMaxTurns caps model invocations per user query.
	DefaultMaxTurns = 5

	temperature = 0.7
)

// Params configures the analyst agent.
type Params struct {
	// Data is the market data provider backing the tool surface. Required.
	Data tools.MarketData

	// Model overrides DefaultModel when non-empty.
	Model string
}

// New builds the financial analyst agent with its eight tools attached.
func New(params Params) *agents.Agent {
	model := params.Model
	if model == "" {
		model = DefaultModel
	}
	return agents.New("Financial Analyst").
		WithInstructions(Instructions).
		WithModel(model).
		WithModelSettings(modelsettings.ModelSettings{
			Temperature: param.NewOpt(temperature),
		}).
		WithTools(tools.New(params.Data).All()...)
}
