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

package analyst

import (
	"testing"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/yfinance"
)

func TestNew(t *testing.T) {
	agent := New(Params{Data: yfinance.NewClient(yfinance.ClientParams{})})

	assert.Equal(t, "Financial Analyst", agent.Name)
	require.Len(t, agent.Tools, 8)

	prompt, err := agent.GetSystemPrompt(t.Context())
	require.NoError(t, err)
	assert.Contains(t, prompt.Or(""), "financial analyst")
	assert.Contains(t, prompt.Or(""), "uppercase")

	assert.True(t, agent.ModelSettings.Temperature.Valid())
	assert.InDelta(t, 0.7, agent.ModelSettings.Temperature.Or(0), 1e-9)
}

func TestNewModelOverride(t *testing.T) {
	data := yfinance.NewClient(yfinance.ClientParams{})

	modelName := func(t *testing.T, agent *agents.Agent) string {
		t.Helper()
		require.True(t, agent.Model.Valid())
		model := agent.Model.Value
		name, ok := model.SafeModelName()
		require.True(t, ok)
		return name
	}

	t.Run("default", func(t *testing.T) {
		assert.Equal(t, DefaultModel, modelName(t, New(Params{Data: data})))
	})

	t.Run("override", func(t *testing.T) {
		assert.Equal(t, "gpt-4o", modelName(t, New(Params{Data: data, Model: "gpt-4o"})))
	})
}
