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
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/nlpodyssey/openai-agents-go/agents"

	"github.com/marketlens/marketlens/internal/charts"
)

// Turn is one displayable exchange: the agent's reply and any chart payloads
// its tool calls produced. Charts live for this turn only.
type Turn struct {
	Reply  string            `json:"reply"`
	Charts []*charts.Payload `json:"charts,omitempty"`
}

// markdownImage matches ![alt](url) syntax. The prompt forbids it, but models
// still occasionally emit chart placeholders; they are stripped because the
// interface renders chart payloads itself.
var markdownImage = regexp.MustCompile(`!\[[^\]]*]\([^)]*\)`)

// ExtractTurn walks the run's execution trace and adapts it for display:
// chart payloads are pulled out of tool-call outputs, and the final text is
// cleaned of markdown image syntax.
func ExtractTurn(result *agents.RunResult) *Turn {
	turn := &Turn{Reply: finalText(result)}
	for _, item := range result.NewItems {
		out, ok := item.(agents.ToolCallOutputItem)
		if !ok {
			continue
		}
		if payload := decodeChartPayload(out.Output); payload != nil {
			turn.Charts = append(turn.Charts, payload)
		}
	}
	return turn
}

func finalText(result *agents.RunResult) string {
	var text string
	switch v := result.FinalOutput.(type) {
	case string:
		text = v
	case nil:
		text = ""
	default:
		text = fmt.Sprintf("%v", v)
	}
	return strings.TrimSpace(markdownImage.ReplaceAllString(text, ""))
}

// decodeChartPayload recognizes a visualization tool's output among arbitrary
// tool outputs. Function tool outputs arrive as JSON strings; anything that
// does not decode to a {message, figure} pair with a known chart kind is not
// a chart.
func decodeChartPayload(output any) *charts.Payload {
	s, ok := output.(string)
	if !ok {
		return nil
	}
	var result struct {
		Message string          `json:"message"`
		Figure  *charts.Payload `json:"figure"`
	}
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		return nil
	}
	if result.Figure == nil || !result.Figure.Kind.IsValid() {
		return nil
	}
	return result.Figure
}
