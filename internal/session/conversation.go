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

// Package session owns the per-conversation state: the append-only message
// log handed to the agent as context, and the adapter that turns a run's
// execution trace into a displayable reply plus chart payloads.
package session

import (
	"context"
	"fmt"

	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/memory"
)

// DefaultRetention is the number of history items replayed to the model per
// turn. Older items stay in the log but are no longer sent.
const DefaultRetention = 50

// Params configures a Conversation.
type Params struct {
	// ID identifies the conversation. Required.
	ID string

	// Agent answers the conversation's queries. Required.
	Agent *agents.Agent

	// Retention caps the history items replayed to the model per turn.
	// Defaults to DefaultRetention. Negative means unlimited.
	Retention int

	// MaxTurns caps model invocations per query. Zero means the
	// framework default.
	MaxTurns uint64
}

// Conversation is one chat session. History lives in an in-memory SQLite
// database owned by the agents framework, so nothing survives the process;
// concurrent conversations are fully independent.
type Conversation struct {
	id      string
	agent   *agents.Agent
	store   *memory.SQLiteSession
	runner  agents.Runner
	history memory.Session
}

// New opens a conversation with an empty history.
func New(ctx context.Context, params Params) (*Conversation, error) {
	if params.ID == "" {
		return nil, fmt.Errorf("session: conversation ID is required")
	}
	if params.Agent == nil {
		return nil, fmt.Errorf("session: agent is required")
	}

	retention := params.Retention
	if retention == 0 {
		retention = DefaultRetention
	}

	store, err := memory.NewSQLiteSession(ctx, memory.SQLiteSessionParams{
		SessionID: params.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("session: open history store: %w", err)
	}

	return &Conversation{
		id:      params.ID,
		agent:   params.Agent,
		store:   store,
		history: store,
		runner: agents.Runner{
			Config: agents.RunConfig{
				Session:      store,
				LimitMemory:  retention,
				MaxTurns:     params.MaxTurns,
				WorkflowName: "Financial analyst chat",
				GroupID:      params.ID,
			},
		},
	}, nil
}

// ID returns the conversation identifier.
func (c *Conversation) ID() string {
	return c.id
}

// Ask runs one user query through the agent and adapts the result for
// display. The framework appends both the query and the agent's items to the
// conversation history.
func (c *Conversation) Ask(ctx context.Context, message string) (*Turn, error) {
	result, err := c.runner.Run(ctx, c.agent, message)
	if err != nil {
		return nil, fmt.Errorf("session: run query: %w", err)
	}
	return ExtractTurn(result), nil
}

// History returns the latest limit items of the conversation log in
// chronological order; limit <= 0 returns everything.
func (c *Conversation) History(ctx context.Context, limit int) ([]memory.TResponseInputItem, error) {
	return c.history.GetItems(ctx, limit)
}

// Clear empties the conversation log.
func (c *Conversation) Clear(ctx context.Context) error {
	return c.history.ClearSession(ctx)
}

// Close releases the history store.
func (c *Conversation) Close() error {
	return c.store.Close()
}
