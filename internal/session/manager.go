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
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/nlpodyssey/openai-agents-go/agents"
)

// Manager tracks the live conversations of a chat surface. Conversations are
// created on first use and share nothing with each other.
type Manager struct {
	agent    *agents.Agent
	params   Params
	mu       sync.Mutex
	sessions map[string]*Conversation
}

// NewManager creates a Manager that opens conversations against agent using
// params as the template (its ID field is ignored).
func NewManager(agent *agents.Agent, params Params) *Manager {
	return &Manager{
		agent:    agent,
		params:   params,
		sessions: make(map[string]*Conversation),
	}
}

// Chat routes one message to the conversation identified by sessionID,
// creating it first if needed. An empty sessionID starts a fresh conversation
// under a generated ID, which is returned alongside the turn.
func (m *Manager) Chat(ctx context.Context, sessionID, message string) (string, *Turn, error) {
	conv, err := m.conversation(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}
	turn, err := conv.Ask(ctx, message)
	if err != nil {
		return conv.ID(), nil, err
	}
	return conv.ID(), turn, nil
}

func (m *Manager) conversation(ctx context.Context, sessionID string) (*Conversation, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if conv, ok := m.sessions[sessionID]; ok {
		return conv, nil
	}

	params := m.params
	params.ID = sessionID
	params.Agent = m.agent
	conv, err := New(ctx, params)
	if err != nil {
		return nil, err
	}
	m.sessions[sessionID] = conv
	return conv, nil
}

// Close closes every conversation.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for id, conv := range m.sessions {
		if err := conv.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(m.sessions, id)
	}
	return errors.Join(errs...)
}
