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

import (
	"errors"
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/marketlens/marketlens/internal/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// wsEvent is one server-to-client frame: either a completed turn or an error.
type wsEvent struct {
	Type      string        `json:"type"` // "turn" or "error"
	SessionID string        `json:"session_id,omitempty"`
	Turn      *session.Turn `json:"turn,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// handleWebSocket runs a persistent chat: each client frame is a chatRequest,
// each reply a wsEvent. The whole socket belongs to one conversation; the
// session ID of the first turn sticks.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sessionID := r.URL.Query().Get("session_id")
	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !isExpectedClose(err) {
				s.logger.Error("websocket read failed", "error", err)
			}
			return
		}
		if req.SessionID != "" {
			sessionID = req.SessionID
		}
		if req.Message == "" {
			if err := conn.WriteJSON(wsEvent{Type: "error", Error: "message is required"}); err != nil {
				return
			}
			continue
		}

		id, turn, err := s.chat.Chat(r.Context(), sessionID, req.Message)
		if err != nil {
			s.logger.Error("chat turn failed", "session_id", id, "error", err)
			if err := conn.WriteJSON(wsEvent{Type: "error", SessionID: id, Error: "unable to answer this request right now"}); err != nil {
				return
			}
			continue
		}
		sessionID = id

		if err := conn.WriteJSON(wsEvent{Type: "turn", SessionID: id, Turn: turn}); err != nil {
			s.logger.Error("websocket write failed", "session_id", id, "error", err)
			return
		}
	}
}

func isExpectedClose(err error) bool {
	var netErr net.Error
	return websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
	) || errors.As(err, &netErr)
}
