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

// Package server is the thin HTTP surface of the chat agent: a JSON endpoint
// per turn, a websocket for persistent chats, and the starter queries. It
// renders nothing; chart payloads pass through to the caller as JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/marketlens/marketlens/internal/session"
)

// Chatter routes one user message to a conversation and returns its turn.
// *session.Manager implements it; tests substitute fakes.
type Chatter interface {
	Chat(ctx context.Context, sessionID, message string) (string, *session.Turn, error)
}

// Params configures a Server.
type Params struct {
	// Chat handles the conversation turns. Required.
	Chat Chatter

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Server handles the chat API.
type Server struct {
	chat   Chatter
	logger *slog.Logger
	mux    *http.ServeMux
}

func New(params Params) *Server {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		chat:   params.Chat,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /api/chat", s.handleChat)
	s.mux.HandleFunc("GET /api/starters", s.handleStarters)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /ws/chat", s.handleWebSocket)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string        `json:"session_id"`
	Turn      *session.Turn `json:"turn"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if req.Message == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("message is required"))
		return
	}

	sessionID, turn, err := s.chat.Chat(r.Context(), req.SessionID, req.Message)
	if err != nil {
		s.logger.Error("chat turn failed", "session_id", sessionID, "error", err)
		s.writeError(w, http.StatusBadGateway, errors.New("unable to answer this request right now"))
		return
	}

	s.logger.Info("chat turn completed",
		"session_id", sessionID, "charts", len(turn.Charts))
	s.writeJSON(w, http.StatusOK, chatResponse{SessionID: sessionID, Turn: turn})
}

func (s *Server) handleStarters(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, Starters())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
