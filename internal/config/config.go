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

// Package config reads runtime settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultModel        = "gpt-4o-mini"
	defaultAddr         = ":8080"
	defaultHistoryLimit = 50
)

// Config holds everything the commands need to run.
type Config struct {
	// OpenAIAPIKey authenticates model calls. Required.
	OpenAIAPIKey string

	// Model is the chat model name. MARKETLENS_MODEL, default gpt-4o-mini.
	Model string

	// Addr is the HTTP listen address for serve. MARKETLENS_ADDR, default :8080.
	Addr string

	// HistoryLimit caps the conversation items replayed to the model per turn.
	// MARKETLENS_HISTORY_LIMIT, default 50.
	HistoryLimit int

	// Verbose enables debug logging. MARKETLENS_VERBOSE.
	Verbose bool
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; a missing file is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		Model:        envOr("MARKETLENS_MODEL", defaultModel),
		Addr:         envOr("MARKETLENS_ADDR", defaultAddr),
		HistoryLimit: defaultHistoryLimit,
		Verbose:      envBool("MARKETLENS_VERBOSE"),
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	if v := os.Getenv("MARKETLENS_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid MARKETLENS_HISTORY_LIMIT %q", v)
		}
		cfg.HistoryLimit = n
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
