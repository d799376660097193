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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MARKETLENS_MODEL", "")
	t.Setenv("MARKETLENS_ADDR", "")
	t.Setenv("MARKETLENS_HISTORY_LIMIT", "")
	t.Setenv("MARKETLENS_VERBOSE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.False(t, cfg.Verbose)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MARKETLENS_MODEL", "gpt-4o")
	t.Setenv("MARKETLENS_ADDR", "127.0.0.1:9000")
	t.Setenv("MARKETLENS_HISTORY_LIMIT", "20")
	t.Setenv("MARKETLENS_VERBOSE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadBadHistoryLimit(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	for _, v := range []string{"zero", "0", "-3"} {
		t.Setenv("MARKETLENS_HISTORY_LIMIT", v)
		_, err := Load()
		assert.Error(t, err, v)
	}
}
