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

// Command marketlens is the stock analysis chat agent. `chat` opens a
// terminal conversation; `serve` exposes the same agent over HTTP.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/spf13/cobra"

	"github.com/marketlens/marketlens/internal/analyst"
	"github.com/marketlens/marketlens/internal/config"
	"github.com/marketlens/marketlens/internal/server"
	"github.com/marketlens/marketlens/internal/session"
	"github.com/marketlens/marketlens/internal/yfinance"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "marketlens",
		Short:        "Conversational stock market analysis",
		SilenceUsage: true,
	}
	root.AddCommand(newChatCmd(), newServeCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "marketlens %s (%s)\n", version, commit)
		},
	}
}

func setup() (*config.Config, *session.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
		agents.EnableVerboseStdoutLogging()
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	agent := analyst.New(analyst.Params{
		Data:  yfinance.NewClient(yfinance.ClientParams{}),
		Model: cfg.Model,
	})
	manager := session.NewManager(agent, session.Params{
		Retention: cfg.HistoryLimit,
		MaxTurns:  analyst.DefaultMaxTurns,
	})
	return cfg, manager, nil
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the analyst in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, manager, err := setup()
			if err != nil {
				return err
			}
			defer manager.Close()
			return runChat(cmd.Context(), cmd, manager)
		},
	}
}

func runChat(ctx context.Context, cmd *cobra.Command, manager *session.Manager) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Ask about stock prices, fundamentals, news, or charts. Try for example:")
	for _, s := range server.Starters()[:4] {
		fmt.Fprintf(out, "  - %s\n", s.Message)
	}
	fmt.Fprintln(out, "Press Ctrl-D to quit.")

	sessionID := uuid.NewString()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		_, turn, err := manager.Chat(ctx, sessionID, message)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, turn.Reply)
		for _, chart := range turn.Charts {
			fmt.Fprintf(out, "[chart] %s\n", chart.Caption)
		}
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the chat API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, manager, err := setup()
			if err != nil {
				return err
			}
			defer manager.Close()
			return runServe(cmd.Context(), cfg, manager)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config, manager *session.Manager) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(server.Params{Chat: manager}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
