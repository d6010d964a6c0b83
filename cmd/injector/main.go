/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the agentic injection engine as a standalone binary:
// it loads trigger rules from a YAML file, processes a demo project request,
// prints the JSON report, and serves Prometheus metrics until interrupted.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/sync/errgroup"

	"github.com/ianmxaof/powercore-agentic-injection/agents/conditions"
	"github.com/ianmxaof/powercore-agentic-injection/agents/executor"
	"github.com/ianmxaof/powercore-agentic-injection/agents/metaagent"
	"github.com/ianmxaof/powercore-agentic-injection/agents/project"
	"github.com/ianmxaof/powercore-agentic-injection/agents/registry"
	"github.com/ianmxaof/powercore-agentic-injection/agents/textgen"
	"github.com/ianmxaof/powercore-agentic-injection/injection"
	"github.com/ianmxaof/powercore-agentic-injection/injection/report"
)

type config struct {
	MetricsPort int    `env:"METRICS_PORT, default=2112"`
	RulesPath   string `env:"RULES_PATH, default=injection_rules.yaml"`

	OpenAIAPIKey    string `env:"OPENAI_API_KEY, required"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	// ConditionModel evaluates open-ended trigger conditions.
	ConditionModel string `env:"CONDITION_MODEL, default=gpt-4"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		clog.FatalContextf(ctx, "building engine: %v", err)
	}
	if err := eng.LoadRulesFile(ctx, cfg.RulesPath); err != nil {
		clog.FatalContextf(ctx, "loading rules from %s: %v", cfg.RulesPath, err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return serveMetrics(ctx, cfg.MetricsPort)
	})
	eg.Go(func() error {
		defer cancel()
		return runDemo(ctx, eng)
	})
	if err := eg.Wait(); err != nil {
		clog.FatalContextf(ctx, "injector: %v", err)
	}
}

func buildEngine(cfg config) (*injection.Engine, error) {
	openAI, err := textgen.NewOpenAI(textgen.WithAPIKey(cfg.OpenAIAPIKey))
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}
	var anthropicClient textgen.Client
	if cfg.AnthropicAPIKey != "" {
		anthropicClient, err = textgen.NewAnthropic(textgen.WithAPIKey(cfg.AnthropicAPIKey))
		if err != nil {
			return nil, fmt.Errorf("creating Anthropic client: %w", err)
		}
	}
	client := textgen.NewRouter(openAI, anthropicClient)

	reg := registry.New()
	eval, err := conditions.New(client, conditions.WithModel(cfg.ConditionModel))
	if err != nil {
		return nil, fmt.Errorf("creating condition evaluator: %w", err)
	}
	exec, err := executor.New(reg, client)
	if err != nil {
		return nil, fmt.Errorf("creating executor: %w", err)
	}
	meta, err := metaagent.New(metaagent.WithObserver(metaagent.NewMetricsObserver()))
	if err != nil {
		return nil, fmt.Errorf("creating meta-agent: %w", err)
	}
	return injection.NewEngine(reg, eval, exec, meta)
}

// runDemo processes an example project request and prints the report and a
// status snapshot.
func runDemo(ctx context.Context, eng *injection.Engine) error {
	req := project.Request{
		ID:          "demo-project-001",
		Description: "A modern web application for task management",
		Platform:    "web",
		Complexity:  "medium",
		Features:    []string{"user_authentication", "task_management", "real_time_updates"},
		FilesModified: []string{
			"src/components/TaskList.js",
			"src/api/tasks.js",
		},
	}

	result := eng.Process(ctx, req)
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	fmt.Println(string(out))
	fmt.Println()

	return report.RenderStatus(os.Stdout, eng.Status())
}

func serveMetrics(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("metrics server: %w", err)
	}
}
