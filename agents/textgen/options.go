/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package textgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ianmxaof/powercore-agentic-injection/agents/textgen/retry"
)

// settings holds provider-independent client configuration.
type settings struct {
	apiKey      string
	baseURL     string
	callTimeout time.Duration
	retryConfig retry.Config
}

func defaultSettings() settings {
	return settings{
		callTimeout: 2 * time.Minute,
		retryConfig: retry.DefaultConfig(),
	}
}

// Option is a functional option for configuring a provider client.
type Option func(*settings) error

// WithAPIKey sets the provider API key.
func WithAPIKey(key string) Option {
	return func(s *settings) error {
		if key == "" {
			return errors.New("api key cannot be empty")
		}
		s.apiKey = key
		return nil
	}
}

// WithBaseURL overrides the provider endpoint, e.g. for proxies.
func WithBaseURL(url string) Option {
	return func(s *settings) error {
		if url == "" {
			return errors.New("base url cannot be empty")
		}
		s.baseURL = url
		return nil
	}
}

// WithCallTimeout bounds each completion call, including retries.
// A zero duration disables the per-call timeout.
func WithCallTimeout(d time.Duration) Option {
	return func(s *settings) error {
		if d < 0 {
			return fmt.Errorf("call timeout cannot be negative, got %v", d)
		}
		s.callTimeout = d
		return nil
	}
}

// WithRetryConfig sets the retry configuration for transient provider errors.
// If not set, a default configuration is used.
func WithRetryConfig(cfg retry.Config) Option {
	return func(s *settings) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.retryConfig = cfg
		return nil
	}
}

func (s settings) apply(opts []Option) (settings, error) {
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return s, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return s, nil
}

// withCallTimeout derives a bounded context when a timeout is configured.
func (s settings) withCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.callTimeout)
}
