/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder_test

import (
	"strings"
	"testing"

	"github.com/ianmxaof/powercore-agentic-injection/agents/promptbuilder"
)

func TestNewPrompt(t *testing.T) {
	t.Run("no bindings", func(t *testing.T) {
		p, err := promptbuilder.NewPrompt("This is a simple prompt with no bindings")
		if err != nil {
			t.Fatalf("NewPrompt() error = %v", err)
		}
		if got := len(p.GetBindings()); got != 0 {
			t.Errorf("binding count: got = %d, wanted = 0", got)
		}
	})

	t.Run("multiple bindings", func(t *testing.T) {
		p, err := promptbuilder.NewPrompt("Condition: {{condition}}\n\nRequest: {{request}}")
		if err != nil {
			t.Fatalf("NewPrompt() error = %v", err)
		}
		bindings := p.GetBindings()
		for _, expected := range []string{"condition", "request"} {
			if _, exists := bindings[expected]; !exists {
				t.Errorf("binding %q: got = absent, wanted = present", expected)
			}
		}
	})

	t.Run("unclosed binding", func(t *testing.T) {
		if _, err := promptbuilder.NewPrompt("Analyze {{data"); err == nil {
			t.Error("NewPrompt() error = nil, wanted = unclosed binding error")
		}
	})

	t.Run("invalid identifier", func(t *testing.T) {
		if _, err := promptbuilder.NewPrompt("Analyze {{1bad}}"); err == nil {
			t.Error("NewPrompt() error = nil, wanted = invalid identifier error")
		}
	})
}

func TestBuild(t *testing.T) {
	t.Run("string binding", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("Evaluate condition {{condition}}")
		p, err := p.BindString("condition", "platform_web")
		if err != nil {
			t.Fatalf("BindString() error = %v", err)
		}
		got, err := p.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if want := "Evaluate condition platform_web"; got != want {
			t.Errorf("Build(): got = %q, wanted = %q", got, want)
		}
	})

	t.Run("json binding", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("Request: {{request}}")
		p, err := p.BindJSON("request", map[string]string{"platform": "web"})
		if err != nil {
			t.Fatalf("BindJSON() error = %v", err)
		}
		got, err := p.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if !strings.Contains(got, `"platform": "web"`) {
			t.Errorf("Build(): got = %q, wanted JSON containing platform", got)
		}
	})

	t.Run("unbound placeholder fails", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("Analyze {{data}}")
		if _, err := p.Build(); err == nil {
			t.Error("Build() error = nil, wanted = unbound placeholder error")
		}
	})

	t.Run("double bind fails", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("Analyze {{data}}")
		p, err := p.BindString("data", "first")
		if err != nil {
			t.Fatalf("BindString() error = %v", err)
		}
		if _, err := p.BindString("data", "second"); err == nil {
			t.Error("BindString() error = nil, wanted = already bound error")
		}
	})

	t.Run("bind unknown placeholder fails", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("Analyze {{data}}")
		if _, err := p.BindString("other", "value"); err == nil {
			t.Error("BindString() error = nil, wanted = not found error")
		}
	})

	t.Run("bind does not mutate original", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("Analyze {{data}}")
		if _, err := p.BindString("data", "bound"); err != nil {
			t.Fatalf("BindString() error = %v", err)
		}
		// The original prompt should still report data as unbound
		if _, err := p.Build(); err == nil {
			t.Error("Build() on original error = nil, wanted = unbound placeholder error")
		}
	})
}
