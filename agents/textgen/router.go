/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package textgen

import (
	"context"
	"fmt"
	"strings"
)

// router dispatches completion requests to a provider based on model name.
type router struct {
	openAI    Client
	anthropic Client
}

// NewRouter composes provider clients into a single Client.
// Models starting with "claude-" go to the Anthropic client; every other
// model goes to the OpenAI client. Either client may be nil; requests
// routed to a missing provider fail.
func NewRouter(openAI, anthropic Client) Client {
	return &router{openAI: openAI, anthropic: anthropic}
}

// Complete implements Client.
func (r *router) Complete(ctx context.Context, req Request) (Completion, error) {
	if strings.HasPrefix(strings.ToLower(req.Model), "claude-") {
		if r.anthropic == nil {
			return Completion{}, fmt.Errorf("no anthropic client configured for model %q", req.Model)
		}
		return r.anthropic.Complete(ctx, req)
	}
	if r.openAI == nil {
		return Completion{}, fmt.Errorf("no openai client configured for model %q", req.Model)
	}
	return r.openAI.Complete(ctx, req)
}
