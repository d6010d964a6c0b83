/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder provides template-based prompt construction for
// agent invocations and condition evaluation.
//
// Templates declare placeholders with {{name}} syntax. Values are attached
// with the Bind* methods, each returning a new Prompt, and Build renders
// the final string once every placeholder is bound:
//
//	p := promptbuilder.MustNewPrompt(`Summarize {{description}} for {{platform}}`)
//	p, err := p.BindString("description", req.Description)
//	p, err = p.BindString("platform", req.Platform)
//	prompt, err := p.Build()
//
// Structured data can be bound as JSON or YAML, which is how the project
// context is embedded into condition-evaluation prompts.
package promptbuilder
