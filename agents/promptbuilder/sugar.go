/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// This file contains syntactic sugar helpers that panic on error, useful
// for package-level prompt variables known to be valid at compile time.

// Must is a helper that wraps a call to a function returning (*Prompt, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var p = promptbuilder.Must(promptbuilder.NewPrompt(`Hello {{name}}`))
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// MustNewPrompt creates a new prompt from a template and panics on error.
// This is syntactic sugar for Must(NewPrompt(...))
func MustNewPrompt(template string) *Prompt {
	return Must(NewPrompt(template))
}
