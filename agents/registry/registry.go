/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package registry

// Built-in agent kinds.
const (
	KindCodeAnalysis   = "code_analysis"
	KindTestAutomation = "test_automation"
	KindDocumentation  = "documentation"
	KindDeployment     = "deployment"
)

// Params are the invocation parameters for a text-generation call.
type Params struct {
	// Model is the model identifier passed to the provider.
	Model string
	// MaxTokens bounds the size of the generated output.
	MaxTokens int64
	// Temperature is the sampling temperature in [0.0, 1.0].
	Temperature float64
}

// Info describes a single agent kind.
type Info struct {
	// Description is a one-line summary of what agents of this kind do.
	Description string
	// Capabilities enumerates the tasks this kind covers.
	Capabilities []string
	// Defaults are the invocation parameters used absent per-agent overrides.
	Defaults Params
}

// Registry is a read-only catalog of agent kinds.
type Registry struct {
	kinds map[string]Info
	order []string
}

// New returns a registry populated with the built-in agent kinds.
func New() *Registry {
	return &Registry{
		kinds: map[string]Info{
			KindCodeAnalysis: {
				Description:  "Analyzes code quality and suggests improvements",
				Capabilities: []string{"code_review", "refactoring_suggestions", "bug_detection"},
				Defaults: Params{
					Model:       "gpt-4",
					MaxTokens:   2000,
					Temperature: 0.1,
				},
			},
			KindTestAutomation: {
				Description:  "Generates and maintains test suites",
				Capabilities: []string{"unit_test_generation", "integration_test_setup", "test_maintenance"},
				Defaults: Params{
					Model:       "gpt-4",
					MaxTokens:   3000,
					Temperature: 0.2,
				},
			},
			KindDocumentation: {
				Description:  "Generates and updates project documentation",
				Capabilities: []string{"readme_generation", "api_docs", "code_comments"},
				Defaults: Params{
					Model:       "gpt-4",
					MaxTokens:   2500,
					Temperature: 0.3,
				},
			},
			KindDeployment: {
				Description:  "Handles deployment and infrastructure setup",
				Capabilities: []string{"ci_cd_setup", "infrastructure_as_code", "deployment_automation"},
				Defaults: Params{
					Model:       "gpt-4",
					MaxTokens:   4000,
					Temperature: 0.1,
				},
			},
		},
		order: []string{
			KindCodeAnalysis,
			KindTestAutomation,
			KindDocumentation,
			KindDeployment,
		},
	}
}

// Get returns the info for the given kind, and whether the kind is known.
func (r *Registry) Get(kind string) (Info, bool) {
	info, ok := r.kinds[kind]
	return info, ok
}

// Kinds returns the known agent kinds in catalog order.
func (r *Registry) Kinds() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
