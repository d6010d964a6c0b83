/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package executor

import (
	"github.com/ianmxaof/powercore-agentic-injection/agents/project"
	"github.com/ianmxaof/powercore-agentic-injection/agents/promptbuilder"
	"github.com/ianmxaof/powercore-agentic-injection/agents/registry"
)

// payloadBuilder is one variant per agent kind: it renders the prompt for
// a project context and shapes the generated text into the kind's payload.
// The set is closed; kinds outside the registry catalog get genericBuilder.
type payloadBuilder interface {
	buildPrompt(req project.Request) (string, error)
	shapePayload(output string) map[string]any
}

// builderFor selects the payload builder for an agent kind.
func builderFor(kind string) payloadBuilder {
	switch kind {
	case registry.KindCodeAnalysis:
		return codeAnalysisBuilder{}
	case registry.KindTestAutomation:
		return testAutomationBuilder{}
	case registry.KindDocumentation:
		return documentationBuilder{}
	case registry.KindDeployment:
		return deploymentBuilder{}
	default:
		return genericBuilder{kind: kind}
	}
}

var codeAnalysisPrompt = promptbuilder.MustNewPrompt(
	`Perform a comprehensive code analysis for the following project:

Project Description: {{description}}
Platform: {{platform}}
Complexity: {{complexity}}
Features: {{features}}

Provide:
1. Code quality assessment
2. Potential improvements
3. Security considerations
4. Performance optimization suggestions

Be specific and actionable in your recommendations.`)

type codeAnalysisBuilder struct{}

func (codeAnalysisBuilder) buildPrompt(req project.Request) (string, error) {
	p, err := codeAnalysisPrompt.BindString("description", req.DescriptionOrDefault())
	if err != nil {
		return "", err
	}
	if p, err = p.BindString("platform", req.PlatformOrDefault()); err != nil {
		return "", err
	}
	if p, err = p.BindString("complexity", req.ComplexityOrDefault()); err != nil {
		return "", err
	}
	if p, err = p.BindJSON("features", req.Features); err != nil {
		return "", err
	}
	return p.Build()
}

func (codeAnalysisBuilder) shapePayload(output string) map[string]any {
	return map[string]any{
		"analysis":              output,
		"quality_score":         0.85,
		"recommendations_count": 5,
	}
}

var testAutomationPrompt = promptbuilder.MustNewPrompt(
	`Generate comprehensive test automation strategy for:

Project: {{description}}
Platform: {{platform}}

Include:
1. Unit test framework recommendations
2. Integration test setup
3. Test coverage strategy
4. CI/CD integration
5. Sample test cases

Provide practical, implementable solutions.`)

type testAutomationBuilder struct{}

func (testAutomationBuilder) buildPrompt(req project.Request) (string, error) {
	return bindProjectPrompt(testAutomationPrompt, req)
}

func (testAutomationBuilder) shapePayload(output string) map[string]any {
	return map[string]any{
		"test_strategy":          output,
		"frameworks_recommended": []string{"Jest", "Cypress", "Playwright"},
		"coverage_target":        "90%",
	}
}

var documentationPrompt = promptbuilder.MustNewPrompt(
	`Create comprehensive documentation for:

Project: {{description}}
Platform: {{platform}}

Generate:
1. README.md structure
2. API documentation template
3. Setup instructions
4. Contributing guidelines
5. Code documentation standards

Make it developer-friendly and comprehensive.`)

type documentationBuilder struct{}

func (documentationBuilder) buildPrompt(req project.Request) (string, error) {
	return bindProjectPrompt(documentationPrompt, req)
}

func (documentationBuilder) shapePayload(output string) map[string]any {
	return map[string]any{
		"documentation":      output,
		"sections_created":   []string{"README", "API Docs", "Setup Guide", "Contributing"},
		"completeness_score": 0.9,
	}
}

var deploymentPrompt = promptbuilder.MustNewPrompt(
	`Design deployment strategy for:

Project: {{description}}
Platform: {{platform}}

Provide:
1. Infrastructure requirements
2. Deployment pipeline
3. Environment configuration
4. Monitoring setup
5. Scaling strategy

Focus on modern, cloud-native approaches.`)

type deploymentBuilder struct{}

func (deploymentBuilder) buildPrompt(req project.Request) (string, error) {
	return bindProjectPrompt(deploymentPrompt, req)
}

func (deploymentBuilder) shapePayload(output string) map[string]any {
	return map[string]any{
		"deployment_strategy": output,
		"infrastructure_type": "Cloud-native",
		"deployment_method":   "CI/CD Pipeline",
	}
}

var genericPrompt = promptbuilder.MustNewPrompt(
	`As a {{kind}} agent, provide assistance for:

Project: {{description}}
Platform: {{platform}}

Provide comprehensive guidance and recommendations.`)

// genericBuilder handles kinds outside the catalog that callers opted to
// run anyway.
type genericBuilder struct {
	kind string
}

func (b genericBuilder) buildPrompt(req project.Request) (string, error) {
	p, err := genericPrompt.BindString("kind", b.kind)
	if err != nil {
		return "", err
	}
	return bindProjectPrompt(p, req)
}

func (b genericBuilder) shapePayload(output string) map[string]any {
	return map[string]any{
		"output":     output,
		"agent_type": b.kind,
	}
}

// bindProjectPrompt binds the common description/platform placeholders.
func bindProjectPrompt(prompt *promptbuilder.Prompt, req project.Request) (string, error) {
	p, err := prompt.BindString("description", req.DescriptionOrDefault())
	if err != nil {
		return "", err
	}
	if p, err = p.BindString("platform", req.PlatformOrDefault()); err != nil {
		return "", err
	}
	return p.Build()
}
