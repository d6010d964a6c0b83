/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package project

// Request describes the work item being evaluated against triggers.
// All fields are optional; conditions that reference an absent field
// evaluate against its zero value.
type Request struct {
	// ID is a free-form identifier attached to the resulting report.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Description is a human-readable summary of the project or change.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Platform is the target platform, e.g. "web" or "mobile".
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`

	// Complexity is a coarse complexity rating, e.g. "low", "medium", "high".
	Complexity string `json:"complexity,omitempty" yaml:"complexity,omitempty"`

	// Features lists the features in scope for this request.
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`

	// FilesModified lists the paths touched by the change under evaluation.
	FilesModified []string `json:"files_modified,omitempty" yaml:"files_modified,omitempty"`
}

// DescriptionOrDefault returns the description, or a placeholder when absent.
func (r Request) DescriptionOrDefault() string {
	if r.Description == "" {
		return "No description"
	}
	return r.Description
}

// PlatformOrDefault returns the platform, or a placeholder when absent.
func (r Request) PlatformOrDefault() string {
	if r.Platform == "" {
		return "Unknown"
	}
	return r.Platform
}

// ComplexityOrDefault returns the complexity, or "Medium" when absent.
func (r Request) ComplexityOrDefault() string {
	if r.Complexity == "" {
		return "Medium"
	}
	return r.Complexity
}
