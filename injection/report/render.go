/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ianmxaof/powercore-agentic-injection/agents/metaagent"
	"github.com/ianmxaof/powercore-agentic-injection/injection"
)

// newTable creates a table writer with the formatting shared by every
// rendered section.
func newTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 80,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// Render writes a markdown rendering of the report to w.
func Render(w io.Writer, r injection.Report) error {
	fmt.Fprintf(w, "## Processing Report: %s\n\n", r.ProjectID)
	fmt.Fprintf(w, "Status: %s | Time: %s\n\n", r.OverallStatus, r.Timestamp.Format(time.RFC3339))
	if r.Error != "" {
		fmt.Fprintf(w, "Error: %s\n\n", r.Error)
	}

	if len(r.AgentsExecuted) > 0 {
		table := newTable([]string{"Agent", "Type", "Success", "Time (s)", "Error"}, w)
		for _, ea := range r.AgentsExecuted {
			success := "yes"
			if !ea.Result.Success {
				success = "no"
			}
			if err := table.Append([]string{
				ea.AgentName,
				ea.AgentKind,
				success,
				fmt.Sprintf("%.2f", ea.Result.ElapsedSeconds),
				ea.Result.Err,
			}); err != nil {
				return fmt.Errorf("rendering agent rows: %w", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("rendering agent table: %w", err)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "No agents executed.")
		fmt.Fprintln(w)
	}

	return renderSuggestions(w, r.MetaAgentInsights)
}

// RenderStatus writes a markdown rendering of the status snapshot to w.
func RenderStatus(w io.Writer, s injection.SystemStatus) error {
	fmt.Fprintf(w, "## System Status: %s\n\n", s.SystemHealth)

	table := newTable([]string{"Field", "Value"}, w)
	rows := [][]string{
		{"Active agents", fmt.Sprintf("%d", s.ActiveAgents)},
		{"Triggers", fmt.Sprintf("%d (%d enabled)", s.TotalTriggers, s.EnabledTriggers)},
		{"Agent types", strings.Join(s.AvailableAgentKinds, ", ")},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("rendering status rows: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering status table: %w", err)
	}
	fmt.Fprintln(w)

	return renderSuggestions(w, s.MetaAgentInsights)
}

func renderSuggestions(w io.Writer, suggestions []metaagent.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	fmt.Fprintln(w, "### Meta-agent insights")
	fmt.Fprintln(w)
	table := newTable([]string{"Type", "Agent", "Suggestion", "Priority"}, w)
	for _, s := range suggestions {
		if err := table.Append([]string{s.Kind, s.AgentName, s.Suggestion, s.Priority}); err != nil {
			return fmt.Errorf("rendering suggestion rows: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering suggestion table: %w", err)
	}
	return nil
}
