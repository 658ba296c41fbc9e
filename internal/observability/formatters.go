// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/budget"
	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRankedJobs outputs the top N ranked jobs with their score breakdowns.
func (p *Printer) PrintRankedJobs(ranked []types.RankedJob) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := ranked[i]
		title := job.Job.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    %s\n", job.Job.Company))
		sb.WriteString(fmt.Sprintf("    Score: %.1f", job.MatchScore))
		sb.WriteString(fmt.Sprintf(" (sem %.2f, skills %.2f, loc %.2f)\n",
			job.Breakdown.SemanticSimilarity,
			job.Breakdown.SkillMatch,
			job.Breakdown.LocationMatch))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED JOBS", sb.String())
}

// PrintSelectedProjects outputs the selected projects with scores and reasons.
func (p *Printer) PrintSelectedProjects(projects []types.ScoredProject) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected %d projects:\n\n", len(projects)))

	count := min(len(projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		scored := projects[i]
		title := scored.Project.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Relevance: %.2f\n", scored.RelevanceScore))
		if len(scored.MatchingTechnologies) > 0 {
			techs := strings.Join(scored.MatchingTechnologies, ", ")
			if len(techs) > 40 {
				techs = techs[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Tech: %s\n", techs))
		}
		reason := scored.SelectionReason
		if len(reason) > 45 {
			reason = reason[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", reason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SELECTED PROJECTS", sb.String())
}

// PrintBudgetReport outputs the section sizes of optimized content with the
// estimated word total.
func (p *Printer) PrintBudgetReport(content *types.OptimizedContent, targetPages int) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target pages: %d\n\n", targetPages))
	sb.WriteString(fmt.Sprintf("Summary:    %d words\n", len(strings.Fields(content.Summary))))
	sb.WriteString(fmt.Sprintf("Skills:     %d items\n", len(content.Skills)))
	sb.WriteString(fmt.Sprintf("Experience: %d roles\n", len(content.Experience)))
	sb.WriteString(fmt.Sprintf("Projects:   %d items\n", len(content.Projects)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(content.Education)))
	sb.WriteString(fmt.Sprintf("Languages:  %d items\n", len(content.Languages)))
	sb.WriteString(fmt.Sprintf("\nEstimated total: %d words", budget.EstimateWordCount(content)))

	p.printBox("CONTENT BUDGET", sb.String())
}
