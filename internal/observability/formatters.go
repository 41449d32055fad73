// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the score command
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

// PrintAnalysisResult outputs a human-readable summary of a scoring run.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall Score:  %.1f / 100\n", result.OverallScore))
	sb.WriteString("\n")
	sb.WriteString("Component Scores:\n")
	sb.WriteString(fmt.Sprintf("  Semantic similarity:   %5.1f\n", result.Scores.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("  Keyword match:         %5.1f\n", result.Scores.KeywordMatch))
	sb.WriteString(fmt.Sprintf("  Experience alignment:  %5.1f\n", result.Scores.ExperienceAlignment))
	sb.WriteString(fmt.Sprintf("  Education match:       %5.1f\n", result.Scores.EducationMatch))

	p.printKeywordList(&sb, "Matched Keywords", result.Analysis.MatchedKeywords)
	p.printKeywordList(&sb, "Missing Keywords", result.Analysis.MissingKeywords)

	if len(result.Analysis.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range result.Analysis.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	if len(result.Degradations) > 0 {
		sb.WriteString("\nDegraded Components:\n")
		for _, d := range result.Degradations {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", d.Component, d.Cause))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printKeywordList(sb *strings.Builder, title string, keywords []string) {
	if len(keywords) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}
}

// PrintDetailedAnalysis outputs the extraction detail for the analyze flow.
func (p *Printer) PrintDetailedAnalysis(detail *types.DetailedAnalysis) {
	if detail == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience:  resume=%s  job=%s\n",
		detail.ExperienceLevels.Resume, detail.ExperienceLevels.JobRequirement))
	sb.WriteString(fmt.Sprintf("Education:   resume=%d  job=%d\n",
		detail.EducationLevels.Resume, detail.EducationLevels.JobRequirement))

	p.printKeywordList(&sb, "Resume Keywords", detail.ResumeKeywords)
	p.printKeywordList(&sb, "Job Keywords", detail.JobKeywords)

	p.printBox("DETAILED ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
