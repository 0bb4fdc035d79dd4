// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
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

// PrintSemantic outputs a human-readable summary of the semantic analysis.
func (p *Printer) PrintSemantic(result *types.SemanticAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Similarity:  %.2f\n", result.SimilarityScore))
	sb.WriteString(fmt.Sprintf("Relevance:   %.2f\n", result.IndustryRelevance))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f\n", result.ConfidenceScore))

	missing := result.MissingKeywords()
	if len(missing) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", missing[i]))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("SEMANTIC ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIndustry outputs the detected industry and seniority level.
func (p *Printer) PrintIndustry(assessment *types.IndustryAssessment) {
	if assessment == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Industry:  %s (%.2f)\n", assessment.DetectedIndustry, assessment.Confidence))
	sb.WriteString(fmt.Sprintf("Level:     %s (%.2f)", assessment.RoleLevel.DetectedLevel, assessment.RoleLevel.Confidence))

	p.printBox("INDUSTRY ASSESSMENT", sb.String())
}

// PrintATS outputs per-system scores and the top recommendations.
func (p *Printer) PrintATS(result *types.ATSSimulationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.2f\n\n", result.OverallATSScore))
	for _, system := range result.Systems {
		sb.WriteString(fmt.Sprintf("  %-12s %.2f  (%d rules triggered)\n",
			system.SystemID, system.Score, len(system.TriggeredRules)))
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nTop fixes:\n")
		count := min(len(result.Recommendations), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Recommendations[i].Message))
		}
	}

	p.printBox("ATS SIMULATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs the composite score with its per-dimension shares.
func (p *Printer) PrintBreakdown(result *types.ComprehensiveAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score:  %.1f / 100\n\n", result.OverallScore))
	for _, dim := range result.Breakdown.Dimensions {
		sb.WriteString(fmt.Sprintf("  %-18s %.2f × %.2f = %.3f\n",
			dim.Name, dim.Score, dim.Weight, dim.Weighted))
	}

	p.printBox("COMPOSITE SCORE", strings.TrimSuffix(sb.String(), "\n"))
}
