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

// PrintAnalysis outputs a human-readable summary of one analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", result.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", result.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", result.MobileNumber))
	sb.WriteString(fmt.Sprintf("Degree:   %s\n", result.Degree))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", result.NoOfPages))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Field:    %s\n", result.PredictedField))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", result.CandidateLevel))
	sb.WriteString(fmt.Sprintf("ATS:      %d / 100\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("Score:    %d / 95\n", result.ResumeScore))

	if len(result.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(result.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Skills[i]))
		}
		if len(result.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Skills)-maxItemsToShow))
		}
	}

	if len(result.Tips) > 0 {
		sb.WriteString("\nTips:\n")
		count := min(len(result.Tips), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Tips[i]))
		}
		if len(result.Tips) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Tips)-maxItemsToShow))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
