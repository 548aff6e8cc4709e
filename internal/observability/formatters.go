// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jonathan/resume-relevance/internal/matching"
	"github.com/jonathan/resume-relevance/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the default number of skills to display in lists
	maxSkillsToShow = 5
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

// PrintMatchResult outputs the full score breakdown for one résumé-job pair.
// Sub-scores print rounded, the same presentation the dashboard shows.
func (p *Printer) PrintMatchResult(result *matching.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Final Score:     %d / 100\n", result.FinalScore))
	sb.WriteString(fmt.Sprintf("Verdict:         %s\n", result.Verdict))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Hard Match:      %d\n", int(math.Round(result.HardScore))))
	sb.WriteString(fmt.Sprintf("Semantic Match:  %d\n", int(math.Round(result.SemanticScore))))

	if len(result.MatchedSkills) > 0 {
		sb.WriteString("\nMatched Skills:\n")
		writeSkillList(&sb, result.MatchedSkills)
	}
	if len(result.MissingSkills) > 0 {
		sb.WriteString("\nMissing Skills:\n")
		writeSkillList(&sb, result.MissingSkills)
	}

	p.printBox("MATCH BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedEntries outputs a ranked candidate list, highest score first.
func (p *Printer) PrintRankedEntries(entries []types.RankedEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(entries)))

	for i, entry := range entries {
		name := entry.DisplayName
		if name == "" {
			name = entry.ResumeID
		}
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %d  (%s)\n", entry.Score, matching.VerdictFor(entry.Score)))
	}

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// writeSkillList writes up to maxSkillsToShow bulleted skills plus an
// overflow marker.
func writeSkillList(sb *strings.Builder, skills []string) {
	count := min(len(skills), maxSkillsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxSkillsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxSkillsToShow))
	}
}
