// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hiresight/talentd/internal/types"
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

// PrintRequirement outputs a human-readable summary of the requirement profile.
func (p *Printer) PrintRequirement(req *types.RequirementProfile) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", req.Title))
	if req.Seniority != "" {
		sb.WriteString(fmt.Sprintf("Seniority: %s\n", req.Seniority))
	}
	if req.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", req.Location))
	}

	if len(req.MandatorySkills) > 0 {
		sb.WriteString("\nMandatory skills:\n")
		count := min(len(req.MandatorySkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.MandatorySkills[i]))
		}
		if len(req.MandatorySkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.MandatorySkills)-maxItemsToShow))
		}
	}

	if len(req.OptionalSkills) > 0 {
		sb.WriteString("\nNice-to-haves:\n")
		count := min(len(req.OptionalSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.OptionalSkills[i]))
		}
		if len(req.OptionalSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.OptionalSkills)-3))
		}
	}

	p.printBox("JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the top ranked matches with scores, strengths,
// and any rediscovery signals.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		p.printBox("MATCH RESULTS", "No candidates matched.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, shortID(result.CandidateID.String())))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  Confidence: %.1f%%\n", result.OverallScore, result.Confidence))
		if len(result.Strengths) > 0 {
			sb.WriteString(fmt.Sprintf("    + %s\n", truncate(result.Strengths[0], 48)))
		}
		if len(result.Weaknesses) > 0 {
			sb.WriteString(fmt.Sprintf("    - %s\n", truncate(result.Weaknesses[0], 48)))
		}
		for _, signal := range result.Signals {
			sb.WriteString(fmt.Sprintf("    ★ %s (+%.0f)\n", signal.Type, signal.ScoreBoost))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED MATCHES", sb.String())
}

// PrintExplanation outputs the per-dimension breakdown of a single match.
func (p *Printer) PrintExplanation(result *types.MatchResult) {
	if result == nil || len(result.Explanation) == 0 {
		return
	}

	order := []string{"skill", "experience", "seniority", "location",
		"compensation", "recency", "domain", "availability"}

	var sb strings.Builder
	for _, name := range order {
		exp, ok := result.Explanation[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-13s %5.1f  %s\n", name, exp.Score, truncate(exp.Detail, 34)))
	}

	p.printBox("DIMENSION BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// shortID returns the first UUID group, enough to tell candidates apart on screen.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
