// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/inclusionlab/cvmatch/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Nombre:   %s\n", valueOrDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", valueOrDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Teléfono: %s\n", valueOrDash(profile.Phone)))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nHabilidades:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... y %d más\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("\nExperiencia:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Years > 0 {
				sb.WriteString(fmt.Sprintf(" (%d años)", exp.Years))
			}
			sb.WriteString("\n")
		}
	}

	if len(profile.Languages) > 0 {
		sb.WriteString("\nIdiomas:\n")
		for _, lang := range profile.Languages {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", lang.Name, lang.Level))
		}
	}

	p.printBox("PERFIL EXTRAÍDO", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top ranked offers with scores and reasons.
func (p *Printer) PrintMatches(matches []types.MatchResult) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ofertas puntuadas: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, m.Title))
		sb.WriteString(fmt.Sprintf("    Puntuación: %d\n", m.Score))
		if len(m.Reasons) > 0 {
			reasons := strings.Join(m.Reasons, "; ")
			if len(reasons) > 40 {
				reasons = reasons[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Motivos: %s\n", reasons))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("OFERTAS RECOMENDADAS", strings.TrimSuffix(sb.String(), "\n"))
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
