package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/bramble/pkg/domain"
)

// RenderResult formats a solve result for terminal output, coloring the
// verdict when the terminal supports it.
func RenderResult(result *domain.Result) string {
	p := termenv.ColorProfile()

	var sb strings.Builder

	for _, action := range result.Trace {
		arrow := termenv.String("→").Foreground(p.Color("#818cf8"))
		sb.WriteString(fmt.Sprintf("  %s executing %s\n", arrow, action))
	}

	var verdict termenv.Style
	if result.Outcome.Solved() {
		verdict = termenv.String("SOLVED").Foreground(p.Color("#22c55e")).Bold()
	} else {
		verdict = termenv.String("FAILED").Foreground(p.Color("#ef4444")).Bold()
	}
	sb.WriteString(verdict.String())
	sb.WriteString("\n")

	if len(result.Final) > 0 {
		sb.WriteString(fmt.Sprintf("  final state: %s\n", strings.Join(result.Final.Strings(), ", ")))
	}

	return sb.String()
}
