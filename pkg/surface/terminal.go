package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/levquant/levquant/pkg/analysis"
	"github.com/levquant/levquant/pkg/engine"
)

// TerminalRenderer renders a case analysis as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func decisionColor(d engine.Decision) string {
	if noColor() {
		return ""
	}
	switch d {
	case engine.DecisionAccept:
		return colorGreen
	case engine.DecisionHold, engine.DecisionCounter:
		return colorYellow
	case engine.DecisionReject:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, a *analysis.Analysis) error {
	snap := a.Snapshot
	dc := decisionColor(snap.Evaluation.Decision)

	// Header
	fmt.Fprintf(w, "%s\n",
		bold(fmt.Sprintf("Levquant: %s — Leverage %.3f",
			colored(string(snap.Evaluation.Decision), dc), snap.Scores.LeverageScore)))
	if a.Reference != "" {
		fmt.Fprintf(w, "Case: %s (%s)\n", a.CaseName, a.Reference)
	} else {
		fmt.Fprintf(w, "Case: %s\n", a.CaseName)
	}
	fmt.Fprintln(w)

	// Inputs
	fmt.Fprintf(w, "Inputs: claim validity %.2f / procedural advantage %.2f / cost asymmetry %.2f\n\n",
		snap.Inputs.ClaimValidity, snap.Inputs.ProceduralAdvantage, snap.Inputs.CostAsymmetry)

	// Scores
	fmt.Fprintln(w, "Scores:")
	fmt.Fprintf(w, "  Leverage score   %.3f\n", snap.Scores.LeverageScore)
	pressure := fmt.Sprintf("  Cost pressure    %.2f", snap.Scores.CostPressure)
	if snap.Evaluation.Triggered {
		pressure += "  " + colored("ESCALATION TRIGGERED", colorRed)
	}
	fmt.Fprintln(w, pressure)
	fmt.Fprintln(w)

	// Evaluation
	fmt.Fprintf(w, "Decision: %s (confidence %s)\n",
		colored(string(snap.Evaluation.Decision), dc), snap.Evaluation.Confidence)
	for _, line := range []string{
		snap.Interpretation.LeveragePosition,
		snap.Interpretation.DecisionExplanation,
		snap.Interpretation.PressureStatus,
		snap.Interpretation.ConfidenceExplanation,
	} {
		for _, wrapped := range wrapText(line, 76) {
			fmt.Fprintf(w, "  %s\n", dim(wrapped))
		}
	}
	fmt.Fprintln(w)

	// Band
	fmt.Fprintf(w, "Settlement band: %s %s\n", bold(a.Band.CurrentBandName), a.Band.CurrentRange)
	fmt.Fprintf(w, "  %s\n", dim(a.Band.Meaning))
	if len(a.Band.ActiveFlags) > 0 {
		fmt.Fprintf(w, "  Active flags: %s\n", strings.Join(a.Band.ActiveFlags, ", "))
	} else {
		fmt.Fprintln(w, "  Active flags: none")
	}
	fmt.Fprintln(w)

	// Escalation path
	fmt.Fprintln(w, "What moves this up a band:")
	fmt.Fprintf(w, "  %s\n", a.Band.WhatMovesUp.Message)
	for _, missing := range a.Band.WhatMovesUp.Missing {
		fmt.Fprintf(w, "  • %s\n", dim(missing))
	}
	fmt.Fprintln(w)

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
