package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/levquant/levquant/pkg/analysis"
	"github.com/levquant/levquant/pkg/band"
)

// LetterData carries everything the settlement letter needs beyond the
// analysis itself: party names and the monetary anchors.
type LetterData struct {
	Analysis       *analysis.Analysis
	Claimant       string
	Respondent     string
	PrincipalClaim decimal.Decimal
	OpenForDays    int
}

// RenderLetter writes the banded settlement letter. The letter quotes the
// resolved band only: it states what flags are on record and what would
// move the matter up a band, and never asserts outcome or fault.
func RenderLetter(w io.Writer, d LetterData) error {
	if d.Analysis == nil {
		return fmt.Errorf("rendering letter: nil analysis")
	}
	a := d.Analysis
	r := band.RangeOf(a.Band.CurrentBand)
	openDays := d.OpenForDays
	if openDays <= 0 {
		openDays = 14
	}

	fmt.Fprintln(w, "WITHOUT PREJUDICE SAVE AS TO COSTS")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Settlement Proposal - %s\n", a.Reference)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dear Sirs,")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Re: %s v %s\n", d.Claimant, d.Respondent)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "We write to set out our client's position regarding settlement of the above matter.")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "CURRENT SETTLEMENT BAND: %s\n", a.Band.CurrentBandName)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Based on the procedural posture and the facts on record, this matter currently sits in the %s:\n", a.Band.CurrentBandName)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  • Settlement range: %s\n", a.Band.CurrentRange)
	fmt.Fprintf(w, "  • Risk profile: %s\n", a.Band.Meaning)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "FLAG ANALYSIS")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Active flags (%d):\n", a.Band.FlagCount)
	if len(a.Band.ActiveFlags) == 0 {
		fmt.Fprintln(w, "  • None - base position applies")
	}
	for _, f := range a.Band.ActiveFlags {
		fmt.Fprintf(w, "  • %s\n", flagTitle(f))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "WHAT MOVES THIS UP A BAND?")
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.Band.WhatMovesUp.Message)
	if len(a.Band.WhatMovesUp.Missing) > 0 {
		fmt.Fprintf(w, "Any material change in the flag profile (e.g. %s) would trigger reassessment at the next band level.\n",
			flagTitle(a.Band.WhatMovesUp.Missing[0]))
	}
	fmt.Fprintln(w)

	floor := r.Min
	premium := floor.Sub(d.PrincipalClaim)
	fmt.Fprintf(w, "We are instructed to seek %s in full and final settlement, reflecting:\n", gbpAmount(floor))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  • Principal claim: %s\n", gbpAmount(d.PrincipalClaim))
	fmt.Fprintf(w, "  • Procedural leverage premium (current band): %s\n", gbpAmount(premium))
	fmt.Fprintf(w, "  • Total: %s\n", gbpAmount(floor))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "This offer remains open for %d days from the date of this letter.\n", openDays)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Yours faithfully,")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[Claimant's Solicitors]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "---")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Band Methodology Note:")
	fmt.Fprintln(w, "This settlement framework uses a graduated band system based on objective procedural and factual flags. Each band activation requires specific verified triggers. The current band reflects only those flags that have been confirmed through evidence.")

	return nil
}

// flagTitle converts a flag identifier to display form, e.g.
// "sra_investigation_open" -> "Sra Investigation Open".
func flagTitle(flag string) string {
	words := strings.Split(flag, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// gbpAmount formats a decimal as "£5,000,000".
func gbpAmount(v decimal.Decimal) string {
	neg := v.IsNegative()
	s := v.Abs().Round(0).String()
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-£" + b.String()
	}
	return "£" + b.String()
}
