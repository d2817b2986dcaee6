package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/levquant/levquant/pkg/analysis"
	"github.com/levquant/levquant/pkg/config"
	"github.com/levquant/levquant/pkg/surface"
)

func newLetterCmd() *cobra.Command {
	var (
		casePath   string
		claimant   string
		respondent string
		openDays   int
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "letter",
		Short: "Render a banded settlement letter for a case",
		Long: `Renders a without-prejudice settlement letter anchored on the resolved
settlement band. The letter quotes the band, the flags on record, and the
escalation position; it never asserts outcome or fault.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLetter(letterOpts{
				casePath:   casePath,
				claimant:   claimant,
				respondent: respondent,
				openDays:   openDays,
				outPath:    outPath,
			})
		},
	}

	cmd.Flags().StringVar(&casePath, "case", "", "Path to a case file (required)")
	cmd.Flags().StringVar(&claimant, "claimant", "", "Claimant name (default: parsed from case name)")
	cmd.Flags().StringVar(&respondent, "respondent", "", "Respondent name (default: parsed from case name)")
	cmd.Flags().IntVar(&openDays, "open-days", 14, "Days the offer stays open")
	cmd.Flags().StringVar(&outPath, "out", "", "Output path (default: stdout)")
	_ = cmd.MarkFlagRequired("case")

	return cmd
}

type letterOpts struct {
	casePath   string
	claimant   string
	respondent string
	openDays   int
	outPath    string
}

func runLetter(opts letterOpts) error {
	cf, err := config.LoadCaseFile(opts.casePath)
	if err != nil {
		return err
	}
	a, err := analysis.FromCaseFile(cf, time.Now())
	if err != nil {
		return err
	}

	claimant, respondent := partiesFromCaseName(cf.Name)
	if opts.claimant != "" {
		claimant = opts.claimant
	}
	if opts.respondent != "" {
		respondent = opts.respondent
	}
	if claimant == "" || respondent == "" {
		return fmt.Errorf("claimant and respondent are required (pass --claimant/--respondent or name the case \"X v Y\")")
	}

	var w io.Writer = os.Stdout
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	err = surface.RenderLetter(w, surface.LetterData{
		Analysis:       a,
		Claimant:       claimant,
		Respondent:     respondent,
		PrincipalClaim: cf.Monetary.PrincipalDebt,
		OpenForDays:    opts.openDays,
	})
	if err != nil {
		return err
	}
	if opts.outPath != "" {
		fmt.Fprintf(os.Stderr, "Letter saved: %s\n", opts.outPath)
	}
	return nil
}

// partiesFromCaseName splits a "Claimant v Respondent" case name. Either
// side may come back empty when the name does not follow that shape.
func partiesFromCaseName(name string) (claimant, respondent string) {
	for _, sep := range []string{" v ", " v. ", " vs ", " vs. "} {
		if before, after, ok := strings.Cut(name, sep); ok {
			return strings.TrimSpace(before), strings.TrimSpace(after)
		}
	}
	return "", ""
}
