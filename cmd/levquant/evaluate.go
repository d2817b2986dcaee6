package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/levquant/levquant/pkg/analysis"
	"github.com/levquant/levquant/pkg/band"
	"github.com/levquant/levquant/pkg/config"
	"github.com/levquant/levquant/pkg/engine"
	"github.com/levquant/levquant/pkg/surface"
)

func newEvaluateCmd() *cobra.Command {
	var (
		casePath            string
		caseName            string
		claimValidity       float64
		proceduralAdvantage float64
		costAsymmetry       float64
		flags               []string
		outputFmt           string
		noSave              bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score dispute evidence and resolve the settlement band",
		Long: `Runs the three evidence scalars through the scoring engine, resolves the
settlement band from the active flags, and renders the combined analysis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(evaluateOpts{
				casePath:            casePath,
				caseName:            caseName,
				claimValidity:       claimValidity,
				proceduralAdvantage: proceduralAdvantage,
				costAsymmetry:       costAsymmetry,
				flags:               flags,
				outputFmt:           outputFmt,
				noSave:              noSave,
			})
		},
	}

	cmd.Flags().StringVar(&casePath, "case", "", "Path to a case file (overrides the scalar flags)")
	cmd.Flags().StringVar(&caseName, "name", "ad-hoc", "Case name when no case file is given")
	cmd.Flags().Float64Var(&claimValidity, "claim-validity", 0, "Claim validity scalar in [0,1]")
	cmd.Flags().Float64Var(&proceduralAdvantage, "procedural-advantage", 0, "Procedural advantage scalar in [0,1]")
	cmd.Flags().Float64Var(&costAsymmetry, "cost-asymmetry", 0, "Cost asymmetry scalar in [0,1]")
	cmd.Flags().StringSliceVar(&flags, "flag", nil, "Evidentiary flag (repeatable)")
	cmd.Flags().StringVar(&outputFmt, "output", "", "Output format: text or json (default from config)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip caching the analysis")

	return cmd
}

type evaluateOpts struct {
	casePath            string
	caseName            string
	claimValidity       float64
	proceduralAdvantage float64
	costAsymmetry       float64
	flags               []string
	outputFmt           string
	noSave              bool
}

func runEvaluate(opts evaluateOpts) error {
	a, err := buildAnalysis(opts)
	if err != nil {
		return err
	}

	if !opts.noSave {
		saveAnalysis(a)
	}

	return renderAnalysis(os.Stdout, a, opts.outputFmt)
}

// buildAnalysis runs the engine from a case file when one is given,
// otherwise from the scalar flags.
func buildAnalysis(opts evaluateOpts) (*analysis.Analysis, error) {
	if opts.casePath != "" {
		cf, err := config.LoadCaseFile(opts.casePath)
		if err != nil {
			return nil, err
		}
		return analysis.FromCaseFile(cf, time.Now())
	}

	in, err := engine.NewEvidenceInputs(opts.claimValidity, opts.proceduralAdvantage, opts.costAsymmetry)
	if err != nil {
		return nil, err
	}
	fs, err := band.NewFlagSet(opts.flags...)
	if err != nil {
		return nil, err
	}
	return analysis.New(opts.caseName, "", in, fs, time.Now())
}

func renderAnalysis(w io.Writer, a *analysis.Analysis, format string) error {
	var renderer surface.Renderer
	switch resolveOutputFormat(format) {
	case "json":
		renderer = &surface.JSONRenderer{}
	default:
		renderer = &surface.TerminalRenderer{}
	}
	if err := renderer.Render(w, a); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// resolveOutputFormat prefers the explicit flag, then the config default.
func resolveOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return loadConfig().Output.Format
}

func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	cfgFile := config.FindConfigFile(cwd)
	if cfgFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// saveAnalysis caches the analysis under the per-case cache directory so it
// can be exported or inspected later. Failures are warnings, not errors.
func saveAnalysis(a *analysis.Analysis) {
	dir := config.AnalysisDir(a.CaseName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create analysis dir: %v\n", err)
		return
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to marshal analysis: %v\n", err)
		return
	}

	path := filepath.Join(dir, a.RunAt.Format("20060102T150405Z")+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save analysis: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Analysis saved: %s\n", path)
}
