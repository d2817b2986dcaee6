package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/levquant/levquant/pkg/band"
	"github.com/levquant/levquant/pkg/config"
	"github.com/levquant/levquant/pkg/estimate"
)

var hundred = decimal.NewFromInt(100)

func newEstimateCmd() *cobra.Command {
	var (
		casePath  string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "GDPR exposure and insurance reserve estimates for a case",
		Long: `Runs the collateral estimators against the case's resolved settlement
band: Article 82 distress damages plus ICO fine exposure, and the insurer
reserve gap against the band's upper bound.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(casePath, outputFmt)
		},
	}

	cmd.Flags().StringVar(&casePath, "case", "", "Path to a case file (required)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("case")

	return cmd
}

func runEstimate(casePath, outputFmt string) error {
	cf, err := config.LoadCaseFile(casePath)
	if err != nil {
		return err
	}
	fs, err := band.NewFlagSet(cf.Flags...)
	if err != nil {
		return err
	}
	current := band.Resolve(fs).Band

	gdpr, err := estimate.GDPRExposure(estimate.GDPRInput{
		DataSubjects:   cf.GDPR.DataSubjects,
		AnnualTurnover: cf.GDPR.AnnualTurnover,
		DistressLevel:  estimate.DistressLevel(cf.GDPR.DistressLevel),
	}, current)
	if err != nil {
		return fmt.Errorf("gdpr exposure: %w", err)
	}

	reserve := estimate.InsuranceReserve(estimate.ReserveInput{
		CaseReserve:   cf.Insurance.CaseReserve,
		CoverageLimit: cf.Insurance.CoverageLimit,
		IBNRPercent:   cf.Insurance.IBNRPercent,
	}, current, fs)

	if outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"case_name": cf.Name,
			"band":      current,
			"gdpr":      gdpr,
			"insurance": reserve,
		})
	}

	fmt.Printf("Case: %s (band %s)\n\n", cf.Name, current)

	fmt.Println("GDPR exposure:")
	fmt.Printf("  Subjects:         %d (%s distress)\n", gdpr.DataSubjects, gdpr.DistressLevel)
	fmt.Printf("  Distress damages: £%s – £%s\n", gdpr.DistressTotalLow.StringFixed(0), gdpr.DistressTotalHigh.StringFixed(0))
	fmt.Printf("  Fine band:        %s (%s%% of turnover)\n", gdpr.FineBand, gdpr.FinePercent.Mul(hundred).StringFixed(1))
	fmt.Printf("  Max fine:         £%s\n", gdpr.MaxFine.StringFixed(0))
	fmt.Printf("  Total exposure:   £%s\n\n", gdpr.TotalExposureHigh.StringFixed(0))

	fmt.Println("Insurance reserve:")
	fmt.Printf("  Settlement exposure: £%s\n", reserve.SettlementExposure.StringFixed(0))
	fmt.Printf("  Total reserve:       £%s (case £%s + IBNR £%s)\n",
		reserve.TotalReserve.StringFixed(0), reserve.CaseReserve.StringFixed(0), reserve.IBNRReserve.StringFixed(0))
	if reserve.ReserveAdequate {
		fmt.Println("  Position:            adequate")
	} else {
		fmt.Printf("  Reserve gap:         £%s\n", reserve.ReserveGap.StringFixed(0))
	}
	fmt.Printf("  Within policy limit: %v\n", reserve.WithinPolicyLimit)
	fmt.Printf("  Coverage stress:     %.2f — %s\n", reserve.StressScore, reserve.StressLevel)
	for _, f := range reserve.TriggeredFlags {
		fmt.Printf("    - %s\n", f)
	}
	return nil
}
