package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/levquant/levquant/pkg/analysis"
	"github.com/levquant/levquant/pkg/config"
	"github.com/levquant/levquant/pkg/surface"
)

func newExportCmd() *cobra.Command {
	var (
		casePath string
		format   string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a case analysis as CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(casePath, format, outPath)
		},
	}

	cmd.Flags().StringVar(&casePath, "case", "", "Path to a case file (required)")
	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or json")
	cmd.Flags().StringVar(&outPath, "out", "", "Output path (default: stdout)")
	_ = cmd.MarkFlagRequired("case")

	return cmd
}

func runExport(casePath, format, outPath string) error {
	cf, err := config.LoadCaseFile(casePath)
	if err != nil {
		return err
	}
	a, err := analysis.FromCaseFile(cf, time.Now())
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	var renderer surface.Renderer
	switch format {
	case "csv":
		renderer = &surface.CSVRenderer{}
	case "json":
		renderer = &surface.JSONRenderer{}
	default:
		return fmt.Errorf("unknown export format %q (want csv or json)", format)
	}

	if err := renderer.Render(w, a); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	if outPath != "" {
		fmt.Fprintf(os.Stderr, "Exported: %s\n", outPath)
	}
	return nil
}
