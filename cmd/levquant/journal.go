package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levquant/levquant/internal/journal"
	"github.com/levquant/levquant/pkg/config"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Append-only case journal",
		Long: `Maintains the local append-only journal for a case. Entries get a UUID
and a UTC timestamp and are never updated or deleted.`,
	}

	cmd.AddCommand(newJournalAddCmd(), newJournalListCmd())
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var (
		casePath   string
		text       string
		entryType  string
		source     string
		factStatus string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := config.LoadCaseFile(casePath)
			if err != nil {
				return err
			}

			entry, err := journal.NewEntry(cf.Name, entryType, source, text, journal.FactStatus(factStatus))
			if err != nil {
				return err
			}

			store := journal.NewFileStore(config.JournalFile(cf.Name))
			stored, err := store.Append(cmd.Context(), entry)
			if err != nil {
				return fmt.Errorf("appending entry: %w", err)
			}

			fmt.Printf("Recorded %s at %s\n", stored.ID, stored.Timestamp.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}

	cmd.Flags().StringVar(&casePath, "case", "", "Path to a case file (required)")
	cmd.Flags().StringVar(&text, "text", "", "Entry text (required)")
	cmd.Flags().StringVar(&entryType, "type", "", "Entry type (default: text)")
	cmd.Flags().StringVar(&source, "source", "", "Entry source (default: user)")
	cmd.Flags().StringVar(&factStatus, "status", "", "Fact status: REALISED, EVIDENCED, ALLEGED, or PROSPECTIVE")
	_ = cmd.MarkFlagRequired("case")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newJournalListCmd() *cobra.Command {
	var casePath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries in append order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := config.LoadCaseFile(casePath)
			if err != nil {
				return err
			}

			store := journal.NewFileStore(config.JournalFile(cf.Name))
			entries, err := store.List(cmd.Context(), cf.Name)
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println("No journal entries.")
				return nil
			}

			for _, e := range entries {
				line := fmt.Sprintf("%s  [%s/%s]", e.Timestamp.Format("2006-01-02 15:04"), e.EntryType, e.Source)
				if e.FactStatus != "" {
					line += "  " + string(e.FactStatus)
				}
				fmt.Printf("%s\n  %s\n", line, e.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&casePath, "case", "", "Path to a case file (required)")
	_ = cmd.MarkFlagRequired("case")

	return cmd
}
