package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func savingsCmd() *cobra.Command {
	savingsRoot := &cobra.Command{
		Use:   "savings",
		Short: "Manage the saved-CO2 ledger",
	}

	savingsRoot.AddCommand(
		savingsGetCmd(),
		savingsRecordCmd(),
	)

	return savingsRoot
}

func savingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show cumulative CO2 savings",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			total, err := c.TotalSavings(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(map[string]float64{"total_kg": total})
			}

			fmt.Printf("Total CO2 saved: %.2f kg\n", total)
			return nil
		},
	}
}

func savingsRecordCmd() *cobra.Command {
	var deltaKg float64

	cmd := &cobra.Command{
		Use:     "record",
		Short:   "Record avoided emissions",
		Example: `  greenscore savings record --delta 3.4`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			total, err := c.RecordSaving(context.Background(), deltaKg)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(map[string]float64{"total_kg": total})
			}

			fmt.Printf("Recorded %.2f kg, total CO2 saved: %.2f kg\n", deltaKg, total)
			return nil
		},
	}
	cmd.Flags().Float64Var(&deltaKg, "delta", 0, "avoided emissions in kg CO2e")
	cobra.CheckErr(cmd.MarkFlagRequired("delta"))

	return cmd
}
