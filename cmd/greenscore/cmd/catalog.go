package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenverse/greenscore/internal/catalog"
	"github.com/greenverse/greenscore/internal/engine"
	"github.com/greenverse/greenscore/pkg/logger"
	score "github.com/greenverse/greenscore/pkg/scorer"
	domain "github.com/greenverse/greenscore/pkg/types"
)

func catalogCmd() *cobra.Command {
	catalogRoot := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the alternatives catalog",
	}

	catalogRoot.AddCommand(
		catalogStatsCmd(),
		catalogReloadCmd(),
		catalogBuildCmd(),
	)

	return catalogRoot
}

func catalogStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog snapshot stats",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.GetCatalogStats(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(stats)
			}

			return printCatalogStats(stats)
		},
	}
}

func catalogReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload the server's catalog snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			total, err := c.ReloadCatalog(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(map[string]int{"total": total})
			}

			fmt.Printf("Catalog reloaded: %d records\n", total)
			return nil
		},
	}
}

// catalogBuildCmd scores raw scraped candidates into a publishable catalog
// file. Runs offline, no API server needed.
func catalogBuildCmd() *cobra.Command {
	var (
		inPath     string
		outPath    string
		policyName string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a scored catalog from raw candidates",
		Long: "Score a raw candidate file produced by the marketplace scraper\n" +
			"and write the pre-scored catalog the server loads at startup.",
		Example: `  greenscore catalog build --in raw_candidates.json --out data/alternatives.json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := os.ReadFile(inPath) //nolint:gosec // path from CLI flag
			if err != nil {
				return fmt.Errorf("reading candidates: %w", err)
			}

			var candidates []domain.RawCandidate
			if err := json.Unmarshal(data, &candidates); err != nil {
				return fmt.Errorf("parsing candidates JSON: %w", err)
			}

			policy, err := score.PolicyByName(policyName)
			if err != nil {
				return err
			}

			eng := engine.New(catalog.NewHolder(), nil,
				engine.WithLogger(logger.New("info", "text")),
				engine.WithPolicy(policy),
			)
			records := eng.BuildCatalog(candidates)
			catalog.SortRecords(records)

			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding catalog: %w", err)
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil { //nolint:gosec // catalog is public data
				return fmt.Errorf("writing catalog: %w", err)
			}

			fmt.Printf("Wrote %d records (from %d candidates) to %s\n",
				len(records), len(candidates), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "raw candidates JSON file")
	cmd.Flags().StringVar(&outPath, "out", "data/alternatives.json", "output catalog file")
	cmd.Flags().StringVar(&policyName, "policy", "default", "scoring policy (default, flat, environmental)")
	cobra.CheckErr(cmd.MarkFlagRequired("in"))

	return cmd
}
