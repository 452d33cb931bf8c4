package cmd

import (
	"context"

	"github.com/spf13/cobra"

	apiclient "github.com/greenverse/greenscore/internal/api/client"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories [key]",
		Short: "List category benchmarks",
		Long: "List the product categories the scorer recognizes, with their\n" +
			"base emission factors and normalization ceilings. With a key\n" +
			"argument, show just that category.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()

			if len(args) == 1 {
				info, err := c.CategoryBenchmarks(context.Background(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(info)
				}
				return printCategoriesTable([]apiclient.CategoryInfo{*info})
			}

			cats, err := c.Categories(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cats)
			}

			return printCategoriesTable(cats)
		},
	}
}
