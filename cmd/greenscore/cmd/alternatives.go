package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/greenverse/greenscore/internal/api/client"
	domain "github.com/greenverse/greenscore/pkg/types"
)

func alternativesCmd() *cobra.Command {
	var (
		currentScore  int
		minPrice      float64
		maxPrice      float64
		basePrice     float64
		strictOrganic bool
	)

	cmd := &cobra.Command{
		Use:   "alternatives <title>",
		Short: "Find greener alternatives for a product",
		Long: "Rank pre-scored catalog products as greener substitutes for the\n" +
			"given product, walking the fallback tiers until candidates appear.",
		Example: `  # Alternatives for a product being viewed
  greenscore alternatives "Cotton t-shirt" --score 45 --base-price 20

  # Constrain to a price band, organic only
  greenscore alternatives "Jeans" --min-price 30 --max-price 80 --strict-organic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()

			params := &apiclient.AlternativesParams{Title: args[0]}
			if cmd.Flags().Changed("score") {
				params.CurrentScore = &currentScore
			}
			if minPrice > 0 || maxPrice > 0 {
				params.PriceRange = &domain.PriceRange{Min: minPrice, Max: maxPrice}
			}
			if basePrice > 0 {
				params.BasePrice = &basePrice
			}
			if cmd.Flags().Changed("strict-organic") {
				params.StrictOrganic = &strictOrganic
			}

			resp, err := c.Alternatives(context.Background(), params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Alternatives) == 0 {
				fmt.Println("No alternatives found.")
				return nil
			}

			fmt.Printf("Category: %s  current score: %d  tier: %s\n\n",
				resp.Category, resp.CurrentScore, resp.Tier)
			return printAlternativesTable(resp.Alternatives)
		},
	}
	cmd.Flags().IntVar(&currentScore, "score", 0, "current product's sustainability score")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum candidate price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum candidate price")
	cmd.Flags().Float64Var(&basePrice, "base-price", 0, "current product's price")
	cmd.Flags().BoolVar(&strictOrganic, "strict-organic", false, "only organic candidates")

	return cmd
}
