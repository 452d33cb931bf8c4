package cmd

import (
	"context"

	"github.com/spf13/cobra"

	apiclient "github.com/greenverse/greenscore/internal/api/client"
)

func scoreCmd() *cobra.Command {
	var (
		bullets     string
		description string
		price       float64
		rating      float64
		reviewCount int
		refPrice    float64
	)

	cmd := &cobra.Command{
		Use:   "score <title>",
		Short: "Score a product's sustainability",
		Long: "Score a product listing: estimates its carbon footprint from the\n" +
			"listing text and computes the weighted 0-100 sustainability score.",
		Example: `  # Score from a title alone
  greenscore score "Organic cotton t-shirt" --price 25

  # Include bullets and rating
  greenscore score "Recycled polyester jacket" --price 80 \
    --bullets "made from 60% recycled materials" --rating 4.4 --reviews 1200`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()

			params := &apiclient.AssessParams{
				Title:       args[0],
				BulletText:  bullets,
				Description: description,
				Price:       price,
				Rating:      rating,
				ReviewCount: reviewCount,
			}
			if refPrice > 0 {
				params.ReferencePrice = &refPrice
			}

			a, err := c.Assess(context.Background(), params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(a)
			}

			return printAssessment(a)
		},
	}
	cmd.Flags().StringVar(&bullets, "bullets", "", "feature bullet text")
	cmd.Flags().StringVar(&description, "description", "", "product description text")
	cmd.Flags().Float64Var(&price, "price", 0, "listing price")
	cmd.Flags().Float64Var(&rating, "rating", 0, "star rating 0-5")
	cmd.Flags().IntVar(&reviewCount, "reviews", 0, "number of reviews")
	cmd.Flags().Float64Var(&refPrice, "reference-price", 0, "reference price override")

	return cmd
}
