package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/greenverse/greenscore/internal/api/client"
	domain "github.com/greenverse/greenscore/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAssessment(a *domain.Assessment) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Score:\t%d/100\n", a.Score)
	tw.writef("Category:\t%s\n", a.Category)
	tw.writef("Carbon:\t%.2f kg CO2e\n", a.CarbonKg)
	tw.writef("Policy:\t%s\n", a.Policy)
	tw.writef("Reference Price:\t$%.2f\n", a.ReferencePrice)
	tw.writef("Keyword Score:\t%.0f\n", a.Bundle.Keywords)
	tw.writef("Rating Score:\t%.0f\n", a.Bundle.Rating)
	tw.writef("Review Score:\t%.0f\n", a.Bundle.Reviews)
	tw.writef("Durability Score:\t%.0f\n", a.Bundle.Durability)
	return tw.finish()
}

func printAlternativesTable(alts []domain.AlternativeRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tSCORE\tPRICE\tCARBON\tRATING\n")
	for i := range alts {
		price := "-"
		if alts[i].Price != nil {
			price = fmt.Sprintf("$%.2f", *alts[i].Price)
		}
		tw.writef("%s\t%s\t%d\t%s\t%.2f kg\t%.1f\n",
			alts[i].ID,
			truncate(alts[i].Title, 40),
			alts[i].Score,
			price,
			alts[i].Carbon,
			alts[i].Rating,
		)
	}
	return tw.finish()
}

func printCategoriesTable(cats []apiclient.CategoryInfo) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CATEGORY\tBASE CO2\tMAX CO2\tMAX WATER\tMAX WASTE\tMAX PRICE\n")
	for i := range cats {
		tw.writef("%s\t%.2f kg\t%.1f\t%.0f\t%.1f\t$%.0f\n",
			cats[i].Key,
			cats[i].BaseEmission,
			cats[i].Benchmark.MaxCO2,
			cats[i].Benchmark.MaxWater,
			cats[i].Benchmark.MaxWaste,
			cats[i].Benchmark.MaxPrice,
		)
	}
	return tw.finish()
}

func printCatalogStats(stats *apiclient.CatalogStats) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Total:\t%d\n", stats.Total)
	for key, count := range stats.PerCategory {
		tw.writef("%s:\t%d\n", key, count)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
