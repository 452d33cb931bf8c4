// Package handlers implements the Huma API operations for greenscore:
// product assessment, alternative ranking, category benchmarks, catalog
// administration, and the saved-CO2 ledger.
package handlers
