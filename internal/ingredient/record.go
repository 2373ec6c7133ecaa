// Package ingredient holds the pipeline's working record for a shopping-list
// ingredient, plus the parsing, normalization and plan-extraction steps that
// produce and key those records.
package ingredient

import "smart-shopping-cart/internal/classify"

// Amount is one occurrence's quantity and unit as written in a recipe.
type Amount struct {
	Quantity string
	Unit     string
}

// Record is one ingredient's state as it moves through the pipeline. The
// extractor creates it, the classifier tags it, the optimizer merges records
// sharing a NormalizedName, and the freshness analyzer enriches the survivor.
type Record struct {
	Name           string
	NormalizedName string
	Quantity       string
	Unit           string

	// Amounts holds every occurrence's quantity, one entry per ingredient
	// line that was grouped into this record. Quantity and Unit above mirror
	// the first entry for display until the optimizer sums the group.
	Amounts []Amount

	// Recipes lists provenance as "Day mealType: RecipeName", in plan order.
	Recipes []string

	Category          classify.Category
	Importance        classify.Importance
	FreshnessPriority classify.Freshness

	ShelfLifeDays  int
	StorageTips    []string
	WarningMessage string

	// Notes accumulates diagnostics (parse fallbacks, conversion mismatches,
	// bulk suggestions). Degraded input lands here instead of failing.
	Notes []string
}

// Classify applies the rule-based tags to a record in place.
func (r *Record) Classify() {
	c := classify.Ingredient(r.Name)
	r.Category = c.Category
	r.Importance = c.Importance
	r.FreshnessPriority = c.FreshnessPriority
}
