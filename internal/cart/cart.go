// Package cart orchestrates the shopping-list pipeline: extract ingredients
// from a weekly plan, classify them, merge overlapping quantities, rank by
// freshness, and bucket the result into purchase tiers.
package cart

import (
	"strings"
	"time"

	"smart-shopping-cart/internal/classify"
	"smart-shopping-cart/internal/freshness"
	"smart-shopping-cart/internal/ingredient"
	"smart-shopping-cart/internal/optimize"
	"smart-shopping-cart/internal/plan"
)

// Item is a finalized shopping-list entry. Items are immutable once placed
// into a ShoppingList.
type Item struct {
	Name          string              `json:"name"`
	Quantity      string              `json:"quantity"`
	Unit          string              `json:"unit"`
	Category      classify.Category   `json:"category"`
	Importance    classify.Importance `json:"importance"`
	Recipes       []string            `json:"recipes"`
	EstimatedCost *float64            `json:"estimated_cost"`
	Notes         string              `json:"notes"`
}

// ShoppingList is the terminal artifact of one Generate call: four ordered
// purchase tiers plus generation metadata. It is constructed once and never
// mutated, only rendered or exported.
type ShoppingList struct {
	Essential          []Item    `json:"essential"`
	PantryStaples      []Item    `json:"pantry_staples"`
	FreshPriority      []Item    `json:"fresh_priority"`
	ShelfStable        []Item    `json:"shelf_stable"`
	TotalEstimatedCost *float64  `json:"total_estimated_cost"`
	GeneratedAt        time.Time `json:"generated_at"`
}

// Len reports the total number of items across all tiers.
func (l *ShoppingList) Len() int {
	return len(l.Essential) + len(l.PantryStaples) + len(l.FreshPriority) + len(l.ShelfStable)
}

// Preferences carries optional user customization. Cost estimation and richer
// recommendation hooks are collaborator concerns; today only the bulk-purchase
// suggestion is tunable.
type Preferences struct {
	DisableBulkNotes bool
}

// RunStats summarizes one Generate call for run accounting.
type RunStats struct {
	Recipes  int
	RawItems int
	Items    int
	Duration time.Duration
}

// Generate runs the full pipeline over a validated weekly plan. It is pure
// and synchronous: no I/O, and every call over the same plan yields the same
// list apart from the generation timestamp.
func Generate(p *plan.WeeklyPlan, prefs Preferences) (*ShoppingList, RunStats) {
	start := time.Now()

	records := ingredient.FromPlan(p)
	rawItems := len(records)

	for i := range records {
		records[i].Classify()
	}

	records = optimize.Consolidate(records, optimize.Options{
		DisableBulkNotes: prefs.DisableBulkNotes,
	})
	records = freshness.Prioritize(records)

	list := bucket(records)

	return list, RunStats{
		Recipes:  p.RecipeCount(),
		RawItems: rawItems,
		Items:    list.Len(),
		Duration: time.Since(start),
	}
}

// bucket places each consolidated record in exactly one tier, first match
// wins: category decides for essential and pantry staples, freshness decides
// the rest.
func bucket(records []ingredient.Record) *ShoppingList {
	list := &ShoppingList{GeneratedAt: time.Now().UTC()}

	for _, rec := range records {
		item := Item{
			Name:       rec.Name,
			Quantity:   rec.Quantity,
			Unit:       rec.Unit,
			Category:   rec.Category,
			Importance: rec.Importance,
			Recipes:    rec.Recipes,
			Notes:      strings.Join(rec.Notes, "; "),
		}

		switch {
		case rec.Category == classify.CategoryEssential:
			list.Essential = append(list.Essential, item)
		case rec.Category == classify.CategoryPantryStaples:
			list.PantryStaples = append(list.PantryStaples, item)
		case rec.FreshnessPriority == classify.FreshnessHigh:
			list.FreshPriority = append(list.FreshPriority, item)
		default:
			list.ShelfStable = append(list.ShelfStable, item)
		}
	}

	return list
}
