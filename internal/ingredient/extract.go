package ingredient

import (
	"fmt"
	"strings"

	"smart-shopping-cart/internal/plan"
)

// FromPlan walks a weekly plan in day/meal order and collects one record per
// distinct case-folded parsed name. This is only a coarse dedup: repeat
// occurrences append their provenance and amount to the existing record, and
// qualifier-aware merging with quantity arithmetic happens in the optimizer.
// Blank ingredient lines are dropped.
func FromPlan(p *plan.WeeklyPlan) []Record {
	var records []Record
	index := make(map[string]int)

	for _, day := range plan.Days {
		for _, mealType := range plan.MealTypes {
			meal, ok := p.Meal(day, mealType)
			if !ok {
				continue
			}
			source := fmt.Sprintf("%s %s: %s", day, mealType, meal.Name)

			for _, line := range meal.Ingredients {
				parsed := Parse(line)
				if parsed == nil {
					continue
				}

				key := strings.ToLower(strings.TrimSpace(parsed.Name))
				if i, seen := index[key]; seen {
					records[i].Recipes = append(records[i].Recipes, source)
					records[i].Amounts = append(records[i].Amounts, Amount{
						Quantity: parsed.Quantity,
						Unit:     parsed.Unit,
					})
					continue
				}

				index[key] = len(records)
				records = append(records, Record{
					Name:           parsed.Name,
					NormalizedName: Normalize(parsed.Name),
					Quantity:       parsed.Quantity,
					Unit:           parsed.Unit,
					Amounts:        []Amount{{Quantity: parsed.Quantity, Unit: parsed.Unit}},
					Recipes:        []string{source},
				})
			}
		}
	}

	return records
}
