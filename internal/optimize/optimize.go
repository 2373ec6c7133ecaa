// Package optimize merges classified ingredient records that refer to the same
// underlying ingredient across recipes, converting compatible units and
// summing quantities exactly before a final display rounding.
package optimize

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"smart-shopping-cart/internal/ingredient"
)

// Options tunes optional merge behavior.
type Options struct {
	// DisableBulkNotes suppresses the "consider bulk purchase" suggestion.
	DisableBulkNotes bool
}

// bulkThreshold is the merged total above which a bulk purchase is suggested
// for bulk-relevant units.
var bulkThreshold = big.NewRat(5, 1)

var bulkUnits = map[string]struct{}{
	"cup": {}, "cups": {}, "pound": {}, "pounds": {},
}

// Consolidate groups records by normalized name and merges each multi-member
// group into a single record. Singleton groups (one record, one amount) pass
// through unchanged. Input order is preserved by first occurrence.
func Consolidate(records []ingredient.Record, opts Options) []ingredient.Record {
	var order []string
	groups := make(map[string][]ingredient.Record)

	for _, rec := range records {
		key := rec.NormalizedName
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rec)
	}

	out := make([]ingredient.Record, 0, len(order))
	for _, key := range order {
		group := groups[key]
		if len(group) == 1 && len(group[0].Amounts) <= 1 {
			out = append(out, group[0])
			continue
		}
		out = append(out, mergeGroup(key, group, opts))
	}
	return out
}

// mergeGroup combines every occurrence of one normalized name. The first
// successfully parsed amount's unit becomes the merge target; amounts in
// incompatible units contribute their raw value plus a mismatch note rather
// than aborting the merge.
func mergeGroup(name string, group []ingredient.Record, opts Options) ingredient.Record {
	merged := ingredient.Record{
		Name:              name,
		NormalizedName:    name,
		Category:          group[0].Category,
		Importance:        group[0].Importance,
		FreshnessPriority: group[0].FreshnessPriority,
	}

	type parsedAmount struct {
		value *big.Rat
		unit  string
	}
	var parsed []parsedAmount

	for _, rec := range group {
		merged.Recipes = append(merged.Recipes, rec.Recipes...)
		merged.Notes = append(merged.Notes, rec.Notes...)

		for _, a := range rec.Amounts {
			v, ok := parseQuantity(a.Quantity)
			if !ok {
				merged.Notes = append(merged.Notes,
					fmt.Sprintf("Could not parse quantity: %s", a.Quantity))
				continue
			}
			parsed = append(parsed, parsedAmount{value: v, unit: strings.TrimSpace(a.Unit)})
		}
	}

	if len(parsed) == 0 {
		merged.Quantity = "1"
		merged.Unit = group[0].Unit
		merged.Amounts = []ingredient.Amount{{Quantity: merged.Quantity, Unit: merged.Unit}}
		return merged
	}

	targetUnit := parsed[0].unit
	total := new(big.Rat)
	for _, a := range parsed {
		converted, ok := convert(a.value, a.unit, targetUnit)
		if !ok {
			// Incompatible measurement categories: keep the raw value.
			converted = a.value
			merged.Notes = append(merged.Notes,
				fmt.Sprintf("Could not convert %s %s to %s", formatRat(a.value), a.unit, targetUnit))
		}
		total.Add(total, converted)
	}

	merged.Quantity = formatRat(total)
	merged.Unit = targetUnit
	merged.Amounts = []ingredient.Amount{{Quantity: merged.Quantity, Unit: merged.Unit}}

	if !opts.DisableBulkNotes && total.Cmp(bulkThreshold) > 0 {
		if _, ok := bulkUnits[strings.ToLower(targetUnit)]; ok {
			merged.Notes = append(merged.Notes,
				fmt.Sprintf("Consider bulk purchase - total needed: %s %s", merged.Quantity, merged.Unit))
		}
	}

	return merged
}

// formatRat renders a rational for display, rounded to 2 decimal places for
// totals of at least one and 3 for smaller amounts, with trailing zeros
// trimmed.
func formatRat(r *big.Rat) string {
	f, _ := r.Float64()
	if r.Cmp(big.NewRat(1, 1)) >= 0 {
		f = math.Round(f*100) / 100
	} else {
		f = math.Round(f*1000) / 1000
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
