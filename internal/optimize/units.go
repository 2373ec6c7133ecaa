package optimize

import (
	"math/big"
	"strings"
)

// unitSynonyms resolves spelling variants to one canonical unit name. Lookup
// tables below are keyed only by canonical names; resolution happens once per
// lookup.
var unitSynonyms = map[string]string{
	"cup": "cup", "cups": "cup", "c": "cup",
	"tablespoon": "tablespoon", "tablespoons": "tablespoon", "tbsp": "tablespoon",
	"teaspoon": "teaspoon", "teaspoons": "teaspoon", "tsp": "teaspoon",
	"pint": "pint", "pints": "pint", "pt": "pint",
	"quart": "quart", "quarts": "quart", "qt": "quart",
	"gallon": "gallon", "gallons": "gallon", "gal": "gallon",
	"fluid ounce": "fluid ounce", "fluid ounces": "fluid ounce", "fl oz": "fluid ounce",
	"milliliter": "milliliter", "milliliters": "milliliter", "ml": "milliliter",
	"liter": "liter", "liters": "liter", "l": "liter",

	"pound": "pound", "pounds": "pound", "lb": "pound", "lbs": "pound",
	"ounce": "ounce", "ounces": "ounce", "oz": "ounce",
	"gram": "gram", "grams": "gram", "g": "gram",
	"kilogram": "kilogram", "kilograms": "kilogram", "kg": "kilogram",
}

// volumeToCups maps canonical volume units to their size in cups.
var volumeToCups = map[string]*big.Rat{
	"cup":         big.NewRat(1, 1),
	"tablespoon":  big.NewRat(1, 16),
	"teaspoon":    big.NewRat(1, 48),
	"pint":        big.NewRat(2, 1),
	"quart":       big.NewRat(4, 1),
	"gallon":      big.NewRat(16, 1),
	"fluid ounce": big.NewRat(1, 8),
	"milliliter":  big.NewRat(1000, 236588), // 236.588 ml per cup
	"liter":       big.NewRat(4227, 1000),
}

// weightToPounds maps canonical weight units to their size in pounds.
var weightToPounds = map[string]*big.Rat{
	"pound":    big.NewRat(1, 1),
	"ounce":    big.NewRat(1, 16),
	"gram":     big.NewRat(1000, 453592), // 453.592 g per pound
	"kilogram": big.NewRat(2205, 1000),
}

// countUnits pass through 1:1; "2 cloves" plus "3 cloves" is just 5.
var countUnits = map[string]struct{}{
	"piece": {}, "pieces": {}, "item": {}, "items": {}, "whole": {}, "each": {}, "ea": {},
	"clove": {}, "cloves": {}, "head": {}, "heads": {}, "bunch": {}, "bunches": {},
	"can": {}, "cans": {}, "jar": {}, "jars": {}, "bottle": {}, "bottles": {},
	"package": {}, "packages": {}, "pkg": {}, "bag": {}, "bags": {}, "slice": {}, "slices": {},
}

func canonicalUnit(unit string) (string, bool) {
	c, ok := unitSynonyms[strings.ToLower(strings.TrimSpace(unit))]
	return c, ok
}

func isCountUnit(unit string) bool {
	_, ok := countUnits[strings.ToLower(strings.TrimSpace(unit))]
	return ok
}

// convert translates quantity from one unit to another within a single
// measurement category. Cross-category conversion (volume to weight, or either
// to a count) returns false; the caller keeps the raw value and records a note.
func convert(quantity *big.Rat, fromUnit, toUnit string) (*big.Rat, bool) {
	if strings.EqualFold(strings.TrimSpace(fromUnit), strings.TrimSpace(toUnit)) {
		return quantity, true
	}

	from, okFrom := canonicalUnit(fromUnit)
	to, okTo := canonicalUnit(toUnit)
	if okFrom && okTo {
		if from == to {
			return quantity, true
		}
		if f, ok := volumeToCups[from]; ok {
			if t, ok := volumeToCups[to]; ok {
				out := new(big.Rat).Mul(quantity, f)
				return out.Quo(out, t), true
			}
		}
		if f, ok := weightToPounds[from]; ok {
			if t, ok := weightToPounds[to]; ok {
				out := new(big.Rat).Mul(quantity, f)
				return out.Quo(out, t), true
			}
		}
		return nil, false
	}

	if isCountUnit(fromUnit) && isCountUnit(toUnit) {
		return quantity, true
	}

	return nil, false
}

// parseQuantity reads a quantity string as an exact rational. Accepts whole
// numbers ("2"), decimals ("1.5"), fractions ("1/2") and mixed numbers
// ("2 1/2").
func parseQuantity(s string) (*big.Rat, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	if whole, frac, ok := strings.Cut(s, " "); ok && strings.Contains(frac, "/") {
		w, okW := new(big.Rat).SetString(whole)
		f, okF := new(big.Rat).SetString(strings.TrimSpace(frac))
		if !okW || !okF || w.Sign() < 0 || f.Sign() < 0 {
			return nil, false
		}
		return w.Add(w, f), true
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok || r.Sign() < 0 {
		return nil, false
	}
	return r, true
}
