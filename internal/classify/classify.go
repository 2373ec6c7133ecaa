// Package classify tags ingredient names along three independent axes using
// ordered rule tables: shopping category, recipe importance and freshness
// priority. Classification is pure; the same name always yields the same tags.
package classify

import (
	"regexp"
	"strings"
)

// Category is the shopping-list tier an ingredient belongs to.
type Category string

const (
	CategoryEssential     Category = "essential"
	CategoryPantryStaples Category = "pantry_staples"
	CategoryFreshPriority Category = "fresh_priority"
	CategoryShelfStable   Category = "shelf_stable"
)

// Importance reflects how much a dish depends on the ingredient.
type Importance string

const (
	ImportanceCritical  Importance = "critical"
	ImportanceImportant Importance = "important"
	ImportanceOptional  Importance = "optional"
)

// Freshness is the spoilage priority of an ingredient.
type Freshness string

const (
	FreshnessHigh   Freshness = "high"
	FreshnessMedium Freshness = "medium"
	FreshnessLow    Freshness = "low"
)

// Classification is the full tag set for one ingredient name.
type Classification struct {
	Category          Category
	Importance        Importance
	FreshnessPriority Freshness
	ShelfLifeDays     int
	Substitutions     []string
}

// rule pairs a set of name patterns with the label they imply.
type rule[T any] struct {
	patterns []*regexp.Regexp
	label    T
}

// firstMatch evaluates rules top to bottom and returns the label of the first
// rule whose pattern matches, or fallback when none do.
func firstMatch[T any](name string, rules []rule[T], fallback T) T {
	for _, r := range rules {
		for _, p := range r.patterns {
			if p.MatchString(name) {
				return r.label
			}
		}
	}
	return fallback
}

func patterns(exprs ...string) []*regexp.Regexp {
	ps := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		ps[i] = regexp.MustCompile(e)
	}
	return ps
}

var categoryRules = []rule[Category]{
	{
		// Core proteins, main vegetables and grains make or break a dish.
		patterns: patterns(
			`\b(chicken|beef|pork|fish|salmon|tuna|shrimp|eggs|tofu|beans|lentils)\b`,
			`\bground\s+(beef|turkey|chicken|pork)\b`,
			`\bchicken\s+(breast|thigh|wing|drumstick)\b`,
			`\bbeef\s+(steak|roast|chuck|sirloin)\b`,
			`\b(onion|garlic|tomato|potato|carrot|celery|bell\s+pepper|mushroom)\b`,
			`\b(broccoli|cauliflower|spinach|lettuce|cabbage|zucchini)\b`,
			`\b(corn|peas|green\s+beans|asparagus|eggplant)\b`,
			`\b(rice|pasta|bread|flour|quinoa|barley|oats|noodles)\b`,
			`\b(spaghetti|penne|macaroni|linguine|fettuccine)\b`,
		),
		label: CategoryEssential,
	},
	{
		// Oils, spices, condiments and baking goods most kitchens already stock.
		patterns: patterns(
			`\b(olive\s+oil|vegetable\s+oil|butter|margarine|shortening)\b`,
			`\b(coconut\s+oil|sesame\s+oil|canola\s+oil)\b`,
			`\b(salt|pepper|garlic\s+powder|onion\s+powder|paprika)\b`,
			`\b(oregano|basil|thyme|rosemary|parsley|cilantro)\b`,
			`\b(cumin|coriander|chili\s+powder|cayenne|red\s+pepper)\b`,
			`\b(ginger|turmeric|curry\s+powder|bay\s+leaves)\b`,
			`\b(soy\s+sauce|vinegar|ketchup|mustard|mayonnaise)\b`,
			`\b(worcestershire|hot\s+sauce|barbecue\s+sauce)\b`,
			`\b(lemon\s+juice|lime\s+juice|balsamic\s+vinegar)\b`,
			`\b(sugar|brown\s+sugar|baking\s+powder|baking\s+soda)\b`,
			`\b(vanilla\s+extract|cocoa\s+powder|chocolate\s+chips)\b`,
		),
		label: CategoryPantryStaples,
	},
	{
		patterns: patterns(
			`\b(milk|cream|yogurt|cheese|butter)\b`,
			`\b(banana|apple|orange|lemon|lime|berries)\b`,
			`\b(avocado|lettuce|spinach|herbs|cilantro|parsley)\b`,
			`\bfresh\s+(basil|oregano|thyme|rosemary)\b`,
		),
		label: CategoryFreshPriority,
	},
	{
		patterns: patterns(
			`\b(canned|dried|frozen|jarred)\b`,
			`\b(pasta|rice|beans|lentils|nuts|seeds)\b`,
			`\b(flour|sugar|salt|spices)\b`,
			`\b(oil|vinegar|soy\s+sauce|hot\s+sauce)\b`,
		),
		label: CategoryShelfStable,
	},
}

var importanceRules = []rule[Importance]{
	{
		patterns: patterns(
			`\b(flour|eggs|yeast|baking\s+powder|baking\s+soda)\b`,
			`\b(rice|pasta|bread|tortillas)\b`,
			`\b(chicken|beef|pork|fish|tofu|beans)\b`,
			`\b(onion|garlic|tomato\s+sauce|broth|stock)\b`,
		),
		label: ImportanceCritical,
	},
	{
		patterns: patterns(
			`\b(cheese|butter|cream|milk)\b`,
			`\b(vegetables|herbs|spices)\b`,
			`\b(oil|vinegar|lemon\s+juice|lime\s+juice)\b`,
			`\b(salt|pepper|garlic\s+powder|onion\s+powder)\b`,
		),
		label: ImportanceImportant,
	},
	{
		patterns: patterns(
			`\b(garnish|topping|sprinkle)\b`,
			`\b(optional|for\s+garnish|for\s+serving)\b`,
			`\b(extra|additional|more)\b`,
		),
		label: ImportanceOptional,
	},
}

var freshnessRules = []rule[Freshness]{
	{
		patterns: patterns(
			`\b(milk|cream|yogurt|fresh\s+cheese|cottage\s+cheese)\b`,
			`\b(banana|berries|avocado|lettuce|spinach|cilantro|parsley)\b`,
			`\bfresh\s+(basil|oregano|thyme|rosemary|mint)\b`,
			`\bground\s+(beef|turkey|chicken|pork)\b`,
		),
		label: FreshnessHigh,
	},
	{
		patterns: patterns(
			`\b(eggs|hard\s+cheese|butter|apples|oranges|lemons|limes)\b`,
			`\b(carrots|celery|bell\s+peppers|onions|garlic)\b`,
			`\b(potatoes|sweet\s+potatoes|cabbage|broccoli|cauliflower)\b`,
		),
		label: FreshnessMedium,
	},
	{
		patterns: patterns(
			`\b(canned|dried|frozen|jarred|pickled)\b`,
			`\b(rice|pasta|flour|sugar|salt|spices)\b`,
			`\b(oil|vinegar|soy\s+sauce|hot\s+sauce|ketchup|mustard)\b`,
			`\b(nuts|seeds|beans|lentils|quinoa|barley|oats)\b`,
		),
		label: FreshnessLow,
	},
}

// shelfLifeByFreshness estimates shelf life in days from the freshness tag.
var shelfLifeByFreshness = map[Freshness]int{
	FreshnessHigh:   7,
	FreshnessMedium: 14,
	FreshnessLow:    90,
}

// substitution entries are matched by substring containment, in table order so
// results stay deterministic.
var substitutions = []struct {
	key  string
	subs []string
}{
	{"butter", []string{"margarine", "coconut oil", "olive oil"}},
	{"milk", []string{"almond milk", "soy milk", "oat milk"}},
	{"eggs", []string{"flax eggs", "applesauce", "banana"}},
	{"flour", []string{"almond flour", "coconut flour", "gluten-free flour"}},
	{"sugar", []string{"honey", "maple syrup", "stevia"}},
	{"oil", []string{"butter", "coconut oil", "avocado oil"}},
	{"onion", []string{"shallots", "leeks", "onion powder"}},
	{"garlic", []string{"garlic powder", "garlic salt"}},
	{"tomato", []string{"canned tomatoes", "tomato paste", "sun-dried tomatoes"}},
}

// Ingredient classifies an ingredient name. Unrecognized names fall back to
// essential / important / medium.
func Ingredient(name string) Classification {
	lower := strings.ToLower(strings.TrimSpace(name))

	freshness := firstMatch(lower, freshnessRules, FreshnessMedium)

	return Classification{
		Category:          firstMatch(lower, categoryRules, CategoryEssential),
		Importance:        firstMatch(lower, importanceRules, ImportanceImportant),
		FreshnessPriority: freshness,
		ShelfLifeDays:     shelfLifeByFreshness[freshness],
		Substitutions:     substitutionsFor(lower),
	}
}

// substitutionsFor returns up to three substitutes for a name.
func substitutionsFor(lower string) []string {
	var out []string
	for _, entry := range substitutions {
		if strings.Contains(lower, entry.key) {
			out = append(out, entry.subs...)
		}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
