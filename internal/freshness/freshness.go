// Package freshness estimates how quickly ingredients spoil, attaches storage
// guidance, and orders a shopping list so perishables surface first.
package freshness

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"smart-shopping-cart/internal/classify"
	"smart-shopping-cart/internal/ingredient"
)

// Info is the freshness assessment for one ingredient name.
type Info struct {
	ShelfLifeDays  int
	Priority       classify.Freshness
	StorageTips    []string
	WarningMessage string
}

type tier struct {
	priority      classify.Freshness
	shelfLifeDays int
	warning       string
	patterns      []*regexp.Regexp
}

func compile(exprs ...string) []*regexp.Regexp {
	ps := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		ps[i] = regexp.MustCompile(e)
	}
	return ps
}

// Tiers are evaluated in order; the first matching pattern decides.
var tiers = []tier{
	{
		priority:      classify.FreshnessHigh,
		shelfLifeDays: 3,
		warning:       "Buy last - expires quickly!",
		patterns: compile(
			`\b(milk|cream|yogurt|fresh\s+cheese|cottage\s+cheese|ricotta)\b`,
			`\b(banana|berries|avocado|lettuce|spinach|arugula|watercress)\b`,
			`\bfresh\s+(basil|oregano|thyme|rosemary|mint|cilantro|parsley)\b`,
			`\bground\s+(beef|turkey|chicken|pork|lamb)\b`,
			`\bfresh\s+(fish|salmon|tuna|cod|shrimp|scallops)\b`,
			`\b(soft\s+cheese|brie|camembert|goat\s+cheese)\b`,
		),
	},
	{
		priority:      classify.FreshnessMedium,
		shelfLifeDays: 10,
		warning:       "Use within 1-2 weeks",
		patterns: compile(
			`\b(eggs|hard\s+cheese|cheddar|swiss|parmesan|butter)\b`,
			`\b(apples|oranges|lemons|limes|grapefruit|pears)\b`,
			`\b(carrots|celery|bell\s+peppers|cucumber|zucchini)\b`,
			`\b(onions|garlic|ginger|potatoes|sweet\s+potatoes)\b`,
			`\b(cabbage|broccoli|cauliflower|brussels\s+sprouts)\b`,
			`\bwhole\s+(chicken|beef|pork|fish)\b`,
			`\b(bacon|sausage|deli\s+meat)\b`,
		),
	},
	{
		priority:      classify.FreshnessLow,
		shelfLifeDays: 60,
		patterns: compile(
			`\b(canned|dried|frozen|jarred|pickled)\b`,
			`\b(rice|pasta|flour|sugar|salt|spices)\b`,
			`\b(oil|vinegar|soy\s+sauce|hot\s+sauce|ketchup|mustard)\b`,
			`\b(nuts|seeds|beans|lentils|quinoa|barley|oats)\b`,
			`\b(honey|maple\s+syrup|molasses|jam|jelly)\b`,
			`\b(bread|tortillas|crackers|cookies)\b`,
		),
	},
}

// Storage tips are matched independently of the freshness tier, by ingredient
// family.
var storageTips = []struct {
	keywords []string
	tips     []string
}{
	{
		keywords: []string{"milk", "cream", "yogurt", "cheese", "butter"},
		tips: []string{
			"Store in refrigerator at 40°F or below",
			"Keep in original packaging when possible",
			"Use within 3-7 days of opening",
		},
	},
	{
		keywords: []string{"apple", "orange", "lemon", "carrot", "celery", "onion", "garlic"},
		tips: []string{
			"Store in refrigerator crisper drawer",
			"Keep fruits and vegetables separate",
			"Remove any damaged or spoiled pieces",
		},
	},
	{
		keywords: []string{"basil", "oregano", "thyme", "rosemary", "cilantro", "parsley"},
		tips: []string{
			"Store fresh herbs in water like flowers",
			"Cover loosely with plastic bag",
			"Change water every 2-3 days",
		},
	},
	{
		keywords: []string{"chicken", "beef", "pork", "fish", "meat"},
		tips: []string{
			"Store in refrigerator at 40°F or below",
			"Use within 1-2 days of purchase",
			"Freeze if not using within 2 days",
		},
	},
	{
		// pantry default
		keywords: nil,
		tips: []string{
			"Store in cool, dry place",
			"Keep in airtight containers",
			"Check expiration dates regularly",
		},
	},
}

// Analyze assesses one ingredient name. Names matching no tier default to a
// 14-day shelf life with a reminder to check the expiration date.
func Analyze(name string) Info {
	lower := strings.ToLower(strings.TrimSpace(name))

	for _, t := range tiers {
		for _, p := range t.patterns {
			if p.MatchString(lower) {
				return Info{
					ShelfLifeDays:  t.shelfLifeDays,
					Priority:       t.priority,
					StorageTips:    tipsFor(lower),
					WarningMessage: t.warning,
				}
			}
		}
	}

	return Info{
		ShelfLifeDays:  14,
		Priority:       classify.FreshnessMedium,
		StorageTips:    tipsFor(lower),
		WarningMessage: "Check expiration date",
	}
}

func tipsFor(lower string) []string {
	for _, entry := range storageTips {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.tips
			}
		}
	}
	return storageTips[len(storageTips)-1].tips
}

// priorityOrder places high before medium before low when sorting.
var priorityOrder = map[classify.Freshness]int{
	classify.FreshnessHigh:   0,
	classify.FreshnessMedium: 1,
	classify.FreshnessLow:    2,
}

// Prioritize enriches each consolidated record with its freshness assessment
// and returns the collection sorted by priority, perishables first. The sort
// is stable: records with equal priority keep their prior order. The
// analyzer's priority is authoritative on the record; when it disagrees with
// the classifier's earlier tag, the change is kept visible as a note.
func Prioritize(records []ingredient.Record) []ingredient.Record {
	out := make([]ingredient.Record, len(records))
	for i, rec := range records {
		info := Analyze(rec.Name)

		if rec.FreshnessPriority != "" && rec.FreshnessPriority != info.Priority {
			rec.Notes = append(rec.Notes,
				fmt.Sprintf("Freshness reassessed from %s to %s", rec.FreshnessPriority, info.Priority))
		}
		rec.FreshnessPriority = info.Priority
		rec.ShelfLifeDays = info.ShelfLifeDays
		rec.StorageTips = info.StorageTips
		rec.WarningMessage = info.WarningMessage
		out[i] = rec
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityOrder[out[i].FreshnessPriority] < priorityOrder[out[j].FreshnessPriority]
	})
	return out
}
