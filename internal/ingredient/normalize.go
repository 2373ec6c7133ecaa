package ingredient

import (
	"regexp"
	"strings"
)

// Descriptive qualifiers stripped for cross-recipe grouping. "extra virgin
// olive oil" and "olive oil" must land in the same merge group.
var qualifiers = []string{
	"extra virgin", "virgin", "pure", "organic", "fresh", "dried",
	"ground", "chopped", "diced", "sliced", "minced", "grated",
	"yellow", "white", "red", "green", "brown", "black",
	"all-purpose", "bread", "cake", "pastry", "self-rising",
	"unsalted", "salted", "sweet", "unsweetened",
	"low-fat", "fat-free", "reduced-fat", "whole", "skim",
	"large", "medium", "small", "jumbo", "baby",
}

var (
	qualifierPattern  = regexp.MustCompile(`\b(` + strings.Join(qualifiers, "|") + `)\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize derives the merge key for an ingredient name: lower-cased, with
// descriptive qualifiers removed as whole words and whitespace collapsed.
// Never empty for non-empty input; a name made up entirely of qualifiers
// (e.g. "fresh") keeps its lower-cased form. Normalizing an already-normalized
// name returns it unchanged.
func Normalize(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	stripped := qualifierPattern.ReplaceAllString(lower, "")
	stripped = strings.TrimSpace(whitespacePattern.ReplaceAllString(stripped, " "))
	if stripped == "" {
		return lower
	}
	return stripped
}
