package ingredient

import (
	"regexp"
	"strings"
)

// Parsed is the decomposition of a single ingredient line.
type Parsed struct {
	Quantity string
	Unit     string
	Name     string
}

// Quantity token shapes, tried in order: fraction, decimal, whole number.
var quantityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d+/\d+)\s+(.+)$`),
	regexp.MustCompile(`^(\d+\.\d+)\s+(.+)$`),
	regexp.MustCompile(`^(\d+)\s+(.+)$`),
}

// multiWordUnits must be checked before splitting on the first space, so that
// "1 fluid ounce vanilla" does not misparse the unit boundary. Longest first.
var multiWordUnits = []string{
	"fluid ounces",
	"fluid ounce",
	"fl oz",
}

// Parse decomposes an ingredient line into quantity, unit and name.
//
//	"2 cups flour"       -> {"2", "cups", "flour"}
//	"1/2 teaspoon salt"  -> {"1/2", "teaspoon", "salt"}
//	"salt"               -> {"1", "", "salt"}
//
// Every non-blank line parses: without a leading quantity and unit the whole
// line becomes the name with quantity defaulted to 1. Returns nil only for
// empty or whitespace input.
func Parse(text string) *Parsed {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	for _, p := range quantityPatterns {
		m := p.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		unit, name, ok := splitUnit(m[2])
		if !ok {
			// A quantity with no room for unit + name ("2 eggs") is
			// treated as a bare name below.
			break
		}
		return &Parsed{Quantity: m[1], Unit: unit, Name: name}
	}

	return &Parsed{Quantity: "1", Unit: "", Name: trimmed}
}

// splitUnit separates the leading unit token from the ingredient name,
// preferring multi-word units from the vocabulary.
func splitUnit(rest string) (unit, name string, ok bool) {
	lower := strings.ToLower(rest)
	for _, u := range multiWordUnits {
		if strings.HasPrefix(lower, u+" ") {
			return rest[:len(u)], strings.TrimSpace(rest[len(u)+1:]), true
		}
	}

	i := strings.IndexByte(rest, ' ')
	if i < 0 {
		return "", "", false
	}
	return rest[:i], strings.TrimSpace(rest[i+1:]), true
}
