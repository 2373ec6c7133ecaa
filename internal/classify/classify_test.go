package classify

import (
	"reflect"
	"testing"
)

func TestIngredient(t *testing.T) {
	t.Run("Category", func(t *testing.T) {
		tests := []struct {
			name string
			want Category
		}{
			{"chicken breast", CategoryEssential},
			{"onion", CategoryEssential},
			{"rice", CategoryEssential},
			{"olive oil", CategoryPantryStaples},
			{"salt", CategoryPantryStaples},
			{"soy sauce", CategoryPantryStaples},
			{"milk", CategoryFreshPriority},
			{"avocado", CategoryFreshPriority},
			{"canned chickpeas", CategoryShelfStable},
		}
		for _, tt := range tests {
			if got := Ingredient(tt.name).Category; got != tt.want {
				t.Errorf("Ingredient(%q).Category = %s, want %s", tt.name, got, tt.want)
			}
		}
	})

	t.Run("Importance", func(t *testing.T) {
		tests := []struct {
			name string
			want Importance
		}{
			{"flour", ImportanceCritical},
			{"chicken thighs", ImportanceCritical},
			{"butter", ImportanceImportant},
			{"lemon wedges for garnish", ImportanceOptional},
		}
		for _, tt := range tests {
			if got := Ingredient(tt.name).Importance; got != tt.want {
				t.Errorf("Ingredient(%q).Importance = %s, want %s", tt.name, got, tt.want)
			}
		}
	})

	t.Run("Freshness", func(t *testing.T) {
		tests := []struct {
			name string
			want Freshness
		}{
			{"milk", FreshnessHigh},
			{"ground beef", FreshnessHigh},
			{"eggs", FreshnessMedium},
			{"dried oregano", FreshnessLow},
		}
		for _, tt := range tests {
			if got := Ingredient(tt.name).FreshnessPriority; got != tt.want {
				t.Errorf("Ingredient(%q).FreshnessPriority = %s, want %s", tt.name, got, tt.want)
			}
		}
	})

	t.Run("ShelfLifeFollowsFreshness", func(t *testing.T) {
		tests := []struct {
			name string
			want int
		}{
			{"milk", 7},
			{"eggs", 14},
			{"rice", 90},
		}
		for _, tt := range tests {
			if got := Ingredient(tt.name).ShelfLifeDays; got != tt.want {
				t.Errorf("Ingredient(%q).ShelfLifeDays = %d, want %d", tt.name, got, tt.want)
			}
		}
	})

	t.Run("UnknownNameGetsDefaults", func(t *testing.T) {
		c := Ingredient("xylophone powder")
		if c.Category != CategoryEssential {
			t.Errorf("Expected default category essential, got %s", c.Category)
		}
		if c.Importance != ImportanceImportant {
			t.Errorf("Expected default importance important, got %s", c.Importance)
		}
		if c.FreshnessPriority != FreshnessMedium {
			t.Errorf("Expected default freshness medium, got %s", c.FreshnessPriority)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		for _, name := range []string{"milk", "olive oil", "xylophone powder", "Chicken Breast"} {
			first := Ingredient(name)
			second := Ingredient(name)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("Ingredient(%q) not idempotent: %+v vs %+v", name, first, second)
			}
		}
	})

	t.Run("CaseAndWhitespaceInsensitive", func(t *testing.T) {
		if Ingredient("  OLIVE OIL  ").Category != CategoryPantryStaples {
			t.Error("Expected upper-cased padded name to classify the same")
		}
	})
}

func TestSubstitutions(t *testing.T) {
	t.Run("KnownIngredient", func(t *testing.T) {
		subs := Ingredient("butter").Substitutions
		want := []string{"margarine", "coconut oil", "olive oil"}
		if !reflect.DeepEqual(subs, want) {
			t.Errorf("Expected %v, got %v", want, subs)
		}
	})

	t.Run("CappedAtThree", func(t *testing.T) {
		// "garlic butter" matches both butter and garlic entries.
		subs := Ingredient("garlic butter").Substitutions
		if len(subs) != 3 {
			t.Errorf("Expected at most 3 suggestions, got %d: %v", len(subs), subs)
		}
	})

	t.Run("UnknownIngredient", func(t *testing.T) {
		if subs := Ingredient("quail").Substitutions; len(subs) != 0 {
			t.Errorf("Expected no suggestions, got %v", subs)
		}
	})
}
