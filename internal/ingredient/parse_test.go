package ingredient

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		quantity string
		unit     string
		name     string
	}{
		{"2 cups flour", "2", "cups", "flour"},
		{"1/2 teaspoon salt", "1/2", "teaspoon", "salt"},
		{"1.5 cups milk", "1.5", "cups", "milk"},
		{"1 large onion", "1", "large", "onion"},
		{"2 fluid ounces vanilla extract", "2", "fluid ounces", "vanilla extract"},
		{"3 tablespoons olive oil", "3", "tablespoons", "olive oil"},
		{"salt", "1", "", "salt"},
		{"fresh ground pepper", "1", "", "fresh ground pepper"},
		// A number with no room for both unit and name is a bare name.
		{"2 eggs", "1", "", "2 eggs"},
		{"  1 cup rice  ", "1", "cup", "rice"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Parse(tt.input)
			if got == nil {
				t.Fatalf("Parse(%q) returned nil", tt.input)
			}
			if got.Quantity != tt.quantity || got.Unit != tt.unit || got.Name != tt.name {
				t.Errorf("Parse(%q) = {%q %q %q}, want {%q %q %q}",
					tt.input, got.Quantity, got.Unit, got.Name, tt.quantity, tt.unit, tt.name)
			}
		})
	}

	t.Run("BlankInput", func(t *testing.T) {
		if got := Parse(""); got != nil {
			t.Errorf("Parse(\"\") = %+v, want nil", got)
		}
		if got := Parse("   "); got != nil {
			t.Errorf("Parse(whitespace) = %+v, want nil", got)
		}
	})
}
