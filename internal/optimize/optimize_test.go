package optimize

import (
	"math/big"
	"reflect"
	"testing"

	"smart-shopping-cart/internal/ingredient"
)

func record(name string, amounts []ingredient.Amount, recipes ...string) ingredient.Record {
	rec := ingredient.Record{
		Name:           name,
		NormalizedName: name,
		Amounts:        amounts,
		Recipes:        recipes,
	}
	if len(amounts) > 0 {
		rec.Quantity = amounts[0].Quantity
		rec.Unit = amounts[0].Unit
	}
	return rec
}

func TestConsolidate(t *testing.T) {
	t.Run("MergesSameUnitAmounts", func(t *testing.T) {
		records := []ingredient.Record{
			record("flour", []ingredient.Amount{{Quantity: "1", Unit: "cup"}}, "Pancakes"),
			record("flour", []ingredient.Amount{{Quantity: "0.5", Unit: "cup"}}, "Bread"),
		}

		out := Consolidate(records, Options{})
		if len(out) != 1 {
			t.Fatalf("Expected 1 merged record, got %d", len(out))
		}
		if out[0].Quantity != "1.5" || out[0].Unit != "cup" {
			t.Errorf("Expected 1.5 cup, got %s %s", out[0].Quantity, out[0].Unit)
		}
		if !reflect.DeepEqual(out[0].Recipes, []string{"Pancakes", "Bread"}) {
			t.Errorf("Expected both recipes retained, got %v", out[0].Recipes)
		}
	})

	t.Run("ConvertsCompatibleVolumeUnits", func(t *testing.T) {
		records := []ingredient.Record{
			record("butter", []ingredient.Amount{{Quantity: "2", Unit: "tablespoons"}}, "Toast"),
			record("butter", []ingredient.Amount{{Quantity: "2", Unit: "cups"}}, "Cake"),
		}

		out := Consolidate(records, Options{})
		if len(out) != 1 {
			t.Fatalf("Expected 1 merged record, got %d", len(out))
		}
		// 2 cups is 32 tablespoons; target unit comes from the first amount.
		if out[0].Quantity != "34" || out[0].Unit != "tablespoons" {
			t.Errorf("Expected 34 tablespoons, got %s %s", out[0].Quantity, out[0].Unit)
		}
		if len(out[0].Notes) != 0 {
			t.Errorf("Expected no notes for a clean conversion, got %v", out[0].Notes)
		}
	})

	t.Run("IncompatibleUnitsAddRawValueWithNote", func(t *testing.T) {
		records := []ingredient.Record{
			record("sugar", []ingredient.Amount{{Quantity: "1", Unit: "cup"}}, "Cake"),
			record("sugar", []ingredient.Amount{{Quantity: "1", Unit: "pound"}}, "Jam"),
		}

		out := Consolidate(records, Options{})
		if len(out) != 1 {
			t.Fatalf("Expected 1 merged record, got %d", len(out))
		}
		if out[0].Quantity != "2" || out[0].Unit != "cup" {
			t.Errorf("Expected raw-summed 2 cup, got %s %s", out[0].Quantity, out[0].Unit)
		}
		want := "Could not convert 1 pound to cup"
		if len(out[0].Notes) != 1 || out[0].Notes[0] != want {
			t.Errorf("Expected note %q, got %v", want, out[0].Notes)
		}
	})

	t.Run("UnparsableQuantityDegradesToNote", func(t *testing.T) {
		records := []ingredient.Record{
			record("salt", []ingredient.Amount{{Quantity: "a pinch", Unit: ""}}, "Soup"),
			record("salt", []ingredient.Amount{{Quantity: "1", Unit: "teaspoon"}}, "Stew"),
		}

		out := Consolidate(records, Options{})
		if len(out) != 1 {
			t.Fatalf("Expected 1 merged record, got %d", len(out))
		}
		if out[0].Quantity != "1" || out[0].Unit != "teaspoon" {
			t.Errorf("Expected 1 teaspoon from the parsable amount, got %s %s", out[0].Quantity, out[0].Unit)
		}
		want := "Could not parse quantity: a pinch"
		if len(out[0].Notes) != 1 || out[0].Notes[0] != want {
			t.Errorf("Expected note %q, got %v", want, out[0].Notes)
		}
	})

	t.Run("AllUnparsableFallsBackToOne", func(t *testing.T) {
		records := []ingredient.Record{
			record("pepper", []ingredient.Amount{{Quantity: "to taste", Unit: ""}}, "Soup"),
			record("pepper", []ingredient.Amount{{Quantity: "a dash", Unit: ""}}, "Stew"),
		}

		out := Consolidate(records, Options{})
		if len(out) != 1 {
			t.Fatalf("Expected 1 merged record, got %d", len(out))
		}
		if out[0].Quantity != "1" {
			t.Errorf("Expected fallback quantity 1, got %s", out[0].Quantity)
		}
		if len(out[0].Notes) != 2 {
			t.Errorf("Expected a note per unparsable amount, got %v", out[0].Notes)
		}
	})

	t.Run("BulkNoteAboveThreshold", func(t *testing.T) {
		records := []ingredient.Record{
			record("flour", []ingredient.Amount{{Quantity: "3", Unit: "cups"}}, "Bread"),
			record("flour", []ingredient.Amount{{Quantity: "3", Unit: "cups"}}, "Pizza"),
		}

		out := Consolidate(records, Options{})
		want := "Consider bulk purchase - total needed: 6 cups"
		if len(out[0].Notes) != 1 || out[0].Notes[0] != want {
			t.Errorf("Expected note %q, got %v", want, out[0].Notes)
		}
	})

	t.Run("BulkNoteSuppressed", func(t *testing.T) {
		records := []ingredient.Record{
			record("flour", []ingredient.Amount{{Quantity: "3", Unit: "cups"}}, "Bread"),
			record("flour", []ingredient.Amount{{Quantity: "3", Unit: "cups"}}, "Pizza"),
		}

		out := Consolidate(records, Options{DisableBulkNotes: true})
		if len(out[0].Notes) != 0 {
			t.Errorf("Expected no notes with bulk suggestions disabled, got %v", out[0].Notes)
		}
	})

	t.Run("NoBulkNoteForCountUnits", func(t *testing.T) {
		records := []ingredient.Record{
			record("eggs", []ingredient.Amount{{Quantity: "6", Unit: "pieces"}}, "Omelette"),
			record("eggs", []ingredient.Amount{{Quantity: "4", Unit: "pieces"}}, "Cake"),
		}

		out := Consolidate(records, Options{})
		if out[0].Quantity != "10" {
			t.Errorf("Expected 10 pieces, got %s", out[0].Quantity)
		}
		if len(out[0].Notes) != 0 {
			t.Errorf("Expected no bulk note for count units, got %v", out[0].Notes)
		}
	})

	t.Run("SingletonPassesThrough", func(t *testing.T) {
		rec := record("vanilla extract", []ingredient.Amount{{Quantity: "1", Unit: "teaspoon"}}, "Cookies")
		out := Consolidate([]ingredient.Record{rec}, Options{})
		if len(out) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(out))
		}
		if !reflect.DeepEqual(out[0], rec) {
			t.Errorf("Expected untouched record, got %+v", out[0])
		}
	})

	t.Run("SmallTotalsKeepThreeDecimals", func(t *testing.T) {
		records := []ingredient.Record{
			record("nutmeg", []ingredient.Amount{{Quantity: "1/3", Unit: "teaspoon"}}, "Pie"),
			record("nutmeg", []ingredient.Amount{{Quantity: "1/3", Unit: "teaspoon"}}, "Latte"),
		}

		out := Consolidate(records, Options{})
		if out[0].Quantity != "0.667" {
			t.Errorf("Expected 0.667, got %s", out[0].Quantity)
		}
	})

	t.Run("TotalIndependentOfOrder", func(t *testing.T) {
		a := record("flour", []ingredient.Amount{{Quantity: "1", Unit: "cup"}}, "Pancakes")
		b := record("flour", []ingredient.Amount{{Quantity: "0.5", Unit: "cup"}}, "Bread")
		c := record("flour", []ingredient.Amount{{Quantity: "1/4", Unit: "cup"}}, "Roux")

		orders := [][]ingredient.Record{
			{a, b, c},
			{c, b, a},
			{b, c, a},
		}
		for _, in := range orders {
			out := Consolidate(in, Options{})
			if out[0].Quantity != "1.75" {
				t.Errorf("Merge total depends on order: got %s for %v", out[0].Quantity, in)
			}
		}
	})

	t.Run("PreservesFirstSeenOrder", func(t *testing.T) {
		records := []ingredient.Record{
			record("milk", []ingredient.Amount{{Quantity: "1", Unit: "cup"}}, "Cereal"),
			record("flour", []ingredient.Amount{{Quantity: "1", Unit: "cup"}}, "Bread"),
			record("milk", []ingredient.Amount{{Quantity: "2", Unit: "cups"}}, "Pancakes"),
		}

		out := Consolidate(records, Options{})
		if len(out) != 2 || out[0].NormalizedName != "milk" || out[1].NormalizedName != "flour" {
			t.Errorf("Expected milk then flour, got %+v", out)
		}
	})
}

func TestConvert(t *testing.T) {
	tests := []struct {
		quantity string
		from, to string
		want     string
		ok       bool
	}{
		{"2", "cups", "tablespoons", "32", true},
		{"16", "ounces", "pound", "1", true},
		{"1", "quart", "cups", "4", true},
		{"1", "kg", "grams", "1000.17", true}, // round-trips through pounds
		{"3", "cloves", "clove", "3", true},
		{"1", "cup", "pound", "", false},
		{"1", "cup", "pieces", "", false},
		{"1", "smidgen", "cup", "", false},
	}

	for _, tt := range tests {
		q, _ := new(big.Rat).SetString(tt.quantity)
		got, ok := convert(q, tt.from, tt.to)
		if ok != tt.ok {
			t.Errorf("convert(%s, %s, %s) ok = %v, want %v", tt.quantity, tt.from, tt.to, ok, tt.ok)
			continue
		}
		if ok && formatRat(got) != tt.want {
			t.Errorf("convert(%s, %s, %s) = %s, want %s", tt.quantity, tt.from, tt.to, formatRat(got), tt.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2", "2", true},
		{"1.5", "1.5", true},
		{"1/2", "0.5", true},
		{"2 1/2", "2.5", true},
		{" 3 ", "3", true},
		{"", "", false},
		{"abc", "", false},
		{"-1", "", false},
		{"-1 1/2", "", false},
	}

	for _, tt := range tests {
		got, ok := parseQuantity(tt.in)
		if ok != tt.ok {
			t.Errorf("parseQuantity(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && formatRat(got) != tt.want {
			t.Errorf("parseQuantity(%q) = %s, want %s", tt.in, formatRat(got), tt.want)
		}
	}
}
