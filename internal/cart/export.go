package cart

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// tierView pairs a tier with its display texts, in the fixed render order.
type tierView struct {
	title       string
	display     string
	description string
	items       []Item
}

func (l *ShoppingList) tiers() []tierView {
	return []tierView{
		{"ESSENTIAL INGREDIENTS", "Essential", "Auto-added - core ingredients for your meals", l.Essential},
		{"PANTRY STAPLES", "Pantry Staples", "Optional - check if you already have these", l.PantryStaples},
		{"FRESH PRIORITY", "Fresh Priority", "Buy first - these expire quickly", l.FreshPriority},
		{"SHELF STABLE", "Shelf Stable", "Can wait - long shelf life", l.ShelfStable},
	}
}

// Render returns a human-readable shopping list with a fixed tier order,
// suitable for printing to a terminal.
func (l *ShoppingList) Render() string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "%s\nSMART SHOPPING LIST\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Generated: %s\n", l.GeneratedAt.Format(time.RFC3339))

	for _, tier := range l.tiers() {
		if len(tier.items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n   %s\n   %s\n", tier.title, tier.description, strings.Repeat("-", 60))

		for _, item := range tier.items {
			quantity := strings.TrimSpace(item.Quantity + " " + item.Unit)
			fmt.Fprintf(&b, "   * %s (%s)\n", item.Name, quantity)

			recipes := item.Recipes
			overflow := ""
			if len(recipes) > 2 {
				recipes = recipes[:2]
				overflow = "..."
			}
			fmt.Fprintf(&b, "     Used in: %s%s\n", strings.Join(recipes, ", "), overflow)
			if item.Notes != "" {
				fmt.Fprintf(&b, "     Note: %s\n", item.Notes)
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\nHappy shopping! Remember to check your pantry for staples.\n%s\n", rule, rule)
	return b.String()
}

// ExportJSON serializes the list as an indented structured document, each tier
// an array of item objects.
func (l *ShoppingList) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shopping list: %w", err)
	}
	return data, nil
}

// ExportCSV serializes the list as a delimited table with one row per item.
func (l *ShoppingList) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Category", "Name", "Quantity", "Unit", "Importance", "Recipes", "Notes"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, tier := range l.tiers() {
		for _, item := range tier.items {
			row := []string{
				tier.display,
				item.Name,
				item.Quantity,
				item.Unit,
				string(item.Importance),
				strings.Join(item.Recipes, "; "),
				item.Notes,
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteExport writes the list to a timestamped file under dir and returns the
// full path. Format is "json" or "csv".
func (l *ShoppingList) WriteExport(dir, format string) (string, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case "csv":
		data, err = l.ExportCSV()
	case "json", "":
		format = "json"
		data, err = l.ExportJSON()
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	filename := fmt.Sprintf("shopping_list_%s.%s", l.GeneratedAt.Format("20060102_150405"), format)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}
