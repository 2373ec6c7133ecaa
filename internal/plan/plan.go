package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoPlannedDays indicates a plan without a single recognizable day entry.
var ErrNoPlannedDays = errors.New("meal plan contains no recognizable day entries")

// Day identifies a day of the week in a meal plan.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days lists the week in plan order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// MealType identifies one of the three meal slots in a day.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// MealTypes lists the meal slots in serving order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner}

// Meal is a single planned recipe with its ingredient lines.
type Meal struct {
	Name        string   `json:"name" yaml:"name"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
}

// WeeklyPlan is a validated weekly meal plan. Absent days or meal slots simply
// contribute nothing to the shopping list.
type WeeklyPlan struct {
	days map[Day]map[MealType]Meal
}

// DayEntry mirrors the on-disk shape: {day: {meals: {mealType: {...}}}}.
type DayEntry struct {
	Meals map[string]Meal `json:"meals" yaml:"meals"`
}

// New builds a WeeklyPlan from the loosely-shaped wire mapping, keeping only
// recognized day and meal keys. Day matching is case-insensitive; meal keys are
// case-folded. Returns ErrNoPlannedDays when nothing recognizable remains.
func New(wire map[string]DayEntry) (*WeeklyPlan, error) {
	p := &WeeklyPlan{days: make(map[Day]map[MealType]Meal)}

	for rawDay, dayData := range wire {
		day, ok := parseDay(rawDay)
		if !ok {
			continue
		}
		for rawMeal, meal := range dayData.Meals {
			mealType, ok := parseMealType(rawMeal)
			if !ok {
				continue
			}
			if p.days[day] == nil {
				p.days[day] = make(map[MealType]Meal)
			}
			p.days[day][mealType] = meal
		}
	}

	if len(p.days) == 0 {
		return nil, ErrNoPlannedDays
	}
	return p, nil
}

// Load reads a weekly plan from a JSON or YAML file, chosen by extension.
func Load(path string) (*WeeklyPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read meal plan file: %w", err)
	}

	wire := make(map[string]DayEntry)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("failed to parse meal plan YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("failed to parse meal plan JSON: %w", err)
		}
	}

	p, err := New(wire)
	if err != nil {
		return nil, fmt.Errorf("invalid meal plan %s: %w", path, err)
	}
	return p, nil
}

// Meal returns the planned meal for a given slot, if present.
func (p *WeeklyPlan) Meal(day Day, mealType MealType) (Meal, bool) {
	meals, ok := p.days[day]
	if !ok {
		return Meal{}, false
	}
	m, ok := meals[mealType]
	return m, ok
}

// RecipeCount reports the number of planned meals across the week.
func (p *WeeklyPlan) RecipeCount() int {
	n := 0
	for _, meals := range p.days {
		n += len(meals)
	}
	return n
}

func parseDay(s string) (Day, bool) {
	for _, d := range Days {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}

func parseMealType(s string) (MealType, bool) {
	for _, m := range MealTypes {
		if strings.EqualFold(s, string(m)) {
			return m, true
		}
	}
	return "", false
}
