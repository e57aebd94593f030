package eatfood

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tables is every lookup table the tools read. It is built once and then
// shared read-only.
type Tables struct {
	Units             UnitTable      `yaml:"units"`
	Prices            PriceTable     `yaml:"prices"`
	DefaultPricePerKg float64        `yaml:"default_price_per_kg"`
	Categories        []Category     `yaml:"categories"`
	Foods             FoodTable      `yaml:"foods"`
	Reference         DailyReference `yaml:"reference"`
}

func DefaultTables() *Tables {
	return &Tables{
		Units:             DefaultUnitTable(),
		Prices:            DefaultPriceTable(),
		DefaultPricePerKg: DefaultPricePerKg,
		Categories:        DefaultCategories(),
		Foods:             DefaultFoodTable(),
		Reference:         DefaultDailyReference(),
	}
}

// LoadTables reads a YAML table file. Sections the file leaves out keep
// their built-in values; a section that is present replaces the default
// wholesale, so ordering stays exactly as written.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	return ParseTables(data)
}

func ParseTables(data []byte) (*Tables, error) {
	var raw Tables
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}

	t := DefaultTables()
	if raw.Units != nil {
		t.Units = raw.Units
	}
	if raw.Prices != nil {
		t.Prices = raw.Prices
	}
	if raw.DefaultPricePerKg > 0 {
		t.DefaultPricePerKg = raw.DefaultPricePerKg
	}
	if raw.Categories != nil {
		t.Categories = raw.Categories
	}
	if raw.Foods != nil {
		t.Foods = raw.Foods
	}
	if raw.Reference != (DailyReference{}) {
		t.Reference = raw.Reference
	}
	return t, t.Validate()
}

func (t *Tables) Validate() error {
	for unit, g := range t.Units {
		if g <= 0 {
			return fmt.Errorf("unit %q: grams per unit must be > 0", unit)
		}
	}
	for _, rule := range t.Prices {
		if rule.Key == "" {
			return fmt.Errorf("price rule with empty key")
		}
		if rule.PerKg < 0 {
			return fmt.Errorf("price for %q must be >= 0", rule.Key)
		}
	}
	for _, cat := range t.Categories {
		if cat.Label == "" {
			return fmt.Errorf("category with empty label")
		}
	}
	seen := make(map[string]bool, len(t.Foods))
	for _, f := range t.Foods {
		if f.Name == "" {
			return fmt.Errorf("food with empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("food %q listed twice", f.Name)
		}
		seen[f.Name] = true
	}
	if t.Reference.Calories <= 0 || t.Reference.Protein <= 0 || t.Reference.Fiber <= 0 {
		return fmt.Errorf("reference calories, protein and fiber must be > 0")
	}
	return nil
}

// Dump renders the tables in the format LoadTables reads.
func (t *Tables) Dump() ([]byte, error) {
	return yaml.Marshal(t)
}
