package eatfood

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	Name        string   `yaml:"name"`
	Ingredients []string `yaml:"ingredients"`
}

// ShoppingList accumulates grams per ingredient name. Totals do not depend
// on the order of Add calls; Names reports first-seen order.
type ShoppingList struct {
	grams map[string]float64
	order []string
}

func NewShoppingList() *ShoppingList {
	return &ShoppingList{
		grams: make(map[string]float64),
	}
}

func (sl *ShoppingList) Add(name string, grams float64) {
	if _, ok := sl.grams[name]; !ok {
		sl.order = append(sl.order, name)
	}
	sl.grams[name] += grams
}

func (sl *ShoppingList) Grams(name string) float64 {
	return sl.grams[name]
}

func (sl *ShoppingList) Names() []string {
	return append([]string(nil), sl.order...)
}

func (sl *ShoppingList) Len() int {
	return len(sl.order)
}

// Totals returns a copy of the per-name totals.
func (sl *ShoppingList) Totals() map[string]float64 {
	totals := make(map[string]float64, len(sl.grams))
	for name, g := range sl.grams {
		totals[name] = g
	}
	return totals
}

type ShoppingItem struct {
	Name     string
	Grams    float64
	Cost     float64
	Display  string
	Category string
}

type CategoryTotal struct {
	Label   string
	Items   []ShoppingItem
	Cost    float64
	Percent float64
}

type ShoppingResult struct {
	ID         string
	CreatedAt  time.Time
	Recipes    []Recipe
	Items      []ShoppingItem
	Categories []CategoryTotal
	TotalCost  float64
}

// Generator runs the whole shopping-list pipeline over a set of recipes.
type Generator struct {
	Parser      *IngredientParser
	Estimator   *PriceEstimator
	Formatter   *UnitFormatter
	Categorizer *Categorizer

	now func() time.Time
}

func NewGenerator(t *Tables) *Generator {
	return &Generator{
		Parser:      NewIngredientParser(t.Units),
		Estimator:   NewPriceEstimator(t.Prices, t.DefaultPricePerKg),
		Formatter:   NewUnitFormatter(),
		Categorizer: NewCategorizer(t.Categories),
		now:         time.Now,
	}
}

// Collect parses every ingredient line of every recipe into one list.
// Blank lines are ignored.
func (g *Generator) Collect(recipes []Recipe) *ShoppingList {
	list := NewShoppingList()
	for _, recipe := range recipes {
		for _, line := range recipe.Ingredients {
			ing := g.Parser.Parse(line)
			if ing.Name == "" {
				continue
			}
			list.Add(ing.Name, ing.Grams)
		}
	}
	return list
}

func (g *Generator) Generate(recipes []Recipe) ShoppingResult {
	return g.Price(recipes, g.Collect(recipes))
}

// Price categorizes, prices and formats an accumulated list.
func (g *Generator) Price(recipes []Recipe, list *ShoppingList) ShoppingResult {
	res := ShoppingResult{
		ID:        uuid.New().String(),
		CreatedAt: g.now(),
		Recipes:   recipes,
	}

	for _, group := range g.Categorizer.Categorize(list) {
		ct := CategoryTotal{Label: group.Label}
		for _, name := range group.Names {
			grams := list.Grams(name)
			item := ShoppingItem{
				Name:     name,
				Grams:    grams,
				Cost:     g.Estimator.Estimate(name, grams),
				Display:  g.Formatter.Format(grams, name),
				Category: group.Label,
			}
			ct.Items = append(ct.Items, item)
			ct.Cost += item.Cost
			res.Items = append(res.Items, item)
		}
		res.TotalCost += ct.Cost
		res.Categories = append(res.Categories, ct)
	}

	for i := range res.Categories {
		res.Categories[i].Percent = Percent(res.Categories[i].Cost, res.TotalCost)
	}
	return res
}
