package eatfoodmsgpack

import (
	"eatfood"
	"time"
)

type Recipe struct {
	Name        string   `msgpack:"name,omitempty"`
	Ingredients []string `msgpack:"ingredients,omitempty"`
}

type ShoppingItem struct {
	Name     string  `msgpack:"name,omitempty"`
	Grams    float64 `msgpack:"grams,omitempty"`
	Cost     float64 `msgpack:"cost,omitempty"`
	Display  string  `msgpack:"display,omitempty"`
	Category string  `msgpack:"category,omitempty"`
}

type CategoryTotal struct {
	Label   string   `msgpack:"label,omitempty"`
	Names   []string `msgpack:"names,omitempty"`
	Cost    float64  `msgpack:"cost,omitempty"`
	Percent float64  `msgpack:"percent,omitempty"`
}

type ShoppingRun struct {
	UUID       string          `msgpack:"uuid,omitempty"`
	DatetimeMs int64           `msgpack:"date,omitempty"`
	Recipes    []Recipe        `msgpack:"recipes,omitempty"`
	Items      []ShoppingItem  `msgpack:"items,omitempty"`
	Categories []CategoryTotal `msgpack:"categories,omitempty"`
	TotalCost  float64         `msgpack:"total_cost,omitempty"`
}

type Nutrients struct {
	Calories float64 `msgpack:"kcal,omitempty"`
	Protein  float64 `msgpack:"protein,omitempty"`
	Fat      float64 `msgpack:"fat,omitempty"`
	Carbs    float64 `msgpack:"carbs,omitempty"`
	Fiber    float64 `msgpack:"fiber,omitempty"`
	Calcium  float64 `msgpack:"calcium,omitempty"`
	Iron     float64 `msgpack:"iron,omitempty"`
	VitaminC float64 `msgpack:"vitamin_c,omitempty"`
}

type FoodLine struct {
	Name      string    `msgpack:"name,omitempty"`
	Grams     float64   `msgpack:"grams,omitempty"`
	Nutrients Nutrients `msgpack:"nutrients,omitempty"`
}

type MealRecord struct {
	UUID       string     `msgpack:"uuid,omitempty"`
	DatetimeMs int64      `msgpack:"date,omitempty"`
	Name       string     `msgpack:"name,omitempty"`
	Foods      []FoodLine `msgpack:"foods,omitempty"`
	Skipped    []string   `msgpack:"skipped,omitempty"`
	Total      Nutrients  `msgpack:"total,omitempty"`
}

type DayRecord struct {
	UUID       string       `msgpack:"uuid,omitempty"`
	DatetimeMs int64        `msgpack:"date,omitempty"`
	Meals      []MealRecord `msgpack:"meals,omitempty"`
	Total      Nutrients    `msgpack:"total,omitempty"`
	Score      int          `msgpack:"score,omitempty"`
}

func NewShoppingRun(res *eatfood.ShoppingResult) ShoppingRun {
	run := ShoppingRun{
		UUID:       res.ID,
		DatetimeMs: res.CreatedAt.UnixMilli(),
		TotalCost:  res.TotalCost,
	}
	for _, r := range res.Recipes {
		run.Recipes = append(run.Recipes, Recipe{Name: r.Name, Ingredients: r.Ingredients})
	}
	for _, it := range res.Items {
		run.Items = append(run.Items, ShoppingItem{
			Name:     it.Name,
			Grams:    it.Grams,
			Cost:     it.Cost,
			Display:  it.Display,
			Category: it.Category,
		})
	}
	for _, c := range res.Categories {
		ct := CategoryTotal{Label: c.Label, Cost: c.Cost, Percent: c.Percent}
		for _, it := range c.Items {
			ct.Names = append(ct.Names, it.Name)
		}
		run.Categories = append(run.Categories, ct)
	}
	return run
}

// ToShoppingResult rebuilds the result; category items are resolved by name
// against Items.
func ToShoppingResult(run *ShoppingRun) *eatfood.ShoppingResult {
	res := &eatfood.ShoppingResult{
		ID:        run.UUID,
		CreatedAt: time.UnixMilli(run.DatetimeMs),
		TotalCost: run.TotalCost,
	}
	for _, r := range run.Recipes {
		res.Recipes = append(res.Recipes, eatfood.Recipe{Name: r.Name, Ingredients: r.Ingredients})
	}
	byName := make(map[string]eatfood.ShoppingItem, len(run.Items))
	for _, it := range run.Items {
		item := eatfood.ShoppingItem{
			Name:     it.Name,
			Grams:    it.Grams,
			Cost:     it.Cost,
			Display:  it.Display,
			Category: it.Category,
		}
		byName[it.Name] = item
		res.Items = append(res.Items, item)
	}
	for _, c := range run.Categories {
		ct := eatfood.CategoryTotal{Label: c.Label, Cost: c.Cost, Percent: c.Percent}
		for _, name := range c.Names {
			ct.Items = append(ct.Items, byName[name])
		}
		res.Categories = append(res.Categories, ct)
	}
	return res
}

func NewNutrients(n eatfood.Nutrients) Nutrients {
	return Nutrients(n)
}

func ToNutrients(n Nutrients) eatfood.Nutrients {
	return eatfood.Nutrients(n)
}

func NewMealRecord(id string, at time.Time, name string, res *eatfood.MealResult) MealRecord {
	rec := MealRecord{
		UUID:       id,
		DatetimeMs: at.UnixMilli(),
		Name:       name,
		Skipped:    res.Skipped,
		Total:      NewNutrients(res.Total),
	}
	for _, f := range res.Foods {
		rec.Foods = append(rec.Foods, FoodLine{Name: f.Name, Grams: f.Grams, Nutrients: NewNutrients(f.Nutrients)})
	}
	return rec
}

func ToMealResult(rec *MealRecord) *eatfood.MealResult {
	res := &eatfood.MealResult{
		Skipped: rec.Skipped,
		Total:   ToNutrients(rec.Total),
	}
	for _, f := range rec.Foods {
		res.Foods = append(res.Foods, eatfood.FoodRecord{Name: f.Name, Grams: f.Grams, Nutrients: ToNutrients(f.Nutrients)})
	}
	if res.Total.Calories > 0 {
		res.Split = eatfood.SplitEnergy(res.Total)
	}
	return res
}

func NewDayRecord(id string, at time.Time, rep *eatfood.DayReport) DayRecord {
	rec := DayRecord{
		UUID:       id,
		DatetimeMs: at.UnixMilli(),
		Total:      NewNutrients(rep.Total),
		Score:      rep.Score,
	}
	for _, m := range rep.Meals {
		mr := MealRecord{Name: m.Name, Skipped: m.Unknown, Total: NewNutrients(m.Total)}
		for _, f := range m.Foods {
			mr.Foods = append(mr.Foods, FoodLine{Name: f.Name, Grams: f.Grams, Nutrients: NewNutrients(f.Nutrients)})
		}
		rec.Meals = append(rec.Meals, mr)
	}
	return rec
}

// ToMeals recovers the analyzer input so a stored day can be analyzed again
// against the current tables.
func ToMeals(rec *DayRecord) []eatfood.Meal {
	meals := make([]eatfood.Meal, 0, len(rec.Meals))
	for _, m := range rec.Meals {
		meal := eatfood.Meal{Name: m.Name}
		for _, f := range m.Foods {
			meal.Foods = append(meal.Foods, eatfood.Portion{Name: f.Name, Grams: f.Grams})
		}
		for _, name := range m.Skipped {
			meal.Foods = append(meal.Foods, eatfood.Portion{Name: name})
		}
		meals = append(meals, meal)
	}
	return meals
}
