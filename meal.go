package eatfood

import "strings"

type Portion struct {
	Name  string  `yaml:"name"`
	Grams float64 `yaml:"grams"`
}

// FoodRecord is one recognised portion. In a MealResult its nutrients are
// rounded to one decimal; in a DayReport they are exact.
type FoodRecord struct {
	Name      string
	Grams     float64
	Nutrients Nutrients
}

type AdviceLevel int

const (
	AdviceOK AdviceLevel = iota
	AdviceLow
	AdviceHigh
)

type Advice struct {
	Level   AdviceLevel
	Message string
}

type MealResult struct {
	Foods   []FoodRecord
	Skipped []string
	Total   Nutrients
	Split   EnergySplit
	Advice  []Advice
}

type CalorieCalculator struct {
	foods FoodTable
}

func NewCalorieCalculator(foods FoodTable) *CalorieCalculator {
	return &CalorieCalculator{foods: foods}
}

func (c *CalorieCalculator) Known(name string) bool {
	_, ok := c.foods.Lookup(name)
	return ok
}

// CalculateMeal sums the portions it knows and lists the ones it does not.
func (c *CalorieCalculator) CalculateMeal(portions []Portion) MealResult {
	var res MealResult
	res.Foods, res.Skipped, res.Total = c.sum(portions)
	for i := range res.Foods {
		res.Foods[i].Nutrients = res.Foods[i].Nutrients.Round1()
	}

	if res.Total.Calories > 0 {
		res.Split = SplitEnergy(res.Total)
		res.Advice = mealAdvice(res.Split)
	}
	return res
}

// sum scales every known portion; nothing is rounded.
func (c *CalorieCalculator) sum(portions []Portion) (foods []FoodRecord, skipped []string, total Nutrients) {
	for _, p := range portions {
		name := strings.TrimSpace(p.Name)
		food, ok := c.foods.Lookup(name)
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		n := food.Scale(p.Grams)
		total = total.Add(n)
		foods = append(foods, FoodRecord{Name: name, Grams: p.Grams, Nutrients: n})
	}
	return foods, skipped, total
}

func mealAdvice(s EnergySplit) []Advice {
	var advice []Advice
	switch {
	case s.ProteinPct < 15:
		advice = append(advice, Advice{AdviceLow, "蛋白质摄入偏低，建议增加蛋、肉、豆制品"})
	case s.ProteinPct > 35:
		advice = append(advice, Advice{AdviceHigh, "蛋白质摄入偏高，注意肾脏负担"})
	default:
		advice = append(advice, Advice{AdviceOK, "蛋白质摄入比例合理"})
	}
	if s.FatPct > 30 {
		advice = append(advice, Advice{AdviceHigh, "脂肪摄入偏高，建议减少油炸食品"})
	}
	return advice
}
