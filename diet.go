package eatfood

type Meal struct {
	Name  string    `yaml:"name"`
	Foods []Portion `yaml:"foods"`
}

type MealSummary struct {
	Name    string
	Foods   []FoodRecord
	Unknown []string
	Total   Nutrients
}

type FatStatus int

const (
	FatOK FatStatus = iota
	FatLow
	FatHigh
)

type DayReport struct {
	Meals           []MealSummary
	Total           Nutrients
	Reference       DailyReference
	CaloriesPct     float64
	ProteinPct      float64
	FatStatus       FatStatus
	FatMin          float64
	FatMax          float64
	Split           EnergySplit
	Score           int
	Recommendations []string
}

type DietAnalyzer struct {
	calc *CalorieCalculator
	ref  DailyReference
}

func NewDietAnalyzer(foods FoodTable, ref DailyReference) *DietAnalyzer {
	return &DietAnalyzer{
		calc: NewCalorieCalculator(foods),
		ref:  ref,
	}
}

func (a *DietAnalyzer) AnalyzeDay(meals []Meal) DayReport {
	rep := DayReport{Reference: a.ref}
	for _, meal := range meals {
		foods, unknown, total := a.calc.sum(meal.Foods)
		rep.Meals = append(rep.Meals, MealSummary{
			Name:    meal.Name,
			Foods:   foods,
			Unknown: unknown,
			Total:   total,
		})
		rep.Total = rep.Total.Add(total)
	}

	rep.CaloriesPct = Percent(rep.Total.Calories, a.ref.Calories)
	rep.ProteinPct = Percent(rep.Total.Protein, a.ref.Protein)

	rep.FatMin, rep.FatMax = a.ref.FatRange()
	switch {
	case rep.Total.Fat < rep.FatMin:
		rep.FatStatus = FatLow
	case rep.Total.Fat > rep.FatMax:
		rep.FatStatus = FatHigh
	}

	rep.Split = SplitEnergy(rep.Total)
	rep.Score = a.Score(rep.Total)
	rep.Recommendations = a.Recommend(rep.Total)
	return rep
}

// Score rates a day's intake out of 100.
func (a *DietAnalyzer) Score(n Nutrients) int {
	score := 100

	caloriesRatio := n.Calories / a.ref.Calories
	if caloriesRatio < 0.8 || caloriesRatio > 1.2 {
		score -= 20
	}
	if n.Protein/a.ref.Protein < 0.8 {
		score -= 15
	}
	fatPct := Percent(n.Fat*KcalPerGramFat, n.Calories)
	if fatPct < a.ref.FatMinEnergyPc || fatPct > a.ref.FatMaxEnergyPc {
		score -= 15
	}
	if n.Fiber < a.ref.Fiber*0.8 {
		score -= 10
	}

	return max(0, score)
}

func (a *DietAnalyzer) Recommend(n Nutrients) []string {
	var recs []string

	caloriesRatio := n.Calories / a.ref.Calories
	if caloriesRatio < 0.8 {
		recs = append(recs, "热量摄入不足，建议增加主食和蛋白质摄入")
	} else if caloriesRatio > 1.2 {
		recs = append(recs, "热量摄入过高，建议减少高热量食物")
	}
	if n.Protein < a.ref.Protein*0.8 {
		recs = append(recs, "蛋白质摄入不足，建议增加蛋、奶、豆制品")
	}
	if n.Fiber < a.ref.Fiber {
		recs = append(recs, "膳食纤维不足，建议增加蔬菜、水果、全谷物")
	}
	return recs
}
