package eatfood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDietAnalyzer_SampleDay(t *testing.T) {
	a := NewDietAnalyzer(DefaultFoodTable(), DefaultDailyReference())
	rep := a.AnalyzeDay(SampleDay())

	require.Len(t, rep.Meals, 3)
	assert.Equal(t, "早餐", rep.Meals[0].Name)
	assert.InDelta(t, 519, rep.Meals[0].Total.Calories, 1e-6)
	assert.InDelta(t, 478.5, rep.Meals[1].Total.Calories, 1e-6)
	assert.InDelta(t, 352, rep.Meals[2].Total.Calories, 1e-6)
	for _, m := range rep.Meals {
		assert.Empty(t, m.Unknown, m.Name)
	}

	assert.InDelta(t, 1349.5, rep.Total.Calories, 1e-6)
	assert.InDelta(t, 80.45, rep.Total.Protein, 1e-6)
	assert.InDelta(t, 35.55, rep.Total.Fat, 1e-6)
	assert.InDelta(t, 3.25, rep.Total.Fiber, 1e-6)
	assert.InDelta(t, 260, rep.Total.Calcium, 1e-6)
	assert.InDelta(t, 2.9, rep.Total.Iron, 1e-6)
	assert.InDelta(t, 32, rep.Total.VitaminC, 1e-6)

	assert.InDelta(t, 50, rep.FatMin, 1e-9)
	assert.InDelta(t, 75, rep.FatMax, 1e-9)
	assert.Equal(t, FatLow, rep.FatStatus)

	// calories below 80% (-20), fiber below 80% (-10)
	assert.Equal(t, 70, rep.Score)
	assert.Len(t, rep.Recommendations, 2)
}

func TestDietAnalyzer_Score(t *testing.T) {
	a := NewDietAnalyzer(DefaultFoodTable(), DefaultDailyReference())

	balanced := Nutrients{Calories: 2250, Protein: 70, Fat: 62.5, Fiber: 25}
	assert.Equal(t, 100, a.Score(balanced))
	assert.Empty(t, a.Recommend(balanced))

	// every rule fails
	assert.Equal(t, 40, a.Score(Nutrients{}))

	over := Nutrients{Calories: 3000, Protein: 40, Fat: 120, Fiber: 10}
	assert.Equal(t, 40, a.Score(over))
	assert.Len(t, a.Recommend(over), 3)
}

func TestDietAnalyzer_UnknownFoods(t *testing.T) {
	a := NewDietAnalyzer(DefaultFoodTable(), DefaultDailyReference())
	rep := a.AnalyzeDay([]Meal{{Name: "夜宵", Foods: []Portion{{Name: "烧烤", Grams: 200}}}})

	require.Len(t, rep.Meals, 1)
	assert.Equal(t, []string{"烧烤"}, rep.Meals[0].Unknown)
	assert.Zero(t, rep.Total.Calories)
	assert.Equal(t, FatLow, rep.FatStatus)
}

func TestDietAnalyzer_FoodNutrientsAreExact(t *testing.T) {
	a := NewDietAnalyzer(DefaultFoodTable(), DefaultDailyReference())
	rep := a.AnalyzeDay([]Meal{{Name: "午餐", Foods: []Portion{{Name: "米饭", Grams: 21.97}}}})

	require.Len(t, rep.Meals, 1)
	require.Len(t, rep.Meals[0].Foods, 1)
	assert.InDelta(t, 25.4852, rep.Meals[0].Foods[0].Nutrients.Calories, 1e-9)

	// the meal calculator still rounds for its own display
	res := a.calc.CalculateMeal([]Portion{{Name: "米饭", Grams: 21.97}})
	assert.Equal(t, 25.5, res.Foods[0].Nutrients.Calories)
}
